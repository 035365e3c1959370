package depot

import (
	"fmt"
	"sync"
	"unsafe"
)

// sliceHandle is an untyped address+length view over one component array,
// tagged with the TypeKey of the component it was created for. The tag is
// what licenses narrowing the handle back to a typed slice without
// re-validating it on every call.
type sliceHandle struct {
	ptr unsafe.Pointer
	len int
	key TypeKey
}

// cacheKey identifies one query call site: the invoking system's type key,
// the filter's slot id, and the read/write discriminator. Slot ids are
// allocated once per Filter value and system keys are per concrete system
// type, so no two distinct call sites can ever produce the same key.
type cacheKey struct {
	system TypeKey
	slot   uint64
	write  bool
}

// queryCache keeps the last materialized handle per call site, refreshed
// in place on every query so a cached entry always reflects the array's
// current base address after any resize.
type queryCache struct {
	mu      sync.Mutex
	entries map[cacheKey]*sliceHandle
}

func newQueryCache() *queryCache {
	return &queryCache{entries: make(map[cacheKey]*sliceHandle)}
}

func (qc *queryCache) fetchOrUpdate(key cacheKey, fresh sliceHandle) sliceHandle {
	qc.mu.Lock()
	defer qc.mu.Unlock()
	if prev, ok := qc.entries[key]; ok {
		if prev.key != fresh.key {
			// Key uniqueness makes this unreachable; reaching it means the
			// key derivation is broken, not that the caller can recover.
			panic(fmt.Sprintf(
				"depot: cache entry for type key %#x refreshed with type key %#x",
				uint64(prev.key), uint64(fresh.key),
			))
		}
		prev.ptr, prev.len = fresh.ptr, fresh.len
		return *prev
	}
	stored := fresh
	qc.entries[key] = &stored
	return stored
}

func (qc *queryCache) size() int {
	qc.mu.Lock()
	defer qc.mu.Unlock()
	return len(qc.entries)
}
