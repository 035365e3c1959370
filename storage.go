package depot

import "sync"

var _ Storage = &storage{}

type storage struct {
	mu         sync.Mutex
	columns    map[TypeKey]Column
	borrows    map[TypeKey]*borrowState
	qcache     *queryCache
	membership Membership
}

// borrowState counts the views currently held over one component array,
// grouped by the invocation that holds them. One invocation may hold read
// and write views of the same array together (it runs single-threaded over
// its own views); across invocations at most one writer, or any number of
// readers, may be live at once.
type borrowState struct {
	readers map[uint64]int
	writer  uint64
	writes  int
}

func newStorage() Storage {
	return &storage{
		columns:    make(map[TypeKey]Column),
		borrows:    make(map[TypeKey]*borrowState),
		qcache:     newQueryCache(),
		membership: Config.membership,
	}
}

func (sto *storage) Insert(col Column) error {
	sto.mu.Lock()
	defer sto.mu.Unlock()
	if _, exists := sto.columns[col.Key()]; exists && Config.strictRegistration {
		return DuplicateComponentTypeError{Key: col.Key(), Type: col.Type()}
	}
	// Last write wins; the replaced array is reflected by the next query's
	// handle refresh.
	sto.columns[col.Key()] = col
	return nil
}

func (sto *storage) GetRead(key TypeKey) (Column, error) {
	return sto.lookup(key)
}

func (sto *storage) GetWrite(key TypeKey) (Column, error) {
	return sto.lookup(key)
}

func (sto *storage) Len(key TypeKey) (int, error) {
	col, err := sto.lookup(key)
	if err != nil {
		return 0, err
	}
	return col.Len(), nil
}

func (sto *storage) Membership() Membership {
	sto.mu.Lock()
	defer sto.mu.Unlock()
	return sto.membership
}

func (sto *storage) SetMembership(m Membership) {
	sto.mu.Lock()
	defer sto.mu.Unlock()
	sto.membership = m
}

func (sto *storage) lookup(key TypeKey) (Column, error) {
	sto.mu.Lock()
	defer sto.mu.Unlock()
	col, ok := sto.columns[key]
	if !ok {
		return nil, MissingComponentTypeError{Key: key, Type: registry.typeOf(key)}
	}
	return col, nil
}

func (sto *storage) acquire(key TypeKey, write bool, owner uint64) error {
	sto.mu.Lock()
	defer sto.mu.Unlock()
	b, ok := sto.borrows[key]
	if !ok {
		b = &borrowState{readers: make(map[uint64]int)}
		sto.borrows[key] = b
	}
	if b.writes > 0 && b.writer != owner {
		return AliasConflictError{Key: key, Type: registry.typeOf(key), Write: write}
	}
	if write {
		for reader := range b.readers {
			if reader != owner {
				return AliasConflictError{Key: key, Type: registry.typeOf(key), Write: true}
			}
		}
		b.writer = owner
		b.writes++
		return nil
	}
	b.readers[owner]++
	return nil
}

func (sto *storage) release(key TypeKey, write bool, owner uint64) {
	sto.mu.Lock()
	defer sto.mu.Unlock()
	b, ok := sto.borrows[key]
	if !ok {
		return
	}
	if write {
		if b.writes > 0 {
			b.writes--
		}
		if b.writes == 0 {
			b.writer = 0
		}
		return
	}
	if n := b.readers[owner]; n > 1 {
		b.readers[owner] = n - 1
	} else {
		delete(b.readers, owner)
	}
}

func (sto *storage) cache() *queryCache {
	return sto.qcache
}
