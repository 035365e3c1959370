package depot

import (
	"fmt"
	"iter"
	"reflect"
	"unsafe"
)

// View is a read-only view over one component array, reconstructed from a
// cached untyped handle. It is valid until the next Storage mutation;
// re-query rather than retain views across rounds.
type View[T any] struct {
	data []T
}

func viewOf[T any](h sliceHandle) View[T] {
	return View[T]{data: narrow[T](h)}
}

func (v View[T]) Len() int {
	return len(v.data)
}

func (v View[T]) At(i int) T {
	return v.data[i]
}

// All iterates the view lazily. Iteration is finite and restartable only
// by re-querying, not resumable mid-way across invocations.
func (v View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.data {
			if !yield(item) {
				return
			}
		}
	}
}

// MutView is the mutable counterpart of View. Element pointers obtained
// from it write straight into the Storage-owned array.
type MutView[T any] struct {
	data []T
}

func mutViewOf[T any](h sliceHandle) MutView[T] {
	return MutView[T]{data: narrow[T](h)}
}

func (v MutView[T]) Len() int {
	return len(v.data)
}

func (v MutView[T]) At(i int) *T {
	return &v.data[i]
}

func (v MutView[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range v.data {
			if !yield(&v.data[i]) {
				return
			}
		}
	}
}

// narrow rebuilds a typed slice from an untyped handle. The handle tag
// must match the statically requested type; a mismatch means a cache key
// collision, which the slot allocation scheme rules out.
func narrow[T any](h sliceHandle) []T {
	if h.key != KeyFor[T]() {
		panic(fmt.Sprintf(
			"depot: handle tagged %#x narrowed as %v (key %#x)",
			uint64(h.key), reflect.TypeFor[T](), uint64(KeyFor[T]()),
		))
	}
	if h.len == 0 {
		return nil
	}
	return unsafe.Slice((*T)(h.ptr), h.len)
}
