package depot

import (
	"reflect"
	"sync/atomic"
)

var _ Invokable = &invokable[View[int], MutView[int]]{}

// ownerCounter tags each invokable so borrow accounting can tell its own
// simultaneously held views apart from another invocation's.
var ownerCounter atomic.Uint64

// invokable erases a concrete SystemOf behind the Invokable contract. The
// system's type key and both query values are captured once at
// construction, so every later Invoke reuses the same cache slots.
type invokable[R, W any] struct {
	sys   SystemOf[R, W]
	key   TypeKey
	owner uint64
	read  Source[R]
	write MutSource[W]
}

func newInvokable[R, W any](sys SystemOf[R, W]) Invokable {
	return &invokable[R, W]{
		sys:   sys,
		key:   registry.keyFor(reflect.TypeOf(sys)),
		owner: ownerCounter.Add(1),
		read:  sys.ReadQuery(),
		write: sys.WriteQuery(),
	}
}

// Invoke acquires shared borrows for the read set and exclusive borrows
// for the write set, resolves both queries seeded with the system's own
// type key, and calls the user logic. Borrows are released on all paths
// when the invocation completes.
func (iv *invokable[R, W]) Invoke(sto Storage) error {
	type borrow struct {
		key   TypeKey
		write bool
	}
	var held []borrow
	defer func() {
		for i := len(held) - 1; i >= 0; i-- {
			sto.release(held[i].key, held[i].write, iv.owner)
		}
	}()

	for _, key := range iv.read.Ids() {
		if err := sto.acquire(key, false, iv.owner); err != nil {
			return err
		}
		held = append(held, borrow{key: key})
	}
	for _, key := range iv.write.Ids() {
		if err := sto.acquire(key, true, iv.owner); err != nil {
			return err
		}
		held = append(held, borrow{key: key, write: true})
	}

	r, err := iv.read.Resolve(sto, iv.key)
	if err != nil {
		return err
	}
	w, err := iv.write.ResolveMut(sto, iv.key)
	if err != nil {
		return err
	}
	iv.sys.Run(r, w)
	return nil
}

func (iv *invokable[R, W]) Reads() []TypeKey {
	return iv.read.Ids()
}

func (iv *invokable[R, W]) Writes() []TypeKey {
	return iv.write.Ids()
}
