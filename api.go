package depot

import "reflect"

// Storage owns one type-erased component array per TypeKey and the query
// cache shared by every system invoked against it.
type Storage interface {
	Insert(col Column) error
	GetRead(key TypeKey) (Column, error)
	GetWrite(key TypeKey) (Column, error)
	Len(key TypeKey) (int, error)
	Membership() Membership
	SetMembership(Membership)

	acquire(key TypeKey, write bool, owner uint64) error
	release(key TypeKey, write bool, owner uint64)
	cache() *queryCache
}

// Column is a type-erased view of one component type's array.
type Column interface {
	Key() TypeKey
	Len() int
	Type() reflect.Type

	handle(lo, hi int) sliceHandle
}

// Component is the identity of a registered component type.
type Component interface {
	Key() TypeKey
	Bit() uint32
	Type() reflect.Type
}

// Membership restricts which portion of a target array a query returns,
// given the filter's all/any/none component sets. The core computes and
// threads the sets; the policy decides whether (and how) to apply them.
type Membership interface {
	Restrict(sto Storage, targetLen int, all, anyOf, none []TypeKey) (lo, hi int, err error)
}

// Source resolves a read query against a Storage into its typed view
// tuple R, seeded by the invoking system's TypeKey.
type Source[R any] interface {
	Resolve(sto Storage, system TypeKey) (R, error)
	Ids() []TypeKey
}

// MutSource is the mutable counterpart of Source. It must cache under
// different slots than the read path for the same system.
type MutSource[W any] interface {
	ResolveMut(sto Storage, system TypeKey) (W, error)
	Ids() []TypeKey
}

// SystemOf associates one read query, one write query, and the user logic
// consuming the materialized view tuples.
type SystemOf[R, W any] interface {
	ReadQuery() Source[R]
	WriteQuery() MutSource[W]
	Run(r R, w W)
}

// Invokable is the object-safe erasure of a SystemOf. Reads and Writes
// report pure metadata for a scheduler without touching Storage.
type Invokable interface {
	Invoke(sto Storage) error
	Reads() []TypeKey
	Writes() []TypeKey
}
