package depot

import (
	"reflect"
	"slices"
	"sync/atomic"
)

// slotCounter allocates cache slot ids. Each Filter value gets exactly one
// at construction, which is what keeps cache keys unique per call site.
var slotCounter atomic.Uint64

// Filter names a target component type plus three auxiliary component
// sets. A query for the filter yields a view over the target's array; the
// all/any/none sets are handed to the Storage's Membership policy to
// restrict which portion of the array is returned. A filter with all
// three sets empty selects everything.
//
// Construct filters once at setup via FactoryNewFilter and reuse them;
// every construction allocates a fresh cache slot.
type Filter[T any] struct {
	target Component
	slot   uint64
	all    []TypeKey
	anyOf  []TypeKey
	none   []TypeKey
}

func newFilter[T any](all, anyOf, none []TypeKey) Filter[T] {
	return Filter[T]{
		target: registry.registerComponent(reflect.TypeFor[T]()),
		slot:   slotCounter.Add(1),
		all:    slices.Clone(all),
		anyOf:  slices.Clone(anyOf),
		none:   slices.Clone(none),
	}
}

// Target returns the type key of the component the filter selects.
func (f Filter[T]) Target() TypeKey {
	return f.target.Key()
}

// AllAnyNone returns the three membership sets as type key lists.
func (f Filter[T]) AllAnyNone() (all, anyOf, none []TypeKey) {
	return f.all, f.anyOf, f.none
}

// Types0 through Types3 extract the ordered type key list from a fixed
// group of component types. Arities above three are not supported;
// compose multiple filters instead.

func Types0() []TypeKey {
	return []TypeKey{}
}

func Types1[A any]() []TypeKey {
	return []TypeKey{KeyFor[A]()}
}

func Types2[A, B any]() []TypeKey {
	return []TypeKey{KeyFor[A](), KeyFor[B]()}
}

func Types3[A, B, C any]() []TypeKey {
	return []TypeKey{KeyFor[A](), KeyFor[B](), KeyFor[C]()}
}
