package depot

import (
	"fmt"
	"reflect"
	"unsafe"
)

var _ Column = &column[int]{}

// column owns the backing array for one component type. The backing
// slice's base address may change whenever the array grows; cached handles
// are refreshed on the next query rather than kept live across mutations.
type column[T any] struct {
	comp Component
	data []T
}

func newColumn[T any](data []T) *column[T] {
	comp := registry.registerComponent(reflect.TypeFor[T]())
	return &column[T]{comp: comp, data: data}
}

func (c *column[T]) Key() TypeKey {
	return c.comp.Key()
}

func (c *column[T]) Len() int {
	return len(c.data)
}

func (c *column[T]) Type() reflect.Type {
	return c.comp.Type()
}

// handle produces an untyped address+length pair over data[lo:hi],
// tagged with the component key it was built for.
func (c *column[T]) handle(lo, hi int) sliceHandle {
	if lo < 0 || hi > len(c.data) || hi <= lo {
		return sliceHandle{key: c.comp.Key()}
	}
	return sliceHandle{
		ptr: unsafe.Pointer(&c.data[lo]),
		len: hi - lo,
		key: c.comp.Key(),
	}
}

// typedColumn narrows a type-erased Column back to its concrete array.
// A failure here means two distinct types produced the same TypeKey,
// which the registry rules out; treat it as a contract violation.
func typedColumn[T any](col Column) *column[T] {
	c, ok := col.(*column[T])
	if !ok {
		panic(fmt.Sprintf(
			"depot: column registered for %v reconstructed as %v",
			col.Type(), reflect.TypeFor[T](),
		))
	}
	return c
}
