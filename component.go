package depot

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// TypeKey is a stable runtime identifier for a registered type. It is
// equality-comparable only; no ordering is implied.
type TypeKey uint64

// KeyFor returns the TypeKey for T, registering T's identity on first use.
func KeyFor[T any]() TypeKey {
	return registry.keyFor(reflect.TypeFor[T]())
}

var _ Component = componentType{}

type componentType struct {
	key TypeKey
	bit uint32
	typ reflect.Type
}

func (c componentType) Key() TypeKey {
	return c.key
}

func (c componentType) Bit() uint32 {
	return c.bit
}

func (c componentType) Type() reflect.Type {
	return c.typ
}

var registry = &typeRegistry{
	types:      make(map[TypeKey]reflect.Type),
	components: make(map[TypeKey]componentType),
}

// typeRegistry maps TypeKeys back to the types that produced them and
// assigns every component type a dense bit index for mask building.
type typeRegistry struct {
	mu         sync.RWMutex
	types      map[TypeKey]reflect.Type
	components map[TypeKey]componentType
	nextBit    uint32
}

func (r *typeRegistry) keyFor(t reflect.Type) TypeKey {
	key := TypeKey(xxhash.Sum64String(typeIdentity(t)))
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.types[key]; ok {
		if prev != t {
			panic(fmt.Sprintf("depot: type key collision between %v and %v", prev, t))
		}
		return key
	}
	r.types[key] = t
	return key
}

// registerComponent assigns t a bit index on first registration. Repeated
// registrations of the same type return the same componentType.
func (r *typeRegistry) registerComponent(t reflect.Type) componentType {
	key := r.keyFor(t)
	r.mu.Lock()
	defer r.mu.Unlock()
	if ct, ok := r.components[key]; ok {
		return ct
	}
	ct := componentType{key: key, bit: r.nextBit, typ: t}
	r.nextBit++
	r.components[key] = ct
	return ct
}

func (r *typeRegistry) typeOf(key TypeKey) reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.types[key]
}

func (r *typeRegistry) bitOf(key TypeKey) uint32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ct, ok := r.components[key]
	if !ok {
		panic(fmt.Sprintf("depot: type key %#x was never registered as a component", uint64(key)))
	}
	return ct.bit
}

func typeIdentity(t reflect.Type) string {
	if pp := t.PkgPath(); pp != "" {
		return pp + "." + t.Name()
	}
	return t.String()
}
