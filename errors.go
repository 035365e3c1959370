package depot

import (
	"fmt"
	"reflect"
)

type MissingComponentTypeError struct {
	Key  TypeKey
	Type reflect.Type
}

func (e MissingComponentTypeError) Error() string {
	if e.Type != nil {
		return fmt.Sprintf("no component array registered for type %v", e.Type)
	}
	return fmt.Sprintf("no component array registered for type key %#x", uint64(e.Key))
}

type DuplicateComponentTypeError struct {
	Key  TypeKey
	Type reflect.Type
}

func (e DuplicateComponentTypeError) Error() string {
	if e.Type != nil {
		return fmt.Sprintf("component array already registered for type %v", e.Type)
	}
	return fmt.Sprintf("component array already registered for type key %#x", uint64(e.Key))
}

type AliasConflictError struct {
	Key   TypeKey
	Type  reflect.Type
	Write bool
}

func (e AliasConflictError) Error() string {
	mode := "read"
	if e.Write {
		mode = "write"
	}
	if e.Type != nil {
		return fmt.Sprintf("%s view of %v conflicts with a view already held", mode, e.Type)
	}
	return fmt.Sprintf("%s view of type key %#x conflicts with a view already held", mode, uint64(e.Key))
}
