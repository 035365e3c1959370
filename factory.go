package depot

import "reflect"

type factory struct{}

var Factory factory

func (f factory) NewStorage() Storage {
	return newStorage()
}

func (f factory) NewRunner(systems ...Invokable) *Runner {
	return newRunner(systems...)
}

func FactoryNewComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{
		Component: registry.registerComponent(reflect.TypeFor[T]()),
	}
}

func FactoryNewColumn[T any](data []T) Column {
	return newColumn(data)
}

func FactoryNewFilter[T any](all, anyOf, none []TypeKey) Filter[T] {
	return newFilter[T](all, anyOf, none)
}

func FactoryNewQuery1[A any](a Filter[A]) Query1[A] {
	return Query1[A]{a: a}
}

func FactoryNewQuery2[A, B any](a Filter[A], b Filter[B]) Query2[A, B] {
	return Query2[A, B]{a: a, b: b}
}

func FactoryNewQuery3[A, B, C any](a Filter[A], b Filter[B], c Filter[C]) Query3[A, B, C] {
	return Query3[A, B, C]{a: a, b: b, c: c}
}

func FactoryNewInvokable[R, W any](sys SystemOf[R, W]) Invokable {
	return newInvokable(sys)
}
