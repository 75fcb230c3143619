package rtval

import (
	"fmt"
	"reflect"
)

// InstanceOf accepts a value iff it is an instance of T, checked with a
// runtime type assertion. This is the Go rendering of the source language's
// instanceOf(Ctor): T plays the role of Ctor since Go has no first-class
// constructor functions to check nominally.
func InstanceOf[T any](name ...string) Validator[T] {
	n := defaultInstanceName[T]()
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	return instanceOfValidator[T]{name: n}
}

func defaultInstanceName[T any]() string {
	var zero T
	rt := reflect.TypeOf(&zero).Elem()
	if rt.Name() != "" {
		return rt.Name()
	}
	return rt.String()
}

type instanceOfValidator[T any] struct{ name string }

func (i instanceOfValidator[T]) Name() string { return i.name }
func (i instanceOfValidator[T]) Kind() Kind   { return KindInstanceOf }
func (i instanceOfValidator[T]) Validate(v any, ctx Context) Result[T] {
	t, ok := v.(T)
	if !ok {
		return Err[T](One(v, ctx))
	}
	return Ok(t)
}

// ClassOf accepts a value that is itself a "class": a reflect.Type equal to
// super, or a struct type that recursively embeds super (Go's nearest
// analogue to super being a superclass, since Go has no prototype chain).
// The default name is "Class<" + super.Name() + ">".
func ClassOf(super reflect.Type, name ...string) Validator[reflect.Type] {
	n := fmt.Sprintf("Class<%s>", super.Name())
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	return classOfValidator{super: super, name: n}
}

type classOfValidator struct {
	super reflect.Type
	name  string
}

func (c classOfValidator) Name() string { return c.name }
func (c classOfValidator) Kind() Kind   { return KindClassOf }
func (c classOfValidator) Validate(v any, ctx Context) Result[reflect.Type] {
	t, ok := v.(reflect.Type)
	if !ok || !embeds(t, c.super) {
		return Err[reflect.Type](One(v, ctx))
	}
	return Ok(t)
}
