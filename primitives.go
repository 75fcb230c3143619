package rtval

import "math"

// Nil accepts a Go nil (the analogue of the source language's undefined/null).
func Nil() Validator[any] { return irreducible[any]{name: "nil", accepts: isNil} }

// Any accepts every value, including nil.
func Any() Validator[any] { return irreducible[any]{name: "any", accepts: func(any) bool { return true }} }

// String accepts a primitive string.
func String() Validator[string] {
	return typedIrreducible[string]{name: "string"}
}

// Number accepts a finite, non-NaN float64. Integer values decoded as other
// numeric Go types are not implicitly widened: callers compose Number with a
// Refinement, or coerce before calling Validate, per the no-coercion rule.
func Number() Validator[float64] {
	return irreducibleFunc[float64]{
		name: "number",
		try: func(v any) (float64, bool) {
			f, ok := v.(float64)
			if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
				return 0, false
			}
			return f, true
		},
	}
}

// Boolean accepts a primitive bool.
func Boolean() Validator[bool] {
	return typedIrreducible[bool]{name: "boolean"}
}

// Arr accepts any ordered-sequence container: a Go slice or array.
func Arr() Validator[any] {
	return irreducible[any]{name: "arr", accepts: isSequence}
}

// Obj accepts any non-nil, non-array record-like value: a map[string]any or
// a struct (by reflection), matching the source language's "object" notion.
func Obj() Validator[any] {
	return irreducible[any]{name: "obj", accepts: isRecord}
}

// Fun accepts any callable (a Go func value).
func Fun() Validator[any] {
	return irreducible[any]{name: "fun", accepts: isFunc}
}

// irreducible is the generic shape shared by every atom whose accepted value
// is returned as-is without narrowing beyond `any`.
type irreducible[T any] struct {
	name    string
	accepts func(any) bool
}

func (p irreducible[T]) Name() string { return p.name }
func (p irreducible[T]) Kind() Kind   { return KindIrreducible }
func (p irreducible[T]) Validate(v any, ctx Context) Result[T] {
	if !p.accepts(v) {
		return Err[T](One(v, ctx))
	}
	t, _ := any(v).(T)
	return Ok(t)
}

// typedIrreducible accepts values whose Go dynamic type is exactly T via a
// direct type assertion — the shape used by string and boolean.
type typedIrreducible[T any] struct{ name string }

func (p typedIrreducible[T]) Name() string { return p.name }
func (p typedIrreducible[T]) Kind() Kind   { return KindIrreducible }
func (p typedIrreducible[T]) Validate(v any, ctx Context) Result[T] {
	t, ok := v.(T)
	if !ok {
		var zero T
		_ = zero
		return Err[T](One(v, ctx))
	}
	return Ok(t)
}

// irreducibleFunc accepts values a custom predicate both recognizes and
// converts, the shape used by number (which must also reject NaN/Inf).
type irreducibleFunc[T any] struct {
	name string
	try  func(any) (T, bool)
}

func (p irreducibleFunc[T]) Name() string { return p.name }
func (p irreducibleFunc[T]) Kind() Kind   { return KindIrreducible }
func (p irreducibleFunc[T]) Validate(v any, ctx Context) Result[T] {
	t, ok := p.try(v)
	if !ok {
		return Err[T](One(v, ctx))
	}
	return Ok(t)
}

func isNil(v any) bool { return v == nil }
