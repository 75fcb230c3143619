package rtval

import "fmt"

// Refinement validates v with t, then accepts iff predicate returns true.
// A predicate rejection or a t rejection is collapsed into one error at the
// current context, referring to the original v.
func Refinement[T any](t Validator[T], predicate func(T) bool, name ...string) Validator[T] {
	n := fmt.Sprintf("(%s | %s)", t.Name(), funcName(predicate))
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	return refinementValidator[T]{inner: t, predicate: predicate, name: n}
}

type refinementValidator[T any] struct {
	inner     Validator[T]
	predicate func(T) bool
	name      string
}

func (r refinementValidator[T]) Name() string { return r.name }
func (r refinementValidator[T]) Kind() Kind   { return KindRefinement }
func (r refinementValidator[T]) Validate(v any, ctx Context) Result[T] {
	inner := r.inner.Validate(v, ctx)
	if IsErr(inner) {
		return Err[T](One(v, ctx))
	}
	t := FromOk(inner)
	if !r.predicate(t) {
		return Err[T](One(v, ctx))
	}
	return Ok(t)
}
