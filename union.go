package rtval

import "strings"

// Union tries each branch in order and returns the first success. If no
// branch accepts v, Union collapses to a single error at its own context —
// there is no principled way to report which branch "should" have matched.
func Union(branches []Validator[any], name ...string) Validator[any] {
	n := unionName(branches)
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	return unionValidator{branches: append([]Validator[any]{}, branches...), name: n}
}

func unionName(branches []Validator[any]) string {
	names := make([]string, len(branches))
	for i, b := range branches {
		names[i] = b.Name()
	}
	return "(" + strings.Join(names, " | ") + ")"
}

type unionValidator struct {
	branches []Validator[any]
	name     string
}

func (u unionValidator) Name() string { return u.name }
func (u unionValidator) Kind() Kind   { return KindUnion }
func (u unionValidator) Validate(v any, ctx Context) Result[any] {
	for _, b := range u.branches {
		r := b.Validate(v, ctx)
		if IsOk(r) {
			return r
		}
	}
	return Err[any](One(v, ctx))
}
