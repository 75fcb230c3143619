package rtval

import (
	"strconv"
	"strings"
)

// Intersection requires v to satisfy every branch, collecting all failures.
// On success it returns the original v.
func Intersection(branches []Validator[any], name ...string) Validator[any] {
	n := intersectionName(branches)
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	return intersectionValidator{branches: append([]Validator[any]{}, branches...), name: n}
}

func intersectionName(branches []Validator[any]) string {
	names := make([]string, len(branches))
	for i, b := range branches {
		names[i] = b.Name()
	}
	return "(" + strings.Join(names, " & ") + ")"
}

type intersectionValidator struct {
	branches []Validator[any]
	name     string
}

func (t intersectionValidator) Name() string { return t.name }
func (t intersectionValidator) Kind() Kind   { return KindIntersection }
func (t intersectionValidator) Validate(v any, ctx Context) Result[any] {
	var errs Errors
	for i, b := range t.branches {
		key := strconv.Itoa(i)
		r := b.Validate(v, ctx.Push(key, b.Name()))
		if IsErr(r) {
			errs = append(errs, FromErr(r)...)
		}
	}
	if len(errs) > 0 {
		return Err[any](errs)
	}
	return Ok(v)
}
