package rtval

import (
	"strconv"
	"strings"
)

// Tuple requires a sequence container, then validates position i against
// elems[i]. Excess elements beyond len(elems) are not errors; missing
// positions validate as nil against the corresponding child, which is free
// to reject or accept it. This asymmetry is intentional (spec Open
// Question) and must not be "fixed".
func Tuple(elems []Validator[any], name ...string) Validator[any] {
	n := tupleName(elems)
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	return tupleValidator{elems: append([]Validator[any]{}, elems...), name: n}
}

func tupleName(elems []Validator[any]) string {
	names := make([]string, len(elems))
	for i, e := range elems {
		names[i] = e.Name()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

type tupleValidator struct {
	elems []Validator[any]
	name  string
}

func (t tupleValidator) Name() string { return t.name }
func (t tupleValidator) Kind() Kind   { return KindTuple }
func (t tupleValidator) Validate(v any, ctx Context) Result[any] {
	if !isSequence(v) {
		return Err[any](One(v, ctx))
	}
	var errs Errors
	for i, elem := range t.elems {
		el, _ := arrIndex(v, i) // out-of-range yields (nil, false) -> nil
		key := strconv.Itoa(i)
		r := elem.Validate(el, ctx.Push(key, elem.Name()))
		if IsErr(r) {
			errs = append(errs, FromErr(r)...)
		}
	}
	if len(errs) > 0 {
		return Err[any](errs)
	}
	return Ok(v)
}
