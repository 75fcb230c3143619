package rtval

import "fmt"

// Exact ($exact) behaves like Object(props), additionally reporting one
// error per key present on v that is not declared in props, each at
// context {extraKey, "nil"} per the naming convention.
func Exact(props any, name ...string) Validator[any] {
	op := toObjectProps(props)
	n := fmt.Sprintf("$Exact<%s>", objectDefaultName(op))
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	return exactValidator{object: objectValidator{props: op, name: n}, name: n}
}

type exactValidator struct {
	object objectValidator
	name   string
}

func (e exactValidator) Name() string { return e.name }
func (e exactValidator) Kind() Kind   { return KindExact }
func (e exactValidator) Validate(v any, ctx Context) Result[any] {
	if !isRecord(v) {
		return Err[any](One(v, ctx))
	}
	r := e.object.Validate(v, ctx)
	var errs Errors
	if IsErr(r) {
		errs = append(errs, FromErr(r)...)
	}
	errs = append(errs, extraKeyErrors(v, e.object.props, ctx)...)
	if len(errs) > 0 {
		return Err[any](errs)
	}
	return Ok(v)
}

// extraKeyErrors reports one error per key on v that is not declared in
// props, each at context {key, "nil"}, shared by Exact and Shape.
func extraKeyErrors(v any, props ObjectProps, ctx Context) Errors {
	declared := make(map[string]struct{}, len(props.Keys))
	for _, k := range props.Keys {
		declared[k] = struct{}{}
	}
	var errs Errors
	for _, k := range recordKeys(v) {
		if _, ok := declared[k]; ok {
			continue
		}
		val, _ := recordGetter(v)(k)
		errs = append(errs, NewValidationError(val, ctx.Push(k, "nil")))
	}
	return errs
}
