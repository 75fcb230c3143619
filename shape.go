package rtval

import "fmt"

// Shape ($shape) requires an obj and, for every key in objectType's declared
// props that is present on v, validates it against the corresponding child;
// missing properties are not errors. It also applies Exact's extra-key
// check. objectType must be a validator built by Object.
func Shape(objectType Validator[any], name ...string) Validator[any] {
	ov, ok := objectType.(objectValidator)
	if !ok {
		Crash("rtval.Shape: objectType must be built by rtval.Object")
	}
	n := fmt.Sprintf("$Shape<%s>", objectType.Name())
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	return shapeValidator{props: ov.props, name: n}
}

type shapeValidator struct {
	props ObjectProps
	name  string
}

func (s shapeValidator) Name() string { return s.name }
func (s shapeValidator) Kind() Kind   { return KindShape }
func (s shapeValidator) Validate(v any, ctx Context) Result[any] {
	if !isRecord(v) {
		return Err[any](One(v, ctx))
	}
	get := recordGetter(v)
	present := make(map[string]struct{})
	for _, k := range recordKeys(v) {
		present[k] = struct{}{}
	}
	var errs Errors
	for _, k := range s.props.Keys {
		if _, ok := present[k]; !ok {
			continue
		}
		child := s.props.Props[k]
		val, _ := get(k)
		r := child.Validate(val, ctx.Push(k, child.Name()))
		if IsErr(r) {
			errs = append(errs, FromErr(r)...)
		}
	}
	errs = append(errs, extraKeyErrors(v, s.props, ctx)...)
	if len(errs) > 0 {
		return Err[any](errs)
	}
	return Ok(v)
}
