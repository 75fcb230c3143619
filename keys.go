package rtval

import "fmt"

// Keys ($keys) accepts a string that is one of the declared property names
// of objectType, which must be a validator built by Object.
func Keys(objectType Validator[any], name ...string) Validator[string] {
	ov, ok := objectType.(objectValidator)
	if !ok {
		Crash("rtval.Keys: objectType must be built by rtval.Object")
	}
	n := fmt.Sprintf("$Keys<%s>", objectType.Name())
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	set := make(map[string]struct{}, len(ov.props.Keys))
	for _, k := range ov.props.Keys {
		set[k] = struct{}{}
	}
	return keysValidator{set: set, name: n}
}

type keysValidator struct {
	set  map[string]struct{}
	name string
}

func (k keysValidator) Name() string { return k.name }
func (k keysValidator) Kind() Kind   { return KindKeys }
func (k keysValidator) Validate(v any, ctx Context) Result[string] {
	s, ok := v.(string)
	if !ok {
		return Err[string](One(v, ctx))
	}
	if _, present := k.set[s]; !present {
		return Err[string](One(v, ctx))
	}
	return Ok(s)
}
