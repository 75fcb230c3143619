package rtval

import "strings"

// ObjectProps declares the properties of an Object validator, keyed by
// property name, in the order they should be walked and named. Go maps do
// not preserve insertion order, so Object takes an explicit ordered key
// list alongside the map to keep name generation deterministic.
type ObjectProps struct {
	Keys  []string
	Props map[string]Validator[any]
}

// NewObjectProps builds ObjectProps from the given keys, in order, paired
// with validators from props. A key with no entry in props panics via
// Crash, since that is a construction-time programmer error, not a
// validation failure.
func NewObjectProps(keys []string, props map[string]Validator[any]) ObjectProps {
	for _, k := range keys {
		if _, ok := props[k]; !ok {
			Crash("rtval.NewObjectProps: missing validator for key " + k)
		}
	}
	return ObjectProps{Keys: append([]string{}, keys...), Props: props}
}

// Object requires an obj and, for every key declared in props (not every key
// present on the value), validates v[key] against the corresponding child.
// Extra keys on v are ignored. All failures are collected. On success it
// returns the original v.
//
// Object accepts either an ObjectProps (to control name-generation order) or
// a plain map[string]Validator[any] (whose key order is sorted for
// determinism, since a plain Go map has none of its own).
func Object(props any, name ...string) Validator[any] {
	op := toObjectProps(props)
	n := objectDefaultName(op)
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	return objectValidator{props: op, name: n}
}

func toObjectProps(props any) ObjectProps {
	switch p := props.(type) {
	case ObjectProps:
		return p
	case map[string]Validator[any]:
		keys := make([]string, 0, len(p))
		for k := range p {
			keys = append(keys, k)
		}
		sortStrings(keys)
		return ObjectProps{Keys: keys, Props: p}
	default:
		Crash("rtval.Object: props must be ObjectProps or map[string]Validator[any]")
		return ObjectProps{}
	}
}

func objectDefaultName(op ObjectProps) string {
	parts := make([]string, len(op.Keys))
	for i, k := range op.Keys {
		parts[i] = k + ": " + op.Props[k].Name()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

type objectValidator struct {
	props ObjectProps
	name  string
}

func (o objectValidator) Name() string { return o.name }
func (o objectValidator) Kind() Kind   { return KindObject }
func (o objectValidator) Validate(v any, ctx Context) Result[any] {
	if !isRecord(v) {
		return Err[any](One(v, ctx))
	}
	get := recordGetter(v)
	var errs Errors
	for _, k := range o.props.Keys {
		child := o.props.Props[k]
		val, _ := get(k)
		r := child.Validate(val, ctx.Push(k, child.Name()))
		if IsErr(r) {
			errs = append(errs, FromErr(r)...)
		}
	}
	if len(errs) > 0 {
		return Err[any](errs)
	}
	return Ok(v)
}
