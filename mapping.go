package rtval

import (
	"fmt"
	"reflect"
)

// Mapping requires a string-keyed map and validates every own key against kt
// and every value against vt, collecting all failures. On success it
// returns the original v.
func Mapping(kt, vt Validator[any], name ...string) Validator[any] {
	n := fmt.Sprintf("{ [key: %s]: %s }", kt.Name(), vt.Name())
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	return mappingValidator{kt: kt, vt: vt, name: n}
}

type mappingValidator struct {
	kt, vt Validator[any]
	name   string
}

func (m mappingValidator) Name() string { return m.name }
func (m mappingValidator) Kind() Kind   { return KindMapping }
func (m mappingValidator) Validate(v any, ctx Context) Result[any] {
	rv := reflect.ValueOf(v)
	if !isRecord(v) || rv.Kind() != reflect.Map {
		return Err[any](One(v, ctx))
	}
	var errs Errors
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().Interface()
		val := iter.Value().Interface()
		ks, _ := k.(string)
		if rk := m.kt.Validate(k, ctx.Push(ks, m.kt.Name())); IsErr(rk) {
			errs = append(errs, FromErr(rk)...)
		}
		if rvv := m.vt.Validate(val, ctx.Push(ks, m.vt.Name())); IsErr(rvv) {
			errs = append(errs, FromErr(rvv)...)
		}
	}
	if len(errs) > 0 {
		return Err[any](errs)
	}
	return Ok(v)
}
