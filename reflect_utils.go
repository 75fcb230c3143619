package rtval

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// funcName renders a func value's short name, falling back to
// "<function<arity>>" per the naming convention when it has none (e.g. a
// closure, or a nil func value).
func funcName(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return fmt.Sprintf("<function%d>", rv.Type().NumIn())
	}
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return fmt.Sprintf("<function%d>", rv.Type().NumIn())
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if name == "" || strings.HasPrefix(name, "func") {
		return fmt.Sprintf("<function%d>", rv.Type().NumIn())
	}
	return name
}

// isSequence reports whether v is an ordered-sequence container: a slice or
// array (but not a nil slice's absence — nil itself is rejected because it
// carries no element type to walk).
func isSequence(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// isRecord reports whether v is a non-nil, non-array record-like value: a
// map keyed by string, or a struct.
func isRecord(v any) bool {
	if v == nil {
		return false
	}
	rt := reflect.TypeOf(v)
	switch rt.Kind() {
	case reflect.Map:
		return rt.Key().Kind() == reflect.String
	case reflect.Struct:
		return true
	case reflect.Ptr:
		return rt.Elem().Kind() == reflect.Struct && !reflect.ValueOf(v).IsNil()
	default:
		return false
	}
}

// isFunc reports whether v is a callable.
func isFunc(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.Func
}

// embeds reports whether t is super, or t (a struct type, or a pointer to
// one) recursively embeds a field of type super. This is Go's nearest
// analogue to "is a subclass of" for ClassOf, since Go has no inheritance.
func embeds(t, super reflect.Type) bool {
	if t == super {
		return true
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		if f.Type == super {
			return true
		}
		if embeds(f.Type, super) {
			return true
		}
	}
	return false
}

// sortStrings sorts s in place; extracted to a one-line helper so callers
// don't need to import "sort" just for this.
func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// recordGetter returns a function reading a named property off v, which
// must satisfy isRecord: a map[string]-keyed map, or a struct/*struct.
func recordGetter(v any) func(key string) (any, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		return func(key string) (any, bool) {
			mv := rv.MapIndex(reflect.ValueOf(key))
			if !mv.IsValid() {
				return nil, false
			}
			return mv.Interface(), true
		}
	case reflect.Struct:
		return func(key string) (any, bool) {
			fv := rv.FieldByName(key)
			if !fv.IsValid() || !fv.CanInterface() {
				return nil, false
			}
			return fv.Interface(), true
		}
	default:
		return func(string) (any, bool) { return nil, false }
	}
}

// recordKeys enumerates the own keys of v, which must satisfy isRecord.
func recordKeys(v any) []string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sortStrings(keys)
		return keys
	case reflect.Struct:
		t := rv.Type()
		keys := make([]string, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).IsExported() {
				keys = append(keys, t.Field(i).Name)
			}
		}
		return keys
	default:
		return nil
	}
}

// arrLen and arrIndex read a reflect.Value known to be a sequence, used by
// Array and Tuple so both accept any slice/array element type, not just
// []any.
func arrLen(v any) int { return reflect.ValueOf(v).Len() }

func arrIndex(v any, i int) (any, bool) {
	rv := reflect.ValueOf(v)
	if i < 0 || i >= rv.Len() {
		return nil, false
	}
	return rv.Index(i).Interface(), true
}
