package rtval

import "encoding/json"

// literalValue is the closed set of primitive types Literal accepts, matching
// spec.md's restriction that v must be string, number, or boolean.
type literalValue interface {
	string | float64 | bool
}

// Literal accepts only values strictly equal to value. The default name is
// value's JSON rendering, e.g. Literal("open") has name `"open"`.
func Literal[T literalValue](value T, name ...string) Validator[T] {
	n := jsonName(value)
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	return literalValidator[T]{value: value, name: n}
}

func jsonName(value any) string {
	b, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(b)
}

type literalValidator[T literalValue] struct {
	value T
	name  string
}

func (l literalValidator[T]) Name() string { return l.name }
func (l literalValidator[T]) Kind() Kind   { return KindLiteral }
func (l literalValidator[T]) Validate(v any, ctx Context) Result[T] {
	t, ok := v.(T)
	if !ok || t != l.value {
		return Err[T](One(v, ctx))
	}
	return Ok(t)
}
