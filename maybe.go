package rtval

// Maybe accepts nil as-is, or delegates to t. Default name is "?" + t.Name().
func Maybe[T any](t Validator[T], name ...string) Validator[any] {
	n := "?" + t.Name()
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	return maybeValidator[T]{inner: t, name: n}
}

type maybeValidator[T any] struct {
	inner Validator[T]
	name  string
}

func (m maybeValidator[T]) Name() string { return m.name }
func (m maybeValidator[T]) Kind() Kind   { return KindMaybe }
func (m maybeValidator[T]) Validate(v any, ctx Context) Result[any] {
	if v == nil {
		return Ok[any](v)
	}
	r := m.inner.Validate(v, ctx)
	if IsErr(r) {
		return Err[any](FromErr(r))
	}
	return Ok[any](FromOk(r))
}
