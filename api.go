package rtval

// Validate applies t to v using a freshly seeded root Context.
func Validate[T any](v any, t Validator[T]) Result[T] {
	return t.Validate(v, GetDefaultContext(t.Name()))
}

// ValidateWithContext applies t to v under an already-built Context, for
// callers embedding a validator's result inside a larger structure they are
// building by hand.
func ValidateWithContext[T any](v any, ctx Context, t Validator[T]) Result[T] {
	return t.Validate(v, ctx)
}

// Is reports whether v conforms to t.
func Is[T any](v any, t Validator[T]) bool {
	return IsOk(Validate(v, t))
}

// UnsafeValidate returns the narrowed value or panics via Crash on failure.
func UnsafeValidate[T any](v any, t Validator[T]) T {
	return FromOk(Validate(v, t))
}
