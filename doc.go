// Package rtval provides:
//
// - A composable algebra of runtime type validators (irreducibles,
//   combinators, and a recursion fixpoint) built around Validator[T]
// - A pure, non-coercing Validate/ValidateWithContext entry point that
//   narrows values of unknown shape to a statically known Go type
// - A stable error model via Errors (path-annotated ValidationError records)
//
// Design policy:
// - Keep the core (this package) free of I/O, coercion, and third-party
//   dependencies; it is a pure value-level algebra.
// - Place domain-stack tooling (shape-file loading, JSON decoding, CLI)
//   under internal/ and cmd/rtval-lint.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v := rtval.Object(map[string]rtval.Validator[any]{
//		"name": rtval.AsAny(rtval.String()),
//		"age":  rtval.AsAny(rtval.Number()),
//	})
//	result := rtval.Validate(input, v)
//	if rtval.IsErr(result) {
//		for _, e := range rtval.FromErr(result) {
//			fmt.Println(e.Description)
//		}
//	}
package rtval
