package rtval

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// ValidationError describes one rejected value: the offending value itself,
// the Context at which it was rejected, and a human-readable Description.
type ValidationError struct {
	Value       any
	Context     Context
	Description string
}

// NewValidationError builds a ValidationError with the canonical
// description: "Invalid value <stringify(value)> supplied to <path>".
func NewValidationError(value any, ctx Context) ValidationError {
	return ValidationError{
		Value:       value,
		Context:     ctx,
		Description: fmt.Sprintf("Invalid value %s supplied to %s", Stringify(value), ctx.Path()),
	}
}

// Stringify renders a value the way the reporter contract expects: a
// callable's display name if the value is callable, otherwise a JSON
// rendering (falling back to fmt's %v form for values JSON cannot encode).
func Stringify(v any) string {
	if v == nil {
		return "null"
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Func {
		return funcName(v)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// Errors is a non-empty (by construction contract) list of ValidationErrors.
// It implements error so a Result's failure list can be handed anywhere Go
// code expects an error without an adapter.
type Errors []ValidationError

// Error summarizes every description, one per line.
func (e Errors) Error() string {
	if len(e) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Description)
	}
	return b.String()
}

// One builds a single-element Errors list, the shape returned by Union and
// Refinement on rejection.
func One(value any, ctx Context) Errors {
	return Errors{NewValidationError(value, ctx)}
}

// CrashError is raised by Crash and by FromOk/FromErr misuse. It is a
// programmer failure, never expected to be recovered from.
type CrashError struct {
	Message string
}

func (e *CrashError) Error() string { return "[rtval failure]\n" + e.Message }

// Crash raises a CrashError. It is the equivalent of an assertion failure:
// a caller broke an invariant the library requires (e.g. FromOk on an Err).
func Crash(msg string) {
	panic(&CrashError{Message: msg})
}

// Assert panics via Crash if cond is false. msgFn is called lazily so
// callers can defer building an expensive message to the failure path.
func Assert(cond bool, msgFn func() string) {
	if cond {
		return
	}
	msg := "assertion failed"
	if msgFn != nil {
		msg = msgFn()
	}
	Crash(msg)
}
