package rtval_test

import (
	"math"
	"testing"

	"github.com/gorunn/rtval"
)

func TestPrimitives_Accept(t *testing.T) {
	if !rtval.Is[any](nil, rtval.Nil()) {
		t.Fatalf("Nil() should accept nil")
	}
	if !rtval.Is[any]("anything", rtval.Any()) {
		t.Fatalf("Any() should accept any value")
	}
	if !rtval.Is[any](nil, rtval.Any()) {
		t.Fatalf("Any() should accept nil too")
	}
	if !rtval.Is[string]("hello", rtval.String()) {
		t.Fatalf("String() should accept a string")
	}
	if !rtval.Is[float64](3.5, rtval.Number()) {
		t.Fatalf("Number() should accept a finite float")
	}
	if !rtval.Is[bool](true, rtval.Boolean()) {
		t.Fatalf("Boolean() should accept a bool")
	}
	if !rtval.Is[any]([]any{1, 2}, rtval.Arr()) {
		t.Fatalf("Arr() should accept a slice")
	}
	if !rtval.Is[any](map[string]any{"a": 1}, rtval.Obj()) {
		t.Fatalf("Obj() should accept a map")
	}
	if !rtval.Is[any](func() {}, rtval.Fun()) {
		t.Fatalf("Fun() should accept a callable")
	}
}

func TestPrimitives_Reject(t *testing.T) {
	if rtval.Is[string](42, rtval.String()) {
		t.Fatalf("String() should reject a non-string")
	}
	if rtval.Is[float64](math.NaN(), rtval.Number()) {
		t.Fatalf("Number() should reject NaN")
	}
	if rtval.Is[float64](math.Inf(1), rtval.Number()) {
		t.Fatalf("Number() should reject +Inf")
	}
	if rtval.Is[any]("a string", rtval.Arr()) {
		t.Fatalf("Arr() should reject a string")
	}
	if rtval.Is[any]([]any{1}, rtval.Obj()) {
		t.Fatalf("Obj() should reject an array")
	}
	if rtval.Is[any](nil, rtval.Obj()) {
		t.Fatalf("Obj() should reject nil")
	}
}

func TestPrimitives_Names(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{rtval.Nil().Name(), "nil"},
		{rtval.Any().Name(), "any"},
		{rtval.String().Name(), "string"},
		{rtval.Number().Name(), "number"},
		{rtval.Boolean().Name(), "boolean"},
		{rtval.Arr().Name(), "arr"},
		{rtval.Obj().Name(), "obj"},
		{rtval.Fun().Name(), "fun"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("got name %q, want %q", c.got, c.want)
		}
	}
}

func TestNumber_RejectionError(t *testing.T) {
	r := rtval.Validate("x", rtval.Number())
	if !rtval.IsErr(r) {
		t.Fatalf("expected rejection")
	}
	errs := rtval.FromErr(r)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d", len(errs))
	}
	if errs[0].Context[0].Key != "" {
		t.Fatalf("root error context must start with an empty key")
	}
}
