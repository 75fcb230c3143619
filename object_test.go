package rtval_test

import (
	"reflect"
	"testing"

	"github.com/gorunn/rtval"
)

func personProps() map[string]rtval.Validator[any] {
	return map[string]rtval.Validator[any]{
		"name": rtval.AsAny(rtval.String()),
		"age":  rtval.AsAny(rtval.Number()),
	}
}

func TestObject_IgnoresExtraKeys(t *testing.T) {
	o := rtval.Object(personProps())
	v := map[string]any{"name": "Ada", "age": 30.0, "extra": true}
	r := rtval.Validate(v, o)
	if !rtval.IsOk(r) {
		t.Fatalf("expected success, got %v", rtval.FromErr(r))
	}
	got, _ := rtval.FromOk(r).(map[string]any)
	if reflect.ValueOf(got).Pointer() != reflect.ValueOf(v).Pointer() {
		t.Fatalf("Object must return the exact input reference on success")
	}
}

func TestObject_CollectsAllPropertyErrors(t *testing.T) {
	o := rtval.Object(personProps())
	v := map[string]any{"name": 1.0, "age": "old"}
	r := rtval.Validate(v, o)
	errs := rtval.FromErr(r)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %+v", len(errs), errs)
	}
}

func TestObject_MissingKeyFailsViaChild(t *testing.T) {
	o := rtval.Object(personProps())
	v := map[string]any{"name": "Ada"}
	r := rtval.Validate(v, o)
	if rtval.IsOk(r) {
		t.Fatalf("expected rejection due to missing required 'age'")
	}
}

func TestObject_AnyAcceptsMissingKey(t *testing.T) {
	o := rtval.Object(map[string]rtval.Validator[any]{"x": rtval.Any()})
	if !rtval.Is[any](map[string]any{}, o) {
		t.Fatalf("Object({x: Any()}) must accept a value missing key x")
	}
}

func TestKeys(t *testing.T) {
	o := rtval.Object(personProps())
	k := rtval.Keys(o)
	if k.Name() != "$Keys<"+o.Name()+">" {
		t.Fatalf("Keys name = %q", k.Name())
	}
	if !rtval.Is[string]("name", k) {
		t.Fatalf("$keys should accept a declared property name")
	}
	if rtval.Is[string]("nope", k) {
		t.Fatalf("$keys should reject an undeclared name")
	}
}

func TestExact_RejectsExtraKeys(t *testing.T) {
	e := rtval.Exact(personProps())
	v := map[string]any{"name": "Ada", "age": 30.0, "surprise": true}
	r := rtval.Validate(v, e)
	errs := rtval.FromErr(r)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one extra-key error, got %d", len(errs))
	}
	if errs[0].Context[len(errs[0].Context)-1].Name != "nil" {
		t.Fatalf("extra-key error must be reported at type name 'nil'")
	}
}

func TestShape_MissingKeysAreNotErrorsExtraAre(t *testing.T) {
	base := rtval.Object(personProps())
	s := rtval.Shape(base)

	if !rtval.Is[any](map[string]any{"name": "Ada"}, s) {
		t.Fatalf("$shape should not require declared keys to be present")
	}
	if !rtval.Is[any](map[string]any{"age": 30.0}, s) {
		t.Fatalf("$shape should validate whichever declared keys are present")
	}
	if rtval.Is[any](map[string]any{"age": "not a number"}, s) {
		t.Fatalf("$shape should still validate present declared keys")
	}
	if rtval.Is[any](map[string]any{"extra": true}, s) {
		t.Fatalf("$shape should reject undeclared keys")
	}
}

func TestRecursion_Tree(t *testing.T) {
	var tree rtval.Validator[any]
	tree = rtval.Recursion("Tree", func(self rtval.Validator[any]) rtval.Validator[any] {
		return rtval.Object(map[string]rtval.Validator[any]{
			"value":    rtval.AsAny(rtval.Number()),
			"children": rtval.Array(self),
		})
	})

	good := map[string]any{
		"value": 1.0,
		"children": []any{
			map[string]any{"value": 2.0, "children": []any{}},
		},
	}
	if !rtval.Is[any](good, tree) {
		t.Fatalf("expected a valid tree to be accepted")
	}

	bad := map[string]any{
		"value": 1.0,
		"children": []any{
			map[string]any{"value": "x", "children": []any{}},
		},
	}
	r := rtval.Validate(bad, tree)
	errs := rtval.FromErr(r)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %+v", len(errs), errs)
	}
	wantSuffix := "children: Array<Tree>/0: Tree/value: number"
	path := errs[0].Context.Path()
	if got := path[len(path)-len(wantSuffix):]; got != wantSuffix {
		t.Fatalf("path = %q, want suffix %q", path, wantSuffix)
	}
	if tree.Name() != "Tree" {
		t.Fatalf("Recursion must back-patch the name to Tree, got %q", tree.Name())
	}
}
