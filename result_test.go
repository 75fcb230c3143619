package rtval_test

import (
	"testing"

	"github.com/gorunn/rtval"
)

func TestResult_OkErr(t *testing.T) {
	ok := rtval.Ok(42)
	if !rtval.IsOk(ok) || rtval.IsErr(ok) {
		t.Fatalf("expected Ok result")
	}
	if got := rtval.FromOk(ok); got != 42 {
		t.Fatalf("FromOk = %d, want 42", got)
	}

	bad := rtval.Err[int](nil)
	if !rtval.IsErr(bad) {
		t.Fatalf("expected Err result even with nil input errors")
	}
	if len(rtval.FromErr(bad)) == 0 {
		t.Fatalf("expected a non-empty error list")
	}
}

func TestResult_FromOkOnErrCrashes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected FromOk on an Err result to panic")
		}
	}()
	r := rtval.Err[int](rtval.Errors{{Description: "boom"}})
	rtval.FromOk(r)
}

func TestResult_FromErrOnOkCrashes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected FromErr on an Ok result to panic")
		}
	}()
	rtval.FromErr(rtval.Ok(1))
}

func TestResult_MapChainAp(t *testing.T) {
	r := rtval.Map(rtval.Ok(2), func(n int) int { return n * 10 })
	if rtval.FromOk(r) != 20 {
		t.Fatalf("Map did not transform success value")
	}

	errRes := rtval.Err[int](rtval.Errors{{Description: "x"}})
	mapped := rtval.Map(errRes, func(n int) int { return n * 10 })
	if !rtval.IsErr(mapped) {
		t.Fatalf("Map must pass through failures untouched")
	}

	chained := rtval.Chain(rtval.Ok(3), func(n int) rtval.Result[string] {
		if n > 0 {
			return rtval.Ok("positive")
		}
		return rtval.Err[string](rtval.Errors{{Description: "neg"}})
	})
	if rtval.FromOk(chained) != "positive" {
		t.Fatalf("Chain did not sequence correctly")
	}

	fn := rtval.Ok(func(n int) int { return n + 1 })
	applied := rtval.Ap(rtval.Ok(41), fn)
	if rtval.FromOk(applied) != 42 {
		t.Fatalf("Ap did not apply the wrapped function")
	}
}

func TestResult_FoldUnwrapOr(t *testing.T) {
	ok := rtval.Ok(5)
	got := rtval.Fold(ok, func(rtval.Errors) string { return "err" }, func(int) string { return "ok" })
	if got != "ok" {
		t.Fatalf("Fold on success = %q, want ok", got)
	}

	bad := rtval.Err[int](rtval.Errors{{Description: "boom"}})
	if rtval.UnwrapOr(bad, 99) != 99 {
		t.Fatalf("UnwrapOr should return fallback on failure")
	}
}
