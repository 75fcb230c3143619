package decode_test

import (
	"testing"

	"github.com/gorunn/rtval/internal/decode"
)

func TestDocument_DecodesObject(t *testing.T) {
	v, err := decode.Document([]byte(`{"name":"Ada","age":30,"tags":["x","y"]}`))
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any, got %T", v)
	}
	age, ok := m["age"].(float64)
	if !ok || age != 30 {
		t.Fatalf("expected age to normalize to float64(30), got %#v", m["age"])
	}
	tags, ok := m["tags"].([]any)
	if !ok || len(tags) != 2 {
		t.Fatalf("expected tags to decode as a 2-element slice, got %#v", m["tags"])
	}
}

func TestDocument_RejectsMalformedInput(t *testing.T) {
	if _, err := decode.Document([]byte(`{not json`)); err == nil {
		t.Fatalf("expected an error for malformed input")
	}
}

func TestDriverName(t *testing.T) {
	if decode.DriverName() == "" {
		t.Fatalf("expected a non-empty driver name")
	}
}
