// Package decode turns raw document bytes into the plain
// any/map[string]any/[]any/float64/string/bool/nil shapes that rtval's
// validators operate on. The concrete unmarshaler is selected at compile
// time by build tag, the way reoring/goskema's source/gojson package
// swaps its token reader for github.com/goccy/go-json behind a "gojson"
// tag while leaving the default encoding/json path untouched.
package decode

import "fmt"

// Driver unmarshals a JSON document into Go's untyped representation.
type Driver interface {
	// Unmarshal decodes data into a document value: map[string]any,
	// []any, string, float64, bool, or nil at the root.
	Unmarshal(data []byte) (any, error)
	// Name identifies the driver, for diagnostics.
	Name() string
}

// Document decodes data with the active driver (see driver_default.go and
// driver_fastjson.go).
func Document(data []byte) (any, error) {
	v, err := activeDriver.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("decode: %s: %w", activeDriver.Name(), err)
	}
	return v, nil
}

// DriverName reports which driver is compiled into the binary.
func DriverName() string { return activeDriver.Name() }

// normalizeNumbers walks a decoded document replacing json.Number leaves
// with float64, so every driver hands rtval.Number() the same
// representation regardless of which decoder produced the tree.
func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = normalizeNumbers(e)
		}
		return t
	case interface{ Float64() (float64, error) }:
		f, err := t.Float64()
		if err != nil {
			return v
		}
		return f
	default:
		return v
	}
}
