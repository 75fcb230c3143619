//go:build !fastjson

package decode

import (
	"bytes"
	"encoding/json"
)

var activeDriver Driver = stdlibDriver{}

type stdlibDriver struct{}

func (stdlibDriver) Name() string { return "encoding/json" }

func (stdlibDriver) Unmarshal(data []byte) (any, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return normalizeNumbers(v), nil
}
