//go:build fastjson

package decode

import (
	"bytes"

	j "github.com/goccy/go-json"
)

var activeDriver Driver = goJSONDriver{}

type goJSONDriver struct{}

func (goJSONDriver) Name() string { return "go-json" }

func (goJSONDriver) Unmarshal(data []byte) (any, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return normalizeNumbers(v), nil
}
