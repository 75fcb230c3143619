// Package shapefile loads a validator tree declared in YAML into an
// rtval.Validator[any], the way reoring/goskema's config-manager sample
// loads a YAML config into a typed struct before building DSL validators
// from it — here the YAML *is* the validator declaration.
package shapefile

import (
	"fmt"

	"github.com/gorunn/rtval"
	"gopkg.in/yaml.v3"
)

// Node is one entry in a shape file. Type selects the constructor; the
// remaining fields are interpreted according to Type.
type Node struct {
	Type      string          `yaml:"type"`
	Name      string          `yaml:"name,omitempty"`
	Props     map[string]Node `yaml:"props,omitempty"`
	Of        []Node          `yaml:"of,omitempty"`
	Predicate string          `yaml:"predicate,omitempty"`
	Value     any             `yaml:"value,omitempty"`
}

// Load parses YAML bytes into a Node tree.
func Load(data []byte) (Node, error) {
	var n Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return Node{}, fmt.Errorf("shapefile: parse: %w", err)
	}
	return n, nil
}

// Build compiles a Node tree into a Validator[any].
func Build(n Node) (rtval.Validator[any], error) {
	switch n.Type {
	case "", "any":
		return rtval.Any(), nil
	case "nil":
		return rtval.Nil(), nil
	case "string":
		return rtval.AsAny(rtval.String()), nil
	case "number":
		return rtval.AsAny(rtval.Number()), nil
	case "boolean":
		return rtval.AsAny(rtval.Boolean()), nil
	case "arr":
		return rtval.Arr(), nil
	case "obj":
		return rtval.Obj(), nil
	case "fun":
		return rtval.Fun(), nil
	case "literal":
		return literalOf(n.Value)
	case "array":
		if len(n.Of) != 1 {
			return nil, fmt.Errorf("shapefile: array node requires exactly one 'of' entry")
		}
		elem, err := Build(n.Of[0])
		if err != nil {
			return nil, err
		}
		return rtval.Array(elem), nil
	case "maybe":
		if len(n.Of) != 1 {
			return nil, fmt.Errorf("shapefile: maybe node requires exactly one 'of' entry")
		}
		inner, err := Build(n.Of[0])
		if err != nil {
			return nil, err
		}
		return rtval.Maybe(inner), nil
	case "union":
		branches, err := buildAll(n.Of)
		if err != nil {
			return nil, err
		}
		return rtval.Union(branches), nil
	case "tuple":
		branches, err := buildAll(n.Of)
		if err != nil {
			return nil, err
		}
		return rtval.Tuple(branches), nil
	case "intersection":
		branches, err := buildAll(n.Of)
		if err != nil {
			return nil, err
		}
		return rtval.Intersection(branches), nil
	case "refinement":
		if len(n.Of) != 1 {
			return nil, fmt.Errorf("shapefile: refinement node requires exactly one 'of' entry")
		}
		inner, err := Build(n.Of[0])
		if err != nil {
			return nil, err
		}
		pred, ok := Predicates[n.Predicate]
		if !ok {
			return nil, fmt.Errorf("shapefile: unknown predicate %q", n.Predicate)
		}
		return rtval.Refinement(inner, pred), nil
	case "object":
		props, err := buildProps(n.Props)
		if err != nil {
			return nil, err
		}
		return rtval.Object(props), nil
	case "exact":
		props, err := buildProps(n.Props)
		if err != nil {
			return nil, err
		}
		return rtval.Exact(props), nil
	case "shape":
		base, err := buildProps(n.Props)
		if err != nil {
			return nil, err
		}
		return rtval.Shape(rtval.Object(base)), nil
	default:
		return nil, fmt.Errorf("shapefile: unknown node type %q", n.Type)
	}
}

func buildAll(nodes []Node) ([]rtval.Validator[any], error) {
	out := make([]rtval.Validator[any], len(nodes))
	for i, n := range nodes {
		v, err := Build(n)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func buildProps(props map[string]Node) (map[string]rtval.Validator[any], error) {
	out := make(map[string]rtval.Validator[any], len(props))
	for k, n := range props {
		v, err := Build(n)
		if err != nil {
			return nil, fmt.Errorf("shapefile: prop %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

func literalOf(value any) (rtval.Validator[any], error) {
	switch v := value.(type) {
	case string:
		return rtval.AsAny(rtval.Literal(v)), nil
	case float64:
		return rtval.AsAny(rtval.Literal(v)), nil
	case int:
		return rtval.AsAny(rtval.Literal(float64(v))), nil
	case bool:
		return rtval.AsAny(rtval.Literal(v)), nil
	default:
		return nil, fmt.Errorf("shapefile: literal value must be string, number, or boolean, got %T", value)
	}
}

// Predicates is the built-in registry of named refinement predicates
// available to "refinement" nodes in a shape file. Callers may extend it
// before calling Build.
var Predicates = map[string]func(any) bool{
	"nonempty": func(v any) bool {
		s, ok := v.(string)
		return ok && len(s) > 0
	},
	"positive": func(v any) bool {
		n, ok := v.(float64)
		return ok && n > 0
	},
	"nonnegative": func(v any) bool {
		n, ok := v.(float64)
		return ok && n >= 0
	},
}
