package rtval

import "strings"

// ContextEntry names one step on the path from the root value to the
// location currently being validated.
type ContextEntry struct {
	Key  string // "" at the root, otherwise a property key or array index.
	Name string // the name of the validator responsible for this step.
}

// Context is an ordered path of ContextEntry values. It is never mutated in
// place: descending into a child appends to a fresh copy, so sibling
// branches never observe each other's extensions.
type Context []ContextEntry

// GetContextEntry builds a single ContextEntry for the given key and type
// name.
func GetContextEntry(key, name string) ContextEntry {
	return ContextEntry{Key: key, Name: name}
}

// GetDefaultContext seeds a Context for a top-level validation of the given
// root validator.
func GetDefaultContext(name string) Context {
	return Context{{Key: "", Name: name}}
}

// Push returns a new Context with one entry appended, leaving c untouched.
func (c Context) Push(key, name string) Context {
	next := make(Context, len(c), len(c)+1)
	copy(next, c)
	return append(next, ContextEntry{Key: key, Name: name})
}

// Path renders the context the way the reporter contract requires:
// "key0: name0/key1: name1/...".
func (c Context) Path() string {
	b := &strings.Builder{}
	for i, e := range c {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(e.Key)
		b.WriteString(": ")
		b.WriteString(e.Name)
	}
	return b.String()
}

// GetTypeName returns the Name of a Validator, a small convenience for
// combinators that only need the name and not the full value.
func GetTypeName[T any](v Validator[T]) string { return v.Name() }
