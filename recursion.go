package rtval

// Recursion builds a self-referential validator. defineFn receives a
// placeholder that resolves to the fully built validator by late binding
// through an interior-mutable cell: the placeholder is safe to embed in
// child validators (e.g. inside an Array or Object built by defineFn)
// because it only reads the cell at Validate time, never at construction
// time, and the cell is filled before Recursion returns.
//
// The returned validator's Name is always name, whatever defineFn's result
// reports: it is a wrapper that reports name and delegates Validate to the
// built validator. Filling the cell is the one mutation, and it happens
// strictly during construction, never during a Validate call.
func Recursion[T any](name string, defineFn func(self Validator[T]) Validator[T]) Validator[T] {
	cell := &recursionCell[T]{name: name}
	self := recursionPlaceholder[T]{cell: cell}
	built := defineFn(self)
	cell.set(built)
	return recursionValidator[T]{cell: cell}
}

// recursionCell is the interior-mutable box a recursionPlaceholder reads
// from. It is filled exactly once, before any Validate call can observe it.
type recursionCell[T any] struct {
	name  string
	inner Validator[T]
}

func (c *recursionCell[T]) set(v Validator[T]) { c.inner = v }

// recursionPlaceholder is what defineFn's self parameter actually is: a
// non-owning handle that defers to the cell. Embedding this inside a child
// validator (e.g. Array(self)) is safe even though the cell isn't filled
// until after defineFn returns, because nothing calls Validate during
// construction.
type recursionPlaceholder[T any] struct {
	cell *recursionCell[T]
}

func (p recursionPlaceholder[T]) Name() string { return p.cell.name }
func (p recursionPlaceholder[T]) Kind() Kind   { return KindRecursion }
func (p recursionPlaceholder[T]) Validate(v any, ctx Context) Result[T] {
	Assert(p.cell.inner != nil, func() string {
		return "rtval.Recursion: self used before defineFn returned for " + p.cell.name
	})
	return p.cell.inner.Validate(v, ctx)
}

// recursionValidator is the validator Recursion actually returns: it reports
// the user-supplied name (per the back-patch) while delegating validation to
// whatever defineFn built.
type recursionValidator[T any] struct {
	cell *recursionCell[T]
}

func (r recursionValidator[T]) Name() string { return r.cell.name }
func (r recursionValidator[T]) Kind() Kind   { return KindRecursion }
func (r recursionValidator[T]) Validate(v any, ctx Context) Result[T] {
	return r.cell.inner.Validate(v, ctx)
}
