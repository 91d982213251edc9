package doccmp

// Comparator decides whether a field matches.
//
// Evaluate receives the two complete top-level documents, not the leaf
// values at the field being checked, so a comparator registered for one path
// may read any other path (a renamed field, or several fields combined).
// Comparators must not modify the documents. A panic inside Evaluate is not
// recovered by Compare.
type Comparator interface {
	Evaluate(left, right Value) bool
}

// ComparatorFunc adapts an ordinary function to the Comparator interface.
type ComparatorFunc func(left, right Value) bool

// Evaluate calls f(left, right).
func (f ComparatorFunc) Evaluate(left, right Value) bool {
	return f(left, right)
}

// DefaultComparator looks Path up in both documents and reports whether the
// two values are strictly equal.
type DefaultComparator struct {
	Path string
}

// Evaluate implements Comparator.
func (c DefaultComparator) Evaluate(left, right Value) bool {
	return StrictEqual(Lookup(left, c.Path), Lookup(right, c.Path))
}

// Default returns the comparator used for path when Config has no override.
func Default(path string) Comparator {
	return DefaultComparator{Path: path}
}

// Config maps field paths to comparator overrides. Paths without an entry,
// or with a nil entry, use Default.
type Config map[string]Comparator

// Resolve returns the override registered for path, or Default(path).
func (c Config) Resolve(path string) Comparator {
	if cmp, ok := c[path]; ok && cmp != nil {
		return cmp
	}
	return Default(path)
}
