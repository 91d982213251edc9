// Package rules provides the built-in comparators that a rules file can
// assign to field paths.
//
// Every comparator reads the values it needs from the two complete documents
// by path, so a rule registered for one field may inspect any other field.
package rules

import (
	"regexp"
	"strings"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/cases"

	"github.com/AndreyAkinshin/doccmp/pkg/doccmp"
)

// Equal reports strict equality between the left value at LeftPath and the
// right value at RightPath. With both paths equal it behaves exactly like
// the default comparator; with different paths it handles renamed fields.
type Equal struct {
	LeftPath  string
	RightPath string
}

func (r Equal) Evaluate(left, right doccmp.Value) bool {
	return doccmp.StrictEqual(doccmp.Lookup(left, r.LeftPath), doccmp.Lookup(right, r.RightPath))
}

// Ignore always matches.
type Ignore struct{}

func (Ignore) Evaluate(_, _ doccmp.Value) bool { return true }

// Deep reports structural equality of the two values. Arrays and objects
// compare by content; object key order is irrelevant.
type Deep struct {
	LeftPath  string
	RightPath string
}

func (r Deep) Evaluate(left, right doccmp.Value) bool {
	return deepEqual(doccmp.Lookup(left, r.LeftPath), doccmp.Lookup(right, r.RightPath))
}

func deepEqual(a, b doccmp.Value) bool {
	if a.IsUndefined() || b.IsUndefined() {
		return a.IsUndefined() && b.IsUndefined()
	}
	return cmp.Equal(a.Interface(), b.Interface())
}

// Fold reports whether two strings are equal under Unicode case folding.
// Non-string values fall back to strict equality.
type Fold struct {
	LeftPath  string
	RightPath string
}

func (r Fold) Evaluate(left, right doccmp.Value) bool {
	a := doccmp.Lookup(left, r.LeftPath)
	b := doccmp.Lookup(right, r.RightPath)
	as, aok := a.AsString()
	bs, bok := b.AsString()
	if !aok || !bok {
		return doccmp.StrictEqual(a, b)
	}
	return cases.Fold().String(as) == cases.Fold().String(bs)
}

// Concat checks a left string against several right values joined by
// Separator, e.g. "name" against "firstName" + " " + "lastName".
//
// String parts are used verbatim; other parts use their JSON text. Any
// absent part, or a non-string left value, fails the match.
type Concat struct {
	LeftPath   string
	RightPaths []string
	Separator  string
}

func (r Concat) Evaluate(left, right doccmp.Value) bool {
	want, ok := doccmp.Lookup(left, r.LeftPath).AsString()
	if !ok {
		return false
	}
	parts := make([]string, 0, len(r.RightPaths))
	for _, p := range r.RightPaths {
		v := doccmp.Lookup(right, p)
		if v.IsUndefined() {
			return false
		}
		if s, ok := v.AsString(); ok {
			parts = append(parts, s)
		} else {
			parts = append(parts, v.String())
		}
	}
	return want == strings.Join(parts, r.Separator)
}

// Unordered compares two arrays as multisets: every left element must pair
// with a distinct, structurally equal right element. Values that are not
// both arrays are compared with Deep.
type Unordered struct {
	LeftPath  string
	RightPath string
}

func (r Unordered) Evaluate(left, right doccmp.Value) bool {
	a := doccmp.Lookup(left, r.LeftPath)
	b := doccmp.Lookup(right, r.RightPath)
	aa, aok := a.AsArray()
	ba, bok := b.AsArray()
	if !aok || !bok {
		return deepEqual(a, b)
	}
	if aa.Len() != ba.Len() {
		return false
	}

	matched := make([]bool, ba.Len())
	for _, exp := range aa.Items() {
		found := false
		for j, act := range ba.Items() {
			if matched[j] {
				continue
			}
			if deepEqual(exp, act) {
				matched[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Regex matches when the right value at RightPath is a string matching
// Pattern. The left document is not consulted.
type Regex struct {
	RightPath string
	Pattern   *regexp.Regexp
}

func (r Regex) Evaluate(_, right doccmp.Value) bool {
	s, ok := doccmp.Lookup(right, r.RightPath).AsString()
	return ok && r.Pattern != nil && r.Pattern.MatchString(s)
}
