package doccmp

import (
	"fmt"
	"math"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindUndefined is the zero Kind. It marks an absent value: a key that
	// does not exist or a path that cannot be resolved. It never appears
	// inside a decoded document.
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Value is a document node: null, bool, number, string, array or object.
// The zero Value is undefined.
//
// Arrays and objects are held by reference. Copying a Value shares the
// underlying container, which is what StrictEqual relies on.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  *Array
	obj  *Object
}

// Array is an ordered list of values. The engine treats arrays as opaque
// leaves; they are never walked.
type Array struct {
	items []Value
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// At returns the i-th element, or undefined when i is out of range.
func (a *Array) At(i int) Value {
	if a == nil || i < 0 || i >= len(a.items) {
		return Value{}
	}
	return a.items[i]
}

// Items returns the elements. The returned slice must not be modified.
func (a *Array) Items() []Value {
	if a == nil {
		return nil
	}
	return a.items
}

// Undefined returns the absent value.
func Undefined() Value { return Value{} }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a number.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// ArrayOf builds a new array value holding items.
func ArrayOf(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindArray, arr: &Array{items: cp}}
}

// ObjectOf wraps o. A nil o yields a new empty object.
func ObjectOf(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: KindObject, obj: o}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsUndefined reports whether v is the absent value.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsObject reports whether v is a nested object. Null is not an object.
func (v Value) IsObject() bool { return v.kind == KindObject }

// AsBool returns the boolean held by v and whether v is of that kind.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the number held by v and whether v is of that kind.
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

// AsString returns the string held by v and whether v is of that kind.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsArray returns the array held by v and whether v is of that kind.
func (v Value) AsArray() (*Array, bool) { return v.arr, v.kind == KindArray }

// AsObject returns the object held by v and whether v is of that kind.
func (v Value) AsObject() (*Object, bool) { return v.obj, v.kind == KindObject }

// StrictEqual reports whether a and b are the same kind and the same value.
//
// Scalars compare by value; numbers follow IEEE 754, so NaN is never equal to
// itself and 0 equals -0. Arrays and objects compare by identity: two
// containers with equal contents are not strictly equal unless they are the
// same container.
func StrictEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindUndefined, KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return a.s == b.s
	case KindArray:
		return a.arr == b.arr
	case KindObject:
		return a.obj == b.obj
	}
	return false
}

// isFinite reports whether n can be written as a JSON number.
func isFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}
