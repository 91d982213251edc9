package doccmp

import "strings"

// PathSeparator joins key segments into a field path.
const PathSeparator = "."

// JoinPath appends key to prefix. An empty prefix yields key unchanged.
func JoinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + PathSeparator + key
}

// SplitPath splits a field path into its key segments.
func SplitPath(path string) []string {
	return strings.Split(path, PathSeparator)
}

// Lookup resolves a dotted field path against doc.
//
// Each segment indexes the current value as an object. Once the current
// value is undefined, or is anything other than an object, the remaining
// segments are skipped and the result is undefined. Lookup never fails.
//
// Keys that themselves contain a dot cannot be addressed: "a.b" always
// means key "b" inside key "a".
func Lookup(doc Value, path string) Value {
	cur := doc
	for _, segment := range SplitPath(path) {
		if cur.kind == KindUndefined {
			return Value{}
		}
		obj, ok := cur.AsObject()
		if !ok {
			return Value{}
		}
		cur, _ = obj.Get(segment)
	}
	return cur
}
