// Package doccmp compares two structured documents field by field.
//
// Documents are trees of Values: objects (ordered string-keyed mappings),
// arrays, strings, numbers, booleans and null. Compare walks both trees and
// reports, for every leaf field path, whether the field matched, mismatched,
// or exists only on the right-hand side.
//
// Field paths are dot-joined key sequences such as "address.city". Arrays are
// leaves; the walk never indexes into them.
//
// Equality is strict by default (see StrictEqual). A Config can override the
// check for individual paths with any Comparator. Overrides receive both
// complete documents, which lets one rule compare a field against a renamed
// or composed counterpart:
//
//	cfg := doccmp.Config{
//		"name": doccmp.ComparatorFunc(func(left, right doccmp.Value) bool {
//			first, _ := doccmp.Lookup(right, "firstName").AsString()
//			last, _ := doccmp.Lookup(right, "lastName").AsString()
//			name, _ := doccmp.Lookup(left, "name").AsString()
//			return name == first+" "+last
//		}),
//	}
//	results := doccmp.Compare(left, right, cfg)
//
// Compare is a pure function: it performs no I/O, keeps no state between
// calls and never modifies its inputs.
package doccmp
