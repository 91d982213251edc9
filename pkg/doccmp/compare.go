package doccmp

// Compare walks left and right and returns one Result per leaf field path.
//
// Keys of left are visited depth-first in insertion order. Nested objects on
// the left are descended into; when the right side has no object at the same
// key, the descent continues against an empty object, so every leaf beneath
// is still reported individually. Each left leaf is judged by cfg.Resolve,
// invoked with the full left and right documents.
//
// After a level's left keys are exhausted, keys present only on the right are
// appended as Missing. Right-only objects are not descended into: the whole
// subtree is one Missing result.
//
// A root that is not an object is treated as an empty object.
func Compare(left, right Value, cfg Config) []Result {
	w := &walker{left: left, right: right, cfg: cfg}
	w.visit(objectOrEmpty(left), objectOrEmpty(right), "")
	return w.results
}

type walker struct {
	left, right Value
	cfg         Config
	results     []Result
}

func (w *walker) visit(objLeft, objRight *Object, prefix string) {
	for _, key := range objLeft.orderedKeys() {
		fullPath := JoinPath(prefix, key)
		v1, _ := objLeft.Get(key)
		v2, _ := objRight.Get(key)

		if nested, ok := v1.AsObject(); ok {
			w.visit(nested, objectOrEmpty(v2), fullPath)
			continue
		}

		outcome := Mismatch
		if w.cfg.Resolve(fullPath).Evaluate(w.left, w.right) {
			outcome = Match
		}
		w.results = append(w.results, Result{
			Key:     fullPath,
			Value1:  v1,
			Value2:  v2,
			Outcome: outcome,
		})
	}

	for _, key := range objRight.orderedKeys() {
		if objLeft.Has(key) {
			continue
		}
		v2, _ := objRight.Get(key)
		w.results = append(w.results, Result{
			Key:     JoinPath(prefix, key),
			Value1:  String(Placeholder),
			Value2:  v2,
			Outcome: Missing,
		})
	}
}

// objectOrEmpty returns the object held by v, or nil (an empty object) for
// any other kind.
func objectOrEmpty(v Value) *Object {
	obj, _ := v.AsObject()
	return obj
}
