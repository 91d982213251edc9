package doccmp

// Object is a string-keyed mapping that remembers insertion order.
//
// Iteration order is the order in which keys were first set, which for
// decoded documents is the order keys appear in the source text. A nil
// *Object behaves as an empty object for reads.
type Object struct {
	keys   []string
	fields map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{fields: map[string]Value{}}
}

// Set stores v under key. Setting an existing key replaces its value but
// keeps its original position.
func (o *Object) Set(key string, v Value) *Object {
	if o.fields == nil {
		o.fields = map[string]Value{}
	}
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = v
	return o
}

// Get returns the value stored under key and whether it exists.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	v, ok := o.fields[key]
	return v, ok
}

// Has reports whether key exists.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns a copy of the keys in iteration order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// orderedKeys exposes the backing slice for read-only iteration.
func (o *Object) orderedKeys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}
