package doccmp

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// obj builds an object value from alternating keys and values, keeping the
// argument order. Values that are not already Values go through
// MustFromInterface.
func obj(kv ...interface{}) Value {
	if len(kv)%2 != 0 {
		panic("obj: odd number of arguments")
	}
	o := NewObject()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("obj: key %v is not a string", kv[i]))
		}
		o.Set(key, MustFromInterface(kv[i+1]))
	}
	return ObjectOf(o)
}

// valueCmp compares Values by kind and JSON text so expectations can be
// written with fresh containers.
var valueCmp = cmp.Comparer(func(a, b Value) bool {
	return a.Kind() == b.Kind() && a.String() == b.String()
})
