package doccmp

import (
	"fmt"
	"sort"
	"strconv"

	json "github.com/goccy/go-json"
)

// FromInterface converts native Go data, as produced by json.Unmarshal into
// an interface{}, into a Value.
//
// Go maps carry no order, so keys of map[string]interface{} are sorted to
// keep the result deterministic. Use *Object (or a decoder from this module)
// when source order matters.
func FromInterface(v interface{}) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case *Object:
		return ObjectOf(x), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int8:
		return Number(float64(x)), nil
	case int16:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint:
		return Number(float64(x)), nil
	case uint8:
		return Number(float64(x)), nil
	case uint16:
		return Number(float64(x)), nil
	case uint32:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case json.Number:
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", string(x), err)
		}
		return Number(f), nil
	case []interface{}:
		items := make([]Value, len(x))
		for i, item := range x {
			conv, err := FromInterface(item)
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			items[i] = conv
		}
		return Value{kind: KindArray, arr: &Array{items: items}}, nil
	case map[string]interface{}:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		obj := NewObject()
		for _, k := range keys {
			conv, err := FromInterface(x[k])
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", k, err)
			}
			obj.Set(k, conv)
		}
		return ObjectOf(obj), nil
	default:
		return Value{}, fmt.Errorf("unsupported type %T", v)
	}
}

// MustFromInterface is like FromInterface but panics on error. It is meant
// for literals in tests and examples.
func MustFromInterface(v interface{}) Value {
	conv, err := FromInterface(v)
	if err != nil {
		panic("doccmp.MustFromInterface: " + err.Error())
	}
	return conv
}

// Interface converts v back to native Go data: nil, bool, float64, string,
// []interface{} or map[string]interface{}. Undefined converts to nil.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindArray:
		out := make([]interface{}, v.arr.Len())
		for i, item := range v.arr.Items() {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]interface{}, v.obj.Len())
		for _, key := range v.obj.orderedKeys() {
			field, _ := v.obj.Get(key)
			out[key] = field.Interface()
		}
		return out
	default:
		return nil
	}
}
