package doccmp

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// MarshalJSON encodes v as JSON. Object keys keep their order. Undefined and
// non-finite numbers encode as null, since JSON has no way to spell them.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the compact JSON text of v, or "" when v is undefined.
func (v Value) String() string {
	if v.kind == KindUndefined {
		return ""
	}
	data, err := v.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(data)
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindUndefined, KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		if !isFinite(v.n) {
			buf.WriteString("null")
			return nil
		}
		data, err := json.Marshal(v.n)
		if err != nil {
			return err
		}
		buf.Write(data)
	case KindString:
		return writeJSONString(buf, v.s)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.arr.Items() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, key := range v.obj.orderedKeys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			field, _ := v.obj.Get(key)
			if err := writeJSON(buf, field); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	data, err := json.MarshalNoEscape(s)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}
