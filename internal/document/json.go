package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/AndreyAkinshin/doccmp/pkg/doccmp"
)

// decodeJSON reads exactly one JSON value from r.
//
// The token stream is walked directly instead of unmarshaling into a map so
// that object keys keep their source order. A repeated key keeps the position
// of its first occurrence and the value of its last.
//
// The decoder's token stream does not check separators, so the whole input
// is validated before it is walked.
func decodeJSON(r io.Reader) (doccmp.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return doccmp.Value{}, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return doccmp.Value{}, fmt.Errorf("empty document")
	}
	if !json.Valid(data) {
		return doccmp.Value{}, syntaxError(data)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return doccmp.Value{}, fmt.Errorf("empty document")
		}
		return doccmp.Value{}, err
	}

	v, err := jsonValue(dec, tok)
	if err != nil {
		return doccmp.Value{}, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return doccmp.Value{}, err
		}
		return doccmp.Value{}, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

func jsonValue(dec *json.Decoder, tok interface{}) (doccmp.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		}
		return doccmp.Value{}, fmt.Errorf("unexpected delimiter %q", rune(t))
	case string:
		return doccmp.String(t), nil
	case bool:
		return doccmp.Bool(t), nil
	case json.Number:
		return jsonNumber(string(t))
	case float64:
		return doccmp.Number(t), nil
	case nil:
		return doccmp.Null(), nil
	default:
		return doccmp.Value{}, fmt.Errorf("unexpected token %v (%T)", tok, tok)
	}
}

func jsonObject(dec *json.Decoder) (doccmp.Value, error) {
	obj := doccmp.NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return doccmp.Value{}, unexpectedEOF(err)
		}
		key, ok := tok.(string)
		if !ok {
			return doccmp.Value{}, fmt.Errorf("expected object key, got %v", tok)
		}
		next, err := dec.Token()
		if err != nil {
			return doccmp.Value{}, unexpectedEOF(err)
		}
		v, err := jsonValue(dec, next)
		if err != nil {
			return doccmp.Value{}, fmt.Errorf("%s: %w", key, err)
		}
		obj.Set(key, v)
	}
	if err := closing(dec, '}'); err != nil {
		return doccmp.Value{}, err
	}
	return doccmp.ObjectOf(obj), nil
}

func jsonArray(dec *json.Decoder) (doccmp.Value, error) {
	var items []doccmp.Value
	for i := 0; dec.More(); i++ {
		tok, err := dec.Token()
		if err != nil {
			return doccmp.Value{}, unexpectedEOF(err)
		}
		v, err := jsonValue(dec, tok)
		if err != nil {
			return doccmp.Value{}, fmt.Errorf("[%d]: %w", i, err)
		}
		items = append(items, v)
	}
	if err := closing(dec, ']'); err != nil {
		return doccmp.Value{}, err
	}
	return doccmp.ArrayOf(items...), nil
}

func closing(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return unexpectedEOF(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", rune(want), tok)
	}
	return nil
}

// jsonNumber parses a number literal. Literals beyond float64 range become
// infinities, as they would in a JavaScript runtime.
func jsonNumber(lit string) (doccmp.Value, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return doccmp.Value{}, fmt.Errorf("invalid number %q: %w", lit, err)
	}
	return doccmp.Number(f), nil
}

// syntaxError describes why data is not valid JSON, falling back to a
// generic message when the decoder gives no detail.
func syntaxError(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return errors.New("invalid JSON syntax")
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
