package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// toJSON decodes a YAML or JSON rules file and re-encodes it as JSON. It
// also returns the generic decoded form for unknown-field detection.
func toJSON(data []byte) ([]byte, map[string]interface{}, error) {
	var v interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, nil, err
	}
	if v == nil {
		return nil, nil, errors.New("rules file is empty")
	}

	v, err := normalize(v, "")
	if err != nil {
		return nil, nil, err
	}

	out, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}

	raw, _ := v.(map[string]interface{})
	return out, raw, nil
}

// normalize converts YAML-decoded maps to map[string]interface{} so the
// result can be encoded as JSON.
func normalize(v interface{}, at string) (interface{}, error) {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, e := range t {
			n, err := normalize(e, k)
			if err != nil {
				return nil, err
			}
			t[k] = n
		}
		return t, nil
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("key %v under %q must be a string", k, at)
			}
			n, err := normalize(e, key)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []interface{}:
		for i, e := range t {
			n, err := normalize(e, at)
			if err != nil {
				return nil, err
			}
			t[i] = n
		}
		return t, nil
	default:
		return v, nil
	}
}
