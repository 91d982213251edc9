package schema

import (
	"strings"
	"testing"
)

func TestValidateRules_Valid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"empty":    `{}`,
		"no rules": `{"rules": {}}`,
		"concat":   `{"rules": {"name": {"type": "concat", "paths": ["firstName", "lastName"], "separator": " "}}}`,
		"numeric":  `{"rules": {"price": {"type": "numeric", "tolerance": 0.01, "mode": "absolute", "nan_equals_nan": true}}}`,
		"path":     `{"rules": {"address.city": {"type": "path", "path": "city"}}}`,
		"regex":    `{"rules": {"id": {"type": "regex", "pattern": "^u-"}}}`,
		"schema":   `{"$schema": "./rules.schema.json", "rules": {"x": {"type": "ignore"}}}`,
		"extra":    `{"rules": {"x": {"type": "ignore", "note": "kept as warning"}}, "comment": "hi"}`,
	}

	for name, data := range tests {
		data := data
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateRules([]byte(data)); err != nil {
				t.Errorf("ValidateRules() error = %v", err)
			}
		})
	}
}

func TestValidateRules_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"root array":       `[]`,
		"rules not object": `{"rules": []}`,
		"missing type":     `{"rules": {"x": {}}}`,
		"unknown type":     `{"rules": {"x": {"type": "fuzzy"}}}`,
		"bad mode":         `{"rules": {"x": {"type": "numeric", "mode": "loose"}}}`,
		"negative tol":     `{"rules": {"x": {"type": "numeric", "tolerance": -1}}}`,
		"paths not array":  `{"rules": {"x": {"type": "concat", "paths": "a"}}}`,
		"empty key":        `{"rules": {"": {"type": "ignore"}}}`,
		"empty path":       `{"rules": {"x": {"type": "path", "path": ""}}}`,
	}

	for name, data := range tests {
		data := data
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := ValidateRules([]byte(data))
			if err == nil {
				t.Fatal("ValidateRules() error = nil, want error")
			}
			if !strings.Contains(err.Error(), "rules validation failed") {
				t.Errorf("error = %v, want rules validation failure", err)
			}
		})
	}
}

func TestValidateRules_MalformedJSON(t *testing.T) {
	t.Parallel()

	err := ValidateRules([]byte(`{"rules": `))
	if err == nil || !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("ValidateRules() error = %v, want invalid JSON", err)
	}
}

func TestRulesSchema(t *testing.T) {
	t.Parallel()

	data, err := RulesSchema()
	if err != nil {
		t.Fatalf("RulesSchema() error = %v", err)
	}
	if !strings.Contains(string(data), `"rules"`) {
		t.Error("RulesSchema() does not describe rules")
	}
}
