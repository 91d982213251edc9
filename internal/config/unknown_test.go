package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_UnknownRootField(t *testing.T) {
	t.Parallel()

	cfg, warnings, err := Parse([]byte("comment: hi\nrules:\n  a: {type: ignore}\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cfg.Rules) != 1 {
		t.Errorf("len(Rules) = %d, want 1", len(cfg.Rules))
	}

	want := []string{`unknown field "comment" at root level (ignored)`}
	if diff := cmp.Diff(want, warnings); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SchemaFieldIgnored(t *testing.T) {
	t.Parallel()

	data := []byte(`{"$schema": "./rules.schema.json", "rules": {}}`)
	_, warnings, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	for _, w := range warnings {
		if strings.Contains(w, "$schema") {
			t.Errorf("$schema should not produce warning, got: %s", w)
		}
	}
}

func TestParse_UnknownRuleFields(t *testing.T) {
	t.Parallel()

	data := []byte(`
rules:
  b:
    type: equal
    note: x
  a:
    type: equal
    zeta: 1
    alpha: 2
`)
	_, warnings, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{
		`unknown field "alpha" in rule "a" (ignored)`,
		`unknown field "zeta" in rule "a" (ignored)`,
		`unknown field "note" in rule "b" (ignored)`,
	}
	if diff := cmp.Diff(want, warnings); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestGetJSONFields(t *testing.T) {
	t.Parallel()

	fields := getJSONFields(reflect.TypeOf(Rule{}))
	for _, name := range []string{"type", "left_path", "right_path", "path", "paths", "separator", "tolerance", "mode", "nan_equals_nan", "pattern"} {
		if !fields[name] {
			t.Errorf("getJSONFields(Rule) missing %q", name)
		}
	}
	if len(fields) != 10 {
		t.Errorf("len(getJSONFields(Rule)) = %d, want 10", len(fields))
	}
}

func TestParse_UnknownFieldSuggestions(t *testing.T) {
	t.Parallel()

	data := []byte(`
rulez: {}
rules:
  item10:
    type: numeric
    tolerence: 0.1
  item2:
    type: concat
    paths: [a, b]
    seperator: "-"
`)
	_, warnings, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{
		`unknown field "rulez" at root level (ignored; did you mean "rules"?)`,
		`unknown field "seperator" in rule "item2" (ignored; did you mean "separator"?)`,
		`unknown field "tolerence" in rule "item10" (ignored; did you mean "tolerance"?)`,
	}
	if diff := cmp.Diff(want, warnings); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	known := map[string]bool{"mode": true, "path": true, "pattern": true}
	tests := map[string]string{
		"patern":  "pattern",
		"pathh":   "path",
		"note":    "",
		"comment": "",
		"x":       "",
	}
	for key, want := range tests {
		if got := suggest(key, known); got != want {
			t.Errorf("suggest(%q) = %q, want %q", key, got, want)
		}
	}
}
