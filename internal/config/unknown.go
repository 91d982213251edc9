package config

import (
	"fmt"
	"reflect"
	"strings"

	"facette.io/natsort"
	"github.com/agnivade/levenshtein"
	"github.com/goccy/go-json"
)

// maxSuggestDistance bounds the edit distance of a "did you mean" hint.
const maxSuggestDistance = 2

// LoadWithWarnings decodes JSON rules data and returns any unknown field
// warnings. raw is the generic form of the same data.
func LoadWithWarnings(data []byte, raw map[string]interface{}) (*Config, []string, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, detectUnknownFields(raw), nil
}

// detectUnknownFields compares the decoded file with known struct fields.
func detectUnknownFields(raw map[string]interface{}) []string {
	var warnings []string

	knownTopLevel := getJSONFields(reflect.TypeOf(Config{}))
	for _, key := range sortedKeys(raw) {
		if key == "$schema" {
			continue // $schema is explicitly allowed and ignored
		}
		if !knownTopLevel[key] {
			warnings = append(warnings, unknownFieldWarning(key, "at root level", knownTopLevel))
		}
	}

	if rules, ok := raw["rules"].(map[string]interface{}); ok {
		warnings = append(warnings, checkRulesUnknownFields(rules)...)
	}

	return warnings
}

func checkRulesUnknownFields(rules map[string]interface{}) []string {
	var warnings []string

	knownRuleFields := getJSONFields(reflect.TypeOf(Rule{}))
	for _, path := range sortedKeys(rules) {
		fields, ok := rules[path].(map[string]interface{})
		if !ok {
			continue
		}
		for _, key := range sortedKeys(fields) {
			if !knownRuleFields[key] {
				warnings = append(warnings, unknownFieldWarning(key, fmt.Sprintf("in rule %q", path), knownRuleFields))
			}
		}
	}

	return warnings
}

// getJSONFields returns a map of known JSON field names for a struct type.
func getJSONFields(t reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name != "" {
			fields[name] = true
		}
	}
	return fields
}

func unknownFieldWarning(key, where string, known map[string]bool) string {
	if s := suggest(key, known); s != "" {
		return fmt.Sprintf("unknown field %q %s (ignored; did you mean %q?)", key, where, s)
	}
	return fmt.Sprintf("unknown field %q %s (ignored)", key, where)
}

// suggest returns the known name closest to key, or "" when none is close
// enough to be a likely typo.
func suggest(key string, known map[string]bool) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, name := range sortedNames(known) {
		if d := levenshtein.ComputeDistance(key, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	if bestDist*2 >= len(key) {
		return ""
	}
	return best
}

// sortedKeys returns the keys of m in natural order, so "item2" sorts
// before "item10".
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	natsort.Sort(keys)
	return keys
}

func sortedNames(m map[string]bool) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	natsort.Sort(names)
	return names
}
