package config

import (
	"fmt"
	"math"
	"regexp"
	"sort"

	"facette.io/natsort"

	"github.com/AndreyAkinshin/doccmp/internal/rules"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// fieldUse lists, per rule type, the optional fields that affect it.
// left_path and right_path apply to every type except where noted.
var fieldUse = map[string]map[string]bool{
	RuleEqual:     {},
	RuleIgnore:    {},
	RuleDeep:      {},
	RuleNumeric:   {"tolerance": true, "mode": true, "nan_equals_nan": true},
	RuleFold:      {},
	RulePath:      {"path": true},
	RuleConcat:    {"paths": true, "separator": true},
	RuleUnordered: {},
	RuleRegex:     {"pattern": true},
}

func unknownTypeMessage(typ string) string {
	known := make(map[string]bool, len(fieldUse))
	for name := range fieldUse {
		known[name] = true
	}
	if s := suggest(typ, known); s != "" {
		return fmt.Sprintf("unknown rule type %q (did you mean %q?)", typ, s)
	}
	return fmt.Sprintf("unknown rule type %q", typ)
}

// Validate checks a configuration for errors and returns warnings for
// settings that have no effect. Rules are checked in path order.
func Validate(cfg *Config) (warnings []string, err error) {
	paths := make([]string, 0, len(cfg.Rules))
	for path := range cfg.Rules {
		paths = append(paths, path)
	}
	natsort.Sort(paths)

	for _, path := range paths {
		rule := cfg.Rules[path]
		if err := validateRule(path, rule); err != nil {
			return nil, err
		}
		warnings = append(warnings, ineffectiveFields(path, rule)...)
	}

	return warnings, nil
}

func validateRule(path string, rule Rule) error {
	field := func(name string) string {
		return fmt.Sprintf("rules.%s.%s", path, name)
	}

	if path == "" {
		return &ValidationError{Field: "rules", Message: "rule path must not be empty"}
	}
	if rule.Type == "" {
		return &ValidationError{Field: field("type"), Message: "is required"}
	}
	if _, ok := fieldUse[rule.Type]; !ok {
		return &ValidationError{
			Field:   field("type"),
			Message: unknownTypeMessage(rule.Type),
		}
	}

	switch rule.Type {
	case RulePath:
		if rule.Path == "" {
			return &ValidationError{Field: field("path"), Message: "is required for path rules"}
		}
	case RuleConcat:
		if len(rule.Paths) == 0 {
			return &ValidationError{Field: field("paths"), Message: "must list at least one path"}
		}
		for i, p := range rule.Paths {
			if p == "" {
				return &ValidationError{Field: fmt.Sprintf("%s[%d]", field("paths"), i), Message: "must not be empty"}
			}
		}
	case RuleNumeric:
		if _, err := rules.ParseToleranceMode(rule.Mode); err != nil {
			return &ValidationError{Field: field("mode"), Message: err.Error()}
		}
		if rule.Tolerance != nil {
			tol := *rule.Tolerance
			if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
				return &ValidationError{Field: field("tolerance"), Message: "must be a non-negative finite number"}
			}
		}
	case RuleRegex:
		if rule.Pattern == "" {
			return &ValidationError{Field: field("pattern"), Message: "is required for regex rules"}
		}
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return &ValidationError{Field: field("pattern"), Message: err.Error()}
		}
	}

	return nil
}

func ineffectiveFields(path string, rule Rule) []string {
	used := fieldUse[rule.Type]
	set := map[string]bool{
		"path":           rule.Path != "",
		"paths":          len(rule.Paths) > 0,
		"separator":      rule.Separator != nil,
		"tolerance":      rule.Tolerance != nil,
		"mode":           rule.Mode != "",
		"nan_equals_nan": rule.NaNEqualsNaN,
		"pattern":        rule.Pattern != "",
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	var warnings []string
	for _, name := range names {
		if set[name] && !used[name] {
			warnings = append(warnings, fmt.Sprintf("field %q has no effect on %s rule %q", name, rule.Type, path))
		}
	}
	if rule.Type == RuleIgnore && (rule.LeftPath != path || rule.RightPath != path) {
		warnings = append(warnings, fmt.Sprintf("left_path/right_path have no effect on ignore rule %q", path))
	}
	return warnings
}
