// Package config provides loading and validation for doccmp rules files.
//
// A rules file maps dot-separated field paths to comparison rules. Files may
// be written in YAML or JSON; both are read through the YAML decoder, since
// JSON documents are valid YAML.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/AndreyAkinshin/doccmp/internal/schema"
)

// Config represents a complete rules file.
type Config struct {
	Rules map[string]Rule `json:"rules,omitempty"`
}

// Rule configures the comparator for one field path.
type Rule struct {
	Type         string   `json:"type"`
	LeftPath     string   `json:"left_path,omitempty"`
	RightPath    string   `json:"right_path,omitempty"`
	Path         string   `json:"path,omitempty"`
	Paths        []string `json:"paths,omitempty"`
	Separator    *string  `json:"separator,omitempty"`
	Tolerance    *float64 `json:"tolerance,omitempty"`
	Mode         string   `json:"mode,omitempty"`
	NaNEqualsNaN bool     `json:"nan_equals_nan,omitempty"`
	Pattern      string   `json:"pattern,omitempty"`
}

// Rule types.
const (
	RuleEqual     = "equal"
	RuleIgnore    = "ignore"
	RuleDeep      = "deep"
	RuleNumeric   = "numeric"
	RuleFold      = "fold"
	RulePath      = "path"
	RuleConcat    = "concat"
	RuleUnordered = "unordered"
	RuleRegex     = "regex"
)

// RuleTypes lists every supported rule type.
func RuleTypes() []string {
	return []string{
		RuleEqual, RuleIgnore, RuleDeep, RuleNumeric, RuleFold,
		RulePath, RuleConcat, RuleUnordered, RuleRegex,
	}
}

// Load reads and parses a rules file without validating it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	jsonData, _, err := toJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults reads a rules file and applies default values.
func LoadWithDefaults(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// LoadAndValidate reads a rules file, checks it against the embedded schema,
// applies defaults, validates, and returns warnings.
func LoadAndValidate(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse is LoadAndValidate for data already in memory.
func Parse(data []byte) (*Config, []string, error) {
	jsonData, raw, err := toJSON(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := schema.ValidateRules(jsonData); err != nil {
		return nil, nil, err
	}

	cfg, unknownWarnings, err := LoadWithWarnings(jsonData, raw)
	if err != nil {
		return nil, nil, err
	}

	applyDefaults(cfg)

	validationWarnings, err := Validate(cfg)

	allWarnings := make([]string, 0, len(unknownWarnings)+len(validationWarnings))
	allWarnings = append(allWarnings, unknownWarnings...)
	allWarnings = append(allWarnings, validationWarnings...)

	if err != nil {
		return nil, allWarnings, err
	}

	return cfg, allWarnings, nil
}
