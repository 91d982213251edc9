package config

import (
	"fmt"
	"regexp"

	"github.com/AndreyAkinshin/doccmp/internal/rules"
	"github.com/AndreyAkinshin/doccmp/pkg/doccmp"
)

// Build turns a validated configuration into comparator overrides. Defaults
// are applied to a copy first, so a Config built by hand needs no
// preprocessing.
func Build(cfg *Config) (doccmp.Config, error) {
	out := make(doccmp.Config, len(cfg.Rules))
	for path, rule := range cfg.Rules {
		c, err := buildRule(path, ruleWithDefaults(path, rule))
		if err != nil {
			return nil, err
		}
		out[path] = c
	}
	return out, nil
}

func buildRule(path string, r Rule) (doccmp.Comparator, error) {
	switch r.Type {
	case RuleEqual, RulePath:
		return rules.Equal{LeftPath: r.LeftPath, RightPath: r.RightPath}, nil
	case RuleIgnore:
		return rules.Ignore{}, nil
	case RuleDeep:
		return rules.Deep{LeftPath: r.LeftPath, RightPath: r.RightPath}, nil
	case RuleFold:
		return rules.Fold{LeftPath: r.LeftPath, RightPath: r.RightPath}, nil
	case RuleUnordered:
		return rules.Unordered{LeftPath: r.LeftPath, RightPath: r.RightPath}, nil
	case RuleNumeric:
		mode, err := rules.ParseToleranceMode(r.Mode)
		if err != nil {
			return nil, &ValidationError{Field: fmt.Sprintf("rules.%s.mode", path), Message: err.Error()}
		}
		return rules.Numeric{
			LeftPath:     r.LeftPath,
			RightPath:    r.RightPath,
			Tolerance:    *r.Tolerance,
			Mode:         mode,
			NaNEqualsNaN: r.NaNEqualsNaN,
		}, nil
	case RuleConcat:
		paths := make([]string, len(r.Paths))
		copy(paths, r.Paths)
		return rules.Concat{LeftPath: r.LeftPath, RightPaths: paths, Separator: *r.Separator}, nil
	case RuleRegex:
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, &ValidationError{Field: fmt.Sprintf("rules.%s.pattern", path), Message: err.Error()}
		}
		return rules.Regex{RightPath: r.RightPath, Pattern: re}, nil
	default:
		return nil, &ValidationError{
			Field:   fmt.Sprintf("rules.%s.type", path),
			Message: unknownTypeMessage(r.Type),
		}
	}
}
