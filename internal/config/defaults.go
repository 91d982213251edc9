package config

import "github.com/AndreyAkinshin/doccmp/internal/rules"

// Default configuration values.
const (
	DefaultSeparator     = " "
	DefaultTolerance     = rules.DefaultTolerance
	DefaultToleranceMode = string(rules.ToleranceModeRelative)
)

// applyDefaults fills in default values for unset rule fields.
func applyDefaults(cfg *Config) {
	for path, rule := range cfg.Rules {
		cfg.Rules[path] = ruleWithDefaults(path, rule)
	}
}

func ruleWithDefaults(path string, rule Rule) Rule {
	if rule.LeftPath == "" {
		rule.LeftPath = path
	}
	if rule.RightPath == "" {
		if rule.Type == RulePath && rule.Path != "" {
			rule.RightPath = rule.Path
		} else {
			rule.RightPath = path
		}
	}

	switch rule.Type {
	case RuleNumeric:
		if rule.Tolerance == nil {
			tol := DefaultTolerance
			rule.Tolerance = &tol
		}
		if rule.Mode == "" {
			rule.Mode = DefaultToleranceMode
		}
	case RuleConcat:
		if rule.Separator == nil {
			sep := DefaultSeparator
			rule.Separator = &sep
		}
	}
	return rule
}
