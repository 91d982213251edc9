package cli

import (
	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/doccmp/internal/config"
	"github.com/AndreyAkinshin/doccmp/internal/errors"
	"github.com/AndreyAkinshin/doccmp/internal/schema"
)

// ruleDescriptions documents each rule type for `doccmp rules types`.
var ruleDescriptions = map[string]string{
	config.RuleEqual:     "strict equality (the default); left_path/right_path pick the fields",
	config.RuleIgnore:    "always matches",
	config.RuleDeep:      "structural equality of arrays and objects",
	config.RuleNumeric:   "numbers within tolerance (mode: relative, absolute, ulp)",
	config.RuleFold:      "strings equal under Unicode case folding",
	config.RulePath:      "left field equals the right field at path",
	config.RuleConcat:    "left string equals right paths joined by separator",
	config.RuleUnordered: "arrays with the same elements in any order",
	config.RuleRegex:     "right value is a string matching pattern",
}

func (a *app) rulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and validate rules files",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.printHelp(cmd)
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "validate <file>",
			Short:   "Validate a rules file against the schema and semantic checks",
			Example: "doccmp rules validate rules.yaml",
			Args:    exactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runRulesValidate(args[0])
			},
		},
		&cobra.Command{
			Use:   "schema",
			Short: "Print the JSON schema for rules files",
			Args:  noArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				data, err := schema.RulesSchema()
				if err != nil {
					return errors.Wrap(err, "failed to read embedded schema")
				}
				a.out.Print("%s", data)
				return nil
			},
		},
		&cobra.Command{
			Use:   "types",
			Short: "List the available rule types",
			Args:  noArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a.printRuleTypes()
				return nil
			},
		},
	)
	return cmd
}

func (a *app) runRulesValidate(path string) error {
	overrides, err := a.loadRules(path)
	if err != nil {
		return err
	}
	a.out.ValidationSuccess("%s is valid (%d rules)", path, len(overrides))
	return nil
}

func (a *app) printRuleTypes() {
	types := config.RuleTypes()
	width := 0
	for _, t := range types {
		if len(t) > width {
			width = len(t)
		}
	}
	for _, t := range types {
		a.out.HelpCommand(t, ruleDescriptions[t], width)
	}
}
