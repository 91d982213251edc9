package testhelper

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/doccmp/internal/config"
	"github.com/AndreyAkinshin/doccmp/internal/document"
	"github.com/AndreyAkinshin/doccmp/pkg/doccmp"
)

// Documents decodes the left and right documents of the case.
func (c Case) Documents() (left, right doccmp.Value, err error) {
	left, err = document.Decode(bytes.NewReader(c.Left), document.FormatJSON)
	if err != nil {
		return doccmp.Value{}, doccmp.Value{}, fmt.Errorf("%s: left: %w", c.id(), err)
	}
	right, err = document.Decode(bytes.NewReader(c.Right), document.FormatJSON)
	if err != nil {
		return doccmp.Value{}, doccmp.Value{}, fmt.Errorf("%s: right: %w", c.id(), err)
	}
	return left, right, nil
}

// Overrides parses and builds the rules of the case. A case without rules
// yields a nil config, so every field uses strict equality.
func (c Case) Overrides() (doccmp.Config, error) {
	if len(c.Rules) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	buf.WriteString(`{"rules": `)
	buf.Write(c.Rules)
	buf.WriteString("}")

	cfg, _, err := config.Parse(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%s: rules: %w", c.id(), err)
	}
	overrides, err := config.Build(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: rules: %w", c.id(), err)
	}
	return overrides, nil
}

// Evaluate runs doccmp.Compare on the case documents with its rules.
func (c Case) Evaluate() ([]doccmp.Result, error) {
	left, right, err := c.Documents()
	if err != nil {
		return nil, err
	}
	overrides, err := c.Overrides()
	if err != nil {
		return nil, err
	}
	return doccmp.Compare(left, right, overrides), nil
}

func (c Case) id() string {
	if c.Suite == "" {
		return c.Name
	}
	return c.Suite + "/" + c.Name
}

// Check compares results against the expected keys and outcomes, in order.
// Returns true if they match, and a diff string listing every difference if
// they don't.
func Check(expected []Expectation, results []doccmp.Result) (bool, string) {
	var diffs []string

	n := len(expected)
	if len(results) > n {
		n = len(results)
	}
	for i := 0; i < n; i++ {
		switch {
		case i >= len(results):
			diffs = append(diffs, fmt.Sprintf("[%d]: missing result, expected %s %s", i, expected[i].Result, expected[i].Key))
		case i >= len(expected):
			diffs = append(diffs, fmt.Sprintf("[%d]: unexpected result %s %s", i, results[i].Outcome, results[i].Key))
		case expected[i].Key != results[i].Key:
			diffs = append(diffs, fmt.Sprintf("[%d]: key mismatch (expected=%q, actual=%q)", i, expected[i].Key, results[i].Key))
		case expected[i].Result != results[i].Outcome:
			diffs = append(diffs, fmt.Sprintf("[%d] %s: outcome mismatch (expected=%s, actual=%s; values %s vs %s)",
				i, expected[i].Key, expected[i].Result, results[i].Outcome, results[i].Value1, results[i].Value2))
		}
	}

	if len(diffs) == 0 {
		return true, ""
	}
	return false, strings.Join(diffs, "\n")
}
