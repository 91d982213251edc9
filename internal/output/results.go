package output

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"

	"github.com/AndreyAkinshin/doccmp/pkg/doccmp"
)

// ResultsHeader is the header row of the results table.
var ResultsHeader = []string{"Key", "Value 1", "Value 2", "Result"}

// ResultsOptions controls which results are rendered.
type ResultsOptions struct {
	// OnlyDifferences hides MATCH rows.
	OnlyDifferences bool
}

func (o ResultsOptions) filter(results []doccmp.Result) []doccmp.Result {
	if !o.OnlyDifferences {
		return results
	}
	out := make([]doccmp.Result, 0, len(results))
	for _, r := range results {
		if r.Outcome != doccmp.Match {
			out = append(out, r)
		}
	}
	return out
}

// Results renders results as a table on stdout, one row per result in
// order. Values are shown as JSON text; an undefined value is an empty cell.
func (w *Writer) Results(results []doccmp.Result, opts ResultsOptions) error {
	header := make([]any, len(ResultsHeader))
	for i, h := range ResultsHeader {
		header[i] = h
	}

	table := tablewriter.NewWriter(w.out)
	table.Header(header...)
	for _, r := range opts.filter(results) {
		row := []string{r.Key, r.Value1.String(), r.Value2.String(), w.outcome(r.Outcome)}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// ResultsJSON writes results as an indented JSON array.
func (w *Writer) ResultsJSON(results []doccmp.Result, opts ResultsOptions) error {
	shown := opts.filter(results)
	if shown == nil {
		shown = []doccmp.Result{}
	}
	data, err := json.MarshalIndent(shown, "", "  ")
	if err != nil {
		return err
	}
	w.Println("%s", data)
	return nil
}

// Summary prints the per-outcome counts on one line.
func (w *Writer) Summary(s doccmp.Summary) {
	line := formatSummary(s)
	if s.Equal() {
		w.Println("%s", w.paint(color.FgGreen, line))
	} else {
		w.Println("%s", w.paint(color.FgRed, line))
	}
}

func formatSummary(s doccmp.Summary) string {
	noun := "fields"
	if s.Total == 1 {
		noun = "field"
	}
	return fmt.Sprintf("%d %s: %d match, %d mismatch, %d missing", s.Total, noun, s.Match, s.Mismatch, s.Missing)
}

func (w *Writer) outcome(o doccmp.Outcome) string {
	switch o {
	case doccmp.Match:
		return w.paint(color.FgGreen, string(o))
	case doccmp.Mismatch:
		return w.paint(color.FgRed, string(o))
	case doccmp.Missing:
		return w.paint(color.FgYellow, string(o))
	default:
		return string(o)
	}
}

// paint colors s when the writer has color enabled, regardless of the
// global fatih/color detection.
func (w *Writer) paint(attr color.Attribute, s string) string {
	if !w.color {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}
