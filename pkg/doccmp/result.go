package doccmp

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Outcome classifies a single field comparison.
type Outcome string

const (
	// Match means the comparator for the field returned true.
	Match = Outcome("MATCH")
	// Mismatch means the comparator for the field returned false. A field
	// present on the left but absent on the right is a Mismatch, not Missing.
	Mismatch = Outcome("MISMATCH")
	// Missing means the key exists on the right but not on the left.
	Missing = Outcome("MISSING")
)

// Placeholder is stored as Value1 of a Missing result.
const Placeholder = "N/A"

// Result is the comparison outcome for one field path.
type Result struct {
	Key     string
	Value1  Value
	Value2  Value
	Outcome Outcome
}

func (r Result) String() string {
	return fmt.Sprintf("%s %s: %s vs %s", r.Outcome, r.Key, r.Value1, r.Value2)
}

type resultJSON struct {
	Key    string  `json:"key"`
	Value1 *Value  `json:"value1,omitempty"`
	Value2 *Value  `json:"value2,omitempty"`
	Result Outcome `json:"result"`
}

// MarshalJSON encodes r as {"key","value1","value2","result"}. Undefined
// values are omitted.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{Key: r.Key, Result: r.Outcome}
	if !r.Value1.IsUndefined() {
		v := r.Value1
		out.Value1 = &v
	}
	if !r.Value2.IsUndefined() {
		v := r.Value2
		out.Value2 = &v
	}
	return json.Marshal(out)
}

// Summary holds outcome counts for a result list.
type Summary struct {
	Total    int `json:"total"`
	Match    int `json:"match"`
	Mismatch int `json:"mismatch"`
	Missing  int `json:"missing"`
}

// Summarize counts the outcomes in results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Outcome {
		case Match:
			s.Match++
		case Mismatch:
			s.Mismatch++
		case Missing:
			s.Missing++
		}
	}
	return s
}

// Equal reports whether every field matched.
func (s Summary) Equal() bool {
	return s.Mismatch == 0 && s.Missing == 0
}
