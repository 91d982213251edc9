// Package testhelper loads golden comparison cases and checks doccmp
// results against them.
//
// A case is a JSON file holding two documents, an optional set of rules and
// the expected outcome for every reported field:
//
//	{
//	  "description": "renamed city field",
//	  "left":  {"address": {"city": "Springfield"}},
//	  "right": {"city": "Springfield", "address": {}},
//	  "rules": {"address.city": {"type": "path", "path": "city"}},
//	  "expected": [
//	    {"key": "address.city", "result": "MATCH"},
//	    {"key": "city", "result": "MISSING"}
//	  ]
//	}
//
// Cases are grouped into suites, one directory per suite:
//
//	func TestGolden(t *testing.T) {
//	    cases, err := testhelper.LoadSuite("testdata", "renames")
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    for _, tc := range cases {
//	        t.Run(tc.Name, func(t *testing.T) {
//	            results, err := tc.Evaluate()
//	            if err != nil {
//	                t.Fatal(err)
//	            }
//	            if ok, diff := testhelper.Check(tc.Expected, results); !ok {
//	                t.Error(diff)
//	            }
//	        })
//	    }
//	}
package testhelper

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/AndreyAkinshin/doccmp/pkg/doccmp"
)

// Case is a single golden comparison loaded from a JSON file.
type Case struct {
	// Name is the case name (derived from filename).
	Name string `json:"-"`

	// Suite is the suite name (directory name).
	Suite string `json:"-"`

	// Description provides optional documentation.
	Description string `json:"description,omitempty"`

	// Left and Right hold the two documents as JSON text. Key order is
	// preserved when they are decoded.
	Left  json.RawMessage `json:"left"`
	Right json.RawMessage `json:"right"`

	// Rules is the "rules" mapping of a rules file. Absent means every
	// field uses strict equality.
	Rules json.RawMessage `json:"rules,omitempty"`

	// Expected lists the results in the order Compare reports them.
	Expected []Expectation `json:"expected"`

	// Skip marks the case as skipped if true.
	Skip bool `json:"skip,omitempty"`

	// Tags provides optional categorization.
	Tags []string `json:"tags,omitempty"`
}

// Expectation is the expected outcome for one field path.
type Expectation struct {
	Key    string         `json:"key"`
	Result doccmp.Outcome `json:"result"`
}

// LoadSuite loads all cases from <dir>/<suite>/*.json, sorted by name.
func LoadSuite(dir, suite string) ([]Case, error) {
	pattern := filepath.Join(dir, suite, "*.json")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var cases []Case
	for _, f := range files {
		tc, err := LoadCase(f)
		if err != nil {
			return nil, err
		}
		tc.Suite = suite
		cases = append(cases, *tc)
	}

	return cases, nil
}

// LoadCase loads a single case from a JSON file.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tc Case
	if err := json.Unmarshal(data, &tc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(tc.Left) == 0 || len(tc.Right) == 0 {
		return nil, &InvalidCaseError{Path: path, Reason: `both "left" and "right" are required`}
	}

	tc.Name = strings.TrimSuffix(filepath.Base(path), ".json")
	return &tc, nil
}

// LoadAllSuites loads cases from every suite directory under dir.
func LoadAllSuites(dir string) (map[string][]Case, error) {
	names, err := ListSuites(dir)
	if err != nil {
		return nil, err
	}

	suites := make(map[string][]Case)
	for _, name := range names {
		cases, err := LoadSuite(dir, name)
		if err != nil {
			return nil, err
		}
		if len(cases) > 0 {
			suites[name] = cases
		}
	}

	return suites, nil
}

// ListSuites returns the names of all suite directories under dir. A missing
// dir has no suites.
func ListSuites(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var suites []string
	for _, entry := range entries {
		if entry.IsDir() {
			suites = append(suites, entry.Name())
		}
	}

	return suites, nil
}

// SuiteExists checks if a suite exists.
func SuiteExists(dir, suite string) bool {
	info, err := os.Stat(filepath.Join(dir, suite))
	return err == nil && info.IsDir()
}

// CaseExists checks if a specific case exists.
func CaseExists(dir, suite, name string) bool {
	_, err := os.Stat(filepath.Join(dir, suite, name+".json"))
	return err == nil
}

// InvalidCaseError indicates a case file is missing required content.
type InvalidCaseError struct {
	Path   string
	Reason string
}

func (e *InvalidCaseError) Error() string {
	return e.Path + ": " + e.Reason
}
