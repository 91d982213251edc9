// Package document loads JSON and YAML documents into doccmp values,
// preserving the key order of the source text.
package document

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a document encoding.
type Format string

const (
	// FormatAuto selects the format from the file extension.
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a user-supplied format name. The empty string and
// "auto" select FormatAuto.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("unknown document format %q (must be \"json\", \"yaml\" or \"auto\")", name)
	}
}

// DetectFormat picks a format from the extension of path. Anything that is
// not .yaml or .yml is read as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
