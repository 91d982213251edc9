package document

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/AndreyAkinshin/doccmp/pkg/doccmp"
)

// StdinPath is the path argument that reads a document from standard input.
const StdinPath = "-"

// Loader reads documents from files or standard input.
type Loader struct {
	Stdin  io.Reader
	Logger *zap.Logger
}

// NewLoader returns a Loader reading "-" from os.Stdin.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{Stdin: os.Stdin, Logger: logger}
}

// Load reads and decodes the document at path. With FormatAuto the format
// comes from the file extension; standard input defaults to JSON.
func (l *Loader) Load(path string, format Format) (doccmp.Value, error) {
	if format == FormatAuto {
		format = DetectFormat(path)
	}

	var r io.Reader
	if path == StdinPath {
		if l.Stdin == nil {
			return doccmp.Value{}, fmt.Errorf("failed to read %s: no standard input available", displayName(path))
		}
		r = l.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return doccmp.Value{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	v, err := Decode(bufio.NewReader(r), format)
	if err != nil {
		return doccmp.Value{}, fmt.Errorf("failed to parse %s as %s: %w", displayName(path), format, err)
	}

	l.logger().Debug("loaded document",
		zap.String("path", displayName(path)),
		zap.String("format", string(format)),
		zap.Stringer("kind", v.Kind()),
	)
	return v, nil
}

func (l *Loader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

// Decode reads one document of the given format from r. FormatAuto is
// treated as JSON.
func Decode(r io.Reader, format Format) (doccmp.Value, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(r)
	case FormatJSON, FormatAuto:
		return decodeJSON(r)
	default:
		return doccmp.Value{}, fmt.Errorf("unsupported format %q", format)
	}
}

func displayName(path string) string {
	if path == StdinPath {
		return "<stdin>"
	}
	return path
}
