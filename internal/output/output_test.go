package output

import (
	"bytes"
	"strings"
	"testing"
)

// newTestWriter creates a Writer with captured output for testing.
func newTestWriter() (*Writer, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	w := &Writer{
		out:   stdout,
		err:   stderr,
		color: false, // Disable color for predictable test output
		quiet: false,
	}
	return w, stdout, stderr
}

func TestNew(t *testing.T) {
	w := New()
	if w == nil {
		t.Fatal("New() returned nil")
	}
	if w.out == nil {
		t.Error("out writer is nil")
	}
	if w.err == nil {
		t.Error("err writer is nil")
	}
}

func TestNew_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if New().color {
		t.Error("New() enabled color with NO_COLOR set")
	}
}

func TestWriter_SetQuiet(t *testing.T) {
	w, _, _ := newTestWriter()

	w.SetQuiet(true)
	if !w.quiet {
		t.Error("SetQuiet(true) did not set quiet")
	}

	w.SetQuiet(false)
	if w.quiet {
		t.Error("SetQuiet(false) did not unset quiet")
	}
}

func TestWriter_Print(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Print("hello %s", "world")

	if got := stdout.String(); got != "hello world" {
		t.Errorf("Print() = %q, want %q", got, "hello world")
	}
}

func TestWriter_Println(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Println("hello %s", "world")

	if got := stdout.String(); got != "hello world\n" {
		t.Errorf("Println() = %q, want %q", got, "hello world\n")
	}
}

func TestWriter_Errorln(t *testing.T) {
	w, _, stderr := newTestWriter()

	w.Errorln("error %d", 42)

	if got := stderr.String(); got != "error 42\n" {
		t.Errorf("Errorln() = %q, want %q", got, "error 42\n")
	}
}

func TestWriter_Info(t *testing.T) {
	tests := []struct {
		name   string
		quiet  bool
		expect string
	}{
		{"normal mode", false, "info message\n"},
		{"quiet mode", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, stdout, _ := newTestWriter()
			w.quiet = tt.quiet

			w.Info("info %s", "message")

			if got := stdout.String(); got != tt.expect {
				t.Errorf("Info() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestWriter_Success(t *testing.T) {
	tests := []struct {
		name   string
		color  bool
		expect string
	}{
		{"without color", false, "done\n"},
		{"with color", true, "\033[32mdone\033[0m\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, stdout, _ := newTestWriter()
			w.color = tt.color

			w.Success("done")

			if got := stdout.String(); got != tt.expect {
				t.Errorf("Success() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestWriter_Warning(t *testing.T) {
	tests := []struct {
		name   string
		color  bool
		expect string
	}{
		{"without color", false, "warning: caution\n"},
		{"with color", true, "\033[33mwarning: caution\033[0m\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, stderr := newTestWriter()
			w.color = tt.color

			w.Warning("caution")

			if got := stderr.String(); got != tt.expect {
				t.Errorf("Warning() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestWriter_ErrorPrefix(t *testing.T) {
	w, _, stderr := newTestWriter()

	w.ErrorPrefix("cannot open %s", "a.json")

	if got := stderr.String(); got != "doccmp: cannot open a.json\n" {
		t.Errorf("ErrorPrefix() = %q", got)
	}
}

func TestWriter_ValidationSuccess(t *testing.T) {
	w, stdout, _ := newTestWriter()
	w.color = true

	w.ValidationSuccess("rules.yaml is valid")

	if got := stdout.String(); got != "\033[32m✓\033[0m rules.yaml is valid\n" {
		t.Errorf("ValidationSuccess() = %q", got)
	}
}

func TestWriter_HelpSection(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.HelpSection("available commands")

	if got := stdout.String(); got != "\nAvailable Commands:\n" {
		t.Errorf("HelpSection() = %q, want %q", got, "\nAvailable Commands:\n")
	}
}

func TestWriter_HelpFlag(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.HelpFlag("--file1 <path>", "left document", 16)

	want := "  --file1 <path>    left document\n"
	if got := stdout.String(); got != want {
		t.Errorf("HelpFlag() = %q, want %q", got, want)
	}
}

func TestWriter_ColorPlaceholders(t *testing.T) {
	w, _, _ := newTestWriter()

	got := w.colorPlaceholders("doccmp --file1 <path>")
	if !strings.Contains(got, colorPlaceholder+"<path>"+reset) {
		t.Errorf("colorPlaceholders() = %q, placeholder not colored", got)
	}
	if !strings.HasPrefix(got, "doccmp --file1 ") {
		t.Errorf("colorPlaceholders() = %q, prefix changed", got)
	}
}
