// Package cli provides command-line interface functionality for doccmp.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/AndreyAkinshin/doccmp/internal/errors"
	"github.com/AndreyAkinshin/doccmp/internal/logging"
	"github.com/AndreyAkinshin/doccmp/internal/output"
)

// Version is set at build time.
var Version = "dev"

// EnvPrefix prefixes environment variables that override flags, e.g.
// DOCCMP_CONFIG for --config or DOCCMP_ONLY_DIFF for --only-diff.
const EnvPrefix = "DOCCMP"

// Flag names shared between registration and lookup.
const (
	flagFile1    = "file1"
	flagFile2    = "file2"
	flagFormat1  = "format1"
	flagFormat2  = "format2"
	flagConfig   = "config"
	flagOutput   = "output"
	flagOnlyDiff = "only-diff"
	flagSummary  = "summary"
	flagStrict   = "strict"
	flagNoColor  = "no-color"
	flagQuiet    = "quiet"
	flagVerbose  = "verbose"
)

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return newApp(output.New(), os.Stderr, os.Stdin).run(args)
}

// app holds the per-invocation state shared by all commands.
type app struct {
	out    *output.Writer
	errOut io.Writer
	stdin  io.Reader
	v      *viper.Viper
	logger *zap.Logger
}

func newApp(out *output.Writer, errOut io.Writer, stdin io.Reader) *app {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &app{
		out:    out,
		errOut: errOut,
		stdin:  stdin,
		v:      v,
		logger: zap.NewNop(),
	}
}

func (a *app) run(args []string) int {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out.Out())
	root.SetErr(a.errOut)

	err := root.Execute()
	defer func() { _ = a.logger.Sync() }()

	if err == nil {
		return errors.ExitSuccess
	}
	if !errors.IsDifference(err) {
		a.out.ErrorPrefix("%v", err)
	}
	return errors.GetExitCode(err)
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "doccmp --file1 <path> --file2 <path>",
		Short: "Compare two structured documents field by field",
		Long: "doccmp walks the first document depth-first and reports, for every leaf,\n" +
			"whether the second document matches it. Fields only present in the second\n" +
			"document are reported as MISSING.",
		Example: strings.Join([]string{
			"doccmp --file1 a.json --file2 b.json",
			"doccmp --file1 a.json --file2 b.yaml --config rules.yaml --only-diff",
			"cat a.json | doccmp --file1 - --file2 b.json --output json --strict",
		}, "\n"),
		Version:       Version,
		Args:          noArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCompare()
		},
	}
	root.SetVersionTemplate("doccmp {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Config(err.Error())
	})
	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		a.printHelp(cmd)
	})

	pf := root.PersistentFlags()
	pf.Bool(flagNoColor, false, "Disable colored output (also honors NO_COLOR)")
	pf.BoolP(flagQuiet, "q", false, "Suppress the results table and informational messages")
	pf.BoolP(flagVerbose, "v", false, "Log debug details to stderr")

	f := root.Flags()
	f.String(flagFile1, "", "First (left) document; `path` or - for stdin")
	f.String(flagFile2, "", "Second (right) document; `path` or - for stdin")
	f.String(flagFormat1, "auto", "Format of the first document: auto, json, or yaml")
	f.String(flagFormat2, "auto", "Format of the second document: auto, json, or yaml")
	f.StringP(flagConfig, "c", "", "Rules file with per-field comparators (`path`)")
	f.StringP(flagOutput, "o", string(outputTable), "Output `format`: table or json")
	f.Bool(flagOnlyDiff, false, "Show only MISMATCH and MISSING results")
	f.Bool(flagSummary, false, "Print a one-line summary after the results")
	f.Bool(flagStrict, false, "Exit with status 1 when any field mismatches or is missing")

	_ = a.v.BindPFlags(pf)
	_ = a.v.BindPFlags(f)

	root.AddCommand(a.versionCommand(), a.rulesCommand())
	return root
}

// setup applies the global flags once they are parsed.
func (a *app) setup() error {
	if a.v.GetBool(flagNoColor) {
		a.out.SetColor(false)
	}
	a.out.SetQuiet(a.v.GetBool(flagQuiet))

	_, noColorEnv := os.LookupEnv("NO_COLOR")
	a.logger = logging.New(a.errOut, logging.Options{
		Verbose: a.v.GetBool(flagVerbose),
		Color:   !a.v.GetBool(flagNoColor) && !noColorEnv && isTerminal(a.errOut),
	})
	return nil
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the doccmp version",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.out.Println("doccmp %s", Version)
			return nil
		},
	}
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.Configf("unexpected argument %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

// exactArgs requires n positional arguments, reported as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.Configf("%q requires %d argument(s), received %d", cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
