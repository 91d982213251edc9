package cli

import (
	"go.uber.org/zap"

	"github.com/AndreyAkinshin/doccmp/internal/config"
	"github.com/AndreyAkinshin/doccmp/internal/document"
	"github.com/AndreyAkinshin/doccmp/internal/errors"
	"github.com/AndreyAkinshin/doccmp/internal/output"
	"github.com/AndreyAkinshin/doccmp/pkg/doccmp"
)

// missingFilesMessage is reported when either document path is absent.
const missingFilesMessage = "Please provide paths to both JSON files"

type outputFormat string

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
)

// compareOptions holds the resolved flags of the root command.
type compareOptions struct {
	File1    string
	File2    string
	Format1  document.Format
	Format2  document.Format
	Config   string
	Output   outputFormat
	OnlyDiff bool
	Summary  bool
	Strict   bool
}

func (a *app) compareOptions() (*compareOptions, error) {
	opts := &compareOptions{
		File1:    a.v.GetString(flagFile1),
		File2:    a.v.GetString(flagFile2),
		Config:   a.v.GetString(flagConfig),
		Output:   outputFormat(a.v.GetString(flagOutput)),
		OnlyDiff: a.v.GetBool(flagOnlyDiff),
		Summary:  a.v.GetBool(flagSummary),
		Strict:   a.v.GetBool(flagStrict),
	}

	if opts.File1 == "" || opts.File2 == "" {
		return nil, errors.Config(missingFilesMessage)
	}
	if opts.File1 == document.StdinPath && opts.File2 == document.StdinPath {
		return nil, errors.Config("only one document can be read from standard input")
	}

	var err error
	if opts.Format1, err = document.ParseFormat(a.v.GetString(flagFormat1)); err != nil {
		return nil, errors.Configf("--%s: %v", flagFormat1, err)
	}
	if opts.Format2, err = document.ParseFormat(a.v.GetString(flagFormat2)); err != nil {
		return nil, errors.Configf("--%s: %v", flagFormat2, err)
	}

	switch opts.Output {
	case outputTable, outputJSON:
	default:
		return nil, errors.Configf("--%s: unknown format %q (must be \"table\" or \"json\")", flagOutput, opts.Output)
	}

	return opts, nil
}

func (a *app) runCompare() error {
	opts, err := a.compareOptions()
	if err != nil {
		return err
	}

	overrides, err := a.loadRules(opts.Config)
	if err != nil {
		return err
	}

	loader := document.NewLoader(a.logger)
	loader.Stdin = a.stdin

	left, err := loader.Load(opts.File1, opts.Format1)
	if err != nil {
		return errors.Input(opts.File1, err)
	}
	right, err := loader.Load(opts.File2, opts.Format2)
	if err != nil {
		return errors.Input(opts.File2, err)
	}

	results := doccmp.Compare(left, right, overrides)
	summary := doccmp.Summarize(results)
	a.logger.Debug("compared documents",
		zap.Int("fields", summary.Total),
		zap.Int("match", summary.Match),
		zap.Int("mismatch", summary.Mismatch),
		zap.Int("missing", summary.Missing),
	)

	if err := a.writeResults(results, opts); err != nil {
		return errors.Wrap(err, "failed to write results")
	}
	if opts.Summary {
		a.out.Summary(summary)
	}

	if opts.Strict && !summary.Equal() {
		return errors.Differences(summary.Mismatch, summary.Missing)
	}
	return nil
}

// loadRules reads, validates, and compiles the rules file at path. An empty
// path means no overrides.
func (a *app) loadRules(path string) (doccmp.Config, error) {
	if path == "" {
		return nil, nil
	}

	cfg, warnings, err := config.LoadAndValidate(path)
	for _, w := range warnings {
		a.out.Warning("%s: %s", path, w)
	}
	if err != nil {
		return nil, errors.Validation(path, err)
	}

	overrides, err := config.Build(cfg)
	if err != nil {
		return nil, errors.Validation(path, err)
	}

	a.logger.Debug("loaded rules",
		zap.String("path", path),
		zap.Int("rules", len(overrides)),
		zap.Int("warnings", len(warnings)),
	)
	return overrides, nil
}

func (a *app) writeResults(results []doccmp.Result, opts *compareOptions) error {
	if a.quiet() {
		return nil
	}
	ro := output.ResultsOptions{OnlyDifferences: opts.OnlyDiff}
	if opts.Output == outputJSON {
		return a.out.ResultsJSON(results, ro)
	}
	return a.out.Results(results, ro)
}

func (a *app) quiet() bool {
	return a.v.GetBool(flagQuiet)
}
