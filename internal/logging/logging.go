// Package logging builds the zap logger used by the CLI.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	// Verbose lowers the level from Warn to Debug and adds caller info.
	Verbose bool
	// Color enables colored level names.
	Color bool
}

// New returns a console logger writing to w. It follows zap's development
// encoder without timestamps, since output is meant for a terminal session.
func New(w io.Writer, opts Options) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeCaller = nil
	encCfg.CallerKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if opts.Color {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	var zapOpts []zap.Option
	if opts.Verbose {
		level.SetLevel(zap.DebugLevel)
		encCfg.CallerKey = "C"
		encCfg.EncodeCaller = zapcore.ShortCallerEncoder
		zapOpts = append(zapOpts, zap.AddCaller())
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core, zapOpts...)
}
