// Package logging builds the process logger. Diagnostics go to stderr
// so they never interleave with rendered output on stdout.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns the logger for the process. Without verbose the logger
// is a nop: a display tool should stay silent unless asked.
func New(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
