// Package logger builds the zap logger shared by feo components.
// Logs go to stderr; stdout belongs to the dashboard.
package logger

import (
	"os"

	"go.uber.org/zap"
)

// DebugEnv enables debug-level logging when set to any non-empty value.
const DebugEnv = "FEO_DEBUG"

// New returns a production zap logger writing to stderr.
// Debug level is enabled when debug is true or FEO_DEBUG is set.
func New(debug bool) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if debug || os.Getenv(DebugEnv) != "" {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
