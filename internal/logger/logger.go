// Package logger builds the process-wide zap logger from configuration.
// All output goes to stderr: stdout carries the MCP stdio transport and
// must stay clean.
package logger

import (
	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/config"
)

// New constructs a logger from the log section of the configuration.
// Unknown levels fall back to info rather than failing startup.
func New(cfg config.Log) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapCfg.Level = level

	if cfg.Format == "console" {
		zapCfg.Encoding = "console"
	}

	return zapCfg.Build()
}

// Must is New with a nop fallback, for callers that cannot fail.
func Must(cfg config.Log) *zap.Logger {
	log, err := New(cfg)
	if err != nil {
		return zap.NewNop()
	}
	return log
}
