package services

import (
	"io"

	"github.com/brokeragelib/brokerage/internal/config"
	"github.com/brokeragelib/brokerage/pkg/logger"
)

// NewLogger builds a logger at cfg.App.LogLevel tagged with cfg.App.Env.
// A nil cfg uses config.Default and a nil output writes to os.Stdout.
func NewLogger(cfg *config.Config, output io.Writer) *logger.Logger {
	if cfg == nil {
		cfg = config.Default()
	}
	return logger.New(output, cfg.App.LogLevel).With("env", cfg.App.Env)
}
