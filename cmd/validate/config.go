package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/validflow/pkg/config"
	"github.com/dmitrymomot/validflow/pkg/logger"
)

type harnessConfig struct {
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string        `env:"LOG_FORMAT" envDefault:"json"`
	RemoteDelay time.Duration `env:"REMOTE_DELAY" envDefault:"200ms"`
}

func loadConfig() (harnessConfig, error) {
	var cfg harnessConfig
	if err := config.Load(&cfg, config.WithPrefix("VALIDATE_"), config.WithEnvFiles(".env")); err != nil {
		return cfg, err
	}
	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, err
	}
	switch logger.Format(cfg.LogFormat) {
	case logger.FormatJSON, logger.FormatText:
	default:
		return cfg, fmt.Errorf("%w: %q", logger.ErrInvalidFormat, cfg.LogFormat)
	}
	if cfg.RemoteDelay < 0 {
		return cfg, fmt.Errorf("%w: negative remote delay %s", config.ErrParsingConfig, cfg.RemoteDelay)
	}
	return cfg, nil
}

// documentKey carries the path of the document being validated.
type documentKey struct{}

func documentAttr(ctx context.Context) (slog.Attr, bool) {
	path, ok := ctx.Value(documentKey{}).(string)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.Document(path), true
}

func newLogger(cfg harnessConfig, out io.Writer) *slog.Logger {
	return logger.New(
		logger.WithOutput(out),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttr(logger.Component("validate")),
		logger.WithContextExtractors(documentAttr),
	)
}
