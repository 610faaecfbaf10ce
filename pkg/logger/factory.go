package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for machine consumption.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for interactive runs.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*config)

// WithLevel sets the minimum level.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithLevelName sets the level from its name ("debug", "info", "warn", "error").
// Panics for unknown names so misconfiguration fails at startup.
func WithLevelName(name string) Option {
	return func(c *config) {
		l, err := ParseLevel(name)
		if err != nil {
			panic(err)
		}
		c.level = l
	}
}

// WithFormat sets output format.
// Panics for invalid formats so misconfiguration fails at startup.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("%w %q: must be %q or %q", ErrInvalidFormat, f, FormatJSON, FormatText))
		}
	}
}

// WithTextFormatter switches output to slog text.
func WithTextFormatter() Option {
	return func(c *config) {
		c.format = FormatText
	}
}

// WithJSONFormatter switches output to JSON.
func WithJSONFormatter() Option {
	return func(c *config) {
		c.format = FormatJSON
	}
}

// WithOutput sets custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithContextExtractors registers functions that inject dynamic attributes from context.
// Nil extractors are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithDevelopment configures text output at debug level, tagged with the component name.
func WithDevelopment(component string) Option {
	return func(c *config) {
		c.level = slog.LevelDebug
		c.format = FormatText
		if component != "" {
			c.attrs = append(c.attrs, Component(component))
		}
	}
}

// WithProduction configures JSON output at info level, tagged with the component name.
func WithProduction(component string) Option {
	return func(c *config) {
		c.level = slog.LevelInfo
		c.format = FormatJSON
		if component != "" {
			c.attrs = append(c.attrs, Component(component))
		}
	}
}

// SetAsDefault installs l as the slog default logger.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// ParseLevel converts a level name into a slog.Level. The empty name is info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
}

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// defaultConfig writes JSON at info level to stderr, keeping stdout free for results.
func defaultConfig() *config {
	return &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stderr,
	}
}

// New creates a configured slog.Logger that also logs attributes pulled from context.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(NewLogHandlerDecorator(handler, cfg.extractors...))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
