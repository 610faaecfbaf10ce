package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
}

// WithPrefix only reads variables whose names start with prefix.
// Tags are written without the prefix.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing.
// Missing files are skipped; variables already set in the environment win.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.envFiles = append(o.envFiles, files...) }
}

// Load parses environment variables into the struct pointed to by v using
// `env` field tags.
//
// Example:
//
//	type HarnessConfig struct {
//		LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
//		RemoteDelay time.Duration `env:"REMOTE_DELAY" envDefault:"200ms"`
//	}
//
//	var cfg HarnessConfig
//	err := config.Load(&cfg, config.WithPrefix("VALIDATE_"), config.WithEnvFiles(".env"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	for _, file := range o.envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", file, err))
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
