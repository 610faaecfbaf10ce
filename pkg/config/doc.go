// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// optional .env files are loaded into the process environment first, then the
// environment is parsed into a struct using `env` and `envDefault` field tags.
//
//	type HarnessConfig struct {
//		LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//		LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg HarnessConfig
//	if err := config.Load(&cfg, config.WithPrefix("VALIDATE_")); err != nil {
//		return err
//	}
//
// Parse failures wrap ErrParsingConfig and can be detected with errors.Is.
package config
