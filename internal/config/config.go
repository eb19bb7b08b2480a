// Package config loads regexviz settings from the environment, optionally
// seeded from .env files.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	// ErrReadingEnvFile is returned when an explicitly named .env file cannot be read.
	ErrReadingEnvFile = errors.New("failed to read env file")
)

// DefaultEnvFile is read when Load is called without files. It may be absent.
const DefaultEnvFile = ".env"

type Config struct {
	LogLevel slog.Level `env:"REGEXVIZ_LOG_LEVEL" envDefault:"info"`
	// Format is the default graph output format.
	Format string `env:"REGEXVIZ_FORMAT" envDefault:"dot"`
	// MatchTimeout bounds a single match; zero disables the bound.
	MatchTimeout time.Duration `env:"REGEXVIZ_MATCH_TIMEOUT" envDefault:"5s"`
}

// Load parses Config from the process environment. Values from the given
// .env files (or DefaultEnvFile) fill in variables the process does not set;
// the process environment is never modified.
func Load(files ...string) (Config, error) {
	fromFiles, err := readEnvFiles(files)
	if err != nil {
		return Config{}, errors.Join(ErrReadingEnvFile, err)
	}

	environ := env.ToMap(os.Environ())
	for k, v := range fromFiles {
		if _, ok := environ[k]; !ok {
			environ[k] = v
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

func readEnvFiles(files []string) (map[string]string, error) {
	if len(files) > 0 {
		return godotenv.Read(files...)
	}
	m, err := godotenv.Read(DefaultEnvFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return m, err
}
