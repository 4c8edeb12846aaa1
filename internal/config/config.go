// Package config loads eggdex settings from the environment.
//
// Values come from EGGDEX_* variables, optionally seeded from a .env file.
// Variables already set in the process environment win over the file, and
// command-line flags win over both.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds host settings. None of them change catalog contents.
type Config struct {
	// Driver is the SQLite driver: "sqlite3" (cgo) or "sqlite" (pure Go).
	Driver string `env:"EGGDEX_DRIVER" envDefault:"sqlite3"`

	// MaxConns is the catalog connection pool size.
	MaxConns int `env:"EGGDEX_MAX_CONNS" envDefault:"4"`

	// Format is the CLI output format: "text" or "json".
	Format string `env:"EGGDEX_FORMAT" envDefault:"text"`

	// Verbose enables debug logging on stderr.
	Verbose bool `env:"EGGDEX_VERBOSE" envDefault:"false"`

	// Suggestions is how many "did you mean" names to show for unknown input.
	Suggestions int `env:"EGGDEX_SUGGESTIONS" envDefault:"3"`
}

// Load reads the optional dotenv files (missing files are ignored) and then
// parses the environment. With no files given it looks for ".env".
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Default returns the envDefault values, ignoring the process environment.
func Default() Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("config: bad envDefault tag: %v", err))
	}
	return cfg
}

// Validate checks value ranges that the env tags cannot express.
func (c Config) Validate() error {
	if c.MaxConns <= 0 {
		return fmt.Errorf("EGGDEX_MAX_CONNS must be positive, got %d", c.MaxConns)
	}
	if c.Suggestions < 0 {
		return fmt.Errorf("EGGDEX_SUGGESTIONS must not be negative, got %d", c.Suggestions)
	}
	return nil
}
