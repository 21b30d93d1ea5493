// Package config holds the explicit runtime configuration for the
// lookup pipelines: remote source hosts, the external checker
// installation, and fetch behavior. Components receive the values they
// need at construction time; nothing reads ambient process state after
// loading.
package config

import (
	"time"

	"github.com/avernet/lexique"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration.
type Config struct {
	// SynonymBaseURL is the CRISCO host serving synonym pages.
	SynonymBaseURL string `env:"LEXIQUE_SYNONYM_URL" env-default:"https://crisco4.unicaen.fr"`

	// DefinitionBaseURL is the CNRTL host serving definition pages.
	DefinitionBaseURL string `env:"LEXIQUE_DEFINITION_URL" env-default:"https://www.cnrtl.fr"`

	// Python is the interpreter used to run the Grammalecte helpers.
	Python string `env:"LEXIQUE_PYTHON" env-default:"python3"`

	// GrammalecteDir is the install directory of the Grammalecte
	// distribution. Empty disables the checker and conjugation
	// commands.
	GrammalecteDir string `env:"LEXIQUE_GRAMMALECTE_DIR"`

	// FetchTimeout bounds each remote page fetch.
	FetchTimeout time.Duration `env:"LEXIQUE_FETCH_TIMEOUT" env-default:"10s"`

	// FetchRPS caps outgoing requests per second.
	FetchRPS float64 `env:"LEXIQUE_FETCH_RPS" env-default:"2"`

	// UpstreamCheckEvery is the interval between checks for a newer
	// upstream Grammalecte release. Zero or negative disables the
	// check.
	UpstreamCheckEvery time.Duration `env:"LEXIQUE_UPSTREAM_CHECK_EVERY" env-default:"240h"`
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, lexique.Errorf(lexique.EINVALID, "read configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate performs business-rule validation on the loaded
// configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if c.SynonymBaseURL == "" {
		return lexique.Errorf(lexique.EINVALID, "synonym base URL required")
	}
	if c.DefinitionBaseURL == "" {
		return lexique.Errorf(lexique.EINVALID, "definition base URL required")
	}
	if c.FetchTimeout <= 0 {
		return lexique.Errorf(lexique.EINVALID, "fetch timeout must be positive (got %v)", c.FetchTimeout)
	}
	if c.FetchRPS <= 0 {
		return lexique.Errorf(lexique.EINVALID, "fetch rate must be positive (got %v)", c.FetchRPS)
	}
	return nil
}
