package cliparse

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings. Environment variables fill the
// defaults; CLI flags override them.
type Config struct {
	Port            int      `env:"PORT" envDefault:"5000"`
	DatabaseURL     string   `env:"DATABASE_URL"`
	DatabaseType    string   `env:"DATABASE_TYPE" envDefault:"sqlite"`
	TokenSecret     string   `env:"TOKEN_SECRET" envDefault:"HAJJ_HACKATHON_2018_SECRET_KEY"`
	DefaultLanguage string   `env:"DEFAULT_LANGUAGE" envDefault:"ar"`
	Zones           []string `env:"ZONES" envSeparator:"," envDefault:"mina,arafat,muzdalifah,jamarat"`
}

// ParseFlags builds the configuration from the environment and CLI args.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("nateq-server", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Archive database URL (empty disables the archive)")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Archive database type (sqlite or postgres)")
	fs.StringVar(&cfg.TokenSecret, "secret", cfg.TokenSecret, "Token signing secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.TokenSecret == "" {
		return Config{}, fmt.Errorf("token secret must not be empty")
	}
	if cfg.DatabaseURL != "" && cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
	if len(cfg.Zones) == 0 {
		return Config{}, fmt.Errorf("at least one zone is required")
	}

	return cfg, nil
}
