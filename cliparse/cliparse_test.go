package cliparse

import (
	"testing"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if cfg.Port != 5000 {
		t.Errorf("Port = %d, want 5000", cfg.Port)
	}
	if cfg.DefaultLanguage != "ar" {
		t.Errorf("DefaultLanguage = %q, want ar", cfg.DefaultLanguage)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("DatabaseType = %q, want sqlite", cfg.DatabaseType)
	}
	if cfg.TokenSecret == "" {
		t.Error("TokenSecret must have a default")
	}
	if len(cfg.Zones) == 0 {
		t.Error("Zones must have defaults")
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-p", "8080",
		"-d", "postgres://localhost/nateq",
		"-t", "postgres",
		"-secret", "cli-secret",
	})
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/nateq" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("DatabaseType = %q, want postgres", cfg.DatabaseType)
	}
	if cfg.TokenSecret != "cli-secret" {
		t.Errorf("TokenSecret = %q, want cli-secret", cfg.TokenSecret)
	}
}

func TestParseFlagsValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"empty secret", []string{"-secret", ""}},
		{"bad database type", []string{"-d", "some-url", "-t", "mongo"}},
		{"unknown flag", []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("ParseFlags() accepted invalid arguments")
			}
		})
	}
}
