package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "mission-energy.yaml")

	tests := []struct {
		name          string
		setup         func(t *testing.T)
		validate      func(*testing.T, *Config)
		checkFile     func(*testing.T)
		expectedError bool
	}{
		{
			name:  "NewFile_Defaults",
			setup: func(t *testing.T) {},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.DB.Driver != "sqlite" {
					t.Errorf("expected default driver 'sqlite', got '%s'", cfg.DB.Driver)
				}
				if cfg.Server.Address != ":8080" {
					t.Errorf("expected default address ':8080', got '%s'", cfg.Server.Address)
				}
			},
			checkFile: func(t *testing.T) {
				content, err := os.ReadFile(configPath)
				if err != nil {
					t.Fatalf("failed to read config file: %v", err)
				}
				if !strings.Contains(string(content), "driver: sqlite") {
					t.Error("config file missing default values")
				}
			},
		},
		{
			name: "ExistingFile_Override",
			setup: func(t *testing.T) {
				err := os.WriteFile(configPath, []byte("data:\n  dir: /srv/missions\nlog:\n  level: DEBUG\n"), 0o644)
				if err != nil {
					t.Fatalf("failed to setup test file: %v", err)
				}
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Data.Dir != "/srv/missions" {
					t.Errorf("expected data dir '/srv/missions', got '%s'", cfg.Data.Dir)
				}
				if cfg.Log.Level != "DEBUG" {
					t.Errorf("expected level DEBUG, got '%s'", cfg.Log.Level)
				}
				if cfg.DB.DSN != "data/app.db" {
					t.Errorf("expected default dsn kept, got '%s'", cfg.DB.DSN)
				}
			},
		},
		{
			name: "Env_Override",
			setup: func(t *testing.T) {
				t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/missions")
				t.Setenv("PORT", "9090")
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.DB.Driver != "pgx" {
					t.Errorf("expected driver 'pgx', got '%s'", cfg.DB.Driver)
				}
				if cfg.Server.Address != ":9090" {
					t.Errorf("expected address ':9090', got '%s'", cfg.Server.Address)
				}
			},
		},
		{
			name: "InvalidDriver",
			setup: func(t *testing.T) {
				err := os.WriteFile(configPath, []byte("db:\n  driver: mysql\n"), 0o644)
				if err != nil {
					t.Fatalf("failed to setup test file: %v", err)
				}
			},
			expectedError: true,
		},
		{
			name: "MalformedYAML",
			setup: func(t *testing.T) {
				err := os.WriteFile(configPath, []byte("db: [unclosed\n"), 0o644)
				if err != nil {
					t.Fatalf("failed to setup test file: %v", err)
				}
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_ = os.Remove(configPath)
			tt.setup(t)

			cfg, err := Load(configPath)
			if tt.expectedError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			if tt.validate != nil {
				tt.validate(t, cfg)
			}
			if tt.checkFile != nil {
				tt.checkFile(t)
			}
		})
	}
}

func TestGet(t *testing.T) {
	t.Setenv("MISSION_TEST_KEY", "value")
	if got := Get("MISSION_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("Get = %q, want value", got)
	}
	if got := Get("MISSION_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("Get = %q, want fallback", got)
	}
}
