package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Data   DataConfig   `yaml:"data"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// DBConfig selects the scenario store.
type DBConfig struct {
	Driver string `yaml:"driver"` // "sqlite", "pgx"
	DSN    string `yaml:"dsn"`
}

// DataConfig points at the JSON scenario directory
// (missions/, configurations/, drones/).
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address: ":8080",
		},
		DB: DBConfig{
			Driver: "sqlite",
			DSN:    "data/app.db",
		},
		Data: DataConfig{
			Dir: "data",
		},
		Log: LogConfig{
			Path:  "./logs/server.log",
			Level: "INFO",
		},
	}
}

// Load loads the configuration from the given path.
// If the file does not exist, it creates it with default values.
// Environment overrides are applied last and never written back.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := Save(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to save config file: %w", err)
		}
	}

	ApplyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides file values with DB_DRIVER, DATABASE_URL, DB_PATH,
// DATA_DIR, PORT and LOG_LEVEL when set.
func ApplyEnv(cfg *Config) {
	if url := Get("DATABASE_URL", ""); url != "" {
		cfg.DB.Driver = "pgx"
		cfg.DB.DSN = url
	} else if path := Get("DB_PATH", ""); path != "" {
		cfg.DB.Driver = "sqlite"
		cfg.DB.DSN = path
	}
	cfg.DB.Driver = Get("DB_DRIVER", cfg.DB.Driver)
	cfg.Data.Dir = Get("DATA_DIR", cfg.Data.Dir)
	if port := Get("PORT", ""); port != "" {
		cfg.Server.Address = ":" + port
	}
	cfg.Log.Level = Get("LOG_LEVEL", cfg.Log.Level)
}

// Validate checks the settings the commands cannot run without.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "sqlite", "pgx":
	default:
		return fmt.Errorf("invalid db.driver %q: must be sqlite or pgx", c.DB.Driver)
	}
	if strings.TrimSpace(c.DB.DSN) == "" {
		return fmt.Errorf("db.dsn is required")
	}
	return nil
}

// Save writes the configuration to the path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Mission energy service configuration
# db.driver options: sqlite, pgx

`)
	data = append(header, data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
