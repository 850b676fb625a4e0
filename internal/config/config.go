// Package config provides configuration management for gospring.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the configuration file
const (
	EnvTablesDir   = "GOSPRING_TABLES_DIR"
	EnvCatalogPath = "GOSPRING_CATALOG"
	EnvLogLevel    = "GOSPRING_LOG_LEVEL"
	EnvLogFormat   = "GOSPRING_LOG_FORMAT"
	EnvMaterial    = "GOSPRING_MATERIAL"
)

// Config represents the gospring configuration.
type Config struct {
	Tables  TablesConfig  `yaml:"tables"`
	Catalog CatalogConfig `yaml:"catalog"`
	Logging LoggingConfig `yaml:"logging"`
	Design  DesignConfig  `yaml:"design"`
}

// TablesConfig locates end-type and enumeration tables.
type TablesConfig struct {
	// Dir holds <family>/<table>.{json,csv}; empty uses the built-in tables
	Dir string `yaml:"dir"`
}

// CatalogConfig locates the design catalog.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// DesignConfig holds defaults for new designs.
type DesignConfig struct {
	Material string `yaml:"material"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path: filepath.Join(DefaultDataDir(), "catalog.db"),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Design: DesignConfig{
			Material: "music_wire",
		},
	}
}

// DefaultDataDir returns the default data directory based on OS.
func DefaultDataDir() string {
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gospring")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "AppData", "Roaming", "gospring")
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "gospring")
	default:
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			return filepath.Join(xdgData, "gospring")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".gospring")
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultDataDir(), "config.yaml")
}

// LoadEnv loads variables from .env files into the process environment.
// Missing files are ignored; variables already set win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load env file %s: %w", f, err)
		}
	}
	return nil
}

// Load loads configuration from a file. A missing file yields the defaults.
// Environment variables are expanded in the file and GOSPRING_* variables
// override the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.Tables.Dir = expandHome(cfg.Tables.Dir)
	cfg.Catalog.Path = expandHome(cfg.Catalog.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		EnvTablesDir:   &c.Tables.Dir,
		EnvCatalogPath: &c.Catalog.Path,
		EnvLogLevel:    &c.Logging.Level,
		EnvLogFormat:   &c.Logging.Format,
		EnvMaterial:    &c.Design.Material,
	}
	for name, dst := range overrides {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*dst = v
		}
	}
}

// Validate checks the settings that cannot be corrected later.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json", "":
	default:
		return fmt.Errorf("invalid logging format %q (want console or json)", c.Logging.Format)
	}
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog path must not be empty")
	}
	return nil
}

// Save saves the configuration to a file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, p[2:])
	}
	return p
}
