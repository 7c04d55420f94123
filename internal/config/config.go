package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/riordanpawley/gradebook/internal/domain"
	"golang.org/x/text/language"
)

const (
	// FileName is the config file looked up in the working directory
	FileName  = ".gradebook.yaml"
	envPrefix = "GRADEBOOK_"
)

// Config represents the full gradebook configuration
type Config struct {
	Locale string          `koanf:"locale"`
	Toast  ToastConfig     `koanf:"toast"`
	Log    LogConfig       `koanf:"log"`
	Roster []StudentConfig `koanf:"roster"`
}

// ToastConfig contains toast rendering settings
type ToastConfig struct {
	MaxWidth int `koanf:"max_width"`
}

// LogConfig contains logging settings. Logs go to File because the TUI owns the terminal.
type LogConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

// StudentConfig seeds one roster entry
type StudentConfig struct {
	Name  string `koanf:"name"`
	Grade int    `koanf:"grade"`
}

// knownKeys are the scalar keys env vars may override
var knownKeys = []string{
	"locale",
	"toast.max_width",
	"log.level",
	"log.file",
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Locale: "en",
		Toast: ToastConfig{
			MaxWidth: 40,
		},
		Log: LogConfig{
			Level: "info",
		},
		Roster: []StudentConfig{},
	}
}

// LoadConfig loads configuration from dir with priority (highest last):
// 1. Defaults
// 2. .gradebook.yaml in dir
// 3. GRADEBOOK_* environment variables
func LoadConfig(dir string) (*Config, error) {
	k := koanf.New(".")

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	envLookup := buildEnvLookup(knownKeys)
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := DefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg = MergeWithDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Locale == "" {
		cfg.Locale = defaults.Locale
	}
	if cfg.Toast.MaxWidth == 0 {
		cfg.Toast.MaxWidth = defaults.Toast.MaxWidth
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Roster == nil {
		cfg.Roster = defaults.Roster
	}

	return cfg
}

// Validate rejects settings the UI cannot use. Grades are not checked:
// out-of-range scores are clamped when the roster is built.
func (c *Config) Validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return &domain.ConfigError{Field: "locale", Err: err}
	}
	if c.Toast.MaxWidth < 0 {
		return &domain.ConfigError{Field: "toast.max_width", Message: "must not be negative"}
	}
	if !logLevels[strings.ToLower(c.Log.Level)] {
		return &domain.ConfigError{Field: "log.level", Message: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}

	seen := make(map[string]bool, len(c.Roster))
	for i, s := range c.Roster {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return &domain.ConfigError{Field: fmt.Sprintf("roster[%d].name", i), Message: "must not be empty"}
		}
		if seen[name] {
			return &domain.ConfigError{Field: fmt.Sprintf("roster[%d].name", i), Message: fmt.Sprintf("duplicate student %q", name)}
		}
		seen[name] = true
	}
	return nil
}

// Students builds the roster, clamping each score
func (c *Config) Students() []domain.Student {
	students := make([]domain.Student, 0, len(c.Roster))
	for _, s := range c.Roster {
		students = append(students, domain.NewStudent(strings.TrimSpace(s.Name), s.Grade))
	}
	return students
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}

// buildEnvLookup maps env-style keys to koanf keys so that
// GRADEBOOK_TOAST_MAX_WIDTH resolves to "toast.max_width" rather than "toast.max.width".
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
