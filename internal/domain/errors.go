package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidConfig = errors.New("invalid config")
)

// ConfigError describes a rejected configuration value
type ConfigError struct {
	Field   string // Dotted config key, e.g. "toast.maxWidth"
	Message string // Human-readable context
	Err     error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("config %s: %s", e.Field, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("config %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config %s invalid", e.Field)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is makes every ConfigError match ErrInvalidConfig
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
