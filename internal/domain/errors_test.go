package domain

import (
	"errors"
	"testing"
)

func TestConfigError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  ConfigError
		want string
	}{
		{
			name: "with message",
			err:  ConfigError{Field: "locale", Message: "empty"},
			want: "config locale: empty",
		},
		{
			name: "with underlying error",
			err:  ConfigError{Field: "toast.maxWidth", Err: errors.New("negative")},
			want: "config toast.maxWidth: negative",
		},
		{
			name: "minimal",
			err:  ConfigError{Field: "roster"},
			want: "config roster invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ConfigError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &ConfigError{Field: "locale", Err: underlying}

	if unwrapped := err.Unwrap(); unwrapped != underlying {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, underlying)
	}
}

func TestConfigError_IsInvalidConfig(t *testing.T) {
	var err error = &ConfigError{Field: "locale", Message: "empty"}

	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("errors.Is(err, ErrInvalidConfig) = false, want true")
	}
}

func TestConfigError_IsInvalidConfigWithCause(t *testing.T) {
	cause := errors.New("bad tag")
	var err error = &ConfigError{Field: "locale", Err: cause}

	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("errors.Is(err, ErrInvalidConfig) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}
