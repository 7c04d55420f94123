package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riordanpawley/gradebook/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Roster = []config.StudentConfig{
		{Name: "Ada", Grade: 9},
		{Name: "Linus", Grade: -4},
	}
	deps := NewDependencies(cfg, nil)
	var buf bytes.Buffer

	require.NoError(t, ListCommand(deps, &buf))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "9/10")
	assert.Contains(t, lines[2], "Excellent")
	assert.Contains(t, lines[3], "0/10")
	assert.Contains(t, lines[3], "Ungraded")
}

func TestListCommand_Localized(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Locale = "es"
	cfg.Roster = []config.StudentConfig{{Name: "Ada", Grade: 2}}
	var buf bytes.Buffer

	require.NoError(t, ListCommand(NewDependencies(cfg, nil), &buf))

	assert.Contains(t, buf.String(), "Insuficiente")
}

func TestListCommand_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, ListCommand(NewDependencies(config.DefaultConfig(), nil), &buf))

	assert.Equal(t, "No students on the roster\n", buf.String())
}

func TestNewLogger_Discard(t *testing.T) {
	logger, closeFn, err := NewLogger(config.LogConfig{Level: "info"})
	require.NoError(t, err)
	require.NotNil(t, closeFn)

	logger.Info("dropped")
	assert.NoError(t, closeFn())
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gradebook.log")

	logger, closeFn, err := NewLogger(config.LogConfig{Level: "warn", File: path})
	require.NoError(t, err)

	logger.Info("below level")
	logger.Warn("toast failed", "student", "Ada")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "below level")
	assert.Contains(t, string(data), "toast failed")
	assert.Contains(t, string(data), "student=Ada")
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, _, err := NewLogger(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}
