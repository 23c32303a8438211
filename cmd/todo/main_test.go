package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoboard/internal/board"
	"todoboard/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigPathHonoursFlagAndEnv(t *testing.T) {
	out, err := execute(t, "--config", "/tmp/custom.toml", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.toml", strings.TrimSpace(out))

	t.Setenv(config.ConfigEnvVar, "/tmp/from-env.toml")
	out, err = execute(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.toml", strings.TrimSpace(out))
}

func TestConfigInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todoboard", "config.toml")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, path, strings.TrimSpace(out))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestRootRunsBoardWithLoadedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`default_filter = "active"`), 0o644))

	var got config.Config
	orig := runBoard
	runBoard = func(cfg config.Config, logger *log.Logger) error {
		got = cfg
		require.NotNil(t, logger)
		return nil
	}
	t.Cleanup(func() { runBoard = orig })

	_, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, board.FilterActive, got.Filter())
}

func TestRootReportsConfigErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`default_filter = "someday"`), 0o644))

	called := false
	orig := runBoard
	runBoard = func(config.Config, *log.Logger) error {
		called = true
		return errors.New("unexpected")
	}
	t.Cleanup(func() { runBoard = orig })

	_, err := execute(t, "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
	assert.False(t, called)
}

func TestRootRejectsArgs(t *testing.T) {
	_, err := execute(t, "extra")
	assert.Error(t, err)
}
