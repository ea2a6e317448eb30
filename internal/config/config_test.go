package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func withConfigDir(t *testing.T, dir string) {
	t.Helper()
	original := configDirFunc
	configDirFunc = func() string { return dir }
	t.Cleanup(func() { configDirFunc = original })
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	withConfigDir(t, t.TempDir())
	t.Setenv("LICENSIT_CONFIG_FILE", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format)
	require.Equal(t, ColorAuto, cfg.Output.Color)
	require.Empty(t, cfg.Author.GitConfigPaths)
	require.Empty(t, cfg.Source)
}

func TestLoadDefaultLocation(t *testing.T) {
	dir := t.TempDir()
	withConfigDir(t, dir)
	t.Setenv("LICENSIT_CONFIG_FILE", "")

	path := writeConfig(t, dir, `logging:
  level: debug
output:
  color: never
author:
  git_config_paths:
    - /tmp/extra.gitconfig
`)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, ColorNever, cfg.Output.Color)
	require.Equal(t, []string{"/tmp/extra.gitconfig"}, cfg.Author.GitConfigPaths)
	require.Equal(t, path, cfg.Source)
}

func TestLoadExplicitPathWinsOverEnvFile(t *testing.T) {
	withConfigDir(t, t.TempDir())

	envDir := t.TempDir()
	envPath := writeConfig(t, envDir, "output:\n  color: never\n")
	t.Setenv("LICENSIT_CONFIG_FILE", envPath)

	flagDir := t.TempDir()
	flagPath := writeConfig(t, flagDir, "output:\n  color: always\n")

	cfg, err := Load(flagPath)
	require.NoError(t, err)
	require.Equal(t, ColorAlways, cfg.Output.Color)

	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, ColorNever, cfg.Output.Color)
	require.Equal(t, envPath, cfg.Source)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	withConfigDir(t, dir)
	t.Setenv("LICENSIT_CONFIG_FILE", "")
	writeConfig(t, dir, "logging:\n  level: info\n")

	t.Setenv("LICENSIT_LOGGING_LEVEL", "ERROR")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	withConfigDir(t, t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	withConfigDir(t, dir)
	t.Setenv("LICENSIT_CONFIG_FILE", "")
	writeConfig(t, dir, "logging: [unterminated\n")

	_, err := Load("")
	require.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad color", "output:\n  color: rainbow\n"},
		{"bad format", "logging:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			withConfigDir(t, dir)
			t.Setenv("LICENSIT_CONFIG_FILE", "")
			writeConfig(t, dir, tt.content)

			_, err := Load("")
			require.Error(t, err)
		})
	}
}

func TestDefaultConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if dir := defaultConfigDir(); dir != "/custom/config/licensit" {
		t.Errorf("expected /custom/config/licensit, got %s", dir)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".config", "licensit")
	if dir := defaultConfigDir(); dir != expected {
		t.Errorf("expected %s, got %s", expected, dir)
	}
}
