package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 5000, cfg.Server.Port)
	require.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)

	require.Equal(t, "upper", cfg.Format.KeywordCase)
	require.Equal(t, 4, cfg.Format.IndentWidth)
	require.True(t, cfg.Format.Reindent)

	for _, name := range []string{"standard", "compact", "minimal", "legacy"} {
		require.Contains(t, cfg.Presets, name)
	}
	require.Equal(t, "lower", cfg.Presets["minimal"].KeywordCase)
	require.True(t, cfg.Presets["legacy"].IndentTabs)

	require.Contains(t, cfg.Dialects, "mysql")
	require.Equal(t, "`", cfg.Dialects["mysql"].QuoteChar)
}

func TestPreset(t *testing.T) {
	cfg := Default()

	opts, ok := cfg.Preset("compact")
	require.True(t, ok)
	require.Equal(t, 2, opts.IndentWidth)

	// Unknown names fall back to the configured defaults.
	opts, ok = cfg.Preset("no-such-preset")
	require.False(t, ok)
	require.Equal(t, cfg.Format, opts)
}

func TestLoadFromFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 8080
format:
  keyword_case: lower
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	// Overridden values.
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "lower", cfg.Format.KeywordCase)

	// Defaults survive for everything the file does not mention.
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Contains(t, cfg.Presets, "standard")
}

func TestLoadFromFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"server": {"port": 9000}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.Server.Port)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadFromFileGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{not config"), 0o644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
}
