package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(`
table {
  small_blind = 1
  big_blind   = 2
}

ui {
  log_level = "debug"
  theme     = "dark"
}

export {
  directory = "/tmp/hands"
  mode      = "file"
}
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.True(t, cfg.Blinds().Small.Equal(decimal.NewFromInt(1)))
	assert.True(t, cfg.Blinds().Big.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "handnotes.log", cfg.UI.LogFile, "unset values take defaults")
	assert.Equal(t, "/tmp/hands", cfg.Export.Directory)
	assert.False(t, cfg.UseClipboard())
}

func TestParsePartialConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
table {}
ui {}
export {}
`), "partial.hcl")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Blinds().Small.Equal(decimal.New(5, -1)))
}

func TestParseEmptyConfig(t *testing.T) {
	cfg, err := Parse(nil, "empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`table {`), "broken.hcl")
	assert.ErrorContains(t, err, "failed to parse HCL file")

	_, err = Parse([]byte(`
table { small_blind = "lots" }
`), "bad.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"zero big blind", func(c *Config) { c.Table.BigBlind = 0 }, "big blind must be positive"},
		{"negative small blind", func(c *Config) { c.Table.SmallBlind = -1 }, "small blind cannot be negative"},
		{"small above big", func(c *Config) { c.Table.SmallBlind = 3 }, "exceeds big blind"},
		{"bad log level", func(c *Config) { c.UI.LogLevel = "loud" }, "invalid log level"},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "invalid theme"},
		{"bad mode", func(c *Config) { c.Export.Mode = "email" }, "invalid export mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}
