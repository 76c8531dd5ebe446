// Package config loads the handnotes HCL configuration.
//
// A missing file is not an error: every setting has a default.
//
//	table {
//	  small_blind = 0.5
//	  big_blind   = 1
//	}
//
//	ui {
//	  log_level = "info"
//	  log_file  = "handnotes.log"
//	  theme     = "dark"
//	}
//
//	export {
//	  directory = "hands"
//	  mode      = "clipboard"
//	}
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/handnotes/internal/betting"
	"github.com/shopspring/decimal"
)

// DefaultFile is the config file looked up when no path is given.
const DefaultFile = "handnotes.hcl"

// Export modes.
const (
	ModeClipboard = "clipboard"
	ModeFile      = "file"
)

// Config is the complete handnotes configuration.
type Config struct {
	Table  *TableSettings  `hcl:"table,block"`
	UI     *UISettings     `hcl:"ui,block"`
	Export *ExportSettings `hcl:"export,block"`
}

// TableSettings holds the blinds, in big blinds or chips.
type TableSettings struct {
	SmallBlind float64 `hcl:"small_blind,optional"`
	BigBlind   float64 `hcl:"big_blind,optional"`
}

// UISettings contains terminal UI settings.
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	Theme    string `hcl:"theme,optional"`
}

// ExportSettings controls where shared transcripts go.
type ExportSettings struct {
	Directory string `hcl:"directory,optional"`
	Mode      string `hcl:"mode,optional"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Table: &TableSettings{
			SmallBlind: 0.5,
			BigBlind:   1,
		},
		UI: &UISettings{
			LogLevel: "warn",
			LogFile:  "handnotes.log",
			Theme:    "default",
		},
		Export: &ExportSettings{
			Directory: "hands",
			Mode:      ModeClipboard,
		},
	}
}

// Load reads the configuration from filename, returning defaults when the
// file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(src, filepath.Base(filename))
}

// Parse decodes HCL source and fills in defaults for missing values.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	// Blocks are optional.
	if c.Table == nil {
		c.Table = defaults.Table
	}
	if c.UI == nil {
		c.UI = defaults.UI
	}
	if c.Export == nil {
		c.Export = defaults.Export
	}

	if c.Table.SmallBlind == 0 && c.Table.BigBlind == 0 {
		c.Table = defaults.Table
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = defaults.UI.LogFile
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.Export.Directory == "" {
		c.Export.Directory = defaults.Export.Directory
	}
	if c.Export.Mode == "" {
		c.Export.Mode = defaults.Export.Mode
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Table.BigBlind <= 0 {
		return fmt.Errorf("big blind must be positive")
	}
	if c.Table.SmallBlind < 0 {
		return fmt.Errorf("small blind cannot be negative")
	}
	if c.Table.SmallBlind > c.Table.BigBlind {
		return fmt.Errorf("small blind %v exceeds big blind %v", c.Table.SmallBlind, c.Table.BigBlind)
	}

	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	validThemes := map[string]bool{
		"default": true,
		"dark":    true,
		"light":   true,
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	switch c.Export.Mode {
	case ModeClipboard, ModeFile:
	default:
		return fmt.Errorf("invalid export mode: %s", c.Export.Mode)
	}
	return nil
}

// Blinds returns the table blinds for the betting engine.
func (c *Config) Blinds() betting.Blinds {
	return betting.Blinds{
		Small: decimal.NewFromFloat(c.Table.SmallBlind),
		Big:   decimal.NewFromFloat(c.Table.BigBlind),
	}
}

// LogLevel returns the parsed log level, falling back to warn.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// UseClipboard reports whether transcripts go to the clipboard first.
func (c *Config) UseClipboard() bool {
	return c.Export.Mode == ModeClipboard
}
