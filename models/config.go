package models

import (
	"strconv"
	"strings"
)

type Config struct {
	Output OutputConfig `json:"output" yaml:"output" toml:"output" mapstructure:"output"`
	TUI    TUIConfig    `json:"tui" yaml:"tui" toml:"tui" mapstructure:"tui"`
	Log    LogConfig    `json:"log" yaml:"log" toml:"log" mapstructure:"log"`
}

type OutputConfig struct {
	Format     string `json:"format" yaml:"format" toml:"format" mapstructure:"format"`
	Directory  string `json:"directory" yaml:"directory" toml:"directory" mapstructure:"directory"`
	MaxRecords int    `json:"max_records" yaml:"max_records" toml:"max_records" mapstructure:"max_records"`
	Color      bool   `json:"color" yaml:"color" toml:"color" mapstructure:"color"`
}

type TUIConfig struct {
	HistorySize int `json:"history_size" yaml:"history_size" toml:"history_size" mapstructure:"history_size"`
	ScrollStep  int `json:"scroll_step" yaml:"scroll_step" toml:"scroll_step" mapstructure:"scroll_step"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level" toml:"level" mapstructure:"level"`
	File  string `json:"file" yaml:"file" toml:"file" mapstructure:"file"`
}

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var DefaultConfig = Config{
	Output: OutputConfig{
		Format:     FormatText,
		Directory:  "outputs",
		MaxRecords: 65536,
		Color:      true,
	},
	TUI: TUIConfig{
		HistorySize: 50,
		ScrollStep:  3,
	},
	Log: LogConfig{
		Level: "info",
	},
}

// Validate rejects unusable values and fills zero values from DefaultConfig.
func (c *Config) Validate() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	switch c.Output.Format {
	case "":
		c.Output.Format = DefaultConfig.Output.Format
	case FormatText, FormatJSON, FormatYAML:
	default:
		return &ConfigError{Field: "output.format", Message: "unsupported format " + strconv.Quote(c.Output.Format) + " (want text, json or yaml)"}
	}

	if c.Output.Directory == "" {
		c.Output.Directory = DefaultConfig.Output.Directory
	}

	// 0 lifts the limit
	if c.Output.MaxRecords < 0 {
		return &ConfigError{Field: "output.max_records", Message: "must not be negative"}
	}

	if c.TUI.HistorySize <= 0 {
		c.TUI.HistorySize = DefaultConfig.TUI.HistorySize
	}

	if c.TUI.ScrollStep <= 0 {
		c.TUI.ScrollStep = DefaultConfig.TUI.ScrollStep
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "":
		c.Log.Level = DefaultConfig.Log.Level
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "log.level", Message: "unknown level " + strconv.Quote(c.Log.Level)}
	}

	return nil
}

type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
