// Package config loads planner settings from defaults, a TOML file, the
// environment and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"subnet-planner/models"
)

const (
	AppName   = "subnet-planner"
	EnvPrefix = "SUBNET_PLANNER"
)

var ErrConfigExists = errors.New("config file already exists")

// flagKeys maps config keys to the cobra flags that may override them.
var flagKeys = map[string]string{
	"output.format":      "format",
	"output.directory":   "output-dir",
	"output.max_records": "max-records",
	"log.level":          "log-level",
	"log.file":           "log-file",
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, AppName, AppName+".toml"), nil
}

// Load resolves the configuration. cmd may be nil when no flags apply.
// An explicit path must exist; the default locations are optional.
// It returns the validated config and the file used, if any.
func Load(cmd *cobra.Command, explicitPath string) (*models.Config, string, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName(AppName)
		if path, err := DefaultPath(); err == nil {
			v.AddConfigPath(filepath.Dir(path))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitPath != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("error reading config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for key, name := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, "", fmt.Errorf("error binding flag --%s: %w", name, err)
				}
			}
		}
	}

	var cfg models.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, v.ConfigFileUsed(), nil
}

func setDefaults(v *viper.Viper) {
	d := models.DefaultConfig
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.directory", d.Output.Directory)
	v.SetDefault("output.max_records", d.Output.MaxRecords)
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("tui.history_size", d.TUI.HistorySize)
	v.SetDefault("tui.scroll_step", d.TUI.ScrollStep)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// WriteDefault writes the default configuration as TOML to path. An existing
// file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", filepath.Dir(path), err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(models.DefaultConfig); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}
