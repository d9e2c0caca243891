// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName  = "contabancaria"
	fileName = appName + ".yaml"
)

// Config is the application configuration.
type Config struct {
	Language string    `mapstructure:"language" yaml:"language"`
	Log      LogConfig `mapstructure:"log" yaml:"log"`
	UI       UIConfig  `mapstructure:"ui" yaml:"ui"`
}

// LogConfig controls the package logger.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	// File receives log output while the full-screen UI is active. Empty
	// discards it.
	File string `mapstructure:"file" yaml:"file"`
}

// UIConfig holds front end switches.
type UIConfig struct {
	AltScreen   bool `mapstructure:"alt_screen" yaml:"alt_screen"`
	CopySummary bool `mapstructure:"copy_summary" yaml:"copy_summary"`
}

// Defaults returns the default values keyed the way viper expects them.
func Defaults() map[string]any {
	return map[string]any{
		"language":        "pt-BR",
		"log.level":       "info",
		"log.file":        "",
		"ui.alt_screen":   true,
		"ui.copy_summary": false,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "ContaBancaria")
		default:
			configDir = "/etc/" + appName
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, fileName), nil
}

// LoadConfig resolves T from defaults, the config file, CONTABANCARIA_*
// environment variables and the command's flags, in increasing precedence.
// A missing config file is reported as viper.ConfigFileNotFoundError together
// with a usable T built from the remaining sources.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return c, err
		}
		notFound = err
	}

	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
		if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// WriteConfigFile stores c at the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
