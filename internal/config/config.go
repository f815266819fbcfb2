// Package config loads application settings from an optional YAML file
// and environment variables.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Speech   SpeechConfig   `mapstructure:"speech"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

type SpeechConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Command string `mapstructure:"command"`
	Lang    string `mapstructure:"lang"`
}

// Dir returns the configuration directory, honoring XDG_CONFIG_HOME.
func Dir() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "lingo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "lingo")
}

// Load reads config.yaml from the given directory. A missing file is
// not an error; defaults apply and LINGO_* environment variables still
// override.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("LINGO")
	v.AutomaticEnv()

	v.BindEnv("database.path", "LINGO_DB")
	v.BindEnv("log.file", "LINGO_LOG_FILE")
	v.BindEnv("log.level", "LINGO_LOG_LEVEL")
	v.BindEnv("speech.enabled", "LINGO_SPEECH")
	v.BindEnv("speech.command", "LINGO_SPEECH_COMMAND")

	v.SetDefault("log.level", "info")
	v.SetDefault("speech.enabled", true)
	v.SetDefault("speech.lang", "en-US")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
