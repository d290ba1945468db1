// Package config resolves planboard settings from defaults, an optional
// .planboard.yaml file and PLANBOARD_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	KeyDB          = "db"
	KeyPlan        = "plan"
	KeyFile        = "file"
	KeyLogUseCases = "log_use_cases"
	KeyTimezone    = "timezone"

	envPrefix  = "PLANBOARD"
	configName = ".planboard"
)

// Config holds the resolved settings.
type Config struct {
	DBPath      string
	Plan        string
	File        string
	LogUseCases bool
	Timezone    string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		DBPath: "~/.planboard/planboard.db",
	}
}

// Load reads configuration from the working directory and the home
// directory. PLANBOARD_CONFIG_PATH adds a directory searched first.
func Load() (Config, error) {
	var dirs []string
	if override := os.Getenv("PLANBOARD_CONFIG_PATH"); override != "" {
		dirs = append(dirs, override)
	}
	dirs = append(dirs, ".")
	if home, err := homedir.Dir(); err == nil {
		dirs = append(dirs, home)
	}
	return LoadFrom(dirs...)
}

// LoadFrom reads configuration, searching only dirs for a config file.
func LoadFrom(dirs ...string) (Config, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetDefault(KeyDB, defaults.DBPath)
	v.SetDefault(KeyPlan, defaults.Plan)
	v.SetDefault(KeyFile, defaults.File)
	v.SetDefault(KeyLogUseCases, defaults.LogUseCases)
	v.SetDefault(KeyTimezone, defaults.Timezone)
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	dbPath, err := homedir.Expand(v.GetString(KeyDB))
	if err != nil {
		return Config{}, fmt.Errorf("expanding db path: %w", err)
	}

	cfg := Config{
		DBPath:      dbPath,
		Plan:        v.GetString(KeyPlan),
		File:        v.GetString(KeyFile),
		LogUseCases: v.GetBool(KeyLogUseCases),
		Timezone:    v.GetString(KeyTimezone),
	}
	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Location is the zone boards are computed in; time.Local when unset.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
