package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "PACKAGE_CALCULATOR"
	EnvConfig = EnvPrefix + "_CONFIG"
)

// Config holds application configuration.
type Config struct {
	Pricing PricingConfig
	Log     LogConfig
	Project ProjectConfig
	Window  WindowConfig
}

// PricingConfig selects the tier evaluation mode ("faithful" or "corrected").
type PricingConfig struct {
	Mode string
}

type LogConfig struct {
	Level string
	JSON  bool
}

// ProjectConfig holds the project opened at startup. Empty means none.
type ProjectConfig struct {
	Root string
}

type WindowConfig struct {
	Width  float32
	Height float32
}

// DefaultPath is where Load looks when EnvConfig is unset.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locate user config dir")
	}
	return filepath.Join(dir, "package-calculator", "config.toml"), nil
}

func filePath() (string, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return path, nil
	}
	return DefaultPath()
}

// Load reads configuration from file and env. Env var overrides use prefix PACKAGE_CALCULATOR_.
// Without a resolvable config file only defaults and env apply.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("pricing.mode", "faithful")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("project.root", "")
	v.SetDefault("window.width", 1200)
	v.SetDefault("window.height", 800)

	v.SetConfigType("toml")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path, err := filePath(); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
			return Config{}, errors.Wrap(err, "read config")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	return c, nil
}

// SavePricingMode stores mode in the config file and leaves every other key in the file
// as it was. Env overrides are never written back.
func SavePricingMode(mode string) error {
	path, err := filePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "mkdir config dir")
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "read config")
	}

	v.Set("pricing.mode", mode)
	if err := v.WriteConfigAs(path); err != nil {
		return errors.Wrap(err, "write config")
	}
	return nil
}
