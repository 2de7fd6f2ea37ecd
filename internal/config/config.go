package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Color modes accepted for Config.Color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorModes lists the accepted values of the color key
var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// Config represents the application configuration
type Config struct {
	Color string `toml:"color"`
	Seed  *int64 `toml:"seed,omitempty"`
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "blackjack", "config.toml")
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Color: ColorAuto,
	}
}

// LoadConfig loads the config file, creating it with defaults if it doesn't exist
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	return LoadConfigFile(configPath)
}

// LoadConfigFile decodes the config at path. Missing keys keep their defaults.
func LoadConfigFile(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if !ValidColorMode(config.Color) {
		return nil, fmt.Errorf("invalid color mode %q in %s", config.Color, path)
	}

	return config, nil
}

// ValidColorMode reports whether mode is one of ColorModes
func ValidColorMode(mode string) bool {
	for _, m := range ColorModes {
		if m == mode {
			return true
		}
	}
	return false
}

// createDefaultConfig writes the default config to path
func createDefaultConfig(path string) (*Config, error) {
	config := Default()
	if err := writeConfig(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SetSeed stores a fixed seed in the config file. A nil seed removes it.
func SetSeed(seed *int64) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.Seed = seed
	return writeConfig(GetConfigFilePath(), config)
}

func writeConfig(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
