package validator

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/blackjack/internal/config"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

// Validate checks a config file. The returned error is set only when the
// file cannot be read or is not TOML at all.
func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	var cfg config.Config
	meta, err := toml.DecodeFile(v.ConfigPath, &cfg)
	if err != nil {
		return v.Results, fmt.Errorf("error parsing %s: %w", v.ConfigPath, err)
	}

	v.validateKeys(meta)
	v.validateColor(meta, cfg)
	v.validateSeed(cfg)

	return v.Results, nil
}

func (v *Validator) validateKeys(meta toml.MetaData) {
	for _, key := range meta.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("unknown key: %s", key.String()))
	}
}

func (v *Validator) validateColor(meta toml.MetaData, cfg config.Config) {
	if !meta.IsDefined("color") {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("color is not set, using %q", config.ColorAuto))
		return
	}

	if !config.ValidColorMode(cfg.Color) {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("invalid color: %q (supported: %s)", cfg.Color, strings.Join(config.ColorModes, ", ")))
	}
}

func (v *Validator) validateSeed(cfg config.Config) {
	if cfg.Seed != nil {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("seed is fixed to %d, every round deals the same cards", *cfg.Seed))
	}
}
