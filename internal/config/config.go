// Package config loads the optional per-user defaults file. Flags always win
// over file values; a missing file means stock defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Justinkarso/create-revite/internal/debug"
)

// EnvConfigPath overrides the defaults file location when set.
const EnvConfigPath = "CREATE_REVITE_CONFIG"

// Config is the ~/.config/create-revite/config.yaml schema.
type Config struct {
	// Defaults seeds the CLI flags that were not given explicitly.
	Defaults Defaults `yaml:"defaults"`
	// PackageManager picks the package manager when --pm is not given
	// and no manager is detected from the environment.
	PackageManager string `yaml:"package_manager,omitempty"`
}

// Defaults mirrors the scaffolding flags.
type Defaults struct {
	TypeScript bool   `yaml:"typescript,omitempty"`
	Tailwind   *bool  `yaml:"tailwind,omitempty"`
	Template   string `yaml:"template,omitempty"`
}

// TailwindEnabled resolves the tailwind default; absent means enabled.
func (d Defaults) TailwindEnabled() bool {
	if d.Tailwind == nil {
		return true
	}
	return *d.Tailwind
}

// Path returns the defaults file location, honoring the env override.
func Path() (string, error) {
	if override := os.Getenv(EnvConfigPath); override != "" {
		return override, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, "create-revite", "config.yaml"), nil
}

// Load reads the defaults file at path. A missing file is not an error and
// yields the zero config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		debug.DebugValue("[config] No defaults file at", path)
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	debug.DebugValue("[config] Loaded defaults from", path)
	return &cfg, nil
}
