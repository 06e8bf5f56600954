package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the config directories.
const configFile = "shooter.yaml"

// Load loads the shooter configuration.
// Search order: customPath -> ~/.arcade/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
//
// An explicit customPath must exist and parse; the implicit locations are
// skipped when missing or broken.
func Load(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if dir := userConfigDir(); dir != "" {
		if cfg, err := LoadFS(os.DirFS(dir), configFile); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFS(os.DirFS("configs"), configFile); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFS reads and parses a config file from fsys.
func LoadFS(fsys fs.FS, name string) (ShooterConfig, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return ShooterConfig{}, fmt.Errorf("failed to read config %s: %w", name, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return ShooterConfig{}, fmt.Errorf("failed to parse config %s: %w", name, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs
// the keys it changes, and validates the result.
func Parse(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

// userConfigDir returns ~/.arcade/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}
