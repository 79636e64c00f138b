package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside the config directory
const FileName = "config.yaml"

// Config holds mo2i settings
type Config struct {
	InstallDir     string `yaml:"install_dir"`      // Mod Organizer installation directory
	InstanceName   string `yaml:"instance_name"`    // Empty for portable instances
	SharedDataRoot string `yaml:"shared_data_root"` // Usually %LOCALAPPDATA%, only used for shared instances
	LogLevel       string `yaml:"log_level"`
	Keybindings    string `yaml:"keybindings"`
	DatabasePath   string `yaml:"database_path"` // Snapshot database, empty = data dir default
}

func defaults() *Config {
	return &Config{
		LogLevel:    "warn",
		Keybindings: "vim",
	}
}

// Load reads configuration from the given directory. A missing file yields
// the defaults.
func Load(configDir string) (*Config, error) {
	cfg, err := LoadFile(filepath.Join(configDir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return defaults(), nil
	}
	return cfg, err
}

// LoadFile reads configuration from an explicit file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes configuration to the given directory
func (c *Config) Save(configDir string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(configDir, FileName), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
