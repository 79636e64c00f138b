// Package config loads the mo2i tool configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DonovanMods/mo2-inspect/internal/domain"
)

// ParseConfigPath validates an explicit config file path (--config-file) and
// returns it cleaned. Every failure wraps domain.ErrInvalidConfig.
// The path must be absolute, free of "..", an existing regular file, and end
// in .yaml or .yml.
func ParseConfigPath(path string) (string, error) {
	invalid := func(reason string) error {
		return fmt.Errorf("%s: %w", reason, domain.ErrInvalidConfig)
	}

	if path == "" {
		return "", invalid("config path cannot be empty")
	}
	if !filepath.IsAbs(path) {
		return "", invalid("config path must be absolute")
	}
	if strings.Contains(path, "..") {
		return "", invalid("config path contains invalid traversal")
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", invalid("config file does not exist")
		}
		return "", err
	}
	if info.IsDir() {
		return "", invalid("config path is a directory, not a file")
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return "", invalid("config file must have .yaml or .yml extension")
	}

	return filepath.Clean(path), nil
}
