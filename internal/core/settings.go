package core

import (
	"errors"
	"fmt"
	"os"
	"path"
	"regexp"
	"strings"

	"github.com/DonovanMods/mo2-inspect/internal/domain"
)

// SettingsFile is the instance configuration file name
const SettingsFile = "ModOrganizer.ini"

// baseDirPlaceholder stands for Settings/base_directory, or the instance
// directory when that key is unset.
const baseDirPlaceholder = "%BASE_DIR%"

var byteArrayPattern = regexp.MustCompile(`^@ByteArray\((.+)\)$`)

// InstanceOptions locates an instance
type InstanceOptions struct {
	InstallDir     string // Mod Organizer installation directory
	InstanceName   string // Shared instance name (empty = portable instance)
	SharedDataRoot string // Parent of the shared "ModOrganizer" directory, required for shared instances
}

// InstanceDir returns the directory that holds the instance settings
func (o InstanceOptions) InstanceDir() (string, error) {
	installDir := path.Clean(normalizePath(o.InstallDir))
	if o.InstanceName == "" {
		return installDir, nil
	}
	if o.SharedDataRoot == "" {
		return "", fmt.Errorf("shared instance %q needs a shared data root: %w", o.InstanceName, domain.ErrInvalidConfig)
	}
	return path.Join(normalizePath(o.SharedDataRoot), "ModOrganizer", o.InstanceName), nil
}

// LoadInstance reads the instance settings file and resolves every directory
// the other readers need.
func LoadInstance(opts InstanceOptions) (domain.Instance, error) {
	instanceDir, err := opts.InstanceDir()
	if err != nil {
		return domain.Instance{}, err
	}

	settingsPath := path.Join(instanceDir, SettingsFile)
	settings, err := loadINI(settingsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Instance{}, fmt.Errorf("reading %s: %w", settingsPath, domain.ErrConfigurationMissing)
		}
		return domain.Instance{}, fmt.Errorf("%w: %w", domain.ErrConfigurationParse, err)
	}

	for _, key := range []string{"selected_profile", "gamePath"} {
		if !settings.has("General", key) {
			return domain.Instance{}, fmt.Errorf("%s: missing General/%s: %w", settingsPath, key, domain.ErrConfigurationParse)
		}
	}

	baseDir := instanceDir
	if v := unwrapByteArray(settings.value("Settings", "base_directory")); v != "" {
		baseDir = path.Clean(normalizePath(v))
	}

	dir := func(key, fallback string) string {
		v := unwrapByteArray(settings.value("Settings", key))
		if v == "" {
			return path.Join(baseDir, fallback)
		}
		return strings.ReplaceAll(normalizePath(v), baseDirPlaceholder, baseDir)
	}

	return domain.Instance{
		InstallDir:      path.Clean(normalizePath(opts.InstallDir)),
		InstanceDir:     instanceDir,
		Portable:        opts.InstanceName == "",
		SelectedProfile: unwrapByteArray(settings.value("General", "selected_profile")),
		GamePath:        normalizePath(unwrapByteArray(settings.value("General", "gamePath"))),
		ProfilesDir:     dir("profiles_directory", "profiles"),
		ModsDir:         dir("mod_directory", "mods"),
		OverwriteDir:    dir("overwrite_directory", "overwrite"),
		DownloadsDir:    dir("download_directory", "downloads"),
	}, nil
}

// unwrapByteArray returns the inner string of a "@ByteArray(...)" value
func unwrapByteArray(v string) string {
	if m := byteArrayPattern.FindStringSubmatch(v); m != nil {
		return m[1]
	}
	return v
}

// normalizePath collapses QSettings-escaped backslashes and converts the
// remaining ones to forward slashes.
func normalizePath(p string) string {
	p = strings.ReplaceAll(p, `\\`, `\`)
	return strings.ReplaceAll(p, `\`, "/")
}
