package core

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/DonovanMods/mo2-inspect/internal/domain"

	"go.uber.org/zap"
)

// Config holds configuration for opening an instance
type Config struct {
	InstanceOptions
	Logger *zap.Logger // Optional, defaults to a no-op logger
}

// Organizer is a read-only view of one Mod Organizer instance. Every derived
// value is computed on first use and kept for the lifetime of the Organizer,
// even if the files it came from change afterwards.
type Organizer struct {
	instance domain.Instance
	logger   *zap.Logger

	modNames      memo[[]string]
	downloadNames memo[[]string]
	loadOrder     memo[[]domain.LoadOrderEntry]
	enabled       memo[map[string]bool]
	categories    memo[map[int]string]

	mu        sync.Mutex
	mods      map[string]*Mod
	downloads map[string]*Download
}

// New reads the instance settings and returns an Organizer for them
func New(cfg Config) (*Organizer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	instance, err := LoadInstance(cfg.InstanceOptions)
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded instance",
		zap.String("instance_dir", instance.InstanceDir),
		zap.Bool("portable", instance.Portable),
		zap.String("selected_profile", instance.SelectedProfile),
		zap.String("mods_dir", instance.ModsDir),
		zap.String("downloads_dir", instance.DownloadsDir),
		zap.String("game_path", instance.GamePath),
	)

	return &Organizer{
		instance:  instance,
		logger:    logger,
		mods:      make(map[string]*Mod),
		downloads: make(map[string]*Download),
	}, nil
}

// Instance returns the resolved instance settings
func (o *Organizer) Instance() domain.Instance {
	return o.instance
}

// GamePath returns the game installation directory
func (o *Organizer) GamePath() string {
	return o.instance.GamePath
}

// DownloadsDir returns the downloads directory
func (o *Organizer) DownloadsDir() string {
	return o.instance.DownloadsDir
}

// ModNames returns the names of all mod directories, whether enabled or not
func (o *Organizer) ModNames() ([]string, error) {
	names, err := o.modNames.get(func() ([]string, error) {
		names, err := listEntries(o.instance.ModsDir, isDir)
		if errors.Is(err, os.ErrNotExist) {
			o.logger.Debug("mods directory missing", zap.String("mods_dir", o.instance.ModsDir))
			return []string{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("listing mods: %w", err)
		}
		o.logger.Debug("listed mods", zap.Int("count", len(names)))
		return names, nil
	})
	return slices.Clone(names), err
}

// Mod returns the mod stored in the named directory. The second value is
// false when no such directory exists.
func (o *Organizer) Mod(name string) (*Mod, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if mod, ok := o.mods[name]; ok {
		return mod, mod != nil
	}

	var mod *Mod
	if isBaseName(name) {
		modDir := path.Join(o.instance.ModsDir, name)
		if info, err := os.Stat(modDir); err == nil && info.IsDir() {
			mod = newMod(o, name, modDir)
		}
	}
	o.mods[name] = mod
	return mod, mod != nil
}

// LoadOrder returns the selected profile's mod list from the first mod
// applied to the last
func (o *Organizer) LoadOrder() ([]domain.LoadOrderEntry, error) {
	entries, err := o.loadOrder.get(func() ([]domain.LoadOrderEntry, error) {
		entries, err := ReadLoadOrder(o.instance.ProfilesDir, o.instance.SelectedProfile)
		if err != nil {
			return nil, err
		}
		o.logger.Debug("read load order",
			zap.String("profile", o.instance.SelectedProfile),
			zap.Int("entries", len(entries)),
		)
		return entries, nil
	})
	return slices.Clone(entries), err
}

// ModsList returns the mod names of the load order
func (o *Organizer) ModsList() ([]string, error) {
	entries, err := o.LoadOrder()
	if err != nil {
		return nil, err
	}
	return domain.EntryNames(entries), nil
}

// EnabledMods returns the enabled mod names in load order
func (o *Organizer) EnabledMods() ([]string, error) {
	entries, err := o.LoadOrder()
	if err != nil {
		return nil, err
	}
	return domain.EnabledNames(entries), nil
}

// IsEnabled reports whether the named mod is enabled in the selected profile.
// When a name appears more than once, the entry applied last wins.
func (o *Organizer) IsEnabled(name string) (bool, error) {
	enabled, err := o.enabled.get(func() (map[string]bool, error) {
		entries, err := o.LoadOrder()
		if err != nil {
			return nil, err
		}
		enabled := make(map[string]bool, len(entries))
		for _, e := range entries {
			enabled[e.Name] = e.Enabled
		}
		return enabled, nil
	})
	if err != nil {
		return false, err
	}
	return enabled[name], nil
}

// Categories returns the category catalog (id -> title)
func (o *Organizer) Categories() (map[int]string, error) {
	categories, err := o.catalog()
	return maps.Clone(categories), err
}

func (o *Organizer) catalog() (map[int]string, error) {
	return o.categories.get(func() (map[int]string, error) {
		return LoadCategories(o.instance.InstanceDir)
	})
}

// category resolves one id. Id 0 is reserved and never resolves.
func (o *Organizer) category(id int) (string, bool, error) {
	if id <= 0 {
		return "", false, nil
	}
	categories, err := o.catalog()
	if err != nil {
		return "", false, err
	}
	title, ok := categories[id]
	return title, ok, nil
}

// DownloadNames returns the names of the files in the downloads directory,
// leaving out their .meta files
func (o *Organizer) DownloadNames() ([]string, error) {
	names, err := o.downloadNames.get(func() ([]string, error) {
		names, err := listEntries(o.instance.DownloadsDir, isDownload)
		if errors.Is(err, os.ErrNotExist) {
			o.logger.Debug("downloads directory missing", zap.String("downloads_dir", o.instance.DownloadsDir))
			return []string{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("listing downloads: %w", err)
		}
		return names, nil
	})
	return slices.Clone(names), err
}

func isDownload(info os.FileInfo) bool {
	return info.Mode().IsRegular() && !strings.HasSuffix(info.Name(), MetaSuffix)
}

// Download returns the downloaded file with the given name. The second value
// is false when no regular file of that name is directly in the downloads
// directory.
func (o *Organizer) Download(fileName string) (*Download, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if dl, ok := o.downloads[fileName]; ok {
		return dl, dl != nil
	}

	var dl *Download
	if isBaseName(fileName) {
		info, err := os.Stat(path.Join(o.instance.DownloadsDir, fileName))
		switch {
		case err == nil && info.Mode().IsRegular():
			dl = newDownload(o, fileName)
		case err != nil && !errors.Is(err, os.ErrNotExist):
			o.logger.Warn("checking download", zap.String("file", fileName), zap.Error(err))
		}
	}
	o.downloads[fileName] = dl
	return dl, dl != nil
}
