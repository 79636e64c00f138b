package core

import (
	"fmt"
	"os"
	"path"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/DonovanMods/mo2-inspect/internal/domain"
)

// MetaFile is the per-mod metadata file name
const MetaFile = "meta.ini"

// maxInstalledFiles bounds installedFiles/size. Larger values are treated as
// corrupt metadata.
const maxInstalledFiles = 10000

// pluginExtensions are the game content files a mod can contribute
var pluginExtensions = []string{".esm", ".esp", ".esl"}

// Mod is one entry of the mods directory. Its attributes are read lazily
// from meta.ini and the mod directory, then cached.
type Mod struct {
	org  *Organizer
	name string
	path string

	meta       memo[*iniFile]
	categories memo[[]string]
	plugins    memo[[]string]
	sources    memo[[]Source]
}

func newMod(org *Organizer, name, modDir string) *Mod {
	return &Mod{org: org, name: name, path: modDir}
}

// Name returns the mod directory name
func (m *Mod) Name() string {
	return m.name
}

// Path returns the mod directory
func (m *Mod) Path() string {
	return m.path
}

// Enabled reports whether the mod is enabled in the selected profile
func (m *Mod) Enabled() (bool, error) {
	return m.org.IsEnabled(m.name)
}

// Categories returns the names of the categories listed in meta.ini. Id 0 and
// ids missing from the catalog are dropped.
func (m *Mod) Categories() ([]string, error) {
	categories, err := m.categories.get(func() ([]string, error) {
		meta, err := m.metadata()
		if err != nil {
			return nil, err
		}

		categories := []string{}
		for _, field := range strings.Split(meta.value("General", "category"), ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			id, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("mod %s: category id %q: %w", m.name, field, domain.ErrMetadataParse)
			}
			title, ok, err := m.org.category(id)
			if err != nil {
				return nil, err
			}
			if ok {
				categories = append(categories, title)
			}
		}
		return categories, nil
	})
	return slices.Clone(categories), err
}

// Plugins returns the lower-cased names of the plugin files at the root of
// the mod directory
func (m *Mod) Plugins() ([]string, error) {
	plugins, err := m.plugins.get(func() ([]string, error) {
		names, err := listEntries(m.path, isPlugin)
		if err != nil {
			return nil, fmt.Errorf("listing plugins of %s: %w", m.name, err)
		}
		plugins := make([]string, len(names))
		for i, name := range names {
			plugins[i] = strings.ToLower(name)
		}
		sort.Strings(plugins)
		return plugins, nil
	})
	return slices.Clone(plugins), err
}

func isPlugin(info os.FileInfo) bool {
	if info.IsDir() {
		return false
	}
	return slices.Contains(pluginExtensions, strings.ToLower(path.Ext(info.Name())))
}

// URL returns the mod's web page. The second value is false when meta.ini
// does not name one.
func (m *Mod) URL() (string, bool, error) {
	meta, err := m.metadata()
	if err != nil {
		return "", false, err
	}
	url := meta.value("General", "url")
	return url, url != "", nil
}

// Sources returns one Source per file installed into the mod, in install
// order. Only the last one knows its file name.
func (m *Mod) Sources() ([]Source, error) {
	sources, err := m.sources.get(func() ([]Source, error) {
		meta, err := m.metadata()
		if err != nil {
			return nil, err
		}

		count := 1
		if size := meta.value("installedFiles", "size"); size != "" {
			count, err = strconv.Atoi(size)
			if err != nil {
				return nil, fmt.Errorf("mod %s: installed files size %q: %w", m.name, size, domain.ErrMetadataParse)
			}
			if count > maxInstalledFiles {
				return nil, fmt.Errorf("mod %s: installed files size %d exceeds %d: %w", m.name, count, maxInstalledFiles, domain.ErrMetadataParse)
			}
		}

		sources := []Source{}
		for i := 1; i <= count; i++ {
			modID, err := domain.ParseNexusID(meta.value("installedFiles", fmt.Sprintf(`%d\modid`, i)))
			if err != nil {
				return nil, fmt.Errorf("mod %s: source %d mod id: %w: %w", m.name, i, domain.ErrMetadataParse, err)
			}
			fileID, err := domain.ParseNexusID(meta.value("installedFiles", fmt.Sprintf(`%d\fileid`, i)))
			if err != nil {
				return nil, fmt.Errorf("mod %s: source %d file id: %w: %w", m.name, i, domain.ErrMetadataParse, err)
			}
			var fileName string
			if i == count {
				fileName = meta.value("General", "installationFile")
			}
			sources = append(sources, Source{
				org:         m.org,
				nexusModID:  modID,
				nexusFileID: fileID,
				fileName:    fileName,
			})
		}
		return sources, nil
	})
	return slices.Clone(sources), err
}

// metadata returns the parsed meta.ini, or an empty document if the mod has none
func (m *Mod) metadata() (*iniFile, error) {
	return m.meta.get(func() (*iniFile, error) {
		meta, err := loadOptionalINI(path.Join(m.path, MetaFile))
		if err != nil {
			return nil, fmt.Errorf("mod %s: %w: %w", m.name, domain.ErrMetadataParse, err)
		}
		return meta, nil
	})
}
