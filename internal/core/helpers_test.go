package core_test

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/DonovanMods/mo2-inspect/internal/core"

	"github.com/stretchr/testify/require"
)

// iniSections is section -> key -> value
type iniSections map[string]map[string]string

// merge returns base with every key of override replaced or added
func (base iniSections) merge(override iniSections) iniSections {
	out := iniSections{}
	for section, keys := range base {
		out[section] = map[string]string{}
		for k, v := range keys {
			out[section][k] = v
		}
	}
	for section, keys := range override {
		if out[section] == nil {
			out[section] = map[string]string{}
		}
		for k, v := range keys {
			out[section][k] = v
		}
	}
	return out
}

func writeINI(t *testing.T, path string, content iniSections) {
	t.Helper()

	var b strings.Builder
	sections := make([]string, 0, len(content))
	for s := range content {
		sections = append(sections, s)
	}
	sort.Strings(sections)
	for _, s := range sections {
		fmt.Fprintf(&b, "[%s]\n", s)
		keys := make([]string, 0, len(content[s]))
		for k := range content[s] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s=%s\n", k, content[s][k])
		}
		b.WriteString("\n")
	}

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

var defaultSettings = iniSections{
	"General": {
		"gamePath":         "C:/path/to/game",
		"selected_profile": "Default",
	},
	"Settings": {
		"log_level": "1",
	},
}

var defaultModMeta = iniSections{
	"General": {
		"category":         "2,",
		"url":              "https://test-mod.url",
		"installationFile": "TestMod-v1.7z",
	},
	"installedFiles": {
		"size":     "1",
		`1\modid`:  "1337",
		`1\fileid`: "666",
	},
}

var defaultDownloadMeta = iniSections{
	"General": {
		"name":   "Test Mod file",
		"modID":  "1107",
		"fileID": "42",
	},
}

// setupInstance writes ModOrganizer.ini into a fresh portable instance
// directory and returns that directory
func setupInstance(t *testing.T, settings iniSections) string {
	t.Helper()
	dir := t.TempDir()
	writeINI(t, filepath.Join(dir, core.SettingsFile), defaultSettings.merge(settings))
	return dir
}

// setupOrganizer opens a portable instance with the given settings overrides
func setupOrganizer(t *testing.T, settings iniSections) (*core.Organizer, string) {
	t.Helper()
	dir := setupInstance(t, settings)
	org, err := core.New(core.Config{InstanceOptions: core.InstanceOptions{InstallDir: dir}})
	require.NoError(t, err)
	return org, dir
}

// setupMod creates mods/<name> with a meta.ini and returns the mod directory
func setupMod(t *testing.T, instanceDir, name string, meta iniSections) string {
	t.Helper()
	modDir := filepath.Join(instanceDir, "mods", name)
	require.NoError(t, os.MkdirAll(modDir, 0755))
	writeINI(t, filepath.Join(modDir, core.MetaFile), defaultModMeta.merge(meta))
	return modDir
}

// setupDownload creates downloads/<fileName> with its .meta file and returns
// the downloaded file path
func setupDownload(t *testing.T, instanceDir, fileName string, meta iniSections) string {
	t.Helper()
	downloadsDir := filepath.Join(instanceDir, "downloads")
	writeINI(t, filepath.Join(downloadsDir, fileName+core.MetaSuffix), defaultDownloadMeta.merge(meta))
	downloaded := filepath.Join(downloadsDir, fileName)
	writeFile(t, downloaded, fileName+" downloaded content")
	return downloaded
}

// writeModList writes the Default profile's modlist.txt
func writeModList(t *testing.T, instanceDir string, lines ...string) {
	t.Helper()
	writeFile(t, filepath.Join(instanceDir, "profiles", "Default", core.ModListFile), strings.Join(lines, "\n")+"\n")
}
