package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DonovanMods/mo2-inspect/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_LogsResolvedInstance(t *testing.T) {
	dir := setupInstance(t, nil)
	obs, logs := observer.New(zapcore.DebugLevel)

	org, err := core.New(core.Config{
		InstanceOptions: core.InstanceOptions{InstallDir: dir},
		Logger:          zap.New(obs),
	})
	require.NoError(t, err)
	assert.Equal(t, "C:/path/to/game", org.GamePath())

	entries := logs.FilterMessage("loaded instance").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Default", entries[0].ContextMap()["selected_profile"])
}

func TestOrganizer_ModNames(t *testing.T) {
	org, dir := setupOrganizer(t, nil)
	setupMod(t, dir, "TestMod", nil)
	setupMod(t, dir, "Another Mod", nil)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "mods", ".hidden"), 0755))
	writeFile(t, filepath.Join(dir, "mods", ".DS_Store"), "junk")
	writeFile(t, filepath.Join(dir, "mods", "notes.txt"), "not a mod")

	names, err := org.ModNames()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{".hidden", "Another Mod", "TestMod"}, names)
}

func TestOrganizer_ModNamesWithBrackets(t *testing.T) {
	modsDir := filepath.Join(t.TempDir(), "[MO2] mods")
	org, _ := setupOrganizer(t, iniSections{
		"Settings": {"mod_directory": filepath.ToSlash(modsDir)},
	})
	for _, name := range []string{"[SSE] Mod [v1]", "Mod*Star", "Plain"} {
		require.NoError(t, os.MkdirAll(filepath.Join(modsDir, name), 0755))
	}

	names, err := org.ModNames()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"[SSE] Mod [v1]", "Mod*Star", "Plain"}, names)

	mod, ok := org.Mod("[SSE] Mod [v1]")
	require.True(t, ok)
	assert.Equal(t, "[SSE] Mod [v1]", mod.Name())
}

func TestOrganizer_ModNamesMissingDirectory(t *testing.T) {
	org, _ := setupOrganizer(t, nil)

	names, err := org.ModNames()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestOrganizer_Mod(t *testing.T) {
	org, dir := setupOrganizer(t, nil)
	modDir := setupMod(t, dir, "TestMod", nil)

	mod, ok := org.Mod("TestMod")
	require.True(t, ok)
	assert.Equal(t, "TestMod", mod.Name())
	assert.Equal(t, filepath.ToSlash(modDir), mod.Path())

	again, ok := org.Mod("TestMod")
	require.True(t, ok)
	assert.Same(t, mod, again)
}

func TestOrganizer_ModUnknown(t *testing.T) {
	org, dir := setupOrganizer(t, nil)
	writeFile(t, filepath.Join(dir, "mods", "file.txt"), "not a mod")

	for _, name := range []string{"Unknown", "file.txt", "", "..", "../mods"} {
		mod, ok := org.Mod(name)
		assert.False(t, ok, name)
		assert.Nil(t, mod, name)
	}
}

func TestOrganizer_ModAbsenceIsCached(t *testing.T) {
	org, dir := setupOrganizer(t, nil)

	_, ok := org.Mod("Late")
	require.False(t, ok)

	setupMod(t, dir, "Late", nil)
	_, ok = org.Mod("Late")
	assert.False(t, ok)
}

func TestOrganizer_Download(t *testing.T) {
	org, dir := setupOrganizer(t, nil)
	setupDownload(t, dir, "TestMod-v1.7z", nil)

	dl, ok := org.Download("TestMod-v1.7z")
	require.True(t, ok)
	assert.Equal(t, "TestMod-v1.7z", dl.FileName())

	again, ok := org.Download("TestMod-v1.7z")
	require.True(t, ok)
	assert.Same(t, dl, again)

	_, ok = org.Download("Missing.7z")
	assert.False(t, ok)
}

func TestOrganizer_DownloadUnknown(t *testing.T) {
	org, dir := setupOrganizer(t, nil)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "downloads", "partial"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "profiles"), 0755))

	for _, name := range []string{"Unknown.7z", "partial", "", ".", "..", "../profiles", "partial/../x"} {
		dl, ok := org.Download(name)
		assert.False(t, ok, name)
		assert.Nil(t, dl, name)
	}
}

func TestOrganizer_DownloadNames(t *testing.T) {
	org, dir := setupOrganizer(t, nil)
	setupDownload(t, dir, "b.zip", nil)
	setupDownload(t, dir, "a [v2].7z", nil)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "downloads", "partial"), 0755))

	names, err := org.DownloadNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"a [v2].7z", "b.zip"}, names)
}

func TestOrganizer_DownloadNamesMissingDirectory(t *testing.T) {
	org, _ := setupOrganizer(t, nil)

	names, err := org.DownloadNames()
	require.NoError(t, err)
	assert.Empty(t, names)
}
