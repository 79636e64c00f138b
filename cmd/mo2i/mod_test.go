package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/DonovanMods/mo2-inspect/internal/core"
	"github.com/DonovanMods/mo2-inspect/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModCmd_Structure(t *testing.T) {
	assert.Equal(t, "mod <name>", modCmd.Use)
	assert.NotEmpty(t, modCmd.Short)
	assert.Error(t, modCmd.Args(modCmd, nil), "a mod name is required")
}

func TestModCmd_Show(t *testing.T) {
	resetFlags(t, setupInstance(t))

	out, err := run(t, modCmd, "mod", "SkyUI")
	require.NoError(t, err)

	assert.Contains(t, out, "Mod: SkyUI")
	assert.Contains(t, out, "Status: enabled")
	assert.Contains(t, out, "Categories: Armour")
	assert.Contains(t, out, "URL: https://www.nexusmods.com/skyrimspecialedition/mods/12604")
	assert.Contains(t, out, "- skyui_se.esp")
	assert.Contains(t, out, "1. nexus_mods mod 12604 file 35407")
	assert.Contains(t, out, "File: SkyUI_5_2_SE.7z")
	assert.Contains(t, out, "Download: 7 B")
}

func TestModCmd_DownloadMissing(t *testing.T) {
	dir := setupInstance(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "downloads", "SkyUI_5_2_SE.7z")))
	resetFlags(t, dir)

	out, err := run(t, modCmd, "mod", "SkyUI")
	require.NoError(t, err)
	assert.Contains(t, out, "not in downloads directory")
}

func TestModCmd_JSON(t *testing.T) {
	resetFlags(t, setupInstance(t))
	jsonOutput = true

	out, err := run(t, modCmd, "mod", "SkyUI")
	require.NoError(t, err)

	var report core.ModReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Sources, 1)
	assert.Equal(t, domain.SourceNexusMods, report.Sources[0].Type)
	require.NotNil(t, report.Sources[0].Download)
	assert.Equal(t, "SkyUI", report.Sources[0].Download.NexusFileName)
}

func TestModCmd_NotFound(t *testing.T) {
	resetFlags(t, setupInstance(t))

	_, err := run(t, modCmd, "mod", "Nope")
	assert.ErrorIs(t, err, domain.ErrModNotFound)
}

func TestModsCmd_ListsDirectories(t *testing.T) {
	resetFlags(t, setupInstance(t))

	out, err := run(t, modsCmd, "mods")
	require.NoError(t, err)
	assert.Equal(t, "Old Patch\nSkyUI\n", out)
}
