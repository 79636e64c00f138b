package main

import (
	"encoding/json"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DonovanMods/mo2-inspect/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCmd_Structure(t *testing.T) {
	var names []string
	for _, c := range snapshotCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"save", "list", "show", "diff", "delete"}, names)
	assert.NotNil(t, snapshotSaveCmd.Flags().Lookup("label"))
}

var savedID = regexp.MustCompile(`Saved snapshot (\S+) `)

func saveSnapshot(t *testing.T, label string) string {
	t.Helper()
	out, err := run(t, snapshotCmd, "snapshot", "save", "--label", label)
	require.NoError(t, err)
	m := savedID.FindStringSubmatch(out)
	require.NotNil(t, m, out)
	return m[1]
}

func TestSnapshotCmd_SaveListShow(t *testing.T) {
	resetFlags(t, setupInstance(t))

	id := saveSnapshot(t, "baseline")

	out, err := run(t, snapshotCmd, "snapshot", "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "baseline")

	out, err = run(t, snapshotCmd, "snapshot", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Label: baseline")
	assert.Contains(t, out, "SkyUI")
	assert.Contains(t, out, "Old Patch")
}

func TestSnapshotCmd_DatabasePathFromConfig(t *testing.T) {
	resetFlags(t, setupInstance(t))
	dbPath := filepath.Join(t.TempDir(), "nested", "mo2i.db")
	writeFile(t, filepath.Join(configDir, "config.yaml"), "database_path: "+dbPath+"\n")

	saveSnapshot(t, "")
	assert.FileExists(t, dbPath)
}

func TestSnapshotCmd_Diff(t *testing.T) {
	dir := setupInstance(t)
	resetFlags(t, dir)
	id := saveSnapshot(t, "before")

	// Enable Old Patch, drop Missing, add a new mod on top
	writeFile(t, filepath.Join(dir, "profiles", "Default", "modlist.txt"), "+New Mod\n+Old Patch\n+SkyUI\n")

	jsonOutput = true
	out, err := run(t, snapshotCmd, "snapshot", "diff", id)
	require.NoError(t, err)

	var got diffJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, id, got.Snapshot)
	assert.Equal(t, []domain.LoadOrderChange{
		{Name: "Missing", Kind: domain.ChangeRemoved, From: 2, To: -1},
		{Name: "Old Patch", Kind: domain.ChangeEnabled, From: 1, To: 1},
		{Name: "New Mod", Kind: domain.ChangeAdded, From: -1, To: 2},
	}, got.Changes)
}

func TestSnapshotCmd_DiffUnchanged(t *testing.T) {
	resetFlags(t, setupInstance(t))
	id := saveSnapshot(t, "")

	out, err := run(t, snapshotCmd, "snapshot", "diff", id)
	require.NoError(t, err)
	assert.Contains(t, out, "No changes")
}

func TestSnapshotCmd_Delete(t *testing.T) {
	resetFlags(t, setupInstance(t))
	id := saveSnapshot(t, "")

	_, err := run(t, snapshotCmd, "snapshot", "delete", id)
	require.NoError(t, err)

	_, err = run(t, snapshotCmd, "snapshot", "show", id)
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestBrowseCmd_Structure(t *testing.T) {
	assert.Equal(t, "browse", browseCmd.Use)
	assert.NotEmpty(t, browseCmd.Long)
	assert.NotNil(t, browseCmd.RunE)
}
