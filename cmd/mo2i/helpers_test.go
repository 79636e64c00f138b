package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// setupInstance writes a small portable instance:
// SkyUI (enabled, downloaded), Old Patch (disabled) and Missing (not installed)
func setupInstance(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "ModOrganizer.ini"), "[General]\ngamePath=@ByteArray(C:\\\\Games\\\\Skyrim)\nselected_profile=@ByteArray(Default)\n")
	writeFile(t, filepath.Join(dir, "profiles", "Default", "modlist.txt"), "# This file was automatically generated by Mod Organizer.\n+Missing\n-Old Patch\n+SkyUI\n")
	writeFile(t, filepath.Join(dir, "mods", "SkyUI", "meta.ini"), "[General]\ncategory=\"2,\"\nurl=https://www.nexusmods.com/skyrimspecialedition/mods/12604\ninstallationFile=SkyUI_5_2_SE.7z\n\n[installedFiles]\nsize=1\n1\\modid=12604\n1\\fileid=35407\n")
	writeFile(t, filepath.Join(dir, "mods", "SkyUI", "SkyUI_SE.esp"), "")
	writeFile(t, filepath.Join(dir, "mods", "Old Patch", "meta.ini"), "[General]\ncategory=\n")
	writeFile(t, filepath.Join(dir, "downloads", "SkyUI_5_2_SE.7z"), "archive")
	writeFile(t, filepath.Join(dir, "downloads", "SkyUI_5_2_SE.7z.meta"), "[General]\nname=SkyUI\nmodID=12604\nfileID=35407\n")

	return dir
}

// resetFlags points every global flag at fresh temp directories and the given
// installation
func resetFlags(t *testing.T, install string) {
	t.Helper()
	configDir = t.TempDir()
	configFile = ""
	dataDir = t.TempDir()
	installDir = install
	instanceName = ""
	sharedRoot = ""
	logLevel = ""
	verbose = false
	jsonOutput = false
	noColor = true
	listEnabledOnly = false
	snapshotLabel = ""
}

// run executes sub as a child of a throwaway root and returns its output
func run(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.AddCommand(sub)

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}
