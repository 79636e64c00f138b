package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the instance and its profile",
	Long: `Show where the instance lives, the selected profile and how many mods it has.

Examples:
  mo2i status --install-dir ~/Games/MO2
  mo2i status --install-dir ~/Games/MO2 --instance "Skyrim Special Edition"`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

type statusJSON struct {
	InstallDir      string `json:"install_dir"`
	InstanceDir     string `json:"instance_dir"`
	Portable        bool   `json:"portable"`
	SelectedProfile string `json:"selected_profile"`
	GamePath        string `json:"game_path"`
	ModsDir         string `json:"mods_dir"`
	DownloadsDir    string `json:"downloads_dir"`
	ProfilesDir     string `json:"profiles_dir"`
	OverwriteDir    string `json:"overwrite_dir"`
	InstalledMods   int    `json:"installed_mods"`
	LoadOrderMods   int    `json:"load_order_mods"`
	EnabledMods     int    `json:"enabled_mods"`
	Downloads       int    `json:"downloads"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	org, _, err := openOrganizer(cmd)
	if err != nil {
		return err
	}

	inst := org.Instance()
	out := statusJSON{
		InstallDir:      inst.InstallDir,
		InstanceDir:     inst.InstanceDir,
		Portable:        inst.Portable,
		SelectedProfile: inst.SelectedProfile,
		GamePath:        inst.GamePath,
		ModsDir:         inst.ModsDir,
		DownloadsDir:    inst.DownloadsDir,
		ProfilesDir:     inst.ProfilesDir,
		OverwriteDir:    inst.OverwriteDir,
	}

	names, err := org.ModNames()
	if err != nil {
		return err
	}
	out.InstalledMods = len(names)

	// A missing profile is reported, not fatal
	var profileErr error
	if list, err := org.ModsList(); err == nil {
		out.LoadOrderMods = len(list)
		enabled, _ := org.EnabledMods()
		out.EnabledMods = len(enabled)
	} else {
		profileErr = err
	}

	downloads, err := org.DownloadNames()
	if err != nil {
		return err
	}
	out.Downloads = len(downloads)

	w := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(w, out)
	}

	kind := "shared"
	if inst.Portable {
		kind = "portable"
	}
	fmt.Fprintf(w, "Instance: %s (%s)\n", inst.InstanceDir, kind)
	fmt.Fprintf(w, "  Installation: %s\n", inst.InstallDir)
	fmt.Fprintf(w, "  Game: %s\n", inst.GamePath)
	fmt.Fprintf(w, "  Mods: %s\n", inst.ModsDir)
	fmt.Fprintf(w, "  Downloads: %s\n", inst.DownloadsDir)
	if verbose {
		fmt.Fprintf(w, "  Profiles: %s\n", inst.ProfilesDir)
		fmt.Fprintf(w, "  Overwrite: %s\n", inst.OverwriteDir)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Profile: %s\n", inst.SelectedProfile)
	if profileErr != nil {
		fmt.Fprintf(w, "  %s\n", colorYellow(profileErr.Error()))
	} else {
		fmt.Fprintf(w, "  Load order: %d mod(s), %s enabled\n", out.LoadOrderMods, colorGreen(fmt.Sprint(out.EnabledMods)))
	}
	fmt.Fprintf(w, "\nInstalled: %d mod(s), %d download(s)\n", out.InstalledMods, out.Downloads)

	return nil
}
