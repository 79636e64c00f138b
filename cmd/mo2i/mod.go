package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var modCmd = &cobra.Command{
	Use:   "mod <name>",
	Short: "Show one mod",
	Long: `Show the categories, plugins, web page and sources of an installed mod.
The name is the mod's directory under the mods directory.

Examples:
  mo2i mod "SkyUI"
  mo2i mod "SkyUI" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runMod,
}

var modsCmd = &cobra.Command{
	Use:   "mods",
	Short: "List installed mod directories",
	Long: `List every directory in the mods directory, whether or not the profile uses it.

Examples:
  mo2i mods`,
	Args: cobra.NoArgs,
	RunE: runMods,
}

func init() {
	rootCmd.AddCommand(modCmd)
	rootCmd.AddCommand(modsCmd)
}

func runMod(cmd *cobra.Command, args []string) error {
	org, _, err := openOrganizer(cmd)
	if err != nil {
		return err
	}

	report, err := org.ModReport(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(w, report)
	}

	fmt.Fprintf(w, "Mod: %s\n", report.Name)
	if verbose {
		if mod, ok := org.Mod(report.Name); ok {
			fmt.Fprintf(w, "  Path: %s\n", mod.Path())
		}
	}
	enabled := colorYellow("disabled")
	if report.Enabled {
		enabled = colorGreen("enabled")
	}
	fmt.Fprintf(w, "  Status: %s\n", enabled)
	if len(report.Categories) > 0 {
		fmt.Fprintf(w, "  Categories: %s\n", strings.Join(report.Categories, ", "))
	}
	if report.URL != "" {
		fmt.Fprintf(w, "  URL: %s\n", report.URL)
	}

	if len(report.Plugins) > 0 {
		fmt.Fprintln(w, "\nPlugins:")
		for _, p := range report.Plugins {
			fmt.Fprintf(w, "  - %s\n", p)
		}
	}

	fmt.Fprintln(w, "\nSources:")
	if len(report.Sources) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for i, src := range report.Sources {
		fmt.Fprintf(w, "  %d. %s", i+1, src.Type)
		if src.NexusModID.IsSet() {
			fmt.Fprintf(w, " mod %s", src.NexusModID)
		}
		if src.NexusFileID.IsSet() {
			fmt.Fprintf(w, " file %s", src.NexusFileID)
		}
		fmt.Fprintln(w)
		if src.FileName == "" {
			continue
		}
		fmt.Fprintf(w, "     File: %s\n", src.FileName)
		if dl := src.Download; dl != nil {
			fmt.Fprintf(w, "     Download: %s, %s\n", humanize.Bytes(uint64(dl.Size)), humanize.Time(dl.DownloadedAt))
		} else {
			fmt.Fprintf(w, "     Download: %s\n", colorRed("not in downloads directory"))
		}
	}

	return nil
}

func runMods(cmd *cobra.Command, args []string) error {
	org, _, err := openOrganizer(cmd)
	if err != nil {
		return err
	}

	names, err := org.ModNames()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(w, names)
	}

	if len(names) == 0 {
		fmt.Fprintln(w, "No mods installed.")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	if verbose {
		fmt.Fprintf(w, "\nTotal: %d mod(s)\n", len(names))
	}
	return nil
}
