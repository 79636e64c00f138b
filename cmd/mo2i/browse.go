package main

import (
	"github.com/DonovanMods/mo2-inspect/internal/tui"

	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the instance interactively",
	Long: `Open a terminal UI over the load order, the downloads and the instance paths.
Keybindings follow the keybindings setting of the config file (vim or standard).

Examples:
  mo2i browse`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	org, cfg, err := openOrganizer(cmd)
	if err != nil {
		return err
	}
	return tui.Run(org, cfg.Keybindings)
}
