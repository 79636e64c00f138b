package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/DonovanMods/mo2-inspect/internal/core"

	"github.com/spf13/cobra"
)

var listEnabledOnly bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the load order",
	Long: `List the mods of the selected profile from the first applied to the last.

Examples:
  mo2i list
  mo2i list --enabled
  mo2i list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listEnabledOnly, "enabled", "e", false, "only list enabled mods")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	org, _, err := openOrganizer(cmd)
	if err != nil {
		return err
	}

	reports, err := org.Report()
	if err != nil {
		return fmt.Errorf("reading load order: %w", err)
	}

	mods := make([]core.ModReport, 0, len(reports))
	for _, r := range reports {
		if listEnabledOnly && !r.Enabled {
			continue
		}
		mods = append(mods, r)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, mods)
	}

	if verbose {
		fmt.Fprintf(out, "Load order of profile %s\n\n", org.Instance().SelectedProfile)
	}

	if len(mods) == 0 {
		fmt.Fprintln(out, "No mods in the load order.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tENABLED\tCATEGORIES\tPLUGINS")
	fmt.Fprintln(w, "-\t----\t-------\t----------\t-------")

	for i, mod := range mods {
		name := truncate(mod.Name, 50)
		switch {
		case !mod.Installed:
			name += " " + colorRed("(missing)")
		case mod.Error != "":
			name += " " + colorYellow("(unreadable)")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n",
			i+1,
			name,
			yesNo(mod.Enabled),
			truncate(strings.Join(mod.Categories, ", "), 40),
			len(mod.Plugins),
		)
	}
	w.Flush()

	if verbose {
		fmt.Fprintf(out, "\nTotal: %d mod(s)\n", len(mods))
	}

	return nil
}
