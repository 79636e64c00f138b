package main

import (
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the category catalog",
	Long: `List the categories mods can be tagged with, read from the instance's
categories.dat or the built-in defaults.

Examples:
  mo2i categories`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

type categoryJSON struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func runCategories(cmd *cobra.Command, args []string) error {
	org, _, err := openOrganizer(cmd)
	if err != nil {
		return err
	}

	categories, err := org.Categories()
	if err != nil {
		return err
	}
	ids := slices.Sorted(maps.Keys(categories))

	out := cmd.OutOrStdout()
	if jsonOutput {
		list := make([]categoryJSON, len(ids))
		for i, id := range ids {
			list[i] = categoryJSON{ID: id, Title: categories[id]}
		}
		return printJSON(out, list)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE")
	fmt.Fprintln(w, "--\t-----")
	for _, id := range ids {
		fmt.Fprintf(w, "%d\t%s\n", id, categories[id])
	}
	return w.Flush()
}
