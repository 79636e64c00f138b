package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/DonovanMods/mo2-inspect/internal/core"
	"github.com/DonovanMods/mo2-inspect/internal/domain"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var downloadsCmd = &cobra.Command{
	Use:   "downloads [file]",
	Short: "List downloaded archives",
	Long: `List the files in the downloads directory with their NexusMods metadata.
With a file name, show only that download.

Examples:
  mo2i downloads
  mo2i downloads "SkyUI_5_2_SE-12604-5-2SE.7z"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDownloads,
}

func init() {
	rootCmd.AddCommand(downloadsCmd)
}

func runDownloads(cmd *cobra.Command, args []string) error {
	org, _, err := openOrganizer(cmd)
	if err != nil {
		return err
	}

	var names []string
	if len(args) == 1 {
		names = args
	} else if names, err = org.DownloadNames(); err != nil {
		return err
	}

	reports := make([]core.DownloadReport, 0, len(names))
	for _, name := range names {
		dl, ok := org.Download(name)
		if !ok {
			if len(args) == 1 {
				return fmt.Errorf("%s: %w", name, domain.ErrDownloadNotFound)
			}
			continue
		}
		reports = append(reports, dl.Report())
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, reports)
	}

	if len(reports) == 0 {
		fmt.Fprintln(out, "No downloads.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tSIZE\tDOWNLOADED\tMOD ID\tFILE ID\tNEXUS NAME")
	fmt.Fprintln(w, "----\t----\t----------\t------\t-------\t----------")

	var total int64
	for _, r := range reports {
		total += r.Size
		nexusName := r.NexusFileName
		if !r.HasMeta {
			nexusName = colorYellow("(no .meta)")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			truncate(r.FileName, 50),
			humanize.Bytes(uint64(r.Size)),
			humanize.Time(r.DownloadedAt),
			r.NexusModID,
			r.NexusFileID,
			truncate(nexusName, 40),
		)
	}
	w.Flush()

	if verbose {
		fmt.Fprintf(out, "\nTotal: %d file(s), %s\n", len(reports), humanize.Bytes(uint64(total)))
	}
	return nil
}
