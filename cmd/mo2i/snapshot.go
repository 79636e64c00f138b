package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/DonovanMods/mo2-inspect/internal/domain"
	"github.com/DonovanMods/mo2-inspect/internal/storage/config"
	"github.com/DonovanMods/mo2-inspect/internal/storage/db"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var snapshotLabel string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Record and compare load orders",
	Long: `Snapshots record the selected profile's load order in a local database so it
can be compared later. They are stored outside the instance.`,
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Record the current load order",
	Long: `Record the current load order of the selected profile.

Examples:
  mo2i snapshot save
  mo2i snapshot save --label "before 1.6 update"`,
	Args: cobra.NoArgs,
	RunE: runSnapshotSave,
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snapshots of the instance",
	Args:  cobra.NoArgs,
	RunE:  runSnapshotList,
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recorded load order",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotShow,
}

var snapshotDiffCmd = &cobra.Command{
	Use:   "diff <id>",
	Short: "Compare a snapshot with the current load order",
	Long: `Report mods added, removed, toggled or moved since the snapshot was taken.

Examples:
  mo2i snapshot diff 3f1c...`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshotDiff,
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotDelete,
}

func init() {
	snapshotSaveCmd.Flags().StringVarP(&snapshotLabel, "label", "l", "", "label for the snapshot")

	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotShowCmd)
	snapshotCmd.AddCommand(snapshotDiffCmd)
	snapshotCmd.AddCommand(snapshotDeleteCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// openDB opens the snapshot database named by the config, defaulting to
// snapshots.db in the data directory
func openDB(cfg *config.Config) (*db.DB, error) {
	path := cfg.DatabasePath
	if path == "" {
		dir, err := resolveDataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "snapshots.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return db.New(path)
}

func runSnapshotSave(cmd *cobra.Command, args []string) error {
	org, cfg, err := openOrganizer(cmd)
	if err != nil {
		return err
	}

	entries, err := org.LoadOrder()
	if err != nil {
		return fmt.Errorf("reading load order: %w", err)
	}

	database, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	inst := org.Instance()
	snap := &domain.Snapshot{
		InstanceDir: inst.InstanceDir,
		Profile:     inst.SelectedProfile,
		Label:       snapshotLabel,
		Entries:     entries,
	}
	if err := database.SaveSnapshot(cmd.Context(), snap); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, snap)
	}
	fmt.Fprintf(out, "Saved snapshot %s (%d mods, profile %s)\n", snap.ID, len(entries), snap.Profile)
	return nil
}

func runSnapshotList(cmd *cobra.Command, args []string) error {
	org, cfg, err := openOrganizer(cmd)
	if err != nil {
		return err
	}

	database, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	snaps, err := database.ListSnapshots(cmd.Context(), org.Instance().InstanceDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		if snaps == nil {
			snaps = []domain.Snapshot{}
		}
		return printJSON(out, snaps)
	}

	if len(snaps) == 0 {
		fmt.Fprintln(out, "No snapshots.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROFILE\tTAKEN\tLABEL")
	fmt.Fprintln(w, "--\t-------\t-----\t-----")
	for _, s := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Profile, humanize.Time(s.CreatedAt), s.Label)
	}
	return w.Flush()
}

func runSnapshotShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	database, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	snap, err := database.GetSnapshot(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, snap)
	}

	fmt.Fprintf(out, "Snapshot %s\n", snap.ID)
	fmt.Fprintf(out, "  Instance: %s\n", snap.InstanceDir)
	fmt.Fprintf(out, "  Profile: %s\n", snap.Profile)
	fmt.Fprintf(out, "  Taken: %s (%s)\n", snap.CreatedAt.Format("2006-01-02 15:04:05"), humanize.Time(snap.CreatedAt))
	if snap.Label != "" {
		fmt.Fprintf(out, "  Label: %s\n", snap.Label)
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tENABLED")
	fmt.Fprintln(w, "-\t----\t-------")
	for i, e := range snap.Entries {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, e.Name, yesNo(e.Enabled))
	}
	return w.Flush()
}

type diffJSON struct {
	Snapshot string                   `json:"snapshot"`
	Changes  []domain.LoadOrderChange `json:"changes"`
}

func runSnapshotDiff(cmd *cobra.Command, args []string) error {
	org, cfg, err := openOrganizer(cmd)
	if err != nil {
		return err
	}

	database, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	snap, err := database.GetSnapshot(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	current, err := org.LoadOrder()
	if err != nil {
		return fmt.Errorf("reading load order: %w", err)
	}
	changes := domain.DiffLoadOrder(snap.Entries, current)

	out := cmd.OutOrStdout()
	if jsonOutput {
		if changes == nil {
			changes = []domain.LoadOrderChange{}
		}
		return printJSON(out, diffJSON{Snapshot: snap.ID, Changes: changes})
	}

	if snap.Profile != org.Instance().SelectedProfile {
		fmt.Fprintf(out, "%s\n\n", colorYellow(fmt.Sprintf("Snapshot is of profile %s, comparing with %s", snap.Profile, org.Instance().SelectedProfile)))
	}

	if len(changes) == 0 {
		fmt.Fprintln(out, "No changes since the snapshot.")
		return nil
	}

	for _, c := range changes {
		switch c.Kind {
		case domain.ChangeAdded:
			fmt.Fprintf(out, "%s %s (at %d)\n", colorGreen("+"), c.Name, c.To+1)
		case domain.ChangeRemoved:
			fmt.Fprintf(out, "%s %s (was %d)\n", colorRed("-"), c.Name, c.From+1)
		case domain.ChangeMoved:
			fmt.Fprintf(out, "%s %s (%d -> %d)\n", colorYellow("~"), c.Name, c.From+1, c.To+1)
		default:
			fmt.Fprintf(out, "%s %s %s\n", colorYellow("*"), c.Name, c.Kind)
		}
	}
	return nil
}

func runSnapshotDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	database, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	if err := database.DeleteSnapshot(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted snapshot %s\n", args[0])
	return nil
}
