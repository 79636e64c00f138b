package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DonovanMods/mo2-inspect/internal/domain"

	"github.com/google/uuid"
)

// SaveSnapshot stores a snapshot with its entries. A missing ID or creation
// time is filled in on the passed snapshot.
func (d *DB) SaveSnapshot(ctx context.Context, snap *domain.Snapshot) (err error) {
	if snap.ID == "" {
		snap.ID = uuid.NewString()
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now()
	}
	snap.CreatedAt = snap.CreatedAt.UTC()

	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, instance_dir, profile, label, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, snap.ID, snap.InstanceDir, snap.Profile, snap.Label, snap.CreatedAt); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	for i, e := range snap.Entries {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO snapshot_entries (snapshot_id, position, name, enabled)
			VALUES (?, ?, ?, ?)
		`, snap.ID, i, e.Name, e.Enabled); err != nil {
			return fmt.Errorf("saving snapshot entry %q: %w", e.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// ListSnapshots returns the snapshots of an instance, newest first, without
// their entries
func (d *DB) ListSnapshots(ctx context.Context, instanceDir string) ([]domain.Snapshot, error) {
	rows, err := d.QueryContext(ctx, `
		SELECT id, instance_dir, profile, label, created_at
		FROM snapshots
		WHERE instance_dir = ?
		ORDER BY created_at DESC, id
	`, instanceDir)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []domain.Snapshot
	for rows.Next() {
		var snap domain.Snapshot
		if err := rows.Scan(&snap.ID, &snap.InstanceDir, &snap.Profile, &snap.Label, &snap.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		snap.CreatedAt = snap.CreatedAt.UTC()
		snaps = append(snaps, snap)
	}

	return snaps, rows.Err()
}

// GetSnapshot returns a snapshot with its entries in load order
func (d *DB) GetSnapshot(ctx context.Context, id string) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	err := d.QueryRowContext(ctx, `
		SELECT id, instance_dir, profile, label, created_at
		FROM snapshots
		WHERE id = ?
	`, id).Scan(&snap.ID, &snap.InstanceDir, &snap.Profile, &snap.Label, &snap.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying snapshot: %w", err)
	}
	snap.CreatedAt = snap.CreatedAt.UTC()

	rows, err := d.QueryContext(ctx, `
		SELECT name, enabled
		FROM snapshot_entries
		WHERE snapshot_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying snapshot entries: %w", err)
	}
	defer rows.Close()

	snap.Entries = []domain.LoadOrderEntry{}
	for rows.Next() {
		var e domain.LoadOrderEntry
		if err := rows.Scan(&e.Name, &e.Enabled); err != nil {
			return nil, fmt.Errorf("scanning snapshot entry: %w", err)
		}
		snap.Entries = append(snap.Entries, e)
	}

	return &snap, rows.Err()
}

// DeleteSnapshot removes a snapshot and its entries
func (d *DB) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := d.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%s: %w", id, domain.ErrSnapshotNotFound)
	}
	return nil
}
