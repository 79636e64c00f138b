package db_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/DonovanMods/mo2-inspect/internal/domain"
	"github.com/DonovanMods/mo2-inspect/internal/storage/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestNew_RunsMigrations(t *testing.T) {
	database := newDB(t)

	var count int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count))
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM snapshot_entries").Scan(&count))

	var version int
	require.NoError(t, database.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 2, version)
}

func TestNew_ReopenKeepsSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")

	first, err := db.New(path)
	require.NoError(t, err)
	require.NoError(t, first.SaveSnapshot(context.Background(), &domain.Snapshot{InstanceDir: "/mo2", Profile: "Default"}))
	require.NoError(t, first.Close())

	second, err := db.New(path)
	require.NoError(t, err)
	defer second.Close()

	snaps, err := second.ListSnapshots(context.Background(), "/mo2")
	require.NoError(t, err)
	assert.Len(t, snaps, 1)
}

func TestSnapshots_SaveAndGet(t *testing.T) {
	database := newDB(t)
	ctx := context.Background()

	snap := &domain.Snapshot{
		InstanceDir: "/mo2",
		Profile:     "Default",
		Label:       "before update",
		Entries: []domain.LoadOrderEntry{
			{Name: "SkyUI", Enabled: true},
			{Name: "Unofficial Patch", Enabled: false},
		},
	}
	require.NoError(t, database.SaveSnapshot(ctx, snap))
	assert.NotEmpty(t, snap.ID)
	assert.False(t, snap.CreatedAt.IsZero())

	got, err := database.GetSnapshot(ctx, snap.ID)
	require.NoError(t, err)

	assert.Equal(t, snap.ID, got.ID)
	assert.Equal(t, "/mo2", got.InstanceDir)
	assert.Equal(t, "Default", got.Profile)
	assert.Equal(t, "before update", got.Label)
	assert.WithinDuration(t, snap.CreatedAt, got.CreatedAt, time.Second)
	assert.Equal(t, snap.Entries, got.Entries)
}

func TestSnapshots_EmptyLoadOrder(t *testing.T) {
	database := newDB(t)
	ctx := context.Background()

	snap := &domain.Snapshot{InstanceDir: "/mo2", Profile: "Default"}
	require.NoError(t, database.SaveSnapshot(ctx, snap))

	got, err := database.GetSnapshot(ctx, snap.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Entries)
}

func TestSnapshots_ListNewestFirst(t *testing.T) {
	database := newDB(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, label := range []string{"first", "second", "third"} {
		require.NoError(t, database.SaveSnapshot(ctx, &domain.Snapshot{
			InstanceDir: "/mo2",
			Profile:     "Default",
			Label:       label,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, database.SaveSnapshot(ctx, &domain.Snapshot{InstanceDir: "/other", Profile: "Default"}))

	snaps, err := database.ListSnapshots(ctx, "/mo2")
	require.NoError(t, err)
	require.Len(t, snaps, 3)

	assert.Equal(t, "third", snaps[0].Label)
	assert.Equal(t, "first", snaps[2].Label)
	assert.Empty(t, snaps[0].Entries)
}

func TestSnapshots_GetMissing(t *testing.T) {
	database := newDB(t)

	_, err := database.GetSnapshot(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestSnapshots_Delete(t *testing.T) {
	database := newDB(t)
	ctx := context.Background()

	snap := &domain.Snapshot{
		InstanceDir: "/mo2",
		Profile:     "Default",
		Entries:     []domain.LoadOrderEntry{{Name: "SkyUI", Enabled: true}},
	}
	require.NoError(t, database.SaveSnapshot(ctx, snap))
	require.NoError(t, database.DeleteSnapshot(ctx, snap.ID))

	_, err := database.GetSnapshot(ctx, snap.ID)
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)

	var count int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM snapshot_entries").Scan(&count))
	assert.Zero(t, count)

	assert.ErrorIs(t, database.DeleteSnapshot(ctx, snap.ID), domain.ErrSnapshotNotFound)
}

func TestSnapshots_DuplicateIDRollsBack(t *testing.T) {
	database := newDB(t)
	ctx := context.Background()

	require.NoError(t, database.SaveSnapshot(ctx, &domain.Snapshot{ID: "fixed", InstanceDir: "/mo2", Profile: "A"}))

	err := database.SaveSnapshot(ctx, &domain.Snapshot{
		ID:          "fixed",
		InstanceDir: "/mo2",
		Profile:     "B",
		Entries:     []domain.LoadOrderEntry{{Name: "SkyUI", Enabled: true}},
	})
	require.Error(t, err)

	got, err := database.GetSnapshot(ctx, "fixed")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Profile)
	assert.Empty(t, got.Entries)
}
