package snapshot

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"menubuilder/internal/domain/entity"
	"menubuilder/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"

	_ "gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T, keepBackups int) (*Store, *blob.Bucket) {
	t.Helper()

	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewStore(bucket, "menu_data.json", keepBackups, logger), bucket
}

func TestStore_LoadMissingStartsEmpty(t *testing.T) {
	store, _ := newTestStore(t, 0)

	snap, err := store.Load()
	require.NoError(t, err)

	assert.Empty(t, snap.Items)
	assert.Equal(t, entity.DefaultUserSettings(), snap.Settings)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, 0)

	snap := &repository.Snapshot{
		Settings:  entity.DefaultUserSettings(),
		Items:     []entity.Item{{ID: 1, Name: "Burger", TaxGroup: entity.Ptr(2)}},
		TaxGroups: []entity.TaxGroup{{ID: 2, Name: "GST"}},
	}
	require.NoError(t, store.Save(snap))

	// Save stamps a fresh revision.
	assert.NotEmpty(t, snap.Meta.RevisionID)
	assert.False(t, snap.Meta.SavedAt.IsZero())

	loaded, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, snap.Meta.RevisionID, loaded.Meta.RevisionID)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "Burger", loaded.Items[0].Name)
	assert.Equal(t, entity.EntityID(2), *loaded.Items[0].TaxGroup)
	require.Len(t, loaded.TaxGroups, 1)
}

func TestStore_EachSaveChangesRevision(t *testing.T) {
	store, _ := newTestStore(t, 0)

	snap := &repository.Snapshot{Settings: entity.DefaultUserSettings()}
	require.NoError(t, store.Save(snap))
	first := snap.Meta.RevisionID

	require.NoError(t, store.Save(snap))
	assert.NotEqual(t, first, snap.Meta.RevisionID)
}

func TestStore_BackupBeforeOverwrite(t *testing.T) {
	store, bucket := newTestStore(t, 3)

	snap := &repository.Snapshot{Settings: entity.UserSettings{CreateBackups: true}}
	require.NoError(t, store.Save(snap))

	// The first save has nothing to back up.
	assert.Equal(t, 0, countKeys(t, bucket, backupPrefix))

	require.NoError(t, store.Save(snap))
	assert.Equal(t, 1, countKeys(t, bucket, backupPrefix))
}

func TestStore_BackupDisabledBySettings(t *testing.T) {
	store, bucket := newTestStore(t, 3)

	snap := &repository.Snapshot{Settings: entity.UserSettings{CreateBackups: false}}
	require.NoError(t, store.Save(snap))
	require.NoError(t, store.Save(snap))

	assert.Equal(t, 0, countKeys(t, bucket, backupPrefix))
}

func TestStore_PruneKeepsNewestBackups(t *testing.T) {
	store, bucket := newTestStore(t, 2)

	snap := &repository.Snapshot{Settings: entity.UserSettings{CreateBackups: true}}
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(snap))
		// Backup keys are timestamped to the millisecond.
		time.Sleep(2 * time.Millisecond)
	}

	assert.Equal(t, 2, countKeys(t, bucket, backupPrefix))
}

func countKeys(t *testing.T, bucket *blob.Bucket, prefix string) int {
	t.Helper()

	count := 0
	iter := bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		_, err := iter.Next(context.Background())
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		count++
	}

	return count
}
