// Package snapshot persists the whole entity graph as a single JSON blob.
// The destination is a gocloud bucket URL, which keeps local files
// (file://) and tests (mem://) behind one API. Saves are whole-file: the
// previous blob is optionally copied aside as a backup first, then the new
// snapshot replaces it in one write.
package snapshot

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sort"
	"time"

	"menubuilder/internal/domain/entity"
	"menubuilder/internal/domain/lifecycle"
	"menubuilder/internal/domain/repository"
	"menubuilder/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

const backupPrefix = "backups/"

// Store reads and writes snapshots at a fixed key inside a bucket.
type Store struct {
	bucket      *blob.Bucket
	key         string
	keepBackups int
	logger      *slog.Logger
}

// NewStore wires a snapshot store. keepBackups bounds how many timestamped
// backup blobs survive a save; zero disables pruning.
func NewStore(bucket *blob.Bucket, key string, keepBackups int, logger *slog.Logger) *Store {
	return &Store{
		bucket:      bucket,
		key:         key,
		keepBackups: keepBackups,
		logger:      logger,
	}
}

// Load reads the snapshot. A missing blob is not an error: the editor
// starts empty on a fresh data directory.
func (s *Store) Load() (*repository.Snapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	data, err := s.bucket.ReadAll(ctx, s.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			s.logger.Info("no saved data found, starting empty", "key", s.key)

			return emptySnapshot(), nil
		}

		return nil, errors.Wrapf(err, "read snapshot %s", s.key)
	}

	snap := new(repository.Snapshot)
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, errors.Wrapf(err, "decode snapshot %s", s.key)
	}

	s.logger.Info("loaded snapshot",
		"key", s.key,
		"revision", snap.Meta.RevisionID,
		"items", len(snap.Items))

	return snap, nil
}

// Save stamps a fresh revision into the meta header and writes the whole
// snapshot. When the settings ask for backups, the previous blob is copied
// to a timestamped backup key first and old backups are pruned.
func (s *Store) Save(snap *repository.Snapshot) error {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if snap.Settings.CreateBackups {
		if err := s.backupCurrent(ctx); err != nil {
			// A failed backup should not block the save itself.
			s.logger.Warn("backup failed", "error", err)
		}
	}

	snap.Meta.RevisionID = uuid.NewString()
	snap.Meta.SavedAt = time.Now().UTC()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}

	if err := s.bucket.WriteAll(ctx, s.key, data, nil); err != nil {
		return errors.Wrapf(err, "write snapshot %s", s.key)
	}

	s.logger.Debug("saved snapshot",
		"key", s.key,
		"revision", snap.Meta.RevisionID,
		"size", util.FormatBytes(int64(len(data))))

	return nil
}

func (s *Store) backupCurrent(ctx context.Context) error {
	exists, err := s.bucket.Exists(ctx, s.key)
	if err != nil {
		return errors.Wrap(err, "check current snapshot")
	}
	if !exists {
		return nil
	}

	backupKey := backupPrefix + s.key + "." + time.Now().UTC().Format("20060102T150405.000")
	if err := s.bucket.Copy(ctx, backupKey, s.key, nil); err != nil {
		return errors.Wrapf(err, "copy snapshot to %s", backupKey)
	}

	return s.pruneBackups(ctx)
}

// pruneBackups deletes the oldest backups beyond the retention count. The
// timestamped key format sorts lexicographically by age.
func (s *Store) pruneBackups(ctx context.Context) error {
	if s.keepBackups <= 0 {
		return nil
	}

	var keys []string
	iter := s.bucket.List(&blob.ListOptions{Prefix: backupPrefix + s.key + "."})
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return errors.Wrap(err, "list backups")
		}
		keys = append(keys, obj.Key)
	}

	if len(keys) <= s.keepBackups {
		return nil
	}

	sort.Strings(keys)
	for _, key := range keys[:len(keys)-s.keepBackups] {
		if err := s.bucket.Delete(ctx, key); err != nil {
			return errors.Wrapf(err, "delete backup %s", key)
		}
	}

	return nil
}

func emptySnapshot() *repository.Snapshot {
	return &repository.Snapshot{
		Settings: entity.DefaultUserSettings(),
	}
}

var _ repository.SnapshotStore = (*Store)(nil)
