package impl

import (
	"log/slog"

	"menubuilder/internal/domain/entity"
	"menubuilder/internal/domain/repository"
	"menubuilder/internal/usecase"

	"github.com/pkg/errors"
)

// stateService implements the StateUsecase interface: it is the only code
// that moves the graph between the store and the snapshot file.
type stateService struct {
	store    repository.Store
	snaps    repository.SnapshotStore
	settings entity.UserSettings
	logger   *slog.Logger
}

// NewStateService is the constructor for stateService.
func NewStateService(
	store repository.Store,
	snaps repository.SnapshotStore,
	logger *slog.Logger,
) usecase.StateUsecase {
	return &stateService{
		store:    store,
		snaps:    snaps,
		settings: entity.DefaultUserSettings(),
		logger:   logger,
	}
}

// Load replaces the in-memory graph with the persisted snapshot. On
// failure the store is left exactly as it was; the operator keeps working
// with current data and sees the error.
func (srv *stateService) Load() error {
	snap, err := srv.snaps.Load()
	if err != nil {
		return errors.Wrap(err, "load saved data")
	}

	srv.store.Load(snap)
	srv.settings = snap.Settings

	srv.logger.Info("state loaded",
		"items", len(snap.Items),
		"revision", snap.Meta.RevisionID)

	return nil
}

func (srv *stateService) Save() error {
	snap := srv.store.Export()
	snap.Settings = srv.settings

	if err := srv.snaps.Save(snap); err != nil {
		return errors.Wrap(err, "save state")
	}

	return nil
}

func (srv *stateService) AutoSave() error {
	if !srv.settings.AutoSave {
		return nil
	}

	return srv.Save()
}

func (srv *stateService) Settings() entity.UserSettings {
	return srv.settings
}

func (srv *stateService) UpdateSettings(fn func(entity.UserSettings) entity.UserSettings) error {
	srv.settings = fn(srv.settings)

	return srv.Save()
}
