package usecase

import (
	"menubuilder/internal/domain/entity"
)

// StateUsecase moves the whole entity graph between the store and the
// persisted snapshot. Load failures never wipe in-memory state; the caller
// keeps editing what it has and sees the error.
type StateUsecase interface {
	// Load reads the snapshot into the store. A missing file starts empty.
	Load() error

	// Save persists the whole graph plus the user settings.
	Save() error

	// AutoSave persists only when the settings ask for it. Failures are
	// reported but the triggering mutation stays applied.
	AutoSave() error

	// Settings returns the current user settings.
	Settings() entity.UserSettings

	// UpdateSettings applies fn to the settings and persists them.
	UpdateSettings(fn func(entity.UserSettings) entity.UserSettings) error
}
