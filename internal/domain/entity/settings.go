package entity

// Theme is the operator's UI theme preference, persisted with the data so a
// reopened file looks the way it was left.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// UserSettings travels inside the persisted snapshot alongside the ten
// collections.
type UserSettings struct {
	AutoSave      bool  `json:"autoSave"`
	CreateBackups bool  `json:"createBackups"`
	Theme         Theme `json:"theme"`
}

// DefaultUserSettings returns the settings a brand-new file starts with.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		AutoSave:      true,
		CreateBackups: true,
		Theme:         ThemeDark,
	}
}
