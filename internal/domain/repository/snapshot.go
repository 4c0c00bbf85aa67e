package repository

import (
	"time"

	"menubuilder/internal/domain/entity"
)

// SnapshotMeta is the header of a persisted snapshot. The revision ID is
// regenerated on every save so external tooling can tell two files apart
// even when their contents match.
type SnapshotMeta struct {
	RevisionID string    `json:"revisionId"`
	SavedAt    time.Time `json:"savedAt"`
	AppVersion string    `json:"appVersion,omitempty"`
}

// Snapshot is the whole persisted state: the ten collections as flat lists
// plus the operator's settings. The store converts to and from ID-keyed
// maps on load and export.
type Snapshot struct {
	Meta     SnapshotMeta        `json:"meta"`
	Settings entity.UserSettings `json:"settings"`

	Items             []entity.Item            `json:"items"`
	ItemGroups        []entity.ItemGroup       `json:"itemGroups"`
	PriceLevels       []entity.PriceLevel      `json:"priceLevels"`
	ProductClasses    []entity.ProductClass    `json:"productClasses"`
	TaxGroups         []entity.TaxGroup        `json:"taxGroups"`
	SecurityLevels    []entity.SecurityLevel   `json:"securityLevels"`
	RevenueCategories []entity.RevenueCategory `json:"revenueCategories"`
	ReportCategories  []entity.ReportCategory  `json:"reportCategories"`
	ChoiceGroups      []entity.ChoiceGroup     `json:"choiceGroups"`
	PrinterLogicals   []entity.PrinterLogical  `json:"printerLogicals"`
}

// SnapshotStore is the persistence collaborator boundary. A missing file on
// Load is not an error: it returns an empty snapshot so the editor starts
// clean. Save writes the whole file at once; an optional backup of the
// previous file is taken first when the settings ask for one.
type SnapshotStore interface {
	Load() (*Snapshot, error)
	Save(snap *Snapshot) error
}
