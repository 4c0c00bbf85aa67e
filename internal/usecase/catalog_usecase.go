// Package usecase defines the application-facing contracts of the menu
// editor core. The shell (console, CLI) speaks to these interfaces only; it
// never touches collections or drafts directly.
package usecase

import (
	"menubuilder/internal/domain/entity"
)

// RecordView is the read model handed to views: enough to render a sidebar
// row, with the full record available as JSON for detail screens.
type RecordView struct {
	Kind   entity.Kind
	ID     entity.EntityID
	Name   string
	Detail string
}

// Affected lists the records of one kind that still reference a
// to-be-deleted record.
type Affected struct {
	Kind entity.Kind
	IDs  []entity.EntityID
}

// DeletionPlan is the pending-confirmation state of a delete request: what
// will be removed and which referencing records will be rewritten. The
// shell shows it in a confirmation modal before calling ConfirmDelete.
type DeletionPlan struct {
	Kind     entity.Kind
	ID       entity.EntityID
	Affected []Affected
}

// Violation is one failed rule found by Audit, attributed to a record.
type Violation struct {
	Kind entity.Kind
	ID   entity.EntityID
	Err  error
}

// CatalogUsecase is the single mutation surface over the ten collections.
// At most one draft exists per kind at a time; validation failures leave
// the draft (and the error) in place and never touch committed records.
type CatalogUsecase interface {
	// Kinds returns every collection kind in sidebar order.
	Kinds() []entity.Kind

	// List returns the committed records of a kind, ascending by ID.
	List(kind entity.Kind) ([]RecordView, error)

	// Show returns one committed record with its JSON detail.
	Show(kind entity.Kind, id entity.EntityID) (RecordView, error)

	// CreateNew opens a draft with default values. The draft has no ID
	// until it is committed or one is set explicitly.
	CreateNew(kind entity.Kind) error

	// StartEdit opens a draft as a deep clone of the committed record.
	// The repository keeps the original unchanged until Save.
	StartEdit(kind entity.Kind, id entity.EntityID) error

	// Draft returns the active draft of the kind, if any.
	Draft(kind entity.Kind) (RecordView, bool, error)

	// SetDraftName renames the active draft.
	SetDraftName(kind entity.Kind, name string) error

	// Fields returns the field names of a kind editable beyond name and
	// ID. Name-only kinds return none.
	Fields(kind entity.Kind) ([]string, error)

	// SetDraftField sets one named field of the active draft from raw
	// operator input. Empty input clears optional fields. Parse failures
	// stick to the draft the same way invalid IDs do.
	SetDraftField(kind entity.Kind, field, raw string) error

	// SetDraftID sets the draft's ID from operator input. Parse failures
	// are invalid-ID errors, the same as out-of-range values. Rejected
	// while editing an existing record: IDs never change on edit.
	SetDraftID(kind entity.Kind, raw string) error

	// Save validates the draft against the other committed records and
	// commits it, allocating the next free ID for a new draft without an
	// explicit one. On failure the draft stays active with the error
	// attached and the collection is untouched.
	Save(kind entity.Kind) (entity.EntityID, error)

	// Cancel discards the draft without touching the repository.
	Cancel(kind entity.Kind) error

	// DraftError returns the validation error attached to the active
	// draft by the last failed Save, for display.
	DraftError(kind entity.Kind) error

	// Copy clones the committed record, renames the clone to
	// "Name(<newID>)" and commits it immediately with the next free ID.
	// The original is untouched.
	Copy(kind entity.Kind, id entity.EntityID) (entity.EntityID, error)

	// Select marks a record as the current selection of its kind.
	Select(kind entity.Kind, id entity.EntityID) error

	// PlanDelete builds the pending-confirmation state for a delete.
	PlanDelete(kind entity.Kind, id entity.EntityID) (DeletionPlan, error)

	// ConfirmDelete strips every reference to the record across all
	// collections, removes it, and clears any selection or draft pointing
	// at it. Deleting an ID that no longer exists is a no-op.
	ConfirmDelete(plan DeletionPlan) error

	// Stats returns committed record counts per kind.
	Stats() map[entity.Kind]int

	// Audit reruns the save-time rules over every committed record of
	// every kind and returns all violations found. Loading trusts its
	// input, so this is how an externally produced file gets checked.
	Audit() []Violation
}
