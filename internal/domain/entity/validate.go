package entity

import (
	"strings"

	domainerrors "menubuilder/internal/domain/errors"

	"github.com/pkg/errors"
)

// RefResolver reports whether the target collection holds the given ID. The
// store supplies it so validation can check references across kinds without
// the entity package depending on the repository.
type RefResolver func(Kind, EntityID) bool

// Validate runs the save-time rules for one record against the other
// committed records of its kind. Rules execute in a fixed order and stop at
// the first failure, matching a form that shows a single error message:
//
//  1. ID range (or the kind's CheckID replacement)
//  2. duplicate ID against the other committed records
//  3. trimmed name non-empty
//  4. every declared reference resolves
//  5. per-kind value rules (Extra)
//
// The caller excludes the record being edited from others, so editing a
// record never collides with itself.
func Validate[E any](desc Descriptor[E], rec E, others []E, resolve RefResolver) error {
	if desc.CheckID != nil {
		if err := desc.CheckID(rec, others); err != nil {
			return err
		}
	} else if !desc.Bounds.Contains(desc.ID(rec)) {
		return errors.Wrapf(domainerrors.ErrInvalidID,
			"%s id must be between %d and %d", desc.Kind, desc.Bounds.Start, desc.Bounds.End)
	}

	id := desc.ID(rec)
	for _, other := range others {
		if desc.ID(other) == id {
			return errors.Wrapf(domainerrors.ErrDuplicateID,
				"%s with id %d already exists", desc.Kind, id)
		}
	}

	if strings.TrimSpace(desc.Label(rec)) == "" {
		return errors.Wrapf(domainerrors.ErrEmptyName, "%s name cannot be empty", desc.Kind)
	}

	if resolve != nil {
		for _, ref := range desc.Refs {
			for _, refID := range ref.Collect(rec) {
				if !resolve(ref.Target, refID) {
					return errors.Wrapf(domainerrors.ErrInvalidReference,
						"referenced %s %d does not exist", ref.Target, refID)
				}
			}
		}
	}

	if desc.Extra != nil {
		if err := desc.Extra(rec, others); err != nil {
			return err
		}
	}

	return nil
}
