// Package errors defines the domain error values shared by the validation
// engine, the edit sessions and the persistence boundary. Callers classify
// failures with errors.Is and surface the wrapped message to the operator.
package errors

import (
	"github.com/pkg/errors"
)

// Validation failures. Validation short-circuits at the first failing rule,
// so exactly one of these is ever attached to an edit session at a time.
var (
	// ErrInvalidID is returned when an ID is outside its kind's range or
	// cannot be parsed as a number.
	ErrInvalidID = errors.New("invalid id")
	// ErrDuplicateID is returned when another committed record of the same
	// kind already holds the ID.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrEmptyName is returned when a name is empty after trimming.
	ErrEmptyName = errors.New("empty name")
	// ErrInvalidRange is returned when an item group's span is malformed.
	ErrInvalidRange = errors.New("invalid range")
	// ErrRangeOverlap is returned when an item group's span intersects
	// another group's span.
	ErrRangeOverlap = errors.New("range overlap")
	// ErrInvalidValue is returned for domain values outside their bounds,
	// such as a negative tax rate.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidReference is returned when a reference names an ID absent
	// from the target collection.
	ErrInvalidReference = errors.New("invalid reference")
)

// Edit session failures.
var (
	// ErrSessionActive is returned when a draft already exists for the kind.
	ErrSessionActive = errors.New("an edit is already in progress")
	// ErrNoActiveSession is returned by save/cancel without a draft.
	ErrNoActiveSession = errors.New("no edit in progress")
	// ErrNotFound is returned when starting an edit or copy of an ID that
	// is not committed.
	ErrNotFound = errors.New("record not found")
)

// Collaborator boundary failures.
var (
	// ErrNoPathChosen distinguishes "the operator dismissed the file
	// picker" from an I/O failure during export.
	ErrNoPathChosen = errors.New("no destination path chosen")
)
