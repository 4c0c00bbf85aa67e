package impl

import (
	"menubuilder/internal/domain/entity"
)

// sessionState tracks the one in-flight draft a kind may have.
type sessionState int

const (
	// sessionIdle: no draft.
	sessionIdle sessionState = iota
	// sessionCreating: a new draft, not yet in the repository.
	sessionCreating
	// sessionEditing: a clone of a committed record; the repository still
	// holds the original unchanged.
	sessionEditing
)

// session is the working copy decoupled from the committed copy. idSet
// distinguishes "operator typed an ID" from "allocate one at commit"; an
// explicit flag avoids overloading any ID value as a sentinel, which
// matters for kinds whose valid range includes zero.
type session[E any] struct {
	state     sessionState
	draft     E
	editingID entity.EntityID
	idSet     bool
	lastErr   error
}

func (s *session[E]) active() bool {
	return s.state != sessionIdle
}

func (s *session[E]) reset() {
	var zero E
	s.state = sessionIdle
	s.draft = zero
	s.editingID = 0
	s.idSet = false
	s.lastErr = nil
}
