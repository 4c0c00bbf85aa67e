package impl

import (
	"encoding/json"
	"strconv"

	"menubuilder/internal/domain/entity"
	domainerrors "menubuilder/internal/domain/errors"
	"menubuilder/internal/domain/repository"
	"menubuilder/internal/usecase"

	"github.com/pkg/errors"
)

// kindOps is the kind-erased surface the catalog service drives. Every
// method is implemented once by the generic editor, so the ten kinds share
// a single state machine instead of ten divergent copies.
type kindOps interface {
	kind() entity.Kind
	count() int
	list() []usecase.RecordView
	show(id entity.EntityID) (usecase.RecordView, error)
	exists(id entity.EntityID) bool

	createNew() error
	startEdit(id entity.EntityID) error
	draftView() (usecase.RecordView, bool)
	draftError() error
	setDraftName(name string) error
	setDraftID(raw string) error
	fieldNames() []string
	setDraftField(name, raw string) error
	save(resolve entity.RefResolver) (entity.EntityID, error)
	cancel() error
	copyRecord(id entity.EntityID) (entity.EntityID, error)

	selectRecord(id entity.EntityID) error
	removeRecord(id entity.EntityID) bool
	clearAfterDelete(id entity.EntityID)

	affectedBy(target entity.Kind, id entity.EntityID) []entity.EntityID
	stripRefsTo(target entity.Kind, id entity.EntityID) []entity.EntityID

	audit(resolve entity.RefResolver) []usecase.Violation
}

// editor binds one kind's descriptor, collection, draft session and
// selection together.
type editor[E any] struct {
	desc     entity.Descriptor[E]
	col      repository.Collection[E]
	sess     session[E]
	selected *entity.EntityID
}

func newEditor[E any](desc entity.Descriptor[E], col repository.Collection[E]) *editor[E] {
	return &editor[E]{desc: desc, col: col}
}

func (e *editor[E]) kind() entity.Kind { return e.desc.Kind }

func (e *editor[E]) count() int { return e.col.Len() }

func (e *editor[E]) view(rec E) usecase.RecordView {
	return usecase.RecordView{
		Kind: e.desc.Kind,
		ID:   e.desc.ID(rec),
		Name: e.desc.Label(rec),
	}
}

func (e *editor[E]) list() []usecase.RecordView {
	recs := e.col.All()
	out := make([]usecase.RecordView, 0, len(recs))
	for _, rec := range recs {
		out = append(out, e.view(rec))
	}

	return out
}

func (e *editor[E]) show(id entity.EntityID) (usecase.RecordView, error) {
	rec, ok := e.col.Get(id)
	if !ok {
		return usecase.RecordView{}, errors.Wrapf(domainerrors.ErrNotFound,
			"%s %d", e.desc.Kind, id)
	}

	view := e.view(rec)
	detail, err := json.Marshal(rec)
	if err != nil {
		return usecase.RecordView{}, errors.Wrapf(err, "encode %s %d", e.desc.Kind, id)
	}
	view.Detail = string(detail)

	return view, nil
}

func (e *editor[E]) exists(id entity.EntityID) bool {
	_, ok := e.col.Get(id)

	return ok
}

func (e *editor[E]) createNew() error {
	if e.sess.active() {
		return errors.Wrapf(domainerrors.ErrSessionActive, "%s", e.desc.Kind)
	}

	e.sess.reset()
	e.sess.state = sessionCreating
	e.sess.draft = e.desc.New()

	return nil
}

func (e *editor[E]) startEdit(id entity.EntityID) error {
	if e.sess.active() {
		return errors.Wrapf(domainerrors.ErrSessionActive, "%s", e.desc.Kind)
	}

	rec, ok := e.col.Get(id)
	if !ok {
		return errors.Wrapf(domainerrors.ErrNotFound, "%s %d", e.desc.Kind, id)
	}

	e.sess.reset()
	e.sess.state = sessionEditing
	e.sess.editingID = id
	e.sess.draft = e.desc.Clone(rec)

	return nil
}

func (e *editor[E]) draftView() (usecase.RecordView, bool) {
	if !e.sess.active() {
		return usecase.RecordView{}, false
	}

	view := e.view(e.sess.draft)
	if detail, err := json.Marshal(e.sess.draft); err == nil {
		view.Detail = string(detail)
	}

	return view, true
}

func (e *editor[E]) draftError() error {
	return e.sess.lastErr
}

// updateDraft applies a mutation to the working copy. Committed records are
// untouched until save.
func (e *editor[E]) updateDraft(fn func(E) E) error {
	if !e.sess.active() {
		return errors.Wrapf(domainerrors.ErrNoActiveSession, "%s", e.desc.Kind)
	}

	e.sess.draft = fn(e.sess.draft)
	e.sess.lastErr = nil

	return nil
}

func (e *editor[E]) setDraftName(name string) error {
	return e.updateDraft(func(rec E) E {
		return e.desc.Rename(rec, name)
	})
}

func (e *editor[E]) fieldNames() []string {
	names := make([]string, 0, len(e.desc.Fields))
	for _, field := range e.desc.Fields {
		names = append(names, field.Name)
	}

	return names
}

// setDraftField applies raw operator input to one declared field of the
// draft. Parse failures stick to the draft like validation failures, so the
// operator sees them again on the next draft view.
func (e *editor[E]) setDraftField(name, raw string) error {
	if !e.sess.active() {
		return errors.Wrapf(domainerrors.ErrNoActiveSession, "%s", e.desc.Kind)
	}

	for _, field := range e.desc.Fields {
		if field.Name != name {
			continue
		}

		updated, err := field.Set(e.sess.draft, raw)
		if err != nil {
			fieldErr := errors.Wrapf(err, "%s %s", e.desc.Kind, name)
			e.sess.lastErr = fieldErr

			return fieldErr
		}

		e.sess.draft = updated
		e.sess.lastErr = nil

		return nil
	}

	return errors.Wrapf(domainerrors.ErrInvalidValue,
		"%s has no field %q", e.desc.Kind, name)
}

func (e *editor[E]) setDraftID(raw string) error {
	if !e.sess.active() {
		return errors.Wrapf(domainerrors.ErrNoActiveSession, "%s", e.desc.Kind)
	}
	if e.sess.state == sessionEditing {
		return errors.Wrapf(domainerrors.ErrInvalidValue,
			"%s id cannot be changed on an existing record", e.desc.Kind)
	}

	parsed, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		// Unparseable input is indistinguishable from out-of-range input
		// as far as the operator is concerned.
		parseErr := errors.Wrapf(domainerrors.ErrInvalidID, "%s id %q is not a number",
			e.desc.Kind, raw)
		e.sess.lastErr = parseErr

		return parseErr
	}

	e.sess.draft = e.desc.WithID(e.sess.draft, entity.EntityID(parsed))
	e.sess.idSet = true
	e.sess.lastErr = nil

	return nil
}

// save commits the draft. Creating drafts without an explicit ID get the
// next free one, allocated here at commit time so abandoned drafts never
// burn IDs. Editing drafts overwrite their record in place; the ID never
// changes on edit, and the record under edit is excluded from its own
// duplicate and overlap checks.
func (e *editor[E]) save(resolve entity.RefResolver) (entity.EntityID, error) {
	switch e.sess.state {
	case sessionCreating:
		draft := e.sess.draft
		if !e.sess.idSet {
			draft = e.desc.WithID(draft, e.col.NextID())
		}

		if err := entity.Validate(e.desc, draft, e.col.All(), resolve); err != nil {
			e.sess.lastErr = err

			return 0, err
		}

		id := e.desc.ID(draft)
		e.col.Put(id, draft)
		e.sess.reset()
		e.selected = &id

		return id, nil

	case sessionEditing:
		id := e.sess.editingID
		draft := e.desc.WithID(e.sess.draft, id)

		others := make([]E, 0, e.col.Len())
		for _, rec := range e.col.All() {
			if e.desc.ID(rec) != id {
				others = append(others, rec)
			}
		}

		if err := entity.Validate(e.desc, draft, others, resolve); err != nil {
			e.sess.lastErr = err

			return 0, err
		}

		e.col.Put(id, draft)
		e.sess.reset()
		e.selected = &id

		return id, nil

	default:
		return 0, errors.Wrapf(domainerrors.ErrNoActiveSession, "%s", e.desc.Kind)
	}
}

func (e *editor[E]) cancel() error {
	if !e.sess.active() {
		return errors.Wrapf(domainerrors.ErrNoActiveSession, "%s", e.desc.Kind)
	}

	e.sess.reset()

	return nil
}

// copyRecord clones a committed record straight into the collection with
// the next free ID and the "<name>(<id>)" naming. No draft round-trip and
// no validation: nothing the operator could have edited yet.
func (e *editor[E]) copyRecord(id entity.EntityID) (entity.EntityID, error) {
	rec, ok := e.col.Get(id)
	if !ok {
		return 0, errors.Wrapf(domainerrors.ErrNotFound, "%s %d", e.desc.Kind, id)
	}

	newID := e.col.NextID()
	clone := e.desc.WithID(e.desc.Clone(rec), newID)
	clone = e.desc.Rename(clone,
		e.desc.Label(rec)+"("+strconv.FormatInt(int64(newID), 10)+")")

	e.col.Put(newID, clone)
	e.selected = &newID

	return newID, nil
}

func (e *editor[E]) selectRecord(id entity.EntityID) error {
	if !e.exists(id) {
		return errors.Wrapf(domainerrors.ErrNotFound, "%s %d", e.desc.Kind, id)
	}

	e.selected = &id

	return nil
}

func (e *editor[E]) removeRecord(id entity.EntityID) bool {
	return e.col.Remove(id)
}

// clearAfterDelete drops selection and draft state that pointed at the
// deleted record so no stale identity survives the deletion.
func (e *editor[E]) clearAfterDelete(id entity.EntityID) {
	if e.selected != nil && *e.selected == id {
		e.selected = nil
	}
	if e.sess.state == sessionEditing && e.sess.editingID == id {
		e.sess.reset()
	}
}

// affectedBy lists the records of this kind that reference id in target's
// collection, for the deletion confirmation modal.
func (e *editor[E]) affectedBy(target entity.Kind, id entity.EntityID) []entity.EntityID {
	var affected []entity.EntityID
	for _, rec := range e.col.All() {
		if e.refers(rec, target, id) {
			affected = append(affected, e.desc.ID(rec))
		}
	}

	return affected
}

func (e *editor[E]) refers(rec E, target entity.Kind, id entity.EntityID) bool {
	for _, ref := range e.desc.Refs {
		if ref.Target != target {
			continue
		}
		for _, refID := range ref.Collect(rec) {
			if refID == id {
				return true
			}
		}
	}

	return false
}

// stripRefsTo rewrites every record of this kind that references the
// deleted ID, driven by the declared reference table. Returns the IDs of
// the rewritten records.
func (e *editor[E]) stripRefsTo(target entity.Kind, id entity.EntityID) []entity.EntityID {
	var changed []entity.EntityID
	for _, recID := range e.col.IDs() {
		rec, ok := e.col.Get(recID)
		if !ok {
			continue
		}

		dirty := false
		for _, ref := range e.desc.Refs {
			if ref.Target != target {
				continue
			}
			if stripped, ok := ref.Strip(rec, id); ok {
				rec = stripped
				dirty = true
			}
		}

		if dirty {
			e.col.Put(recID, rec)
			changed = append(changed, recID)
		}
	}

	return changed
}

// audit reruns the save-time rules over every committed record, excluding
// each record from its own duplicate and overlap checks. Bulk load trusts
// its input, so this is how a suspect file gets checked after the fact.
// Unlike save, it collects every violation instead of stopping at the
// first.
func (e *editor[E]) audit(resolve entity.RefResolver) []usecase.Violation {
	var violations []usecase.Violation
	all := e.col.All()

	for _, rec := range all {
		id := e.desc.ID(rec)

		others := make([]E, 0, len(all)-1)
		for _, other := range all {
			if e.desc.ID(other) != id {
				others = append(others, other)
			}
		}

		if err := entity.Validate(e.desc, rec, others, resolve); err != nil {
			violations = append(violations, usecase.Violation{
				Kind: e.desc.Kind,
				ID:   id,
				Err:  err,
			})
		}
	}

	return violations
}

var _ kindOps = (*editor[entity.Item])(nil)
