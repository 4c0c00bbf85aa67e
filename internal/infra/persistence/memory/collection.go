package memory

import (
	"sort"

	"menubuilder/internal/domain/entity"
	"menubuilder/internal/domain/repository"
)

// collection is the map-backed implementation behind every kind. Records are
// stored by value; Get hands out deep clones so callers can never mutate a
// committed record without going through Put.
type collection[E any] struct {
	desc entity.Descriptor[E]
	byID map[entity.EntityID]E
}

func newCollection[E any](desc entity.Descriptor[E]) *collection[E] {
	return &collection[E]{
		desc: desc,
		byID: make(map[entity.EntityID]E),
	}
}

func (c *collection[E]) Get(id entity.EntityID) (E, bool) {
	rec, ok := c.byID[id]
	if !ok {
		var zero E

		return zero, false
	}

	return c.desc.Clone(rec), true
}

func (c *collection[E]) Put(id entity.EntityID, rec E) {
	c.byID[id] = c.desc.Clone(rec)
}

func (c *collection[E]) Remove(id entity.EntityID) bool {
	if _, ok := c.byID[id]; !ok {
		return false
	}
	delete(c.byID, id)

	return true
}

func (c *collection[E]) Len() int {
	return len(c.byID)
}

func (c *collection[E]) IDs() []entity.EntityID {
	ids := make([]entity.EntityID, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

func (c *collection[E]) All() []E {
	ids := c.IDs()
	out := make([]E, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.desc.Clone(c.byID[id]))
	}

	return out
}

func (c *collection[E]) NextID() entity.EntityID {
	var max entity.EntityID
	found := false
	for id := range c.byID {
		if !found || id > max {
			max = id
			found = true
		}
	}
	if !found {
		return 1
	}

	return max + 1
}

// load replaces the contents from a snapshot list, trusting it blindly.
func (c *collection[E]) load(recs []E) {
	c.byID = make(map[entity.EntityID]E, len(recs))
	for _, rec := range recs {
		c.byID[c.desc.ID(rec)] = c.desc.Clone(rec)
	}
}

var _ repository.Collection[entity.Item] = (*collection[entity.Item])(nil)
