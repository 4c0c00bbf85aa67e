package entity

import (
	"math"

	domainerrors "menubuilder/internal/domain/errors"

	"github.com/pkg/errors"
)

// ItemGroup partitions the item ID space. Each group owns a closed interval
// of item IDs; intervals must not overlap across groups.
type ItemGroup struct {
	ID    EntityID `json:"id"`
	Name  string   `json:"name"`
	Range IDRange  `json:"idRange"`
}

// ItemGroupDescriptor replaces the plain bounds check with an id positivity
// check followed by the span rules: start strictly below end, and no overlap
// with any other group's span. The overlap error names the conflicting group
// so the operator can find it.
var ItemGroupDescriptor = Descriptor[ItemGroup]{
	Kind:   KindItemGroup,
	Bounds: IDRange{Start: 1, End: math.MaxInt32},
	ID:     func(g ItemGroup) EntityID { return g.ID },
	WithID: func(g ItemGroup, id EntityID) ItemGroup { g.ID = id; return g },
	Label:  func(g ItemGroup) string { return g.Name },
	Rename: func(g ItemGroup, name string) ItemGroup { g.Name = name; return g },
	Clone:  func(g ItemGroup) ItemGroup { return g },
	New:    func() ItemGroup { return ItemGroup{} },
	CheckID: func(g ItemGroup, others []ItemGroup) error {
		if g.ID < 1 {
			return errors.Wrap(domainerrors.ErrInvalidID,
				"item group id must be positive")
		}
		if g.Range.Start >= g.Range.End {
			return errors.Wrap(domainerrors.ErrInvalidRange,
				"start id must be less than end id")
		}
		for _, other := range others {
			if g.Range.Overlaps(other.Range) {
				return errors.Wrapf(domainerrors.ErrRangeOverlap,
					"range overlaps with group %q", other.Name)
			}
		}

		return nil
	},
	Fields: []Field[ItemGroup]{
		{
			Name: "start",
			Set: func(g ItemGroup, raw string) (ItemGroup, error) {
				id, err := parseFieldID(raw)
				if err != nil {
					return g, err
				}
				g.Range.Start = id

				return g, nil
			},
		},
		{
			Name: "end",
			Set: func(g ItemGroup, raw string) (ItemGroup, error) {
				id, err := parseFieldID(raw)
				if err != nil {
					return g, err
				}
				g.Range.End = id

				return g, nil
			},
		},
	},
}
