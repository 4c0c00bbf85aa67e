package entity

import (
	"strings"

	domainerrors "menubuilder/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// PriceLevelType selects which ID range a price level lives in.
type PriceLevelType string

const (
	// PriceLevelItem levels use IDs 1-999.
	PriceLevelItem PriceLevelType = "item"
	// PriceLevelStore levels use IDs 1-99999.
	PriceLevelStore PriceLevelType = "store"
)

// PriceLevel names a pricing tier items can carry prices for.
type PriceLevel struct {
	ID        EntityID        `json:"id"`
	Name      string          `json:"name"`
	LevelType PriceLevelType  `json:"levelType"`
	Price     decimal.Decimal `json:"price"`
}

var (
	itemLevelBounds  = IDRange{Start: 1, End: 999}
	storeLevelBounds = IDRange{Start: 1, End: 99999}
)

// PriceLevelDescriptor swaps the ID bounds by level type.
var PriceLevelDescriptor = Descriptor[PriceLevel]{
	Kind:   KindPriceLevel,
	ID:     func(l PriceLevel) EntityID { return l.ID },
	WithID: func(l PriceLevel, id EntityID) PriceLevel { l.ID = id; return l },
	Label:  func(l PriceLevel) string { return l.Name },
	Rename: func(l PriceLevel, name string) PriceLevel { l.Name = name; return l },
	Clone:  func(l PriceLevel) PriceLevel { return l },
	New:    func() PriceLevel { return PriceLevel{LevelType: PriceLevelItem} },
	CheckID: func(l PriceLevel, _ []PriceLevel) error {
		bounds := itemLevelBounds
		if l.LevelType == PriceLevelStore {
			bounds = storeLevelBounds
		}
		if !bounds.Contains(l.ID) {
			return errors.Wrapf(domainerrors.ErrInvalidID,
				"%s price level id must be between %d and %d",
				l.LevelType, bounds.Start, bounds.End)
		}

		return nil
	},
	Extra: func(l PriceLevel, _ []PriceLevel) error {
		if l.Price.IsNegative() {
			return errors.Wrap(domainerrors.ErrInvalidValue,
				"price cannot be negative")
		}

		return nil
	},
	Fields: []Field[PriceLevel]{
		{
			Name: "type",
			Set: func(l PriceLevel, raw string) (PriceLevel, error) {
				switch levelType := PriceLevelType(strings.TrimSpace(raw)); levelType {
				case PriceLevelItem, PriceLevelStore:
					l.LevelType = levelType
				default:
					return l, errors.Wrapf(domainerrors.ErrInvalidValue,
						"level type must be %q or %q", PriceLevelItem, PriceLevelStore)
				}

				return l, nil
			},
		},
		decimalField("price", func(l PriceLevel, price decimal.Decimal) PriceLevel { l.Price = price; return l }),
	},
}
