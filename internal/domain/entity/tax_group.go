package entity

import (
	domainerrors "menubuilder/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// TaxGroup carries a tax rate, expressed as a percentage.
type TaxGroup struct {
	ID   EntityID        `json:"id"`
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

var maxTaxRate = decimal.NewFromInt(100)

var TaxGroupDescriptor = Descriptor[TaxGroup]{
	Kind:   KindTaxGroup,
	Bounds: IDRange{Start: 1, End: 99},
	ID:     func(g TaxGroup) EntityID { return g.ID },
	WithID: func(g TaxGroup, id EntityID) TaxGroup { g.ID = id; return g },
	Label:  func(g TaxGroup) string { return g.Name },
	Rename: func(g TaxGroup, name string) TaxGroup { g.Name = name; return g },
	Clone:  func(g TaxGroup) TaxGroup { return g },
	New:    func() TaxGroup { return TaxGroup{} },
	Extra: func(g TaxGroup, _ []TaxGroup) error {
		if g.Rate.IsNegative() || g.Rate.GreaterThan(maxTaxRate) {
			return errors.Wrap(domainerrors.ErrInvalidValue,
				"tax rate must be between 0 and 100")
		}

		return nil
	},
	Fields: []Field[TaxGroup]{
		decimalField("rate", func(g TaxGroup, rate decimal.Decimal) TaxGroup { g.Rate = rate; return g }),
	},
}
