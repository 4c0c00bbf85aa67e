package entity

import (
	"math"

	"github.com/shopspring/decimal"
)

// Item is a sellable menu entry. Everything interesting about an item is a
// reference into one of the supporting collections; all of them are
// optional, so a freshly created item is valid with nothing but a name.
type Item struct {
	ID   EntityID `json:"id"`
	Name string   `json:"name"`

	ItemGroup       *EntityID `json:"itemGroup,omitempty"`
	TaxGroup        *EntityID `json:"taxGroup,omitempty"`
	SecurityLevel   *EntityID `json:"securityLevel,omitempty"`
	RevenueCategory *EntityID `json:"revenueCategory,omitempty"`
	ReportCategory  *EntityID `json:"reportCategory,omitempty"`
	ProductClass    *EntityID `json:"productClass,omitempty"`

	ChoiceGroups    []EntityID `json:"choiceGroups,omitempty"`
	PrinterLogicals []EntityID `json:"printerLogicals,omitempty"`
	PriceLevels     []EntityID `json:"priceLevels,omitempty"`

	ItemPrices []ItemPrice `json:"itemPrices,omitempty"`
}

// ItemPrice is one price of the item at a given price level.
type ItemPrice struct {
	PriceLevelID EntityID        `json:"priceLevelId"`
	Price        decimal.Decimal `json:"price"`
}

func (i Item) clone() Item {
	out := i
	out.ItemGroup = cloneScalar(i.ItemGroup)
	out.TaxGroup = cloneScalar(i.TaxGroup)
	out.SecurityLevel = cloneScalar(i.SecurityLevel)
	out.RevenueCategory = cloneScalar(i.RevenueCategory)
	out.ReportCategory = cloneScalar(i.ReportCategory)
	out.ProductClass = cloneScalar(i.ProductClass)
	out.ChoiceGroups = cloneIDs(i.ChoiceGroups)
	out.PrinterLogicals = cloneIDs(i.PrinterLogicals)
	out.PriceLevels = cloneIDs(i.PriceLevels)
	if i.ItemPrices != nil {
		out.ItemPrices = make([]ItemPrice, len(i.ItemPrices))
		copy(out.ItemPrices, i.ItemPrices)
	}

	return out
}

// stripItemPrices removes every price entry bound to the deleted price
// level. An emptied price list collapses to absent, like the ID lists.
func stripItemPrices(prices []ItemPrice, deleted EntityID) ([]ItemPrice, bool) {
	if prices == nil {
		return nil, false
	}

	kept := prices[:0]
	removed := false
	for _, price := range prices {
		if price.PriceLevelID == deleted {
			removed = true

			continue
		}
		kept = append(kept, price)
	}

	if !removed {
		return prices, false
	}
	if len(kept) == 0 {
		return nil, true
	}

	return kept, true
}

// ItemDescriptor wires the item kind into the generic machinery. Item IDs
// are unconstrained beyond being positive. The reference table below is the
// single source of truth for what an item points at: the validation engine
// checks existence through it and the cascade coordinator strips deleted IDs
// through it, so the two can never drift apart.
var ItemDescriptor = Descriptor[Item]{
	Kind:   KindItem,
	Bounds: IDRange{Start: 1, End: math.MaxInt32},
	ID:     func(i Item) EntityID { return i.ID },
	WithID: func(i Item, id EntityID) Item { i.ID = id; return i },
	Label:  func(i Item) string { return i.Name },
	Rename: func(i Item, name string) Item { i.Name = name; return i },
	Clone:  func(i Item) Item { return i.clone() },
	New:    func() Item { return Item{} },
	Fields: []Field[Item]{
		scalarRefField("item-group", func(i Item, id *EntityID) Item { i.ItemGroup = id; return i }),
		scalarRefField("tax-group", func(i Item, id *EntityID) Item { i.TaxGroup = id; return i }),
		scalarRefField("security-level", func(i Item, id *EntityID) Item { i.SecurityLevel = id; return i }),
		scalarRefField("revenue-category", func(i Item, id *EntityID) Item { i.RevenueCategory = id; return i }),
		scalarRefField("report-category", func(i Item, id *EntityID) Item { i.ReportCategory = id; return i }),
		scalarRefField("product-class", func(i Item, id *EntityID) Item { i.ProductClass = id; return i }),
		refListField("choice-groups", func(i Item, ids []EntityID) Item { i.ChoiceGroups = ids; return i }),
		refListField("printer-logicals", func(i Item, ids []EntityID) Item { i.PrinterLogicals = ids; return i }),
		refListField("price-levels", func(i Item, ids []EntityID) Item { i.PriceLevels = ids; return i }),
		{
			Name: "prices",
			Set: func(i Item, raw string) (Item, error) {
				prices, err := parseItemPrices(raw)
				if err != nil {
					return i, err
				}
				i.ItemPrices = prices

				return i, nil
			},
		},
	},
	Refs: []Ref[Item]{
		{
			Target:  KindItemGroup,
			Collect: func(i Item) []EntityID { return scalarIDs(i.ItemGroup) },
			Strip: func(i Item, id EntityID) (Item, bool) {
				field, changed := clearScalar(i.ItemGroup, id)
				i.ItemGroup = field

				return i, changed
			},
		},
		{
			Target:  KindTaxGroup,
			Collect: func(i Item) []EntityID { return scalarIDs(i.TaxGroup) },
			Strip: func(i Item, id EntityID) (Item, bool) {
				field, changed := clearScalar(i.TaxGroup, id)
				i.TaxGroup = field

				return i, changed
			},
		},
		{
			Target:  KindSecurityLevel,
			Collect: func(i Item) []EntityID { return scalarIDs(i.SecurityLevel) },
			Strip: func(i Item, id EntityID) (Item, bool) {
				field, changed := clearScalar(i.SecurityLevel, id)
				i.SecurityLevel = field

				return i, changed
			},
		},
		{
			Target:  KindRevenueCategory,
			Collect: func(i Item) []EntityID { return scalarIDs(i.RevenueCategory) },
			Strip: func(i Item, id EntityID) (Item, bool) {
				field, changed := clearScalar(i.RevenueCategory, id)
				i.RevenueCategory = field

				return i, changed
			},
		},
		{
			Target:  KindReportCategory,
			Collect: func(i Item) []EntityID { return scalarIDs(i.ReportCategory) },
			Strip: func(i Item, id EntityID) (Item, bool) {
				field, changed := clearScalar(i.ReportCategory, id)
				i.ReportCategory = field

				return i, changed
			},
		},
		{
			Target:  KindProductClass,
			Collect: func(i Item) []EntityID { return scalarIDs(i.ProductClass) },
			Strip: func(i Item, id EntityID) (Item, bool) {
				field, changed := clearScalar(i.ProductClass, id)
				i.ProductClass = field

				return i, changed
			},
		},
		{
			Target:  KindChoiceGroup,
			Collect: func(i Item) []EntityID { return i.ChoiceGroups },
			Strip: func(i Item, id EntityID) (Item, bool) {
				ids, changed := removeID(i.ChoiceGroups, id)
				i.ChoiceGroups = ids

				return i, changed
			},
		},
		{
			Target:  KindPrinterLogical,
			Collect: func(i Item) []EntityID { return i.PrinterLogicals },
			Strip: func(i Item, id EntityID) (Item, bool) {
				ids, changed := removeID(i.PrinterLogicals, id)
				i.PrinterLogicals = ids

				return i, changed
			},
		},
		{
			Target:  KindPriceLevel,
			Collect: func(i Item) []EntityID { return i.PriceLevels },
			Strip: func(i Item, id EntityID) (Item, bool) {
				ids, changed := removeID(i.PriceLevels, id)
				i.PriceLevels = ids

				return i, changed
			},
		},
		{
			Target: KindPriceLevel,
			Collect: func(i Item) []EntityID {
				ids := make([]EntityID, 0, len(i.ItemPrices))
				for _, price := range i.ItemPrices {
					ids = append(ids, price.PriceLevelID)
				}

				return ids
			},
			Strip: func(i Item, id EntityID) (Item, bool) {
				prices, changed := stripItemPrices(i.ItemPrices, id)
				i.ItemPrices = prices

				return i, changed
			},
		},
	},
}
