// Package entity holds the menu configuration records and the rules that
// keep the graph consistent.
package entity

// EntityID identifies a record within its own kind's collection. IDs are
// only unique per kind; an item and a tax group may share an ID.
type EntityID int32

// Kind tags one of the ten record collections.
type Kind string

const (
	KindItem            Kind = "item"
	KindItemGroup       Kind = "item-group"
	KindPriceLevel      Kind = "price-level"
	KindProductClass    Kind = "product-class"
	KindTaxGroup        Kind = "tax-group"
	KindSecurityLevel   Kind = "security-level"
	KindRevenueCategory Kind = "revenue-category"
	KindReportCategory  Kind = "report-category"
	KindChoiceGroup     Kind = "choice-group"
	KindPrinterLogical  Kind = "printer-logical"
)

// Kinds returns every kind in sidebar order.
func Kinds() []Kind {
	return []Kind{
		KindItem,
		KindItemGroup,
		KindPriceLevel,
		KindProductClass,
		KindTaxGroup,
		KindSecurityLevel,
		KindRevenueCategory,
		KindReportCategory,
		KindChoiceGroup,
		KindPrinterLogical,
	}
}

// IDRange is a closed interval of IDs; both endpoints are valid.
type IDRange struct {
	Start EntityID `json:"start"`
	End   EntityID `json:"end"`
}

func (r IDRange) Contains(id EntityID) bool {
	return id >= r.Start && id <= r.End
}

// Overlaps reports whether the two closed intervals share any ID.
func (r IDRange) Overlaps(other IDRange) bool {
	return r.Start <= other.End && other.Start <= r.End
}

// Ptr returns a pointer to id, for building optional reference fields.
func Ptr(id EntityID) *EntityID {
	return &id
}

func cloneIDs(ids []EntityID) []EntityID {
	if ids == nil {
		return nil
	}
	out := make([]EntityID, len(ids))
	copy(out, ids)

	return out
}

// removeID strips every occurrence of id. A list emptied by the removal
// collapses to nil so an empty reference list and an absent one stay
// indistinguishable.
func removeID(ids []EntityID, id EntityID) ([]EntityID, bool) {
	out := make([]EntityID, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	if len(out) == len(ids) {
		return ids, false
	}
	if len(out) == 0 {
		return nil, true
	}

	return out, true
}

func cloneScalar(p *EntityID) *EntityID {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}

func scalarIDs(p *EntityID) []EntityID {
	if p == nil {
		return nil
	}

	return []EntityID{*p}
}

// clearScalar drops the reference when it points at id.
func clearScalar(p *EntityID, id EntityID) (*EntityID, bool) {
	if p == nil || *p != id {
		return p, false
	}

	return nil, true
}
