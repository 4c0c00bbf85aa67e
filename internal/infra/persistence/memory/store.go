// Package memory implements the collection store as plain ID-keyed maps.
// It is the single source of truth for committed records; persistence and
// every view read from it. Single-writer, not safe for concurrent use.
package memory

import (
	"menubuilder/internal/domain/entity"
	"menubuilder/internal/domain/repository"
)

// Store owns the ten in-memory collections.
type Store struct {
	items             *collection[entity.Item]
	itemGroups        *collection[entity.ItemGroup]
	priceLevels       *collection[entity.PriceLevel]
	productClasses    *collection[entity.ProductClass]
	taxGroups         *collection[entity.TaxGroup]
	securityLevels    *collection[entity.SecurityLevel]
	revenueCategories *collection[entity.RevenueCategory]
	reportCategories  *collection[entity.ReportCategory]
	choiceGroups      *collection[entity.ChoiceGroup]
	printerLogicals   *collection[entity.PrinterLogical]
}

// New returns an empty store.
func New() *Store {
	return &Store{
		items:             newCollection(entity.ItemDescriptor),
		itemGroups:        newCollection(entity.ItemGroupDescriptor),
		priceLevels:       newCollection(entity.PriceLevelDescriptor),
		productClasses:    newCollection(entity.ProductClassDescriptor),
		taxGroups:         newCollection(entity.TaxGroupDescriptor),
		securityLevels:    newCollection(entity.SecurityLevelDescriptor),
		revenueCategories: newCollection(entity.RevenueCategoryDescriptor),
		reportCategories:  newCollection(entity.ReportCategoryDescriptor),
		choiceGroups:      newCollection(entity.ChoiceGroupDescriptor),
		printerLogicals:   newCollection(entity.PrinterLogicalDescriptor),
	}
}

func (s *Store) Items() repository.Collection[entity.Item]             { return s.items }
func (s *Store) ItemGroups() repository.Collection[entity.ItemGroup]   { return s.itemGroups }
func (s *Store) PriceLevels() repository.Collection[entity.PriceLevel] { return s.priceLevels }
func (s *Store) ProductClasses() repository.Collection[entity.ProductClass] {
	return s.productClasses
}
func (s *Store) TaxGroups() repository.Collection[entity.TaxGroup] { return s.taxGroups }
func (s *Store) SecurityLevels() repository.Collection[entity.SecurityLevel] {
	return s.securityLevels
}
func (s *Store) RevenueCategories() repository.Collection[entity.RevenueCategory] {
	return s.revenueCategories
}
func (s *Store) ReportCategories() repository.Collection[entity.ReportCategory] {
	return s.reportCategories
}
func (s *Store) ChoiceGroups() repository.Collection[entity.ChoiceGroup] { return s.choiceGroups }
func (s *Store) PrinterLogicals() repository.Collection[entity.PrinterLogical] {
	return s.printerLogicals
}

// Has reports whether the collection for kind holds id.
func (s *Store) Has(kind entity.Kind, id entity.EntityID) bool {
	switch kind {
	case entity.KindItem:
		_, ok := s.items.byID[id]

		return ok
	case entity.KindItemGroup:
		_, ok := s.itemGroups.byID[id]

		return ok
	case entity.KindPriceLevel:
		_, ok := s.priceLevels.byID[id]

		return ok
	case entity.KindProductClass:
		_, ok := s.productClasses.byID[id]

		return ok
	case entity.KindTaxGroup:
		_, ok := s.taxGroups.byID[id]

		return ok
	case entity.KindSecurityLevel:
		_, ok := s.securityLevels.byID[id]

		return ok
	case entity.KindRevenueCategory:
		_, ok := s.revenueCategories.byID[id]

		return ok
	case entity.KindReportCategory:
		_, ok := s.reportCategories.byID[id]

		return ok
	case entity.KindChoiceGroup:
		_, ok := s.choiceGroups.byID[id]

		return ok
	case entity.KindPrinterLogical:
		_, ok := s.printerLogicals.byID[id]

		return ok
	default:
		return false
	}
}

// Export flattens every collection into a snapshot, ascending by ID. The
// meta header and settings are left for the caller to fill in.
func (s *Store) Export() *repository.Snapshot {
	return &repository.Snapshot{
		Items:             s.items.All(),
		ItemGroups:        s.itemGroups.All(),
		PriceLevels:       s.priceLevels.All(),
		ProductClasses:    s.productClasses.All(),
		TaxGroups:         s.taxGroups.All(),
		SecurityLevels:    s.securityLevels.All(),
		RevenueCategories: s.revenueCategories.All(),
		ReportCategories:  s.reportCategories.All(),
		ChoiceGroups:      s.choiceGroups.All(),
		PrinterLogicals:   s.printerLogicals.All(),
	}
}

// Load replaces all committed records with the snapshot's contents.
func (s *Store) Load(snap *repository.Snapshot) {
	s.items.load(snap.Items)
	s.itemGroups.load(snap.ItemGroups)
	s.priceLevels.load(snap.PriceLevels)
	s.productClasses.load(snap.ProductClasses)
	s.taxGroups.load(snap.TaxGroups)
	s.securityLevels.load(snap.SecurityLevels)
	s.reportCategories.load(snap.ReportCategories)
	s.revenueCategories.load(snap.RevenueCategories)
	s.choiceGroups.load(snap.ChoiceGroups)
	s.printerLogicals.load(snap.PrinterLogicals)
}

var _ repository.Store = (*Store)(nil)
