// Package repository defines the interfaces for the collection store that
// owns all committed records, plus the snapshot shape the persistence layer
// reads and writes.
package repository

import (
	"menubuilder/internal/domain/entity"
)

// Collection is one ID-keyed set of committed records. Ordering exposed to
// callers is always ascending by ID; insertion order is irrelevant.
type Collection[E any] interface {
	// Get returns the record at id, if committed.
	Get(id entity.EntityID) (E, bool)

	// Put inserts or overwrites the record at id. Callers must have run
	// validation first; the only exemption is bulk load from a persisted
	// snapshot, which is trusted to already satisfy the invariants.
	Put(id entity.EntityID, rec E)

	// Remove deletes the record at id and reports whether it existed.
	// Removing an absent ID is a no-op, not an error.
	Remove(id entity.EntityID) bool

	// Len returns the number of committed records.
	Len() int

	// IDs returns the committed IDs in ascending order.
	IDs() []entity.EntityID

	// All returns the committed records in ascending ID order.
	All() []E

	// NextID is the sole ID-allocation authority: max existing ID + 1, or
	// 1 for an empty collection. It must be called at commit time, never
	// at draft-creation time, so abandoned drafts burn no IDs.
	NextID() entity.EntityID
}

// Store owns the ten collections. All reads and writes in the application
// go through it; it is single-writer and not safe for concurrent use.
type Store interface {
	Items() Collection[entity.Item]
	ItemGroups() Collection[entity.ItemGroup]
	PriceLevels() Collection[entity.PriceLevel]
	ProductClasses() Collection[entity.ProductClass]
	TaxGroups() Collection[entity.TaxGroup]
	SecurityLevels() Collection[entity.SecurityLevel]
	RevenueCategories() Collection[entity.RevenueCategory]
	ReportCategories() Collection[entity.ReportCategory]
	ChoiceGroups() Collection[entity.ChoiceGroup]
	PrinterLogicals() Collection[entity.PrinterLogical]

	// Has reports whether the collection for kind holds id. It backs the
	// validation engine's reference checks.
	Has(kind entity.Kind, id entity.EntityID) bool

	// Export flattens every collection into a snapshot, ascending by ID.
	Export() *Snapshot

	// Load replaces all committed records with the snapshot's contents.
	// The snapshot is trusted; no validation runs.
	Load(snap *Snapshot)
}
