package entity

// Ref declares one outward reference field of a record type: which kind it
// points at, how to collect the referenced IDs for existence checks, and how
// to strip a deleted ID from the field. Validation and cascade deletion both
// run off this table, so a reference field added here is automatically
// covered by both.
type Ref[E any] struct {
	// Target is the kind the field points at.
	Target Kind
	// Collect returns the IDs the field currently references.
	Collect func(E) []EntityID
	// Strip removes id from the field and reports whether anything changed.
	// Scalar fields become absent; emptied list fields collapse to absent.
	Strip func(E, EntityID) (E, bool)
}

// Descriptor is the capability set of one record kind. The repository, the
// validation engine, the edit sessions and the cascade coordinator are all
// generic over it, so the ten kinds share a single code path.
type Descriptor[E any] struct {
	// Kind names the collection.
	Kind Kind

	// Bounds is the fixed valid ID interval of the kind. Ignored when
	// CheckID is set.
	Bounds IDRange

	// ID reads the record's identity.
	ID func(E) EntityID
	// WithID returns a copy of the record carrying the given identity.
	WithID func(E, EntityID) E
	// Label reads the record's display name.
	Label func(E) string
	// Rename returns a copy of the record with the given name.
	Rename func(E, string) E
	// Clone deep-copies the record, including list-valued fields.
	Clone func(E) E
	// New constructs a default-valued draft.
	New func() E

	// CheckID replaces the plain bounds check for kinds with richer
	// identity rules (item group spans, type-dependent price level
	// ranges). It receives the other committed records of the kind.
	CheckID func(E, []E) error

	// Extra runs after the common rules for per-kind value checks.
	Extra func(E, []E) error

	// Refs declares every outward reference field.
	Refs []Ref[E]

	// Fields declares the draft values editable beyond name and ID.
	// Name-only kinds leave it empty.
	Fields []Field[E]
}
