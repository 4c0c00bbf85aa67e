package entity

// The four name-only kinds share a shape; only the kind tag and the valid ID
// range differ.

// SecurityLevel gates who may ring up an item. Level 0 is valid.
type SecurityLevel struct {
	ID   EntityID `json:"id"`
	Name string   `json:"name"`
}

// RevenueCategory buckets sales for revenue reporting.
type RevenueCategory struct {
	ID   EntityID `json:"id"`
	Name string   `json:"name"`
}

// ReportCategory buckets items on printed reports.
type ReportCategory struct {
	ID   EntityID `json:"id"`
	Name string   `json:"name"`
}

// ChoiceGroup names a set of modifier choices an item can offer.
type ChoiceGroup struct {
	ID   EntityID `json:"id"`
	Name string   `json:"name"`
}

// PrinterLogical names a kitchen printer destination. ID 0 is valid.
type PrinterLogical struct {
	ID   EntityID `json:"id"`
	Name string   `json:"name"`
}

var SecurityLevelDescriptor = Descriptor[SecurityLevel]{
	Kind:   KindSecurityLevel,
	Bounds: IDRange{Start: 0, End: 9},
	ID:     func(l SecurityLevel) EntityID { return l.ID },
	WithID: func(l SecurityLevel, id EntityID) SecurityLevel { l.ID = id; return l },
	Label:  func(l SecurityLevel) string { return l.Name },
	Rename: func(l SecurityLevel, name string) SecurityLevel { l.Name = name; return l },
	Clone:  func(l SecurityLevel) SecurityLevel { return l },
	New:    func() SecurityLevel { return SecurityLevel{} },
}

var RevenueCategoryDescriptor = Descriptor[RevenueCategory]{
	Kind:   KindRevenueCategory,
	Bounds: IDRange{Start: 1, End: 99},
	ID:     func(c RevenueCategory) EntityID { return c.ID },
	WithID: func(c RevenueCategory, id EntityID) RevenueCategory { c.ID = id; return c },
	Label:  func(c RevenueCategory) string { return c.Name },
	Rename: func(c RevenueCategory, name string) RevenueCategory { c.Name = name; return c },
	Clone:  func(c RevenueCategory) RevenueCategory { return c },
	New:    func() RevenueCategory { return RevenueCategory{} },
}

var ReportCategoryDescriptor = Descriptor[ReportCategory]{
	Kind:   KindReportCategory,
	Bounds: IDRange{Start: 1, End: 255},
	ID:     func(c ReportCategory) EntityID { return c.ID },
	WithID: func(c ReportCategory, id EntityID) ReportCategory { c.ID = id; return c },
	Label:  func(c ReportCategory) string { return c.Name },
	Rename: func(c ReportCategory, name string) ReportCategory { c.Name = name; return c },
	Clone:  func(c ReportCategory) ReportCategory { return c },
	New:    func() ReportCategory { return ReportCategory{} },
}

var ChoiceGroupDescriptor = Descriptor[ChoiceGroup]{
	Kind:   KindChoiceGroup,
	Bounds: IDRange{Start: 1, End: 9999},
	ID:     func(g ChoiceGroup) EntityID { return g.ID },
	WithID: func(g ChoiceGroup, id EntityID) ChoiceGroup { g.ID = id; return g },
	Label:  func(g ChoiceGroup) string { return g.Name },
	Rename: func(g ChoiceGroup, name string) ChoiceGroup { g.Name = name; return g },
	Clone:  func(g ChoiceGroup) ChoiceGroup { return g },
	New:    func() ChoiceGroup { return ChoiceGroup{} },
}

var PrinterLogicalDescriptor = Descriptor[PrinterLogical]{
	Kind:   KindPrinterLogical,
	Bounds: IDRange{Start: 0, End: 25},
	ID:     func(p PrinterLogical) EntityID { return p.ID },
	WithID: func(p PrinterLogical, id EntityID) PrinterLogical { p.ID = id; return p },
	Label:  func(p PrinterLogical) string { return p.Name },
	Rename: func(p PrinterLogical, name string) PrinterLogical { p.Name = name; return p },
	Clone:  func(p PrinterLogical) PrinterLogical { return p },
	New:    func() PrinterLogical { return PrinterLogical{} },
}
