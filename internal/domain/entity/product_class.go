package entity

// ProductClass groups items for reporting, optionally pinned to an item
// group and a revenue category.
type ProductClass struct {
	ID              EntityID  `json:"id"`
	Name            string    `json:"name"`
	ItemGroup       *EntityID `json:"itemGroup,omitempty"`
	RevenueCategory *EntityID `json:"revenueCategory,omitempty"`
}

func (c ProductClass) clone() ProductClass {
	c.ItemGroup = cloneScalar(c.ItemGroup)
	c.RevenueCategory = cloneScalar(c.RevenueCategory)

	return c
}

var ProductClassDescriptor = Descriptor[ProductClass]{
	Kind:   KindProductClass,
	Bounds: IDRange{Start: 1, End: 999},
	ID:     func(c ProductClass) EntityID { return c.ID },
	WithID: func(c ProductClass, id EntityID) ProductClass { c.ID = id; return c },
	Label:  func(c ProductClass) string { return c.Name },
	Rename: func(c ProductClass, name string) ProductClass { c.Name = name; return c },
	Clone:  func(c ProductClass) ProductClass { return c.clone() },
	New:    func() ProductClass { return ProductClass{} },
	Fields: []Field[ProductClass]{
		scalarRefField("item-group", func(c ProductClass, id *EntityID) ProductClass { c.ItemGroup = id; return c }),
		scalarRefField("revenue-category", func(c ProductClass, id *EntityID) ProductClass { c.RevenueCategory = id; return c }),
	},
	Refs: []Ref[ProductClass]{
		{
			Target:  KindItemGroup,
			Collect: func(c ProductClass) []EntityID { return scalarIDs(c.ItemGroup) },
			Strip: func(c ProductClass, id EntityID) (ProductClass, bool) {
				field, changed := clearScalar(c.ItemGroup, id)
				c.ItemGroup = field

				return c, changed
			},
		},
		{
			Target:  KindRevenueCategory,
			Collect: func(c ProductClass) []EntityID { return scalarIDs(c.RevenueCategory) },
			Strip: func(c ProductClass, id EntityID) (ProductClass, bool) {
				field, changed := clearScalar(c.RevenueCategory, id)
				c.RevenueCategory = field

				return c, changed
			},
		},
	},
}
