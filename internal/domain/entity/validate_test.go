package entity

import (
	"testing"

	domainerrors "menubuilder/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveNothing(Kind, EntityID) bool { return false }

func resolveEverything(Kind, EntityID) bool { return true }

func TestValidate_IDBounds(t *testing.T) {
	tests := []struct {
		name    string
		id      EntityID
		wantErr bool
	}{
		{name: "below range", id: 0, wantErr: true},
		{name: "lower bound", id: 1, wantErr: false},
		{name: "upper bound", id: 99, wantErr: false},
		{name: "above range", id: 100, wantErr: true},
		{name: "negative", id: -5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := TaxGroup{ID: tt.id, Name: "GST"}

			err := Validate(TaxGroupDescriptor, group, nil, nil)
			if tt.wantErr {
				require.ErrorIs(t, err, domainerrors.ErrInvalidID)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidate_DuplicateID(t *testing.T) {
	existing := []TaxGroup{{ID: 5, Name: "GST"}}

	err := Validate(TaxGroupDescriptor, TaxGroup{ID: 5, Name: "PST"}, existing, nil)
	require.ErrorIs(t, err, domainerrors.ErrDuplicateID)
}

func TestValidate_EmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t"} {
		err := Validate(TaxGroupDescriptor, TaxGroup{ID: 1, Name: name}, nil, nil)
		require.ErrorIs(t, err, domainerrors.ErrEmptyName)
	}
}

// The rules run in a fixed order and stop at the first failure: a record
// that is wrong in several ways reports its ID problem first.
func TestValidate_OrderStopsAtFirstFailure(t *testing.T) {
	err := Validate(TaxGroupDescriptor, TaxGroup{ID: 0, Name: ""}, nil, nil)
	require.ErrorIs(t, err, domainerrors.ErrInvalidID)
	assert.NotErrorIs(t, err, domainerrors.ErrEmptyName)
}

func TestValidate_DanglingReference(t *testing.T) {
	item := Item{ID: 1, Name: "Burger", TaxGroup: Ptr(7)}

	err := Validate(ItemDescriptor, item, nil, resolveNothing)
	require.ErrorIs(t, err, domainerrors.ErrInvalidReference)

	require.NoError(t, Validate(ItemDescriptor, item, nil, resolveEverything))
}

func TestValidate_ItemWithOnlyName(t *testing.T) {
	// Every reference is optional; a bare named item passes.
	item := Item{ID: 1, Name: "Water"}

	require.NoError(t, Validate(ItemDescriptor, item, nil, resolveNothing))
}

func TestValidate_ItemPriceLevelReference(t *testing.T) {
	item := Item{
		ID:         1,
		Name:       "Burger",
		ItemPrices: []ItemPrice{{PriceLevelID: 3, Price: decimal.NewFromInt(5)}},
	}

	err := Validate(ItemDescriptor, item, nil, resolveNothing)
	require.ErrorIs(t, err, domainerrors.ErrInvalidReference)
}

func TestPriceLevel_BoundsByType(t *testing.T) {
	tests := []struct {
		name    string
		level   PriceLevel
		wantErr bool
	}{
		{name: "item level in range", level: PriceLevel{ID: 999, Name: "Happy Hour", LevelType: PriceLevelItem}},
		{name: "item level out of range", level: PriceLevel{ID: 1000, Name: "Happy Hour", LevelType: PriceLevelItem}, wantErr: true},
		{name: "store level allows wider range", level: PriceLevel{ID: 1000, Name: "Region", LevelType: PriceLevelStore}},
		{name: "store level out of range", level: PriceLevel{ID: 100000, Name: "Region", LevelType: PriceLevelStore}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(PriceLevelDescriptor, tt.level, nil, nil)
			if tt.wantErr {
				require.ErrorIs(t, err, domainerrors.ErrInvalidID)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPriceLevel_NegativePrice(t *testing.T) {
	level := PriceLevel{
		ID:        1,
		Name:      "Happy Hour",
		LevelType: PriceLevelItem,
		Price:     decimal.NewFromInt(-1),
	}

	err := Validate(PriceLevelDescriptor, level, nil, nil)
	require.ErrorIs(t, err, domainerrors.ErrInvalidValue)
}

func TestTaxGroup_RateBounds(t *testing.T) {
	valid := TaxGroup{ID: 1, Name: "GST", Rate: decimal.NewFromInt(100)}
	require.NoError(t, Validate(TaxGroupDescriptor, valid, nil, nil))

	over := TaxGroup{ID: 1, Name: "GST", Rate: decimal.NewFromFloat(100.5)}
	require.ErrorIs(t, Validate(TaxGroupDescriptor, over, nil, nil), domainerrors.ErrInvalidValue)

	negative := TaxGroup{ID: 1, Name: "GST", Rate: decimal.NewFromInt(-1)}
	require.ErrorIs(t, Validate(TaxGroupDescriptor, negative, nil, nil), domainerrors.ErrInvalidValue)
}

func TestItemGroup_RangeRules(t *testing.T) {
	existing := []ItemGroup{{ID: 1, Name: "Food", Range: IDRange{Start: 1, End: 99}}}

	tests := []struct {
		name    string
		group   ItemGroup
		wantErr error
	}{
		{
			name:    "zero id",
			group:   ItemGroup{ID: 0, Name: "Drinks", Range: IDRange{Start: 100, End: 199}},
			wantErr: domainerrors.ErrInvalidID,
		},
		{
			name:    "negative id",
			group:   ItemGroup{ID: -3, Name: "Drinks", Range: IDRange{Start: 100, End: 199}},
			wantErr: domainerrors.ErrInvalidID,
		},
		{
			name:  "start must be below end",
			group: ItemGroup{ID: 2, Name: "Drinks", Range: IDRange{Start: 50, End: 50}},

			wantErr: domainerrors.ErrInvalidRange,
		},
		{
			name:    "inverted span",
			group:   ItemGroup{ID: 2, Name: "Drinks", Range: IDRange{Start: 200, End: 100}},
			wantErr: domainerrors.ErrInvalidRange,
		},
		{
			name:    "overlapping span",
			group:   ItemGroup{ID: 2, Name: "Drinks", Range: IDRange{Start: 50, End: 150}},
			wantErr: domainerrors.ErrRangeOverlap,
		},
		{
			name:    "shared endpoint overlaps",
			group:   ItemGroup{ID: 2, Name: "Drinks", Range: IDRange{Start: 99, End: 199}},
			wantErr: domainerrors.ErrRangeOverlap,
		},
		{
			name:  "adjacent span is fine",
			group: ItemGroup{ID: 2, Name: "Drinks", Range: IDRange{Start: 100, End: 199}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(ItemGroupDescriptor, tt.group, existing, nil)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestItemGroup_EditingDoesNotCollideWithItself(t *testing.T) {
	// The caller excludes the record under edit from others; the same span
	// resubmitted for the same group must pass.
	group := ItemGroup{ID: 1, Name: "Food", Range: IDRange{Start: 1, End: 99}}

	require.NoError(t, Validate(ItemGroupDescriptor, group, nil, nil))
}
