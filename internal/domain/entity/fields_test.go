package entity

import (
	"testing"

	domainerrors "menubuilder/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setField[E any](t *testing.T, desc Descriptor[E], rec E, name, raw string) (E, error) {
	t.Helper()

	for _, field := range desc.Fields {
		if field.Name == name {
			return field.Set(rec, raw)
		}
	}
	t.Fatalf("no field %q on %s", name, desc.Kind)

	return rec, nil
}

func TestItemFields_ScalarRefSetAndClear(t *testing.T) {
	item, err := setField(t, ItemDescriptor, Item{}, "tax-group", "3")
	require.NoError(t, err)
	require.NotNil(t, item.TaxGroup)
	assert.Equal(t, EntityID(3), *item.TaxGroup)

	item, err = setField(t, ItemDescriptor, item, "tax-group", "")
	require.NoError(t, err)
	assert.Nil(t, item.TaxGroup)
}

func TestItemFields_RefListParsing(t *testing.T) {
	item, err := setField(t, ItemDescriptor, Item{}, "choice-groups", "5, 6")
	require.NoError(t, err)
	assert.Equal(t, []EntityID{5, 6}, item.ChoiceGroups)

	item, err = setField(t, ItemDescriptor, item, "choice-groups", "")
	require.NoError(t, err)
	assert.Nil(t, item.ChoiceGroups)

	_, err = setField(t, ItemDescriptor, item, "choice-groups", "5,x")
	require.ErrorIs(t, err, domainerrors.ErrInvalidValue)
}

func TestItemFields_PricePairs(t *testing.T) {
	item, err := setField(t, ItemDescriptor, Item{}, "prices", "1:9.50, 2:8")
	require.NoError(t, err)
	require.Len(t, item.ItemPrices, 2)
	assert.Equal(t, EntityID(1), item.ItemPrices[0].PriceLevelID)
	assert.True(t, item.ItemPrices[0].Price.Equal(decimal.NewFromFloat(9.5)))
	assert.Equal(t, EntityID(2), item.ItemPrices[1].PriceLevelID)

	_, err = setField(t, ItemDescriptor, Item{}, "prices", "9.50")
	require.ErrorIs(t, err, domainerrors.ErrInvalidValue)

	item, err = setField(t, ItemDescriptor, item, "prices", "")
	require.NoError(t, err)
	assert.Nil(t, item.ItemPrices)
}

func TestItemGroupFields_SpanEdit(t *testing.T) {
	group, err := setField(t, ItemGroupDescriptor, ItemGroup{}, "start", "100")
	require.NoError(t, err)
	group, err = setField(t, ItemGroupDescriptor, group, "end", "199")
	require.NoError(t, err)
	assert.Equal(t, IDRange{Start: 100, End: 199}, group.Range)

	_, err = setField(t, ItemGroupDescriptor, group, "start", "abc")
	require.ErrorIs(t, err, domainerrors.ErrInvalidValue)
}

func TestPriceLevelFields_TypeAndPrice(t *testing.T) {
	level, err := setField(t, PriceLevelDescriptor, PriceLevel{LevelType: PriceLevelItem}, "type", "store")
	require.NoError(t, err)
	assert.Equal(t, PriceLevelStore, level.LevelType)

	_, err = setField(t, PriceLevelDescriptor, level, "type", "regional")
	require.ErrorIs(t, err, domainerrors.ErrInvalidValue)

	level, err = setField(t, PriceLevelDescriptor, level, "price", "12.75")
	require.NoError(t, err)
	assert.True(t, level.Price.Equal(decimal.NewFromFloat(12.75)))
}

func TestTaxGroupFields_Rate(t *testing.T) {
	group, err := setField(t, TaxGroupDescriptor, TaxGroup{}, "rate", "10.5")
	require.NoError(t, err)
	assert.True(t, group.Rate.Equal(decimal.NewFromFloat(10.5)))

	_, err = setField(t, TaxGroupDescriptor, TaxGroup{}, "rate", "ten")
	require.ErrorIs(t, err, domainerrors.ErrInvalidValue)
}

func TestFields_EveryRefFieldIsEditable(t *testing.T) {
	// Every reference the item declares must stay reachable from the edit
	// surface, so the two tables cannot drift apart.
	names := make(map[string]bool, len(ItemDescriptor.Fields))
	for _, field := range ItemDescriptor.Fields {
		names[field.Name] = true
	}

	for _, want := range []string{
		"item-group", "tax-group", "security-level", "revenue-category",
		"report-category", "product-class", "choice-groups",
		"printer-logicals", "price-levels", "prices",
	} {
		assert.True(t, names[want], "missing field %q", want)
	}
}
