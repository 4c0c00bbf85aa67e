package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDRange_Contains(t *testing.T) {
	r := IDRange{Start: 10, End: 20}

	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(20))
	assert.False(t, r.Contains(9))
	assert.False(t, r.Contains(21))
}

func TestIDRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b IDRange
		want bool
	}{
		{name: "disjoint", a: IDRange{Start: 1, End: 99}, b: IDRange{Start: 100, End: 199}, want: false},
		{name: "shared endpoint", a: IDRange{Start: 1, End: 100}, b: IDRange{Start: 100, End: 199}, want: true},
		{name: "nested", a: IDRange{Start: 1, End: 100}, b: IDRange{Start: 40, End: 60}, want: true},
		{name: "identical", a: IDRange{Start: 1, End: 10}, b: IDRange{Start: 1, End: 10}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestRemoveID_CollapsesEmptyListToNil(t *testing.T) {
	out, changed := removeID([]EntityID{7}, 7)
	assert.True(t, changed)
	assert.Nil(t, out)

	out, changed = removeID([]EntityID{3, 7, 9}, 7)
	assert.True(t, changed)
	assert.Equal(t, []EntityID{3, 9}, out)

	out, changed = removeID([]EntityID{3, 9}, 7)
	assert.False(t, changed)
	assert.Equal(t, []EntityID{3, 9}, out)
}

func TestItemClone_IsDeep(t *testing.T) {
	original := Item{
		ID:           1,
		Name:         "Burger",
		TaxGroup:     Ptr(2),
		ChoiceGroups: []EntityID{10, 11},
	}

	clone := ItemDescriptor.Clone(original)
	*clone.TaxGroup = 99
	clone.ChoiceGroups[0] = 99

	assert.Equal(t, EntityID(2), *original.TaxGroup)
	assert.Equal(t, EntityID(10), original.ChoiceGroups[0])
}

func TestItemStrip_ScalarAndListRefs(t *testing.T) {
	item := Item{
		ID:           1,
		Name:         "Burger",
		TaxGroup:     Ptr(5),
		ChoiceGroups: []EntityID{5, 8},
	}

	stripped := stripAll(t, item, KindTaxGroup, 5)
	assert.Nil(t, stripped.TaxGroup)
	assert.Equal(t, []EntityID{5, 8}, stripped.ChoiceGroups)

	stripped = stripAll(t, item, KindChoiceGroup, 5)
	assert.Equal(t, EntityID(5), *stripped.TaxGroup)
	assert.Equal(t, []EntityID{8}, stripped.ChoiceGroups)
}

func stripAll(t *testing.T, item Item, target Kind, id EntityID) Item {
	t.Helper()

	changed := false
	for _, ref := range ItemDescriptor.Refs {
		if ref.Target != target {
			continue
		}
		if out, ok := ref.Strip(item, id); ok {
			item = out
			changed = true
		}
	}
	require.True(t, changed)

	return item
}
