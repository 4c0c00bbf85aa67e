package impl

import (
	"os"
	"path/filepath"
	"testing"

	"menubuilder/internal/domain/entity"
	domainerrors "menubuilder/internal/domain/errors"
	"menubuilder/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportItems_RequiresPath(t *testing.T) {
	store := memory.New()
	export := NewExportService(store, discardLogger())

	require.ErrorIs(t, export.ExportItems(""), domainerrors.ErrNoPathChosen)
}

func TestExportItems_ResolvesGroupNames(t *testing.T) {
	store := memory.New()
	store.ItemGroups().Put(10, entity.ItemGroup{
		ID: 10, Name: "Food", Range: entity.IDRange{Start: 1, End: 99},
	})
	store.Items().Put(1, entity.Item{ID: 1, Name: "Burger", ItemGroup: entity.Ptr(10)})

	path := filepath.Join(t.TempDir(), "items.csv")
	require.NoError(t, NewExportService(store, discardLogger()).ExportItems(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Burger")
	assert.Contains(t, string(data), "Food")
}
