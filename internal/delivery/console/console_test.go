package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"menubuilder/config"
	"menubuilder/internal/domain/entity"
	"menubuilder/internal/infra/persistence/memory"
	"menubuilder/internal/infra/persistence/snapshot"
	"menubuilder/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	_ "gocloud.dev/blob/memblob"
)

type fakeShutdowner struct {
	calls int
}

func (f *fakeShutdowner) Shutdown(...fx.ShutdownOption) error {
	f.calls++

	return nil
}

// runScript feeds the console a fixed command script and returns its output.
func runScript(t *testing.T, script string) (string, *memory.Store, *fakeShutdowner) {
	t.Helper()

	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New()
	state := impl.NewStateService(store, snapshot.NewStore(bucket, "menu_data.json", 0, logger), logger)
	catalog := impl.NewCatalogService(store, state, logger)
	export := impl.NewExportService(store, logger)

	cfg := &config.Config{}
	cfg.Env.ServiceName = "menubuilder"
	cfg.Export.DefaultFileName = "items.csv"

	shutdowner := &fakeShutdowner{}
	var out bytes.Buffer
	c := &console{
		cfg:        cfg,
		logger:     logger,
		catalog:    catalog,
		state:      state,
		export:     export,
		shutdowner: shutdowner,
		in:         strings.NewReader(script),
		out:        &out,
		kind:       entity.KindItem,
	}

	require.NoError(t, c.Serve(context.Background()))

	return out.String(), store, shutdowner
}

func TestConsole_DraftLifecycle(t *testing.T) {
	out, store, shutdowner := runScript(t, strings.Join([]string{
		"use tax-group",
		"new",
		"name GST",
		"save",
		"list",
		"quit",
	}, "\n")+"\n")

	assert.Contains(t, out, "saved tax-group 1")
	assert.Contains(t, out, "GST")
	assert.Equal(t, 1, store.TaxGroups().Len())
	assert.Equal(t, 1, shutdowner.calls)
}

func TestConsole_FieldCommandsBuildAnItemGroup(t *testing.T) {
	out, store, _ := runScript(t, strings.Join([]string{
		"use item-group",
		"fields",
		"new",
		"name Food",
		"save",
		"field start 1",
		"field end 99",
		"save",
		"quit",
	}, "\n")+"\n")

	// The first save fails on the empty span; the field commands recover.
	assert.Contains(t, out, "start id must be less than end id")
	assert.Contains(t, out, "saved item-group 1")

	group, ok := store.ItemGroups().Get(1)
	require.True(t, ok)
	assert.Equal(t, entity.IDRange{Start: 1, End: 99}, group.Range)
}

func TestConsole_FieldCommandSetsItemReferences(t *testing.T) {
	out, store, _ := runScript(t, strings.Join([]string{
		"use tax-group",
		"new",
		"name GST",
		"field rate 10",
		"save",
		"use item",
		"new",
		"name Burger",
		"field tax-group 1",
		"draft",
		"save",
		"quit",
	}, "\n")+"\n")

	assert.Contains(t, out, "saved item 1")
	assert.Contains(t, out, `"taxGroup":1`)

	item, ok := store.Items().Get(1)
	require.True(t, ok)
	require.NotNil(t, item.TaxGroup)
	assert.Equal(t, entity.EntityID(1), *item.TaxGroup)
}

func TestConsole_FieldsListsNameOnlyKinds(t *testing.T) {
	out, _, _ := runScript(t, "use revenue-category\nfields\nquit\n")

	assert.Contains(t, out, "no fields beyond name and id")
}

func TestConsole_DeleteNeedsConfirmation(t *testing.T) {
	out, store, _ := runScript(t, strings.Join([]string{
		"use tax-group",
		"new",
		"name GST",
		"save",
		"delete 1",
		"n",
		"delete 1",
		"y",
		"quit",
	}, "\n")+"\n")

	assert.Contains(t, out, "cancelled")
	assert.Equal(t, 0, store.TaxGroups().Len())
}

func TestConsole_UnknownCommand(t *testing.T) {
	out, _, _ := runScript(t, "frobnicate\nquit\n")

	assert.Contains(t, out, "unknown command")
}

func TestConsole_UseRejectsUnknownKind(t *testing.T) {
	out, _, _ := runScript(t, "use bogus\nquit\n")

	assert.Contains(t, out, "unknown kind")
}

func TestConsole_EOFShutsDown(t *testing.T) {
	_, _, shutdowner := runScript(t, "")

	assert.Equal(t, 1, shutdowner.calls)
}
