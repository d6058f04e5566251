package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbusillo/factorio-bp-editor/pkg/editor"
	"github.com/cbusillo/factorio-bp-editor/pkg/types"
)

func attachedBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}
	require.NoError(t, b.Attach(cfg))
	t.Cleanup(func() { _ = b.Detach() })
	return b
}

func smelterString(t *testing.T) string {
	t.Helper()
	e := editor.New()
	label := "Smelter"
	e.SetMetadata(types.Metadata{Label: &label})
	e.AddEntity(types.NewEntity("stone-furnace", types.Position{X: 0, Y: 0}))
	e.AddEntity(types.NewEntity("stone-furnace", types.Position{X: 3, Y: 0}))
	e.AddTile(types.Tile{Name: "stone-path", Position: types.TilePosition{X: 0, Y: 2}})
	s, err := e.ToString()
	require.NoError(t, err)
	return s
}

func TestAttachLifecycle(t *testing.T) {
	b := NewBackend()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}

	require.NoError(t, b.Attach(cfg))
	assert.ErrorIs(t, b.Attach(cfg), types.ErrAlreadyAttached)

	require.NoError(t, b.Detach())
	assert.ErrorIs(t, b.Detach(), types.ErrLibraryDetached)
}

func TestAttachRejectsBadConfig(t *testing.T) {
	b := NewBackend()
	assert.ErrorIs(t, b.Attach(types.Config{}), types.ErrBackendEmpty)
	assert.ErrorIs(t, b.Attach(types.Config{Backend: "redis"}), types.ErrBackendUnknown)
}

func TestSaveAndGet(t *testing.T) {
	b := attachedBackend(t)
	s := smelterString(t)

	saved, err := b.Save("smelter", s)
	require.NoError(t, err)
	assert.Equal(t, types.ItemBlueprint, saved.Kind)
	assert.Equal(t, "Smelter", saved.Label)
	assert.Equal(t, 2, saved.Entities)
	assert.Equal(t, 1, saved.Tiles)

	got, err := b.Get("smelter")
	require.NoError(t, err)
	assert.Equal(t, s, got.Data)
	assert.Equal(t, saved.Kind, got.Kind)
	assert.Equal(t, saved.Entities, got.Entities)
}

func TestSaveRejectsBadInput(t *testing.T) {
	b := attachedBackend(t)

	_, err := b.Save("", smelterString(t))
	assert.ErrorIs(t, err, types.ErrInvalidName)

	_, err = b.Save("broken", "this is not a blueprint")
	assert.Error(t, err)

	_, err = b.Get("broken")
	assert.ErrorIs(t, err, types.ErrNotFound, "failed save must not leave a record")
}

func TestSaveOverwritesKeepingCreatedAt(t *testing.T) {
	b := attachedBackend(t)
	first, err := b.Save("slot", smelterString(t))
	require.NoError(t, err)

	e := editor.NewBook()
	label := "Book of Smelters"
	e.SetMetadata(types.Metadata{Label: &label})
	bookString, err := e.ToString()
	require.NoError(t, err)

	second, err := b.Save("slot", bookString)
	require.NoError(t, err)
	assert.Equal(t, types.ItemBook, second.Kind)
	assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())

	got, err := b.Get("slot")
	require.NoError(t, err)
	assert.Equal(t, bookString, got.Data)
}

func TestListOrdersByName(t *testing.T) {
	b := attachedBackend(t)
	s := smelterString(t)

	for _, name := range []string{"zulu", "alpha", "mike"} {
		_, err := b.Save(name, s)
		require.NoError(t, err)
	}

	records, err := b.List()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "alpha", records[0].Name)
	assert.Equal(t, "mike", records[1].Name)
	assert.Equal(t, "zulu", records[2].Name)
	assert.Empty(t, records[0].Data, "list omits exchange strings")
}

func TestDelete(t *testing.T) {
	b := attachedBackend(t)
	_, err := b.Save("gone", smelterString(t))
	require.NoError(t, err)

	require.NoError(t, b.Delete("gone"))
	assert.ErrorIs(t, b.Delete("gone"), types.ErrNotFound)

	_, err = b.Get("gone")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDetachedOperationsFail(t *testing.T) {
	b := NewBackend()

	_, err := b.Save("x", "y")
	assert.Error(t, err)
	_, err = b.Get("x")
	assert.ErrorIs(t, err, types.ErrLibraryDetached)
	_, err = b.List()
	assert.ErrorIs(t, err, types.ErrLibraryDetached)
	assert.ErrorIs(t, b.Delete("x"), types.ErrLibraryDetached)
}

func TestLibraryPersistsAcrossAttach(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	b1 := NewBackend()
	require.NoError(t, b1.Attach(cfg))
	_, err := b1.Save("keeper", smelterString(t))
	require.NoError(t, err)
	require.NoError(t, b1.Detach())

	b2 := NewBackend()
	require.NoError(t, b2.Attach(cfg))
	defer b2.Detach()

	got, err := b2.Get("keeper")
	require.NoError(t, err)
	assert.Equal(t, "Smelter", got.Label)
}
