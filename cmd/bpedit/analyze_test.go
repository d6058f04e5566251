package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbusillo/factorio-bp-editor/pkg/editor"
	"github.com/cbusillo/factorio-bp-editor/pkg/types"
)

func blueprintString(t *testing.T, label string, entities int) string {
	t.Helper()
	e := editor.New()
	e.SetMetadata(types.Metadata{Label: &label})
	for i := 0; i < entities; i++ {
		e.AddEntity(types.NewEntity("inserter", types.Position{X: float64(i)}))
	}
	s, err := e.ToString()
	require.NoError(t, err)
	return s
}

func TestAnalyzeText(t *testing.T) {
	small := blueprintString(t, "Small", 2)
	large := blueprintString(t, "Large", 7)

	book := editor.NewBook()
	bookLabel := "The Book"
	book.SetMetadata(types.Metadata{Label: &bookLabel})
	book.AddBlueprint(types.NewBlueprint())
	bookString, err := book.ToString()
	require.NoError(t, err)

	text := "check this out: " + small + "\nand this: " + large + "\nbook: " + bookString

	result := analyzeText(text)

	assert.Equal(t, 3, result.Found)
	assert.Equal(t, 3, result.Valid)
	assert.Equal(t, 2, result.Blueprints)
	assert.Equal(t, 1, result.Books)
	assert.Equal(t, 9, result.Entities)
	assert.Equal(t, "Large", result.Largest)
	assert.Equal(t, 7, result.LargestN)
	require.Len(t, result.Reports, 3)
	assert.Equal(t, 1, result.Reports[0].Index)
	assert.Equal(t, types.ItemBook, result.Reports[2].Kind)
}

func TestAnalyzeTextNoBlueprints(t *testing.T) {
	result := analyzeText("nothing to see here")
	assert.Equal(t, 0, result.Found)
	assert.Empty(t, result.Reports)
}

func TestDescribeBlueprintReport(t *testing.T) {
	bp := types.NewBlueprint()
	bp.Label = "Report Me"
	bp.Entities = append(bp.Entities,
		types.NewEntity("transport-belt", types.Position{}),
		types.NewEntity("transport-belt", types.Position{X: 1}),
	)
	bp.Tiles = append(bp.Tiles, types.Tile{Name: "concrete"})

	rep := describe(bp)
	assert.True(t, rep.Valid)
	assert.Equal(t, types.ItemBlueprint, rep.Kind)
	assert.Equal(t, "Report Me", rep.Label)
	assert.Equal(t, 2, rep.TotalEntities)
	assert.Equal(t, 1, rep.TotalTiles)
	assert.Equal(t, map[string]int{"transport-belt": 2}, rep.EntityCounts)
	assert.Empty(t, rep.Problems)
}

func TestDescribeBookMemberLabels(t *testing.T) {
	inner := types.NewBlueprint()
	inner.Label = "Named"

	book := types.NewBook()
	book.Blueprints = append(book.Blueprints, inner, types.NewBlueprint(), types.NewBook())

	rep := describe(book)
	assert.Equal(t, types.ItemBook, rep.Kind)
	assert.Equal(t, 3, rep.TotalBlueprints)
	assert.Equal(t, []string{"Named", "(unnamed)", "(unnamed) (book)"}, rep.MemberLabels)
}
