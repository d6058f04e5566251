package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cbusillo/factorio-bp-editor/pkg/types"
)

func TestValidateAcceptsWellFormedBlueprint(t *testing.T) {
	bp := types.NewBlueprint()
	bp.Label = "Valid"
	bp.Icons = []types.Icon{{Signal: types.SignalID{Name: "inserter", Type: "item"}, Index: 1}}
	bp.Entities = append(bp.Entities,
		types.NewDirectionalEntity("inserter", types.Position{X: 0.5, Y: 0.5}, types.DirectionSouth),
	)
	bp.Tiles = append(bp.Tiles,
		types.Tile{Name: "stone-path", Position: types.TilePosition{X: 0, Y: 0}},
	)

	assert.NoError(t, Validate(bp))
}

func TestValidateAcceptsBookWithNestedMembers(t *testing.T) {
	inner := types.NewBlueprint()
	inner.Entities = append(inner.Entities, types.NewFixedEntity("stone-furnace", types.Position{}))

	book := types.NewBook()
	book.Blueprints = append(book.Blueprints, inner, types.NewBook())

	assert.NoError(t, Validate(book))
}

func TestValidateRejectsStructuralProblems(t *testing.T) {
	tests := []struct {
		name  string
		build func() types.Blueprintable
	}{
		{
			name: "entity with empty prototype name",
			build: func() types.Blueprintable {
				bp := types.NewBlueprint()
				bp.Entities = append(bp.Entities, types.NewFixedEntity("", types.Position{}))
				return bp
			},
		},
		{
			name: "icon index below one",
			build: func() types.Blueprintable {
				bp := types.NewBlueprint()
				bp.Icons = []types.Icon{{Signal: types.SignalID{Name: "inserter"}, Index: 0}}
				return bp
			},
		},
		{
			name: "tile with empty name",
			build: func() types.Blueprintable {
				bp := types.NewBlueprint()
				bp.Tiles = append(bp.Tiles, types.Tile{Position: types.TilePosition{X: 1, Y: 1}})
				return bp
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Validate(tt.build()))
		})
	}
}
