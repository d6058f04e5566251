package exchange

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbusillo/factorio-bp-editor/pkg/types"
)

// encodeRawJSON compresses arbitrary JSON into exchange-string form so tests
// can build payloads Encode itself would never produce.
func encodeRawJSON(t *testing.T, payload string) string {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteByte('0')
	b64 := base64.NewEncoder(base64.StdEncoding, &buf)
	zw := zlib.NewWriter(b64)
	_, err := zw.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, b64.Close())
	return buf.String()
}

func TestRoundTripBlueprint(t *testing.T) {
	bp := types.NewBlueprint()
	bp.Label = "Smelter Row"
	bp.Description = "Twelve furnaces and a belt"
	bp.Icons = []types.Icon{
		{Signal: types.SignalID{Name: "stone-furnace", Type: "item"}, Index: 1},
	}
	bp.Entities = append(bp.Entities,
		types.NewFixedEntity("stone-furnace", types.Position{X: 0, Y: 0}),
		types.NewDirectionalEntity("inserter", types.Position{X: 1.5, Y: 0.5}, types.DirectionNorth),
		types.NewDirectionalEntity("transport-belt", types.Position{X: 2.5, Y: 0.5}, types.DirectionEast),
	)
	bp.Tiles = append(bp.Tiles,
		types.Tile{Name: "concrete", Position: types.TilePosition{X: 0, Y: 1}},
	)

	s, err := Encode(bp)
	require.NoError(t, err)
	assert.Equal(t, byte('0'), s[0])

	decoded, err := Decode(s)
	require.NoError(t, err)
	got, ok := decoded.(*types.Blueprint)
	require.True(t, ok)

	assert.Equal(t, bp.Label, got.Label)
	assert.Equal(t, bp.Description, got.Description)
	assert.Equal(t, bp.Icons, got.Icons)
	assert.Equal(t, bp.Tiles, got.Tiles)
	require.Len(t, got.Entities, len(bp.Entities))

	for i, want := range bp.Entities {
		e := got.Entities[i]
		assert.Equal(t, want.Name(), e.Name())
		assert.Equal(t, want.Position(), e.Position())

		wd, wantDir := want.(types.Directional)
		gd, gotDir := e.(types.Directional)
		require.Equal(t, wantDir, gotDir, "entity %d capability mismatch", i)
		if wantDir {
			assert.Equal(t, wd.Direction(), gd.Direction())
		}
	}

	// Ids are assigned fresh on decode, never carried on the wire.
	assert.NotEqual(t, bp.Entities[0].ID(), got.Entities[0].ID())
}

func TestRoundTripBookWithNestedBook(t *testing.T) {
	inner := types.NewBlueprint()
	inner.Label = "Inner"
	inner.Entities = append(inner.Entities, types.NewFixedEntity("wooden-chest", types.Position{}))

	nested := types.NewBook()
	nested.Label = "Nested Book"

	book := types.NewBook()
	book.Label = "Outer"
	book.Blueprints = append(book.Blueprints, inner, nested)

	s, err := Encode(book)
	require.NoError(t, err)

	got, err := DecodeBook(s)
	require.NoError(t, err)
	assert.Equal(t, "Outer", got.Label)
	require.Len(t, got.Blueprints, 2)

	gotInner, ok := got.Blueprints[0].(*types.Blueprint)
	require.True(t, ok)
	assert.Equal(t, "Inner", gotInner.Label)
	assert.Len(t, gotInner.Entities, 1)

	gotNested, ok := got.Blueprints[1].(*types.Book)
	require.True(t, ok)
	assert.Equal(t, "Nested Book", gotNested.Label)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "empty string",
			input:   "",
			wantErr: ErrEmptyString,
		},
		{
			name:    "bad version byte",
			input:   "1eNqrVkrKKS0uUbJSUM",
			wantErr: ErrUnsupportedVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("corrupt base64", func(t *testing.T) {
		_, err := Decode("0!!!not/base64!!!")
		assert.Error(t, err)
	})

	t.Run("not a zlib stream", func(t *testing.T) {
		_, err := Decode("0" + base64.StdEncoding.EncodeToString([]byte("plain text")))
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := Decode(encodeRawJSON(t, `{"blueprint":`))
		assert.Error(t, err)
	})

	t.Run("unknown payload kind", func(t *testing.T) {
		_, err := Decode(encodeRawJSON(t, `{"deconstruction_planner":{}}`))
		assert.ErrorIs(t, err, ErrUnknownPayload)
	})
}

func TestDecodeKindMismatch(t *testing.T) {
	bpString, err := Encode(types.NewBlueprint())
	require.NoError(t, err)
	bookString, err := Encode(types.NewBook())
	require.NoError(t, err)

	_, err = DecodeBook(bpString)
	assert.ErrorIs(t, err, ErrNotBook)

	_, err = DecodeBlueprint(bookString)
	assert.ErrorIs(t, err, ErrNotBlueprint)
}

func TestEntityNumbersAndDirectionOnWire(t *testing.T) {
	bp := types.NewBlueprint()
	bp.Entities = append(bp.Entities,
		types.NewDirectionalEntity("inserter", types.Position{X: 0.5, Y: 0.5}, types.DirectionNorth),
		types.NewFixedEntity("steel-chest", types.Position{X: 1.5, Y: 0.5}),
	)

	raw, err := MarshalJSON(bp)
	require.NoError(t, err)

	var env struct {
		Blueprint struct {
			Item     string `json:"item"`
			Entities []struct {
				EntityNumber int    `json:"entity_number"`
				Name         string `json:"name"`
				Direction    *int   `json:"direction"`
			} `json:"entities"`
			Version uint64 `json:"version"`
		} `json:"blueprint"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))

	assert.Equal(t, "blueprint", env.Blueprint.Item)
	assert.Equal(t, types.DefaultVersion, env.Blueprint.Version)
	require.Len(t, env.Blueprint.Entities, 2)

	assert.Equal(t, 1, env.Blueprint.Entities[0].EntityNumber)
	assert.Equal(t, 2, env.Blueprint.Entities[1].EntityNumber)

	// Explicit north must survive; fixed entities carry no direction field.
	require.NotNil(t, env.Blueprint.Entities[0].Direction)
	assert.Equal(t, 0, *env.Blueprint.Entities[0].Direction)
	assert.Nil(t, env.Blueprint.Entities[1].Direction)
}

func TestExtractStrings(t *testing.T) {
	bp := types.NewBlueprint()
	bp.Label = "First"
	first, err := Encode(bp)
	require.NoError(t, err)

	book := types.NewBook()
	book.Label = "Second"
	second, err := Encode(book)
	require.NoError(t, err)

	text := "Here is my smelter:\n" + first + "\n\nand the whole book: " + second + " enjoy!"
	found := ExtractStrings(text)

	require.Len(t, found, 2)
	assert.Equal(t, first, found[0])
	assert.Equal(t, second, found[1])

	assert.Empty(t, ExtractStrings("no blueprints in here"))
}
