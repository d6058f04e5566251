package exchange

import (
	"fmt"

	"github.com/cbusillo/factorio-bp-editor/pkg/types"
)

// Wire structs mirror the game's JSON layout. Entity ids exist only in
// memory: encode numbers entities 1..n, decode assigns fresh ids through the
// types constructors.

type wireEnvelope struct {
	Blueprint *wireBlueprint `json:"blueprint,omitempty"`
	Book      *wireBook      `json:"blueprint_book,omitempty"`
}

type wireBlueprint struct {
	Item        string       `json:"item"`
	Label       string       `json:"label,omitempty"`
	Description string       `json:"description,omitempty"`
	Icons       []types.Icon `json:"icons,omitempty"`
	Entities    []wireEntity `json:"entities,omitempty"`
	Tiles       []types.Tile `json:"tiles,omitempty"`
	Version     uint64       `json:"version"`
}

type wireEntity struct {
	EntityNumber int            `json:"entity_number"`
	Name         string         `json:"name"`
	Position     types.Position `json:"position"`
	// Pointer so an explicit north (0) survives the round trip; absence
	// means the entity has no orientation.
	Direction *int `json:"direction,omitempty"`
}

type wireBook struct {
	Item        string          `json:"item"`
	Label       string          `json:"label,omitempty"`
	Description string          `json:"description,omitempty"`
	Icons       []types.Icon    `json:"icons,omitempty"`
	Blueprints  []wireBookEntry `json:"blueprints,omitempty"`
	ActiveIndex int             `json:"active_index"`
	Version     uint64          `json:"version"`
}

type wireBookEntry struct {
	Index     int            `json:"index"`
	Blueprint *wireBlueprint `json:"blueprint,omitempty"`
	Book      *wireBook      `json:"blueprint_book,omitempty"`
}

func toWireBlueprint(b *types.Blueprint) *wireBlueprint {
	w := &wireBlueprint{
		Item:        types.ItemBlueprint,
		Label:       b.Label,
		Description: b.Description,
		Icons:       b.Icons,
		Tiles:       b.Tiles,
		Version:     b.Version,
	}
	if w.Version == 0 {
		w.Version = types.DefaultVersion
	}
	for i, e := range b.Entities {
		we := wireEntity{
			EntityNumber: i + 1,
			Name:         e.Name(),
			Position:     e.Position(),
		}
		if d, ok := e.(types.Directional); ok {
			dir := int(d.Direction())
			we.Direction = &dir
		}
		w.Entities = append(w.Entities, we)
	}
	return w
}

func fromWireBlueprint(w *wireBlueprint) *types.Blueprint {
	b := &types.Blueprint{
		Label:       w.Label,
		Description: w.Description,
		Icons:       w.Icons,
		Tiles:       w.Tiles,
		Version:     w.Version,
	}
	for _, we := range w.Entities {
		b.Entities = append(b.Entities, fromWireEntity(we))
	}
	return b
}

// fromWireEntity rebuilds an entity from its wire form. A present direction
// field forces the directional variant even for prototypes the catalog does
// not know about (modded entities).
func fromWireEntity(we wireEntity) types.Entity {
	if we.Direction != nil {
		return types.NewDirectionalEntity(we.Name, we.Position, types.Direction(*we.Direction))
	}
	if types.Rotatable(we.Name) {
		return types.NewDirectionalEntity(we.Name, we.Position, types.DirectionNorth)
	}
	return types.NewFixedEntity(we.Name, we.Position)
}

func toWireBook(b *types.Book) *wireBook {
	w := &wireBook{
		Item:        types.ItemBook,
		Label:       b.Label,
		Description: b.Description,
		Icons:       b.Icons,
		ActiveIndex: b.ActiveIndex,
		Version:     b.Version,
	}
	if w.Version == 0 {
		w.Version = types.DefaultVersion
	}
	for i, member := range b.Blueprints {
		entry := wireBookEntry{Index: i}
		switch m := member.(type) {
		case *types.Blueprint:
			entry.Blueprint = toWireBlueprint(m)
		case *types.Book:
			entry.Book = toWireBook(m)
		}
		w.Blueprints = append(w.Blueprints, entry)
	}
	return w
}

func fromWireBook(w *wireBook) (*types.Book, error) {
	b := &types.Book{
		Label:       w.Label,
		Description: w.Description,
		Icons:       w.Icons,
		ActiveIndex: w.ActiveIndex,
		Version:     w.Version,
	}
	for i, entry := range w.Blueprints {
		switch {
		case entry.Blueprint != nil:
			b.Blueprints = append(b.Blueprints, fromWireBlueprint(entry.Blueprint))
		case entry.Book != nil:
			nested, err := fromWireBook(entry.Book)
			if err != nil {
				return nil, err
			}
			b.Blueprints = append(b.Blueprints, nested)
		default:
			return nil, fmt.Errorf("book member %d: %w", i, ErrUnknownPayload)
		}
	}
	return b, nil
}
