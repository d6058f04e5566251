package editor

import (
	"github.com/cbusillo/factorio-bp-editor/internal/schema"
	"github.com/cbusillo/factorio-bp-editor/pkg/exchange"
	"github.com/cbusillo/factorio-bp-editor/pkg/types"
)

// BlueprintEditor mutates and inspects a single blueprint. Create one with
// New, Load, or FromBlueprint.
type BlueprintEditor struct {
	bp *types.Blueprint
}

// New creates an editor over a fresh empty blueprint.
func New() *BlueprintEditor {
	return &BlueprintEditor{bp: types.NewBlueprint()}
}

// Load decodes an exchange string and returns an editor over the result.
// The string must hold a single blueprint; decode errors propagate and no
// editor is produced.
func Load(s string) (*BlueprintEditor, error) {
	bp, err := exchange.DecodeBlueprint(s)
	if err != nil {
		return nil, err
	}
	return &BlueprintEditor{bp: bp}, nil
}

// FromBlueprint wraps an existing blueprint, for example one pulled out of
// a book. The editor operates on it in place.
func FromBlueprint(bp *types.Blueprint) *BlueprintEditor {
	return &BlueprintEditor{bp: bp}
}

// Blueprint returns the underlying blueprint.
func (e *BlueprintEditor) Blueprint() *types.Blueprint {
	return e.bp
}

// AddEntity appends an entity to the blueprint. The entity's id is assumed
// unique within this blueprint; ids come from the types constructors and no
// duplicate check is made here.
func (e *BlueprintEditor) AddEntity(ent types.Entity) {
	e.bp.Entities = append(e.bp.Entities, ent)
}

// RemoveEntity deletes the first entity with the given id, preserving the
// order of the remaining entities. It reports whether an entity was removed.
func (e *BlueprintEditor) RemoveEntity(id string) bool {
	for i, ent := range e.bp.Entities {
		if ent.ID() == id {
			e.bp.Entities = append(e.bp.Entities[:i], e.bp.Entities[i+1:]...)
			return true
		}
	}
	return false
}

// FindEntities returns the entities whose prototype name equals entityType,
// in insertion order. An empty entityType returns a copy of the whole
// sequence; the slice is the caller's, the entities are shared.
func (e *BlueprintEditor) FindEntities(entityType string) []types.Entity {
	if entityType == "" {
		out := make([]types.Entity, len(e.bp.Entities))
		copy(out, e.bp.Entities)
		return out
	}
	var out []types.Entity
	for _, ent := range e.bp.Entities {
		if ent.Name() == entityType {
			out = append(out, ent)
		}
	}
	return out
}

// MoveEntity shifts the entity with the given id by (dx, dy). The entity is
// rebuilt at the new position and spliced into the same slot, so holders of
// the old value keep seeing the old position. Reports whether the entity
// was found.
func (e *BlueprintEditor) MoveEntity(id string, dx, dy float64) bool {
	for i, ent := range e.bp.Entities {
		if ent.ID() == id {
			e.bp.Entities[i] = ent.WithPosition(ent.Position().Translate(dx, dy))
			return true
		}
	}
	return false
}

// RotateEntity sets the direction of the entity with the given id. It
// returns false both when no entity has the id and when the entity exists
// but has no orientation capability; callers that need to tell the two
// apart should look the entity up first.
func (e *BlueprintEditor) RotateEntity(id string, d types.Direction) bool {
	for _, ent := range e.bp.Entities {
		if ent.ID() != id {
			continue
		}
		dir, ok := ent.(types.Directional)
		if !ok {
			return false
		}
		dir.SetDirection(d)
		return true
	}
	return false
}

// AddTile appends a tile to the blueprint.
func (e *BlueprintEditor) AddTile(t types.Tile) {
	e.bp.Tiles = append(e.bp.Tiles, t)
}

// SetMetadata applies a partial metadata update: nil fields of meta leave
// the blueprint untouched, non-nil fields overwrite.
func (e *BlueprintEditor) SetMetadata(meta types.Metadata) {
	if meta.Label != nil {
		e.bp.Label = *meta.Label
	}
	if meta.Description != nil {
		e.bp.Description = *meta.Description
	}
	if meta.Icons != nil {
		e.bp.Icons = meta.Icons
	}
}

// ToString encodes the blueprint to an exchange string.
func (e *BlueprintEditor) ToString() (string, error) {
	return exchange.Encode(e.bp)
}

// Validate checks the blueprint's structural shape. A valid blueprint
// yields an empty slice; otherwise the slice holds the validator's message.
func (e *BlueprintEditor) Validate() []string {
	if err := schema.Validate(e.bp); err != nil {
		return []string{err.Error()}
	}
	return []string{}
}

// Stats computes blueprint statistics in one pass over the entity sequence.
func (e *BlueprintEditor) Stats() types.BlueprintStats {
	counts := make(map[string]int)
	for _, ent := range e.bp.Entities {
		counts[ent.Name()]++
	}
	return types.BlueprintStats{
		TotalEntities:  len(e.bp.Entities),
		TotalTiles:     len(e.bp.Tiles),
		EntityCounts:   counts,
		HasLabel:       e.bp.Label != "",
		HasDescription: e.bp.Description != "",
	}
}
