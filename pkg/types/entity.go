package types

import "github.com/google/uuid"

// Entity is a placed object inside a blueprint. Implementations are
// value-like: position is read through Position and changed only by building
// a replacement with WithPosition, which preserves the concrete variant and
// every other field including the id.
//
// Entities are produced by the constructors in this package (or by the
// exchange codec on decode); the editor never assembles one field by field.
type Entity interface {
	// ID returns the entity's identifier, unique within one blueprint.
	// Assigned at construction and never reassigned.
	ID() string

	// Name returns the prototype name, e.g. "assembling-machine-2".
	Name() string

	// Position returns the entity's placement on the blueprint grid.
	Position() Position

	// WithPosition returns a copy of the entity at the given position.
	WithPosition(pos Position) Entity
}

// Directional is the orientation capability. Entities whose prototype
// supports rotation implement it in addition to Entity.
type Directional interface {
	Entity

	// Direction returns the current orientation.
	Direction() Direction

	// SetDirection updates the orientation in place.
	SetDirection(d Direction)
}

// fixedEntity is an entity without an orientation, such as a power pole or
// a storage chest.
type fixedEntity struct {
	id   string
	name string
	pos  Position
}

func (e *fixedEntity) ID() string         { return e.id }
func (e *fixedEntity) Name() string       { return e.name }
func (e *fixedEntity) Position() Position { return e.pos }

func (e *fixedEntity) WithPosition(pos Position) Entity {
	clone := *e
	clone.pos = pos
	return &clone
}

// directionalEntity is an entity with an orientation, such as an inserter or
// a transport belt.
type directionalEntity struct {
	fixedEntity
	dir Direction
}

func (e *directionalEntity) Direction() Direction     { return e.dir }
func (e *directionalEntity) SetDirection(d Direction) { e.dir = d }

func (e *directionalEntity) WithPosition(pos Position) Entity {
	clone := *e
	clone.pos = pos
	return &clone
}

// NewEntity creates an entity with a fresh unique id, picking the
// directional variant when the prototype catalog marks the name as
// rotatable. Unknown names get the fixed variant.
func NewEntity(name string, pos Position) Entity {
	if Rotatable(name) {
		return NewDirectionalEntity(name, pos, DirectionNorth)
	}
	return NewFixedEntity(name, pos)
}

// NewFixedEntity creates an entity without an orientation capability.
func NewFixedEntity(name string, pos Position) Entity {
	return &fixedEntity{id: newEntityID(), name: name, pos: pos}
}

// NewDirectionalEntity creates an entity with an orientation capability.
func NewDirectionalEntity(name string, pos Position, dir Direction) Directional {
	return &directionalEntity{
		fixedEntity: fixedEntity{id: newEntityID(), name: name, pos: pos},
		dir:         dir,
	}
}

// newEntityID returns a fresh entity identifier. UUID v7 keeps ids sortable
// by creation time, which makes debugging dumps easier to read.
func newEntityID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the system clock or entropy source is broken.
		return uuid.NewString()
	}
	return id.String()
}
