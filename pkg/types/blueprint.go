package types

import "errors"

// Item names distinguishing blueprintable kinds on the wire.
const (
	ItemBlueprint = "blueprint"
	ItemBook      = "blueprint-book"
)

// DefaultVersion is the game map version stamped on blueprints created by
// this package: major.minor packed into the two high 16-bit words (1.1.0.0).
const DefaultVersion uint64 = 1<<48 | 1<<32

// Lookup and membership errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidName = errors.New("name must not be empty")
)

// Blueprintable is a member of a blueprint book: either a *Blueprint or a
// nested *Book. Item reports the wire kind.
type Blueprintable interface {
	Item() string
}

// Blueprint holds an ordered set of placed entities and tiles plus display
// metadata. Entity ids are unique within one blueprint's entity sequence;
// the constructors in this package take care of that, and nothing here
// re-checks it.
type Blueprint struct {
	Label       string
	Description string
	Icons       []Icon
	Entities    []Entity
	Tiles       []Tile
	Version     uint64
}

// NewBlueprint creates an empty blueprint.
func NewBlueprint() *Blueprint {
	return &Blueprint{Version: DefaultVersion}
}

// Item returns the blueprint wire kind.
func (b *Blueprint) Item() string { return ItemBlueprint }

// Book holds an ordered sequence of blueprintable members plus display
// metadata. Members are usually blueprints but may be nested books.
type Book struct {
	Label       string
	Description string
	Icons       []Icon
	Blueprints  []Blueprintable
	ActiveIndex int
	Version     uint64
}

// NewBook creates an empty blueprint book.
func NewBook() *Book {
	return &Book{Version: DefaultVersion}
}

// Item returns the blueprint book wire kind.
func (b *Book) Item() string { return ItemBook }

// Metadata is a partial metadata update. Nil fields leave the corresponding
// blueprint or book field untouched; non-nil fields overwrite it.
type Metadata struct {
	Label       *string
	Description *string
	Icons       []Icon
}

// BlueprintStats summarizes one blueprint.
type BlueprintStats struct {
	TotalEntities  int            `json:"total_entities"`
	TotalTiles     int            `json:"total_tiles"`
	EntityCounts   map[string]int `json:"entity_counts"`
	HasLabel       bool           `json:"has_label"`
	HasDescription bool           `json:"has_description"`
}

// BookStats summarizes one blueprint book. TotalBlueprints counts every
// member; entity and tile totals only accumulate members that are plain
// blueprints (nested books are skipped).
type BookStats struct {
	TotalBlueprints int  `json:"total_blueprints"`
	TotalEntities   int  `json:"total_entities"`
	TotalTiles      int  `json:"total_tiles"`
	HasLabel        bool `json:"has_label"`
	HasDescription  bool `json:"has_description"`
}
