package editor

import (
	"slices"

	"github.com/cbusillo/factorio-bp-editor/pkg/exchange"
	"github.com/cbusillo/factorio-bp-editor/pkg/types"
)

// BookEditor mutates and inspects a single blueprint book. It operates on
// the raw member records directly; wrap a member in a BlueprintEditor via
// FromBlueprint when entity-level edits are needed.
type BookEditor struct {
	book *types.Book
}

// NewBook creates an editor over a fresh empty blueprint book.
func NewBook() *BookEditor {
	return &BookEditor{book: types.NewBook()}
}

// LoadBook decodes an exchange string and returns an editor over the
// result. The string must hold a blueprint book; decode errors propagate.
func LoadBook(s string) (*BookEditor, error) {
	book, err := exchange.DecodeBook(s)
	if err != nil {
		return nil, err
	}
	return &BookEditor{book: book}, nil
}

// FromBook wraps an existing book.
func FromBook(book *types.Book) *BookEditor {
	return &BookEditor{book: book}
}

// Book returns the underlying book.
func (e *BookEditor) Book() *types.Book {
	return e.book
}

// AddBlueprint appends a member to the book.
func (e *BookEditor) AddBlueprint(b types.Blueprintable) {
	e.book.Blueprints = append(e.book.Blueprints, b)
}

// InsertBlueprint inserts a member at the given index, shifting subsequent
// members right. Like a slice index, an out-of-range index panics.
func (e *BookEditor) InsertBlueprint(b types.Blueprintable, index int) {
	e.book.Blueprints = slices.Insert(e.book.Blueprints, index, b)
}

// RemoveBlueprint removes and returns the member at the given index. It
// returns (nil, false) and leaves the book unchanged when the index is out
// of range.
func (e *BookEditor) RemoveBlueprint(index int) (types.Blueprintable, bool) {
	if index < 0 || index >= len(e.book.Blueprints) {
		return nil, false
	}
	removed := e.book.Blueprints[index]
	e.book.Blueprints = append(e.book.Blueprints[:index], e.book.Blueprints[index+1:]...)
	return removed, true
}

// GetBlueprint returns the member at the given index, or (nil, false) when
// the index is out of range.
func (e *BookEditor) GetBlueprint(index int) (types.Blueprintable, bool) {
	if index < 0 || index >= len(e.book.Blueprints) {
		return nil, false
	}
	return e.book.Blueprints[index], true
}

// SetMetadata applies a partial metadata update with the same semantics as
// BlueprintEditor.SetMetadata.
func (e *BookEditor) SetMetadata(meta types.Metadata) {
	if meta.Label != nil {
		e.book.Label = *meta.Label
	}
	if meta.Description != nil {
		e.book.Description = *meta.Description
	}
	if meta.Icons != nil {
		e.book.Icons = meta.Icons
	}
}

// ToString encodes the book to an exchange string.
func (e *BookEditor) ToString() (string, error) {
	return exchange.Encode(e.book)
}

// Stats computes book statistics in one pass over the member sequence.
// Every member counts toward TotalBlueprints; entity and tile totals only
// accumulate members that are plain blueprints, so nested books contribute
// nothing beyond the member count.
func (e *BookEditor) Stats() types.BookStats {
	stats := types.BookStats{
		TotalBlueprints: len(e.book.Blueprints),
		HasLabel:        e.book.Label != "",
		HasDescription:  e.book.Description != "",
	}
	for _, member := range e.book.Blueprints {
		if bp, ok := member.(*types.Blueprint); ok {
			stats.TotalEntities += len(bp.Entities)
			stats.TotalTiles += len(bp.Tiles)
		}
	}
	return stats
}
