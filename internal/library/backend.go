// Package library implements the local blueprint library: a SQLite-backed
// store of named exchange strings with denormalized summary columns for
// listing.
package library

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cbusillo/factorio-bp-editor/pkg/exchange"
	"github.com/cbusillo/factorio-bp-editor/pkg/types"
)

// dbFileName is the SQLite database file created inside the data directory.
const dbFileName = "library.db"

// schemaSQL is the library DDL. The exchange string itself is the source of
// truth; kind, label and the counts are derived on save so list output does
// not have to decode every row.
const schemaSQL = `CREATE TABLE IF NOT EXISTS blueprints (
    name TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    label TEXT NOT NULL,
    entities INTEGER NOT NULL,
    tiles INTEGER NOT NULL,
    data TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

// Record is one stored blueprint or blueprint book.
type Record struct {
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Label     string    `json:"label,omitempty"`
	Entities  int       `json:"entities"`
	Tiles     int       `json:"tiles"`
	Data      string    `json:"data,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Backend stores blueprint records in a SQLite database under the
// configured data directory. The zero value is detached; call Attach before
// use and Detach when done.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	db       *sql.DB
}

// NewBackend creates a detached backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens (or creates) the library database under cfg.DataDir.
// Returns ErrAlreadyAttached when called twice without a Detach in between.
func (b *Backend) Attach(cfg types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("opening library database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("initializing library schema: %w", err)
	}

	b.db = db
	b.attached = true
	return nil
}

// Detach closes the database. Detaching a detached backend is an error.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrLibraryDetached
	}
	err := b.db.Close()
	b.db = nil
	b.attached = false
	if err != nil {
		return fmt.Errorf("closing library database: %w", err)
	}
	return nil
}

// Save stores an exchange string under the given name, replacing any
// existing record with that name. The string is decoded first, both to
// reject malformed input and to derive the summary columns.
func (b *Backend) Save(name, exchangeString string) (Record, error) {
	if name == "" {
		return Record{}, types.ErrInvalidName
	}

	decoded, err := exchange.Decode(exchangeString)
	if err != nil {
		return Record{}, fmt.Errorf("decoding %q: %w", name, err)
	}
	rec := summarize(decoded)
	rec.Name = name
	rec.Data = exchangeString

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return Record{}, types.ErrLibraryDetached
	}

	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	var createdAt string
	err = b.db.QueryRow("SELECT created_at FROM blueprints WHERE name = ?", name).Scan(&createdAt)
	switch {
	case err == sql.ErrNoRows:
		// First save of this name.
	case err != nil:
		return Record{}, fmt.Errorf("checking existing record: %w", err)
	default:
		if t, perr := time.Parse(time.RFC3339, createdAt); perr == nil {
			rec.CreatedAt = t
		}
	}

	_, err = b.db.Exec(
		`INSERT INTO blueprints (name, kind, label, entities, tiles, data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   kind = excluded.kind, label = excluded.label,
		   entities = excluded.entities, tiles = excluded.tiles,
		   data = excluded.data, updated_at = excluded.updated_at`,
		rec.Name, rec.Kind, rec.Label, rec.Entities, rec.Tiles, rec.Data,
		rec.CreatedAt.Format(time.RFC3339), rec.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return Record{}, fmt.Errorf("persisting record %q: %w", name, err)
	}
	return rec, nil
}

// Get returns the record stored under name. Returns types.ErrNotFound when
// no record has that name.
func (b *Backend) Get(name string) (Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return Record{}, types.ErrLibraryDetached
	}

	row := b.db.QueryRow(
		"SELECT name, kind, label, entities, tiles, data, created_at, updated_at FROM blueprints WHERE name = ?",
		name,
	)
	rec, err := hydrateRecord(row.Scan)
	if err == sql.ErrNoRows {
		return Record{}, types.ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("getting record %q: %w", name, err)
	}
	return rec, nil
}

// List returns every stored record ordered by name. The exchange strings
// are not included; use Get for the full record.
func (b *Backend) List() ([]Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrLibraryDetached
	}

	rows, err := b.db.Query(
		"SELECT name, kind, label, entities, tiles, '', created_at, updated_at FROM blueprints ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := hydrateRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	return records, nil
}

// Delete removes the record stored under name. Returns types.ErrNotFound
// when no record has that name.
func (b *Backend) Delete(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrLibraryDetached
	}

	res, err := b.db.Exec("DELETE FROM blueprints WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting record %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting record %q: %w", name, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// summarize derives the denormalized summary columns from a decoded
// blueprintable. For books the entity and tile totals only count members
// that are plain blueprints, matching BookEditor.Stats.
func summarize(b types.Blueprintable) Record {
	switch v := b.(type) {
	case *types.Blueprint:
		return Record{
			Kind:     types.ItemBlueprint,
			Label:    v.Label,
			Entities: len(v.Entities),
			Tiles:    len(v.Tiles),
		}
	case *types.Book:
		rec := Record{Kind: types.ItemBook, Label: v.Label}
		for _, member := range v.Blueprints {
			if bp, ok := member.(*types.Blueprint); ok {
				rec.Entities += len(bp.Entities)
				rec.Tiles += len(bp.Tiles)
			}
		}
		return rec
	default:
		return Record{}
	}
}

// hydrateRecord scans one row into a Record, parsing the timestamp columns.
func hydrateRecord(scan func(dest ...any) error) (Record, error) {
	var rec Record
	var createdAt, updatedAt string
	if err := scan(&rec.Name, &rec.Kind, &rec.Label, &rec.Entities, &rec.Tiles, &rec.Data, &createdAt, &updatedAt); err != nil {
		return Record{}, err
	}
	var err error
	if rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return Record{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if rec.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return Record{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return rec, nil
}
