package store

import (
	"errors"
	"fmt"

	"github.com/gogpu/meshtext/mesh"
)

// ErrNotFound is returned by Get when no record exists for the name.
var ErrNotFound = errors.New("store: glyph not found")

// Record is one stored glyph: the centered mesh plus the metrics the
// layout engine reads. Width, Height and VertexCount are stored
// alongside the mesh rather than rederived so that a Get is a single
// cheap lookup.
type Record struct {
	Name        string     `json:"name"`
	Mesh        *mesh.Mesh `json:"mesh"`
	Width       float32    `json:"width"`
	Height      float32    `json:"height"`
	VertexCount int        `json:"vertexCount"`
}

// RecordOf bundles a parsed mesh into a Record, lifting the metrics off
// the mesh.
func RecordOf(m *mesh.Mesh) Record {
	return Record{
		Name:        m.Name,
		Mesh:        m,
		Width:       m.Width,
		Height:      m.Height,
		VertexCount: m.VertexCount,
	}
}

// GlyphStore persists and retrieves glyph records by name.
//
// Implementations must be safe for concurrent readers; the layout
// engine itself is single-caller but independent engines may share one
// store.
type GlyphStore interface {
	// Exists reports whether a record for name is present.
	Exists(name string) bool

	// Get returns the record for name, or an error wrapping ErrNotFound.
	Get(name string) (Record, error)

	// Insert stores rec under rec.Name, replacing any existing record.
	Insert(rec Record) error
}

// Ingest parses the mesh description at path and inserts it under name
// unless the store already has an entry for it. It returns whether an
// insert happened. A missing or malformed file leaves the store
// untouched for every other glyph.
func Ingest(st GlyphStore, name, path string) (bool, error) {
	if st.Exists(name) {
		return false, nil
	}
	m, err := mesh.ParseFile(name, path)
	if err != nil {
		return false, err
	}
	if err := st.Insert(RecordOf(m)); err != nil {
		return false, fmt.Errorf("store: ingest %s: %w", name, err)
	}
	return true, nil
}
