package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hack-pad/hackpadfs"
)

// DirStore is a GlyphStore holding one JSON record file per glyph on a
// hackpadfs filesystem. With an os-backed filesystem it persists a
// glyph directory across runs; with a mem filesystem it gives tests
// DirStore semantics without touching disk.
//
// File names are the hex encoding of the glyph name: glyph names are
// typically single characters differing only in case, which would
// collide as literal file names on case-insensitive filesystems.
type DirStore struct {
	fsys hackpadfs.FS
}

// NewDirStore returns a store over fsys. The filesystem must support
// OpenFile with create semantics for Insert to work; read-only
// filesystems still serve Exists and Get.
func NewDirStore(fsys hackpadfs.FS) *DirStore {
	return &DirStore{fsys: fsys}
}

// fileName maps a glyph name to its record file.
func (s *DirStore) fileName(name string) string {
	return fmt.Sprintf("%x.glyph", name)
}

// Exists reports whether a record file for name is present.
func (s *DirStore) Exists(name string) bool {
	_, err := hackpadfs.Stat(s.fsys, s.fileName(name))
	return err == nil
}

// Get reads and decodes the record for name.
func (s *DirStore) Get(name string) (Record, error) {
	f, err := s.fsys.Open(s.fileName(name))
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return Record{}, fmt.Errorf("store: read %q: %w", name, err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("store: decode %q: %w", name, err)
	}
	return rec, nil
}

// Insert encodes rec and writes it to the record file for rec.Name,
// replacing any existing file.
func (s *DirStore) Insert(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", rec.Name, err)
	}
	f, err := hackpadfs.OpenFile(s.fsys, s.fileName(rec.Name),
		os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		return fmt.Errorf("store: create %q: %w", rec.Name, err)
	}
	if _, err := hackpadfs.WriteFile(f, data); err != nil {
		f.Close()
		return fmt.Errorf("store: write %q: %w", rec.Name, err)
	}
	return f.Close()
}
