package meshtext

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/gogpu/meshtext/mesh"
	"github.com/gogpu/meshtext/store"
)

// glyphSpec describes one synthetic store entry for tests.
type glyphSpec struct {
	w, h  float32
	verts int
}

// newTestStore populates a MemStore with one quad mesh per character.
func newTestStore(t testing.TB, glyphs map[rune]glyphSpec) *store.MemStore {
	t.Helper()
	st := store.NewMemStore()
	for ch, spec := range glyphs {
		name := string(ch)
		tris := []mesh.Triangle{
			mesh.Tri(mesh.V3(0, 0, 0), mesh.V3(spec.w, 0, 0), mesh.V3(spec.w, spec.h, 0)),
			mesh.Tri(mesh.V3(0, 0, 0), mesh.V3(spec.w, spec.h, 0), mesh.V3(0, spec.h, 0)),
		}
		m := mesh.New(name, tris, spec.verts)
		if err := st.Insert(store.RecordOf(m)); err != nil {
			t.Fatalf("insert %q: %v", name, err)
		}
	}
	return st
}

// uniformStore is a store of unit-square glyphs for the given characters.
func uniformStore(t testing.TB, chars string) *store.MemStore {
	t.Helper()
	glyphs := make(map[rune]glyphSpec)
	for _, ch := range chars {
		glyphs[ch] = glyphSpec{w: 1, h: 1, verts: 4}
	}
	return newTestStore(t, glyphs)
}

// seededEngine builds an engine with a deterministic random source.
func seededEngine(st store.GlyphStore, opts ...Option) *Engine {
	rng := rand.New(rand.NewPCG(7, 13))
	return New(st, append([]Option{WithRand(rng)}, opts...)...)
}

// findGlyph returns the first instance displaying ch.
func findGlyph(t testing.TB, ts *TextState, ch rune) *GlyphInstance {
	t.Helper()
	for _, g := range ts.Glyphs() {
		if g.Char == ch {
			return g
		}
	}
	t.Fatalf("no glyph for %q", ch)
	return nil
}

// checkAligned verifies the TextState length invariant.
func checkAligned(t testing.TB, ts *TextState) {
	t.Helper()
	n := len(ts.glyphs)
	if len(ts.widths) != n || len(ts.heights) != n || len(ts.stripped) != n {
		t.Fatalf("parallel structures misaligned: glyphs=%d widths=%d heights=%d stripped=%d",
			n, len(ts.widths), len(ts.heights), len(ts.stripped))
	}
}

// countingStore counts Get calls per name on top of another store.
type countingStore struct {
	store.GlyphStore
	mu   sync.Mutex
	gets map[string]int
}

func newCountingStore(backing store.GlyphStore) *countingStore {
	return &countingStore{GlyphStore: backing, gets: make(map[string]int)}
}

func (c *countingStore) Get(name string) (store.Record, error) {
	c.mu.Lock()
	c.gets[name]++
	c.mu.Unlock()
	return c.GlyphStore.Get(name)
}

func (c *countingStore) getCount(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gets[name]
}
