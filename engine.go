package meshtext

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/gogpu/meshtext/store"
)

// Engine lays text out against a glyph store. One engine can produce
// any number of independent TextStates; the store is the only shared
// piece, and the provided store backends lock internally.
//
// Layout, the TextState edits, and TotalVertexCount are synchronous and
// must not be called concurrently with each other on the same engine
// and state.
type Engine struct {
	store  store.GlyphStore
	opts   engineOptions
	nextID atomic.Uint64
}

// New creates an engine over st. The store must already hold a record
// for every character of every text the engine will be asked to lay
// out; Layout does not ingest.
func New(st store.GlyphStore, opts ...Option) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		now := uint64(time.Now().UnixNano())
		o.rng = rand.New(rand.NewPCG(now, now>>32))
	}
	return &Engine{store: st, opts: o}
}

// Store returns the glyph store the engine reads from.
func (e *Engine) Store() store.GlyphStore {
	return e.store
}

// newID hands out the next identity token.
func (e *Engine) newID() GlyphID {
	return GlyphID(e.nextID.Add(1))
}

// TotalVertexCount sums the stored vertex counts over every
// non-whitespace character of text. Repeated characters count each
// time. A character without a store record returns an error wrapping
// ErrGlyphNotFound.
func (e *Engine) TotalVertexCount(text string) (int, error) {
	counts := make(map[rune]int)
	total := 0
	for _, ch := range text {
		if unicode.IsSpace(ch) {
			continue
		}
		n, ok := counts[ch]
		if !ok {
			rec, err := e.store.Get(string(ch))
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrGlyphNotFound, ch)
			}
			n = rec.VertexCount
			counts[ch] = n
		}
		total += n
	}
	return total, nil
}
