package meshtext

import (
	"fmt"
	"unicode"

	"github.com/gogpu/meshtext/mesh"
)

// LayoutOptions configures one layout call.
type LayoutOptions struct {
	// Scale is the uniform glyph scale. 0 means DefaultScale.
	Scale float32

	// SpacingAdjustment is added to both the character and the word
	// spacing. Negative values tighten the text.
	SpacingAdjustment float32

	// Animate attaches an entry animation to every glyph, starting from
	// a random point inside the engine's scatter volume.
	Animate bool
}

// DefaultLayoutOptions returns the default layout options.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{Scale: DefaultScale}
}

// LayoutString lays text out with DefaultLayoutOptions.
func (e *Engine) LayoutString(text string) (*TextState, error) {
	return e.Layout(text, DefaultLayoutOptions())
}

// Layout turns text into a new TextState: one glyph instance per
// non-whitespace character, positioned left to right from the left
// margin with word wrapping against the right margin.
//
// Characters repeated within the text share one mesh — the store is
// queried once per distinct character — but every instance gets its own
// identity token. A character missing from the store returns an error
// wrapping ErrGlyphNotFound and no TextState.
func (e *Engine) Layout(text string, opts LayoutOptions) (*TextState, error) {
	if opts.Scale == 0 {
		opts.Scale = DefaultScale
	}

	stripped, spaceBefore := splitWords(text)
	ts := &TextState{stripped: stripped, spaceBefore: spaceBefore}
	if len(stripped) == 0 {
		return ts, nil
	}

	ts.glyphs = make([]*GlyphInstance, len(stripped))
	ts.widths = make([]float32, len(stripped))
	ts.heights = make([]float32, len(stripped))

	first := make(map[rune]int) // earliest stream index per character
	for i, ch := range stripped {
		if j, ok := first[ch]; ok {
			ts.glyphs[i] = &GlyphInstance{
				Mesh:  ts.glyphs[j].Mesh,
				ID:    e.newID(),
				Char:  ch,
				Scale: opts.Scale,
			}
			ts.widths[i] = ts.widths[j]
			ts.heights[i] = ts.heights[j]
			continue
		}
		rec, err := e.store.Get(string(ch))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrGlyphNotFound, ch)
		}
		ts.glyphs[i] = &GlyphInstance{
			Mesh:  rec.Mesh,
			ID:    e.newID(),
			Char:  ch,
			Scale: opts.Scale,
		}
		ts.widths[i] = rec.Width
		ts.heights[i] = rec.Height
		first[ch] = i
	}

	lines := e.place(ts, opts)
	logger().Debug("layout",
		"glyphs", len(ts.glyphs),
		"lines", lines,
		"scale", opts.Scale,
		"animate", opts.Animate)
	return ts, nil
}

// place assigns final transforms (and animations) to every glyph and
// returns the number of lines used.
func (e *Engine) place(ts *TextState, opts LayoutOptions) int {
	scale, adj := opts.Scale, opts.SpacingAdjustment
	left := -e.opts.layoutWidth / 2
	right := e.opts.layoutWidth / 2
	lineSpacing := LineSpacing(scale)

	wordStart := make(map[int]bool, len(ts.spaceBefore))
	for _, b := range ts.spaceBefore {
		wordStart[b] = true
	}

	x := left
	line := 0
	for i, g := range ts.glyphs {
		switch {
		case i == 0:
			// First glyph sits on the left margin.
		case wordStart[i]:
			x += WordSpacing(scale, adj)
			// Measure the whole upcoming word; wrap before placing any
			// of it if it would cross the right margin. Breaks only
			// happen here, never inside a word.
			if x+e.wordAdvance(ts, i, wordStart, scale, adj) > right {
				x = left
				line++
			}
		default:
			x += glyphAdvance(ts, i, scale, adj)
		}

		off := ts.heights[i] * scale / 2
		if IsDescender(g.Char) {
			off = ts.heights[i] * scale / 4
		}
		g.Line = line
		g.Pos = mesh.V3(x, off-float32(line)*lineSpacing, 0)
		if opts.Animate {
			g.Anim = &Animation{
				From:     e.scatterPoint(),
				To:       g.Pos,
				Delay:    e.opts.animDelay,
				Duration: e.opts.animDuration,
			}
		}
	}
	return line + 1
}

// glyphAdvance is the x advance onto glyph i from its predecessor:
// the fixed character spacing plus the mean of the two scaled widths.
func glyphAdvance(ts *TextState, i int, scale, adj float32) float32 {
	return CharacterSpacing(scale, adj) + (ts.widths[i-1]+ts.widths[i])*scale/2
}

// wordAdvance sums the prospective advances for the word starting at
// glyph i. A single-character word measures only its own advance.
func (e *Engine) wordAdvance(ts *TextState, i int, wordStart map[int]bool, scale, adj float32) float32 {
	var sum float32
	for j := i; j < len(ts.glyphs); j++ {
		if j > i && wordStart[j] {
			break
		}
		sum += glyphAdvance(ts, j, scale, adj)
	}
	return sum
}

// scatterPoint draws a uniform random point from the scatter volume.
func (e *Engine) scatterPoint() mesh.Vec3 {
	size := e.opts.scatter.Size()
	min := e.opts.scatter.Min
	return mesh.V3(
		min.X+e.opts.rng.Float32()*size.X,
		min.Y+e.opts.rng.Float32()*size.Y,
		min.Z+e.opts.rng.Float32()*size.Z,
	)
}

// splitWords strips whitespace from text and records, as indices into
// the stripped stream, where a whitespace run preceded a character.
// Runs collapse to a single boundary; leading and trailing whitespace
// produce none.
func splitWords(text string) (stripped []rune, spaceBefore []int) {
	pending := false
	for _, ch := range text {
		if unicode.IsSpace(ch) {
			pending = true
			continue
		}
		if pending && len(stripped) > 0 {
			spaceBefore = append(spaceBefore, len(stripped))
		}
		pending = false
		stripped = append(stripped, ch)
	}
	return stripped, spaceBefore
}
