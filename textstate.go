package meshtext

import "strings"

// TextState owns the glyph sequence of one laid-out text together with
// the parallel width/height caches and the whitespace structure of the
// original string. All four are mutated together by Swap and Remove so
// they can never drift apart:
//
//	len(glyphs) == len(widths) == len(heights) == len(stripped)
//
// A TextState is created by Engine.Layout and replaced wholesale when a
// new text is laid out; states never share mutable data.
type TextState struct {
	glyphs  []*GlyphInstance
	widths  []float32
	heights []float32

	// stripped is the text without whitespace, index-aligned with the
	// glyph sequence.
	stripped []rune

	// spaceBefore holds the stripped indices that open a new word,
	// ascending. Text() re-inserts one space before each.
	spaceBefore []int
}

// Len returns the number of glyphs.
func (s *TextState) Len() int {
	return len(s.glyphs)
}

// Glyphs returns the ordered glyph sequence. The slice is owned by the
// state; callers iterate it but must not reorder it themselves.
func (s *TextState) Glyphs() []*GlyphInstance {
	return s.glyphs
}

// Metrics returns the cached unscaled width and height of glyph i.
func (s *TextState) Metrics(i int) (w, h float32) {
	return s.widths[i], s.heights[i]
}

// Text reconstructs the displayed string, one space at each recorded
// word boundary.
func (s *TextState) Text() string {
	var b strings.Builder
	next := 0
	for i, ch := range s.stripped {
		if next < len(s.spaceBefore) && s.spaceBefore[next] == i {
			b.WriteByte(' ')
			next++
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// indexOf returns the sequence index of the glyph with the given id,
// or -1.
func (s *TextState) indexOf(id GlyphID) int {
	for i, g := range s.glyphs {
		if g.ID == id {
			return i
		}
	}
	return -1
}

// Swap exchanges the glyph with the given id with its neighbor in the
// given direction. DirectionLeft from index 0 wraps to the last glyph,
// and DirectionRight from the last index wraps to index 0. The glyph
// sequence, both metric caches, the character stream, and the two
// glyphs' transforms are all exchanged together.
//
// It returns the updated text (with whitespace re-inserted) and whether
// anything changed. An unknown id or a direction other than
// DirectionLeft/DirectionRight leaves the state untouched and returns
// the current text with ok=false.
func (s *TextState) Swap(id GlyphID, dir Direction) (text string, ok bool) {
	i := s.indexOf(id)
	if i < 0 {
		logger().Warn("swap of unknown glyph", "id", uint64(id))
		return s.Text(), false
	}

	var j int
	switch dir {
	case DirectionLeft:
		j = i - 1
		if j < 0 {
			j = len(s.glyphs) - 1
		}
	case DirectionRight:
		j = i + 1
		if j == len(s.glyphs) {
			j = 0
		}
	default:
		// Up/down gestures are classified but not edits.
		return s.Text(), false
	}

	s.glyphs[i], s.glyphs[j] = s.glyphs[j], s.glyphs[i]
	s.widths[i], s.widths[j] = s.widths[j], s.widths[i]
	s.heights[i], s.heights[j] = s.heights[j], s.heights[i]
	s.stripped[i], s.stripped[j] = s.stripped[j], s.stripped[i]

	// The instances trade places on screen as well as in the sequence,
	// so sequence order keeps matching reading order.
	gi, gj := s.glyphs[i], s.glyphs[j]
	gi.Pos, gj.Pos = gj.Pos, gi.Pos
	gi.Line, gj.Line = gj.Line, gi.Line

	return s.Text(), true
}

// Remove deletes the glyph with the given id from the sequence, the
// metric caches, and the character stream, preserving the relative
// order of the rest. Whitespace boundaries after the removed glyph
// shift left; boundaries that would collide or fall off an end are
// dropped. An unknown id is a no-op returning false.
//
// Remove does not re-run layout: remaining glyphs keep their positions.
// Callers wanting closed-up spacing lay the text out again.
func (s *TextState) Remove(id GlyphID) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.glyphs = append(s.glyphs[:i], s.glyphs[i+1:]...)
	s.widths = append(s.widths[:i], s.widths[i+1:]...)
	s.heights = append(s.heights[:i], s.heights[i+1:]...)
	s.stripped = append(s.stripped[:i], s.stripped[i+1:]...)

	kept := s.spaceBefore[:0]
	for _, b := range s.spaceBefore {
		if b > i {
			b--
		}
		if b <= 0 || b >= len(s.stripped) {
			continue
		}
		if len(kept) > 0 && kept[len(kept)-1] == b {
			continue
		}
		kept = append(kept, b)
	}
	s.spaceBefore = kept
	return true
}
