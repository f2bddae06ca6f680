package meshtext

// Spacing coefficients. Advances scale linearly with the glyph scale;
// the caller's spacing adjustment is added on top unchanged.
const (
	charSpacingFactor = 0.009
	wordSpacingFactor = 0.02
	lineSpacingFactor = 0.059
)

// DefaultScale is the glyph scale used by LayoutString.
const DefaultScale float32 = 6.5

// DefaultLayoutWidth is the horizontal span available for a line.
// The margins sit symmetrically at ±DefaultLayoutWidth/2 around x=0.
const DefaultLayoutWidth float32 = 9.0

// CharacterSpacing returns the fixed gap inserted between two glyphs of
// the same word, before the half-width terms are added.
func CharacterSpacing(scale, adjustment float32) float32 {
	return scale*charSpacingFactor + adjustment
}

// WordSpacing returns the advance inserted at a word boundary.
func WordSpacing(scale, adjustment float32) float32 {
	return scale*wordSpacingFactor + adjustment
}

// LineSpacing returns the vertical distance between consecutive lines.
func LineSpacing(scale float32) float32 {
	return scale * lineSpacingFactor
}

// IsDescender reports whether ch hangs below the baseline. Descenders
// get a reduced vertical offset so they sit visually on the same line
// as their neighbors without real font metrics.
func IsDescender(ch rune) bool {
	switch ch {
	case 'g', 'j', 'p', 'q', 'y':
		return true
	}
	return false
}
