// Package palette maps human-readable color names to RGBA values.
//
// Lookups are locale-aware: a Palette is built for the caller's
// preferred languages and resolves names from the matching built-in
// table. English resolves against the full SVG 1.1 color table from
// golang.org/x/image/colornames; German and Spanish carry fixed tables
// of the common color words. An unrecognized name yields the zero
// color.RGBA, which callers treat as "no change".
package palette

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/language"
)

// supported lists the locales with built-in name tables, in matcher
// priority order. English is the fallback for everything else.
var supported = []language.Tag{
	language.English,
	language.German,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// german maps German color words to their SVG table equivalents.
// Umlaut-free spellings are included as aliases.
var german = map[string]color.RGBA{
	"rot":     colornames.Red,
	"grün":    colornames.Green,
	"gruen":   colornames.Green,
	"blau":    colornames.Blue,
	"gelb":    colornames.Yellow,
	"orange":  colornames.Orange,
	"lila":    colornames.Purple,
	"rosa":    colornames.Pink,
	"braun":   colornames.Brown,
	"schwarz": colornames.Black,
	"weiß":    colornames.White,
	"weiss":   colornames.White,
	"grau":    colornames.Gray,
	"türkis":  colornames.Turquoise,
	"tuerkis": colornames.Turquoise,
	"gold":    colornames.Gold,
	"silber":  colornames.Silver,
}

// spanish maps Spanish color words to their SVG table equivalents.
var spanish = map[string]color.RGBA{
	"rojo":     colornames.Red,
	"verde":    colornames.Green,
	"azul":     colornames.Blue,
	"amarillo": colornames.Yellow,
	"naranja":  colornames.Orange,
	"morado":   colornames.Purple,
	"violeta":  colornames.Violet,
	"rosa":     colornames.Pink,
	"marrón":   colornames.Brown,
	"marron":   colornames.Brown,
	"negro":    colornames.Black,
	"blanco":   colornames.White,
	"gris":     colornames.Gray,
	"turquesa": colornames.Turquoise,
	"dorado":   colornames.Gold,
	"plateado": colornames.Silver,
}

// tables indexes the non-English tables by their position in supported.
var tables = map[language.Tag]map[string]color.RGBA{
	language.German:  german,
	language.Spanish: spanish,
}

// Palette resolves color names for one matched locale.
type Palette struct {
	tag   language.Tag
	names map[string]color.RGBA // nil means the English SVG table
}

// New returns a palette for the best-matching locale among the given
// preference tags. With no tags, or no usable match, the palette is
// English.
func New(prefs ...language.Tag) *Palette {
	_, index, _ := matcher.Match(prefs...)
	tag := supported[index]
	return &Palette{tag: tag, names: tables[tag]}
}

// Tag returns the locale this palette resolves names in.
func (p *Palette) Tag() language.Tag {
	return p.tag
}

// Color returns the RGBA value for name, case-insensitively. An
// unknown name returns the zero color.RGBA.
func (p *Palette) Color(name string) color.RGBA {
	key := strings.ToLower(strings.TrimSpace(name))
	if p.names != nil {
		return p.names[key]
	}
	return colornames.Map[key]
}

// Known reports whether name resolves in this palette.
func (p *Palette) Known(name string) bool {
	key := strings.ToLower(strings.TrimSpace(name))
	if p.names != nil {
		_, ok := p.names[key]
		return ok
	}
	_, ok := colornames.Map[key]
	return ok
}

// Color resolves name against the English table. It is shorthand for
// New().Color(name).
func Color(name string) color.RGBA {
	return colornames.Map[strings.ToLower(strings.TrimSpace(name))]
}

// Vec4 converts c to a normalized [r, g, b, a] vector in [0, 1], the
// form uniform color data is uploaded in.
func Vec4(c color.RGBA) [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}
