package meshtext

import "github.com/gogpu/meshtext/mesh"

// GlyphID identifies one on-screen glyph occurrence. IDs are unique per
// Engine, so repeated characters — which share one mesh — remain
// distinguishable, and ids from successive layouts never collide.
type GlyphID uint64

// GlyphInstance is one positioned character of a laid-out text. The
// Mesh pointer is shared between every occurrence of the same character
// and must be treated as read-only; identity and transform are per
// occurrence.
type GlyphInstance struct {
	// Mesh is the shared shape for this character.
	Mesh *mesh.Mesh

	// ID is the unique identity token of this occurrence.
	ID GlyphID

	// Char is the character this instance displays.
	Char rune

	// Pos is the final laid-out position of the glyph center.
	Pos mesh.Vec3

	// Scale is the uniform scale applied to the mesh.
	Scale float32

	// Line is the zero-based row the glyph was placed on.
	Line int

	// Anim describes the entry animation toward Pos. It is nil when the
	// layout was not animated; playback is the renderer's concern.
	Anim *Animation
}
