// Package meshtext turns plain text into positioned, independently
// manipulable 3D letter meshes.
//
// # Overview
//
// Each character is backed by a triangle mesh (see the mesh subpackage)
// held in a glyph store (see the store subpackage). The Engine lays a
// string out left to right with word wrapping, producing one
// GlyphInstance per non-whitespace character: a shared mesh reference, a
// unique identity, and a 3D transform. The resulting TextState supports
// runtime edits — swapping adjacent glyphs by gesture direction and
// removing glyphs — while keeping the glyph sequence, the cached
// per-glyph metrics, and the displayed text string consistent.
//
// # Quick Start
//
//	st := store.NewMemStore()
//	// ... populate st with one record per character ...
//
//	eng := meshtext.New(st)
//	ts, err := eng.LayoutString("hello world")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, g := range ts.Glyphs() {
//	    renderer.Draw(g.Mesh, g.Pos, g.Scale)
//	}
//
// # Scope
//
// meshtext computes geometry and transforms only. Rendering, animation
// playback, and input capture belong to the caller; entry animations are
// expressed as evaluatable Animation curves, and gesture vectors are
// classified with DirectionFromVector. All operations on one Engine and
// its TextStates are synchronous and must be serialized by the caller.
package meshtext
