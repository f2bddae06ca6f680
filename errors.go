package meshtext

import "errors"

// ErrGlyphNotFound is returned by Layout and TotalVertexCount when the
// glyph store has no record for a character in the text. The engine
// assumes the store was fully populated before layout, so this error
// indicates a broken ingestion step, not a recoverable condition; no
// substitute glyph is attempted.
var ErrGlyphNotFound = errors.New("meshtext: glyph not in store")
