// Package store defines the persistence contract for named glyph
// meshes and provides reference backends.
//
// The layout engine only depends on the [GlyphStore] interface. A store
// maps a glyph name (normally a single character) to a [Record]: the
// centered mesh plus the width, height and vertex-count metrics the
// layout engine asks for. Stores are expected to be fully populated
// before layout runs; ingestion is a startup concern, for which
// [Ingest] is the per-mesh primitive.
//
// Backends:
//   - [MemStore]: a locked in-process map, the fast path for engines.
//   - [DirStore]: one file per glyph over any hackpadfs filesystem, so
//     the same code serves an on-disk glyph directory and an in-memory
//     filesystem in tests.
//   - [Cached]: an LRU read-through front for any other GlyphStore.
package store
