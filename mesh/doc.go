// Package mesh provides the triangle-mesh geometry used by meshtext:
// vectors, triangles, axis-aligned bounding boxes, and the Mesh type
// that bundles a named triangle list with its layout metrics.
//
// Meshes are usually produced by [Parse] or [ParseFile] from a small
// subset of the Wavefront OBJ text format ("v" and "f" lines; everything
// else is ignored). A parsed mesh is always recentered so the midpoint
// of its bounding box sits at the origin, which is what the layout
// engine in the parent package relies on when positioning glyphs.
//
// All coordinates are float32, matching how vertex data is handed to
// graphics APIs.
package mesh
