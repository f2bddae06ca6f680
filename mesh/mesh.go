package mesh

// Mesh is a named triangle list together with the metrics the layout
// engine needs. Meshes are shared between glyph instances and must be
// treated as read-only after construction.
type Mesh struct {
	// Name identifies the mesh, normally the character it renders.
	Name string `json:"name"`

	// Triangles holds the geometry in encounter order.
	Triangles []Triangle `json:"triangles"`

	// Width and Height are the X and Y extents of the bounding box
	// computed at parse time.
	Width  float32 `json:"width"`
	Height float32 `json:"height"`

	// VertexCount is the number of vertex lines in the source
	// description. It is not deduplicated against face usage, so it can
	// exceed the number of vertices the triangles actually reference.
	VertexCount int `json:"vertexCount"`
}

// New builds a mesh from raw triangles, recentering it so the midpoint
// of its bounding box is at the origin and deriving Width and Height
// from the full triangle set. vertexCount is recorded as given.
func New(name string, tris []Triangle, vertexCount int) *Mesh {
	bb := EmptyBox3()
	for _, t := range tris {
		bb.ExpandByTriangle(t)
	}
	m := &Mesh{
		Name:        name,
		Triangles:   tris,
		VertexCount: vertexCount,
	}
	if bb.IsEmpty() {
		return m
	}
	m.recenter(bb)
	return m
}

// recenter translates all triangles so the midpoint of bb maps to the
// origin and records the box extents as Width and Height.
func (m *Mesh) recenter(bb Box3) {
	size := bb.Size()
	m.Width = size.X
	m.Height = size.Y
	shift := bb.Center().Neg()
	if shift.IsZero() {
		return
	}
	for i := range m.Triangles {
		m.Triangles[i].Translate(shift)
	}
}

// Bounds returns the bounding box of the full triangle set.
// For a mesh produced by Parse or New its center is the origin.
func (m *Mesh) Bounds() Box3 {
	bb := EmptyBox3()
	for _, t := range m.Triangles {
		bb.ExpandByTriangle(t)
	}
	return bb
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}
