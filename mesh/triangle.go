package mesh

// Triangle is a single triangle defined by three vertex positions.
// Triangles are treated as immutable once a Mesh is built; the only
// mutation used during construction is Translate.
type Triangle struct {
	A, B, C Vec3
}

// Tri is a convenience function to create a Triangle.
func Tri(a, b, c Vec3) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Translate moves all three vertices by v in place.
func (t *Triangle) Translate(v Vec3) {
	t.A = t.A.Add(v)
	t.B = t.B.Add(v)
	t.C = t.C.Add(v)
}

// Translated returns a copy of the triangle moved by v.
func (t Triangle) Translated(v Vec3) Triangle {
	t.Translate(v)
	return t
}

// Vertices returns the three vertex positions in order.
func (t Triangle) Vertices() [3]Vec3 {
	return [3]Vec3{t.A, t.B, t.C}
}

// Normal returns the (unnormalized) face normal of the triangle,
// following the right-hand rule over the vertex winding.
func (t Triangle) Normal() Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}
