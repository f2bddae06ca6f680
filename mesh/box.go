package mesh

import "github.com/chewxy/math32"

// Box3 is an axis-aligned 3D bounding box defined by the point with the
// minimum coordinates and the point with the maximum coordinates.
type Box3 struct {
	Min Vec3
	Max Vec3
}

// B3 returns a new Box3 from the given minimum and maximum coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Min: V3(x0, y0, z0), Max: V3(x1, y1, z1)}
}

// EmptyBox3 returns a box with min at +Inf and max at -Inf, so that the
// first ExpandByPoint collapses it onto that point.
func EmptyBox3() Box3 {
	inf := math32.Inf(1)
	return Box3{
		Min: V3(inf, inf, inf),
		Max: V3(-inf, -inf, -inf),
	}
}

// IsEmpty reports whether the box contains no points (max < min on any axis).
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// ExpandByPoint grows the box to include p.
func (b *Box3) ExpandByPoint(p Vec3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// ExpandByTriangle grows the box to include all three vertices of t.
func (b *Box3) ExpandByTriangle(t Triangle) {
	b.ExpandByPoint(t.A)
	b.ExpandByPoint(t.B)
	b.ExpandByPoint(t.C)
}

// Center returns the midpoint of the box.
func (b Box3) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box on each axis.
// The components are non-negative for a non-empty box.
func (b Box3) Size() Vec3 {
	return Vec3{
		X: math32.Abs(b.Max.X - b.Min.X),
		Y: math32.Abs(b.Max.Y - b.Min.Y),
		Z: math32.Abs(b.Max.Z - b.Min.Z),
	}
}

// ContainsPoint reports whether p lies inside or on the boundary of the box.
func (b Box3) ContainsPoint(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Translate moves both corners of the box by v.
func (b Box3) Translate(v Vec3) Box3 {
	return Box3{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}
