package mesh

import (
	"io"
	"strconv"
)

// Encode writes the mesh back out in the same line format Parse reads.
//
// Each triangle is emitted as three "v" lines followed by one "f" line
// referencing them, so decoding the output reproduces the triangle
// count and the exact vertex positions. The vertex count of the decoded
// mesh reflects the emitted vertex lines, not the count recorded on m.
func (m *Mesh) Encode(w io.Writer) error {
	_, err := w.Write(m.AppendText(nil))
	return err
}

// AppendText appends the encoded form of the mesh to b and returns the
// extended buffer.
func (m *Mesh) AppendText(b []byte) []byte {
	b = append(b, "o "...)
	b = append(b, m.Name...)
	b = append(b, '\n')
	for i, t := range m.Triangles {
		for _, p := range t.Vertices() {
			b = appendVertexLine(b, p)
		}
		base := 3*i + 1
		b = append(b, 'f', ' ')
		b = strconv.AppendInt(b, int64(base), 10)
		b = append(b, ' ')
		b = strconv.AppendInt(b, int64(base+1), 10)
		b = append(b, ' ')
		b = strconv.AppendInt(b, int64(base+2), 10)
		b = append(b, '\n')
	}
	return b
}

// appendVertexLine appends a "v x y z" line using the shortest decimal
// form that round-trips through float32.
func appendVertexLine(b []byte, p Vec3) []byte {
	b = append(b, 'v', ' ')
	b = strconv.AppendFloat(b, float64(p.X), 'g', -1, 32)
	b = append(b, ' ')
	b = strconv.AppendFloat(b, float64(p.Y), 'g', -1, 32)
	b = append(b, ' ')
	b = strconv.AppendFloat(b, float64(p.Z), 'g', -1, 32)
	b = append(b, '\n')
	return b
}
