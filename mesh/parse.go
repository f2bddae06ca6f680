package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads a mesh description from r and returns a centered Mesh
// named name.
//
// The description is line-oriented. A line starting with the token "v"
// followed by three numbers defines a vertex; a line starting with "f"
// followed by three face tokens defines a triangle by 1-based vertex
// index, where a face token like "5/2/3" contributes only its first
// sub-index. Every other line is ignored.
//
// A "v" or "f" line that does not carry exactly three parseable tokens,
// or a face index outside the vertex list, aborts the parse with a
// *MalformedLineError. I/O failures are returned wrapped, so a missing
// file surfaces as fs.ErrNotExist from ParseFile.
//
// The bounding box used for the metrics and for recentering is seeded
// from the first three vertices and then grown by every vertex a face
// references; vertices that appear later and are never referenced do
// not affect it.
func Parse(name string, r io.Reader) (*Mesh, error) {
	var (
		verts []Vec3
		tris  []Triangle
		refs  []int // face-referenced vertex indices, in encounter order
	)

	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			v, ok := parseVertex(fields[1:])
			if !ok {
				return nil, &MalformedLineError{Name: name, Line: lineNum, Text: line}
			}
			verts = append(verts, v)
		case "f":
			idx, ok := parseFace(fields[1:], len(verts))
			if !ok {
				return nil, &MalformedLineError{Name: name, Line: lineNum, Text: line}
			}
			tris = append(tris, Tri(verts[idx[0]], verts[idx[1]], verts[idx[2]]))
			refs = append(refs, idx[:]...)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mesh: read %s: %w", name, err)
	}
	if len(verts) == 0 {
		return nil, fmt.Errorf("mesh: %s: %w", name, ErrNoGeometry)
	}

	bb := EmptyBox3()
	for i := 0; i < len(verts) && i < 3; i++ {
		bb.ExpandByPoint(verts[i])
	}
	for _, ri := range refs {
		bb.ExpandByPoint(verts[ri])
	}

	m := &Mesh{
		Name:        name,
		Triangles:   tris,
		VertexCount: len(verts),
	}
	m.recenter(bb)
	return m, nil
}

// ParseFile opens path and parses it as a mesh description named name.
// A missing or unreadable file is reported as a wrapped I/O error,
// distinct from the malformed-line errors Parse produces.
func ParseFile(name, path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(name, f)
}

// parseVertex parses the three coordinate tokens of a "v" line.
func parseVertex(fields []string) (Vec3, bool) {
	if len(fields) != 3 {
		return Vec3{}, false
	}
	var c [3]float32
	for i, tok := range fields {
		f, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return Vec3{}, false
		}
		c[i] = float32(f)
	}
	return V3(c[0], c[1], c[2]), true
}

// parseFace parses the three face tokens of an "f" line into 0-based
// vertex indices, validated against the numVerts seen so far. Only the
// first slash-separated sub-index of each token is read.
func parseFace(fields []string, numVerts int) ([3]int, bool) {
	var idx [3]int
	if len(fields) != 3 {
		return idx, false
	}
	for i, tok := range fields {
		first, _, _ := strings.Cut(tok, "/")
		n, err := strconv.Atoi(first)
		if err != nil || n < 1 || n > numVerts {
			return idx, false
		}
		idx[i] = n - 1
	}
	return idx, true
}
