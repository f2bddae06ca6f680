package mesh

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

// square is a 2x1 quad in the XY plane, offset from the origin so the
// recentering step has work to do. Two of the four vertices are listed
// twice to make the vertex count distinct from the referenced set.
const square = `# glyph test shape
o square
v 1 1 0
v 3 1 0
v 3 2 0
v 1 2 0
v 1 1 0
v 3 2 0
f 1/1/1 2/2/2 3/3/3
f 1 3 4
`

func TestParse_SquareMetrics(t *testing.T) {
	m, err := Parse("square", strings.NewReader(square))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := m.TriangleCount(); got != 2 {
		t.Errorf("triangle count = %d, want 2", got)
	}
	if m.VertexCount != 6 {
		t.Errorf("VertexCount = %d, want 6 (one per v line, no dedup)", m.VertexCount)
	}
	if m.Width != 2 {
		t.Errorf("Width = %g, want 2", m.Width)
	}
	if m.Height != 1 {
		t.Errorf("Height = %g, want 1", m.Height)
	}
	if m.Name != "square" {
		t.Errorf("Name = %q, want %q", m.Name, "square")
	}
}

func TestParse_CenteredAtOrigin(t *testing.T) {
	m, err := Parse("square", strings.NewReader(square))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	center := m.Bounds().Center()
	if !center.Approx(Vec3{}, 1e-5) {
		t.Errorf("bounding box center = %+v, want origin", center)
	}
	if m.Width < 0 || m.Height < 0 {
		t.Errorf("negative metrics: width %g height %g", m.Width, m.Height)
	}
}

func TestParse_FirstSubIndexOnly(t *testing.T) {
	// Face tokens carry texture/normal sub-indices pointing nowhere;
	// only the leading vertex index may be read.
	desc := `v 0 0 0
v 1 0 0
v 0 1 0
f 1/99/99 2//7 3/8
`
	m, err := Parse("t", strings.NewReader(desc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := m.TriangleCount(); got != 1 {
		t.Fatalf("triangle count = %d, want 1", got)
	}
}

func TestParse_IgnoresUnknownLines(t *testing.T) {
	desc := `# comment
mtllib ignored.mtl
vt 0.5 0.5
vn 0 0 1
v 0 0 0
v 1 0 0
v 0 1 0
s off
f 1 2 3
`
	m, err := Parse("t", strings.NewReader(desc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.VertexCount != 3 {
		t.Errorf("VertexCount = %d, want 3", m.VertexCount)
	}
}

func TestParse_MalformedLines(t *testing.T) {
	tests := []struct {
		name string
		desc string
		line int
	}{
		{"vertex too few tokens", "v 0 0\n", 1},
		{"vertex non-numeric", "v 0 zero 0\n", 1},
		{"face too many tokens", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3 1\n", 4},
		{"face non-numeric", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 x\n", 4},
		{"face index zero", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", 4},
		{"face index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad", strings.NewReader(tt.desc))
			if err == nil {
				t.Fatal("Parse succeeded, want malformed error")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("error %v does not wrap ErrMalformed", err)
			}
			var mle *MalformedLineError
			if !errors.As(err, &mle) {
				t.Fatalf("error %v is not a *MalformedLineError", err)
			}
			if mle.Line != tt.line {
				t.Errorf("reported line %d, want %d", mle.Line, tt.line)
			}
			if mle.Name != "bad" {
				t.Errorf("reported name %q, want %q", mle.Name, "bad")
			}
		})
	}
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse("empty", strings.NewReader("# nothing\n"))
	if !errors.Is(err, ErrNoGeometry) {
		t.Fatalf("error = %v, want ErrNoGeometry", err)
	}
}

// TestParse_BoxSeededFromFirstVertices pins down the bounding-box
// behavior: the box starts from the first three vertices and grows only
// with face-referenced ones, so a later unreferenced extreme vertex is
// invisible to the metrics while an early one is not.
func TestParse_BoxSeededFromFirstVertices(t *testing.T) {
	lateExtreme := `v 0 0 0
v 1 0 0
v 0 1 0
v 50 50 0
f 1 2 3
`
	m, err := Parse("late", strings.NewReader(lateExtreme))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Width != 1 || m.Height != 1 {
		t.Errorf("late extreme vertex leaked into metrics: %gx%g, want 1x1", m.Width, m.Height)
	}

	earlyExtreme := `v 50 50 0
v 1 0 0
v 0 1 0
v 0 0 0
f 2 3 4
`
	m, err = Parse("early", strings.NewReader(earlyExtreme))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Width != 50 || m.Height != 50 {
		t.Errorf("early unreferenced vertex ignored: %gx%g, want 50x50", m.Width, m.Height)
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile("x", "testdata/does-not-exist.obj")
	if err == nil {
		t.Fatal("ParseFile succeeded on missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap fs.ErrNotExist", err)
	}
	if errors.Is(err, ErrMalformed) {
		t.Errorf("I/O error %v must stay distinct from malformed-input errors", err)
	}
}

func BenchmarkParse(b *testing.B) {
	for b.Loop() {
		if _, err := Parse("square", strings.NewReader(square)); err != nil {
			b.Fatal(err)
		}
	}
}
