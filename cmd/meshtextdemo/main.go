// Command meshtextdemo ingests a directory of glyph mesh descriptions,
// lays out a line of text, and prints the resulting placements.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hack-pad/hackpadfs/mem"
	hackos "github.com/hack-pad/hackpadfs/os"

	"github.com/gogpu/meshtext"
	"github.com/gogpu/meshtext/palette"
	"github.com/gogpu/meshtext/store"
)

func main() {
	var (
		glyphDir  = flag.String("glyphs", "glyphs", "directory of mesh description files (<name>.obj)")
		storeDir  = flag.String("store", "", "directory for the glyph store (in-memory when empty)")
		text      = flag.String("text", "hello world", "text to lay out")
		scale     = flag.Float64("scale", float64(meshtext.DefaultScale), "glyph scale")
		spacing   = flag.Float64("spacing", 0, "spacing adjustment")
		width     = flag.Float64("width", float64(meshtext.DefaultLayoutWidth), "layout width")
		animate   = flag.Bool("animate", false, "attach entry animations")
		colorName = flag.String("color", "", "color name to resolve for recoloring")
	)
	flag.Parse()

	st, err := openStore(*storeDir)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	cached := store.NewCached(st, 0)

	n, err := ingestDir(cached, *glyphDir)
	if err != nil {
		log.Fatalf("ingest %s: %v", *glyphDir, err)
	}
	log.Printf("ingested %d new glyphs from %s", n, *glyphDir)

	eng := meshtext.New(cached, meshtext.WithLayoutWidth(float32(*width)))
	ts, err := eng.Layout(*text, meshtext.LayoutOptions{
		Scale:             float32(*scale),
		SpacingAdjustment: float32(*spacing),
		Animate:           *animate,
	})
	if err != nil {
		log.Fatalf("layout: %v", err)
	}

	fmt.Printf("%q -> %d glyphs\n", *text, ts.Len())
	for i, g := range ts.Glyphs() {
		fmt.Printf("  [%2d] %q id=%-4d line=%d pos=(%+.3f, %+.3f, %+.3f)\n",
			i, g.Char, g.ID, g.Line, g.Pos.X, g.Pos.Y, g.Pos.Z)
	}

	verts, err := eng.TotalVertexCount(*text)
	if err != nil {
		log.Fatalf("vertex count: %v", err)
	}
	fmt.Printf("total vertices: %d\n", verts)

	if *colorName != "" {
		c := palette.New().Color(*colorName)
		if c == (color.RGBA{}) {
			fmt.Printf("color %q: unknown, no change\n", *colorName)
		} else {
			fmt.Printf("color %q: %v\n", *colorName, palette.Vec4(c))
		}
	}

	stats := cached.Stats()
	log.Printf("store cache: %d hits, %d misses", stats.Hits, stats.Misses)
}

// openStore returns a DirStore over dir, or over an in-memory
// filesystem when dir is empty.
func openStore(dir string) (store.GlyphStore, error) {
	if dir == "" {
		fsys, err := mem.NewFS()
		if err != nil {
			return nil, err
		}
		return store.NewDirStore(fsys), nil
	}
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	osfs := hackos.NewFS()
	sub, err := osfs.FromOSPath(abs)
	if err != nil {
		return nil, err
	}
	fsys, err := osfs.Sub(sub)
	if err != nil {
		return nil, err
	}
	return store.NewDirStore(fsys), nil
}

// ingestDir inserts every .obj file of dir into st under its base name,
// skipping names the store already has. Malformed files are reported
// and skipped without affecting the rest.
func ingestDir(st store.GlyphStore, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, ent := range entries {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), ".obj") {
			continue
		}
		name := strings.TrimSuffix(ent.Name(), ".obj")
		added, err := store.Ingest(st, name, filepath.Join(dir, ent.Name()))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Printf("skip %s: file vanished", ent.Name())
			} else {
				log.Printf("skip %s: %v", ent.Name(), err)
			}
			continue
		}
		if added {
			count++
		}
	}
	return count, nil
}
