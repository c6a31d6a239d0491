package vecedit

import (
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const epsilon = 1e-9

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats (and structs of floats) within 1e-6.
var approx = cmpopts.EquateApprox(0, 1e-6)

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

// boxGlyphs is a glyph source that returns a w x h box per rune, sitting
// on the baseline. Spaces have no outline.
func boxGlyphs(w, h float64) GlyphSource {
	return GlyphSourceFunc(func(font Font, s string) ([]Glyph, error) {
		var out []Glyph
		for _, r := range s {
			g := Glyph{Rune: r, Advance: w}
			if r != ' ' {
				g.Outline = NewPath()
				g.Outline.AddRect(0, -h, w, h)
			}
			out = append(out, g)
		}
		return out, nil
	})
}

// countingCanvas records which Canvas methods were called.
type countingCanvas struct {
	fills, strokes, clears, images int
}

func (c *countingCanvas) FillPath(*Path) { c.fills++ }
func (c *countingCanvas) StrokePath(*Path) { c.strokes++ }
func (c *countingCanvas) ClearRect(Rect) { c.clears++ }
func (c *countingCanvas) DrawImage(image.Image, Rect) { c.images++ }
