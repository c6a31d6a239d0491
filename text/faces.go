package text

import (
	"strings"

	"github.com/gogpu/vecedit"
)

// faceKey identifies a registered face by family and style.
type faceKey struct {
	family       string
	bold, italic bool
}

func keyOf(family string, bold, italic bool) faceKey {
	return faceKey{family: strings.ToLower(strings.TrimSpace(family)), bold: bold, italic: italic}
}

// faceSet maps font descriptions to registered faces. Faces are numbered
// in registration order; the first one registered is the fallback.
type faceSet[F any] struct {
	faces []F
	index map[faceKey]int
}

func (s *faceSet[F]) add(key faceKey, f F) int {
	if s.index == nil {
		s.index = make(map[faceKey]int)
	}
	if i, ok := s.index[key]; ok {
		s.faces[i] = f
		return i
	}
	s.faces = append(s.faces, f)
	s.index[key] = len(s.faces) - 1
	return len(s.faces) - 1
}

// match returns the face for font: the exact style if registered, then the
// family's regular style, then the fallback face.
func (s *faceSet[F]) match(font vecedit.Font) (F, int, bool) {
	var zero F
	if len(s.faces) == 0 {
		return zero, -1, false
	}
	for _, k := range []faceKey{
		keyOf(font.Family, font.Bold, font.Italic),
		keyOf(font.Family, font.Bold, false),
		keyOf(font.Family, false, false),
	} {
		if i, ok := s.index[k]; ok {
			return s.faces[i], i, true
		}
	}
	return s.faces[0], 0, true
}

func sizeOf(font vecedit.Font) float64 {
	if font.Size > 0 {
		return font.Size
	}
	return DefaultSize
}

// outlineBuilder collects glyph segments into a path, closing every
// contour.
type outlineBuilder struct {
	p    *vecedit.Path
	open bool
}

func newOutlineBuilder() *outlineBuilder {
	return &outlineBuilder{p: vecedit.NewPath()}
}

func (b *outlineBuilder) moveTo(x, y float64) {
	if b.open {
		b.p.Close()
	}
	b.p.MoveTo(x, y)
	b.open = true
}

func (b *outlineBuilder) lineTo(x, y float64) { b.p.LineTo(x, y) }

func (b *outlineBuilder) quadTo(cx, cy, x, y float64) { b.p.QuadTo(cx, cy, x, y) }

func (b *outlineBuilder) cubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	b.p.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

func (b *outlineBuilder) path() *vecedit.Path {
	if b.open {
		b.p.Close()
		b.open = false
	}
	return b.p
}

// cloneGlyph copies the outline so cached glyphs are never shared.
func cloneGlyph(g vecedit.Glyph) vecedit.Glyph {
	if g.Outline != nil {
		g.Outline = g.Outline.Clone()
	}
	return g
}
