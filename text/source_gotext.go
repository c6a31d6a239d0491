package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/vecedit"
)

// GoTextSource is a vecedit.GlyphSource backed by go-text/typesetting.
// It reads outlines straight from the glyf and CFF tables, scaled from
// font units to the requested pixel size.
//
// GoTextSource is safe for concurrent use.
type GoTextSource struct {
	mu    sync.Mutex
	faces faceSet[*font.Face]
	cache *Cache[glyphKey, vecedit.Glyph]
}

// NewGoTextSource creates a source. Unless WithoutDefaultFace is given, Go
// Regular is registered as the fallback face.
func NewGoTextSource(opts ...Option) (*GoTextSource, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &GoTextSource{cache: NewCache[glyphKey, vecedit.Glyph](cfg.cacheLimit)}
	if !cfg.noDefault {
		if err := s.Register("Go", false, false, goregular.TTF); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Register parses TrueType or OpenType data and makes it available for the
// given family and style.
func (s *GoTextSource) Register(family string, bold, italic bool, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return &FontError{Family: family, Reason: "failed to parse font", Err: err}
	}

	s.mu.Lock()
	i := s.faces.add(keyOf(family, bold, italic), face)
	s.mu.Unlock()

	s.cache.Clear()
	vecedit.Logger().Debug("text: go-text face registered", "family", family, "bold", bold, "italic", italic, "index", i)
	return nil
}

// Glyphs implements vecedit.GlyphSource. Runes missing from the face's
// cmap get glyph 0 (.notdef).
func (s *GoTextSource) Glyphs(desc vecedit.Font, str string) ([]vecedit.Glyph, error) {
	s.mu.Lock()
	face, idx, ok := s.faces.match(desc)
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoFaces
	}
	size := sizeOf(desc)

	glyphs := make([]vecedit.Glyph, 0, len(str))
	for _, r := range str {
		g, err := s.cache.GetOrLoad(glyphKey{face: idx, r: r, size: size}, func() (vecedit.Glyph, error) {
			return s.load(face, r, size), nil
		})
		if err != nil {
			return nil, err
		}
		glyphs = append(glyphs, cloneGlyph(g))
	}
	return glyphs, nil
}

func (s *GoTextSource) load(face *font.Face, r rune, size float64) vecedit.Glyph {
	// Faces cache variation state and are not safe for concurrent use.
	s.mu.Lock()
	defer s.mu.Unlock()

	gid, ok := face.Cmap.Lookup(r)
	if !ok {
		vecedit.Logger().Debug("text: rune not in cmap", "rune", string(r))
		gid = 0
	}
	scale := size / float64(face.Upem())
	g := vecedit.Glyph{Rune: r, Advance: scale * float64(face.HorizontalAdvance(gid))}

	outline, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return g
	}

	// Font units are y-up; flip to y-down.
	pt := func(p opentype.SegmentPoint) (float64, float64) {
		return scale * float64(p.X), -scale * float64(p.Y)
	}
	b := newOutlineBuilder()
	for _, seg := range outline.Segments {
		x0, y0 := pt(seg.Args[0])
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			b.moveTo(x0, y0)
		case opentype.SegmentOpLineTo:
			b.lineTo(x0, y0)
		case opentype.SegmentOpQuadTo:
			x1, y1 := pt(seg.Args[1])
			b.quadTo(x0, y0, x1, y1)
		case opentype.SegmentOpCubeTo:
			x1, y1 := pt(seg.Args[1])
			x2, y2 := pt(seg.Args[2])
			b.cubicTo(x0, y0, x1, y1, x2, y2)
		}
	}
	g.Outline = b.path()
	return g
}
