package text

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/vecedit"
)

// SFNTSource is a vecedit.GlyphSource backed by golang.org/x/image/font/sfnt.
// Outlines are unhinted and sized in pixels per em.
//
// SFNTSource is safe for concurrent use.
type SFNTSource struct {
	mu    sync.Mutex
	buf   sfnt.Buffer
	faces faceSet[*sfnt.Font]
	cache *Cache[glyphKey, vecedit.Glyph]
}

// NewSFNTSource creates a source. Unless WithoutDefaultFace is given, Go
// Regular is registered as the fallback face.
func NewSFNTSource(opts ...Option) (*SFNTSource, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &SFNTSource{cache: NewCache[glyphKey, vecedit.Glyph](cfg.cacheLimit)}
	if !cfg.noDefault {
		if err := s.Register("Go", false, false, goregular.TTF); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Register parses TrueType or OpenType data and makes it available for the
// given family and style. Registering the same family and style again
// replaces the face.
func (s *SFNTSource) Register(family string, bold, italic bool, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return &FontError{Family: family, Reason: "failed to parse font", Err: err}
	}

	s.mu.Lock()
	i := s.faces.add(keyOf(family, bold, italic), f)
	s.mu.Unlock()

	// Outlines cached for a replaced face are stale.
	s.cache.Clear()
	vecedit.Logger().Debug("text: sfnt face registered", "family", family, "bold", bold, "italic", italic, "index", i)
	return nil
}

// Glyphs implements vecedit.GlyphSource. Runes missing from the face get
// the face's .notdef glyph.
func (s *SFNTSource) Glyphs(desc vecedit.Font, str string) ([]vecedit.Glyph, error) {
	s.mu.Lock()
	f, idx, ok := s.faces.match(desc)
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoFaces
	}
	size := sizeOf(desc)

	glyphs := make([]vecedit.Glyph, 0, len(str))
	for _, r := range str {
		g, err := s.cache.GetOrLoad(glyphKey{face: idx, r: r, size: size}, func() (vecedit.Glyph, error) {
			return s.load(f, r, size)
		})
		if err != nil {
			return nil, err
		}
		glyphs = append(glyphs, cloneGlyph(g))
	}
	return glyphs, nil
}

func (s *SFNTSource) load(f *sfnt.Font, r rune, size float64) (vecedit.Glyph, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ppem := fixed.Int26_6(size * 64)
	gid, err := f.GlyphIndex(&s.buf, r)
	if err != nil {
		return vecedit.Glyph{}, fmt.Errorf("text: glyph index for %q: %w", r, err)
	}

	adv, err := f.GlyphAdvance(&s.buf, gid, ppem, font.HintingNone)
	if err != nil {
		return vecedit.Glyph{}, fmt.Errorf("text: glyph advance for %q: %w", r, err)
	}
	g := vecedit.Glyph{Rune: r, Advance: fixedToFloat64(adv)}

	segments, err := f.LoadGlyph(&s.buf, gid, ppem, nil)
	switch {
	case errors.Is(err, sfnt.ErrColoredGlyph):
		// Color glyphs have no outline; keep the advance.
		vecedit.Logger().Debug("text: colored glyph has no outline", "rune", string(r))
		return g, nil
	case err != nil:
		return vecedit.Glyph{}, fmt.Errorf("text: load glyph %q: %w", r, err)
	}
	if len(segments) == 0 {
		return g, nil
	}

	// sfnt segments are already y-down with the origin on the baseline.
	b := newOutlineBuilder()
	for _, seg := range segments {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			b.moveTo(fixedToFloat64(a[0].X), fixedToFloat64(a[0].Y))
		case sfnt.SegmentOpLineTo:
			b.lineTo(fixedToFloat64(a[0].X), fixedToFloat64(a[0].Y))
		case sfnt.SegmentOpQuadTo:
			b.quadTo(fixedToFloat64(a[0].X), fixedToFloat64(a[0].Y),
				fixedToFloat64(a[1].X), fixedToFloat64(a[1].Y))
		case sfnt.SegmentOpCubeTo:
			b.cubicTo(fixedToFloat64(a[0].X), fixedToFloat64(a[0].Y),
				fixedToFloat64(a[1].X), fixedToFloat64(a[1].Y),
				fixedToFloat64(a[2].X), fixedToFloat64(a[2].Y))
		}
	}
	g.Outline = b.path()
	return g, nil
}

func fixedToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
