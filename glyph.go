package vecedit

// Font describes the face text is set in. How the description maps to font
// data is up to the GlyphSource.
type Font struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
}

// Glyph is the outline of one character.
type Glyph struct {
	Rune rune

	// Outline is positioned with its left baseline point at the origin,
	// in y-down coordinates (ascenders have negative y). It may be nil for
	// characters without ink, such as spaces.
	Outline *Path

	// Advance is the horizontal distance to the next glyph's origin.
	Advance float64
}

// GlyphSource supplies glyph outlines. Implementations must return exactly
// one Glyph per rune of s, in order.
type GlyphSource interface {
	Glyphs(font Font, s string) ([]Glyph, error)
}

// GlyphSourceFunc adapts a function to the GlyphSource interface.
type GlyphSourceFunc func(font Font, s string) ([]Glyph, error)

// Glyphs calls f(font, s).
func (f GlyphSourceFunc) Glyphs(font Font, s string) ([]Glyph, error) {
	return f(font, s)
}
