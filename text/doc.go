// Package text provides glyph sources for vecedit text primitives.
//
// Two implementations of vecedit.GlyphSource are available:
//
//   - SFNTSource: golang.org/x/image/font/sfnt, outlines at pixel size
//   - GoTextSource: github.com/go-text/typesetting, outlines read from the
//     glyf/CFF tables and scaled from font units
//
// Both register Go Regular as a fallback face, match vecedit.Font
// descriptions to registered faces by family and style, and keep a bounded
// cache of loaded outlines.
//
// # Example usage
//
//	src, err := text.NewSFNTSource()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	font := vecedit.Font{Family: "Go", Size: 24}
//	layout, err := vecedit.LayoutTextOnPath(path, "Hello", font, src)
//
// Outlines are returned one per rune, with the origin on the left baseline
// point and y pointing down. Text is not shaped: there is no kerning and no
// ligature substitution, so every rune stays an independently placed
// character.
package text
