package vecedit

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DefaultMinStep is the smallest distance the text-on-path walker asks the
// sampler to advance.
const DefaultMinStep = 1e-3

// LayoutOption configures LayoutTextOnPath.
type LayoutOption func(*layoutOptions)

type layoutOptions struct {
	interval float64
	minStep  float64
}

func defaultLayoutOptions() layoutOptions {
	return layoutOptions{
		interval: DefaultSampleInterval,
		minStep:  DefaultMinStep,
	}
}

// WithSampleInterval sets the longest step the sampler takes between
// direction samples. Glyph positions do not depend on it.
// Non-positive values are ignored.
func WithSampleInterval(d float64) LayoutOption {
	return func(o *layoutOptions) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithMinStep sets the smallest advance between glyph samples.
// Non-positive values are ignored.
func WithMinStep(d float64) LayoutOption {
	return func(o *layoutOptions) {
		if d > 0 {
			o.minStep = d
		}
	}
}

// TextLayout is the result of laying text out along a path.
type TextLayout struct {
	// Shape is the union of all placed glyph outlines.
	Shape *Path

	// Glyphs holds the placed outline of each character.
	Glyphs []*Path

	// Baseline holds each character's pen position before placement,
	// relative to the start of the text.
	Baseline []Point

	// Anchors holds the point each character's origin was placed at.
	Anchors []Point

	// Angles holds each character's rotation in degrees, [0, 360).
	Angles []float64

	// Scale is the factor applied to every glyph so the text fits the
	// path; 1 when the path is long enough.
	Scale float64

	// Extrapolated counts the characters placed beyond the end of the path.
	Extrapolated int
}

// NormalizeText prepares a string for layout: trailing white space is
// removed and the result is put in Unicode normalization form C. Every rune
// of the result is laid out as one character.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimRightFunc(s, unicode.IsSpace))
}

// LayoutTextOnPath places the characters of s one after another along
// path, each rotated to follow the local direction of the path.
//
// Text longer than the path is shrunk uniformly to fit; text is never
// stretched. Characters that still do not fit (for example on a path of
// zero length) continue along an arc extrapolated from the end of the
// path, so every character is always placed. The only errors come from
// the glyph source.
func LayoutTextOnPath(path *Path, s string, font Font, src GlyphSource, opts ...LayoutOption) (*TextLayout, error) {
	if src == nil {
		return nil, ErrNoGlyphSource
	}
	o := defaultLayoutOptions()
	for _, opt := range opts {
		opt(&o)
	}

	text := NormalizeText(s)
	layout := &TextLayout{Shape: NewPath(), Scale: 1}
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return layout, nil
	}

	glyphs, err := src.Glyphs(font, text)
	if err != nil {
		return nil, fmt.Errorf("vecedit: layout text: %w", err)
	}
	if len(glyphs) != n {
		return nil, fmt.Errorf("%w: %d glyphs for %d characters", ErrGlyphCount, len(glyphs), n)
	}

	sampler := NewSampler(path, o.interval)
	var width float64
	for _, g := range glyphs {
		width += g.Advance
	}
	if l := sampler.Length(); width > l && l > 0 {
		layout.Scale = l / width
		Logger().Debug("vecedit: text shrunk to fit path", "width", width, "length", l, "scale", layout.Scale)
	}

	w := glyphWalker{s: sampler, minStep: o.minStep}
	var pen float64
	for _, g := range glyphs {
		adv := g.Advance * layout.Scale
		left, angle, beyond := w.place(adv)

		m := Scale(layout.Scale, layout.Scale).Then(RotateDegrees(angle)).Then(Translate(left.X, left.Y))
		placed := NewPath()
		if g.Outline != nil {
			placed = g.Outline.Transformed(m)
		}
		layout.Shape.Append(placed.Segments()...)

		layout.Glyphs = append(layout.Glyphs, placed)
		layout.Baseline = append(layout.Baseline, Pt(pen, 0))
		layout.Anchors = append(layout.Anchors, left)
		layout.Angles = append(layout.Angles, angle)
		if beyond {
			layout.Extrapolated++
		}
		pen += adv
	}
	if layout.Extrapolated > 0 {
		Logger().Debug("vecedit: text extrapolated past path end", "chars", layout.Extrapolated, "total", n)
	}
	return layout, nil
}

// glyphWalker drives the sampler through three phases per glyph, taking the
// direction of travel at the glyph's left edge, center and right edge.
type glyphWalker struct {
	s       *Sampler
	minStep float64

	// start is the sampler distance at the current glyph's left edge.
	start  float64
	phase  int
	angles [3]float64
	left   Point
}

// place walks over a glyph of advance adv and returns where its origin
// goes, its rotation (the circular mean of the three sampled directions)
// and whether it ended beyond the path.
func (w *glyphWalker) place(adv float64) (left Point, angle float64, beyond bool) {
	targets := [3]float64{0, adv / 2, adv}
	for w.phase = 0; w.phase < len(targets); w.phase++ {
		if w.phase > 0 {
			covered := w.s.Current().Distance - w.start
			w.s.Advance(max(w.minStep, targets[w.phase]-covered))
		}
		cur := w.s.Current()
		if w.phase == 0 {
			w.left = cur.Pos
		}
		w.angles[w.phase] = cur.Angle
	}
	w.start += adv
	return w.left, CircularMean(w.angles[:]...), w.s.Extrapolating()
}
