package vecedit

import (
	"fmt"
	"math"
	"slices"
	"unicode/utf8"
)

// Text is a run of glyph outlines set on a straight baseline and mapped
// through an affine transform.
//
// Control point 0 is the baseline origin; moving it moves the text. It is
// followed by one read-only anchor per character at the character's
// origin. Editing the characters themselves is done with SetText.
type Text struct {
	fillBase
	text   string
	font   Font
	xform  Matrix
	src    GlyphSource
	layout layoutCache
}

// NewText creates filled text with its baseline origin at (x, y).
func NewText(x, y float64, s string, font Font, src GlyphSource) *Text {
	t := &Text{text: s, font: font, xform: Translate(x, y), src: src}
	t.filled = true
	return t
}

// String returns the text.
func (t *Text) String() string { return t.text }

// Font returns the font.
func (t *Text) Font() Font { return t.font }

// Transform returns the matrix mapping text space (origin on the baseline,
// y down) into drawing space.
func (t *Text) Transform() Matrix { return t.xform }

// Origin returns the baseline origin in drawing space.
func (t *Text) Origin() Point { return t.xform.TransformPoint(Point{}) }

// SetText replaces the text.
func (t *Text) SetText(s string) { setField(&t.shapeBase, &t.text, s) }

// SetFont replaces the font.
func (t *Text) SetFont(f Font) { setField(&t.shapeBase, &t.font, f) }

// SetSource replaces the glyph source. It always counts as a change since
// sources cannot be compared.
func (t *Text) SetSource(src GlyphSource) {
	t.src = src
	t.layout.invalidate()
	t.changed()
}

// Layout returns the placed glyphs. The result is owned by the caller.
func (t *Text) Layout() (*TextLayout, error) {
	l, err := t.cachedLayout()
	if err != nil {
		return nil, err
	}
	return l.clone(), nil
}

func (t *Text) cachedLayout() (*TextLayout, error) {
	return t.layout.get(textKey(t.Geometry(), t.text, t.font), func() (*TextLayout, error) {
		return layoutStraight(t.text, t.font, t.src, t.xform)
	})
}

// Kind returns KindText.
func (t *Text) Kind() Kind { return KindText }

// Geometry returns the transform followed by the font size.
func (t *Text) Geometry() []float64 {
	m := t.xform
	return []float64{m.A, m.B, m.C, m.D, m.E, m.F, t.font.Size}
}

// ToShape returns the glyph outlines. A glyph source failure is logged and
// gives an empty outline; use Layout to see the error.
func (t *Text) ToShape() *Path {
	l, err := t.cachedLayout()
	if err != nil {
		Logger().Warn("vecedit: text outline unavailable", "text", t.text, "err", err)
		return NewPath()
	}
	return l.Shape.Clone()
}

// Paint fills or strokes the glyph outlines.
func (t *Text) Paint(c Canvas) { paintShape(c, t.ToShape(), t.filled) }

// Bounds returns the bounds of the outlines, or the origin alone when
// there is nothing to draw.
func (t *Text) Bounds() Rect {
	if b := t.ToShape().Bounds(); !b.IsEmpty() {
		return b
	}
	return boundsOfPoints(t.Origin())
}

// AddToBounds returns r extended by the bounds of the shape.
func (t *Text) AddToBounds(r Rect) Rect { return r.Union(t.Bounds()) }

// Translate moves the shape by (dx, dy).
func (t *Text) Translate(dx, dy float64) { _ = t.ApplyTransform(Translate(dx, dy)) }

// ApplyTransform accepts any affine transform.
func (t *Text) ApplyTransform(m Matrix) error {
	t.xform = t.xform.Then(m)
	t.changed()
	return nil
}

func (t *Text) charCount() int { return utf8.RuneCountInString(NormalizeText(t.text)) }

// ControlPointCount implements ControlPointEditable.
func (t *Text) ControlPointCount() int { return 1 + t.charCount() }

// ControlPoints appends the baseline origin, then one anchor per
// character.
func (t *Text) ControlPoints(dst []ControlPoint) []ControlPoint {
	dst = append(dst, ControlPoint{Index: 0, Point: t.Origin(), Kind: HandleBaseline})
	anchors := make([]Point, t.charCount())
	if l, err := t.cachedLayout(); err == nil {
		copy(anchors, l.Anchors)
	} else {
		for i := range anchors {
			anchors[i] = t.Origin()
		}
	}
	for i, pt := range anchors {
		dst = append(dst, ControlPoint{Index: 1 + i, Point: pt, Kind: HandleAnchor})
	}
	return dst
}

// ControlPointKinds implements ControlPointEditable.
func (t *Text) ControlPointKinds() []ControlPointKind {
	return append([]ControlPointKind{HandleBaseline}, repeatKind(HandleAnchor, t.charCount())...)
}

// SetControlPoint moves the baseline origin (index 0). Character anchors
// are read-only and return ErrReadOnlyControlPoint.
func (t *Text) SetControlPoint(i int, pt Point) error {
	if err := checkIndex("control point", i, t.ControlPointCount()); err != nil {
		return err
	}
	if i > 0 {
		return ErrReadOnlyControlPoint
	}
	d := pt.Sub(t.Origin())
	if d == (Point{}) {
		return nil
	}
	return t.ApplyTransform(Translate(d.X, d.Y))
}

// VirtualControlPoints returns the anchor indices; anchors are read-only.
func (t *Text) VirtualControlPoints() []int {
	idx := make([]int, t.charCount())
	for i := range idx {
		idx[i] = i + 1
	}
	return idx
}

// Snapshot captures text, font, source, transform and revision.
func (t *Text) Snapshot() Snapshot { return restorable(t, plain[Text]) }

// Copy returns an independent copy sharing the glyph source.
func (t *Text) Copy() Primitive {
	c := *t
	c.cache = shapeCache{}
	c.layout = layoutCache{}
	return &c
}

// CopyTransformed returns a transformed copy at revision+1, leaving the
// receiver untouched.
func (t *Text) CopyTransformed(m Matrix) (Primitive, error) { return copyTransformed(t, m) }

// Equal compares geometry, text and font. Glyph sources are not compared.
func (t *Text) Equal(other Primitive) bool {
	o, ok := other.(*Text)
	return ok && sameValues(t, other) && t.text == o.text && t.font == o.font
}

// layoutStraight sets text on the x axis of text space and maps it
// through m.
func layoutStraight(s string, font Font, src GlyphSource, m Matrix) (*TextLayout, error) {
	if src == nil {
		return nil, ErrNoGlyphSource
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

	_, rot, _, _ := m.Similarity()
	angle := NormalizeDegrees(rot * 180 / math.Pi)
	var pen float64
	for _, g := range glyphs {
		gm := Translate(pen, 0).Then(m)
		placed := NewPath()
		if g.Outline != nil {
			placed = g.Outline.Transformed(gm)
		}
		layout.Shape.Append(placed.Segments()...)
		layout.Glyphs = append(layout.Glyphs, placed)
		layout.Baseline = append(layout.Baseline, Pt(pen, 0))
		layout.Anchors = append(layout.Anchors, m.TransformPoint(Pt(pen, 0)))
		layout.Angles = append(layout.Angles, angle)
		pen += g.Advance
	}
	return layout, nil
}

// clone returns a deep copy of the layout.
func (l *TextLayout) clone() *TextLayout {
	c := *l
	c.Shape = l.Shape.Clone()
	c.Glyphs = make([]*Path, len(l.Glyphs))
	for i, g := range l.Glyphs {
		c.Glyphs[i] = g.Clone()
	}
	c.Baseline = slices.Clone(l.Baseline)
	c.Anchors = slices.Clone(l.Anchors)
	c.Angles = slices.Clone(l.Angles)
	return &c
}

// PathText lays text out along a path. The path is owned by the primitive;
// its control points come first and are editable. They are followed by one
// read-only baseline point and one read-only anchor per character.
type PathText struct {
	fillBase
	path     *Path
	text     string
	font     Font
	interval float64
	src      GlyphSource
	layout   layoutCache
}

// NewPathText creates filled text following a copy of path.
func NewPathText(path *Path, s string, font Font, src GlyphSource) *PathText {
	if path == nil {
		path = NewPath()
	}
	t := &PathText{path: path.Clone(), text: s, font: font, interval: DefaultSampleInterval, src: src}
	t.filled = true
	return t
}

// Path returns a copy of the path the text follows.
func (t *PathText) Path() *Path { return t.path.Clone() }

// SetPath replaces the path with a copy of p.
func (t *PathText) SetPath(p *Path) {
	if p == nil {
		p = NewPath()
	}
	if t.path.Equal(p) {
		return
	}
	t.path = p.Clone()
	t.changed()
}

// EditPath runs fn on the path and records a change if fn modified it.
func (t *PathText) EditPath(fn func(p *Path)) {
	before := t.path.Segments()
	fn(t.path)
	if !slices.Equal(before, t.path.Segments()) {
		t.changed()
	}
}

// String returns the text.
func (t *PathText) String() string { return t.text }

// Font returns the font.
func (t *PathText) Font() Font { return t.font }

// SetText replaces the text.
func (t *PathText) SetText(s string) { setField(&t.shapeBase, &t.text, s) }

// SetFont replaces the font.
func (t *PathText) SetFont(f Font) { setField(&t.shapeBase, &t.font, f) }

// SetSampleInterval sets the sampling interval used by the layout.
// Non-positive values select DefaultSampleInterval.
func (t *PathText) SetSampleInterval(d float64) {
	if d <= 0 {
		d = DefaultSampleInterval
	}
	setField(&t.shapeBase, &t.interval, d)
}

// SetSource replaces the glyph source.
func (t *PathText) SetSource(src GlyphSource) {
	t.src = src
	t.layout.invalidate()
	t.changed()
}

// Layout returns the text laid out along the path. The result is owned by
// the caller.
func (t *PathText) Layout() (*TextLayout, error) {
	l, err := t.cachedLayout()
	if err != nil {
		return nil, err
	}
	return l.clone(), nil
}

func (t *PathText) cachedLayout() (*TextLayout, error) {
	key := append(textKey(t.Geometry(), t.text, t.font), t.interval)
	return t.layout.get(key, func() (*TextLayout, error) {
		return LayoutTextOnPath(t.path, t.text, t.font, t.src, WithSampleInterval(t.interval))
	})
}

// Kind returns KindPathText.
func (t *PathText) Kind() Kind { return KindPathText }

// Geometry returns the path geometry (tags and coordinates) followed by
// the font size.
func (t *PathText) Geometry() []float64 {
	return append(pathGeometry(t.path), t.font.Size)
}

// ToShape returns the laid-out glyph outlines, or an empty path when the
// glyph source fails.
func (t *PathText) ToShape() *Path {
	l, err := t.cachedLayout()
	if err != nil {
		Logger().Warn("vecedit: path text outline unavailable", "text", t.text, "err", err)
		return NewPath()
	}
	return l.Shape.Clone()
}

// Paint implements Renderable.
func (t *PathText) Paint(c Canvas) { paintShape(c, t.ToShape(), t.filled) }

// Bounds returns the bounds of the placed glyphs, or of the path when
// there are none.
func (t *PathText) Bounds() Rect {
	if b := t.ToShape().Bounds(); !b.IsEmpty() {
		return b
	}
	return t.path.Bounds()
}

// AddToBounds implements Primitive.
func (t *PathText) AddToBounds(r Rect) Rect { return r.Union(t.Bounds()) }

// Translate implements Transformable.
func (t *PathText) Translate(dx, dy float64) { _ = t.ApplyTransform(Translate(dx, dy)) }

// ApplyTransform maps the path. Glyph size is unchanged; the glyphs follow
// the new path.
func (t *PathText) ApplyTransform(m Matrix) error {
	t.path.Transform(m)
	t.changed()
	return nil
}

func (t *PathText) charCount() int { return utf8.RuneCountInString(NormalizeText(t.text)) }

// ControlPointCount returns the number of handles.
func (t *PathText) ControlPointCount() int { return t.path.PointCount() + 2*t.charCount() }

// ControlPoints appends the path control points, then the baseline
// points and the anchors of every character.
func (t *PathText) ControlPoints(dst []ControlPoint) []ControlPoint {
	dst = appendPathControlPoints(dst, t.path, 0)
	base := t.path.PointCount()
	n := t.charCount()
	baseline := make([]Point, n)
	anchors := make([]Point, n)
	if l, err := t.cachedLayout(); err == nil {
		copy(baseline, l.Baseline)
		copy(anchors, l.Anchors)
	}
	for i, pt := range baseline {
		dst = append(dst, ControlPoint{Index: base + i, Point: pt, Kind: HandleBaseline})
	}
	for i, pt := range anchors {
		dst = append(dst, ControlPoint{Index: base + n + i, Point: pt, Kind: HandleAnchor})
	}
	return dst
}

// ControlPointKinds returns the path kinds followed by HandleBaseline and
// HandleAnchor kinds.
func (t *PathText) ControlPointKinds() []ControlPointKind {
	n := t.charCount()
	kinds := pathControlPointKinds(t.path)
	kinds = append(kinds, repeatKind(HandleBaseline, n)...)
	return append(kinds, repeatKind(HandleAnchor, n)...)
}

// SetControlPoint moves a path control point. Baseline and anchor points
// are read-only and return ErrReadOnlyControlPoint.
func (t *PathText) SetControlPoint(i int, pt Point) error {
	if err := checkIndex("control point", i, t.ControlPointCount()); err != nil {
		return err
	}
	if i >= t.path.PointCount() {
		return ErrReadOnlyControlPoint
	}
	changed, err := t.path.SetPointAt(i, pt)
	if err != nil {
		return err
	}
	if changed {
		t.changed()
	}
	return nil
}

// VirtualControlPoints returns the indices of the baseline points and
// anchors. Only the path control points are settable.
func (t *PathText) VirtualControlPoints() []int {
	base := t.path.PointCount()
	idx := make([]int, 2*t.charCount())
	for i := range idx {
		idx[i] = base + i
	}
	return idx
}

// Snapshot captures a clone of the path along with text and font.
func (t *PathText) Snapshot() Snapshot {
	return restorable(t, func(v PathText) PathText {
		v.path = v.path.Clone()
		return v
	})
}

// Copy returns a copy with its own path. The layout is recomputed on demand.
func (t *PathText) Copy() Primitive {
	c := *t
	c.path = t.path.Clone()
	c.cache = shapeCache{}
	c.layout = layoutCache{}
	return &c
}

// CopyTransformed implements Primitive.
func (t *PathText) CopyTransformed(m Matrix) (Primitive, error) { return copyTransformed(t, m) }

// Equal compares the path, text, font and sampling interval.
func (t *PathText) Equal(other Primitive) bool {
	o, ok := other.(*PathText)
	return ok && sameValues(t, other) && t.text == o.text && t.font == o.font && t.interval == o.interval
}
