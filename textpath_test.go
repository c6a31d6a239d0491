package vecedit

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func straightPath(length float64) *Path {
	return PathOf(MoveSeg(0, 0), LineSeg(length, 0))
}

// evenAnchors returns n points spaced step apart along the x axis.
func evenAnchors(n int, step float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Pt(float64(i)*step, 0)
	}
	return pts
}

func TestLayoutTextOnPath(t *testing.T) {
	tests := []struct {
		name        string
		path        *Path
		text        string
		wantAnchors []Point
		wantScale   float64
		wantAngle   float64
	}{
		{
			name:        "fits",
			path:        straightPath(100),
			text:        "abc",
			wantAnchors: []Point{Pt(0, 0), Pt(10, 0), Pt(20, 0)},
			wantScale:   1,
		},
		{
			name:        "shrinks to fit",
			path:        straightPath(10),
			text:        "abcd",
			wantAnchors: []Point{Pt(0, 0), Pt(2.5, 0), Pt(5, 0), Pt(7.5, 0)},
			wantScale:   0.25,
		},
		{
			name:        "advance off the sample grid",
			path:        straightPath(10),
			text:        "abcdefg",
			wantAnchors: evenAnchors(7, 10.0/7),
			wantScale:   1.0 / 7,
		},
		{
			name:        "shrinks below the sample interval",
			path:        straightPath(10),
			text:        strings.Repeat("a", 40),
			wantAnchors: evenAnchors(40, 0.25),
			wantScale:   0.025,
		},
		{
			name:        "shrinks far below the sample interval",
			path:        straightPath(10),
			text:        strings.Repeat("a", 100),
			wantAnchors: evenAnchors(100, 0.1),
			wantScale:   0.01,
		},
		{
			name:        "vertical",
			path:        PathOf(MoveSeg(0, 0), LineSeg(0, 100)),
			text:        "ab",
			wantAnchors: []Point{Pt(0, 0), Pt(0, 10)},
			wantScale:   1,
			wantAngle:   90,
		},
		{
			name:        "trailing space dropped",
			path:        straightPath(100),
			text:        "a b \t\n",
			wantAnchors: []Point{Pt(0, 0), Pt(10, 0), Pt(20, 0)},
			wantScale:   1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := LayoutTextOnPath(tt.path, tt.text, Font{Size: 10}, boxGlyphs(10, 10))
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(l.Scale-tt.wantScale) > epsilon {
				t.Errorf("Scale = %v, want %v", l.Scale, tt.wantScale)
			}
			diff(t, tt.wantAnchors, l.Anchors, approx)
			if len(l.Glyphs) != len(tt.wantAnchors) || len(l.Angles) != len(tt.wantAnchors) || len(l.Baseline) != len(tt.wantAnchors) {
				t.Fatalf("got %d glyphs, %d angles, %d baseline points", len(l.Glyphs), len(l.Angles), len(l.Baseline))
			}
			for i, a := range l.Angles {
				if math.Abs(angleDelta(a, tt.wantAngle)) > 1e-6 {
					t.Errorf("Angles[%d] = %v, want %v", i, a, tt.wantAngle)
				}
			}
			if l.Extrapolated != 0 {
				t.Errorf("Extrapolated = %d, want every character on the path", l.Extrapolated)
			}
		})
	}
}

func TestLayoutGlyphPlacement(t *testing.T) {
	l, err := LayoutTextOnPath(straightPath(100), "ab", Font{}, boxGlyphs(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	b := l.Shape.Bounds()
	if !pointsEqual(b.Min, Pt(0, -10), 1e-9) || !pointsEqual(b.Max, Pt(20, 0), 1e-9) {
		t.Errorf("Shape bounds = %+v", b)
	}
	diff(t, []Point{Pt(0, 0), Pt(10, 0)}, l.Baseline, approx)

	// A glyph on a downward path is turned a quarter clockwise on screen.
	down, err := LayoutTextOnPath(PathOf(MoveSeg(0, 0), LineSeg(0, 100)), "a", Font{}, boxGlyphs(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	b = down.Glyphs[0].Bounds()
	if !pointsEqual(b.Min, Pt(0, 0), 1e-9) || !pointsEqual(b.Max, Pt(10, 10), 1e-9) {
		t.Errorf("rotated glyph bounds = %+v", b)
	}
}

func TestLayoutZeroLengthPath(t *testing.T) {
	l, err := LayoutTextOnPath(PathOf(MoveSeg(5, 5)), "abc", Font{}, boxGlyphs(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	if l.Scale != 1 {
		t.Errorf("Scale = %v, want 1", l.Scale)
	}
	if l.Extrapolated != 3 {
		t.Errorf("Extrapolated = %d, want 3", l.Extrapolated)
	}
	diff(t, []Point{Pt(5, 5), Pt(15, 5), Pt(25, 5)}, l.Anchors, approx)
}

func TestLayoutExtrapolatesPastEnd(t *testing.T) {
	// The minimum step carries the walker past the end of a nearly empty
	// path. Every character is still placed.
	p := PathOf(MoveSeg(0, 0), LineSeg(1e-6, 0))
	l, err := LayoutTextOnPath(p, "abcdef", Font{}, boxGlyphs(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Anchors) != 6 {
		t.Fatalf("placed %d characters, want 6", len(l.Anchors))
	}
	if l.Extrapolated == 0 {
		t.Error("no character was extrapolated")
	}
}

func TestLayoutEmptyText(t *testing.T) {
	for _, s := range []string{"", "   ", "\n\t"} {
		l, err := LayoutTextOnPath(straightPath(10), s, Font{}, boxGlyphs(1, 1))
		if err != nil {
			t.Fatalf("LayoutTextOnPath(%q): %v", s, err)
		}
		if l.Scale != 1 || !l.Shape.IsEmpty() || len(l.Glyphs) != 0 || len(l.Anchors) != 0 {
			t.Errorf("LayoutTextOnPath(%q) = %+v, want an empty layout", s, l)
		}
	}
}

func TestLayoutErrors(t *testing.T) {
	if _, err := LayoutTextOnPath(straightPath(10), "a", Font{}, nil); !errors.Is(err, ErrNoGlyphSource) {
		t.Errorf("nil source error = %v", err)
	}

	errFont := errors.New("font missing")
	failing := GlyphSourceFunc(func(Font, string) ([]Glyph, error) { return nil, errFont })
	if _, err := LayoutTextOnPath(straightPath(10), "a", Font{}, failing); !errors.Is(err, errFont) {
		t.Errorf("source error = %v, want it wrapped", err)
	}

	short := GlyphSourceFunc(func(Font, string) ([]Glyph, error) { return []Glyph{{Advance: 1}}, nil })
	if _, err := LayoutTextOnPath(straightPath(10), "ab", Font{}, short); !errors.Is(err, ErrGlyphCount) {
		t.Errorf("glyph count error = %v", err)
	}
}

func TestLayoutOptions(t *testing.T) {
	coarse, err := LayoutTextOnPath(straightPath(100), "ab", Font{}, boxGlyphs(10, 10), WithSampleInterval(5), WithMinStep(-1))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(0, 0), Pt(10, 0)}, coarse.Anchors, approx)

	o := defaultLayoutOptions()
	WithSampleInterval(0)(&o)
	WithMinStep(0)(&o)
	if o != defaultLayoutOptions() {
		t.Errorf("non-positive options changed the defaults: %+v", o)
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct{ in, want string }{
		{"e\u0301  ", "\u00e9"},
		{"abc", "abc"},
		{"  lead", "  lead"},
		{"tail\t\n", "tail"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeText(tt.in); got != tt.want {
			t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTextControlPoints(t *testing.T) {
	txt := NewText(10, 20, "ab", Font{Size: 10}, boxGlyphs(10, 10))
	want := []ControlPoint{
		{Index: 0, Point: Pt(10, 20), Kind: HandleBaseline},
		{Index: 1, Point: Pt(10, 20), Kind: HandleAnchor},
		{Index: 2, Point: Pt(20, 20), Kind: HandleAnchor},
	}
	diff(t, want, txt.ControlPoints(nil), approx)
	diff(t, []int{1, 2}, txt.VirtualControlPoints())

	rev := txt.Revision()
	if err := txt.SetControlPoint(1, Pt(0, 0)); !errors.Is(err, ErrReadOnlyControlPoint) {
		t.Errorf("setting an anchor error = %v", err)
	}
	if txt.Revision() != rev {
		t.Error("rejected anchor edit bumped the revision")
	}

	if err := txt.SetControlPoint(0, Pt(0, 0)); err != nil {
		t.Fatal(err)
	}
	if txt.Origin() != Pt(0, 0) {
		t.Errorf("Origin() = %v", txt.Origin())
	}
	l, err := txt.Layout()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(0, 0), Pt(10, 0)}, l.Anchors, approx)
}

func TestTextTransform(t *testing.T) {
	txt := NewText(0, 0, "a", Font{}, boxGlyphs(10, 10))
	if err := txt.ApplyTransform(RotateDegrees(90)); err != nil {
		t.Fatal(err)
	}
	l, err := txt.Layout()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(l.Angles[0]-90) > 1e-9 {
		t.Errorf("Angles[0] = %v, want 90", l.Angles[0])
	}
	b := txt.Bounds()
	if !pointsEqual(b.Min, Pt(0, 0), 1e-9) || !pointsEqual(b.Max, Pt(10, 10), 1e-9) {
		t.Errorf("Bounds() = %+v", b)
	}

	// Shear is fine for text; the outline follows the matrix.
	if err := txt.ApplyTransform(Shear(0.5, 0)); err != nil {
		t.Errorf("ApplyTransform(shear) = %v", err)
	}
}

func TestTextWithoutSource(t *testing.T) {
	txt := NewText(3, 4, "ab", Font{}, nil)
	if _, err := txt.Layout(); !errors.Is(err, ErrNoGlyphSource) {
		t.Errorf("Layout() error = %v", err)
	}
	if !txt.ToShape().IsEmpty() {
		t.Error("ToShape() not empty without a source")
	}
	if b := txt.Bounds(); b.Min != Pt(3, 4) || b.Max != Pt(3, 4) {
		t.Errorf("Bounds() = %+v, want the origin", b)
	}
	for _, cp := range txt.ControlPoints(nil) {
		if cp.Point != Pt(3, 4) {
			t.Errorf("control point %d at %v, want the origin", cp.Index, cp.Point)
		}
	}

	txt.SetSource(boxGlyphs(1, 1))
	if _, err := txt.Layout(); err != nil {
		t.Errorf("Layout() after SetSource: %v", err)
	}
}

func TestTextLayoutCache(t *testing.T) {
	calls := 0
	errBroken := errors.New("broken")
	src := GlyphSourceFunc(func(f Font, s string) ([]Glyph, error) {
		calls++
		if s == "bad" {
			return nil, errBroken
		}
		return boxGlyphs(1, 1).Glyphs(f, s)
	})
	txt := NewText(0, 0, "bad", Font{}, src)

	for range 3 {
		if _, err := txt.Layout(); !errors.Is(err, errBroken) {
			t.Fatalf("Layout() error = %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("failing source asked %d times, want 1", calls)
	}

	txt.SetText("ok")
	l1, err := txt.Layout()
	if err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("source asked %d times after SetText, want 2", calls)
	}

	// The returned layout is a copy.
	l1.Anchors[0] = Pt(999, 999)
	l1.Shape.LineTo(999, 999)
	l2, _ := txt.Layout()
	if l2.Anchors[0] == Pt(999, 999) || l2.Shape.Equal(l1.Shape) {
		t.Error("Layout() exposes the cached layout")
	}
	if calls != 2 {
		t.Errorf("source asked %d times for an unchanged text, want 2", calls)
	}
}

func TestPathTextControlPoints(t *testing.T) {
	pt := NewPathText(straightPath(100), "ab", Font{Size: 10}, boxGlyphs(10, 10))
	if n := pt.ControlPointCount(); n != 6 {
		t.Fatalf("ControlPointCount() = %d, want 6", n)
	}
	diff(t, []ControlPointKind{HandlePoint, HandlePoint, HandleBaseline, HandleBaseline, HandleAnchor, HandleAnchor}, pt.ControlPointKinds())
	diff(t, []int{2, 3, 4, 5}, pt.VirtualControlPoints())

	want := []Point{Pt(0, 0), Pt(100, 0), Pt(0, 0), Pt(10, 0), Pt(0, 0), Pt(10, 0)}
	diff(t, want, pointsOf(pt.ControlPoints(nil)), approx)

	for _, i := range pt.VirtualControlPoints() {
		if err := pt.SetControlPoint(i, Pt(1, 1)); !errors.Is(err, ErrReadOnlyControlPoint) {
			t.Errorf("SetControlPoint(%d) error = %v", i, err)
		}
	}

	// Moving the path end turns the text.
	rev := pt.Revision()
	if err := pt.SetControlPoint(1, Pt(0, 100)); err != nil {
		t.Fatal(err)
	}
	if pt.Revision() != rev+1 {
		t.Errorf("Revision() = %d, want %d", pt.Revision(), rev+1)
	}
	l, err := pt.Layout()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(0, 0), Pt(0, 10)}, l.Anchors, approx)
}

func TestPathTextTransformKeepsGlyphSize(t *testing.T) {
	pt := NewPathText(straightPath(100), "ab", Font{}, boxGlyphs(10, 10))
	if err := pt.ApplyTransform(Scale(2, 2)); err != nil {
		t.Fatal(err)
	}
	if got := pt.Path().Length(0); got != 200 {
		t.Errorf("path length = %v, want 200", got)
	}
	b := pt.Bounds()
	if math.Abs(b.Height()-10) > 1e-9 || math.Abs(b.Width()-20) > 1e-9 {
		t.Errorf("Bounds() = %+v, want glyphs 20 x 10", b)
	}
}

func TestPathTextEditPath(t *testing.T) {
	pt := NewPathText(nil, "a", Font{}, boxGlyphs(1, 1))
	rev := pt.Revision()
	pt.EditPath(func(p *Path) {})
	if pt.Revision() != rev {
		t.Error("no-op EditPath bumped the revision")
	}
	pt.EditPath(func(p *Path) {
		p.MoveTo(0, 0)
		p.LineTo(10, 0)
	})
	if pt.Revision() != rev+1 || pt.Path().Len() != 2 {
		t.Errorf("after EditPath: Revision() = %d, Len() = %d", pt.Revision(), pt.Path().Len())
	}

	pt.SetSampleInterval(-1)
	if pt.interval != DefaultSampleInterval {
		t.Errorf("interval = %v, want the default", pt.interval)
	}
}
