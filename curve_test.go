package vecedit

import (
	"math"
	"testing"
)

// -------------------------------------------------------------------
// Rect Tests
// -------------------------------------------------------------------

func TestRect_NewRect(t *testing.T) {
	r := NewRect(Pt(10, 20), Pt(0, 5))
	diff(t, Rect{Min: Pt(0, 5), Max: Pt(10, 20)}, r)
	diff(t, 10.0, r.Width())
	diff(t, 15.0, r.Height())
	diff(t, Pt(5, 12.5), r.Center())

	diff(t, Rect{Min: Pt(1, 2), Max: Pt(4, 6)}, RectXYWH(1, 2, 3, 4))
	diff(t, 5.0, RectXYWH(0, 0, 3, 4).Diagonal())
}

func TestRect_Empty(t *testing.T) {
	e := EmptyRect()
	if !e.IsEmpty() {
		t.Fatal("EmptyRect() is not empty")
	}
	if e.Width() != 0 || e.Height() != 0 || e.Diagonal() != 0 {
		t.Errorf("empty rect has size %vx%v", e.Width(), e.Height())
	}
	if e.Contains(Pt(0, 0)) {
		t.Error("empty rect contains the origin")
	}

	r := RectXYWH(1, 1, 2, 2)
	diff(t, r, e.Union(r))
	diff(t, r, r.Union(e))

	// A zero-size rect is a point, not empty.
	pt := e.AddPoint(Pt(3, 4))
	if pt.IsEmpty() || !pt.Contains(Pt(3, 4)) {
		t.Errorf("AddPoint on empty = %+v", pt)
	}
}

func TestRect_Union(t *testing.T) {
	a := RectXYWH(0, 0, 10, 10)
	b := RectXYWH(5, -5, 10, 10)
	diff(t, Rect{Min: Pt(0, -5), Max: Pt(15, 10)}, a.Union(b))
	diff(t, Rect{Min: Pt(-1, 0), Max: Pt(10, 12)}, a.AddPoint(Pt(-1, 12)))
}

func TestRect_Contains(t *testing.T) {
	r := RectXYWH(0, 0, 10, 10)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(0, 0), true},
		{Pt(10, 10), true},
		{Pt(10.01, 5), false},
		{Pt(-1, 5), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

// -------------------------------------------------------------------
// QuadBez Tests
// -------------------------------------------------------------------

func TestQuadBez_Eval(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(5, 10), P2: Pt(10, 0)}
	tests := []struct {
		t    float64
		want Point
	}{
		{0, Pt(0, 0)},
		{0.5, Pt(5, 5)},
		{1, Pt(10, 0)},
	}
	for _, tt := range tests {
		if got := q.Eval(tt.t); !pointsEqual(got, tt.want, epsilon) {
			t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestQuadBez_Subdivide(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(5, 10), P2: Pt(10, 0)}
	a, b := q.Subdivide()
	if a.P2 != b.P0 || !pointsEqual(a.P2, q.Eval(0.5), epsilon) {
		t.Errorf("halves do not meet at the midpoint: %v %v", a.P2, b.P0)
	}
	for _, s := range []float64{0.1, 0.3, 0.5} {
		if got, want := a.Eval(s*2), q.Eval(s); !pointsEqual(got, want, 1e-9) {
			t.Errorf("first half Eval(%v) = %v, want %v", s*2, got, want)
		}
	}
}

func TestQuadBez_BoundingBox(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(5, 10), P2: Pt(10, 0)}
	bb := q.BoundingBox()
	if !pointsEqual(bb.Min, Pt(0, 0), epsilon) || !pointsEqual(bb.Max, Pt(10, 5), epsilon) {
		t.Errorf("BoundingBox() = %+v, want (0,0)-(10,5)", bb)
	}

	// Degenerate: control point on the chord.
	line := QuadBez{P0: Pt(0, 0), P1: Pt(1, 1), P2: Pt(2, 2)}
	diff(t, NewRect(Pt(0, 0), Pt(2, 2)), line.BoundingBox())
}

// -------------------------------------------------------------------
// CubicBez Tests
// -------------------------------------------------------------------

func TestCubicBez_Eval(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 10), P2: Pt(10, 10), P3: Pt(10, 0)}
	if got := c.Eval(0); got != c.P0 {
		t.Errorf("Eval(0) = %v", got)
	}
	if got := c.Eval(1); got != c.P3 {
		t.Errorf("Eval(1) = %v", got)
	}
	if got := c.Eval(0.5); !pointsEqual(got, Pt(5, 7.5), epsilon) {
		t.Errorf("Eval(0.5) = %v, want (5, 7.5)", got)
	}
}

func TestCubicBez_Subdivide(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 10), P2: Pt(10, 10), P3: Pt(10, 0)}
	a, b := c.Subdivide()
	if a.P0 != c.P0 || b.P3 != c.P3 || a.P3 != b.P0 {
		t.Fatalf("halves not joined: %+v %+v", a, b)
	}
	for _, s := range []float64{0.2, 0.7} {
		if got, want := b.Eval(s), c.Eval(0.5+s/2); !pointsEqual(got, want, 1e-9) {
			t.Errorf("second half Eval(%v) = %v, want %v", s, got, want)
		}
	}
}

func TestCubicBez_BoundingBox(t *testing.T) {
	tests := []struct {
		name     string
		c        CubicBez
		min, max Point
	}{
		{
			name: "arch",
			c:    CubicBez{P0: Pt(0, 0), P1: Pt(0, 10), P2: Pt(10, 10), P3: Pt(10, 0)},
			min:  Pt(0, 0),
			max:  Pt(10, 7.5),
		},
		{
			name: "s-curve",
			c:    CubicBez{P0: Pt(0, 0), P1: Pt(10, 0), P2: Pt(-10, 10), P3: Pt(0, 10)},
			min:  Pt(-2.886751345948129, 0),
			max:  Pt(2.886751345948129, 10),
		},
		{
			name: "straight",
			c:    CubicBez{P0: Pt(0, 0), P1: Pt(1, 0), P2: Pt(2, 0), P3: Pt(3, 0)},
			min:  Pt(0, 0),
			max:  Pt(3, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bb := tt.c.BoundingBox()
			if !pointsEqual(bb.Min, tt.min, 1e-9) || !pointsEqual(bb.Max, tt.max, 1e-9) {
				t.Errorf("BoundingBox() = %+v, want %v-%v", bb, tt.min, tt.max)
			}
			// Every sampled point must be inside.
			for i := range 101 {
				p := tt.c.Eval(float64(i) / 100)
				grown := Rect{Min: bb.Min.Sub(Pt(1e-9, 1e-9)), Max: bb.Max.Add(Pt(1e-9, 1e-9))}
				if !grown.Contains(p) {
					t.Fatalf("Eval(%v) = %v outside %+v", float64(i)/100, p, bb)
				}
			}
		})
	}
}

func TestFlattenCubicWithinTolerance(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 100), P2: Pt(100, 100), P3: Pt(100, 0)}
	const tol = 0.25
	pts := []Point{c.P0}
	flattenCubic(c, tol*tol, 0, func(p Point) { pts = append(pts, p) })

	if pts[len(pts)-1] != c.P3 {
		t.Fatalf("last point = %v, want %v", pts[len(pts)-1], c.P3)
	}
	// The sampled curve stays close to the polyline.
	for i := range 201 {
		p := c.Eval(float64(i) / 200)
		best := math.Inf(1)
		for j := 1; j < len(pts); j++ {
			best = math.Min(best, distToSegment(p, pts[j-1], pts[j]))
		}
		if best > 2*tol {
			t.Fatalf("curve point %v is %v from the flattening", p, best)
		}
	}
}

func distToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	l := ab.Dot(ab)
	if l == 0 {
		return p.Distance(a)
	}
	s := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/l))
	return p.Distance(a.Add(ab.Mul(s)))
}
