package vecedit

import "math"

// Curve types used by path measurement, bounds and flattening.

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	mid := q.Eval(0.5)
	return QuadBez{P0: q.P0, P1: q.P0.Lerp(q.P1, 0.5), P2: mid},
		QuadBez{P0: mid, P1: q.P1.Lerp(q.P2, 0.5), P2: q.P2}
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (q QuadBez) BoundingBox() Rect {
	bbox := NewRect(q.P0, q.P2)

	// B'(t) = 2[(P1-P0) + t(P2-2P1+P0)] vanishes at t = -d0 / dd per axis.
	d0 := q.P1.Sub(q.P0)
	dd := q.P2.Sub(q.P1).Sub(d0)
	for _, t := range [2]float64{safeDiv(-d0.X, dd.X), safeDiv(-d0.Y, dd.Y)} {
		if t > 0 && t < 1 {
			bbox = bbox.AddPoint(q.Eval(t))
		}
	}
	return bbox
}

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	t2 := t * t
	return Point{
		X: mt2*mt*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t2*t*c.P3.X,
		Y: mt2*mt*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t2*t*c.P3.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Mid(c.P1)
	p12 := c.P1.Mid(c.P2)
	p23 := c.P2.Mid(c.P3)
	p012 := p01.Mid(p12)
	p123 := p12.Mid(p23)
	mid := p012.Mid(p123)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	roots := solveUnitQuadratic(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)
	roots = append(roots, solveUnitQuadratic(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)
	for _, t := range roots {
		bbox = bbox.AddPoint(c.Eval(t))
	}
	return bbox
}

// flatness returns the squared distance bound used by the subdivision test.
func (c CubicBez) flatness() float64 {
	ux := 3*c.P1.X - 2*c.P0.X - c.P3.X
	uy := 3*c.P1.Y - 2*c.P0.Y - c.P3.Y
	vx := 3*c.P2.X - c.P0.X - 2*c.P3.X
	vy := 3*c.P2.Y - c.P0.Y - 2*c.P3.Y
	return math.Max(ux*ux, vx*vx) + math.Max(uy*uy, vy*vy)
}

// maxFlattenDepth bounds curve subdivision so degenerate input terminates.
const maxFlattenDepth = 16

func flattenQuad(q QuadBez, toleranceSq float64, depth int, fn func(Point)) {
	if depth >= maxFlattenDepth || q.P1.DistanceSquared(q.P0.Mid(q.P2)) <= toleranceSq {
		fn(q.P2)
		return
	}
	a, b := q.Subdivide()
	flattenQuad(a, toleranceSq, depth+1, fn)
	flattenQuad(b, toleranceSq, depth+1, fn)
}

func flattenCubic(c CubicBez, toleranceSq float64, depth int, fn func(Point)) {
	if depth >= maxFlattenDepth || c.flatness() <= toleranceSq*16 {
		fn(c.P3)
		return
	}
	a, b := c.Subdivide()
	flattenCubic(a, toleranceSq, depth+1, fn)
	flattenCubic(b, toleranceSq, depth+1, fn)
}

// solveUnitQuadratic returns the roots of a*t^2 + b*t + c in (0, 1).
func solveUnitQuadratic(a, b, c float64) []float64 {
	var roots []float64
	keep := func(t float64) {
		if t > 0 && t < 1 {
			roots = append(roots, t)
		}
	}
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) > 1e-12 {
			keep(-c / b)
		}
		return roots
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return roots
	}
	sq := math.Sqrt(disc)
	keep((-b + sq) / (2 * a))
	keep((-b - sq) / (2 * a))
	return roots
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return -1
	}
	return a / b
}
