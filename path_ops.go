package vecedit

import "math"

// Path operations for bounding box computation, flattening and arc length
// measurement.

// DefaultFlattenTolerance is the curve flattening tolerance used when a
// caller passes a non-positive tolerance.
const DefaultFlattenTolerance = 0.1

// Bounds returns the tight axis-aligned bounding box of the path, or an
// empty Rect for a path without coordinates.
func (p *Path) Bounds() Rect {
	p.mu.RLock()
	defer p.mu.RUnlock()

	bbox := EmptyRect()
	var current Point
	for _, s := range p.segs {
		switch s.Tag {
		case TagMoveTo, TagLineTo:
			current = s.Point(0)
			bbox = bbox.AddPoint(current)
		case TagQuadTo:
			q := QuadBez{P0: current, P1: s.Point(0), P2: s.Point(1)}
			bbox = bbox.Union(q.BoundingBox())
			current = q.P2
		case TagCubicTo:
			c := CubicBez{P0: current, P1: s.Point(0), P2: s.Point(1), P3: s.Point(2)}
			bbox = bbox.Union(c.BoundingBox())
			current = c.P3
		}
	}
	return bbox
}

// Contour is one flattened contour of a path.
type Contour struct {
	Points []Point
	Closed bool
}

// Flatten converts the path into polylines, one per contour, approximating
// curves within tolerance.
func (p *Path) Flatten(tolerance float64) []Contour {
	if tolerance <= 0 {
		tolerance = DefaultFlattenTolerance
	}
	tolSq := tolerance * tolerance

	var (
		out     []Contour
		cur     Contour
		current Point
		start   Point
		started bool
	)
	flush := func() {
		if len(cur.Points) > 0 {
			out = append(out, cur)
		}
		cur = Contour{}
	}
	emit := func(pt Point) { cur.Points = append(cur.Points, pt) }

	for _, s := range p.Segments() {
		if s.Tag != TagMoveTo && s.Tag != TagClose && !started {
			// Drawing without a MoveTo starts at the origin.
			emit(current)
			start = current
			started = true
		}
		switch s.Tag {
		case TagMoveTo:
			flush()
			current = s.Point(0)
			start = current
			started = true
			emit(current)
		case TagLineTo:
			current = s.Point(0)
			emit(current)
		case TagQuadTo:
			flattenQuad(QuadBez{P0: current, P1: s.Point(0), P2: s.Point(1)}, tolSq, 0, emit)
			current = s.Point(1)
		case TagCubicTo:
			flattenCubic(CubicBez{P0: current, P1: s.Point(0), P2: s.Point(1), P3: s.Point(2)}, tolSq, 0, emit)
			current = s.Point(2)
		case TagClose:
			if started {
				cur.Closed = true
				if current != start {
					emit(start)
				}
				flush()
				current = start
				started = false
			}
		}
	}
	flush()
	return out
}

// Length returns the arc length of the path, measured on a flattening with
// the given accuracy. Jumps between contours do not count.
func (p *Path) Length(accuracy float64) float64 {
	var total float64
	for _, pl := range p.Flatten(accuracy) {
		total += polylineLength(pl.Points)
	}
	return total
}

func polylineLength(pts []Point) float64 {
	var l float64
	for i := 1; i < len(pts); i++ {
		l += pts[i-1].Distance(pts[i])
	}
	return l
}

// AddRect adds a closed rectangle contour.
func (p *Path) AddRect(x, y, w, h float64) {
	p.Append(
		MoveSeg(x, y),
		LineSeg(x+w, y),
		LineSeg(x+w, y+h),
		LineSeg(x, y+h),
		CloseSeg(),
	)
}

// AddPolygon adds a contour through pts, closed when closed is true.
func (p *Path) AddPolygon(pts []Point, closed bool) {
	if len(pts) == 0 {
		return
	}
	segs := make([]Segment, 0, len(pts)+1)
	segs = append(segs, MoveSeg(pts[0].X, pts[0].Y))
	for _, pt := range pts[1:] {
		segs = append(segs, LineSeg(pt.X, pt.Y))
	}
	if closed {
		segs = append(segs, CloseSeg())
	}
	p.Append(segs...)
}

// AddEllipse adds a closed ellipse contour inscribed in the given box,
// built from four cubic Bezier curves.
func (p *Path) AddEllipse(x, y, w, h float64) {
	p.AddArc(x, y, w, h, 0, 360, ArcOpen)
	p.Close()
}

// AddArc adds an elliptical arc inscribed in the box (x, y, w, h).
// Angles are in degrees; 0 points to 3 o'clock and positive extents run
// counter-clockwise on screen (towards 12 o'clock). kind selects how the
// arc is closed.
func (p *Path) AddArc(x, y, w, h, start, extent float64, kind ArcType) {
	cx, cy := x+w/2, y+h/2
	rx, ry := w/2, h/2
	at := func(deg float64) Point {
		s, c := math.Sincos(radians(deg))
		return Pt(cx+rx*c, cy-ry*s)
	}

	first := at(start)
	p.MoveTo(first.X, first.Y)

	// Split into pieces of at most 90 degrees.
	n := int(math.Ceil(math.Abs(extent) / 90))
	if n == 0 {
		n = 1
	}
	step := extent / float64(n)
	// Handle length for a unit-circle arc of the step angle.
	k := 4.0 / 3.0 * math.Tan(radians(step)/4)
	for i := range n {
		a0 := radians(start + float64(i)*step)
		a1 := radians(start + float64(i+1)*step)
		s0, c0 := math.Sincos(a0)
		s1, c1 := math.Sincos(a1)
		p.CubicTo(
			cx+rx*(c0-k*s0), cy-ry*(s0+k*c0),
			cx+rx*(c1+k*s1), cy-ry*(s1-k*c1),
			cx+rx*c1, cy-ry*s1,
		)
	}

	switch kind {
	case ArcChord:
		p.Close()
	case ArcPie:
		p.LineTo(cx, cy)
		p.Close()
	}
}

// AddRoundRect adds a closed rectangle with elliptical corners of the
// given full arc width and height (clamped to the box).
func (p *Path) AddRoundRect(x, y, w, h, arcW, arcH float64) {
	rx := math.Min(math.Abs(arcW), w) / 2
	ry := math.Min(math.Abs(arcH), h) / 2
	if rx == 0 || ry == 0 {
		p.AddRect(x, y, w, h)
		return
	}
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	ox, oy := rx*k, ry*k

	p.MoveTo(x+rx, y)
	p.LineTo(x+w-rx, y)
	p.CubicTo(x+w-rx+ox, y, x+w, y+ry-oy, x+w, y+ry)
	p.LineTo(x+w, y+h-ry)
	p.CubicTo(x+w, y+h-ry+oy, x+w-rx+ox, y+h, x+w-rx, y+h)
	p.LineTo(x+rx, y+h)
	p.CubicTo(x+rx-ox, y+h, x, y+h-ry+oy, x, y+h-ry)
	p.LineTo(x, y+ry)
	p.CubicTo(x, y+ry-oy, x+rx-ox, y, x+rx, y)
	p.Close()
}
