package vecedit

// Line is a straight segment between two endpoints.
type Line struct {
	shapeBase
	x1, y1, x2, y2 float64
}

// NewLine creates a line from (x1, y1) to (x2, y2).
func NewLine(x1, y1, x2, y2 float64) *Line {
	return &Line{x1: x1, y1: y1, x2: x2, y2: y2}
}

// Start returns the first endpoint.
func (l *Line) Start() Point { return Pt(l.x1, l.y1) }

// End returns the second endpoint.
func (l *Line) End() Point { return Pt(l.x2, l.y2) }

// SetStart moves the first endpoint.
func (l *Line) SetStart(pt Point) { setPoint(&l.shapeBase, &l.x1, &l.y1, pt) }

// SetEnd moves the second endpoint.
func (l *Line) SetEnd(pt Point) { setPoint(&l.shapeBase, &l.x2, &l.y2, pt) }

// Length returns the distance between the endpoints.
func (l *Line) Length() float64 { return l.Start().Distance(l.End()) }

// Kind returns KindLine.
func (l *Line) Kind() Kind { return KindLine }

// Geometry returns the start and end coordinates.
func (l *Line) Geometry() []float64 { return []float64{l.x1, l.y1, l.x2, l.y2} }

// ToShape returns a two-segment open path.
func (l *Line) ToShape() *Path {
	return l.cache.get(l.Geometry(), func() *Path {
		return PathOf(MoveSeg(l.x1, l.y1), LineSeg(l.x2, l.y2))
	})
}

// Paint always strokes; a line has no interior.
func (l *Line) Paint(c Canvas) { c.StrokePath(l.ToShape()) }

// Bounds returns the box spanned by the endpoints.
func (l *Line) Bounds() Rect { return boundsOfPoints(l.Start(), l.End()) }

// AddToBounds implements Primitive.
func (l *Line) AddToBounds(r Rect) Rect { return r.Union(l.Bounds()) }

// Translate implements Transformable.
func (l *Line) Translate(dx, dy float64) { _ = l.ApplyTransform(Translate(dx, dy)) }

// ApplyTransform maps both endpoints. Every affine transform is accepted.
func (l *Line) ApplyTransform(m Matrix) error {
	a, b := m.TransformPoint(l.Start()), m.TransformPoint(l.End())
	l.x1, l.y1, l.x2, l.y2 = a.X, a.Y, b.X, b.Y
	l.changed()
	return nil
}

// ControlPointCount implements ControlPointEditable.
func (l *Line) ControlPointCount() int { return 2 }

// ControlPoints appends the start and end points.
func (l *Line) ControlPoints(dst []ControlPoint) []ControlPoint {
	return appendControlPoints(dst, []Point{l.Start(), l.End()}, l.ControlPointKinds())
}

// ControlPointKinds reports the kind of every handle, in index order.
func (l *Line) ControlPointKinds() []ControlPointKind {
	return []ControlPointKind{HandlePoint, HandlePoint}
}

// SetControlPoint moves the start (0) or end (1) point.
func (l *Line) SetControlPoint(i int, pt Point) error {
	if err := checkIndex("control point", i, 2); err != nil {
		return err
	}
	if i == 0 {
		l.SetStart(pt)
	} else {
		l.SetEnd(pt)
	}
	return nil
}

// VirtualControlPoints returns nil; every handle is a physical point.
func (l *Line) VirtualControlPoints() []int { return nil }

// Snapshot implements Versioned.
func (l *Line) Snapshot() Snapshot { return restorable(l, plain[Line]) }

// Copy returns an independent copy at the same revision.
func (l *Line) Copy() Primitive {
	c := *l
	c.cache = shapeCache{}
	return &c
}

// CopyTransformed implements Primitive.
func (l *Line) CopyTransformed(m Matrix) (Primitive, error) { return copyTransformed(l, m) }

// Equal reports whether other is the same variant with the same geometry
// and fill.
func (l *Line) Equal(other Primitive) bool { return sameValues(l, other) }
