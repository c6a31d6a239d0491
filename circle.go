package vecedit

import "math"

// Circle is edited through its center and four radius handles at the
// east, south, west and north points.
type Circle struct {
	fillBase
	cx, cy, r float64
}

// NewCircle creates a circle. The radius is stored as an absolute value.
func NewCircle(cx, cy, r float64) *Circle {
	return &Circle{cx: cx, cy: cy, r: math.Abs(r)}
}

// Center returns the center point.
func (c *Circle) Center() Point { return Pt(c.cx, c.cy) }

// Radius returns the radius.
func (c *Circle) Radius() float64 { return c.r }

// SetCenter moves the circle.
func (c *Circle) SetCenter(pt Point) { setPoint(&c.shapeBase, &c.cx, &c.cy, pt) }

// SetRadius sets the radius. Negative values are stored as their magnitude.
func (c *Circle) SetRadius(r float64) { setField(&c.shapeBase, &c.r, math.Abs(r)) }

// Kind returns KindCircle.
func (c *Circle) Kind() Kind { return KindCircle }

// Geometry returns the center and the radius.
func (c *Circle) Geometry() []float64 { return []float64{c.cx, c.cy, c.r} }

// ToShape returns the circle approximated by cubic segments.
func (c *Circle) ToShape() *Path {
	return c.cache.get(c.Geometry(), func() *Path {
		p := NewPath()
		p.AddEllipse(c.cx-c.r, c.cy-c.r, 2*c.r, 2*c.r)
		return p
	})
}

// Paint implements Renderable.
func (c *Circle) Paint(cv Canvas) { paintShape(cv, c.ToShape(), c.filled) }

// Bounds returns the square enclosing the circle.
func (c *Circle) Bounds() Rect { return RectXYWH(c.cx-c.r, c.cy-c.r, 2*c.r, 2*c.r) }

// AddToBounds implements Primitive.
func (c *Circle) AddToBounds(r Rect) Rect { return r.Union(c.Bounds()) }

// Translate implements Transformable.
func (c *Circle) Translate(dx, dy float64) { _ = c.ApplyTransform(Translate(dx, dy)) }

// ApplyTransform accepts similarity transforms (uniform scale, rotation,
// reflection, translation) and fails with ErrNonUniformTransform otherwise.
func (c *Circle) ApplyTransform(m Matrix) error {
	scale, _, _, ok := m.Similarity()
	if !ok {
		return ErrNonUniformTransform
	}
	center := m.TransformPoint(c.Center())
	c.cx, c.cy, c.r = center.X, center.Y, c.r*scale
	c.changed()
	return nil
}

// radiusPoints returns the center followed by the E, S, W and N points.
func (c *Circle) radiusPoints() []Point {
	return []Point{
		c.Center(),
		Pt(c.cx+c.r, c.cy),
		Pt(c.cx, c.cy+c.r),
		Pt(c.cx-c.r, c.cy),
		Pt(c.cx, c.cy-c.r),
	}
}

// ControlPointCount returns the number of handles.
func (c *Circle) ControlPointCount() int { return 5 }

// ControlPoints appends the center followed by the east, south, west
// and north radius handles.
func (c *Circle) ControlPoints(dst []ControlPoint) []ControlPoint {
	return appendControlPoints(dst, c.radiusPoints(), c.ControlPointKinds())
}

// ControlPointKinds returns one HandlePoint and four HandleRadius kinds.
func (c *Circle) ControlPointKinds() []ControlPointKind {
	return append([]ControlPointKind{HandlePoint}, repeatKind(HandleRadius, 4)...)
}

// SetControlPoint moves the center (index 0) or sets the radius to the
// distance between pt and the center (indices 1-4).
func (c *Circle) SetControlPoint(i int, pt Point) error {
	if err := checkIndex("control point", i, 5); err != nil {
		return err
	}
	if i == 0 {
		c.SetCenter(pt)
	} else {
		c.SetRadius(pt.Distance(c.Center()))
	}
	return nil
}

// VirtualControlPoints implements ControlPointEditable.
func (c *Circle) VirtualControlPoints() []int { return nil }

// Snapshot captures center, radius, fill and revision.
func (c *Circle) Snapshot() Snapshot { return restorable(c, plain[Circle]) }

// Copy returns an independent copy at the same revision.
func (c *Circle) Copy() Primitive {
	cp := *c
	cp.cache = shapeCache{}
	return &cp
}

// CopyTransformed implements Primitive.
func (c *Circle) CopyTransformed(m Matrix) (Primitive, error) { return copyTransformed(c, m) }

// Equal implements Primitive.
func (c *Circle) Equal(other Primitive) bool { return sameValues(c, other) }
