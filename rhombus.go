package vecedit

import "math"

// Rhombus is a diamond with independent horizontal and vertical radii,
// rotated by an angle in degrees about its center.
//
// Control points are the center followed by the east, south, west and
// north vertices of the rotated frame.
type Rhombus struct {
	fillBase
	cx, cy float64
	rx, ry float64
	angle  float64
}

// NewRhombus creates a rhombus. Radii are stored as absolute values and
// the angle is normalized to [0, 360).
func NewRhombus(cx, cy, rx, ry, angle float64) *Rhombus {
	return &Rhombus{cx: cx, cy: cy, rx: math.Abs(rx), ry: math.Abs(ry), angle: NormalizeDegrees(angle)}
}

// Center returns the center point.
func (r *Rhombus) Center() Point { return Pt(r.cx, r.cy) }

// Radii returns the horizontal and vertical radii.
func (r *Rhombus) Radii() (rx, ry float64) { return r.rx, r.ry }

// Angle returns the rotation in degrees.
func (r *Rhombus) Angle() float64 { return r.angle }

// SetCenter moves the rhombus.
func (r *Rhombus) SetCenter(pt Point) { setPoint(&r.shapeBase, &r.cx, &r.cy, pt) }

// SetRadii sets both radii.
func (r *Rhombus) SetRadii(rx, ry float64) {
	setPoint(&r.shapeBase, &r.rx, &r.ry, Pt(math.Abs(rx), math.Abs(ry)))
}

// SetAngle sets the rotation in degrees.
func (r *Rhombus) SetAngle(deg float64) { setField(&r.shapeBase, &r.angle, NormalizeDegrees(deg)) }

// Kind returns KindRhombus.
func (r *Rhombus) Kind() Kind { return KindRhombus }

// Geometry returns the center, both half-diagonals and the angle.
func (r *Rhombus) Geometry() []float64 { return []float64{r.cx, r.cy, r.rx, r.ry, r.angle} }

// vertices returns the E, S, W and N vertices.
func (r *Rhombus) vertices() []Point {
	m := RotateDegrees(r.angle).Then(Translate(r.cx, r.cy))
	return []Point{
		m.TransformPoint(Pt(r.rx, 0)),
		m.TransformPoint(Pt(0, r.ry)),
		m.TransformPoint(Pt(-r.rx, 0)),
		m.TransformPoint(Pt(0, -r.ry)),
	}
}

// ToShape returns the closed outline through the four vertices.
func (r *Rhombus) ToShape() *Path {
	return r.cache.get(r.Geometry(), func() *Path {
		p := NewPath()
		p.AddPolygon(r.vertices(), true)
		return p
	})
}

// Paint implements Renderable.
func (r *Rhombus) Paint(c Canvas) { paintShape(c, r.ToShape(), r.filled) }

// Bounds returns the box around the rotated vertices.
func (r *Rhombus) Bounds() Rect { return boundsOfPoints(r.vertices()...) }

// AddToBounds implements Primitive.
func (r *Rhombus) AddToBounds(b Rect) Rect { return b.Union(r.Bounds()) }

// Translate implements Transformable.
func (r *Rhombus) Translate(dx, dy float64) { _ = r.ApplyTransform(Translate(dx, dy)) }

// ApplyTransform accepts uniform scale, rotation and translation. Other
// transforms, reflections included, fail with ErrNonUniformTransform.
func (r *Rhombus) ApplyTransform(m Matrix) error {
	scale, rot, reflected, ok := m.Similarity()
	if !ok || reflected {
		return ErrNonUniformTransform
	}
	c := m.TransformPoint(r.Center())
	r.cx, r.cy = c.X, c.Y
	r.rx *= scale
	r.ry *= scale
	r.angle = NormalizeDegrees(r.angle + rot*180/math.Pi)
	r.changed()
	return nil
}

// ControlPointCount implements ControlPointEditable.
func (r *Rhombus) ControlPointCount() int { return 5 }

// ControlPoints appends the center and the four vertices.
func (r *Rhombus) ControlPoints(dst []ControlPoint) []ControlPoint {
	pts := append([]Point{r.Center()}, r.vertices()...)
	return appendControlPoints(dst, pts, r.ControlPointKinds())
}

// ControlPointKinds returns HandlePoint for the center and HandleRadius
// for the four vertices.
func (r *Rhombus) ControlPointKinds() []ControlPointKind {
	return append([]ControlPointKind{HandlePoint}, repeatKind(HandleRadius, 4)...)
}

// SetControlPoint moves the center (index 0) or a vertex (1-4). Dragging a
// vertex sets the matching radius to its distance from the center and
// turns the rhombus so the vertex points at pt.
func (r *Rhombus) SetControlPoint(i int, pt Point) error {
	if err := checkIndex("control point", i, 5); err != nil {
		return err
	}
	if i == 0 {
		r.SetCenter(pt)
		return nil
	}
	d := pt.Sub(r.Center())
	dist := d.Length()
	if dist == 0 {
		// No direction to follow; only the radius collapses.
		if i%2 == 1 {
			r.SetRadii(0, r.ry)
		} else {
			r.SetRadii(r.rx, 0)
		}
		return nil
	}
	angle := NormalizeDegrees(d.Degrees() - float64(i-1)*90)
	rx, ry := r.rx, r.ry
	if i%2 == 1 {
		rx = dist
	} else {
		ry = dist
	}
	if rx == r.rx && ry == r.ry && angle == r.angle {
		return nil
	}
	r.rx, r.ry, r.angle = rx, ry, angle
	r.changed()
	return nil
}

// VirtualControlPoints returns nil; every handle is a physical point.
func (r *Rhombus) VirtualControlPoints() []int { return nil }

// Snapshot implements Versioned.
func (r *Rhombus) Snapshot() Snapshot { return restorable(r, plain[Rhombus]) }

// Copy returns an independent copy at the same revision.
func (r *Rhombus) Copy() Primitive {
	c := *r
	c.cache = shapeCache{}
	return &c
}

// CopyTransformed implements Primitive.
func (r *Rhombus) CopyTransformed(m Matrix) (Primitive, error) { return copyTransformed(r, m) }

// Equal reports whether other is the same variant with the same geometry
// and fill.
func (r *Rhombus) Equal(other Primitive) bool { return sameValues(r, other) }
