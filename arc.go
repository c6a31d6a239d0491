package vecedit

// ArcType selects how an arc outline is closed.
type ArcType uint8

const (
	// ArcOpen leaves the arc open.
	ArcOpen ArcType = iota

	// ArcChord closes the arc with a straight line between its ends.
	ArcChord

	// ArcPie closes the arc through the center of its frame.
	ArcPie
)

// String returns the arc type name.
func (t ArcType) String() string {
	switch t {
	case ArcOpen:
		return "Open"
	case ArcChord:
		return "Chord"
	case ArcPie:
		return "Pie"
	default:
		return "Unknown"
	}
}

// Arc is an elliptical arc inscribed in an axis-aligned frame. Angles are
// in degrees: 0 points to 3 o'clock and positive extents turn towards
// 12 o'clock.
type Arc struct {
	fillBase
	box
	start, extent float64
	typ           ArcType
}

// NewArc creates an arc.
func NewArc(x, y, w, h, start, extent float64, typ ArcType) *Arc {
	return &Arc{box: newBox(x, y, w, h), start: start, extent: extent, typ: typ}
}

// Start returns the start angle in degrees.
func (a *Arc) Start() float64 { return a.start }

// Extent returns the angular extent in degrees.
func (a *Arc) Extent() float64 { return a.extent }

// Type returns how the arc is closed.
func (a *Arc) Type() ArcType { return a.typ }

// SetFrame replaces position and size.
func (a *Arc) SetFrame(x, y, w, h float64) { a.setFrame(&a.shapeBase, x, y, w, h) }

// SetAngles sets the start angle and extent in degrees.
func (a *Arc) SetAngles(start, extent float64) {
	setPoint(&a.shapeBase, &a.start, &a.extent, Pt(start, extent))
}

// SetType sets how the arc is closed.
func (a *Arc) SetType(typ ArcType) { setField(&a.shapeBase, &a.typ, typ) }

// Kind returns KindArc.
func (a *Arc) Kind() Kind { return KindArc }

// Geometry returns the frame, the start and extent angles and the arc type.
func (a *Arc) Geometry() []float64 {
	return append(a.geometry(), a.start, a.extent, float64(a.typ))
}

// ToShape returns the arc, closed by a chord or through the center
// depending on its ArcType.
func (a *Arc) ToShape() *Path {
	return a.cache.get(a.Geometry(), func() *Path {
		p := NewPath()
		p.AddArc(a.x, a.y, a.w, a.h, a.start, a.extent, a.typ)
		return p
	})
}

// Paint fills or strokes the arc. Open arcs are always stroked.
func (a *Arc) Paint(c Canvas) { paintShape(c, a.ToShape(), a.filled && a.typ != ArcOpen) }

// Bounds returns the bounds of the drawn arc, which may be smaller than
// its frame.
func (a *Arc) Bounds() Rect { return a.ToShape().Bounds() }

// AddToBounds returns r extended by the bounds of the shape.
func (a *Arc) AddToBounds(r Rect) Rect { return r.Union(a.Bounds()) }

// Translate moves the shape by (dx, dy).
func (a *Arc) Translate(dx, dy float64) { _ = a.ApplyTransform(Translate(dx, dy)) }

// ApplyTransform scales and translates the frame. Mirroring transforms
// also mirror the angles so the drawn arc follows the geometry.
func (a *Arc) ApplyTransform(m Matrix) error {
	if err := a.transform(&a.shapeBase, m); err != nil {
		return err
	}
	flipX, flipY := m.A < 0, m.E < 0
	switch {
	case flipX && flipY:
		a.start += 180
	case flipX:
		a.start, a.extent = 180-a.start, -a.extent
	case flipY:
		a.start, a.extent = -a.start, -a.extent
	}
	if flipX || flipY {
		a.start = NormalizeDegrees(a.start)
	}
	return nil
}

// ControlPointCount implements ControlPointEditable.
func (a *Arc) ControlPointCount() int { return 4 }

// ControlPoints appends the corners of the frame.
func (a *Arc) ControlPoints(dst []ControlPoint) []ControlPoint {
	return appendControlPoints(dst, a.corners(), boxKinds())
}

// ControlPointKinds implements ControlPointEditable.
func (a *Arc) ControlPointKinds() []ControlPointKind { return boxKinds() }

// SetControlPoint drags a corner of the frame. Angles are kept.
func (a *Arc) SetControlPoint(i int, pt Point) error {
	return a.setCorner(&a.shapeBase, i, pt)
}

// VirtualControlPoints returns nil; every handle is a physical point.
func (a *Arc) VirtualControlPoints() []int { return nil }

// Snapshot implements Versioned.
func (a *Arc) Snapshot() Snapshot { return restorable(a, plain[Arc]) }

// Copy returns an independent copy at the same revision.
func (a *Arc) Copy() Primitive {
	c := *a
	c.cache = shapeCache{}
	return &c
}

// CopyTransformed returns a transformed copy at revision+1, leaving the
// receiver untouched.
func (a *Arc) CopyTransformed(m Matrix) (Primitive, error) { return copyTransformed(a, m) }

// Equal reports whether other is the same variant with the same geometry
// and fill.
func (a *Arc) Equal(other Primitive) bool { return sameValues(a, other) }
