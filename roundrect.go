package vecedit

import "math"

// RoundRect is an axis-aligned rectangle with elliptical corners. The arc
// width and height are the full diameters of the corner ellipses.
type RoundRect struct {
	fillBase
	box
	arcW, arcH float64
}

// NewRoundRect creates a rounded rectangle.
func NewRoundRect(x, y, w, h, arcW, arcH float64) *RoundRect {
	return &RoundRect{box: newBox(x, y, w, h), arcW: math.Abs(arcW), arcH: math.Abs(arcH)}
}

// ArcSize returns the corner arc width and height.
func (r *RoundRect) ArcSize() (w, h float64) { return r.arcW, r.arcH }

// SetArcSize sets the corner arc width and height.
func (r *RoundRect) SetArcSize(w, h float64) {
	setPoint(&r.shapeBase, &r.arcW, &r.arcH, Pt(math.Abs(w), math.Abs(h)))
}

// SetFrame replaces position and size.
func (r *RoundRect) SetFrame(x, y, w, h float64) { r.setFrame(&r.shapeBase, x, y, w, h) }

// Kind returns KindRoundRect.
func (r *RoundRect) Kind() Kind { return KindRoundRect }

// Geometry returns the frame followed by the arc width and height.
func (r *RoundRect) Geometry() []float64 { return append(r.geometry(), r.arcW, r.arcH) }

// ToShape returns the outline with each corner rounded by a quarter
// ellipse of the arc size, clamped to the frame.
func (r *RoundRect) ToShape() *Path {
	return r.cache.get(r.Geometry(), func() *Path {
		p := NewPath()
		p.AddRoundRect(r.x, r.y, r.w, r.h, r.arcW, r.arcH)
		return p
	})
}

// Paint fills the shape when filled, and strokes it otherwise.
func (r *RoundRect) Paint(c Canvas) { paintShape(c, r.ToShape(), r.filled) }

// Bounds implements Primitive.
func (r *RoundRect) Bounds() Rect { return r.Frame() }

// AddToBounds unions the given rectangle with Bounds.
func (r *RoundRect) AddToBounds(b Rect) Rect { return b.Union(r.Bounds()) }

// Translate is ApplyTransform with a translation.
func (r *RoundRect) Translate(dx, dy float64) { _ = r.ApplyTransform(Translate(dx, dy)) }

// ApplyTransform scales the frame and the corner arcs along with it.
func (r *RoundRect) ApplyTransform(m Matrix) error {
	if err := r.transform(&r.shapeBase, m); err != nil {
		return err
	}
	r.arcW *= math.Abs(m.A)
	r.arcH *= math.Abs(m.E)
	return nil
}

// ControlPointCount returns the number of handles.
func (r *RoundRect) ControlPointCount() int { return 4 }

// ControlPoints implements ControlPointEditable.
func (r *RoundRect) ControlPoints(dst []ControlPoint) []ControlPoint {
	return appendControlPoints(dst, r.corners(), boxKinds())
}

// ControlPointKinds reports the kind of every handle, in index order.
func (r *RoundRect) ControlPointKinds() []ControlPointKind { return boxKinds() }

// SetControlPoint drags a corner of the frame. The arc size is kept.
func (r *RoundRect) SetControlPoint(i int, pt Point) error {
	return r.setCorner(&r.shapeBase, i, pt)
}

// VirtualControlPoints implements ControlPointEditable.
func (r *RoundRect) VirtualControlPoints() []int { return nil }

// Snapshot captures every field, revision included.
func (r *RoundRect) Snapshot() Snapshot { return restorable(r, plain[RoundRect]) }

// Copy returns an independent copy at the same revision.
func (r *RoundRect) Copy() Primitive {
	c := *r
	c.cache = shapeCache{}
	return &c
}

// CopyTransformed copies the shape and applies m to the copy.
func (r *RoundRect) CopyTransformed(m Matrix) (Primitive, error) { return copyTransformed(r, m) }

// Equal implements Primitive.
func (r *RoundRect) Equal(other Primitive) bool { return sameValues(r, other) }
