package vecedit

// Rectangle is an axis-aligned rectangle edited through its four corners.
type Rectangle struct {
	fillBase
	box
}

// NewRectangle creates a rectangle. Negative sizes are normalized.
func NewRectangle(x, y, w, h float64) *Rectangle {
	return &Rectangle{box: newBox(x, y, w, h)}
}

// SetFrame replaces position and size.
func (r *Rectangle) SetFrame(x, y, w, h float64) { r.setFrame(&r.shapeBase, x, y, w, h) }

// Kind returns KindRectangle.
func (r *Rectangle) Kind() Kind { return KindRectangle }

// Geometry returns x, y, width and height.
func (r *Rectangle) Geometry() []float64 { return r.geometry() }

// ToShape returns the closed outline of the frame, starting at the top-left corner.
func (r *Rectangle) ToShape() *Path {
	return r.cache.get(r.Geometry(), func() *Path {
		p := NewPath()
		p.AddRect(r.x, r.y, r.w, r.h)
		return p
	})
}

// Paint fills the rectangle when it is filled and strokes it otherwise.
func (r *Rectangle) Paint(c Canvas) { paintShape(c, r.ToShape(), r.filled) }

// Bounds returns the frame.
func (r *Rectangle) Bounds() Rect { return r.Frame() }

// AddToBounds unions the given rectangle with Bounds.
func (r *Rectangle) AddToBounds(b Rect) Rect { return b.Union(r.Bounds()) }

// Translate is ApplyTransform with a translation.
func (r *Rectangle) Translate(dx, dy float64) { _ = r.ApplyTransform(Translate(dx, dy)) }

// ApplyTransform maps the corners through m. Rotation and shear fail
// with ErrNonAxisTransform and leave the rectangle unchanged.
func (r *Rectangle) ApplyTransform(m Matrix) error { return r.transform(&r.shapeBase, m) }

// ControlPointCount implements ControlPointEditable.
func (r *Rectangle) ControlPointCount() int { return 4 }

// ControlPoints appends the four corners, clockwise from the top left.
func (r *Rectangle) ControlPoints(dst []ControlPoint) []ControlPoint {
	return appendControlPoints(dst, r.corners(), boxKinds())
}

// ControlPointKinds reports the kind of every handle, in index order.
func (r *Rectangle) ControlPointKinds() []ControlPointKind { return boxKinds() }

// SetControlPoint drags corner i (top-left, top-right, bottom-right,
// bottom-left) with the opposite corner held fixed.
func (r *Rectangle) SetControlPoint(i int, pt Point) error {
	return r.setCorner(&r.shapeBase, i, pt)
}

// VirtualControlPoints returns nil; every handle is a physical point.
func (r *Rectangle) VirtualControlPoints() []int { return nil }

// Snapshot implements Versioned.
func (r *Rectangle) Snapshot() Snapshot { return restorable(r, plain[Rectangle]) }

// Copy returns an independent copy at the same revision.
func (r *Rectangle) Copy() Primitive {
	c := *r
	c.cache = shapeCache{}
	return &c
}

// CopyTransformed copies the shape and applies m to the copy.
func (r *Rectangle) CopyTransformed(m Matrix) (Primitive, error) { return copyTransformed(r, m) }

// Equal implements Primitive.
func (r *Rectangle) Equal(other Primitive) bool { return sameValues(r, other) }

// Oval is an ellipse inscribed in an axis-aligned frame.
type Oval struct {
	fillBase
	box
}

// NewOval creates an oval inscribed in the given frame.
func NewOval(x, y, w, h float64) *Oval {
	return &Oval{box: newBox(x, y, w, h)}
}

// SetFrame replaces position and size.
func (o *Oval) SetFrame(x, y, w, h float64) { o.setFrame(&o.shapeBase, x, y, w, h) }

// Kind implements Primitive.
func (o *Oval) Kind() Kind { return KindOval }

// Geometry returns the frame as x, y, width and height.
func (o *Oval) Geometry() []float64 { return o.geometry() }

// ToShape returns the ellipse approximated by cubic segments.
func (o *Oval) ToShape() *Path {
	return o.cache.get(o.Geometry(), func() *Path {
		p := NewPath()
		p.AddEllipse(o.x, o.y, o.w, o.h)
		return p
	})
}

// Paint fills the shape when filled, and strokes it otherwise.
func (o *Oval) Paint(c Canvas) { paintShape(c, o.ToShape(), o.filled) }

// Bounds returns the frame, which the ellipse touches on all four sides.
func (o *Oval) Bounds() Rect { return o.Frame() }

// AddToBounds returns r extended by the bounds of the shape.
func (o *Oval) AddToBounds(b Rect) Rect { return b.Union(o.Bounds()) }

// Translate moves the shape by (dx, dy).
func (o *Oval) Translate(dx, dy float64) { _ = o.ApplyTransform(Translate(dx, dy)) }

// ApplyTransform scales and translates the frame. Transforms that
// rotate or shear fail with ErrNonAxisTransform.
func (o *Oval) ApplyTransform(m Matrix) error { return o.transform(&o.shapeBase, m) }

// ControlPointCount returns the number of handles.
func (o *Oval) ControlPointCount() int { return 4 }

// ControlPoints appends the four frame corners to dst.
func (o *Oval) ControlPoints(dst []ControlPoint) []ControlPoint {
	return appendControlPoints(dst, o.corners(), boxKinds())
}

// ControlPointKinds implements ControlPointEditable.
func (o *Oval) ControlPointKinds() []ControlPointKind { return boxKinds() }

// SetControlPoint drags a corner of the frame; the ellipse follows.
func (o *Oval) SetControlPoint(i int, pt Point) error {
	return o.setCorner(&o.shapeBase, i, pt)
}

// VirtualControlPoints implements ControlPointEditable.
func (o *Oval) VirtualControlPoints() []int { return nil }

// Snapshot captures every field, revision included.
func (o *Oval) Snapshot() Snapshot { return restorable(o, plain[Oval]) }

// Copy returns a copy sharing nothing with o.
func (o *Oval) Copy() Primitive {
	c := *o
	c.cache = shapeCache{}
	return &c
}

// CopyTransformed returns a transformed copy at revision+1, leaving the
// receiver untouched.
func (o *Oval) CopyTransformed(m Matrix) (Primitive, error) { return copyTransformed(o, m) }

// Equal compares kind and geometry.
func (o *Oval) Equal(other Primitive) bool { return sameValues(o, other) }
