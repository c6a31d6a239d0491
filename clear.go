package vecedit

// Clear erases a rectangular region of the canvas to transparency.
type Clear struct {
	shapeBase
	box
}

// NewClear creates a clear region.
func NewClear(x, y, w, h float64) *Clear {
	return &Clear{box: newBox(x, y, w, h)}
}

// SetFrame replaces position and size.
func (c *Clear) SetFrame(x, y, w, h float64) { c.setFrame(&c.shapeBase, x, y, w, h) }

// Kind returns KindClear.
func (c *Clear) Kind() Kind { return KindClear }

// Geometry returns the frame as x, y, width and height.
func (c *Clear) Geometry() []float64 { return c.geometry() }

// ToShape returns the outline of the cleared region.
func (c *Clear) ToShape() *Path {
	return c.cache.get(c.Geometry(), func() *Path {
		p := NewPath()
		p.AddRect(c.x, c.y, c.w, c.h)
		return p
	})
}

// Paint clears the frame on c. Clear regions are never filled or stroked.
func (c *Clear) Paint(cv Canvas) { cv.ClearRect(c.Frame()) }

// Bounds returns the frame.
func (c *Clear) Bounds() Rect { return c.Frame() }

// AddToBounds unions the given rectangle with Bounds.
func (c *Clear) AddToBounds(r Rect) Rect { return r.Union(c.Bounds()) }

// Translate is ApplyTransform with a translation.
func (c *Clear) Translate(dx, dy float64) { _ = c.ApplyTransform(Translate(dx, dy)) }

// ApplyTransform scales and translates the region. Rotation and shear
// fail with ErrNonAxisTransform.
func (c *Clear) ApplyTransform(m Matrix) error { return c.transform(&c.shapeBase, m) }

// ControlPointCount implements ControlPointEditable.
func (c *Clear) ControlPointCount() int { return 4 }

// ControlPoints implements ControlPointEditable.
func (c *Clear) ControlPoints(dst []ControlPoint) []ControlPoint {
	return appendControlPoints(dst, c.corners(), boxKinds())
}

// ControlPointKinds reports the kind of every handle, in index order.
func (c *Clear) ControlPointKinds() []ControlPointKind { return boxKinds() }

// SetControlPoint drags corner i with the opposite corner fixed.
func (c *Clear) SetControlPoint(i int, pt Point) error {
	return c.setCorner(&c.shapeBase, i, pt)
}

// VirtualControlPoints returns nil; every handle is a physical point.
func (c *Clear) VirtualControlPoints() []int { return nil }

// Snapshot captures every field, revision included.
func (c *Clear) Snapshot() Snapshot { return restorable(c, plain[Clear]) }

// Copy implements Primitive.
func (c *Clear) Copy() Primitive {
	cp := *c
	cp.cache = shapeCache{}
	return &cp
}

// CopyTransformed copies the shape and applies m to the copy.
func (c *Clear) CopyTransformed(m Matrix) (Primitive, error) { return copyTransformed(c, m) }

// Equal compares kind and geometry.
func (c *Clear) Equal(other Primitive) bool { return sameValues(c, other) }
