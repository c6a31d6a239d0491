package vecedit

import "slices"

// shapeBase carries the state every primitive has: its revision and the
// cached outline derived from its geometry.
type shapeBase struct {
	Versioning
	cache shapeCache
}

// changed records a value-bearing mutation.
func (b *shapeBase) changed() {
	b.bump()
	b.cache.invalidate()
}

// fillBase adds the fill flag of fillable primitives.
type fillBase struct {
	shapeBase
	filled bool
}

// Filled reports whether the primitive is painted filled rather than stroked.
func (b *fillBase) Filled() bool { return b.filled }

// SetFilled sets the fill flag.
func (b *fillBase) SetFilled(filled bool) {
	setField(&b.shapeBase, &b.filled, filled)
}

// setField assigns v to *p and records a change when the value differs.
// It reports whether it did.
func setField[T comparable](b *shapeBase, p *T, v T) bool {
	if *p == v {
		return false
	}
	*p = v
	b.changed()
	return true
}

// setPoint is setField for a pair of coordinates.
func setPoint(b *shapeBase, x, y *float64, pt Point) bool {
	if *x == pt.X && *y == pt.Y {
		return false
	}
	*x, *y = pt.X, pt.Y
	b.changed()
	return true
}

func paintShape(c Canvas, shape *Path, filled bool) {
	if filled {
		c.FillPath(shape)
	} else {
		c.StrokePath(shape)
	}
}

// copyTransformed implements CopyTransformed on top of Copy and ApplyTransform.
func copyTransformed(p Primitive, m Matrix) (Primitive, error) {
	c := p.Copy()
	if err := c.ApplyTransform(m); err != nil {
		return nil, err
	}
	return c, nil
}

// sameValues compares the parts of two primitives every variant shares:
// the variant, the flat geometry and the fill flag.
func sameValues(a, b Primitive) bool {
	if a.Kind() != b.Kind() || !slices.Equal(a.Geometry(), b.Geometry()) {
		return false
	}
	fa, okA := a.(Fillable)
	fb, okB := b.(Fillable)
	if okA != okB {
		return false
	}
	return !okA || fa.Filled() == fb.Filled()
}

func appendControlPoints(dst []ControlPoint, pts []Point, kinds []ControlPointKind) []ControlPoint {
	for i, pt := range pts {
		dst = append(dst, ControlPoint{Index: i, Point: pt, Kind: kinds[i]})
	}
	return dst
}

// repeatKind returns n copies of k.
func repeatKind(k ControlPointKind, n int) []ControlPointKind {
	kinds := make([]ControlPointKind, n)
	for i := range kinds {
		kinds[i] = k
	}
	return kinds
}

func boundsOfPoints(pts ...Point) Rect {
	r := EmptyRect()
	for _, pt := range pts {
		r = r.AddPoint(pt)
	}
	return r
}
