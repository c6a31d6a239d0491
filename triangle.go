package vecedit

// Triangle has three vertex handles followed by three virtual handles at
// the edge midpoints. Edge i runs from vertex i to vertex (i+1)%3.
type Triangle struct {
	fillBase
	v [3]Point
}

// NewTriangle creates a triangle from its vertices.
func NewTriangle(a, b, c Point) *Triangle {
	return &Triangle{v: [3]Point{a, b, c}}
}

// Vertices returns the three vertices.
func (t *Triangle) Vertices() [3]Point { return t.v }

// EdgeMidpoint returns the midpoint of edge i.
func (t *Triangle) EdgeMidpoint(i int) Point {
	return t.v[i%3].Mid(t.v[(i+1)%3])
}

// Kind returns KindTriangle.
func (t *Triangle) Kind() Kind { return KindTriangle }

// Geometry returns the three vertices as x, y pairs.
func (t *Triangle) Geometry() []float64 {
	return []float64{t.v[0].X, t.v[0].Y, t.v[1].X, t.v[1].Y, t.v[2].X, t.v[2].Y}
}

// ToShape returns the closed outline of the three vertices.
func (t *Triangle) ToShape() *Path {
	return t.cache.get(t.Geometry(), func() *Path {
		p := NewPath()
		p.AddPolygon(t.v[:], true)
		return p
	})
}

// Paint fills the shape when filled, and strokes it otherwise.
func (t *Triangle) Paint(c Canvas) { paintShape(c, t.ToShape(), t.filled) }

// Bounds returns the smallest rectangle containing the shape.
func (t *Triangle) Bounds() Rect { return boundsOfPoints(t.v[:]...) }

// AddToBounds unions the given rectangle with Bounds.
func (t *Triangle) AddToBounds(r Rect) Rect { return r.Union(t.Bounds()) }

// Translate is ApplyTransform with a translation.
func (t *Triangle) Translate(dx, dy float64) { _ = t.ApplyTransform(Translate(dx, dy)) }

// ApplyTransform maps the vertices through m.
func (t *Triangle) ApplyTransform(m Matrix) error {
	for i := range t.v {
		t.v[i] = m.TransformPoint(t.v[i])
	}
	t.changed()
	return nil
}

// ControlPointCount implements ControlPointEditable.
func (t *Triangle) ControlPointCount() int { return 6 }

// ControlPoints appends the three vertices, then the midpoints of the
// edges v0-v1, v1-v2 and v2-v0.
func (t *Triangle) ControlPoints(dst []ControlPoint) []ControlPoint {
	pts := []Point{t.v[0], t.v[1], t.v[2], t.EdgeMidpoint(0), t.EdgeMidpoint(1), t.EdgeMidpoint(2)}
	return appendControlPoints(dst, pts, t.ControlPointKinds())
}

// ControlPointKinds returns three HandlePoint and three HandleVirtual kinds.
func (t *Triangle) ControlPointKinds() []ControlPointKind {
	return []ControlPointKind{HandlePoint, HandlePoint, HandlePoint, HandleVirtual, HandleVirtual, HandleVirtual}
}

// SetControlPoint moves vertex i (0-2), or, for a midpoint handle (3-5),
// shifts both vertices of the edge by the drag offset so the edge keeps
// its direction and length and its midpoint lands on pt.
func (t *Triangle) SetControlPoint(i int, pt Point) error {
	if err := checkIndex("control point", i, 6); err != nil {
		return err
	}
	if i < 3 {
		setField(&t.shapeBase, &t.v[i], pt)
		return nil
	}
	e := i - 3
	delta := pt.Sub(t.EdgeMidpoint(e))
	if delta == (Point{}) {
		return nil
	}
	a, b := e, (e+1)%3
	t.v[a] = t.v[a].Add(delta)
	t.v[b] = t.v[b].Add(delta)
	t.changed()
	return nil
}

// VirtualControlPoints returns the indices of the edge midpoints.
func (t *Triangle) VirtualControlPoints() []int { return []int{3, 4, 5} }

// Snapshot implements Versioned.
func (t *Triangle) Snapshot() Snapshot { return restorable(t, plain[Triangle]) }

// Copy implements Primitive.
func (t *Triangle) Copy() Primitive {
	c := *t
	c.cache = shapeCache{}
	return &c
}

// CopyTransformed copies the shape and applies m to the copy.
func (t *Triangle) CopyTransformed(m Matrix) (Primitive, error) { return copyTransformed(t, m) }

// Equal compares kind and geometry.
func (t *Triangle) Equal(other Primitive) bool { return sameValues(t, other) }
