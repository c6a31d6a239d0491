package vecedit

import (
	"fmt"
	"math"
	"slices"
)

// vertices stores a vertex list as parallel coordinate arrays.
type vertices struct {
	xs, ys []float64
}

func newVertices(xs, ys []float64) (vertices, error) {
	if len(xs) != len(ys) {
		return vertices{}, fmt.Errorf("%w: %d x and %d y coordinates", ErrMismatchedArrays, len(xs), len(ys))
	}
	return vertices{xs: slices.Clone(xs), ys: slices.Clone(ys)}, nil
}

func verticesOf(pts []Point) vertices {
	v := vertices{xs: make([]float64, len(pts)), ys: make([]float64, len(pts))}
	for i, pt := range pts {
		v.xs[i], v.ys[i] = pt.X, pt.Y
	}
	return v
}

func (v vertices) clone() vertices {
	return vertices{xs: slices.Clone(v.xs), ys: slices.Clone(v.ys)}
}

// Len returns the number of vertices.
func (v *vertices) Len() int { return len(v.xs) }

// Vertex returns vertex i.
func (v *vertices) Vertex(i int) (Point, error) {
	if err := checkIndex("vertex", i, len(v.xs)); err != nil {
		return Point{}, err
	}
	return Pt(v.xs[i], v.ys[i]), nil
}

// Points returns a copy of the vertices.
func (v *vertices) Points() []Point {
	pts := make([]Point, len(v.xs))
	for i := range pts {
		pts[i] = Pt(v.xs[i], v.ys[i])
	}
	return pts
}

// XS returns a copy of the x coordinates.
func (v *vertices) XS() []float64 { return slices.Clone(v.xs) }

// YS returns a copy of the y coordinates.
func (v *vertices) YS() []float64 { return slices.Clone(v.ys) }

// NearestVertex returns the index of the vertex closest to (x, y), the
// lowest index on ties, or -1 when there are no vertices.
func (v *vertices) NearestVertex(x, y float64) int {
	best, bestDist := -1, math.Inf(1)
	for i := range v.xs {
		if d := Pt(v.xs[i], v.ys[i]).DistanceSquared(Pt(x, y)); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func (v *vertices) insert(s *shapeBase, i int, pt Point) error {
	if err := checkIndex("vertex", i, len(v.xs)+1); err != nil {
		return err
	}
	v.xs = slices.Insert(v.xs, i, pt.X)
	v.ys = slices.Insert(v.ys, i, pt.Y)
	s.changed()
	return nil
}

func (v *vertices) delete(s *shapeBase, i int) error {
	if err := checkIndex("vertex", i, len(v.xs)); err != nil {
		return err
	}
	v.xs = slices.Delete(v.xs, i, i+1)
	v.ys = slices.Delete(v.ys, i, i+1)
	s.changed()
	return nil
}

func (v *vertices) set(s *shapeBase, i int, pt Point) error {
	if err := checkIndex("control point", i, len(v.xs)); err != nil {
		return err
	}
	setPoint(s, &v.xs[i], &v.ys[i], pt)
	return nil
}

func (v *vertices) transform(s *shapeBase, m Matrix) {
	for i := range v.xs {
		pt := m.TransformPoint(Pt(v.xs[i], v.ys[i]))
		v.xs[i], v.ys[i] = pt.X, pt.Y
	}
	s.changed()
}

func (v *vertices) geometry() []float64 {
	g := make([]float64, 0, 2*len(v.xs))
	for i := range v.xs {
		g = append(g, v.xs[i], v.ys[i])
	}
	return g
}

func (v *vertices) shape(closed bool) *Path {
	p := NewPath()
	p.AddPolygon(v.Points(), closed)
	return p
}

// Polygon is a closed, fillable vertex list.
type Polygon struct {
	fillBase
	vertices
}

// NewPolygon creates a polygon from parallel coordinate arrays. Arrays of
// different length fail with ErrMismatchedArrays.
func NewPolygon(xs, ys []float64) (*Polygon, error) {
	v, err := newVertices(xs, ys)
	if err != nil {
		return nil, err
	}
	return &Polygon{vertices: v}, nil
}

// PolygonOf creates a polygon through the given points.
func PolygonOf(pts ...Point) *Polygon {
	return &Polygon{vertices: verticesOf(pts)}
}

// InsertVertex inserts pt before vertex i; i may equal Len to append.
func (p *Polygon) InsertVertex(i int, pt Point) error { return p.insert(&p.shapeBase, i, pt) }

// DeleteVertex removes vertex i.
func (p *Polygon) DeleteVertex(i int) error { return p.delete(&p.shapeBase, i) }

// Kind returns KindPolygon.
func (p *Polygon) Kind() Kind { return KindPolygon }

// Geometry returns the vertices as interleaved x, y pairs.
func (p *Polygon) Geometry() []float64 { return p.geometry() }

// ToShape returns the closed outline through every vertex.
func (p *Polygon) ToShape() *Path {
	return p.cache.get(p.Geometry(), func() *Path { return p.shape(true) })
}

// Paint implements Renderable.
func (p *Polygon) Paint(c Canvas) { paintShape(c, p.ToShape(), p.filled) }

// Bounds returns the smallest rectangle containing the shape.
func (p *Polygon) Bounds() Rect { return boundsOfPoints(p.Points()...) }

// AddToBounds returns r extended by the bounds of the shape.
func (p *Polygon) AddToBounds(r Rect) Rect { return r.Union(p.Bounds()) }

// Translate moves the shape by (dx, dy).
func (p *Polygon) Translate(dx, dy float64) { _ = p.ApplyTransform(Translate(dx, dy)) }

// ApplyTransform maps every vertex through m.
func (p *Polygon) ApplyTransform(m Matrix) error {
	p.transform(&p.shapeBase, m)
	return nil
}

// ControlPointCount implements ControlPointEditable.
func (p *Polygon) ControlPointCount() int { return p.Len() }

// ControlPoints appends one handle per vertex.
func (p *Polygon) ControlPoints(dst []ControlPoint) []ControlPoint {
	return appendControlPoints(dst, p.Points(), p.ControlPointKinds())
}

// ControlPointKinds reports the kind of every handle, in index order.
func (p *Polygon) ControlPointKinds() []ControlPointKind { return repeatKind(HandlePoint, p.Len()) }

// SetControlPoint moves vertex i.
func (p *Polygon) SetControlPoint(i int, pt Point) error { return p.set(&p.shapeBase, i, pt) }

// VirtualControlPoints returns nil; every handle is a physical point.
func (p *Polygon) VirtualControlPoints() []int { return nil }

// Snapshot captures the vertex arrays by value.
func (p *Polygon) Snapshot() Snapshot {
	return restorable(p, func(v Polygon) Polygon {
		v.vertices = v.vertices.clone()
		return v
	})
}

// Copy returns a deep copy; the vertex arrays are not shared.
func (p *Polygon) Copy() Primitive {
	return &Polygon{fillBase: fillBase{shapeBase: shapeBase{Versioning: p.Versioning}, filled: p.filled}, vertices: p.vertices.clone()}
}

// CopyTransformed returns a transformed copy at revision+1, leaving the
// receiver untouched.
func (p *Polygon) CopyTransformed(m Matrix) (Primitive, error) { return copyTransformed(p, m) }

// Equal compares kind and geometry.
func (p *Polygon) Equal(other Primitive) bool { return sameValues(p, other) }

// Polyline is an open vertex list. It is always stroked.
type Polyline struct {
	shapeBase
	vertices
}

// NewPolyline creates a polyline from parallel coordinate arrays. Arrays of
// different length fail with ErrMismatchedArrays.
func NewPolyline(xs, ys []float64) (*Polyline, error) {
	v, err := newVertices(xs, ys)
	if err != nil {
		return nil, err
	}
	return &Polyline{vertices: v}, nil
}

// PolylineOf creates a polyline through the given points.
func PolylineOf(pts ...Point) *Polyline {
	return &Polyline{vertices: verticesOf(pts)}
}

// InsertVertex inserts pt before vertex i; i may equal Len to append.
func (p *Polyline) InsertVertex(i int, pt Point) error { return p.insert(&p.shapeBase, i, pt) }

// DeleteVertex removes vertex i.
func (p *Polyline) DeleteVertex(i int) error { return p.delete(&p.shapeBase, i) }

// Kind returns KindPolyline.
func (p *Polyline) Kind() Kind { return KindPolyline }

// Geometry returns the vertices as interleaved x, y pairs.
func (p *Polyline) Geometry() []float64 { return p.geometry() }

// ToShape returns the open path through every vertex.
func (p *Polyline) ToShape() *Path {
	return p.cache.get(p.Geometry(), func() *Path { return p.shape(false) })
}

// Paint strokes the polyline.
func (p *Polyline) Paint(c Canvas) { c.StrokePath(p.ToShape()) }

// Bounds returns the box around the vertices.
func (p *Polyline) Bounds() Rect { return boundsOfPoints(p.Points()...) }

// AddToBounds implements Primitive.
func (p *Polyline) AddToBounds(r Rect) Rect { return r.Union(p.Bounds()) }

// Translate implements Transformable.
func (p *Polyline) Translate(dx, dy float64) { _ = p.ApplyTransform(Translate(dx, dy)) }

// ApplyTransform maps every vertex through m.
func (p *Polyline) ApplyTransform(m Matrix) error {
	p.transform(&p.shapeBase, m)
	return nil
}

// ControlPointCount returns the number of handles.
func (p *Polyline) ControlPointCount() int { return p.Len() }

// ControlPoints implements ControlPointEditable.
func (p *Polyline) ControlPoints(dst []ControlPoint) []ControlPoint {
	return appendControlPoints(dst, p.Points(), p.ControlPointKinds())
}

// ControlPointKinds implements ControlPointEditable.
func (p *Polyline) ControlPointKinds() []ControlPointKind { return repeatKind(HandlePoint, p.Len()) }

// SetControlPoint moves vertex i.
func (p *Polyline) SetControlPoint(i int, pt Point) error { return p.set(&p.shapeBase, i, pt) }

// VirtualControlPoints implements ControlPointEditable.
func (p *Polyline) VirtualControlPoints() []int { return nil }

// Snapshot captures the vertex arrays by value.
func (p *Polyline) Snapshot() Snapshot {
	return restorable(p, func(v Polyline) Polyline {
		v.vertices = v.vertices.clone()
		return v
	})
}

// Copy returns a deep copy at the same revision.
func (p *Polyline) Copy() Primitive {
	return &Polyline{shapeBase: shapeBase{Versioning: p.Versioning}, vertices: p.vertices.clone()}
}

// CopyTransformed implements Primitive.
func (p *Polyline) CopyTransformed(m Matrix) (Primitive, error) { return copyTransformed(p, m) }

// Equal reports whether other is the same variant with the same geometry
// and fill.
func (p *Polyline) Equal(other Primitive) bool { return sameValues(p, other) }
