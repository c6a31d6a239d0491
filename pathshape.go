package vecedit

import "slices"

// PathShape is a free-form primitive backed by a Path. Every coordinate
// pair of every segment is a control point: end points are HandlePoint and
// Bezier handles are HandleCurve.
type PathShape struct {
	fillBase
	path *Path
}

// NewPathShape creates a shape holding a copy of p. A nil p gives an empty
// shape.
func NewPathShape(p *Path) *PathShape {
	if p == nil {
		return &PathShape{path: NewPath()}
	}
	return &PathShape{path: p.Clone()}
}

// Path returns a copy of the backing path.
func (s *PathShape) Path() *Path { return s.path.Clone() }

// SetPath replaces the backing path with a copy of p.
func (s *PathShape) SetPath(p *Path) {
	if p == nil {
		p = NewPath()
	}
	if s.path.Equal(p) {
		return
	}
	s.path = p.Clone()
	s.changed()
}

// Edit runs fn on the backing path and records a change if fn modified it.
// fn must not retain p.
func (s *PathShape) Edit(fn func(p *Path)) {
	before := s.path.Segments()
	fn(s.path)
	if !slices.Equal(before, s.path.Segments()) {
		s.changed()
	}
}

// Kind returns KindPath.
func (s *PathShape) Kind() Kind { return KindPath }

// Geometry returns, for every segment, its tag followed by its coordinates.
func (s *PathShape) Geometry() []float64 { return pathGeometry(s.path) }

// ToShape returns a copy of the backing path.
func (s *PathShape) ToShape() *Path {
	return s.cache.get(s.Geometry(), s.path.Clone)
}

// Paint fills the shape when filled, and strokes it otherwise.
func (s *PathShape) Paint(c Canvas) { paintShape(c, s.ToShape(), s.filled) }

// Bounds returns the tight bounds of the path, curves included.
func (s *PathShape) Bounds() Rect { return s.path.Bounds() }

// AddToBounds unions the given rectangle with Bounds.
func (s *PathShape) AddToBounds(r Rect) Rect { return r.Union(s.Bounds()) }

// Translate is ApplyTransform with a translation.
func (s *PathShape) Translate(dx, dy float64) { _ = s.ApplyTransform(Translate(dx, dy)) }

// ApplyTransform transforms the path in place. It never fails.
func (s *PathShape) ApplyTransform(m Matrix) error {
	s.path.Transform(m)
	s.changed()
	return nil
}

// ControlPointCount returns the number of handles.
func (s *PathShape) ControlPointCount() int { return s.path.PointCount() }

// ControlPoints appends one handle per coordinate pair: curve handles as
// HandleCurve, segment end points as HandlePoint.
func (s *PathShape) ControlPoints(dst []ControlPoint) []ControlPoint {
	return appendPathControlPoints(dst, s.path, 0)
}

// ControlPointKinds implements ControlPointEditable.
func (s *PathShape) ControlPointKinds() []ControlPointKind { return pathControlPointKinds(s.path) }

// SetControlPoint moves the coordinate pair behind control point i.
func (s *PathShape) SetControlPoint(i int, pt Point) error {
	changed, err := s.path.SetPointAt(i, pt)
	if err != nil {
		return err
	}
	if changed {
		s.changed()
	}
	return nil
}

// VirtualControlPoints implements ControlPointEditable.
func (s *PathShape) VirtualControlPoints() []int { return nil }

// Snapshot captures a clone of the path.
func (s *PathShape) Snapshot() Snapshot {
	return restorable(s, func(v PathShape) PathShape {
		v.path = v.path.Clone()
		return v
	})
}

// Copy returns a copy with its own path.
func (s *PathShape) Copy() Primitive {
	return &PathShape{
		fillBase: fillBase{shapeBase: shapeBase{Versioning: s.Versioning}, filled: s.filled},
		path:     s.path.Clone(),
	}
}

// CopyTransformed copies the shape and applies m to the copy.
func (s *PathShape) CopyTransformed(m Matrix) (Primitive, error) { return copyTransformed(s, m) }

// Equal implements Primitive.
func (s *PathShape) Equal(other Primitive) bool { return sameValues(s, other) }

// appendPathControlPoints appends a control point for every coordinate pair
// of p, numbering them from base.
func appendPathControlPoints(dst []ControlPoint, p *Path, base int) []ControlPoint {
	idx := base
	for seg := range p.All(nil) {
		n := seg.PointCount()
		for k := range n {
			kind := HandleCurve
			if k == n-1 {
				kind = HandlePoint
			}
			dst = append(dst, ControlPoint{Index: idx, Point: seg.Point(k), Kind: kind})
			idx++
		}
	}
	return dst
}

func pathControlPointKinds(p *Path) []ControlPointKind {
	var kinds []ControlPointKind
	for _, cp := range appendPathControlPoints(nil, p, 0) {
		kinds = append(kinds, cp.Kind)
	}
	return kinds
}

func pathGeometry(p *Path) []float64 {
	var g []float64
	for seg := range p.All(nil) {
		g = append(g, float64(seg.Tag))
		g = append(g, seg.Coords()...)
	}
	return g
}
