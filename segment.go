package vecedit

// SegmentTag identifies the instruction of a path segment.
type SegmentTag uint8

const (
	// TagMoveTo starts a new contour at (x, y).
	TagMoveTo SegmentTag = iota

	// TagLineTo draws a straight line to (x, y).
	TagLineTo

	// TagQuadTo draws a quadratic Bezier curve through control (cx, cy) to (x, y).
	TagQuadTo

	// TagCubicTo draws a cubic Bezier curve through (c1x, c1y), (c2x, c2y) to (x, y).
	TagCubicTo

	// TagClose closes the current contour. It carries no coordinates.
	TagClose
)

// String returns a string representation of the tag.
func (t SegmentTag) String() string {
	switch t {
	case TagMoveTo:
		return "MoveTo"
	case TagLineTo:
		return "LineTo"
	case TagQuadTo:
		return "QuadTo"
	case TagCubicTo:
		return "CubicTo"
	case TagClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is a known tag.
func (t SegmentTag) Valid() bool {
	return t <= TagClose
}

// CoordCount returns the number of coordinates (not points) carried by a
// segment with this tag: 2 for MoveTo and LineTo, 4 for QuadTo, 6 for
// CubicTo and 0 for Close.
func (t SegmentTag) CoordCount() int {
	switch t {
	case TagMoveTo, TagLineTo:
		return 2
	case TagQuadTo:
		return 4
	case TagCubicTo:
		return 6
	default:
		return 0
	}
}

// IsCurve reports whether the tag carries curve control handles.
func (t SegmentTag) IsCurve() bool {
	return t == TagQuadTo || t == TagCubicTo
}

// Segment is a single path instruction with its coordinate payload.
// Segments are plain values; unused payload slots are always zero so two
// segments can be compared with ==.
type Segment struct {
	Tag SegmentTag
	c   [6]float64
}

// NewSegment creates a segment, validating that len(coords) matches the tag.
func NewSegment(tag SegmentTag, coords ...float64) (Segment, error) {
	if !tag.Valid() || len(coords) != tag.CoordCount() {
		return Segment{}, &SegmentError{Tag: tag, Got: len(coords)}
	}
	s := Segment{Tag: tag}
	copy(s.c[:], coords)
	return s, nil
}

// MoveSeg returns a MoveTo segment.
func MoveSeg(x, y float64) Segment {
	return Segment{Tag: TagMoveTo, c: [6]float64{x, y}}
}

// LineSeg returns a LineTo segment.
func LineSeg(x, y float64) Segment {
	return Segment{Tag: TagLineTo, c: [6]float64{x, y}}
}

// QuadSeg returns a QuadTo segment.
func QuadSeg(cx, cy, x, y float64) Segment {
	return Segment{Tag: TagQuadTo, c: [6]float64{cx, cy, x, y}}
}

// CubicSeg returns a CubicTo segment.
func CubicSeg(c1x, c1y, c2x, c2y, x, y float64) Segment {
	return Segment{Tag: TagCubicTo, c: [6]float64{c1x, c1y, c2x, c2y, x, y}}
}

// CloseSeg returns a Close segment.
func CloseSeg() Segment {
	return Segment{Tag: TagClose}
}

// Coords returns a copy of the meaningful coordinates.
func (s Segment) Coords() []float64 {
	out := make([]float64, s.Tag.CoordCount())
	copy(out, s.c[:])
	return out
}

// PointCount returns the number of coordinate pairs in the segment.
func (s Segment) PointCount() int {
	return s.Tag.CoordCount() / 2
}

// Point returns the k-th coordinate pair. The last pair is the end point.
func (s Segment) Point(k int) Point {
	return Point{X: s.c[2*k], Y: s.c[2*k+1]}
}

// PrimaryPoint returns the final coordinate pair of the segment.
// ok is false for Close segments, which have no coordinates.
func (s Segment) PrimaryPoint() (p Point, ok bool) {
	n := s.PointCount()
	if n == 0 {
		return Point{}, false
	}
	return s.Point(n - 1), true
}

// WithPoint returns a copy of s with the k-th coordinate pair replaced.
func (s Segment) WithPoint(k int, p Point) Segment {
	s.c[2*k] = p.X
	s.c[2*k+1] = p.Y
	return s
}

// Transform returns the segment with every coordinate pair mapped through m.
func (s Segment) Transform(m Matrix) Segment {
	for k := range s.PointCount() {
		s = s.WithPoint(k, m.TransformPoint(s.Point(k)))
	}
	return s
}
