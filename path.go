package vecedit

import (
	"fmt"
	"iter"
	"slices"
	"sync"
)

// Path is an ordered, editable sequence of segments.
//
// Path is safe for concurrent use: a renderer may read it (All, Bounds,
// Flatten) while an editor mutates it from another goroutine. A Path must
// not be copied after first use; use Clone.
type Path struct {
	mu   sync.RWMutex
	segs []Segment
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		segs: make([]Segment, 0, 16),
	}
}

// PathOf creates a path holding the given segments.
func PathOf(segs ...Segment) *Path {
	return &Path{segs: slices.Clone(segs)}
}

// Unpack creates a path from any segment sequence, for example another
// path's All, a glyph outline or a parsed path-data string.
func Unpack(seq iter.Seq[Segment]) *Path {
	p := NewPath()
	p.Unpack(seq)
	return p
}

// FromArrays rebuilds a path from the flat representation returned by Tags
// and Coords. It fails with a *SegmentError for an unknown tag and with
// ErrMismatchedArrays when coords does not hold exactly the coordinates the
// tags require.
func FromArrays(tags []SegmentTag, coords []float64) (*Path, error) {
	p := &Path{segs: make([]Segment, 0, len(tags))}
	off := 0
	for _, tag := range tags {
		n := tag.CoordCount()
		if !tag.Valid() {
			return nil, &SegmentError{Tag: tag}
		}
		if off+n > len(coords) {
			return nil, fmt.Errorf("%w: %d tags need more than %d coordinates", ErrMismatchedArrays, len(tags), len(coords))
		}
		seg, err := NewSegment(tag, coords[off:off+n]...)
		if err != nil {
			return nil, err
		}
		p.segs = append(p.segs, seg)
		off += n
	}
	if off != len(coords) {
		return nil, fmt.Errorf("%w: %d coordinates left over", ErrMismatchedArrays, len(coords)-off)
	}
	return p, nil
}

// Unpack replaces the contents of p with the segments of seq.
func (p *Path) Unpack(seq iter.Seq[Segment]) {
	segs := slices.Collect(seq)
	p.mu.Lock()
	p.segs = segs
	p.mu.Unlock()
}

// Append adds segments to the end of the path.
func (p *Path) Append(segs ...Segment) {
	p.mu.Lock()
	p.segs = append(p.segs, segs...)
	p.mu.Unlock()
}

// MoveTo starts a new contour.
func (p *Path) MoveTo(x, y float64) { p.Append(MoveSeg(x, y)) }

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) { p.Append(LineSeg(x, y)) }

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) { p.Append(QuadSeg(cx, cy, x, y)) }

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.Append(CubicSeg(c1x, c1y, c2x, c2y, x, y))
}

// Close closes the current contour.
func (p *Path) Close() { p.Append(CloseSeg()) }

// Reset removes all segments from the path.
func (p *Path) Reset() {
	p.mu.Lock()
	p.segs = p.segs[:0]
	p.mu.Unlock()
}

// Len returns the number of segments.
func (p *Path) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.segs)
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return p.Len() == 0
}

// Segment returns the segment at index i.
func (p *Path) Segment(i int) (Segment, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if err := checkIndex("segment", i, len(p.segs)); err != nil {
		return Segment{}, err
	}
	return p.segs[i], nil
}

// Segments returns a copy of the segment list.
func (p *Path) Segments() []Segment {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.segs)
}

// All returns an iterator over the segments. When m is non-nil every
// segment is transformed on read; the path itself is never modified.
// The iterator works on a snapshot taken when iteration starts, so the
// loop body may edit the path.
func (p *Path) All(m *Matrix) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for _, s := range p.Segments() {
			if m != nil {
				s = s.Transform(*m)
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	return &Path{segs: p.Segments()}
}

// Equal reports whether both paths hold exactly the same segments.
func (p *Path) Equal(q *Path) bool {
	if p == q {
		return true
	}
	if p == nil || q == nil {
		return false
	}
	return slices.Equal(p.Segments(), q.Segments())
}

// Transform maps every coordinate of the path through m in place.
func (p *Path) Transform(m Matrix) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.segs {
		p.segs[i] = p.segs[i].Transform(m)
	}
}

// Transformed returns a transformed copy of the path.
func (p *Path) Transformed(m Matrix) *Path {
	return Unpack(p.All(&m))
}

// Tags returns the segment tags in order.
func (p *Path) Tags() []SegmentTag {
	p.mu.RLock()
	defer p.mu.RUnlock()
	tags := make([]SegmentTag, len(p.segs))
	for i, s := range p.segs {
		tags[i] = s.Tag
	}
	return tags
}

// Coords returns every meaningful coordinate of the path, flattened in
// segment order. Together with Tags it fully describes the path.
func (p *Path) Coords() []float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var coords []float64
	for _, s := range p.segs {
		coords = append(coords, s.c[:s.Tag.CoordCount()]...)
	}
	return coords
}

// PointCount returns the total number of coordinate pairs in the path.
func (p *Path) PointCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	n := 0
	for _, s := range p.segs {
		n += s.PointCount()
	}
	return n
}

// locatePoint maps a flat coordinate-pair index to (segment, pair).
// Must be called with the lock held.
func (p *Path) locatePoint(idx int) (seg, k int, ok bool) {
	if idx < 0 {
		return 0, 0, false
	}
	for i, s := range p.segs {
		n := s.PointCount()
		if idx < n {
			return i, idx, true
		}
		idx -= n
	}
	return 0, 0, false
}

// SetPointAt replaces the coordinate pair at flat index idx, counting pairs
// across all segments in order. It reports whether the stored value changed.
func (p *Path) SetPointAt(idx int, pt Point) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i, k, ok := p.locatePoint(idx)
	if !ok {
		n := 0
		for _, s := range p.segs {
			n += s.PointCount()
		}
		return false, &IndexError{What: "point", Index: idx, Len: n}
	}
	if p.segs[i].Point(k) == pt {
		return false, nil
	}
	p.segs[i] = p.segs[i].WithPoint(k, pt)
	return true, nil
}

// SetPoint replaces coordinate pair k of segment i.
// It reports whether the stored value changed.
func (p *Path) SetPoint(i, k int, pt Point) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := checkIndex("segment", i, len(p.segs)); err != nil {
		return false, err
	}
	s := p.segs[i]
	if err := checkIndex("segment point", k, s.PointCount()); err != nil {
		return false, err
	}
	if s.Point(k) == pt {
		return false, nil
	}
	p.segs[i] = s.WithPoint(k, pt)
	return true, nil
}
