package vecedit

import (
	"math"
	"slices"
)

// Structural editing of a Path: insertion, deletion, nearest-point queries,
// contour splitting, simplification and spline resampling.

// Insert inserts seg before index i. i may equal Len() to append.
func (p *Path) Insert(i int, seg Segment) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := checkIndex("segment", i, len(p.segs)+1); err != nil {
		return err
	}
	p.segs = slices.Insert(p.segs, i, seg)
	return nil
}

// Delete removes the segment at index i and reports whether it did.
// It refuses (returning false) when i is out of range, when i is a MoveTo
// that drawing segments still depend on, or when i is a Close followed by
// drawing segments that continue from the closed contour's start.
func (p *Path) Delete(i int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.segs) {
		return false
	}
	switch p.segs[i].Tag {
	case TagMoveTo, TagClose:
		if i+1 < len(p.segs) && p.segs[i+1].Tag != TagMoveTo {
			return false
		}
	}
	p.segs = slices.Delete(p.segs, i, i+1)
	return true
}

// Nearest returns the index of the segment whose primary point is closest
// to (x, y). Ties go to the lowest index. It returns -1 when no segment has
// a primary point (for example on an empty path).
func (p *Path) Nearest(x, y float64) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return nearestIndex(p.segs, Pt(x, y))
}

func nearestIndex(segs []Segment, pt Point) int {
	best, bestDist := -1, math.Inf(1)
	for i, s := range segs {
		pp, ok := s.PrimaryPoint()
		if !ok {
			continue
		}
		if d := pp.DistanceSquared(pt); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// primaryDistance returns the distance from pt to the primary point of
// segs[i], or +Inf when i is out of range or the segment has none.
func primaryDistance(segs []Segment, i int, pt Point) float64 {
	if i < 0 || i >= len(segs) {
		return math.Inf(1)
	}
	pp, ok := segs[i].PrimaryPoint()
	if !ok {
		return math.Inf(1)
	}
	return pp.Distance(pt)
}

// AddNear splices seg into the path next to the segment whose primary point
// is nearest to seg's primary point and returns the index it was stored at.
// It is inserted before that neighbor when the neighbor's predecessor is
// closer to the new point than its successor, after it otherwise.
// Segments without a primary point, and paths without any, append.
func (p *Path) AddNear(seg Segment) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	pt, ok := seg.PrimaryPoint()
	n := -1
	if ok && seg.Tag != TagMoveTo {
		n = nearestIndex(p.segs, pt)
	}
	if n < 0 {
		p.segs = append(p.segs, seg)
		return len(p.segs) - 1
	}

	at := n + 1
	if primaryDistance(p.segs, n-1, pt) < primaryDistance(p.segs, n+1, pt) && p.segs[n].Tag != TagMoveTo {
		at = n
	}
	p.segs = slices.Insert(p.segs, at, seg)
	return at
}

// Split breaks the path into independent paths at every MoveTo.
// Segments before the first MoveTo form a path of their own.
func (p *Path) Split() []*Path {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var out []*Path
	start := 0
	for i, s := range p.segs {
		if s.Tag == TagMoveTo && i > start {
			out = append(out, PathOf(p.segs[start:i]...))
			start = i
		}
	}
	if start < len(p.segs) {
		out = append(out, PathOf(p.segs[start:]...))
	}
	return out
}

// DefaultTolerance returns the simplification tolerance used by
// SimplifyDefault: 5% of the diagonal of the path's bounds.
func (p *Path) DefaultTolerance() float64 {
	return 0.05 * p.Bounds().Diagonal()
}

// SimplifyDefault simplifies the path with DefaultTolerance.
func (p *Path) SimplifyDefault() int {
	return p.Simplify(p.DefaultTolerance())
}

// Simplify drops segments that repeat the type of the segment kept before
// them and whose primary point lies within tolerance of that segment's
// primary point. MoveTo and Close segments are never dropped. It returns
// the number of segments removed.
func (p *Path) Simplify(tolerance float64) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.segs) < 2 {
		return 0
	}

	kept := p.segs[:1]
	for _, s := range p.segs[1:] {
		last := kept[len(kept)-1]
		if s.Tag == last.Tag && s.Tag != TagMoveTo && s.Tag != TagClose {
			a, _ := last.PrimaryPoint()
			b, _ := s.PrimaryPoint()
			if a.Distance(b) <= tolerance {
				continue
			}
		}
		kept = append(kept, s)
	}
	removed := len(p.segs) - len(kept)
	clear(p.segs[len(kept):])
	p.segs = kept
	if removed > 0 {
		Logger().Debug("vecedit: path simplified", "tolerance", tolerance, "removed", removed, "remaining", len(kept))
	}
	return removed
}

// EnsureClosed appends a Close segment unless the path already ends with
// one or its first and last primary points coincide exactly. It reports
// whether a segment was appended. Empty paths are left alone.
func (p *Path) EnsureClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.segs) == 0 || p.segs[len(p.segs)-1].Tag == TagClose {
		return false
	}
	first, okFirst := p.segs[0].PrimaryPoint()
	last, okLast := p.segs[len(p.segs)-1].PrimaryPoint()
	if okFirst && okLast && first == last {
		return false
	}
	p.segs = append(p.segs, CloseSeg())
	return true
}

// ToQuads converts every LineTo into a QuadTo whose control point sits on
// the line's end point. It returns the number of segments converted.
func (p *Path) ToQuads() int {
	return p.resampleLines(func(end Point) Segment {
		return QuadSeg(end.X, end.Y, end.X, end.Y)
	})
}

// ToCubics converts every LineTo into a CubicTo whose control points sit on
// the line's end point. It returns the number of segments converted.
func (p *Path) ToCubics() int {
	return p.resampleLines(func(end Point) Segment {
		return CubicSeg(end.X, end.Y, end.X, end.Y, end.X, end.Y)
	})
}

func (p *Path) resampleLines(curve func(end Point) Segment) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for i, s := range p.segs {
		if s.Tag == TagLineTo {
			p.segs[i] = curve(s.Point(0))
			n++
		}
	}
	return n
}

// ResetControlPoints places every curve handle at the midpoint between the
// primary points of the curve's neighbors (the previous segment's and the
// next segment's), smoothing curvature after manual edits. A curve without
// a following primary point uses its own end point. It returns the number
// of curve segments updated.
func (p *Path) ResetControlPoints() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for i, s := range p.segs {
		if !s.Tag.IsCurve() {
			continue
		}
		end, _ := s.PrimaryPoint()
		prev, ok := primaryBefore(p.segs, i)
		if !ok {
			prev = end
		}
		next, ok := primaryAfter(p.segs, i)
		if !ok {
			next = end
		}
		mid := prev.Mid(next)
		for k := range s.PointCount() - 1 {
			s = s.WithPoint(k, mid)
		}
		p.segs[i] = s
		n++
	}
	return n
}

func primaryBefore(segs []Segment, i int) (Point, bool) {
	if i > 0 {
		return segs[i-1].PrimaryPoint()
	}
	return Point{}, false
}

// primaryAfter returns the primary point of the next segment in the same
// contour.
func primaryAfter(segs []Segment, i int) (Point, bool) {
	if i+1 < len(segs) && segs[i+1].Tag != TagMoveTo {
		return segs[i+1].PrimaryPoint()
	}
	return Point{}, false
}
