package raster

import (
	"golang.org/x/image/vector"

	"github.com/gogpu/vecedit"
)

// addPath feeds p to the rasterizer. Every contour is closed: the
// rasterizer accumulates signed area and an open contour would leak
// coverage to the right of its last edge.
func addPath(ras *vector.Rasterizer, p *vecedit.Path) {
	open := false
	for s := range p.All(nil) {
		if s.Tag != vecedit.TagMoveTo && s.Tag != vecedit.TagClose && !open {
			// Drawing without a MoveTo starts at the origin.
			ras.MoveTo(0, 0)
			open = true
		}
		switch s.Tag {
		case vecedit.TagMoveTo:
			if open {
				ras.ClosePath()
			}
			pt := s.Point(0)
			ras.MoveTo(f32(pt.X), f32(pt.Y))
			open = true
		case vecedit.TagLineTo:
			pt := s.Point(0)
			ras.LineTo(f32(pt.X), f32(pt.Y))
		case vecedit.TagQuadTo:
			c, pt := s.Point(0), s.Point(1)
			ras.QuadTo(f32(c.X), f32(c.Y), f32(pt.X), f32(pt.Y))
		case vecedit.TagCubicTo:
			c1, c2, pt := s.Point(0), s.Point(1), s.Point(2)
			ras.CubeTo(f32(c1.X), f32(c1.Y), f32(c2.X), f32(c2.Y), f32(pt.X), f32(pt.Y))
		case vecedit.TagClose:
			if open {
				ras.ClosePath()
				open = false
			}
		}
	}
	if open {
		ras.ClosePath()
	}
}

// strokeContour adds the outline of a stroked contour of half width hw.
// Each edge becomes a quad and each interior vertex a bevel triangle, all
// wound the same way so overlapping pieces never cancel.
func strokeContour(ras *vector.Rasterizer, pl vecedit.Contour, hw float64) {
	pts := dedupe(pl.Points)
	if len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		n := normal(a, b).Mul(hw)
		polygon(ras, a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
	}
	for i := 1; i < len(pts)-1; i++ {
		join(ras, pts[i-1], pts[i], pts[i+1], hw)
	}
	if pl.Closed && len(pts) > 2 && pts[0] == pts[len(pts)-1] {
		join(ras, pts[len(pts)-2], pts[0], pts[1], hw)
	}
}

// join adds the bevel between edges a-b and b-c on the outer side of the turn.
func join(ras *vector.Rasterizer, a, b, c vecedit.Point, hw float64) {
	n1 := normal(a, b).Mul(hw)
	n2 := normal(b, c).Mul(hw)
	if b.Sub(a).Cross(c.Sub(b)) > 0 {
		n1, n2 = n1.Mul(-1), n2.Mul(-1)
	}
	polygon(ras, b, b.Add(n1), b.Add(n2))
}

// polygon adds a closed polygon with positive signed area.
func polygon(ras *vector.Rasterizer, pts ...vecedit.Point) {
	var area float64
	for i, p := range pts {
		area += p.Cross(pts[(i+1)%len(pts)])
	}
	if area == 0 {
		return
	}
	if area < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	ras.MoveTo(f32(pts[0].X), f32(pts[0].Y))
	for _, p := range pts[1:] {
		ras.LineTo(f32(p.X), f32(p.Y))
	}
	ras.ClosePath()
}

// normal returns the unit left normal of a->b.
func normal(a, b vecedit.Point) vecedit.Point {
	d := b.Sub(a)
	l := d.Length()
	return vecedit.Pt(-d.Y/l, d.X/l)
}

func dedupe(pts []vecedit.Point) []vecedit.Point {
	out := make([]vecedit.Point, 0, len(pts))
	for _, p := range pts {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	return out
}

func f32(v float64) float32 { return float32(v) }
