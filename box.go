package vecedit

// box is the axis-aligned frame shared by Rectangle, Oval, Arc, RoundRect,
// Clear and Image. Width and height are never negative.
type box struct {
	x, y, w, h float64
}

func newBox(x, y, w, h float64) box {
	r := NewRect(Pt(x, y), Pt(x+w, y+h))
	return box{x: r.Min.X, y: r.Min.Y, w: r.Width(), h: r.Height()}
}

// X returns the left edge.
func (b *box) X() float64 { return b.x }

// Y returns the top edge.
func (b *box) Y() float64 { return b.y }

// Width returns the frame width.
func (b *box) Width() float64 { return b.w }

// Height returns the frame height.
func (b *box) Height() float64 { return b.h }

// Frame returns the frame as a Rect.
func (b *box) Frame() Rect { return RectXYWH(b.x, b.y, b.w, b.h) }

// corners returns the corners in the order top-left, top-right,
// bottom-right, bottom-left.
func (b *box) corners() []Point {
	return []Point{
		Pt(b.x, b.y),
		Pt(b.x+b.w, b.y),
		Pt(b.x+b.w, b.y+b.h),
		Pt(b.x, b.y+b.h),
	}
}

func boxKinds() []ControlPointKind { return repeatKind(HandlePoint, 4) }

func (b *box) setFrame(s *shapeBase, x, y, w, h float64) {
	nb := newBox(x, y, w, h)
	if nb != *b {
		*b = nb
		s.changed()
	}
}

// setCorner moves corner i to pt, keeping the opposite corner fixed.
// The frame is renormalized when the drag crosses the opposite corner.
func (b *box) setCorner(s *shapeBase, i int, pt Point) error {
	if err := checkIndex("control point", i, 4); err != nil {
		return err
	}
	opposite := b.corners()[(i+2)%4]
	r := NewRect(pt, opposite)
	b.setFrame(s, r.Min.X, r.Min.Y, r.Width(), r.Height())
	return nil
}

// transform maps the frame through m. Only scale and translation keep a
// box a box; anything else fails with ErrNonAxisTransform.
func (b *box) transform(s *shapeBase, m Matrix) error {
	if !m.IsAxisAligned() {
		return ErrNonAxisTransform
	}
	r := NewRect(m.TransformPoint(Pt(b.x, b.y)), m.TransformPoint(Pt(b.x+b.w, b.y+b.h)))
	*b = box{x: r.Min.X, y: r.Min.Y, w: r.Width(), h: r.Height()}
	s.changed()
	return nil
}

func (b *box) geometry() []float64 {
	return []float64{b.x, b.y, b.w, b.h}
}

