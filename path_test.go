package vecedit

import (
	"errors"
	"slices"
	"sync"
	"testing"
)

func TestNewSegment(t *testing.T) {
	tests := []struct {
		tag     SegmentTag
		coords  []float64
		wantErr bool
	}{
		{TagMoveTo, []float64{1, 2}, false},
		{TagLineTo, []float64{1, 2}, false},
		{TagQuadTo, []float64{1, 2, 3, 4}, false},
		{TagCubicTo, []float64{1, 2, 3, 4, 5, 6}, false},
		{TagClose, nil, false},
		{TagLineTo, []float64{1}, true},
		{TagClose, []float64{1, 2}, true},
		{SegmentTag(9), nil, true},
	}
	for _, tt := range tests {
		seg, err := NewSegment(tt.tag, tt.coords...)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewSegment(%v, %v) error = %v, wantErr %v", tt.tag, tt.coords, err, tt.wantErr)
			continue
		}
		if err != nil {
			var se *SegmentError
			if !errors.As(err, &se) || se.Tag != tt.tag {
				t.Errorf("error %v is not a *SegmentError for %v", err, tt.tag)
			}
			continue
		}
		if len(tt.coords) == 0 {
			tt.coords = []float64{}
		}
		diff(t, tt.coords, seg.Coords())
	}
}

func TestSegmentPoints(t *testing.T) {
	c := CubicSeg(1, 2, 3, 4, 5, 6)
	if c.PointCount() != 3 {
		t.Fatalf("PointCount() = %d", c.PointCount())
	}
	if p, ok := c.PrimaryPoint(); !ok || p != Pt(5, 6) {
		t.Errorf("PrimaryPoint() = %v, %v", p, ok)
	}
	if _, ok := CloseSeg().PrimaryPoint(); ok {
		t.Error("Close has a primary point")
	}

	moved := c.WithPoint(1, Pt(30, 40))
	if c.Point(1) != Pt(3, 4) {
		t.Error("WithPoint modified the receiver")
	}
	if moved != CubicSeg(1, 2, 30, 40, 5, 6) {
		t.Errorf("WithPoint = %v", moved.Coords())
	}

	if got := QuadSeg(1, 1, 2, 2).Transform(Translate(1, 0)); got != QuadSeg(2, 1, 3, 2) {
		t.Errorf("Transform = %v", got.Coords())
	}
	if CloseSeg().Transform(Translate(5, 5)) != CloseSeg() {
		t.Error("transformed Close gained coordinates")
	}
}

func TestSegmentTag(t *testing.T) {
	tests := []struct {
		tag   SegmentTag
		name  string
		n     int
		curve bool
	}{
		{TagMoveTo, "MoveTo", 2, false},
		{TagLineTo, "LineTo", 2, false},
		{TagQuadTo, "QuadTo", 4, true},
		{TagCubicTo, "CubicTo", 6, true},
		{TagClose, "Close", 0, false},
		{SegmentTag(42), "Unknown", 0, false},
	}
	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.tag.CoordCount(); got != tt.n {
			t.Errorf("%v.CoordCount() = %d, want %d", tt.tag, got, tt.n)
		}
		if got := tt.tag.IsCurve(); got != tt.curve {
			t.Errorf("%v.IsCurve() = %v", tt.tag, got)
		}
	}
	if SegmentTag(42).Valid() {
		t.Error("unknown tag reported valid")
	}
}

func TestPathArraysRoundTrip(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadTo(15, 5, 10, 10)
	p.CubicTo(8, 12, 2, 12, 0, 10)
	p.Close()

	tags, coords := p.Tags(), p.Coords()
	if len(coords) != 2+2+4+6 {
		t.Fatalf("len(Coords()) = %d", len(coords))
	}
	q, err := FromArrays(tags, coords)
	if err != nil {
		t.Fatal(err)
	}
	if !q.Equal(p) {
		t.Errorf("FromArrays(Tags, Coords) = %v, want %v", q, p)
	}
	if p.PointCount() != 1+1+2+3 {
		t.Errorf("PointCount() = %d", p.PointCount())
	}
}

func TestFromArraysErrors(t *testing.T) {
	tests := []struct {
		name   string
		tags   []SegmentTag
		coords []float64
		want   error
	}{
		{"too few", []SegmentTag{TagMoveTo, TagLineTo}, []float64{0, 0, 1}, ErrMismatchedArrays},
		{"too many", []SegmentTag{TagMoveTo}, []float64{0, 0, 1}, ErrMismatchedArrays},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromArrays(tt.tags, tt.coords); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	_, err := FromArrays([]SegmentTag{SegmentTag(7)}, nil)
	var se *SegmentError
	if !errors.As(err, &se) {
		t.Errorf("unknown tag error = %v, want *SegmentError", err)
	}
}

func TestPathSegmentIndexError(t *testing.T) {
	p := PathOf(MoveSeg(0, 0))
	_, err := p.Segment(1)
	if !errors.Is(err, ErrIndexRange) {
		t.Fatalf("Segment(1) error = %v, want ErrIndexRange", err)
	}
	var ie *IndexError
	if !errors.As(err, &ie) || ie.Index != 1 || ie.Len != 1 {
		t.Errorf("IndexError = %+v", ie)
	}
}

func TestPathAllTransformsOnRead(t *testing.T) {
	p := PathOf(MoveSeg(1, 1), LineSeg(2, 2))
	m := Scale(10, 10)

	var got []Segment
	for s := range p.All(&m) {
		got = append(got, s)
	}
	want := []Segment{MoveSeg(10, 10), LineSeg(20, 20)}
	if !slices.Equal(got, want) {
		t.Errorf("All(scale) = %v", got)
	}
	if !slices.Equal(p.Segments(), []Segment{MoveSeg(1, 1), LineSeg(2, 2)}) {
		t.Error("All modified the path")
	}

	// The loop body may edit the path.
	n := 0
	for range p.All(nil) {
		p.LineTo(0, 0)
		n++
	}
	if n != 2 || p.Len() != 4 {
		t.Errorf("iterated %d, Len %d", n, p.Len())
	}
}

func TestPathUnpack(t *testing.T) {
	src := PathOf(MoveSeg(0, 0), QuadSeg(5, 5, 10, 0), CloseSeg())
	m := Translate(1, 2)

	p := Unpack(src.All(&m))
	want := []Segment{MoveSeg(1, 2), QuadSeg(6, 7, 11, 2), CloseSeg()}
	if !slices.Equal(p.Segments(), want) {
		t.Errorf("Unpack = %v, want %v", p.Segments(), want)
	}

	// Unpack replaces; Append extends.
	p.Unpack(PathOf(MoveSeg(3, 3)).All(nil))
	p.Append(LineSeg(4, 4), LineSeg(5, 5))
	want = []Segment{MoveSeg(3, 3), LineSeg(4, 4), LineSeg(5, 5)}
	if !slices.Equal(p.Segments(), want) {
		t.Errorf("after Unpack+Append = %v, want %v", p.Segments(), want)
	}
	if src.Len() != 3 {
		t.Errorf("source path changed: Len = %d", src.Len())
	}
}

func TestPathCloneIndependent(t *testing.T) {
	p := PathOf(MoveSeg(0, 0), LineSeg(1, 1))
	c := p.Clone()
	c.LineTo(2, 2)
	if _, err := c.SetPointAt(0, Pt(5, 5)); err != nil {
		t.Fatal(err)
	}
	if p.Len() != 2 || p.Segments()[0] != MoveSeg(0, 0) {
		t.Error("clone shares storage with the original")
	}
	if p.Equal(c) || !p.Equal(p.Clone()) {
		t.Error("Equal mismatch")
	}
	if p.Equal(nil) {
		t.Error("Equal(nil) = true")
	}
}

func TestPathSetPointAt(t *testing.T) {
	p := PathOf(MoveSeg(0, 0), QuadSeg(1, 1, 2, 0), CloseSeg(), LineSeg(9, 9))

	changed, err := p.SetPointAt(2, Pt(3, 3)) // end of the quad
	if err != nil || !changed {
		t.Fatalf("SetPointAt(2) = %v, %v", changed, err)
	}
	if s, _ := p.Segment(1); s != QuadSeg(1, 1, 3, 3) {
		t.Errorf("quad = %v", s.Coords())
	}
	// Close has no points, so index 3 is the trailing LineTo.
	if _, err := p.SetPointAt(3, Pt(8, 8)); err != nil {
		t.Fatal(err)
	}
	if s, _ := p.Segment(3); s != LineSeg(8, 8) {
		t.Errorf("line = %v", s.Coords())
	}

	changed, err = p.SetPointAt(3, Pt(8, 8))
	if err != nil || changed {
		t.Errorf("setting an equal value = %v, %v; want false, nil", changed, err)
	}
	if _, err := p.SetPointAt(4, Pt(0, 0)); !errors.Is(err, ErrIndexRange) {
		t.Errorf("SetPointAt(4) error = %v", err)
	}
	if _, err := p.SetPoint(2, 0, Pt(0, 0)); !errors.Is(err, ErrIndexRange) {
		t.Errorf("SetPoint on Close error = %v", err)
	}
	if changed, err := p.SetPoint(1, 0, Pt(7, 7)); err != nil || !changed {
		t.Errorf("SetPoint(1, 0) = %v, %v", changed, err)
	}
}

func TestPathInsert(t *testing.T) {
	p := PathOf(MoveSeg(0, 0), LineSeg(2, 0))
	if err := p.Insert(1, LineSeg(1, 0)); err != nil {
		t.Fatal(err)
	}
	if err := p.Insert(p.Len(), CloseSeg()); err != nil {
		t.Fatal(err)
	}
	want := []Segment{MoveSeg(0, 0), LineSeg(1, 0), LineSeg(2, 0), CloseSeg()}
	if !slices.Equal(p.Segments(), want) {
		t.Errorf("segments = %v", p)
	}
	if err := p.Insert(9, CloseSeg()); !errors.Is(err, ErrIndexRange) {
		t.Errorf("Insert(9) error = %v", err)
	}
}

func TestPathDelete(t *testing.T) {
	tests := []struct {
		name string
		segs []Segment
		i    int
		want bool
	}{
		{"line", []Segment{MoveSeg(0, 0), LineSeg(1, 0), LineSeg(2, 0)}, 1, true},
		{"move with dependents", []Segment{MoveSeg(0, 0), LineSeg(1, 0)}, 0, false},
		{"trailing move", []Segment{MoveSeg(0, 0), LineSeg(1, 0), MoveSeg(5, 5)}, 2, true},
		{"move before move", []Segment{MoveSeg(0, 0), MoveSeg(5, 5), LineSeg(6, 6)}, 0, true},
		{"close followed by drawing", []Segment{MoveSeg(0, 0), LineSeg(1, 0), CloseSeg(), LineSeg(3, 3)}, 2, false},
		{"trailing close", []Segment{MoveSeg(0, 0), LineSeg(1, 0), CloseSeg()}, 2, true},
		{"out of range", []Segment{MoveSeg(0, 0)}, 3, false},
		{"negative", []Segment{MoveSeg(0, 0)}, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PathOf(tt.segs...)
			if got := p.Delete(tt.i); got != tt.want {
				t.Fatalf("Delete(%d) = %v, want %v", tt.i, got, tt.want)
			}
			wantLen := len(tt.segs)
			if tt.want {
				wantLen--
			}
			if p.Len() != wantLen {
				t.Errorf("Len() = %d, want %d", p.Len(), wantLen)
			}
		})
	}
}

func TestPathNearest(t *testing.T) {
	p := PathOf(MoveSeg(0, 0), LineSeg(10, 0), CloseSeg(), MoveSeg(10, 0), LineSeg(20, 20))
	tests := []struct {
		x, y float64
		want int
	}{
		{1, 1, 0},
		{9, 1, 1}, // tie with index 3 goes to the lower index
		{19, 19, 4},
	}
	for _, tt := range tests {
		if got := p.Nearest(tt.x, tt.y); got != tt.want {
			t.Errorf("Nearest(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
	if got := NewPath().Nearest(0, 0); got != -1 {
		t.Errorf("empty Nearest = %d, want -1", got)
	}
	if got := PathOf(CloseSeg()).Nearest(0, 0); got != -1 {
		t.Errorf("Close-only Nearest = %d, want -1", got)
	}
}

func TestPathAddNear(t *testing.T) {
	tests := []struct {
		name   string
		segs   []Segment
		add    Segment
		wantAt int
	}{
		{"empty path appends", nil, LineSeg(1, 1), 0},
		{"move appends", []Segment{MoveSeg(0, 0), LineSeg(10, 0)}, MoveSeg(1, 0), 2},
		{"close appends", []Segment{MoveSeg(0, 0), LineSeg(10, 0)}, CloseSeg(), 2},
		{"after nearest", []Segment{MoveSeg(0, 0), LineSeg(10, 0), LineSeg(20, 0)}, LineSeg(11, 0), 2},
		{"before nearest", []Segment{MoveSeg(0, 0), LineSeg(10, 0), LineSeg(20, 0)}, LineSeg(9, 0), 1},
		{"never before a move", []Segment{MoveSeg(0, 0), LineSeg(10, 0)}, LineSeg(-1, 0), 1},
		{"missing successor counts as far", []Segment{MoveSeg(0, 0), LineSeg(10, 0)}, LineSeg(12, 0), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PathOf(tt.segs...)
			at := p.AddNear(tt.add)
			if at != tt.wantAt {
				t.Fatalf("AddNear() = %d, want %d", at, tt.wantAt)
			}
			if s, _ := p.Segment(at); s != tt.add {
				t.Errorf("segment %d = %v", at, s)
			}
			if p.Len() != len(tt.segs)+1 {
				t.Errorf("Len() = %d", p.Len())
			}
		})
	}
}

func TestPathSplit(t *testing.T) {
	p := PathOf(
		LineSeg(1, 1),
		MoveSeg(0, 0), LineSeg(1, 0), CloseSeg(),
		MoveSeg(5, 5), LineSeg(6, 6),
	)
	parts := p.Split()
	if len(parts) != 3 {
		t.Fatalf("Split() returned %d paths, want 3", len(parts))
	}
	wantLens := []int{1, 3, 2}
	for i, part := range parts {
		if part.Len() != wantLens[i] {
			t.Errorf("part %d Len() = %d, want %d", i, part.Len(), wantLens[i])
		}
	}
	parts[1].LineTo(9, 9)
	if p.Len() != 6 {
		t.Error("split parts share storage with the original")
	}
	if got := NewPath().Split(); len(got) != 0 {
		t.Errorf("empty Split() = %d paths", len(got))
	}
}

func TestPathSimplify(t *testing.T) {
	p := PathOf(MoveSeg(0, 0), LineSeg(1, 0), LineSeg(1.01, 0), LineSeg(5, 0))
	if removed := p.Simplify(0.1); removed != 1 {
		t.Errorf("Simplify() removed %d, want 1", removed)
	}
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	if s, _ := p.Segment(1); s != LineSeg(1, 0) {
		t.Errorf("kept %v, want the first of the close pair", s.Coords())
	}

	// Different tags, moves and closes are never merged.
	q := PathOf(MoveSeg(0, 0), MoveSeg(0, 0), LineSeg(0, 0), QuadSeg(0, 0, 0, 0), CloseSeg(), CloseSeg())
	if removed := q.Simplify(1); removed != 0 {
		t.Errorf("Simplify() removed %d from unmergeable path", removed)
	}
}

func TestPathSimplifyDefault(t *testing.T) {
	p := PathOf(MoveSeg(0, 0), LineSeg(100, 0), LineSeg(102, 0), LineSeg(100, 100))
	tol := p.DefaultTolerance()
	want := 0.05 * Pt(102, 100).Length()
	if tol != want {
		t.Errorf("DefaultTolerance() = %v, want %v", tol, want)
	}
	if removed := p.SimplifyDefault(); removed != 1 {
		t.Errorf("SimplifyDefault() removed %d, want 1", removed)
	}
}

func TestPathEnsureClosed(t *testing.T) {
	tests := []struct {
		name     string
		segs     []Segment
		appended bool
	}{
		{"already closed", []Segment{MoveSeg(0, 0), LineSeg(1, 0), CloseSeg()}, false},
		{"ends at start", []Segment{MoveSeg(0, 0), LineSeg(1, 0), LineSeg(0, 0)}, false},
		{"open", []Segment{MoveSeg(0, 0), LineSeg(1, 0), LineSeg(1, 1)}, true},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PathOf(tt.segs...)
			if got := p.EnsureClosed(); got != tt.appended {
				t.Fatalf("EnsureClosed() = %v, want %v", got, tt.appended)
			}
			want := len(tt.segs)
			if tt.appended {
				want++
			}
			if p.Len() != want {
				t.Errorf("Len() = %d, want %d", p.Len(), want)
			}
			// Idempotent.
			if p.EnsureClosed() {
				t.Error("second EnsureClosed() appended again")
			}
		})
	}
}

func TestPathToQuadsAndCubics(t *testing.T) {
	p := PathOf(MoveSeg(0, 0), LineSeg(10, 0), QuadSeg(15, 5, 10, 10), LineSeg(0, 10), CloseSeg())
	if n := p.ToQuads(); n != 2 {
		t.Errorf("ToQuads() converted %d, want 2", n)
	}
	diff(t, []SegmentTag{TagMoveTo, TagQuadTo, TagQuadTo, TagQuadTo, TagClose}, p.Tags())
	if s, _ := p.Segment(1); s != QuadSeg(10, 0, 10, 0) {
		t.Errorf("converted line = %v", s.Coords())
	}
	if p.ToQuads() != 0 {
		t.Error("ToQuads() is not idempotent")
	}

	q := PathOf(MoveSeg(0, 0), LineSeg(3, 4))
	if n := q.ToCubics(); n != 1 {
		t.Errorf("ToCubics() converted %d, want 1", n)
	}
	if s, _ := q.Segment(1); s != CubicSeg(3, 4, 3, 4, 3, 4) {
		t.Errorf("converted line = %v", s.Coords())
	}
	// The drawn geometry is unchanged.
	if got := q.Length(0.01); got < 5-1e-9 || got > 5+1e-9 {
		t.Errorf("Length() = %v, want 5", got)
	}
}

func TestPathResetControlPoints(t *testing.T) {
	p := PathOf(
		MoveSeg(0, 0),
		QuadSeg(99, 99, 10, 0),
		CubicSeg(99, 99, 99, 99, 20, 10),
		LineSeg(30, 30),
		MoveSeg(100, 100),
		QuadSeg(99, 99, 110, 100),
	)
	if n := p.ResetControlPoints(); n != 3 {
		t.Fatalf("ResetControlPoints() = %d, want 3", n)
	}
	segs := p.Segments()
	// Quad between (0,0) and the cubic's end (20,10).
	if segs[1] != QuadSeg(10, 5, 10, 0) {
		t.Errorf("quad = %v", segs[1].Coords())
	}
	// Cubic between the quad's end (10,0) and the line's end (30,30).
	if segs[2] != CubicSeg(20, 15, 20, 15, 20, 10) {
		t.Errorf("cubic = %v", segs[2].Coords())
	}
	// Last curve of a contour uses its own end point.
	if segs[5] != QuadSeg(105, 100, 110, 100) {
		t.Errorf("last quad = %v", segs[5].Coords())
	}
}

func TestPathString(t *testing.T) {
	p := PathOf(MoveSeg(0, 0), LineSeg(1.5, 2), QuadSeg(1, 2, 3, 4), CubicSeg(1, 2, 3, 4, 5, 6), CloseSeg())
	want := "M0 0 L1.5 2 Q1 2 3 4 C1 2 3 4 5 6 Z"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPathTransform(t *testing.T) {
	p := PathOf(MoveSeg(1, 0), LineSeg(2, 0), CloseSeg())
	q := p.Transformed(Translate(0, 5))
	if !slices.Equal(q.Segments(), []Segment{MoveSeg(1, 5), LineSeg(2, 5), CloseSeg()}) {
		t.Errorf("Transformed = %v", q)
	}
	if p.Segments()[0] != MoveSeg(1, 0) {
		t.Error("Transformed modified the receiver")
	}
	p.Transform(Scale(2, 2))
	if p.Segments()[1] != LineSeg(4, 0) {
		t.Errorf("Transform = %v", p)
	}
}

func TestPathConcurrentReadWrite(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 500 {
			p.LineTo(float64(i), float64(i))
			_, _ = p.SetPointAt(0, Pt(float64(i), 0))
		}
	}()
	go func() {
		defer wg.Done()
		for range 500 {
			_ = p.Bounds()
			for range p.All(nil) {
			}
		}
	}()
	wg.Wait()

	if p.Len() != 501 {
		t.Errorf("Len() = %d, want 501", p.Len())
	}
}
