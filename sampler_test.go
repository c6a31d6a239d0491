package vecedit

import (
	"math"
	"testing"
)

func TestSamplerStraightLine(t *testing.T) {
	s := NewSampler(PathOf(MoveSeg(0, 0), LineSeg(10, 0)), 1)
	if s.Length() != 10 || s.Interval() != 1 {
		t.Fatalf("Length() = %v, Interval() = %v", s.Length(), s.Interval())
	}
	if cur := s.Current(); cur.Pos != Pt(0, 0) || cur.Angle != 0 || cur.Distance != 0 {
		t.Errorf("initial sample = %+v", cur)
	}
	for i := 1; i <= 10; i++ {
		got := s.Step()
		if !pointsEqual(got.Pos, Pt(float64(i), 0), 1e-9) || got.Angle != 0 {
			t.Fatalf("step %d = %+v", i, got)
		}
		if s.Extrapolating() {
			t.Fatalf("extrapolating at step %d", i)
		}
	}
	got := s.Step()
	if !s.Extrapolating() {
		t.Error("not extrapolating past the end")
	}
	if !pointsEqual(got.Pos, Pt(11, 0), 1e-9) || got.Distance != 11 {
		t.Errorf("first extrapolated sample = %+v", got)
	}
}

func TestSamplerDefaultInterval(t *testing.T) {
	s := NewSampler(NewPath(), 0)
	if s.Interval() != DefaultSampleInterval {
		t.Errorf("Interval() = %v, want %v", s.Interval(), DefaultSampleInterval)
	}
}

func TestSamplerAdvance(t *testing.T) {
	s := NewSampler(PathOf(MoveSeg(0, 0), LineSeg(0, 100)), 0.5)
	tests := []struct {
		d, walked float64
	}{
		{0, 0},
		{-3, 0},
		{1, 1},
		{0.1, 0.1},
		{1.2, 1.2},
		{0.25, 0.25},
	}
	total := 0.0
	for _, tt := range tests {
		if got := s.Advance(tt.d); math.Abs(got-tt.walked) > 1e-12 {
			t.Errorf("Advance(%v) = %v, want %v", tt.d, got, tt.walked)
		}
		total += tt.walked
	}
	cur := s.Current()
	if math.Abs(cur.Distance-total) > 1e-9 || !pointsEqual(cur.Pos, Pt(0, total), 1e-9) {
		t.Errorf("after advancing %v: %+v", total, cur)
	}
	if math.Abs(cur.Angle-90) > 1e-9 {
		t.Errorf("Angle = %v, want 90 (y down)", cur.Angle)
	}
}

func TestSamplerAdvanceToEnd(t *testing.T) {
	// Seven fractional advances add up to the path length without
	// tipping the sampler into extrapolation.
	s := NewSampler(PathOf(MoveSeg(0, 0), LineSeg(10, 0)), 0.5)
	for range 7 {
		s.Advance(10.0 / 7)
	}
	if s.Extrapolating() {
		t.Error("extrapolating after walking exactly the path length")
	}
	if got := s.Current().Pos; !pointsEqual(got, Pt(10, 0), 1e-9) {
		t.Errorf("end position = %v, want (10, 0)", got)
	}
	s.Advance(0.01)
	if !s.Extrapolating() {
		t.Error("not extrapolating past the end")
	}
}

func TestSamplerJumpsBetweenContours(t *testing.T) {
	p := PathOf(MoveSeg(0, 0), LineSeg(2, 0), MoveSeg(100, 100), LineSeg(100, 102))
	s := NewSampler(p, 1)
	if s.Length() != 4 {
		t.Fatalf("Length() = %v, want 4", s.Length())
	}
	s.Advance(3)
	if got := s.Current().Pos; !pointsEqual(got, Pt(100, 101), 1e-9) {
		t.Errorf("after 3 = %v, want (100, 101)", got)
	}
}

func TestSamplerZeroLength(t *testing.T) {
	s := NewSampler(PathOf(MoveSeg(5, 5)), 1)
	if !s.Extrapolating() {
		t.Fatal("zero-length path should extrapolate from the start")
	}
	if s.Current().Pos != Pt(5, 5) {
		t.Errorf("start = %v", s.Current().Pos)
	}
	s.Advance(3)
	if got := s.Current().Pos; !pointsEqual(got, Pt(8, 5), 1e-9) {
		t.Errorf("extrapolated to %v, want (8, 5)", got)
	}
}

func TestSamplerExtrapolationKeepsTurning(t *testing.T) {
	// Quarter circle, radius 50, turning clockwise on screen.
	p := NewPath()
	p.AddArc(0, 0, 100, 100, 180, -90, ArcOpen)
	s := NewSampler(p, 0.5)

	s.Advance(s.Length())
	before := s.Current().Angle
	s.Advance(20)
	if !s.Extrapolating() {
		t.Fatal("not extrapolating")
	}
	after := s.Current().Angle
	// The turn continues in the same direction after the end.
	if d := angleDelta(before, after); d <= 0 {
		t.Errorf("heading went from %v to %v, want it to keep turning clockwise", before, after)
	}
	// The estimated turn rate comes from a flattened outline, so the
	// continuation only roughly follows the arc's circle.
	if r := s.Current().Pos.Distance(Pt(50, 50)); math.Abs(r-50) > 5 {
		t.Errorf("extrapolated point is %v from the center, want about 50", r)
	}
}

func TestAngleDelta(t *testing.T) {
	tests := []struct{ a, b, want float64 }{
		{0, 10, 10},
		{10, 0, -10},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
	}
	for _, tt := range tests {
		if got := angleDelta(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("angleDelta(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
