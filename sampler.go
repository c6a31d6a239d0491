package vecedit

import "math"

// DefaultSampleInterval is the distance between consecutive samples taken
// by a Sampler when no interval is given.
const DefaultSampleInterval = 0.5

// samplerFlatness is the flattening tolerance used to measure and walk
// paths during sampling.
const samplerFlatness = 0.05

// walkSlack absorbs rounding when a walk ends exactly on the end of a leg,
// so text sized to the path does not spill into extrapolation.
const walkSlack = 1e-9

// curvatureWindow is the number of recent ticks used to estimate the turn
// rate carried into extrapolation.
const curvatureWindow = 8

// Sample is one position reported by a Sampler.
type Sample struct {
	Pos      Point
	Angle    float64 // direction of travel in degrees, [0, 360)
	Distance float64 // distance walked from the start of the path
}

type leg struct {
	a, b Point
	len  float64
}

type tick struct {
	dist, angle float64
}

// Sampler walks a path in steps of at most one interval, reporting the
// position and the local direction of travel after each step. Contours are walked in order;
// jumps between them cost no distance.
//
// Once the path is exhausted the sampler keeps going along a circular arc
// that continues the last direction with the turn rate observed over the
// most recent steps, so callers can walk any distance.
type Sampler struct {
	legs     []leg
	leg      int
	off      float64
	interval float64
	length   float64

	cur     Sample
	history []tick

	extrapolating bool
	turn          float64 // degrees per unit length while extrapolating
}

// NewSampler creates a sampler over p with the given step interval.
// A non-positive interval selects DefaultSampleInterval.
func NewSampler(p *Path, interval float64) *Sampler {
	if interval <= 0 {
		interval = DefaultSampleInterval
	}
	s := &Sampler{interval: interval}

	var first Point
	havePoint := false
	for _, pl := range p.Flatten(samplerFlatness) {
		if !havePoint && len(pl.Points) > 0 {
			first, havePoint = pl.Points[0], true
		}
		for i := 1; i < len(pl.Points); i++ {
			a, b := pl.Points[i-1], pl.Points[i]
			l := a.Distance(b)
			if l == 0 {
				continue
			}
			s.legs = append(s.legs, leg{a: a, b: b, len: l})
			s.length += l
		}
	}

	s.cur.Pos = first
	if len(s.legs) > 0 {
		s.cur.Pos = s.legs[0].a
		s.cur.Angle = s.legs[0].b.Sub(s.legs[0].a).Degrees()
	} else {
		s.extrapolating = true
	}
	s.history = append(s.history, tick{dist: 0, angle: s.cur.Angle})
	return s
}

// Length returns the walkable length of the path.
func (s *Sampler) Length() float64 { return s.length }

// Interval returns the step size.
func (s *Sampler) Interval() float64 { return s.interval }

// Current returns the most recent sample.
func (s *Sampler) Current() Sample { return s.cur }

// Extrapolating reports whether the sampler has run past the end of the path.
func (s *Sampler) Extrapolating() bool { return s.extrapolating }

// Advance walks exactly d: whole intervals, then one shorter step for
// whatever is left. It returns the distance walked, 0 for non-positive d.
func (s *Sampler) Advance(d float64) float64 {
	if d <= 0 {
		return 0
	}
	left := d
	for left > s.interval {
		s.step(s.interval)
		left -= s.interval
	}
	s.step(left)
	return d
}

// Step advances by one interval.
func (s *Sampler) Step() Sample {
	return s.step(s.interval)
}

// step advances by d. The reported angle is the direction of the chord
// walked, so it follows the path at the resolution of the step.
func (s *Sampler) step(d float64) Sample {
	prev := s.cur.Pos
	pos, remaining := s.walk(d)
	if remaining > 0 {
		if !s.extrapolating {
			s.startExtrapolation()
		}
		heading := s.cur.Angle + s.turn*remaining
		sin, cos := math.Sincos(radians(heading))
		pos = pos.Add(Pt(cos, sin).Mul(remaining))
	}

	angle := s.cur.Angle
	if chord := pos.Sub(prev); chord.Length() > 1e-12 {
		angle = chord.Degrees()
	}
	s.cur = Sample{Pos: pos, Angle: NormalizeDegrees(angle), Distance: s.cur.Distance + d}

	s.history = append(s.history, tick{dist: s.cur.Distance, angle: s.cur.Angle})
	if len(s.history) > curvatureWindow {
		s.history = s.history[len(s.history)-curvatureWindow:]
	}
	return s.cur
}

// walk moves d along the legs and returns the new position and the
// distance left over once the path is exhausted.
func (s *Sampler) walk(d float64) (Point, float64) {
	for s.leg < len(s.legs) {
		l := s.legs[s.leg]
		avail := l.len - s.off
		if d <= avail+walkSlack {
			s.off = min(l.len, s.off+d)
			return l.a.Lerp(l.b, s.off/l.len), 0
		}
		d -= avail
		s.leg++
		s.off = 0
	}
	if len(s.legs) == 0 {
		return s.cur.Pos, d
	}
	if !s.extrapolating {
		return s.legs[len(s.legs)-1].b, d
	}
	return s.cur.Pos, d
}

func (s *Sampler) startExtrapolation() {
	s.extrapolating = true
	if len(s.history) >= 2 {
		first, last := s.history[0], s.history[len(s.history)-1]
		if span := last.dist - first.dist; span > 0 {
			turn := angleDelta(first.angle, last.angle) / span
			if math.Abs(turn) > 1e-6 {
				s.turn = turn
			}
		}
	}
	Logger().Debug("vecedit: sampler extrapolating", "length", s.length, "turn", s.turn)
}

// angleDelta returns the signed smallest rotation from a to b in degrees,
// in (-180, 180].
func angleDelta(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	switch {
	case d > 180:
		d -= 360
	case d <= -180:
		d += 360
	}
	return d
}
