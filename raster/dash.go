package raster

import (
	"math"

	"github.com/gogpu/vecedit"
)

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are taken by magnitude.
//
// Examples:
//
//	NewDash(5, 3)        // 5 units dash, 3 units gap
//	NewDash(10, 5, 2, 5) // 10 dash, 5 gap, 2 dash, 5 gap
//	NewDash(5)           // equivalent to [5, 5]
//
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	normalized := make([]float64, len(lengths))
	positive := false
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
		positive = positive || l != 0
	}
	if !positive {
		return nil
	}
	return &Dash{Array: normalized}
}

// WithOffset returns a copy of d starting offset units into the pattern.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the total length of one complete pattern cycle.
// For odd-length arrays, this includes the duplicated pattern.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed reports whether d produces gaps. A nil Dash strokes solid.
func (d *Dash) IsDashed() bool {
	return d.PatternLength() > 0
}

// NormalizedOffset returns the offset wrapped into one pattern cycle.
func (d *Dash) NormalizedOffset() float64 {
	total := d.PatternLength()
	if total <= 0 {
		return 0
	}
	offset := math.Mod(d.Offset, total)
	if offset < 0 {
		offset += total
	}
	return offset
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []float64 {
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// split cuts a flattened contour into the runs covered by dashes. The
// pattern continues across vertices, so a dash may turn a corner.
func (d *Dash) split(pts []vecedit.Point) [][]vecedit.Point {
	arr := d.effectiveArray()

	// Skip into the pattern by the offset.
	idx, off := 0, d.NormalizedOffset()
	for off > 0 && off >= arr[idx] {
		off -= arr[idx]
		idx = (idx + 1) % len(arr)
	}
	rem := arr[idx] - off

	var runs [][]vecedit.Point
	var cur []vecedit.Point
	if idx%2 == 0 && len(pts) > 0 {
		cur = append(cur, pts[0])
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		l := a.Distance(b)
		for t := 0.0; t < l; {
			step := min(rem, l-t)
			t += step
			rem -= step
			p := a.Lerp(b, t/l)
			if idx%2 == 0 {
				cur = append(cur, p)
			}
			if rem > 0 {
				continue
			}
			if len(cur) > 1 {
				runs = append(runs, cur)
			}
			cur = nil
			idx = (idx + 1) % len(arr)
			rem = arr[idx]
			if idx%2 == 0 {
				cur = append(cur, p)
			}
		}
	}
	if len(cur) > 1 {
		runs = append(runs, cur)
	}
	return runs
}
