package vecedit

import (
	"errors"
	"fmt"
)

// Sentinel errors for vecedit.
var (
	// ErrIndexRange is matched (via errors.Is) by every *IndexError.
	ErrIndexRange = errors.New("vecedit: index out of range")

	// ErrMismatchedArrays is returned when parallel coordinate arrays differ in length.
	ErrMismatchedArrays = errors.New("vecedit: mismatched array lengths")

	// ErrNonUniformTransform is returned when a shape that only supports
	// similarity transforms (circle, rhombus) is given a transform with
	// non-uniform scale, shear or (for rhombi) a reflection.
	ErrNonUniformTransform = errors.New("vecedit: transform is not a uniform scale and rotation")

	// ErrNonAxisTransform is returned when an axis-aligned box shape is given a
	// transform containing rotation or shear.
	ErrNonAxisTransform = errors.New("vecedit: transform does not keep axes aligned")

	// ErrReadOnlyControlPoint is returned when setting a control point that is
	// only exposed for display.
	ErrReadOnlyControlPoint = errors.New("vecedit: control point is read-only")

	// ErrNoGlyphSource is returned when text layout is requested without a glyph source.
	ErrNoGlyphSource = errors.New("vecedit: no glyph source")

	// ErrPathData is wrapped by every ParsePathData failure.
	ErrPathData = errors.New("vecedit: bad path data")

	// ErrGlyphCount is returned when a glyph source does not return exactly
	// one glyph per character.
	ErrGlyphCount = errors.New("vecedit: glyph source returned wrong glyph count")
)

// SegmentError reports a segment whose coordinate payload does not match its tag.
type SegmentError struct {
	Tag SegmentTag
	Got int
}

// Error implements error.
func (e *SegmentError) Error() string {
	if !e.Tag.Valid() {
		return fmt.Sprintf("vecedit: unknown segment tag %d", uint8(e.Tag))
	}
	return fmt.Sprintf("vecedit: %s segment needs %d coordinates, got %d", e.Tag, e.Tag.CoordCount(), e.Got)
}

// IndexError reports an out-of-range control point, segment or vertex index.
type IndexError struct {
	What  string
	Index int
	Len   int
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("vecedit: %s index %d out of range [0,%d)", e.What, e.Index, e.Len)
}

// Is reports ErrIndexRange as a match.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexRange
}

func checkIndex(what string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{What: what, Index: i, Len: n}
	}
	return nil
}

// DecodeError is returned when embedded raster data cannot be decoded.
// The primitive is left unchanged.
type DecodeError struct {
	Err error
}

// Error implements error.
func (e *DecodeError) Error() string {
	return "vecedit: decode image: " + e.Err.Error()
}

// Unwrap returns the underlying decoder error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
