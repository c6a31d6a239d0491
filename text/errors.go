package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoFaces is returned when a source has no face to fall back to.
	ErrNoFaces = errors.New("text: no faces registered")
)

// FontError reports a font that could not be parsed or read.
type FontError struct {
	Family string
	Reason string
	Err    error
}

func (e *FontError) Error() string {
	msg := "text: " + e.Reason
	if e.Family != "" {
		msg += " (" + e.Family + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FontError) Unwrap() error {
	return e.Err
}
