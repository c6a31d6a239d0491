package raster

import "image/color"

// Default paint settings.
const (
	DefaultStrokeWidth = 1.0
	DefaultTolerance   = 0.25
)

// Option configures a Canvas during creation.
//
// Example:
//
//	c := raster.New(800, 600,
//	    raster.WithStrokeWidth(2),
//	    raster.WithFillColor(color.RGBA{R: 200, A: 255}))
type Option func(*options)

type options struct {
	strokeWidth float64
	tolerance   float64
	fill        color.Color
	stroke      color.Color
	background  color.Color
	dash        *Dash
}

func defaultOptions() options {
	return options{
		strokeWidth: DefaultStrokeWidth,
		tolerance:   DefaultTolerance,
		fill:        color.Black,
		stroke:      color.Black,
	}
}

// WithStrokeWidth sets the stroke width in pixels. Non-positive widths are
// ignored.
func WithStrokeWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.strokeWidth = w
		}
	}
}

// WithFillColor sets the color used by FillPath.
func WithFillColor(c color.Color) Option {
	return func(o *options) {
		o.fill = c
	}
}

// WithStrokeColor sets the color used by StrokePath.
func WithStrokeColor(c color.Color) Option {
	return func(o *options) {
		o.stroke = c
	}
}

// WithBackground fills the canvas with c on creation. The default is
// transparent.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithTolerance sets the curve flattening tolerance used for strokes.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithDash strokes with the given dash pattern. A nil pattern strokes solid.
func WithDash(d *Dash) Option {
	return func(o *options) {
		o.dash = d
	}
}
