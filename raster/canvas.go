package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/vecedit"
)

// Canvas paints primitives into an RGBA image. Fills use an anti-aliased
// coverage rasterizer; strokes are expanded into quads with bevel joins and
// butt caps, then filled the same way.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	img  *image.RGBA
	ras  *vector.Rasterizer
	opts options
}

var _ vecedit.Canvas = (*Canvas)(nil)

// New creates a width x height canvas.
func New(width, height int, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:  vector.NewRasterizer(width, height),
		opts: o,
	}
	if o.background != nil {
		xdraw.Draw(c.img, c.img.Bounds(), image.NewUniform(o.background), image.Point{}, xdraw.Src)
	}
	return c
}

// Image returns the backing image. It is shared, not copied.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// SetFillColor changes the color used by subsequent fills.
func (c *Canvas) SetFillColor(col color.Color) { c.opts.fill = col }

// SetStrokeColor changes the color used by subsequent strokes.
func (c *Canvas) SetStrokeColor(col color.Color) { c.opts.stroke = col }

// SetDash changes the dash pattern used by subsequent strokes. A nil
// pattern strokes solid.
func (c *Canvas) SetDash(d *Dash) { c.opts.dash = d }

// SetStrokeWidth changes the width used by subsequent strokes.
func (c *Canvas) SetStrokeWidth(w float64) {
	if w > 0 {
		c.opts.strokeWidth = w
	}
}

// FillPath implements vecedit.Canvas. Open contours are closed implicitly.
func (c *Canvas) FillPath(p *vecedit.Path) {
	if p == nil || p.IsEmpty() {
		return
	}
	c.reset()
	addPath(c.ras, p)
	c.draw(c.opts.fill)
}

// StrokePath implements vecedit.Canvas.
func (c *Canvas) StrokePath(p *vecedit.Path) {
	if p == nil || p.IsEmpty() {
		return
	}
	c.reset()
	half := c.opts.strokeWidth / 2
	for _, pl := range p.Flatten(c.opts.tolerance) {
		if !c.opts.dash.IsDashed() {
			strokeContour(c.ras, pl, half)
			continue
		}
		for _, run := range c.opts.dash.split(pl.Points) {
			strokeContour(c.ras, vecedit.Contour{Points: run}, half)
		}
	}
	c.draw(c.opts.stroke)
}

// ClearRect implements vecedit.Canvas by setting the covered pixels to
// transparent.
func (c *Canvas) ClearRect(r vecedit.Rect) {
	if r.IsEmpty() {
		return
	}
	xdraw.Draw(c.img, pixelRect(r), image.Transparent, image.Point{}, xdraw.Src)
}

// DrawImage implements vecedit.Canvas. The image is scaled into dst with
// Catmull-Rom resampling and composited over the canvas.
func (c *Canvas) DrawImage(img image.Image, dst vecedit.Rect) {
	if img == nil || dst.IsEmpty() {
		return
	}
	xdraw.CatmullRom.Scale(c.img, pixelRect(dst), img, img.Bounds(), xdraw.Over, nil)
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (c *Canvas) reset() {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
}

func (c *Canvas) draw(col color.Color) {
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// pixelRect returns the smallest pixel rectangle covering r.
func pixelRect(r vecedit.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y)),
	)
}
