package vecedit

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	// Additional formats accepted by DecodeImage.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image draws a raster image scaled into an axis-aligned frame.
// The pixels are owned by the primitive; they are copied on the way in and
// on the way out.
type Image struct {
	shapeBase
	box
	pix *image.RGBA
}

// NewImage creates an image primitive. img may be nil for an empty image.
func NewImage(x, y, w, h float64, img image.Image) *Image {
	return &Image{box: newBox(x, y, w, h), pix: cloneRGBA(img)}
}

// Pixels returns a copy of the image, or nil when there is none.
func (im *Image) Pixels() *image.RGBA { return cloneRGBA(im.pix) }

// SetPixels replaces the image.
func (im *Image) SetPixels(img image.Image) {
	im.pix = cloneRGBA(img)
	im.changed()
}

// EncodeImage returns the pixels as PNG data. An empty image encodes to nil.
func (im *Image) EncodeImage() ([]byte, error) {
	if im.pix == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, im.pix); err != nil {
		return nil, fmt.Errorf("vecedit: encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeImage replaces the pixels with the decoded data. PNG, JPEG, GIF,
// BMP, TIFF and WebP are accepted. On failure a *DecodeError is returned
// and the image is left unchanged.
func (im *Image) DecodeImage(data []byte) error {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		Logger().Warn("vecedit: image decode failed", "bytes", len(data), "err", err)
		return &DecodeError{Err: err}
	}
	Logger().Debug("vecedit: image decoded", "format", format, "bounds", img.Bounds())
	im.SetPixels(img)
	return nil
}

// SetFrame replaces position and size.
func (im *Image) SetFrame(x, y, w, h float64) { im.setFrame(&im.shapeBase, x, y, w, h) }

// Kind returns KindImage.
func (im *Image) Kind() Kind { return KindImage }

// Geometry returns the frame as x, y, width and height.
func (im *Image) Geometry() []float64 { return im.geometry() }

// ToShape returns the outline of the frame the pixels are drawn into.
func (im *Image) ToShape() *Path {
	return im.cache.get(im.Geometry(), func() *Path {
		p := NewPath()
		p.AddRect(im.x, im.y, im.w, im.h)
		return p
	})
}

// Paint draws the pixels scaled into the frame. An image without
// pixels paints nothing.
func (im *Image) Paint(c Canvas) {
	if im.pix != nil {
		c.DrawImage(im.pix, im.Frame())
	}
}

// Bounds implements Primitive.
func (im *Image) Bounds() Rect { return im.Frame() }

// AddToBounds returns r extended by the bounds of the shape.
func (im *Image) AddToBounds(r Rect) Rect { return r.Union(im.Bounds()) }

// Translate moves the shape by (dx, dy).
func (im *Image) Translate(dx, dy float64) { _ = im.ApplyTransform(Translate(dx, dy)) }

// ApplyTransform scales and translates the frame. The pixels are kept.
func (im *Image) ApplyTransform(m Matrix) error { return im.transform(&im.shapeBase, m) }

// ControlPointCount returns the number of handles.
func (im *Image) ControlPointCount() int { return 4 }

// ControlPoints appends the four frame corners to dst.
func (im *Image) ControlPoints(dst []ControlPoint) []ControlPoint {
	return appendControlPoints(dst, im.corners(), boxKinds())
}

// ControlPointKinds implements ControlPointEditable.
func (im *Image) ControlPointKinds() []ControlPointKind { return boxKinds() }

// SetControlPoint drags a corner of the frame; the pixels are rescaled
// when painted.
func (im *Image) SetControlPoint(i int, pt Point) error {
	return im.setCorner(&im.shapeBase, i, pt)
}

// VirtualControlPoints implements ControlPointEditable.
func (im *Image) VirtualControlPoints() []int { return nil }

// Snapshot captures the frame and a copy of the pixels.
func (im *Image) Snapshot() Snapshot {
	return restorable(im, func(v Image) Image {
		v.pix = cloneRGBA(v.pix)
		return v
	})
}

// Copy returns an independent copy, pixels included, at the same revision.
func (im *Image) Copy() Primitive {
	return &Image{shapeBase: shapeBase{Versioning: im.Versioning}, box: im.box, pix: cloneRGBA(im.pix)}
}

// CopyTransformed returns a transformed copy at revision+1, leaving the
// receiver untouched.
func (im *Image) CopyTransformed(m Matrix) (Primitive, error) { return copyTransformed(im, m) }

// Equal compares the frame and the pixels.
func (im *Image) Equal(other Primitive) bool {
	o, ok := other.(*Image)
	if !ok || !sameValues(im, other) {
		return false
	}
	switch {
	case im.pix == nil || o.pix == nil:
		return im.pix == nil && o.pix == nil
	case im.pix.Rect != o.pix.Rect:
		return false
	}
	return bytes.Equal(im.pix.Pix, o.pix.Pix)
}

// cloneRGBA copies img into a new RGBA image anchored at the origin.
func cloneRGBA(img image.Image) *image.RGBA {
	if img == nil {
		return nil
	}
	if rgba, ok := img.(*image.RGBA); ok && rgba == nil {
		return nil
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
