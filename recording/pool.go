package recording

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/vecedit"
)

// ResourcePool stores resources referenced by recording commands.
// Each Add operation copies the resource so later edits to the source
// do not leak into the recording.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths  []*vecedit.Path
	images []*image.RGBA
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:  make([]*vecedit.Path, 0, 64),
		images: make([]*image.RGBA, 0, 8),
	}
}

// AddPath adds a clone of path to the pool and returns its reference.
// A nil path is stored as an empty path.
func (p *ResourcePool) AddPath(path *vecedit.Path) PathRef {
	if path == nil {
		path = vecedit.NewPath()
	} else {
		path = path.Clone()
	}
	p.paths = append(p.paths, path)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for the given reference, or nil if the
// reference is invalid.
func (p *ResourcePool) GetPath(ref PathRef) *vecedit.Path {
	if !ref.IsValid() || int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddImage adds an RGBA copy of img to the pool and returns its reference.
// A nil or empty image is not stored; the returned reference is invalid.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	if img == nil || img.Bounds().Empty() {
		return ImageRef(InvalidRef)
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	p.images = append(p.images, dst)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ImageRef(uint32(len(p.images) - 1))
}

// GetImage returns the image for the given reference, or nil if the
// reference is invalid.
func (p *ResourcePool) GetImage(ref ImageRef) image.Image {
	if !ref.IsValid() || int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	clear(p.paths)
	clear(p.images)
	p.paths = p.paths[:0]
	p.images = p.images[:0]
}

// Clone creates a deep copy of the resource pool. Images are shared; the
// pool never mutates them.
func (p *ResourcePool) Clone() *ResourcePool {
	c := &ResourcePool{
		paths:  make([]*vecedit.Path, len(p.paths)),
		images: make([]*image.RGBA, len(p.images)),
	}
	for i, path := range p.paths {
		c.paths[i] = path.Clone()
	}
	copy(c.images, p.images)
	return c
}
