package vecedit

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// hashSeed is shared by every shape cache in the process. Hashes are never
// persisted, so a per-process seed is sufficient.
var hashSeed = maphash.MakeSeed()

// geometryHash returns a structural hash of a flat geometry description.
func geometryHash(geom []float64) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	var buf [8]byte
	for _, v := range geom {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// shapeCache remembers the outline derived from a primitive's geometry
// together with the hash of the geometry it was built from.
type shapeCache struct {
	valid bool
	hash  uint64
	shape *Path
}

// get returns a clone of the cached outline for geom, rebuilding it when
// the geometry hash differs from the cached one.
func (c *shapeCache) get(geom []float64, build func() *Path) *Path {
	h := geometryHash(geom)
	if !c.valid || c.hash != h {
		c.shape = build()
		c.hash = h
		c.valid = true
	}
	return c.shape.Clone()
}

func (c *shapeCache) invalidate() {
	c.valid = false
	c.shape = nil
}

// layoutCache is the text counterpart of shapeCache. A failed layout is
// cached too, so a broken glyph source is not asked again until the text
// changes.
type layoutCache struct {
	valid  bool
	hash   uint64
	layout *TextLayout
	err    error
}

func (c *layoutCache) get(key []float64, build func() (*TextLayout, error)) (*TextLayout, error) {
	h := geometryHash(key)
	if !c.valid || c.hash != h {
		c.layout, c.err = build()
		c.hash = h
		c.valid = true
	}
	return c.layout, c.err
}

func (c *layoutCache) invalidate() {
	*c = layoutCache{}
}

// textKey extends a geometry description with the text and font so that
// any change to either changes the hash.
func textKey(geom []float64, s string, f Font) []float64 {
	key := append([]float64(nil), geom...)
	key = append(key, f.Size, boolFloat(f.Bold), boolFloat(f.Italic), -1)
	for _, r := range f.Family {
		key = append(key, float64(r))
	}
	key = append(key, -1)
	for _, r := range s {
		key = append(key, float64(r))
	}
	return key
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
