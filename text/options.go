package text

// DefaultSize is the pixel size used for fonts that do not specify one.
const DefaultSize = 16

// defaultCacheLimit is the number of glyph outlines a source keeps.
const defaultCacheLimit = 512

// Option configures a glyph source.
type Option func(*config)

type config struct {
	cacheLimit int
	noDefault  bool
}

func defaultConfig() config {
	return config{cacheLimit: defaultCacheLimit}
}

// WithCacheLimit sets the maximum number of cached glyph outlines.
// A value of 0 disables the limit.
func WithCacheLimit(n int) Option {
	return func(c *config) {
		c.cacheLimit = n
	}
}

// WithoutDefaultFace skips registering the bundled Go Regular face. Glyphs
// then fails with ErrNoFaces until a face is registered.
func WithoutDefaultFace() Option {
	return func(c *config) {
		c.noDefault = true
	}
}
