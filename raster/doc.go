// Package raster is a CPU render sink for vecedit primitives.
//
// Canvas implements vecedit.Canvas on top of an *image.RGBA. Fills go
// through golang.org/x/image/vector; strokes are expanded from the path's
// flattening into quads and bevel joins and filled the same way, after an
// optional Dash pattern has cut the flattened contours into runs. DrawImage
// scales with golang.org/x/image/draw.
//
// Usage:
//
//	c := raster.New(400, 300, raster.WithBackground(color.White))
//	for _, p := range prims {
//	    p.Paint(c)
//	}
//	err := c.SavePNG("out.png")
package raster
