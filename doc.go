// Package vecedit provides an editable 2D vector primitive model.
//
// # Overview
//
// vecedit is the document layer of a vector drawing editor. It holds the
// shapes a user draws (lines, boxes, circles, polygons, arcs, free-form
// paths, images and text) and exposes the operations an editor performs
// on them: moving control points, applying affine transforms, undoing
// changes and rendering outlines for a canvas.
//
// # Quick Start
//
//	import "github.com/gogpu/vecedit"
//
//	r := vecedit.NewRectangle(0, 0, 100, 50)
//	r.SetFilled(true)
//
//	// Drag the top-left corner; the bottom-right corner stays put.
//	_ = r.SetControlPoint(0, vecedit.Pt(20, 10))
//
//	// Undo the drag.
//	restore := r.Snapshot()
//	r.Translate(5, 5)
//	restore()
//
// # Primitives
//
// Every shape implements [Primitive]. The interface groups four concerns:
//   - Rendering: [Renderable] turns the geometry into a [Path] and paints it
//     into a [Canvas]
//   - Transforms: [Transformable] applies a [Matrix]; shapes that cannot
//     represent the result return an error and stay unchanged
//   - Editing: [ControlPointEditable] addresses handles by index
//   - Versioning: [Versioned] exposes a revision counter and [Snapshot]
//
// The revision increases on every change of value and never otherwise, so
// an editor can compare revisions to decide whether to repaint or record
// an undo step.
//
// # Paths
//
// [Path] is a sequence of [Segment] values (move, line, quadratic,
// cubic, close) with editing operations: insertion next to the nearest
// segment, simplification, conversion between curve orders and SVG-style
// path data via [ParsePathData] and [Path.String].
//
// # Text
//
// [Text] sets glyphs on a straight baseline; [PathText] lays them out
// along a path with [LayoutTextOnPath]. Glyph outlines come from a
// [GlyphSource]; the text sub-package provides sources backed by real
// font files.
//
// # Coordinate System
//
// Uses screen coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Matrix angles in radians; primitive angles in degrees
//   - Arc angles: 0 is 3 o'clock, positive extents turn towards 12 o'clock
//
// # Sub-packages
//
//   - drawing: an ordered document of primitives with undo history
//   - recording: records paint calls for later replay
//   - raster: a software [Canvas] producing RGBA images
//   - text: glyph sources over OpenType and Go fonts
package vecedit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
