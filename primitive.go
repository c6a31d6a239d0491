package vecedit

import "image"

// Kind identifies the variant of a Primitive.
type Kind uint8

// Primitive variants.
const (
	KindLine Kind = iota
	KindRectangle
	KindOval
	KindCircle
	KindPolygon
	KindPolyline
	KindTriangle
	KindRhombus
	KindArc
	KindRoundRect
	KindClear
	KindImage
	KindPath
	KindText
	KindPathText
)

var kindNames = [...]string{
	KindLine:      "Line",
	KindRectangle: "Rectangle",
	KindOval:      "Oval",
	KindCircle:    "Circle",
	KindPolygon:   "Polygon",
	KindPolyline:  "Polyline",
	KindTriangle:  "Triangle",
	KindRhombus:   "Rhombus",
	KindArc:       "Arc",
	KindRoundRect: "RoundRect",
	KindClear:     "Clear",
	KindImage:     "Image",
	KindPath:      "Path",
	KindText:      "Text",
	KindPathText:  "PathText",
}

// String returns the variant name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// ControlPointKind classifies a control point.
type ControlPointKind uint8

const (
	// HandlePoint is a physical point stored directly in the geometry.
	HandlePoint ControlPointKind = iota

	// HandleCurve is a Bezier control handle.
	HandleCurve

	// HandleRadius sets a radius by its distance from the center.
	HandleRadius

	// HandleVirtual is computed from other fields (for example an edge
	// midpoint); moving it edits the fields it is derived from.
	HandleVirtual

	// HandleBaseline is a text baseline point.
	HandleBaseline

	// HandleAnchor marks where a character was placed. It is read-only.
	HandleAnchor
)

// String returns the kind name.
func (k ControlPointKind) String() string {
	switch k {
	case HandlePoint:
		return "Point"
	case HandleCurve:
		return "Curve"
	case HandleRadius:
		return "Radius"
	case HandleVirtual:
		return "Virtual"
	case HandleBaseline:
		return "Baseline"
	case HandleAnchor:
		return "Anchor"
	default:
		return "Unknown"
	}
}

// ControlPoint is an addressable handle on a primitive's geometry.
type ControlPoint struct {
	Index int
	Point Point
	Kind  ControlPointKind
}

// Canvas is the render sink primitives paint into.
type Canvas interface {
	FillPath(p *Path)
	StrokePath(p *Path)
	ClearRect(r Rect)
	DrawImage(img image.Image, dst Rect)
}

// Renderable materializes geometry for a Canvas.
type Renderable interface {
	// ToShape returns the current outline. The result is owned by the caller.
	ToShape() *Path

	// Paint fills or strokes the outline depending on the fill flag.
	Paint(c Canvas)
}

// Transformable is implemented by primitives that accept affine maps.
type Transformable interface {
	Translate(dx, dy float64)

	// ApplyTransform maps the geometry through m in place. Variants that
	// cannot represent the result return an error and stay unchanged.
	ApplyTransform(m Matrix) error
}

// ControlPointEditable is the control-point protocol used by editors.
type ControlPointEditable interface {
	ControlPointCount() int

	// ControlPoints appends every control point to dst and returns it.
	ControlPoints(dst []ControlPoint) []ControlPoint

	ControlPointKinds() []ControlPointKind

	// SetControlPoint moves control point i to pt. An out-of-range index
	// returns an *IndexError.
	SetControlPoint(i int, pt Point) error

	// VirtualControlPoints returns the indices whose location is derived
	// from other fields.
	VirtualControlPoints() []int
}

// Versioned exposes revision tracking and in-place undo.
type Versioned interface {
	Revision() uint64
	Snapshot() Snapshot
}

// Primitive is one editable vector shape.
type Primitive interface {
	Renderable
	Transformable
	ControlPointEditable
	Versioned

	Bounds() Rect

	// AddToBounds returns r grown to include the primitive. r may be empty.
	AddToBounds(r Rect) Rect

	// Copy returns an independent value-equal primitive with the same revision.
	Copy() Primitive

	// CopyTransformed returns a transformed copy at revision+1.
	CopyTransformed(m Matrix) (Primitive, error)

	Kind() Kind

	// Geometry returns the primitive's geometry as a flat numeric array.
	Geometry() []float64

	// Equal reports whether other is the same variant with equal values.
	Equal(other Primitive) bool
}

// Fillable is implemented by primitives that can be either filled or stroked.
type Fillable interface {
	Filled() bool
	SetFilled(filled bool)
}

// Compile-time interface checks.
var (
	_ Primitive = (*Line)(nil)
	_ Primitive = (*Rectangle)(nil)
	_ Primitive = (*Oval)(nil)
	_ Primitive = (*Circle)(nil)
	_ Primitive = (*Polygon)(nil)
	_ Primitive = (*Polyline)(nil)
	_ Primitive = (*Triangle)(nil)
	_ Primitive = (*Rhombus)(nil)
	_ Primitive = (*Arc)(nil)
	_ Primitive = (*RoundRect)(nil)
	_ Primitive = (*Clear)(nil)
	_ Primitive = (*Image)(nil)
	_ Primitive = (*PathShape)(nil)
	_ Primitive = (*Text)(nil)
	_ Primitive = (*PathText)(nil)

	_ Fillable = (*Rectangle)(nil)
	_ Fillable = (*Polygon)(nil)
	_ Fillable = (*PathShape)(nil)
)
