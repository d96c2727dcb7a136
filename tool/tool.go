package tool

import "xournalpp/model"

// Capability flags what a tool supports. Tools carry a bitmask of these.
type Capability uint32

const (
	CapColor Capability = 1 << iota
	CapSize
	CapRuler
	CapRectangle
	CapEllipse
	CapArrow
	CapRecognizer
	CapGridPosition
	CapFill
	CapCoordinateSystem
	CapDashLine
)

// Size enumerates the five tool size steps.
type Size int

const (
	SizeVeryFine Size = iota
	SizeFine
	SizeMedium
	SizeThick
	SizeVeryThick
	sizeCount
)

func (s Size) String() string {
	switch s {
	case SizeVeryFine:
		return "veryFine"
	case SizeFine:
		return "fine"
	case SizeMedium:
		return "medium"
	case SizeThick:
		return "thick"
	case SizeVeryThick:
		return "veryThick"
	}
	return ""
}

// DrawingType selects the shape assistant applied while drawing.
type DrawingType int

const (
	DrawingDefault DrawingType = iota
	DrawingLine
	DrawingRectangle
	DrawingEllipse
	DrawingArrow
	DrawingCoordinateSystem
	DrawingShapeRecognizer
	DrawingSpline
)

func (d DrawingType) String() string {
	switch d {
	case DrawingLine:
		return "line"
	case DrawingRectangle:
		return "rectangle"
	case DrawingEllipse:
		return "ellipse"
	case DrawingArrow:
		return "arrow"
	case DrawingCoordinateSystem:
		return "coordinateSystem"
	case DrawingShapeRecognizer:
		return "shapeRecognizer"
	case DrawingSpline:
		return "spline"
	}
	return "default"
}

// EraserType selects how the eraser removes ink.
type EraserType int

const (
	EraserStandard EraserType = iota
	EraserWhiteout
	EraserDeleteStroke
)

func (e EraserType) String() string {
	switch e {
	case EraserWhiteout:
		return "whiteout"
	case EraserDeleteStroke:
		return "deleteStroke"
	}
	return "default"
}

// Tool is the live state of one selectable tool.
type Tool struct {
	Type         Type
	Capabilities Capability
	Color        model.Color
	Size         Size
	Thickness    [sizeCount]float64
	FillEnabled  bool
	FillOpacity  int
	DrawingType  DrawingType
	LineStyle    model.LineStyle
}

// HasCapability reports whether the tool supports c.
func (t *Tool) HasCapability(c Capability) bool { return t.Capabilities&c != 0 }

// ActiveThickness returns the thickness for the tool's current size.
func (t *Tool) ActiveThickness() float64 { return t.Thickness[t.Size] }

// Snapshot is a read-only view of a tool's attributes, taken at the start
// of attribute resolution so a call sees one consistent state.
type Snapshot struct {
	Type        Type
	Size        Size
	Thickness   float64
	Color       model.Color
	FillEnabled bool
	FillOpacity int
	DrawingType DrawingType
	LineStyle   model.LineStyle
}
