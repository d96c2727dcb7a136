package model

// Element is a drawable item on a layer.
type Element interface {
	element()
	Type() string
}

// StrokeTool identifies which pen family produced a stroke.
type StrokeTool int

const (
	StrokeToolPen StrokeTool = iota
	StrokeToolEraser
	StrokeToolHighlighter
)

func (t StrokeTool) String() string {
	switch t {
	case StrokeToolEraser:
		return "eraser"
	case StrokeToolHighlighter:
		return "highlighter"
	default:
		return "pen"
	}
}

// NoFill marks a stroke without fill; fill values 1..255 are an opacity.
const NoFill = -1

// Stroke is a freehand polyline with resolved visual attributes.
type Stroke struct {
	Tool   StrokeTool
	Width  float64
	Color  Color
	Fill   int
	Style  LineStyle
	Points []Point
}

func (*Stroke) element()     {}
func (*Stroke) Type() string { return "stroke" }

// AddPoint appends p to the stroke.
func (s *Stroke) AddPoint(p Point) { s.Points = append(s.Points, p) }

// PointCount returns the number of points in the stroke.
func (s *Stroke) PointCount() int { return len(s.Points) }

// Filled reports whether the stroke carries a fill opacity.
func (s *Stroke) Filled() bool { return s.Fill != NoFill }

// Font pairs a font family name with a size in points.
type Font struct {
	Name string
	Size float64
}

// Text is a positioned text element.
type Text struct {
	Font    Font
	Color   Color
	X       float64
	Y       float64
	Content string
}

func (*Text) element()     {}
func (*Text) Type() string { return "text" }

// Scale resizes the text about the origin (x0, y0). The font size follows
// the horizontal factor.
func (t *Text) Scale(x0, y0, fx, fy float64) {
	t.X = x0 + (t.X-x0)*fx
	t.Y = y0 + (t.Y-y0)*fy
	t.Font.Size *= fx
}
