package tool

import "strings"

// Type enumerates the host's selectable tools.
type Type int

const (
	TypeNone Type = iota
	TypePen
	TypeEraser
	TypeHighlighter
	TypeText
	TypeImage
	TypeSelectRect
	TypeSelectRegion
	TypeSelectObject
	TypeVerticalSpace
	TypeHand
	TypePlayObject
	TypeDrawRect
	TypeDrawEllipse
	TypeDrawArrow
	TypeDrawCoordinateSystem
	TypeDrawSpline
	TypeFloatingToolbox
)

var typeNames = map[Type]string{
	TypeNone:                 "none",
	TypePen:                  "pen",
	TypeEraser:               "eraser",
	TypeHighlighter:          "highlighter",
	TypeText:                 "text",
	TypeImage:                "image",
	TypeSelectRect:           "selectRect",
	TypeSelectRegion:         "selectRegion",
	TypeSelectObject:         "selectObject",
	TypeVerticalSpace:        "verticalSpace",
	TypeHand:                 "hand",
	TypePlayObject:           "playObject",
	TypeDrawRect:             "drawRect",
	TypeDrawEllipse:          "drawEllipse",
	TypeDrawArrow:            "drawArrow",
	TypeDrawCoordinateSystem: "drawCoordinateSystem",
	TypeDrawSpline:           "drawSpline",
	TypeFloatingToolbox:      "floatingToolbox",
}

var typesByName = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t, n := range typeNames {
		m[strings.ToLower(n)] = t
	}
	return m
}()

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "none"
}

// TypeFromString resolves a tool name case-insensitively. ok is false for
// names outside the catalogue.
func TypeFromString(name string) (Type, bool) {
	t, ok := typesByName[strings.ToLower(name)]
	return t, ok
}
