package tool

import "xournalpp/model"

// Handler is the registry of tool state: one Tool per type plus the active
// selection and the eraser mode.
type Handler struct {
	tools      map[Type]*Tool
	active     Type
	eraserType EraserType
}

// NewHandler builds a handler with the default tool set: every tool type is
// present, drawing tools carry the stock thickness tables.
func NewHandler() *Handler {
	h := &Handler{
		tools:  make(map[Type]*Tool),
		active: TypePen,
	}

	drawCaps := CapColor | CapSize | CapRuler | CapRectangle | CapEllipse |
		CapArrow | CapRecognizer | CapGridPosition | CapFill | CapCoordinateSystem

	pen := &Tool{
		Type:         TypePen,
		Capabilities: drawCaps | CapDashLine,
		Color:        0x000000,
		Size:         SizeFine,
		Thickness:    [sizeCount]float64{0.42, 0.85, 1.41, 2.26, 5.67},
		FillOpacity:  255,
	}
	highlighter := &Tool{
		Type:         TypeHighlighter,
		Capabilities: drawCaps,
		Color:        0xFFFF00,
		Size:         SizeMedium,
		Thickness:    [sizeCount]float64{1, 2.83, 8.5, 12, 18},
		FillOpacity:  120,
	}
	eraser := &Tool{
		Type:         TypeEraser,
		Capabilities: CapSize,
		Size:         SizeMedium,
		Thickness:    [sizeCount]float64{1.41, 2.83, 8.5, 12, 18},
		FillOpacity:  model.NoFill,
	}
	text := &Tool{
		Type:         TypeText,
		Capabilities: CapColor,
		Color:        0x000000,
		FillOpacity:  model.NoFill,
	}

	h.tools[TypePen] = pen
	h.tools[TypeHighlighter] = highlighter
	h.tools[TypeEraser] = eraser
	h.tools[TypeText] = text

	for t := TypeNone; t <= TypeFloatingToolbox; t++ {
		if _, ok := h.tools[t]; !ok {
			h.tools[t] = &Tool{Type: t, FillOpacity: model.NoFill}
		}
	}
	return h
}

// Tool returns the live state for t.
func (h *Handler) Tool(t Type) *Tool { return h.tools[t] }

// ActiveType returns the selected tool type.
func (h *Handler) ActiveType() Type { return h.active }

// ActiveTool returns the selected tool's live state.
func (h *Handler) ActiveTool() *Tool { return h.tools[h.active] }

// SelectTool makes t the active tool.
func (h *Handler) SelectTool(t Type) { h.active = t }

// Thickness returns the thickness of tool t at size s.
func (h *Handler) Thickness(t Type, s Size) float64 {
	return h.tools[t].Thickness[s]
}

func (h *Handler) PenSize() Size         { return h.tools[TypePen].Size }
func (h *Handler) HighlighterSize() Size { return h.tools[TypeHighlighter].Size }
func (h *Handler) EraserSize() Size      { return h.tools[TypeEraser].Size }

// PenFillEnabled reports whether pen strokes are filled by default.
func (h *Handler) PenFillEnabled() bool { return h.tools[TypePen].FillEnabled }

// PenFill returns the pen fill opacity.
func (h *Handler) PenFill() int { return h.tools[TypePen].FillOpacity }

// HighlighterFillEnabled reports whether highlighter strokes are filled by
// default.
func (h *Handler) HighlighterFillEnabled() bool { return h.tools[TypeHighlighter].FillEnabled }

// HighlighterFill returns the highlighter fill opacity.
func (h *Handler) HighlighterFill() int { return h.tools[TypeHighlighter].FillOpacity }

// Fill returns the active tool's fill opacity, or model.NoFill when fill is
// off.
func (h *Handler) Fill() int {
	t := h.ActiveTool()
	if t.FillEnabled {
		return t.FillOpacity
	}
	return model.NoFill
}

// EraserType returns the eraser mode.
func (h *Handler) EraserType() EraserType { return h.eraserType }

// SetEraserType selects the eraser mode.
func (h *Handler) SetEraserType(e EraserType) { h.eraserType = e }

// Snapshot captures t's attributes for deterministic resolution.
func (h *Handler) Snapshot(t Type) Snapshot {
	tl := h.tools[t]
	return Snapshot{
		Type:        tl.Type,
		Size:        tl.Size,
		Thickness:   tl.ActiveThickness(),
		Color:       tl.Color,
		FillEnabled: tl.FillEnabled,
		FillOpacity: tl.FillOpacity,
		DrawingType: tl.DrawingType,
		LineStyle:   tl.LineStyle,
	}
}
