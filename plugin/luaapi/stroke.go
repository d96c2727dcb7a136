package luaapi

import (
	lua "github.com/yuin/gopher-lua"

	"xournalpp/model"
	"xournalpp/observability"
	"xournalpp/tool"
)

// addStroke adds a freehand stroke to the current layer. The x and y
// tables are required and must have equal length; pressure is optional
// but must match the point count when given. Attributes missing from
// the options table fall back to the current tool configuration.
//
//	app.addStroke({
//	  x = {100, 120, 140},
//	  y = {100, 80, 100},
//	  pressure = {0.8, 1.2, 0.8},
//	  tool = "pen",
//	  width = 1.41,
//	  color = 0x2a2a2a,
//	})
func (a *API) addStroke(L *lua.LState) int {
	opts := L.CheckTable(1)

	xt, ok := tableTable(opts, "x")
	if !ok {
		a.raise(L, validationf("Missing X-Coordinate table!"))
		return 0
	}
	yt, ok := tableTable(opts, "y")
	if !ok {
		a.raise(L, validationf("Missing Y-Coordinate table!"))
		return 0
	}
	x, err := numberSequence(xt)
	if err != nil {
		a.raise(L, err)
		return 0
	}
	y, err := numberSequence(yt)
	if err != nil {
		a.raise(L, err)
		return 0
	}
	var pressure []float64
	if pt, ok := tableTable(opts, "pressure"); ok {
		if pressure, err = numberSequence(pt); err != nil {
			a.raise(L, err)
			return 0
		}
	} else {
		a.log.Warn("Missing pressure table. Assuming no pressure.")
	}

	if len(x) != len(y) {
		a.raise(L, validationf("X and Y vectors are not equal length!"))
		return 0
	}
	if len(pressure) > 0 && len(pressure) != len(x) {
		a.raise(L, validationf("Pressure vector is not equal length!"))
		return 0
	}

	draft := a.draftStroke(opts)
	for i := range x {
		p := model.Point{X: x[i], Y: y[i], Pressure: model.NoPressure}
		if len(pressure) > 0 {
			p.Pressure = pressure[i]
		}
		draft.AddPoint(p)
	}
	a.commitStroke(draft)
	return 0
}

// addSpline adds a stroke built from cubic bezier segments. The splines
// table is a flat number sequence holding eight coordinates per
// segment: start, first control, second control and end point, each as
// an x/y pair. Segments are flattened into stroke points; spline
// strokes carry no pressure.
//
//	app.addSpline({
//	  splines = {100, 100, 120, 80, 140, 80, 160, 100},
//	  tool = "pen",
//	})
func (a *API) addSpline(L *lua.LState) int {
	opts := L.CheckTable(1)

	st, ok := tableTable(opts, "splines")
	if !ok {
		a.raise(L, validationf("Missing Spline table!"))
		return 0
	}
	coords, err := numberSequence(st)
	if err != nil {
		a.raise(L, err)
		return 0
	}
	if len(coords)%8 != 0 {
		a.raise(L, validationf("Spline table incomplete!"))
		return 0
	}

	draft := a.draftStroke(opts)
	for i := 0; i < len(coords); i += 8 {
		seg := model.SplineSegment{
			Start: model.Point{X: coords[i], Y: coords[i+1], Pressure: model.NoPressure},
			Ctrl1: model.Point{X: coords[i+2], Y: coords[i+3], Pressure: model.NoPressure},
			Ctrl2: model.Point{X: coords[i+4], Y: coords[i+5], Pressure: model.NoPressure},
			End:   model.Point{X: coords[i+6], Y: coords[i+7], Pressure: model.NoPressure},
		}
		for _, p := range seg.ToPointSequence() {
			draft.AddPoint(p)
		}
	}
	a.commitStroke(draft)
	return 0
}

// draftStroke builds an empty stroke whose attributes come from the
// options table, falling back per attribute to the tool the stroke
// maps to. The tool state is read at call time, so two calls with the
// same options may produce different strokes if the tool changed in
// between.
func (a *API) draftStroke(opts *lua.LTable) *model.Stroke {
	strokeTool := model.StrokeToolPen
	snapshotType := tool.TypePen
	if tag, ok := tableString(opts, "tool"); ok {
		switch tag {
		case "pen":
		case "highlighter":
			strokeTool = model.StrokeToolHighlighter
			snapshotType = tool.TypeHighlighter
		default:
			a.log.Warn("unknown stroke tool, defaulting to pen", observability.String("tool", tag))
		}
	}
	snap := a.ctrl.ToolHandler().Snapshot(snapshotType)

	stroke := &model.Stroke{Tool: strokeTool, Style: snap.LineStyle}

	stroke.Width = snap.Thickness
	if w, ok := tableNumber(opts, "width"); ok {
		stroke.Width = w
	}

	stroke.Color = snap.Color
	if c, ok := tableNumber(opts, "color"); ok {
		if err := checkColor(int64(c)); err != nil {
			a.log.Warn(err.Error())
		} else {
			stroke.Color = model.Color(c)
		}
	}

	stroke.Fill = model.NoFill
	if snap.FillEnabled {
		stroke.Fill = snap.FillOpacity
	}
	if f, ok := tableNumber(opts, "fill"); ok {
		stroke.Fill = int(f)
	}

	if s, ok := tableString(opts, "lineStyle"); ok {
		stroke.Style = model.ParseStyle(s)
	}
	return stroke
}

// commitStroke appends a finished stroke to the selected layer of the
// current page and fires a page-changed notification. Strokes with
// fewer than two points are discarded.
func (a *API) commitStroke(stroke *model.Stroke) {
	if n := stroke.PointCount(); n < 2 {
		a.log.Warn("stroke discarded, fewer than two points", observability.Int("points", n))
		return
	}
	page := a.ctrl.CurrentPage()
	if page == nil {
		a.log.Warn("no page selected, discarding stroke")
		return
	}
	page.SelectedLayer().AddElement(stroke)
	a.ctrl.FirePageChanged(a.ctrl.CurrentPageNo())
}
