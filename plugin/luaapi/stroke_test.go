package luaapi

import (
	"testing"

	"xournalpp/control"
	"xournalpp/model"
	"xournalpp/tool"
)

func committedStroke(t *testing.T, f *fixture, i int) *model.Stroke {
	t.Helper()
	layer := f.ctrl.CurrentPage().SelectedLayer()
	if len(layer.Elements) <= i {
		t.Fatalf("expected at least %d elements, got %d", i+1, len(layer.Elements))
	}
	stroke, ok := layer.Elements[i].(*model.Stroke)
	if !ok {
		t.Fatalf("expected a stroke, got %T", layer.Elements[i])
	}
	return stroke
}

func TestAddStrokeWithPressure(t *testing.T) {
	f := newFixture(t, 1)
	changed := 0
	f.ctrl.AddHooks(&control.Hooks{PageChanged: func(int) { changed++ }})

	f.run(t, `app.addStroke({
		x = {100, 120, 140},
		y = {100, 80, 100},
		pressure = {0.8, 1.2, 0.8},
	})`)

	stroke := committedStroke(t, f, 0)
	if got := stroke.PointCount(); got != 3 {
		t.Fatalf("expected 3 points, got %d", got)
	}
	want := []model.Point{
		{X: 100, Y: 100, Pressure: 0.8},
		{X: 120, Y: 80, Pressure: 1.2},
		{X: 140, Y: 100, Pressure: 0.8},
	}
	for i, p := range stroke.Points {
		if p != want[i] {
			t.Errorf("point %d: expected %+v, got %+v", i, want[i], p)
		}
	}
	if changed != 1 {
		t.Errorf("expected one page-changed notification, got %d", changed)
	}
}

func TestAddStrokeWithoutPressure(t *testing.T) {
	f := newFixture(t, 1)
	f.run(t, `app.addStroke({x = {0, 10}, y = {0, 10}})`)

	stroke := committedStroke(t, f, 0)
	for i, p := range stroke.Points {
		if p.Pressure != model.NoPressure {
			t.Errorf("point %d: expected no pressure, got %v", i, p.Pressure)
		}
		if p.HasPressure() {
			t.Errorf("point %d: expected HasPressure false", i)
		}
	}
}

func TestAddStrokeVectorErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"missing x", `app.addStroke({y = {1, 2}})`, "Missing X-Coordinate table!"},
		{"missing y", `app.addStroke({x = {1, 2}})`, "Missing Y-Coordinate table!"},
		{"length mismatch", `app.addStroke({x = {1, 2, 3}, y = {1, 2}})`, "X and Y vectors are not equal length!"},
		{"pressure mismatch", `app.addStroke({x = {1, 2, 3}, y = {1, 2, 3}, pressure = {1, 2}})`, "Pressure vector is not equal length!"},
		{"non-number entry", `app.addStroke({x = {1, "two", 3}, y = {1, 2, 3}})`, "entry 2 is not a number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 1)
			changed := 0
			f.ctrl.AddHooks(&control.Hooks{PageChanged: func(int) { changed++ }})

			f.runError(t, tt.script, tt.want)
			if got := len(f.ctrl.CurrentPage().SelectedLayer().Elements); got != 0 {
				t.Errorf("expected layer unchanged, got %d elements", got)
			}
			if changed != 0 {
				t.Errorf("expected no notification, got %d", changed)
			}
		})
	}
}

func TestAddStrokeDiscardsSinglePoint(t *testing.T) {
	f := newFixture(t, 1)
	f.run(t, `app.addStroke({x = {5}, y = {5}})`)
	if got := len(f.ctrl.CurrentPage().SelectedLayer().Elements); got != 0 {
		t.Errorf("expected single-point stroke discarded, got %d elements", got)
	}
}

func TestAddStrokeDefaultsFromToolState(t *testing.T) {
	f := newFixture(t, 1)
	f.run(t, `app.addStroke({x = {0, 10}, y = {0, 10}})`)

	stroke := committedStroke(t, f, 0)
	if stroke.Tool != model.StrokeToolPen {
		t.Errorf("expected pen stroke, got %v", stroke.Tool)
	}
	if stroke.Width != 0.85 {
		t.Errorf("expected the pen's fine thickness 0.85, got %v", stroke.Width)
	}
	if stroke.Color != 0 {
		t.Errorf("expected the pen color, got 0x%x", uint32(stroke.Color))
	}
	if stroke.Fill != model.NoFill {
		t.Errorf("expected no fill, got %d", stroke.Fill)
	}
	if got := model.FormatStyle(stroke.Style); got != "plain" {
		t.Errorf("expected plain line style, got %s", got)
	}
}

func TestAddStrokeOverrides(t *testing.T) {
	f := newFixture(t, 1)
	f.run(t, `app.addStroke({
		x = {0, 10}, y = {0, 10},
		tool = "highlighter",
		width = 3.5,
		color = 0x123456,
		fill = 128,
		lineStyle = "dash",
	})`)

	stroke := committedStroke(t, f, 0)
	if stroke.Tool != model.StrokeToolHighlighter {
		t.Errorf("expected highlighter stroke, got %v", stroke.Tool)
	}
	if stroke.Width != 3.5 || stroke.Color != 0x123456 || stroke.Fill != 128 {
		t.Errorf("expected overrides applied, got width %v color 0x%x fill %d",
			stroke.Width, uint32(stroke.Color), stroke.Fill)
	}
	if got := model.FormatStyle(stroke.Style); got != "dash" {
		t.Errorf("expected dash line style, got %s", got)
	}
}

func TestAddStrokeResolvesToolStateAtCallTime(t *testing.T) {
	f := newFixture(t, 1)
	script := `app.addStroke({x = {0, 10}, y = {0, 10}, width = 5})`

	f.run(t, script)
	f.ctrl.ToolHandler().Tool(tool.TypePen).Color = 0xff0000
	f.run(t, script)

	if got := committedStroke(t, f, 0).Color; got != 0 {
		t.Errorf("expected first stroke in the old color, got 0x%x", uint32(got))
	}
	if got := committedStroke(t, f, 1).Color; got != 0xff0000 {
		t.Errorf("expected second stroke in the live color, got 0x%x", uint32(got))
	}
}

func TestAddStrokeInvalidColorKeepsToolColor(t *testing.T) {
	f := newFixture(t, 1)
	f.run(t, `app.addStroke({x = {0, 10}, y = {0, 10}, color = 0x1000000})`)

	stroke := committedStroke(t, f, 0)
	if stroke.Color != 0 {
		t.Errorf("expected the pen color kept, got 0x%x", uint32(stroke.Color))
	}
}

func TestAddStrokeUnknownToolFallsBackToPen(t *testing.T) {
	f := newFixture(t, 1)
	f.run(t, `app.addStroke({x = {0, 10}, y = {0, 10}, tool = "crayon"})`)

	if got := committedStroke(t, f, 0).Tool; got != model.StrokeToolPen {
		t.Errorf("expected fallback to pen, got %v", got)
	}
}

func TestAddStrokeHighlighterFill(t *testing.T) {
	f := newFixture(t, 1)
	hl := f.ctrl.ToolHandler().Tool(tool.TypeHighlighter)
	hl.FillEnabled = true

	f.run(t, `app.addStroke({x = {0, 10}, y = {0, 10}, tool = "highlighter"})`)
	if got := committedStroke(t, f, 0).Fill; got != 120 {
		t.Errorf("expected the highlighter fill opacity 120, got %d", got)
	}
}

func TestAddSplineStraightSegment(t *testing.T) {
	f := newFixture(t, 1)
	f.run(t, `app.addSpline({splines = {0, 0, 10, 0, 20, 0, 30, 0}})`)

	stroke := committedStroke(t, f, 0)
	if got := stroke.PointCount(); got != 2 {
		t.Fatalf("expected a straight segment to flatten to 2 points, got %d", got)
	}
	if stroke.Points[0].X != 0 || stroke.Points[1].X != 30 {
		t.Errorf("expected endpoints preserved, got %v and %v", stroke.Points[0], stroke.Points[1])
	}
	for i, p := range stroke.Points {
		if p.Pressure != model.NoPressure {
			t.Errorf("point %d: expected no pressure, got %v", i, p.Pressure)
		}
	}
}

func TestAddSplineCurvedSegments(t *testing.T) {
	f := newFixture(t, 1)
	f.run(t, `app.addSpline({splines = {
		0, 0, 10, 40, 20, 40, 30, 0,
		30, 0, 40, -40, 50, -40, 60, 0,
	}})`)

	stroke := committedStroke(t, f, 0)
	if got := stroke.PointCount(); got < 4 {
		t.Fatalf("expected curved segments to flatten to more points, got %d", got)
	}
	last := stroke.Points[stroke.PointCount()-1]
	if last.X != 60 || last.Y != 0 {
		t.Errorf("expected the final endpoint preserved, got %+v", last)
	}
}

func TestAddSplineTableErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"missing table", `app.addSpline({})`, "Missing Spline table!"},
		{"incomplete", `app.addSpline({splines = {0, 0, 10, 0, 20, 0, 30}})`, "Spline table incomplete!"},
		{"non-number entry", `app.addSpline({splines = {0, "x", 10, 0, 20, 0, 30, 0}})`, "entry 2 is not a number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 1)
			f.runError(t, tt.script, tt.want)
			if got := len(f.ctrl.CurrentPage().SelectedLayer().Elements); got != 0 {
				t.Errorf("expected layer unchanged, got %d elements", got)
			}
		})
	}
}

func TestAddSplineEmptyTableDiscardsQuietly(t *testing.T) {
	f := newFixture(t, 1)
	// Zero coordinates are a complete table of zero segments; the empty
	// draft is discarded without an error.
	f.run(t, `app.addSpline({splines = {}})`)
	if got := len(f.ctrl.CurrentPage().SelectedLayer().Elements); got != 0 {
		t.Errorf("expected no stroke, got %d elements", got)
	}
}

func TestAddStrokeWithoutPage(t *testing.T) {
	f := newFixture(t, 0)
	changed := 0
	f.ctrl.AddHooks(&control.Hooks{PageChanged: func(int) { changed++ }})

	f.run(t, `app.addStroke({x = {0, 10}, y = {0, 10}})`)
	if changed != 0 {
		t.Errorf("expected the stroke dropped without a page, got %d notifications", changed)
	}
}
