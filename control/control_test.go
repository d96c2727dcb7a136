package control

import (
	"testing"

	"xournalpp/model"
	"xournalpp/tool"
)

func newTestControl(pages int) *Control {
	doc := model.NewDocument()
	for i := 0; i < pages; i++ {
		doc.AddPage(model.NewPage(595.28, 841.89))
	}
	return New(Config{Document: doc})
}

func TestNewDefaults(t *testing.T) {
	c := New(Config{})
	if c.Document() == nil || c.ToolHandler() == nil || c.Settings() == nil {
		t.Fatalf("New should fill zero config fields with defaults")
	}
	if c.Settings().DisplayDpi != 72 {
		t.Errorf("default dpi = %d, want 72", c.Settings().DisplayDpi)
	}
	if c.CurrentPage() != nil {
		t.Errorf("empty document should have no current page")
	}
}

func TestFirePageSelectedNotifiesHooks(t *testing.T) {
	c := newTestControl(3)
	var selected []int
	c.AddHooks(&Hooks{PageSelected: func(p int) { selected = append(selected, p) }})

	c.FirePageSelected(2)
	if c.CurrentPageNo() != 2 {
		t.Fatalf("current page = %d, want 2", c.CurrentPageNo())
	}
	if len(selected) != 1 || selected[0] != 2 {
		t.Fatalf("hook calls = %v, want [2]", selected)
	}
}

func TestActionPerformedToolSelection(t *testing.T) {
	c := newTestControl(1)
	c.ActionPerformed(ActionToolHighlighter, GroupTool, true)
	if c.ToolHandler().ActiveType() != tool.TypeHighlighter {
		t.Fatalf("active tool = %v, want highlighter", c.ToolHandler().ActiveType())
	}
	// A disabled tool action must not switch.
	c.ActionPerformed(ActionToolPen, GroupTool, false)
	if c.ToolHandler().ActiveType() != tool.TypeHighlighter {
		t.Fatalf("disabled action switched the tool")
	}
}

func TestActionPerformedSizeAndEraserMode(t *testing.T) {
	c := newTestControl(1)
	c.ActionPerformed(ActionSizeThick, GroupSize, true)
	if c.ToolHandler().ActiveTool().Size != tool.SizeThick {
		t.Fatalf("active tool size = %v, want thick", c.ToolHandler().ActiveTool().Size)
	}
	c.ActionPerformed(ActionToolEraserWhiteout, GroupEraserMode, true)
	if c.ToolHandler().EraserType() != tool.EraserWhiteout {
		t.Fatalf("eraser type = %v, want whiteout", c.ToolHandler().EraserType())
	}
}

func TestActionPerformedDrawingTypeToggle(t *testing.T) {
	c := newTestControl(1)
	c.ActionPerformed(ActionToolDrawEllipse, GroupRuler, true)
	if c.ToolHandler().ActiveTool().DrawingType != tool.DrawingEllipse {
		t.Fatalf("drawing type not set")
	}
	c.ActionPerformed(ActionToolDrawEllipse, GroupRuler, false)
	if c.ToolHandler().ActiveTool().DrawingType != tool.DrawingDefault {
		t.Fatalf("disabling the drawing type should reset to default")
	}
}

func TestActionPerformedNavigation(t *testing.T) {
	c := newTestControl(4)
	c.ActionPerformed(ActionGotoLast, GroupNoGroup, true)
	if c.CurrentPageNo() != 3 {
		t.Fatalf("goto last landed on %d", c.CurrentPageNo())
	}
	c.ActionPerformed(ActionGotoBack, GroupNoGroup, true)
	if c.CurrentPageNo() != 2 {
		t.Fatalf("goto back landed on %d", c.CurrentPageNo())
	}
	c.ActionPerformed(ActionGotoFirst, GroupNoGroup, true)
	c.ActionPerformed(ActionGotoBack, GroupNoGroup, true)
	if c.CurrentPageNo() != 0 {
		t.Fatalf("goto back beyond the first page should clamp, got %d", c.CurrentPageNo())
	}
}

func TestRunSidebarActionReordersPages(t *testing.T) {
	c := newTestControl(3)
	first := c.Document().Page(0)
	second := c.Document().Page(1)

	c.FirePageSelected(0)
	c.RunSidebarAction(SidebarMoveDown)
	if c.Document().Page(0) != second || c.Document().Page(1) != first {
		t.Fatalf("MOVE_DOWN did not swap pages")
	}
	if c.CurrentPageNo() != 1 {
		t.Fatalf("MOVE_DOWN should follow the page, current = %d", c.CurrentPageNo())
	}

	c.RunSidebarAction(SidebarMoveUp)
	if c.Document().Page(0) != first || c.Document().Page(1) != second {
		t.Fatalf("MOVE_UP did not swap pages back")
	}
}

func TestRunSidebarActionCopyDeleteInsert(t *testing.T) {
	c := newTestControl(2)
	c.FirePageSelected(0)
	c.Document().Page(0).AddLayer(model.NewLayer())
	c.Document().Page(0).Layers[0].AddElement(&model.Stroke{Points: []model.Point{{X: 1}, {X: 2}}})

	c.RunSidebarAction(SidebarCopy)
	if c.Document().PageCount() != 3 {
		t.Fatalf("COPY should insert a page, count = %d", c.Document().PageCount())
	}
	if !c.Document().Page(1).Annotated() {
		t.Fatalf("COPY should clone page content")
	}
	if c.CurrentPageNo() != 1 {
		t.Fatalf("COPY should select the copy, current = %d", c.CurrentPageNo())
	}

	c.RunSidebarAction(SidebarDelete)
	if c.Document().PageCount() != 2 {
		t.Fatalf("DELETE should remove the page, count = %d", c.Document().PageCount())
	}

	c.RunSidebarAction(SidebarNewBefore)
	if c.Document().PageCount() != 3 || c.Document().Page(1).Annotated() {
		t.Fatalf("NEW_BEFORE should insert a blank page")
	}
}

func TestChangeColorOfSelection(t *testing.T) {
	c := newTestControl(1)
	stroke := &model.Stroke{Color: 0x112233}
	text := &model.Text{Color: 0x112233}
	c.SetSelection(&EditSelection{Elements: []model.Element{stroke, text}})

	c.ToolHandler().ActiveTool().Color = 0xAABBCC
	c.ChangeColorOfSelection()
	if stroke.Color != 0xAABBCC || text.Color != 0xAABBCC {
		t.Fatalf("selection recolor missed elements: %v %v", stroke.Color, text.Color)
	}

	c.ClearSelectionEndText()
	if c.Selection() != nil {
		t.Fatalf("ClearSelectionEndText should drop the selection")
	}
}

func TestChangeCurrentPageBackground(t *testing.T) {
	c := newTestControl(2)
	c.FirePageSelected(1)
	var changed []int
	c.AddHooks(&Hooks{PageChanged: func(p int) { changed = append(changed, p) }})

	c.PageBackgroundChangeController().ChangeCurrentPageBackground(model.PageType{Format: model.FormatGraph})
	page := c.Document().Page(1)
	if page.Background.Format != model.FormatGraph {
		t.Fatalf("background format = %v, want graph", page.Background.Format)
	}
	if len(changed) != 1 || changed[0] != 1 {
		t.Fatalf("page-changed notifications = %v, want [1]", changed)
	}
}

func TestActionAndGroupTokens(t *testing.T) {
	if _, ok := ActionTypeFromString("ACTION_TOOL_PEN"); !ok {
		t.Errorf("ACTION_TOOL_PEN should be known")
	}
	if _, ok := ActionTypeFromString("ACTION_MAKE_COFFEE"); ok {
		t.Errorf("unknown action token accepted")
	}
	if _, ok := ActionGroupFromString("GROUP_TOOL"); !ok {
		t.Errorf("GROUP_TOOL should be known")
	}
	if _, ok := SidebarActionFromString("MOVE_UP"); !ok {
		t.Errorf("MOVE_UP should be known")
	}
	if _, ok := SidebarActionFromString("ROTATE"); ok {
		t.Errorf("unknown sidebar token accepted")
	}
}
