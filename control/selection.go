package control

import "xournalpp/model"

// EditSelection is the set of elements currently selected for editing.
type EditSelection struct {
	Elements []model.Element
}

// Selection returns the current selection, or nil when nothing is selected.
func (c *Control) Selection() *EditSelection { return c.selection }

// SetSelection installs a selection; nil clears it.
func (c *Control) SetSelection(s *EditSelection) { c.selection = s }

// ChangeColorOfSelection recolors every selected element with the active
// tool's color.
func (c *Control) ChangeColorOfSelection() {
	if c.selection == nil {
		return
	}
	color := c.tools.ActiveTool().Color
	for _, e := range c.selection.Elements {
		switch v := e.(type) {
		case *model.Stroke:
			v.Color = color
		case *model.Text:
			v.Color = color
		}
	}
}

// ClearSelectionEndText finalizes any ongoing text edit and drops the
// selection.
func (c *Control) ClearSelectionEndText() {
	c.selection = nil
}
