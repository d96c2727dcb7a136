package luaapi

import (
	lua "github.com/yuin/gopher-lua"

	"xournalpp/model"
)

// setCurrentLayer selects a layer of the current page by id; id 0 is
// the background. With update set, layers up to and including the id
// become visible and the ones above it hidden.
func (a *API) setCurrentLayer(L *lua.LState) int {
	layerID := L.CheckInt(1)
	update := L.OptBool(2, false)

	page := a.ctrl.CurrentPage()
	if page == nil {
		a.raise(L, statef("No page!"))
		return 0
	}
	if layerID < 0 || layerID > page.LayerCount() {
		a.raise(L, validationf("No layer with layer ID %d", layerID))
		return 0
	}
	a.ctrl.LayerController().SwitchToLayer(layerID, update)
	return 0
}

// setLayerVisibility shows or hides the currently selected layer.
func (a *API) setLayerVisibility(L *lua.LState) int {
	visible := L.OptBool(1, true)

	page := a.ctrl.CurrentPage()
	if page == nil {
		a.log.Warn("setLayerVisibility called, but no page is selected")
		return 0
	}
	a.ctrl.LayerController().SetLayerVisible(page.SelectedLayerID, visible)
	return 0
}

// setCurrentLayerName renames the currently selected layer. Non-string
// values are ignored.
func (a *API) setCurrentLayerName(L *lua.LState) int {
	if name, ok := L.Get(1).(lua.LString); ok {
		a.ctrl.LayerController().SetCurrentLayerName(string(name))
	}
	return 0
}

// scaleTextElements rescales every text element on the currently
// selected layer in place, each about its own anchor point.
func (a *API) scaleTextElements(L *lua.LState) int {
	factor := float64(L.CheckNumber(1))

	a.ctrl.ClearSelectionEndText()
	page := a.ctrl.CurrentPage()
	if page == nil {
		return 0
	}
	scaled := 0
	for _, el := range page.SelectedLayer().Elements {
		if text, ok := el.(*model.Text); ok {
			text.Scale(text.X, text.Y, factor, factor)
			scaled++
		}
	}
	if scaled > 0 {
		a.ctrl.FirePageChanged(a.ctrl.CurrentPageNo())
	}
	return 0
}
