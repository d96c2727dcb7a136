package control

import (
	"fmt"

	"xournalpp/model"
	"xournalpp/observability"
)

// LayerController owns the current page selection and every layer
// operation scripts and menus can trigger.
type LayerController struct {
	ctrl        *Control
	currentPage int
}

// CurrentPageID returns the 0-based current page index.
func (lc *LayerController) CurrentPageID() int { return lc.currentPage }

// CurrentPage returns the current page, or nil for an empty document.
func (lc *LayerController) CurrentPage() *model.Page {
	return lc.ctrl.doc.Page(lc.currentPage)
}

// SwitchToLayer selects the layer with the given id on the current page.
// With update set, layers up to and including id become visible and the
// ones above are hidden; the background follows the same rule as id 0.
func (lc *LayerController) SwitchToLayer(id int, update bool) {
	page := lc.CurrentPage()
	if page == nil {
		return
	}
	page.SelectedLayerID = id
	if update {
		page.BackgroundVisible = true
		for i, l := range page.Layers {
			l.Visible = i+1 <= id
		}
	}
	lc.ctrl.log.Debug("layer selected",
		observability.Int("layer", id),
		observability.Bool("update", update))
}

// SetLayerVisible changes the visibility of the layer with the given id on
// the current page; id 0 addresses the background.
func (lc *LayerController) SetLayerVisible(id int, visible bool) {
	page := lc.CurrentPage()
	if page == nil {
		return
	}
	if id == 0 {
		page.BackgroundVisible = visible
		return
	}
	if l := page.Layer(id); l != nil {
		l.Visible = visible
	}
}

// SetCurrentLayerName names the selected layer of the current page.
func (lc *LayerController) SetCurrentLayerName(name string) {
	page := lc.CurrentPage()
	if page == nil {
		return
	}
	page.SelectedLayer().Name = name
}

// LayerNameByID returns the display name of a content layer: its explicit
// name when set, "Layer N" otherwise.
func (lc *LayerController) LayerNameByID(page *model.Page, id int) string {
	if l := page.Layer(id); l != nil && l.Name != "" {
		return l.Name
	}
	return fmt.Sprintf("Layer %d", id)
}

// ActionPerformed dispatches a layer action.
func (lc *LayerController) ActionPerformed(action ActionType) error {
	switch action {
	case ActionNewLayer:
		lc.addNewLayer()
	case ActionDeleteLayer:
		lc.deleteCurrentLayer()
	case ActionMergeLayerDown:
		lc.mergeCurrentLayerDown()
	case ActionGotoNextLayer:
		lc.gotoLayer(+1)
	case ActionGotoPreviousLayer:
		lc.gotoLayer(-1)
	case ActionGotoTopLayer:
		if page := lc.CurrentPage(); page != nil {
			lc.SwitchToLayer(page.LayerCount(), false)
		}
	default:
		return fmt.Errorf("unknown layer action %s", action)
	}
	return nil
}

// addNewLayer inserts an empty layer right above the selected one and
// selects it.
func (lc *LayerController) addNewLayer() {
	lc.ctrl.ClearSelectionEndText()
	page := lc.CurrentPage()
	if page == nil {
		return
	}
	page.InsertLayer(model.NewLayer(), page.SelectedLayerID)
}

// deleteCurrentLayer removes the selected content layer. The background
// cannot be deleted.
func (lc *LayerController) deleteCurrentLayer() {
	page := lc.CurrentPage()
	if page == nil {
		return
	}
	id := page.SelectedLayerID
	if id < 1 {
		return
	}
	page.RemoveLayer(id)
	page.SelectedLayerID = id - 1
}

// mergeCurrentLayerDown moves the selected layer's elements into the layer
// below and removes the emptied layer.
func (lc *LayerController) mergeCurrentLayerDown() {
	page := lc.CurrentPage()
	if page == nil {
		return
	}
	id := page.SelectedLayerID
	if id < 2 {
		return
	}
	below := page.Layer(id - 1)
	below.Elements = append(below.Elements, page.Layer(id).Elements...)
	page.RemoveLayer(id)
	page.SelectedLayerID = id - 1
}

func (lc *LayerController) gotoLayer(delta int) {
	page := lc.CurrentPage()
	if page == nil {
		return
	}
	id := page.SelectedLayerID + delta
	if id < 0 {
		id = 0
	}
	if id > page.LayerCount() {
		id = page.LayerCount()
	}
	lc.SwitchToLayer(id, false)
}
