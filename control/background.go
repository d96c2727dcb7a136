package control

import (
	"xournalpp/model"
	"xournalpp/observability"
)

// PageBackgroundChangeController applies background changes to the current
// page and keeps the change-tracking listeners informed.
type PageBackgroundChangeController struct {
	ctrl *Control
}

// ChangeCurrentPageBackground sets the current page's background. Without a
// current page this is a no-op.
func (pc *PageBackgroundChangeController) ChangeCurrentPageBackground(pt model.PageType) {
	page := pc.ctrl.CurrentPage()
	if page == nil {
		pc.ctrl.log.Warn("changing page background without a current page")
		return
	}
	page.Background = pt
	if !pt.IsPdfPage() {
		page.PdfPageNr = model.NoPdfPage
	}
	pageNo := pc.ctrl.doc.IndexOf(page)
	pc.ctrl.log.Debug("page background changed",
		observability.Int("page", pageNo),
		observability.String("format", string(pt.Format)))
	pc.ctrl.FirePageChanged(pageNo)
}
