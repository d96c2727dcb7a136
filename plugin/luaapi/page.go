package luaapi

import (
	lua "github.com/yuin/gopher-lua"

	"xournalpp/model"
)

// scrollToPage scrolls the view to a page given by its 1-based number,
// or by an offset from the current page when relative is set. The
// resolved index is clamped to the document.
func (a *API) scrollToPage(L *lua.LState) int {
	page := L.CheckInt(1)
	relative := L.OptBool(2, false)

	count := a.ctrl.Document().PageCount()
	if count == 0 {
		return 0
	}
	target := page - 1
	if relative {
		target = a.ctrl.CurrentPageNo() + page
	}
	if target < 0 {
		target = 0
	}
	if target > count-1 {
		target = count - 1
	}
	a.ctrl.ScrollHandler().ScrollToPage(target)
	return 0
}

// scrollToPos scrolls within the layout, relative to the current
// position by default.
func (a *API) scrollToPos(L *lua.LState) int {
	dx := float64(L.CheckNumber(1))
	dy := float64(L.CheckNumber(2))
	relative := L.OptBool(3, true)

	if relative {
		a.ctrl.Layout().ScrollRelative(dx, dy)
	} else {
		a.ctrl.Layout().ScrollAbs(dx, dy)
	}
	return 0
}

// setCurrentPage selects a page by its 1-based number, clamped to the
// document.
func (a *API) setCurrentPage(L *lua.LState) int {
	pageID := L.CheckInt(1)

	count := a.ctrl.Document().PageCount()
	if count == 0 {
		return 0
	}
	if pageID < 1 {
		pageID = 1
	}
	if pageID > count {
		pageID = count
	}
	a.ctrl.FirePageSelected(pageID - 1)
	return 0
}

// setPageSize resizes the current page. With relative set the values
// are added to the current size. Sizes that do not resolve to positive
// dimensions are ignored; a committed resize is announced to the
// host's size-change listeners after the document lock is released.
func (a *API) setPageSize(L *lua.LState) int {
	width := float64(L.CheckNumber(1))
	height := float64(L.CheckNumber(2))
	relative := L.OptBool(3, false)

	doc := a.ctrl.Document()
	page := a.ctrl.CurrentPage()
	if page == nil {
		a.raise(L, statef("No page!"))
		return 0
	}
	if relative {
		width += page.Width
		height += page.Height
	}
	if width <= 0 || height <= 0 {
		return 0
	}

	doc.Lock()
	doc.SetPageSize(page, width, height)
	doc.Unlock()
	a.ctrl.FirePageSizeChanged(a.ctrl.CurrentPageNo())
	return 0
}

// refreshPage redraws the current page.
func (a *API) refreshPage(L *lua.LState) int {
	if a.ctrl.CurrentPage() == nil {
		a.log.Warn("refreshPage called, but no page is selected")
		return 0
	}
	a.ctrl.FirePageChanged(a.ctrl.CurrentPageNo())
	return 0
}

// changeCurrentPageBackground switches the current page to a new
// background type.
//
//	app.changeCurrentPageBackground("isodotted")
func (a *API) changeCurrentPageBackground(L *lua.LState) int {
	format := L.CheckString(1)
	config := L.OptString(2, "")

	f, ok := model.PageTypeFormatFromString(format)
	if !ok {
		a.raise(L, domainf("Unknown page type format: %s", format))
		return 0
	}
	pt := model.PageType{Format: f, Config: config}
	a.ctrl.PageBackgroundChangeController().ChangeCurrentPageBackground(pt)
	return 0
}

// changeBackgroundPdfPageNr rebinds the current page to a page of the
// background pdf, given 1-based absolute or relative to the page's
// current pdf binding. The page's on-canvas size follows the pdf
// page's natural size.
func (a *API) changeBackgroundPdfPageNr(L *lua.LState) int {
	nr := L.CheckInt(1)
	relative := L.OptBool(2, true)

	doc := a.ctrl.Document()
	page := a.ctrl.CurrentPage()
	if page == nil {
		a.raise(L, statef("No page!"))
		return 0
	}

	selected := nr - 1
	if relative {
		if !page.Background.IsPdfPage() {
			a.raise(L, statef("Current page has no pdf background, cannot use relative mode!"))
			return 0
		}
		selected = page.PdfPageNr + nr
	}

	background := doc.Background()
	if background == nil || selected < 0 || selected >= background.PageCount() {
		a.raise(L, domainf("Pdf page number %d does not exist!", selected+1))
		return 0
	}
	width, height, err := background.PageSize(selected)
	if err != nil {
		a.raise(L, statef("%v", err))
		return 0
	}

	doc.Lock()
	page.PdfPageNr = selected
	page.Background = model.PageType{Format: model.FormatPdf}
	doc.SetPageSize(page, width, height)
	doc.Unlock()
	a.ctrl.FirePageChanged(a.ctrl.CurrentPageNo())
	return 0
}

// setBackgroundName names the current page's background layer.
// Non-string values are ignored.
func (a *API) setBackgroundName(L *lua.LState) int {
	page := a.ctrl.CurrentPage()
	if page == nil {
		a.raise(L, statef("No page!"))
		return 0
	}
	if name, ok := L.Get(1).(lua.LString); ok {
		page.BackgroundName = string(name)
	}
	return 0
}
