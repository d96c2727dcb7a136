package luaapi

import (
	lua "github.com/yuin/gopher-lua"
)

// getDocumentStructure returns a table describing every page, its
// layers and the document-wide state:
//
//	{
//	  pages = {
//	    {
//	      pageWidth = ..., pageHeight = ...,
//	      isAnnotated = ...,
//	      pageTypeFormat = ..., pdfBackgroundPageNo = ...,
//	      layers = {
//	        [0] = {isVisible = ...},                        -- background
//	        {name = ..., isVisible = ..., isAnnotated = ...},
//	        ...
//	      },
//	      currentLayer = ...,
//	    },
//	    ...
//	  },
//	  currentPage = ...,
//	  pdfBackgroundFilename = ...,
//	}
//
// Page, layer and pdf page numbers are 1-based; layer 0 is the
// background layer.
func (a *API) getDocumentStructure(L *lua.LState) int {
	doc := a.ctrl.Document()
	layers := a.ctrl.LayerController()

	structure := L.NewTable()
	pages := L.NewTable()
	for i := 0; i < doc.PageCount(); i++ {
		page := doc.Page(i)

		p := L.NewTable()
		p.RawSetString("pageWidth", lua.LNumber(page.Width))
		p.RawSetString("pageHeight", lua.LNumber(page.Height))
		p.RawSetString("isAnnotated", lua.LBool(page.Annotated()))
		p.RawSetString("pageTypeFormat", lua.LString(page.Background.Format))
		p.RawSetString("pdfBackgroundPageNo", lua.LNumber(page.PdfPageNr+1))

		lt := L.NewTable()
		background := L.NewTable()
		background.RawSetString("isVisible", lua.LBool(page.BackgroundVisible))
		background.RawSetString("name", lua.LString(page.BackgroundName))
		lt.RawSetInt(0, background)
		for id := 1; id <= page.LayerCount(); id++ {
			layer := page.Layer(id)
			rec := L.NewTable()
			rec.RawSetString("name", lua.LString(layers.LayerNameByID(page, id)))
			rec.RawSetString("isVisible", lua.LBool(layer.Visible))
			rec.RawSetString("isAnnotated", lua.LBool(layer.Annotated()))
			lt.RawSetInt(id, rec)
		}
		p.RawSetString("layers", lt)
		p.RawSetString("currentLayer", lua.LNumber(page.SelectedLayerID))

		pages.RawSetInt(i+1, p)
	}
	structure.RawSetString("pages", pages)
	structure.RawSetString("currentPage", lua.LNumber(layers.CurrentPageID()+1))
	structure.RawSetString("pdfBackgroundFilename", lua.LString(doc.PdfFilepath()))

	L.Push(structure)
	return 1
}

// getDisplayDpi returns the configured display resolution.
func (a *API) getDisplayDpi(L *lua.LState) int {
	L.Push(lua.LNumber(a.ctrl.Settings().DisplayDpi))
	return 1
}
