package luaapi

import (
	lua "github.com/yuin/gopher-lua"
)

// Dialogs is the user-facing prompt surface of the host application.
// Implementations block until the user answers; a headless host wires
// in canned answers instead.
type Dialogs interface {
	// ShowMessage presents a message box titled after the plugin with
	// one clickable button per map entry and returns the key of the
	// button the user picked, or 0 when the box was dismissed.
	ShowMessage(plugin, message string, buttons map[int]string) int

	// SaveAs asks the user for a destination path, pre-filling the
	// given filename suggestion. ok is false when the user cancelled.
	SaveAs(suggestion string) (path string, ok bool)

	// OpenFile asks the user to pick an existing file, restricted to
	// the given extension filters when any are set. ok is false when
	// the user cancelled.
	OpenFile(filters []string) (path string, ok bool)
}

// nopDialogs answers every prompt with a cancel.
type nopDialogs struct{}

func (nopDialogs) ShowMessage(string, string, map[int]string) int { return 0 }
func (nopDialogs) SaveAs(string) (string, bool)                   { return "", false }
func (nopDialogs) OpenFile([]string) (string, bool)               { return "", false }

// msgbox shows a message box with the given text and buttons and
// returns the pressed button key. The buttons table maps result keys
// to labels:
//
//	local result = app.msgbox("Overwrite?", {[1] = "Yes", [2] = "No"})
func (a *API) msgbox(L *lua.LState) int {
	message := L.CheckString(1)
	buttons := buttonMap(L.CheckTable(2))
	result := a.dialogs.ShowMessage(a.plugin.Name(), message, buttons)
	L.Push(lua.LNumber(result))
	return 1
}

// saveAs opens a save-file dialog and returns the chosen path, or
// nothing when the user cancelled. The optional argument suggests a
// filename.
func (a *API) saveAs(L *lua.LState) int {
	suggestion := L.OptString(1, "Untitled")
	path, ok := a.dialogs.SaveAs(suggestion)
	if !ok {
		return 0
	}
	L.Push(lua.LString(path))
	return 1
}

// getFilePath opens an open-file dialog and returns the chosen path,
// or nothing when the user cancelled. An optional table of extension
// filters narrows the listing:
//
//	local path = app.getFilePath({"*.pdf", "*.xopp"})
func (a *API) getFilePath(L *lua.LState) int {
	var filters []string
	if tbl, ok := L.Get(1).(*lua.LTable); ok {
		var err error
		if filters, err = stringSequence(tbl); err != nil {
			a.raise(L, err)
			return 0
		}
	}
	path, ok := a.dialogs.OpenFile(filters)
	if !ok {
		return 0
	}
	L.Push(lua.LString(path))
	return 1
}
