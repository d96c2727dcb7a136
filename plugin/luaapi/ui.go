package luaapi

import (
	lua "github.com/yuin/gopher-lua"

	"xournalpp/control"
)

// registerUiArgs is the decoded argument record of registerUi.
type registerUiArgs struct {
	menu        string
	callback    string
	accelerator string
}

// registerUi adds one menu entry for the calling plugin and returns
// its handle. Legal only while the plugin's initUi() runs.
//
//	res = app.registerUi({menu = "Export as SVG", callback = "exportSvg", accelerator = "<Control>e"})
func (a *API) registerUi(L *lua.LState) int {
	if !a.plugin.InInitUi() {
		a.raise(L, validationf("registerUi needs to be called within initUi()"))
		return 0
	}
	opts := L.CheckTable(1)

	var args registerUiArgs
	var ok bool
	if args.callback, ok = tableString(opts, "callback"); !ok {
		a.raise(L, validationf("Missing callback function!"))
		return 0
	}
	args.menu, _ = tableString(opts, "menu")
	args.accelerator, _ = tableString(opts, "accelerator")

	menuID := a.plugin.RegisterMenu(args.menu, args.callback, args.accelerator)

	// Toolbar entries are not supported; the slot is kept so scripts
	// indexing the result keep working.
	res := L.NewTable()
	res.RawSetString("menuId", lua.LNumber(menuID))
	res.RawSetString("toolbarId", lua.LNumber(-1))
	L.Push(res)
	return 1
}

// uiActionArgs is the decoded argument record of uiAction.
type uiActionArgs struct {
	action  control.ActionType
	group   control.ActionGroup
	enabled bool
}

// uiAction triggers one of the host's UI actions, as if the user had
// activated it. The group defaults to no group and enabled to true.
//
//	app.uiAction({action = "ACTION_PASTE"})
func (a *API) uiAction(L *lua.LState) int {
	opts := L.CheckTable(1)

	args := uiActionArgs{group: control.GroupNoGroup, enabled: true}
	if s, ok := tableString(opts, "group"); ok {
		group, ok := control.ActionGroupFromString(s)
		if !ok {
			a.raise(L, domainf("Unknown action group: %s", s))
			return 0
		}
		args.group = group
	}
	if enabled, ok := tableBool(opts, "enabled"); ok {
		args.enabled = enabled
	}
	s, ok := tableString(opts, "action")
	if !ok {
		a.raise(L, validationf("Missing action!"))
		return 0
	}
	action, ok := control.ActionTypeFromString(s)
	if !ok {
		a.raise(L, domainf("Unknown action: %s", s))
		return 0
	}
	args.action = action

	a.ctrl.ActionPerformed(args.action, args.group, args.enabled)
	return 0
}

// uiActionSelected notifies action listeners of a selection within a
// group without persisting anything to settings. It is the low-level
// counterpart to uiAction.
//
//	app.uiActionSelected("GROUP_GRID_SNAPPING", "ACTION_GRID_SNAPPING")
func (a *API) uiActionSelected(L *lua.LState) int {
	groupToken := L.CheckString(1)
	actionToken := L.CheckString(2)

	group, ok := control.ActionGroupFromString(groupToken)
	if !ok {
		a.raise(L, domainf("Unknown action group: %s", groupToken))
		return 0
	}
	action, ok := control.ActionTypeFromString(actionToken)
	if !ok {
		a.raise(L, domainf("Unknown action: %s", actionToken))
		return 0
	}
	a.ctrl.FireActionSelected(group, action)
	return 0
}

// sidebarAction runs one of the page-sidebar operations on the current
// page: COPY, DELETE, MOVE_UP, MOVE_DOWN, NEW_BEFORE or NEW_AFTER.
func (a *API) sidebarAction(L *lua.LState) int {
	token := L.CheckString(1)
	action, ok := control.SidebarActionFromString(token)
	if !ok {
		a.raise(L, domainf("Unknown action: %s", token))
		return 0
	}
	a.ctrl.RunSidebarAction(action)
	return 0
}

// layerAction runs one of the layer actions, such as ACTION_NEW_LAYER
// or ACTION_MERGE_LAYER_DOWN.
func (a *API) layerAction(L *lua.LState) int {
	token := L.CheckString(1)
	action, ok := control.ActionTypeFromString(token)
	if !ok {
		a.raise(L, domainf("Unknown action: %s", token))
		return 0
	}
	if err := a.ctrl.LayerController().ActionPerformed(action); err != nil {
		a.raise(L, domainf("%v", err))
		return 0
	}
	return 0
}
