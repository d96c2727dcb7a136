// Package luaapi exposes the host application to Lua plugin scripts.
//
// The bridge publishes a single "app" table whose functions decode
// their interpreter arguments into typed values, call into the host
// through the control facade, and push results back onto the stack.
// Required-argument failures abort the call through the interpreter's
// own error channel before any document mutation; optional-argument
// failures are logged and fall back to defaults.
package luaapi

import (
	lua "github.com/yuin/gopher-lua"

	"xournalpp/control"
	"xournalpp/observability"
)

// Plugin is the per-script-module context an API serves. The host owns
// exactly one live value per loaded module; the bridge borrows it for
// the duration of a call.
type Plugin interface {
	// Name identifies the module in dialogs and log output.
	Name() string
	// InInitUi reports whether the module's UI registration phase is
	// running.
	InInitUi() bool
	// RegisterMenu records a menu entry and returns its 1-based id.
	RegisterMenu(menu, callback, accelerator string) int
}

// detachedPlugin backs API values constructed without a plugin module.
// UI registration is never legal on it.
type detachedPlugin struct{}

func (detachedPlugin) Name() string   { return "plugin" }
func (detachedPlugin) InInitUi() bool { return false }

func (detachedPlugin) RegisterMenu(menu, callback, accelerator string) int {
	return 0
}

// Config collects the collaborators an API works against. Nil fields
// fall back to inert defaults so tests and headless embeddings can
// start from whatever subset they need.
type Config struct {
	Plugin  Plugin
	Control *control.Control
	Dialogs Dialogs
	FS      FS
	Logger  observability.Logger
}

// API implements the app library for one plugin. Entry points run to
// completion on the caller's goroutine; the interpreter never executes
// two of them concurrently.
type API struct {
	plugin  Plugin
	ctrl    *control.Control
	dialogs Dialogs
	fs      FS
	log     observability.Logger
}

// New builds an API from cfg, substituting defaults for nil
// collaborators.
func New(cfg Config) *API {
	a := &API{
		plugin:  cfg.Plugin,
		ctrl:    cfg.Control,
		dialogs: cfg.Dialogs,
		fs:      cfg.FS,
		log:     cfg.Logger,
	}
	if a.plugin == nil {
		a.plugin = detachedPlugin{}
	}
	if a.ctrl == nil {
		a.ctrl = control.New(control.Config{})
	}
	if a.dialogs == nil {
		a.dialogs = nopDialogs{}
	}
	if a.fs == nil {
		a.fs = osFS{}
	}
	if a.log == nil {
		a.log = observability.NopLogger{}
	}
	a.log = a.log.With(observability.String("plugin", a.plugin.Name()))
	return a
}

// Install registers the complete app library on L as the global "app"
// table.
func (a *API) Install(L *lua.LState) {
	app := L.NewTable()
	L.SetFuncs(app, map[string]lua.LGFunction{
		"registerUi":                  a.registerUi,
		"uiAction":                    a.uiAction,
		"uiActionSelected":            a.uiActionSelected,
		"sidebarAction":               a.sidebarAction,
		"layerAction":                 a.layerAction,
		"changeToolColor":             a.changeToolColor,
		"changeCurrentPageBackground": a.changeCurrentPageBackground,
		"changeBackgroundPdfPageNr":   a.changeBackgroundPdfPageNr,
		"getToolInfo":                 a.getToolInfo,
		"getDocumentStructure":        a.getDocumentStructure,
		"scrollToPage":                a.scrollToPage,
		"scrollToPos":                 a.scrollToPos,
		"setCurrentPage":              a.setCurrentPage,
		"setPageSize":                 a.setPageSize,
		"setCurrentLayer":             a.setCurrentLayer,
		"setLayerVisibility":          a.setLayerVisibility,
		"setCurrentLayerName":         a.setCurrentLayerName,
		"setBackgroundName":           a.setBackgroundName,
		"scaleTextElements":           a.scaleTextElements,
		"getDisplayDpi":               a.getDisplayDpi,
		"addStroke":                   a.addStroke,
		"addSpline":                   a.addSpline,
		"getFilePath":                 a.getFilePath,
		"saveAs":                      a.saveAs,
		"msgbox":                      a.msgbox,
		"refreshPage":                 a.refreshPage,
		"glib_rename":                 a.glibRename,
	})
	L.SetGlobal("app", app)
}

// raise aborts the running entry point through the interpreter's error
// channel. It does not return.
func (a *API) raise(L *lua.LState, err error) {
	L.RaiseError("%s", err.Error())
}
