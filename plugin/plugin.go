package plugin

import (
	"fmt"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"

	"xournalpp/control"
	"xournalpp/observability"
	"xournalpp/plugin/luaapi"
)

// MenuEntry is one menu item registered by a plugin during initUi.
type MenuEntry struct {
	Menu        string
	Callback    string
	Accelerator string
}

// Plugin is one loaded plugin module: its manifest, its own Lua state
// with the app library installed, and the menu entries it registered.
type Plugin struct {
	name     string
	path     string
	manifest Manifest
	enabled  bool

	state    *lua.LState
	inInitUi bool
	menus    []MenuEntry

	log observability.Logger
}

// Config wires a plugin module to the host application.
type Config struct {
	// Path is the plugin module directory holding plugin.ini.
	Path string

	Control *control.Control
	Dialogs luaapi.Dialogs
	FS      luaapi.FS
	Logger  observability.Logger
}

// Load reads the manifest at cfg.Path, creates the plugin's Lua state
// and runs its main file. Menu registration does not happen here; call
// RunInitUi once the host UI is ready.
func Load(cfg Config) (*Plugin, error) {
	manifest, err := LoadManifest(cfg.Path)
	if err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = observability.NopLogger{}
	}

	p := &Plugin{
		name:     filepath.Base(cfg.Path),
		path:     cfg.Path,
		manifest: manifest,
		enabled:  manifest.EnabledByDefault,
		log:      cfg.Logger,
	}

	L := lua.NewState()
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	lua.OpenOs(L)

	api := luaapi.New(luaapi.Config{
		Plugin:  p,
		Control: cfg.Control,
		Dialogs: cfg.Dialogs,
		FS:      cfg.FS,
		Logger:  cfg.Logger,
	})
	api.Install(L)

	p.state = L
	if err := L.DoFile(filepath.Join(cfg.Path, manifest.MainFile)); err != nil {
		L.Close()
		return nil, fmt.Errorf("load plugin %s: %w", p.name, err)
	}
	return p, nil
}

// Name returns the plugin's name, the base name of its directory.
func (p *Plugin) Name() string { return p.name }

// Path returns the plugin module directory.
func (p *Plugin) Path() string { return p.path }

// Manifest returns the parsed plugin.ini metadata.
func (p *Plugin) Manifest() Manifest { return p.manifest }

// Enabled reports whether the plugin takes part in menu registration.
func (p *Plugin) Enabled() bool { return p.enabled }

// SetEnabled switches the plugin on or off.
func (p *Plugin) SetEnabled(enabled bool) { p.enabled = enabled }

// InInitUi reports whether the plugin is inside its initUi() call, the
// only window in which registerUi is legal.
func (p *Plugin) InInitUi() bool { return p.inInitUi }

// Menus returns the menu entries registered so far.
func (p *Plugin) Menus() []MenuEntry { return p.menus }

// RegisterMenu records a menu entry and returns its 1-based id.
func (p *Plugin) RegisterMenu(menu, callback, accelerator string) int {
	p.menus = append(p.menus, MenuEntry{Menu: menu, Callback: callback, Accelerator: accelerator})
	return len(p.menus)
}

// RunInitUi calls the script's global initUi() with menu registration
// enabled. A script without an initUi function registers nothing.
func (p *Plugin) RunInitUi() error {
	p.inInitUi = true
	defer func() { p.inInitUi = false }()

	fn, ok := p.state.GetGlobal("initUi").(*lua.LFunction)
	if !ok {
		return nil
	}
	p.state.Push(fn)
	if err := p.state.PCall(0, 0, nil); err != nil {
		return fmt.Errorf("plugin %s: initUi: %w", p.name, err)
	}
	p.log.Debug("plugin registered",
		observability.String("plugin", p.name),
		observability.Int("menus", len(p.menus)))
	return nil
}

// CallFunction invokes a global function of the plugin script.
func (p *Plugin) CallFunction(name string) error {
	fn, ok := p.state.GetGlobal(name).(*lua.LFunction)
	if !ok {
		return fmt.Errorf("plugin %s: %s is not a function", p.name, name)
	}
	p.state.Push(fn)
	if err := p.state.PCall(0, 0, nil); err != nil {
		return fmt.Errorf("plugin %s: %s: %w", p.name, name, err)
	}
	return nil
}

// ExecuteMenuEntry runs the callback behind a registered menu id.
func (p *Plugin) ExecuteMenuEntry(id int) error {
	if id < 1 || id > len(p.menus) {
		return fmt.Errorf("plugin %s: no menu entry %d", p.name, id)
	}
	return p.CallFunction(p.menus[id-1].Callback)
}

// Close releases the plugin's Lua state.
func (p *Plugin) Close() { p.state.Close() }
