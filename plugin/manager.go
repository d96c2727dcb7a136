package plugin

import (
	"fmt"
	"os"
	"path/filepath"

	"xournalpp/control"
	"xournalpp/observability"
	"xournalpp/plugin/luaapi"
)

// Manager owns the loaded plugin modules of one host instance.
type Manager struct {
	plugins []*Plugin

	ctrl    *control.Control
	dialogs luaapi.Dialogs
	fs      luaapi.FS
	log     observability.Logger
}

// ManagerConfig wires a Manager to the host application. Nil fields
// get the same defaults plugin loading applies.
type ManagerConfig struct {
	Control *control.Control
	Dialogs luaapi.Dialogs
	FS      luaapi.FS
	Logger  observability.Logger
}

// NewManager creates an empty plugin manager.
func NewManager(cfg ManagerConfig) *Manager {
	if cfg.Logger == nil {
		cfg.Logger = observability.NopLogger{}
	}
	return &Manager{
		ctrl:    cfg.Control,
		dialogs: cfg.Dialogs,
		fs:      cfg.FS,
		log:     cfg.Logger,
	}
}

// LoadDirectory loads every plugin module found directly under dir.
// Modules that fail to load are skipped with a warning; load order
// follows the directory listing.
func (m *Manager) LoadDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read plugin directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := m.Load(filepath.Join(dir, entry.Name())); err != nil {
			m.log.Warn("skipping plugin", observability.String("dir", entry.Name()), observability.Error("err", err))
		}
	}
	return nil
}

// Load loads a single plugin module and registers it with the manager.
func (m *Manager) Load(path string) (*Plugin, error) {
	p, err := Load(Config{
		Path:    path,
		Control: m.ctrl,
		Dialogs: m.dialogs,
		FS:      m.fs,
		Logger:  m.log,
	})
	if err != nil {
		return nil, err
	}
	m.plugins = append(m.plugins, p)
	return p, nil
}

// Plugins returns the loaded plugin modules in load order.
func (m *Manager) Plugins() []*Plugin { return m.plugins }

// RunInitUi runs the registration phase of every enabled plugin.
func (m *Manager) RunInitUi() error {
	for _, p := range m.plugins {
		if !p.Enabled() {
			continue
		}
		if err := p.RunInitUi(); err != nil {
			return err
		}
	}
	return nil
}

// Close releases every loaded plugin.
func (m *Manager) Close() {
	for _, p := range m.plugins {
		p.Close()
	}
	m.plugins = nil
}
