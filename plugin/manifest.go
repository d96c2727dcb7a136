// Package plugin loads Lua plugin modules and drives their lifecycle:
// manifest parsing, script loading, menu registration and callback
// dispatch.
package plugin

import (
	"fmt"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Manifest holds the plugin.ini metadata of a plugin module.
type Manifest struct {
	Author           string
	Description      string
	Version          string
	MainFile         string
	EnabledByDefault bool
}

// LoadManifest reads the plugin.ini of the plugin module rooted at dir.
// Everything but the main file name is optional.
func LoadManifest(dir string) (Manifest, error) {
	path := filepath.Join(dir, "plugin.ini")
	file, err := ini.Load(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("load plugin manifest %s: %w", path, err)
	}

	about := file.Section("about")
	m := Manifest{
		Author:      about.Key("author").String(),
		Description: about.Key("description").String(),
		Version:     about.Key("version").String(),
	}
	section := file.Section("plugin")
	m.MainFile = section.Key("mainfile").String()
	m.EnabledByDefault = section.Key("enabledByDefault").MustBool(false)
	if m.MainFile == "" {
		return Manifest{}, fmt.Errorf("plugin manifest %s: missing mainfile", path)
	}
	return m, nil
}
