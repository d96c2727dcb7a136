package control

import "xournalpp/model"

// Settings holds the host preferences the scripting surface can observe.
type Settings struct {
	DisplayDpi int
	Font       model.Font
}

// NewSettings returns settings with the stock defaults.
func NewSettings() *Settings {
	return &Settings{
		DisplayDpi: 72,
		Font:       model.Font{Name: "Sans", Size: 12},
	}
}
