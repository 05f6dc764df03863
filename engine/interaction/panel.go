package interaction

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-sleeve/engine/settings"
)

// ControlKind is the widget used to edit a panel control.
type ControlKind int

const (
	ControlSlider ControlKind = iota
	ControlColor
	ControlCheckbox
	ControlOption
	ControlButton
)

// Button control keys.
const (
	ButtonUploadFront = "uploadFront"
	ButtonUploadBack  = "uploadBack"
)

// Control describes one widget of the settings panel.
type Control struct {
	Key     string
	Label   string
	Folder  string
	Kind    ControlKind
	Min     float64
	Max     float64
	Step    float64
	Options []string
}

// Panel is the settings panel model. A widget toolkit renders Controls and reports edits through Change and Press;
// every edit is projected onto the scene and persisted by the router.
type Panel struct {
	router   Router
	controls []Control
}

// NewPanel builds the panel for every persisted configuration field plus the two upload buttons.
//
// Parameters:
//   - router: the router applying edits
//   - presets: the artwork preset names offered by the artwork options
//
// Returns:
//   - *Panel: the panel model
func NewPanel(router Router, presets []string) *Panel {
	p := &Panel{router: router}
	for _, f := range settings.Fields {
		c := Control{Key: f.Key, Label: f.Label, Folder: f.Folder, Min: f.Min, Max: f.Max, Step: f.Step}
		switch f.Kind {
		case settings.FieldArt:
			c.Kind = ControlOption
			c.Options = presets
		case settings.FieldColor:
			c.Kind = ControlColor
		case settings.FieldToggle:
			c.Kind = ControlCheckbox
		default:
			c.Kind = ControlSlider
		}
		p.controls = append(p.controls, c)

		if f.Key == settings.KeyBackArt {
			p.controls = append(p.controls,
				Control{Key: ButtonUploadFront, Label: "Upload Front", Folder: f.Folder, Kind: ControlButton},
				Control{Key: ButtonUploadBack, Label: "Upload Back", Folder: f.Folder, Kind: ControlButton},
			)
		}
	}
	return p
}

// Controls returns the panel controls in display order.
func (p *Panel) Controls() []Control {
	return p.controls
}

// Folders returns the folder names in display order. Controls with no folder sit at the top level.
func (p *Panel) Folders() []string {
	var folders []string
	seen := make(map[string]bool)
	for _, c := range p.controls {
		if c.Folder == "" || seen[c.Folder] {
			continue
		}
		seen[c.Folder] = true
		folders = append(folders, c.Folder)
	}
	return folders
}

// Value returns the current value shown by a control. Buttons have no value.
func (p *Panel) Value(key string) (any, bool) {
	return p.router.Config().Value(key)
}

// Change applies an edited control value.
//
// Parameters:
//   - key: the control key
//   - value: the new value
//
// Returns:
//   - error: error if the key is not an editable control or the value does not fit it
func (p *Panel) Change(key string, value any) error {
	return p.router.Set(key, value)
}

// Press runs a button control.
func (p *Panel) Press(key string) error {
	switch key {
	case ButtonUploadFront:
		p.router.PickAndUpload(SideFront)
	case ButtonUploadBack:
		p.router.PickAndUpload(SideBack)
	default:
		return fmt.Errorf("no button %q", key)
	}
	return nil
}
