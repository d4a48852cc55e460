package gizmo

import "github.com/Carmen-Shannon/oxy-editor/engine/ui"

// Control labels used by the panel. Hotkey bindings are keyed by these.
const (
	LabelOrientation = "Orientation"
	LabelRotate      = "Rotate"
	LabelPlanes      = "Planes"
)

// Panel is the gizmo mode window: an orientation combo box, one radio button
// per HandleMode and the two independent handle toggles.
type Panel struct {
	Title string
}

// NewPanel creates a Panel with the default title.
//
// Returns:
//   - *Panel: the new panel
func NewPanel() *Panel {
	return &Panel{Title: "Gizmo"}
}

// Show declares the panel's controls on host, writes the user's choices back
// into mode and re-derives the handle flags in settings from the handle mode.
// Rotate and TranslatePlanes are bound directly and never reset here.
//
// Parameters:
//   - host: the UI host to draw into
//   - mode: the editor's mode state
//   - settings: the gizmo settings
func (p *Panel) Show(host ui.Host, mode *ModeState, settings *Settings) {
	orientation := int(mode.Orientation)
	handle := int(mode.HandleMode)

	host.Window(p.Title, func(f ui.Frame) {
		names := make([]string, len(Spaces))
		for i, s := range Spaces {
			names[i] = s.String()
		}
		f.ComboBox(LabelOrientation, &orientation, names)

		for _, m := range HandleModes {
			f.RadioValue(m.String(), &handle, int(m))
		}

		f.Checkbox(LabelRotate, &settings.Rotate)
		f.Checkbox(LabelPlanes, &settings.TranslatePlanes)
	})

	if orientation >= 0 && orientation < len(Spaces) {
		mode.Orientation = Spaces[orientation]
	}
	mode.HandleMode = HandleMode(handle)
	settings.ApplyHandleMode(mode.HandleMode)
}
