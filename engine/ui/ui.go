package ui

// Host is an immediate-mode UI surface. Controls are declared every frame
// inside Window; their values live in the caller's variables.
type Host interface {
	// Window opens a titled panel and runs body to declare its controls.
	//
	// Parameters:
	//   - title: the panel title
	//   - body: declares the panel's controls
	Window(title string, body func(Frame))
}

// Frame declares controls inside a Window. Each method returns true when the
// user changed the bound value this frame.
type Frame interface {
	// ComboBox is a drop-down choice over options. selected is an index into options.
	//
	// Parameters:
	//   - label: the control label
	//   - selected: the bound option index
	//   - options: the option names
	//
	// Returns:
	//   - bool: true if selected changed
	ComboBox(label string, selected *int, options []string) bool

	// RadioValue is one radio button that writes value into current when chosen.
	//
	// Parameters:
	//   - label: the button label
	//   - current: the bound value shared by the radio group
	//   - value: the value this button represents
	//
	// Returns:
	//   - bool: true if current changed
	RadioValue(label string, current *int, value int) bool

	// Checkbox is a boolean toggle.
	//
	// Parameters:
	//   - label: the control label
	//   - value: the bound flag
	//
	// Returns:
	//   - bool: true if value changed
	Checkbox(label string, value *bool) bool
}
