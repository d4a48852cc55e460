package ui

import (
	"log"

	"github.com/Carmen-Shannon/oxy-editor/engine/input"
)

// HotkeyHost is a Host without a drawn surface: every control is bound to a
// key, and releasing that key operates the control. Combo boxes cycle to the
// next option, radio buttons select their value and checkboxes toggle.
type HotkeyHost interface {
	Host

	// Begin sets the input the next Window call reacts to.
	//
	// Parameters:
	//   - state: the frame's input state
	Begin(state input.State)

	// Bind assigns a key to the control with the given label.
	//
	// Parameters:
	//   - label: the control label
	//   - key: the key code that operates it
	Bind(label string, key uint32)
}

type hotkeyHostImpl struct {
	keys  map[string]uint32
	state input.State
	quiet bool
}

var _ HotkeyHost = &hotkeyHostImpl{}

// NewHotkeyHost creates a HotkeyHost with no bindings.
//
// Parameters:
//   - options: functional options to configure the host
//
// Returns:
//   - HotkeyHost: the new host
func NewHotkeyHost(options ...HotkeyHostOption) HotkeyHost {
	h := &hotkeyHostImpl{
		keys: make(map[string]uint32),
	}
	for _, option := range options {
		option(h)
	}
	return h
}

func (h *hotkeyHostImpl) Begin(state input.State) {
	h.state = state
}

func (h *hotkeyHostImpl) Bind(label string, key uint32) {
	h.keys[label] = key
}

func (h *hotkeyHostImpl) Window(title string, body func(Frame)) {
	body(&hotkeyFrame{host: h, title: title})
}

// triggered reports whether the key bound to label was released this frame.
func (h *hotkeyHostImpl) triggered(label string) bool {
	key, ok := h.keys[label]
	return ok && h.state.KeyJustReleased(key)
}

func (h *hotkeyHostImpl) logf(format string, args ...any) {
	if !h.quiet {
		log.Printf(format, args...)
	}
}

type hotkeyFrame struct {
	host  *hotkeyHostImpl
	title string
}

func (f *hotkeyFrame) ComboBox(label string, selected *int, options []string) bool {
	if len(options) == 0 || !f.host.triggered(label) {
		return false
	}
	prev := *selected
	*selected = (prev + 1) % len(options)
	if prev < 0 || prev >= len(options) {
		*selected = 0
	}
	f.host.logf("[UI] %s: %s -> %s", f.title, label, options[*selected])
	return *selected != prev
}

func (f *hotkeyFrame) RadioValue(label string, current *int, value int) bool {
	if *current == value || !f.host.triggered(label) {
		return false
	}
	*current = value
	f.host.logf("[UI] %s: %s selected", f.title, label)
	return true
}

func (f *hotkeyFrame) Checkbox(label string, value *bool) bool {
	if !f.host.triggered(label) {
		return false
	}
	*value = !*value
	f.host.logf("[UI] %s: %s = %v", f.title, label, *value)
	return true
}
