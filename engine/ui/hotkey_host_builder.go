package ui

// HotkeyHostOption configures a HotkeyHost.
type HotkeyHostOption func(*hotkeyHostImpl)

// WithBindings binds several controls at once.
//
// Parameters:
//   - keys: control label to key code
//
// Returns:
//   - HotkeyHostOption: a function that adds the bindings
func WithBindings(keys map[string]uint32) HotkeyHostOption {
	return func(h *hotkeyHostImpl) {
		for label, key := range keys {
			h.keys[label] = key
		}
	}
}

// WithQuiet disables the change log.
//
// Returns:
//   - HotkeyHostOption: a function that silences the host
func WithQuiet() HotkeyHostOption {
	return func(h *hotkeyHostImpl) {
		h.quiet = true
	}
}
