package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Carmen-Shannon/oxy-editor/common"
	"github.com/Carmen-Shannon/oxy-editor/engine/camera"
	"github.com/Carmen-Shannon/oxy-editor/engine/gizmo"
	"github.com/Carmen-Shannon/oxy-editor/engine/input"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the viewport program looks for its config, relative to
// the working directory.
const DefaultPath = "config/editor.yaml"

// ErrUnknownKey is returned when a binding names a key or button that has no code.
var ErrUnknownKey = errors.New("config: unknown key")

// Config is the editor's persisted preferences.
type Config struct {
	Window   WindowConfig      `yaml:"window"`
	Camera   CameraConfig      `yaml:"camera"`
	Bindings BindingsConfig    `yaml:"bindings"`
	Hotkeys  map[string]string `yaml:"hotkeys"`
	Gizmo    GizmoConfig       `yaml:"gizmo"`
	Profiler bool              `yaml:"profiler"`
}

// WindowConfig sizes the viewport window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// CameraConfig tunes the pan/orbit controller. Workers < 0 picks a count from
// the CPU count, 0 updates rigs on the calling goroutine.
type CameraConfig struct {
	ZoomRate         float32 `yaml:"zoom_rate"`
	OrbitSensitivity float32 `yaml:"orbit_sensitivity"`
	MinRadius        float32 `yaml:"min_radius"`
	Workers          int     `yaml:"workers"`
}

// BindingsConfig names the camera buttons and keys.
type BindingsConfig struct {
	Orbit        string   `yaml:"orbit"`
	Pan          string   `yaml:"pan"`
	PanModifiers []string `yaml:"pan_modifiers"`
	Recenter     string   `yaml:"recenter"`
}

// GizmoConfig is the gizmo mode the editor starts in.
type GizmoConfig struct {
	Orientation string `yaml:"orientation"`
	HandleMode  string `yaml:"handle_mode"`
	Rotate      bool   `yaml:"rotate"`
	Planes      bool   `yaml:"planes"`
}

// Default returns the stock editor configuration.
//
// Returns:
//   - Config: the default config
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Oxy Editor",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Camera: CameraConfig{
			ZoomRate:         0.002,
			OrbitSensitivity: 1,
			MinRadius:        camera.MinRadius,
			Workers:          -1,
		},
		Bindings: BindingsConfig{
			Orbit:        "middle",
			Pan:          "middle",
			PanModifiers: []string{"left_shift", "right_shift"},
			Recenter:     "period",
		},
		Hotkeys: map[string]string{
			gizmo.LabelOrientation:        "o",
			gizmo.HandleTransform.String(): "t",
			gizmo.HandleScale.String():     "s",
			gizmo.HandleNeither.String():   "n",
			gizmo.LabelRotate:              "r",
			gizmo.LabelPlanes:              "p",
		},
		Gizmo: GizmoConfig{
			Orientation: gizmo.SpaceGlobal.String(),
			HandleMode:  gizmo.HandleTransform.String(),
		},
	}
}

// Load reads the config at path. A missing file yields Default() and no error.
// Fields left out of the file, or set to zero, keep their default values.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - Config: the loaded config
//   - error: non-nil if the file exists but cannot be read or parsed
func Load(path string) (Config, error) {
	def := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("config: read %s: %w", path, err)
	}

	c := Default()
	c.Hotkeys = nil
	if err := yaml.Unmarshal(data, &c); err != nil {
		return def, fmt.Errorf("config: parse %s: %w", path, err)
	}

	c.Window.Title = common.Coalesce(c.Window.Title, def.Window.Title)
	c.Window.Width = common.Coalesce(c.Window.Width, def.Window.Width)
	c.Window.Height = common.Coalesce(c.Window.Height, def.Window.Height)
	c.Camera.ZoomRate = common.Coalesce(c.Camera.ZoomRate, def.Camera.ZoomRate)
	c.Camera.OrbitSensitivity = common.Coalesce(c.Camera.OrbitSensitivity, def.Camera.OrbitSensitivity)
	c.Camera.MinRadius = common.Coalesce(c.Camera.MinRadius, def.Camera.MinRadius)
	c.Bindings.Orbit = common.Coalesce(c.Bindings.Orbit, def.Bindings.Orbit)
	c.Bindings.Pan = common.Coalesce(c.Bindings.Pan, def.Bindings.Pan)
	c.Bindings.Recenter = common.Coalesce(c.Bindings.Recenter, def.Bindings.Recenter)
	c.Gizmo.Orientation = common.Coalesce(c.Gizmo.Orientation, def.Gizmo.Orientation)
	c.Gizmo.HandleMode = common.Coalesce(c.Gizmo.HandleMode, def.Gizmo.HandleMode)
	if len(c.Bindings.PanModifiers) == 0 {
		c.Bindings.PanModifiers = def.Bindings.PanModifiers
	}
	for label, key := range def.Hotkeys {
		if _, ok := c.Hotkeys[label]; !ok {
			if c.Hotkeys == nil {
				c.Hotkeys = make(map[string]string)
			}
			c.Hotkeys[label] = key
		}
	}
	return c, nil
}

// Save writes c to path as YAML, creating the directory if needed.
//
// Parameters:
//   - path: the YAML file to write
//   - c: the config to save
//
// Returns:
//   - error: non-nil if the file could not be written
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// InputBindings resolves the binding names to key and button codes. A single
// pan modifier is used for both modifier slots.
//
// Returns:
//   - input.Bindings: the resolved bindings
//   - error: wraps ErrUnknownKey if a name does not resolve
func (c Config) InputBindings() (input.Bindings, error) {
	var b input.Bindings
	var err error
	if b.OrbitButton, err = button(c.Bindings.Orbit); err != nil {
		return b, err
	}
	if b.PanButton, err = button(c.Bindings.Pan); err != nil {
		return b, err
	}
	if b.RecenterKey, err = key(c.Bindings.Recenter); err != nil {
		return b, err
	}

	mods := c.Bindings.PanModifiers
	switch {
	case len(mods) == 0 || len(mods) > len(b.PanModifiers):
		return b, fmt.Errorf("config: want 1 or 2 pan modifiers, got %d", len(mods))
	case len(mods) == 1:
		mods = []string{mods[0], mods[0]}
	}
	for i, name := range mods {
		if b.PanModifiers[i], err = key(name); err != nil {
			return b, err
		}
	}
	return b, nil
}

// HotkeyCodes resolves the panel hotkeys to key codes, keyed by control label.
//
// Returns:
//   - map[string]uint32: control label to key code
//   - error: wraps ErrUnknownKey if a name does not resolve
func (c Config) HotkeyCodes() (map[string]uint32, error) {
	out := make(map[string]uint32, len(c.Hotkeys))
	for label, name := range c.Hotkeys {
		code, err := key(name)
		if err != nil {
			return nil, fmt.Errorf("hotkey %s: %w", label, err)
		}
		out[label] = code
	}
	return out, nil
}

// ControllerOptions converts the camera tuning into controller options.
//
// Returns:
//   - []camera.ControllerOption: options for camera.NewController
func (c Config) ControllerOptions() []camera.ControllerOption {
	opts := []camera.ControllerOption{
		camera.WithZoomRate(c.Camera.ZoomRate),
		camera.WithOrbitSensitivity(c.Camera.OrbitSensitivity),
		camera.WithMinRadius(c.Camera.MinRadius),
	}
	if c.Camera.Workers >= 0 {
		opts = append(opts, camera.WithWorkers(c.Camera.Workers))
	}
	return opts
}

// GizmoState returns the starting mode and settings.
//
// Returns:
//   - gizmo.ModeState: the starting mode
//   - gizmo.Settings: the starting settings
//   - error: non-nil if the orientation or handle mode name is unknown
func (c Config) GizmoState() (gizmo.ModeState, gizmo.Settings, error) {
	mode := gizmo.DefaultModeState()
	settings := gizmo.DefaultSettings()

	space, err := gizmo.ParseSpace(c.Gizmo.Orientation)
	if err != nil {
		return mode, settings, err
	}
	handle, err := gizmo.ParseHandleMode(c.Gizmo.HandleMode)
	if err != nil {
		return mode, settings, err
	}
	mode.Orientation = space
	mode.HandleMode = handle
	settings.ApplyHandleMode(handle)
	settings.Rotate = c.Gizmo.Rotate
	settings.TranslatePlanes = c.Gizmo.Planes
	return mode, settings, nil
}

func key(name string) (uint32, error) {
	code, ok := common.KeyCode(name)
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownKey, name)
	}
	return code, nil
}

func button(name string) (uint32, error) {
	code, ok := common.MouseButtonCode(name)
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownKey, name)
	}
	return code, nil
}
