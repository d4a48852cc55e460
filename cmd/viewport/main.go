// Command viewport opens an editor viewport with the orbit/pan/zoom camera and
// the gizmo mode hotkeys wired to a small demo selection.
package main

import (
	"errors"
	"flag"
	"log"
	"math"
	"os"

	"github.com/Carmen-Shannon/oxy-editor/engine"
	"github.com/Carmen-Shannon/oxy-editor/engine/camera"
	"github.com/Carmen-Shannon/oxy-editor/engine/config"
	"github.com/Carmen-Shannon/oxy-editor/engine/editor"
	"github.com/Carmen-Shannon/oxy-editor/engine/gizmo"
	"github.com/Carmen-Shannon/oxy-editor/engine/input"
	"github.com/Carmen-Shannon/oxy-editor/engine/renderer"
	"github.com/Carmen-Shannon/oxy-editor/engine/selection"
	"github.com/Carmen-Shannon/oxy-editor/engine/ui"
	"github.com/Carmen-Shannon/oxy-editor/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// Background per gizmo orientation, so the active space is visible without a panel.
var spaceColors = map[gizmo.Space]renderer.Color{
	gizmo.SpaceGlobal: {R: 0.10, G: 0.10, B: 0.10, A: 1},
	gizmo.SpaceLocal:  {R: 0.08, G: 0.10, B: 0.16, A: 1},
	gizmo.SpaceScreen: {R: 0.08, G: 0.14, B: 0.10, A: 1},
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the editor YAML config")
	flag.Parse()

	// ── Config ──────────────────────────────────────────────────────────
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Editor] %v", err)
	}
	if _, err := os.Stat(*configPath); errors.Is(err, os.ErrNotExist) {
		if err := config.Save(*configPath, cfg); err != nil {
			log.Printf("[Editor] could not write default config: %v", err)
		}
	}
	bindings, err := cfg.InputBindings()
	if err != nil {
		log.Fatalf("[Editor] %v", err)
	}
	hotkeys, err := cfg.HotkeyCodes()
	if err != nil {
		log.Fatalf("[Editor] %v", err)
	}
	mode, settings, err := cfg.GizmoState()
	if err != nil {
		log.Fatalf("[Editor] %v", err)
	}

	// ── Window + Input ──────────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	collector := input.NewCollector()
	collector.Attach(win)

	// ── Renderer ────────────────────────────────────────────────────────
	presentMode := renderer.PresentModeUncapped
	if cfg.Window.VSync {
		presentMode = renderer.PresentModeVSync
	}
	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, win,
		renderer.WithPresentMode(presentMode),
		renderer.WithClearColor(spaceColors[mode.Orientation]),
	)
	if err != nil {
		log.Fatalf("[Editor] %v", err)
	}

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithProfiling(cfg.Profiler),
		engine.WithTickRate(60),
	)

	// ── Cameras ─────────────────────────────────────────────────────────
	aspect := float32(win.Width()) / float32(win.Height())
	cams := camera.NewSet(
		camera.NewCamera(
			camera.WithName("main"),
			camera.WithRoles(camera.RolePanOrbit|camera.RolePrimary|camera.RoleGizmoPickSource),
			camera.WithRadius(12),
			camera.WithYawPitch(float32(math.Pi/4), float32(math.Pi/6)),
			camera.WithAspect(aspect),
		),
		camera.NewCamera(
			camera.WithName("overview"),
			camera.WithRadius(30),
			camera.WithYawPitch(0, float32(math.Pi/2.5)),
			camera.WithProjection(camera.Orthographic(aspect, 0.1, 200)),
		),
	)

	// ── Demo selection ──────────────────────────────────────────────────
	sel := selection.NewSet()
	base := selection.IdentityTransform()
	base.Translation = mgl32.Vec3{-2, 0, 0}
	baseID := sel.Add(base, selection.WithSelected(true))

	arm := selection.IdentityTransform()
	arm.Translation = mgl32.Vec3{0, 2, 0}
	arm.Rotation = mgl32.QuatRotate(float32(math.Pi/6), mgl32.Vec3{0, 0, 1})
	sel.Add(arm, selection.WithParent(baseID), selection.WithSelected(true))

	prop := selection.IdentityTransform()
	prop.Translation = mgl32.Vec3{3, 0, 1}
	prop.Scale = mgl32.Vec3{2, 1, 1}
	sel.Add(prop)

	// ── Editor ──────────────────────────────────────────────────────────
	ed := editor.NewEditor(
		editor.WithBindings(bindings),
		editor.WithController(camera.NewController(cfg.ControllerOptions()...)),
		editor.WithViewport(win),
		editor.WithCameras(cams),
		editor.WithSelection(sel),
		editor.WithPanel(gizmo.NewPanel(), ui.NewHotkeyHost(ui.WithBindings(hotkeys))),
		editor.WithGizmoState(mode, settings),
		editor.WithSkipRecorder(eng.Profiler()),
	)

	lastSpace := mode.Orientation
	eng.SetTickCallback(func(float32) {
		ed.Frame(collector.Frame())
		if space := ed.ModeState().Orientation; space != lastSpace {
			lastSpace = space
			r.SetClearColor(spaceColors[space])
		}
	})

	log.Printf("[Editor] viewport ready: %s orbits, %s+%s pans, %s recenters",
		cfg.Bindings.Orbit, cfg.Bindings.PanModifiers[0], cfg.Bindings.Pan, cfg.Bindings.Recenter)
	eng.Run()
	r.Release()
	_ = win.Close()
}
