package main

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"irrigation3d/internal/camera"
	"irrigation3d/internal/debug"
	"irrigation3d/internal/droplet"
	"irrigation3d/internal/engine3D"
	"irrigation3d/internal/hud"
	"irrigation3d/internal/scene"
	"irrigation3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Window struct {
	scene    *scene.Scene
	field    *droplet.Field
	orbit    *camera.Orbit
	renderer *engine3D.Renderer
	hud      *hud.HUD

	startTime    time.Time
	targetFPS    int
	screenWidth  int
	screenHeight int

	debugOverlay *debug.DebugOverlay
}

func NewWindow(rng *rand.Rand, targetFPS int) *Window {
	if targetFPS <= 0 {
		targetFPS = 60
	}

	field := droplet.New(droplet.Options{Count: droplet.DefaultCount, Rand: rng})
	s := scene.Compose(scene.Options{Field: field, Rand: rng})
	utils.Info("Scene composed: %d meshes, %d droplets, %d labels, %d stars",
		scene.Count(s.Root), field.Len(), len(s.Labels), len(s.Stars))

	orbit := camera.NewOrbit(camera.Options{
		Eye:    toVec(s.Camera.Position),
		Target: toVec(s.Camera.Target),
		Limits: camera.Limits{
			MinDistance:   s.Controls.MinDistance,
			MaxDistance:   s.Controls.MaxDistance,
			MaxPolarAngle: s.Controls.MaxPolarAngle,
		},
		FPS:     targetFPS,
		Damping: s.Controls.Damping,
	})

	return &Window{
		scene:        s,
		field:        field,
		orbit:        orbit,
		renderer:     engine3D.NewRenderer(),
		hud:          hud.New(),
		startTime:    time.Now(),
		targetFPS:    targetFPS,
		screenWidth:  rl.GetScreenWidth(),
		screenHeight: rl.GetScreenHeight(),
		debugOverlay: debug.NewDebugOverlay(),
	}
}

func toVec(v scene.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (window *Window) Run() {
	rl.SetTargetFPS(int32(window.targetFPS))

	for !rl.WindowShouldClose() {
		window.Update()

		rl.BeginDrawing()
		window.Draw()
		rl.EndDrawing()
	}
}

func (window *Window) Update() {
	screenWidth := rl.GetScreenWidth()
	screenHeight := rl.GetScreenHeight()
	if rl.IsWindowResized() || screenWidth != window.screenWidth || screenHeight != window.screenHeight {
		utils.Debug("Viewport resized: %dx%d -> %dx%d", window.screenWidth, window.screenHeight, screenWidth, screenHeight)
		window.screenWidth, window.screenHeight = screenWidth, screenHeight
		window.hud.Resize(screenWidth, screenHeight)
	}

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		delta := rl.GetMouseDelta()
		window.orbit.Rotate(float64(delta.X), float64(delta.Y), screenHeight)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		window.orbit.Zoom(float64(wheel))
	}
	window.orbit.Update()

	window.field.Update()

	if rl.IsKeyPressed(rl.KeyF8) {
		utils.ShowDebugUI = !utils.ShowDebugUI
	}

	if utils.ShowDebugUI {
		if rl.IsKeyPressed(rl.KeyF9) {
			window.debugOverlay.ToggleMarkers()
		}
		window.debugOverlay.Update()
	}
}

func (window *Window) Draw() {
	totalTime := time.Since(window.startTime).Seconds()
	cam := engine3D.CameraFor(window.orbit.Position(), window.orbit.Target, window.scene.Camera.FOV)

	window.renderer.Render(window.scene, cam, totalTime)

	if utils.ShowDebugUI {
		rl.BeginMode3D(cam)
		window.debugOverlay.DrawMarkers(window.scene)
		rl.EndMode3D()
	}

	window.hud.Draw()

	if utils.ShowDebugUI {
		frames, wraps := window.field.Stats()
		window.debugOverlay.Draw(debug.FrameInfo{
			Render:   window.renderer.Stats,
			Droplets: window.field.Len(),
			Frames:   frames,
			Wraps:    wraps,
			Distance: window.orbit.Distance(),
			Polar:    window.orbit.Polar(),
			Azimuth:  window.orbit.Azimuth(),
		})
	}
}

func (window *Window) Close() {
	window.renderer.Unload()
}
