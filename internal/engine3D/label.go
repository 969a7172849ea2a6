package engine3D

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"irrigation3d/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const minLabelPixels = 6

// LabelPixelSize returns the on-screen height in pixels of text worldSize
// units tall at depth units in front of a perspective camera.
func LabelPixelSize(worldSize, depth, fovDegrees float64, screenHeight int) float64 {
	if depth <= 0 || screenHeight <= 0 {
		return 0
	}
	halfFOV := fovDegrees * math.Pi / 360
	return worldSize * float64(screenHeight) / (2 * depth * math.Tan(halfFOV))
}

// drawLabels projects each label anchor and draws it centred, facing the
// viewer. Labels behind the camera are skipped, and so are labels whose anchor
// sits behind opaque geometry. It returns how many were occluded.
func drawLabels(labels []scene.Label, camera rl.Camera3D, t float64, occluders []bounds) int {
	font := Font(FontSize)
	screenH := rl.GetScreenHeight()

	forward := rl.Vector3Normalize(rl.Vector3Subtract(camera.Target, camera.Position))
	eye := mgl64.Vec3{float64(camera.Position.X), float64(camera.Position.Y), float64(camera.Position.Z)}
	occluded := 0

	for _, label := range labels {
		p := label.Anchor(t)
		if hidden(occluders, eye, mgl64.Vec3{p.X, p.Y, p.Z}) {
			occluded++
			continue
		}

		anchor := toVector3(p)
		depth := rl.Vector3DotProduct(rl.Vector3Subtract(anchor, camera.Position), forward)
		if depth <= 0.1 {
			continue
		}

		size := float32(LabelPixelSize(label.FontSize, float64(depth), float64(camera.Fovy), screenH))
		if size < minLabelPixels {
			continue
		}

		screen := rl.GetWorldToScreen(anchor, camera)
		extent := rl.MeasureTextEx(font, label.Text, size, 0)
		pos := rl.NewVector2(screen.X-extent.X/2, screen.Y-extent.Y/2)

		rl.DrawTextEx(font, label.Text, pos, size, 0, label.Color)
	}

	return occluded
}
