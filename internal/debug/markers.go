package debug

import (
	"github.com/go-gl/mathgl/mgl64"

	"irrigation3d/internal/droplet"
	"irrigation3d/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DrawMarkers draws node origins and droplet bounds. Call inside a 3D mode.
func (d *DebugOverlay) DrawMarkers(s *scene.Scene) {
	if !d.ShowMarkers {
		return
	}

	scene.Walk(s.Root, func(node *scene.Node, world mgl64.Mat4) bool {
		p := scene.Apply(world, scene.Vec3{})
		col := rl.Green
		if node.Mesh == nil {
			col = rl.Red
		}
		rl.DrawSphereWires(rl.NewVector3(float32(p.X), float32(p.Y), float32(p.Z)), 0.03, 4, 4, col)
		return true
	})

	if s.Field == nil {
		return
	}
	size := float32(droplet.Radius * 2)
	for _, dr := range s.Field.Droplets() {
		p := dr.Position
		rl.DrawCubeWires(rl.NewVector3(float32(p.X), float32(p.Y), float32(p.Z)), size, size, size, rl.Yellow)
	}
	// wrap band
	rl.DrawLine3D(rl.NewVector3(-6, droplet.Ceiling, 0), rl.NewVector3(6, droplet.Ceiling, 0), rl.SkyBlue)
	rl.DrawLine3D(rl.NewVector3(-6, droplet.Floor, 0), rl.NewVector3(6, droplet.Floor, 0), rl.SkyBlue)
}
