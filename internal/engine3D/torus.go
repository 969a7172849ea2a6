package engine3D

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"irrigation3d/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TorusRing returns the centre line of a torus in its local XY plane,
// transformed into world space. The last point closes the ring.
func TorusRing(m scene.Mesh, world mgl64.Mat4) []scene.Vec3 {
	segments := m.TubularSegments
	if segments < 3 {
		segments = 3
	}

	points := make([]scene.Vec3, segments+1)
	for i := 0; i <= segments; i++ {
		angle := float64(i) / float64(segments) * 2 * math.Pi
		local := scene.Vec3{X: m.Radius * math.Cos(angle), Y: m.Radius * math.Sin(angle)}
		points[i] = scene.Apply(world, local)
	}
	return points
}

// drawTorus sweeps a tube along the ring with one short cylinder per segment.
func drawTorus(m scene.Mesh, world mgl64.Mat4, col color.RGBA) {
	ring := TorusRing(m, world)
	sides := int32(m.Segments)
	if sides < 3 {
		sides = 3
	}
	tube := float32(m.Tube)

	for i := 0; i+1 < len(ring); i++ {
		rl.DrawCylinderEx(toVector3(ring[i]), toVector3(ring[i+1]), tube, tube, sides, col)
	}
}
