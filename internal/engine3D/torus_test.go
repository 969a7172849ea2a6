package engine3D

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"irrigation3d/internal/scene"
)

func TestTorusRingLiesFlatAroundTank(t *testing.T) {
	tank := scene.WaterTank()

	var ridge *scene.Node
	var world mgl64.Mat4
	scene.Walk(tank, func(node *scene.Node, m mgl64.Mat4) bool {
		if node.Name == "ridge-0" {
			ridge, world = node, m
		}
		return true
	})
	if ridge == nil {
		t.Fatal("ridge-0 not found")
	}

	ring := TorusRing(*ridge.Mesh, world)
	if len(ring) != ridge.Mesh.TubularSegments+1 {
		t.Fatalf("Expected %d points, got %d", ridge.Mesh.TubularSegments+1, len(ring))
	}

	for i, p := range ring {
		// tank at (4,1.5,0), ridge 0.8 above its centre
		if math.Abs(p.Y-2.3) > 1e-9 {
			t.Fatalf("point %d at y=%f, want 2.3", i, p.Y)
		}
		r := math.Hypot(p.X-4, p.Z)
		if math.Abs(r-ridge.Mesh.Radius) > 1e-9 {
			t.Fatalf("point %d at radius %f, want %f", i, r, ridge.Mesh.Radius)
		}
	}
}
