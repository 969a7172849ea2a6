package engine3D

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"irrigation3d/internal/scene"
)

func TestMeshBounds(t *testing.T) {
	tests := []struct {
		name     string
		mesh     *scene.Mesh
		world    mgl64.Mat4
		min, max mgl64.Vec3
	}{
		{
			name:  "top soil",
			mesh:  scene.Box(12, 1, 6),
			world: mgl64.Translate3D(0, -0.5, 0),
			min:   mgl64.Vec3{-6, -1, -3},
			max:   mgl64.Vec3{6, 0, 3},
		},
		{
			name:  "perforated pipe lies along X",
			mesh:  scene.Cylinder(0.3, 0.3, 8, 32),
			world: mgl64.Translate3D(0, -0.8, 0).Mul4(mgl64.HomogRotate3DZ(math.Pi / 2)),
			min:   mgl64.Vec3{-4, -1.1, -0.3},
			max:   mgl64.Vec3{4, -0.5, 0.3},
		},
		{
			name:  "ground plane lies flat",
			mesh:  scene.Plane(100, 100),
			world: mgl64.Translate3D(0, -4.5, 0).Mul4(mgl64.HomogRotate3DX(-math.Pi / 2)),
			min:   mgl64.Vec3{-50, -4.5, -50},
			max:   mgl64.Vec3{50, -4.5, 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := meshBounds(*tt.mesh, tt.world)
			if !b.min.ApproxEqualThreshold(tt.min, 1e-9) || !b.max.ApproxEqualThreshold(tt.max, 1e-9) {
				t.Errorf("Expected %v..%v, got %v..%v", tt.min, tt.max, b.min, b.max)
			}
		})
	}
}

func TestBoundsBlocks(t *testing.T) {
	box := bounds{min: mgl64.Vec3{-1, -1, -1}, max: mgl64.Vec3{1, 1, 1}}

	tests := []struct {
		name   string
		eye, p mgl64.Vec3
		want   bool
	}{
		{"through the box", mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{5, 0, 0}, true},
		{"passes above", mgl64.Vec3{-5, 2, 0}, mgl64.Vec3{5, 2, 0}, false},
		{"stops short", mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{-2, 0, 0}, false},
		{"point inside", mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{0, 0, 0}, true},
		{"point on the near face", mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{-1, 0, 0}, false},
		{"behind the eye", mgl64.Vec3{2, 0, 0}, mgl64.Vec3{5, 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.blocks(tt.eye, tt.p); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLabelOcclusion(t *testing.T) {
	s := scene.Compose(scene.Options{})
	occluders := labelOccluders(s.Root)

	anchors := map[string]mgl64.Vec3{}
	for _, label := range s.Labels {
		p := label.Anchor(0)
		anchors[label.Text] = mgl64.Vec3{p.X, p.Y, p.Z}
	}

	tests := []struct {
		name  string
		label string
		eye   mgl64.Vec3
		want  bool
	}{
		{"default view sees the soil label", "Soil (Torpaq)", mgl64.Vec3{10, 5, 15}, false},
		{"default view sees the tank label", "Solar Water Tank", mgl64.Vec3{10, 5, 15}, false},
		{"soil stack hides the soil label from the far side", "Soil (Torpaq)", mgl64.Vec3{-20, -0.5, 0}, true},
		{"water layer does not hide its own label", "Water (Su)", mgl64.Vec3{-20, -3, 0}, false},
		{"ground hides labels from below", "Crops (Corn)", mgl64.Vec3{0, -10, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := anchors[tt.label]
			if !ok {
				t.Fatalf("Label %q not found", tt.label)
			}
			if got := hidden(occluders, tt.eye, p); got != tt.want {
				t.Errorf("Expected hidden=%v for %q from %v, got %v", tt.want, tt.label, tt.eye, got)
			}
		})
	}
}
