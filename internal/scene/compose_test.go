package scene

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"irrigation3d/internal/droplet"
)

func TestComposeIsDeterministic(t *testing.T) {
	a := Compose(Options{Field: droplet.New(droplet.Options{Count: droplet.DefaultCount})})
	b := Compose(Options{Field: droplet.New(droplet.Options{Count: droplet.DefaultCount})})

	if !reflect.DeepEqual(a.Root, b.Root) {
		t.Error("Expected identical scene trees")
	}
	if !reflect.DeepEqual(a.Lights, b.Lights) {
		t.Error("Expected identical lights")
	}
	if !reflect.DeepEqual(a.Labels, b.Labels) {
		t.Error("Expected identical labels")
	}
	if a.Camera != b.Camera || a.Controls != b.Controls {
		t.Error("Expected identical camera setup")
	}
}

func TestComposeSeededStars(t *testing.T) {
	a := Compose(Options{Rand: rand.New(rand.NewSource(9))})
	b := Compose(Options{Rand: rand.New(rand.NewSource(9))})

	if !reflect.DeepEqual(a.Stars, b.Stars) {
		t.Error("Expected identical stars for identical seeds")
	}
}

func TestComposeMeshCount(t *testing.T) {
	s := Compose(Options{})

	// 3 plants x 8, tank 9, underground 6, ground 1
	if got := Count(s.Root); got != 40 {
		t.Errorf("Expected 40 meshes, got %d", got)
	}
}

func TestComposeDropletGroup(t *testing.T) {
	field := droplet.New(droplet.Options{Count: 5})
	s := Compose(Options{Field: field})

	if s.DropletGroup == nil {
		t.Fatal("Expected droplet group in tree")
	}
	if len(s.DropletGroup.Children) != 0 {
		t.Error("Expected droplet group to hold no static children")
	}
	if s.Droplet.Mesh == nil || s.Droplet.Mesh.Kind != MeshSphere {
		t.Error("Expected sphere droplet template")
	}
	if s.Field != field {
		t.Error("Expected field to be carried through")
	}
}

func TestPlantLayout(t *testing.T) {
	plant := Plant("plant", Vec3{X: -3})

	tests := []struct {
		name string
		kind MeshKind
		want Vec3
	}{
		{"stem", MeshCylinder, Vec3{X: -3, Y: 0.5}},
		{"cob", MeshSphere, Vec3{X: -3, Y: 1.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var world mgl64.Mat4
			var found *Node
			Walk(plant, func(node *Node, m mgl64.Mat4) bool {
				if node.Name == tt.name {
					found, world = node, m
				}
				return true
			})
			if found == nil {
				t.Fatalf("node %q not found", tt.name)
			}
			if found.Mesh.Kind != tt.kind {
				t.Errorf("Expected %s, got %s", tt.kind, found.Mesh.Kind)
			}
			assertNear(t, Apply(world, Vec3{}), tt.want)
		})
	}
}

func TestWalkInheritsTransforms(t *testing.T) {
	tank := WaterTank()

	var frame mgl64.Mat4
	Walk(tank, func(node *Node, world mgl64.Mat4) bool {
		if node.Name == "frame" {
			frame = world
		}
		return true
	})

	// tank (4,1.5,0) + panel (0,1.4,0) + frame (0,0.1,0)
	assertNear(t, Apply(frame, Vec3{}), Vec3{X: 4, Y: 3, Z: 0})
}

func TestWalkRotation(t *testing.T) {
	pipe := MeshNode("pipe", Vec3{}, Cylinder(0.3, 0.3, 8, 32), Standard("#334155")).Rotated(0, 0, math.Pi/2)

	var world mgl64.Mat4
	Walk(pipe, func(_ *Node, m mgl64.Mat4) bool {
		world = m
		return true
	})

	// The cylinder axis (+Y) is laid along -X by a quarter turn about Z.
	assertNear(t, Apply(world, Vec3{Y: 4}), Vec3{X: -4})
}

func TestWalkSkipChildren(t *testing.T) {
	s := Compose(Options{})

	visited := 0
	Walk(s.Root, func(node *Node, _ mgl64.Mat4) bool {
		visited++
		return node.Name != "irrigation"
	})

	// root, irrigation, ground
	if visited != 3 {
		t.Errorf("Expected 3 visited nodes, got %d", visited)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    [3]uint8
		wantErr bool
	}{
		{"#0ea5e9", [3]uint8{0x0e, 0xa5, 0xe9}, false},
		{"78350f", [3]uint8{0x78, 0x35, 0x0f}, false},
		{"#fff", [3]uint8{255, 255, 255}, false},
		{"#f0c", [3]uint8{0xff, 0x00, 0xcc}, false},
		{" #1e293b ", [3]uint8{0x1e, 0x29, 0x3b}, false},
		{"", [3]uint8{}, true},
		{"#12345", [3]uint8{}, true},
		{"#zzzzzz", [3]uint8{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if c.R != tt.want[0] || c.G != tt.want[1] || c.B != tt.want[2] || c.A != 255 {
				t.Errorf("Expected %v, got %v", tt.want, c)
			}
		})
	}
}

func TestWaterLayerIsTransparent(t *testing.T) {
	u := UndergroundSystem()

	for _, layer := range Layers {
		node := u.Find(layer.Name)
		if node == nil {
			t.Fatalf("layer %q missing", layer.Name)
		}
		want := layer.Name == "water"
		if node.Material.Transparent() != want {
			t.Errorf("layer %q: transparent=%v, want %v", layer.Name, node.Material.Transparent(), want)
		}
	}
}

func assertNear(t *testing.T, got, want Vec3) {
	t.Helper()
	const eps = 1e-9
	if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps || math.Abs(got.Z-want.Z) > eps {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}
