package engine3D

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"irrigation3d/internal/scene"
)

// bounds is a world-space axis aligned box.
type bounds struct {
	min, max mgl64.Vec3
}

// meshBounds encloses primitive m placed by world. Extents follow the scene
// conventions: centred on the origin, cylinders along Y, torus and plane in XY.
func meshBounds(m scene.Mesh, world mgl64.Mat4) bounds {
	var half mgl64.Vec3
	switch m.Kind {
	case scene.MeshBox:
		half = mgl64.Vec3{m.Width / 2, m.Height / 2, m.Depth / 2}
	case scene.MeshCylinder:
		r := math.Max(m.RadiusTop, m.RadiusBottom)
		half = mgl64.Vec3{r, m.Height / 2, r}
	case scene.MeshCone:
		half = mgl64.Vec3{m.Radius, m.Height / 2, m.Radius}
	case scene.MeshSphere:
		half = mgl64.Vec3{m.Radius, m.Radius, m.Radius}
	case scene.MeshTorus:
		r := m.Radius + m.Tube
		half = mgl64.Vec3{r, r, m.Tube}
	case scene.MeshPlane:
		half = mgl64.Vec3{m.Width / 2, m.Height / 2, 0}
	}

	b := bounds{
		min: mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
		max: mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
	for i := 0; i < 8; i++ {
		corner := mgl64.Vec4{half[0], half[1], half[2], 1}
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				corner[axis] = -corner[axis]
			}
		}
		p := world.Mul4x1(corner).Vec3()
		for axis := 0; axis < 3; axis++ {
			b.min[axis] = math.Min(b.min[axis], p[axis])
			b.max[axis] = math.Max(b.max[axis], p[axis])
		}
	}
	return b
}

// blocks reports whether the segment from eye to p passes through b before
// reaching p.
func (b bounds) blocks(eye, p mgl64.Vec3) bool {
	const eps = 1e-6

	dir := p.Sub(eye)
	enter, exit := 0.0, 1.0
	for axis := 0; axis < 3; axis++ {
		if math.Abs(dir[axis]) < eps {
			if eye[axis] < b.min[axis] || eye[axis] > b.max[axis] {
				return false
			}
			continue
		}
		t0 := (b.min[axis] - eye[axis]) / dir[axis]
		t1 := (b.max[axis] - eye[axis]) / dir[axis]
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		enter = math.Max(enter, t0)
		exit = math.Min(exit, t1)
		if enter > exit {
			return false
		}
	}
	return enter < 1-eps
}

// labelOccluders collects the bounds of every opaque mesh in the tree. Water
// and other see-through layers never hide a label.
func labelOccluders(root *scene.Node) []bounds {
	var occluders []bounds
	scene.Walk(root, func(node *scene.Node, world mgl64.Mat4) bool {
		if node.Mesh == nil || node.Material == nil || node.Material.Transparent() {
			return true
		}
		occluders = append(occluders, meshBounds(*node.Mesh, world))
		return true
	})
	return occluders
}

func hidden(occluders []bounds, eye, p mgl64.Vec3) bool {
	for _, b := range occluders {
		if b.blocks(eye, p) {
			return true
		}
	}
	return false
}
