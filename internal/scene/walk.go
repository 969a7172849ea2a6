package scene

import "github.com/go-gl/mathgl/mgl64"

// Local returns the node's transform relative to its parent.
func (n *Node) Local() mgl64.Mat4 {
	scale := n.Scale
	if scale == (Vec3{}) {
		scale = unitScale
	}

	return mgl64.Translate3D(n.Position.X, n.Position.Y, n.Position.Z).
		Mul4(mgl64.HomogRotate3DX(n.Rotation.X)).
		Mul4(mgl64.HomogRotate3DY(n.Rotation.Y)).
		Mul4(mgl64.HomogRotate3DZ(n.Rotation.Z)).
		Mul4(mgl64.Scale3D(scale.X, scale.Y, scale.Z))
}

// Walk visits root and its descendants depth first with their world
// transforms. Returning false from fn skips the node's children.
func Walk(root *Node, fn func(node *Node, world mgl64.Mat4) bool) {
	walk(root, mgl64.Ident4(), fn)
}

func walk(node *Node, parent mgl64.Mat4, fn func(*Node, mgl64.Mat4) bool) {
	if node == nil {
		return
	}
	world := parent.Mul4(node.Local())
	if !fn(node, world) {
		return
	}
	for _, child := range node.Children {
		walk(child, world, fn)
	}
}

// Count returns how many nodes under root carry a mesh.
func Count(root *Node) int {
	count := 0
	Walk(root, func(node *Node, _ mgl64.Mat4) bool {
		if node.Mesh != nil {
			count++
		}
		return true
	})
	return count
}

// Apply transforms a point by m.
func Apply(m mgl64.Mat4, p Vec3) Vec3 {
	v := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}
