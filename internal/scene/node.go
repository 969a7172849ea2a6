package scene

var unitScale = Vec3{X: 1, Y: 1, Z: 1}

func Group(name string, position Vec3, children ...*Node) *Node {
	return &Node{
		Name:     name,
		Position: position,
		Scale:    unitScale,
		Children: children,
	}
}

func MeshNode(name string, position Vec3, mesh *Mesh, material *Material) *Node {
	return &Node{
		Name:     name,
		Position: position,
		Scale:    unitScale,
		Mesh:     mesh,
		Material: material,
	}
}

// Rotated sets the node's Euler rotation and returns it.
func (n *Node) Rotated(x, y, z float64) *Node {
	n.Rotation = Vec3{X: x, Y: y, Z: z}
	return n
}

func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Find returns the first node named name in depth-first order.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

func Box(width, height, depth float64) *Mesh {
	return &Mesh{Kind: MeshBox, Width: width, Height: height, Depth: depth}
}

func Cylinder(radiusTop, radiusBottom, height float64, segments int) *Mesh {
	return &Mesh{
		Kind:         MeshCylinder,
		RadiusTop:    radiusTop,
		RadiusBottom: radiusBottom,
		Height:       height,
		Segments:     segments,
	}
}

func Cone(radius, height float64, segments int) *Mesh {
	return &Mesh{Kind: MeshCone, Radius: radius, Height: height, Segments: segments}
}

func Sphere(radius float64, widthSegments, heightSegments int) *Mesh {
	return &Mesh{
		Kind:           MeshSphere,
		Radius:         radius,
		Segments:       widthSegments,
		HeightSegments: heightSegments,
	}
}

func Torus(radius, tube float64, radialSegments, tubularSegments int) *Mesh {
	return &Mesh{
		Kind:            MeshTorus,
		Radius:          radius,
		Tube:            tube,
		Segments:        radialSegments,
		TubularSegments: tubularSegments,
	}
}

func Plane(width, height float64) *Mesh {
	return &Mesh{Kind: MeshPlane, Width: width, Height: height}
}
