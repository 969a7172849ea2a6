package scene

import (
	"image/color"
	"math/rand"

	"irrigation3d/internal/droplet"
)

type Vec3 struct {
	X, Y, Z float64
}

type MeshKind int

const (
	MeshBox MeshKind = iota
	MeshCylinder
	MeshCone
	MeshSphere
	MeshTorus
	MeshPlane
)

func (k MeshKind) String() string {
	switch k {
	case MeshBox:
		return "box"
	case MeshCylinder:
		return "cylinder"
	case MeshCone:
		return "cone"
	case MeshSphere:
		return "sphere"
	case MeshTorus:
		return "torus"
	case MeshPlane:
		return "plane"
	}
	return "unknown"
}

// Mesh describes a primitive centred on its node's origin. Cylinders and
// cones run along +Y, the torus lies in the XY plane and the plane lies in XY
// facing +Z. Only the fields relevant to Kind are set.
type Mesh struct {
	Kind MeshKind

	Width, Height, Depth float64

	RadiusTop    float64
	RadiusBottom float64
	Radius       float64
	Tube         float64

	Segments        int
	HeightSegments  int
	TubularSegments int
}

type Material struct {
	Color     color.RGBA
	Emissive  color.RGBA
	Roughness float64
	Metalness float64
	// Opacity below 1 marks the material as transparent.
	Opacity        float64
	ReceiveShadows bool
}

func (m Material) Transparent() bool {
	return m.Opacity < 1
}

// Node is one element of the scene tree. Children inherit the node's
// transform.
type Node struct {
	Name     string
	Position Vec3
	// Rotation is an XYZ Euler rotation in radians.
	Rotation Vec3
	Scale    Vec3
	Mesh     *Mesh
	Material *Material
	Children []*Node
}

type LightKind int

const (
	LightAmbient LightKind = iota
	LightPoint
	LightDirectional
)

type Light struct {
	Kind        LightKind
	Position    Vec3
	Intensity   float64
	Color       color.RGBA
	CastShadows bool
}

type Camera struct {
	Position Vec3
	Target   Vec3
	// FOV is the vertical field of view in degrees.
	FOV float64
}

// Controls bounds the orbit camera.
type Controls struct {
	MinDistance   float64
	MaxDistance   float64
	MaxPolarAngle float64
	Damping       float64
}

type Float struct {
	Speed             float64
	RotationIntensity float64
	FloatIntensity    float64
	// Offset desynchronises labels sharing the same speed.
	Offset float64
}

type Label struct {
	Text     string
	Position Vec3
	Rotation Vec3
	FontSize float64
	Color    color.RGBA
	Float    *Float
}

type Star struct {
	Position Vec3
	Size     float64
	Color    color.RGBA
}

type StarOptions struct {
	Radius     float64
	Depth      float64
	Count      int
	Factor     float64
	Saturation float64
}

// Scene is everything mounted once per run.
type Scene struct {
	Background color.RGBA
	Root       *Node
	// DropletGroup is the empty group in Root under which Droplet is
	// instanced once per droplet in Field.
	DropletGroup *Node
	Droplet      Node
	Field        *droplet.Field
	Lights       []Light
	Camera       Camera
	Controls     Controls
	Labels       []Label
	Stars        []Star
}

type Options struct {
	Field *droplet.Field
	// Rand drives the star backdrop. Nil uses the global source.
	Rand *rand.Rand
}
