package scene

import (
	"math"

	"irrigation3d/internal/droplet"
)

// Layer is one horizontal band of the underground cross-section.
type Layer struct {
	Name   string
	Y      float64
	Height float64
	Color  string
}

const (
	LayerWidth = 12
	LayerDepth = 6
)

var Layers = []Layer{
	{Name: "top-soil", Y: -0.5, Height: 1, Color: "#78350f"},
	{Name: "drainage", Y: -1.5, Height: 1, Color: "#a8a29e"},
	{Name: "water", Y: -3, Height: 2, Color: "#0ea5e9"},
}

const waterOpacity = 0.6

// UndergroundSystem builds the soil stack, the perforated pipe, the pipes
// feeding the tank and the empty group droplets are drawn under.
func UndergroundSystem() *Node {
	underground := Group("underground", Vec3{})

	for _, layer := range Layers {
		material := Standard(layer.Color)
		if layer.Name == "water" {
			material.Opacity = waterOpacity
		}
		underground.Add(MeshNode(layer.Name, Vec3{Y: layer.Y}, Box(LayerWidth, layer.Height, LayerDepth), material))
	}

	pipe := &Material{
		Color:     Hex("#334155"),
		Roughness: 0.2,
		Metalness: 0.8,
		Opacity:   1,
	}
	underground.Add(
		MeshNode("perforated-pipe", Vec3{Y: -0.8}, Cylinder(0.3, 0.3, 8, 32), pipe).Rotated(0, 0, math.Pi/2),
		DropletGroup(),
		MeshNode("vertical-pipe", Vec3{X: 4, Y: -0.5}, Cylinder(0.1, 0.1, 4, 16), Standard("#1e293b")),
		MeshNode("horizontal-pipe", Vec3{X: 4, Y: 0.5}, Cylinder(0.1, 0.1, 1, 16), Standard("#1e293b")).
			Rotated(0, 0, math.Pi/2),
	)

	return underground
}

const dropletGroupName = "droplets"

func DropletGroup() *Node {
	return Group(dropletGroupName, Vec3{})
}

// Droplet is the template drawn at every droplet position.
func Droplet() Node {
	return *MeshNode("droplet", Vec3{}, Sphere(droplet.Radius, 8, 8), Standard("#60a5fa"))
}

func Ground() *Node {
	ground := Standard("#020617")
	ground.ReceiveShadows = true
	return MeshNode("ground", Vec3{Y: -4.5}, Plane(100, 100), ground).Rotated(-math.Pi/2, 0, 0)
}
