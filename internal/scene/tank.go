package scene

import (
	"fmt"
	"math"
)

var (
	TankPosition = Vec3{X: 4, Y: 1.5, Z: 0}

	ridgeHeights = []float64{0.8, 0.4, 0, -0.4, -0.8}
)

// WaterTank builds the solar powered storage tank with its ridges and panel.
func WaterTank() *Node {
	body := &Material{
		Color:     Hex("#0ea5e9"),
		Roughness: 0.3,
		Metalness: 0.2,
		Opacity:   1,
	}

	tank := Group("water-tank", TankPosition,
		MeshNode("body", Vec3{}, Cylinder(1, 1, 2.5, 32), body),
	)

	for i, y := range ridgeHeights {
		tank.Add(MeshNode(fmt.Sprintf("ridge-%d", i), Vec3{Y: y}, Torus(1.01, 0.02, 8, 32), Standard("#0c4a6e")).
			Rotated(math.Pi/2, 0, 0))
	}

	tank.Add(SolarPanel())

	return tank
}

func SolarPanel() *Node {
	cells := Standard("#334155")
	cells.Emissive = Hex("#1e293b")

	return Group("solar-panel", Vec3{Y: 1.4},
		MeshNode("frame", Vec3{Y: 0.1}, Box(1.2, 0.05, 0.8), Standard("#1e293b")),
		MeshNode("cells", Vec3{Y: 0.11}, Plane(1.1, 0.7), cells).Rotated(-math.Pi/2, 0, 0),
		MeshNode("support", Vec3{Y: -0.1}, Cylinder(0.1, 0.1, 0.2, 8), Standard("#475569")),
	)
}
