package scene

import "fmt"

var (
	PlantPositions = []Vec3{
		{X: -3, Y: 0, Z: 0},
		{X: -1, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
	}

	leafHeights = []float64{0.3, 0.6, 0.9}
)

const leafTilt = 0.5

// Plant builds one corn plant: a stem, three pairs of leaves and a cob on top.
func Plant(name string, position Vec3) *Node {
	plant := Group(name, position,
		MeshNode("stem", Vec3{Y: 0.5}, Cylinder(0.05, 0.05, 1, 8), Standard("#4d7c0f")),
	)

	for i, y := range leafHeights {
		plant.Add(Group(fmt.Sprintf("leaves-%d", i), Vec3{Y: y},
			MeshNode("leaf-front", Vec3{Z: 0.2}, Cone(0.1, 0.4, 4), Standard("#65a30d")).Rotated(leafTilt, 0, 0),
			MeshNode("leaf-back", Vec3{Z: -0.2}, Cone(0.1, 0.4, 4), Standard("#65a30d")).Rotated(-leafTilt, 0, 0),
		))
	}

	plant.Add(MeshNode("cob", Vec3{Y: 1.1}, Sphere(0.1, 8, 8), Standard("#facc15")))

	return plant
}

func Crops() *Node {
	crops := Group("crops", Vec3{})
	for i, p := range PlantPositions {
		crops.Add(Plant(fmt.Sprintf("plant-%d", i), p))
	}
	return crops
}
