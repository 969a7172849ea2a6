package droplet

import "math/rand"

const (
	// Step is how far every droplet falls per rendered frame.
	Step = 0.02
	// Floor is the lowest y a droplet may reach before it is recycled.
	Floor = -3.0
	// Ceiling is the y a recycled droplet reappears at.
	Ceiling = -0.5

	// DefaultCount is the number of droplets mounted with the scene.
	DefaultCount = 20
	// Radius of the rendered droplet sphere.
	Radius = 0.05
)

// Spawn volume for initial droplet positions.
var (
	SpawnMin = Vec3{X: -3, Y: -2.5, Z: -1}
	SpawnMax = Vec3{X: 3, Y: -0.5, Z: 1}
)

type Vec3 struct {
	X, Y, Z float64
}

type Droplet struct {
	Position Vec3
}

// Field owns a fixed set of droplets. It is mutated only from the frame loop.
type Field struct {
	droplets []Droplet
	frames   uint64
	wraps    uint64
}

type Options struct {
	Count int
	// Rand seeds the initial positions. Nil uses the global source.
	Rand *rand.Rand
}
