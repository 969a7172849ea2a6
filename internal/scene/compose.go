package scene

import (
	"image/color"
	"math"
)

var (
	Background = Hex("#0f172a")

	DefaultCamera = Camera{
		Position: Vec3{X: 10, Y: 5, Z: 15},
		FOV:      40,
	}

	DefaultControls = Controls{
		MinDistance:   5,
		MaxDistance:   30,
		MaxPolarAngle: math.Pi / 1.8,
		Damping:       0.05,
	}
)

func Lights() []Light {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	return []Light{
		{Kind: LightAmbient, Intensity: 0.5, Color: white},
		{Kind: LightPoint, Position: Vec3{X: 10, Y: 10, Z: 10}, Intensity: 1, Color: white, CastShadows: true},
		{Kind: LightDirectional, Position: Vec3{X: -10, Y: 10, Z: 5}, Intensity: 0.5, Color: white},
	}
}

// Compose assembles the whole scene. Apart from opts.Field and the stars
// every call returns an identical tree.
func Compose(opts Options) *Scene {
	underground := UndergroundSystem()

	root := Group("root", Vec3{},
		Group("irrigation", Vec3{},
			Crops(),
			WaterTank(),
			underground,
		),
		Ground(),
	)

	return &Scene{
		Background:   Background,
		Root:         root,
		DropletGroup: underground.Find(dropletGroupName),
		Droplet:      Droplet(),
		Field:        opts.Field,
		Lights:       Lights(),
		Camera:       DefaultCamera,
		Controls:     DefaultControls,
		Labels:       Labels(),
		Stars:        GenerateStars(DefaultStars, opts.Rand),
	}
}
