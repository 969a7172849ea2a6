package scene

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

var DefaultStars = StarOptions{
	Radius:     100,
	Depth:      50,
	Count:      5000,
	Factor:     4,
	Saturation: 0,
}

// GenerateStars scatters opts.Count stars in a shell between Radius and
// Radius+Depth around the origin. Radii shrink monotonically with index.
func GenerateStars(opts StarOptions, r *rand.Rand) []Star {
	if opts.Count <= 0 {
		return nil
	}

	float := rand.Float64
	if r != nil {
		float = r.Float64
	}

	stars := make([]Star, opts.Count)
	radius := opts.Radius + opts.Depth
	increment := opts.Depth / float64(opts.Count)

	for i := range stars {
		radius -= increment * float()

		phi := math.Acos(1 - float()*2)
		theta := float() * 2 * math.Pi
		stars[i].Position = Vec3{
			X: radius * math.Sin(phi) * math.Sin(theta),
			Y: radius * math.Cos(phi),
			Z: radius * math.Sin(phi) * math.Cos(theta),
		}

		red, green, blue := colorful.Hsl(float64(i)/float64(opts.Count)*360, opts.Saturation, 0.9).RGB255()
		stars[i].Color = color.RGBA{R: red, G: green, B: blue, A: 255}
		stars[i].Size = (0.5 + 0.5*float()) * opts.Factor
	}

	return stars
}
