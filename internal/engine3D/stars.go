package engine3D

import (
	"irrigation3d/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawStars draws the backdrop as points dimmed by star size.
func drawStars(stars []scene.Star, factor float64) {
	if factor <= 0 {
		factor = 1
	}
	for _, star := range stars {
		col := star.Color
		col.A = uint8(255 * clamp01(star.Size/factor))
		rl.DrawPoint3D(toVector3(star.Position), col)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
