package scene

import (
	"image/color"
	"math"
)

const labelFontSize = 0.3

var labelFloat = Float{Speed: 2, RotationIntensity: 0.5, FloatIntensity: 0.5}

func Labels() []Label {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	side := Vec3{Y: -math.Pi / 2}

	crops := labelFloat
	tank := labelFloat
	tank.Offset = 1.7

	return []Label{
		{Text: "Crops (Corn)", Position: Vec3{X: -4, Y: 0.5, Z: 3}, FontSize: labelFontSize, Color: white, Float: &crops},
		{Text: "Solar Water Tank", Position: Vec3{X: 4, Y: 3.5, Z: 0}, FontSize: labelFontSize, Color: white, Float: &tank},
		{Text: "Soil (Torpaq)", Position: Vec3{X: 6.5, Y: -0.5, Z: 0}, Rotation: side, FontSize: labelFontSize, Color: Hex("#78350f")},
		{Text: "Drainage (Drenaj)", Position: Vec3{X: 6.5, Y: -1.5, Z: 0}, Rotation: side, FontSize: labelFontSize, Color: Hex("#a8a29e")},
		{Text: "Water (Su)", Position: Vec3{X: 6.5, Y: -3, Z: 0}, Rotation: side, FontSize: labelFontSize, Color: Hex("#0ea5e9")},
	}
}

// Sway returns the bobbing offset and tilt of a floating label at time t
// seconds. The result stays within ±FloatIntensity/10 on Y.
func (f Float) Sway(t float64) (Vec3, Vec3) {
	phase := (f.Offset + t) / 4 * f.Speed

	tilt := Vec3{
		X: math.Cos(phase) / 8 * f.RotationIntensity,
		Y: math.Sin(phase) / 8 * f.RotationIntensity,
		Z: math.Sin(phase) / 20 * f.RotationIntensity,
	}
	offset := Vec3{Y: math.Sin(phase) / 10 * f.FloatIntensity}

	return offset, tilt
}

// Anchor returns where the label sits at time t.
func (l Label) Anchor(t float64) Vec3 {
	if l.Float == nil {
		return l.Position
	}
	offset, _ := l.Float.Sway(t)
	return Vec3{X: l.Position.X + offset.X, Y: l.Position.Y + offset.Y, Z: l.Position.Z + offset.Z}
}
