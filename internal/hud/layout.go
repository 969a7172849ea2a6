package hud

import (
	"image/color"
	"strings"

	"irrigation3d/internal/scene"
)

const (
	Margin = 32

	TitleSize    = 36
	SubtitleSize = 14
	SubtitleMax  = 320
	SubtitleGap  = 8

	LegendPadding = 24
	LegendGap     = 12
	LegendText    = 12
	SwatchSize    = 12
	SwatchGap     = 12
	LegendRadius  = 16

	HintSize = 10
)

const (
	TitleText    = "IRRIGATION"
	TitleAccent  = "3D"
	SubtitleText = "Underground Drainage & Water Management System Reconstruction"
	HintText     = "Drag to Rotate • Scroll to Zoom"
)

var (
	TitleColor    = scene.Hex("#ffffff")
	AccentColor   = scene.Hex("#38bdf8")
	SubtitleColor = scene.Hex("#94a3b8")
	LegendBG      = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 204}
	LegendBorder  = color.RGBA{R: 255, G: 255, B: 255, A: 26}
	LegendColor   = scene.Hex("#cbd5e1")
	HintColor     = scene.Hex("#64748b")
)

type LegendEntry struct {
	Label  string
	Swatch color.RGBA
}

func Legend() []LegendEntry {
	return []LegendEntry{
		{Label: "Water Storage", Swatch: scene.Hex("#0ea5e9")},
		{Label: "Top Soil Layer", Swatch: scene.Hex("#92400e")},
		{Label: "Drainage Layer", Swatch: scene.Hex("#a8a29e")},
		{Label: "Perforated Piping", Swatch: scene.Hex("#334155")},
	}
}

// Measure returns the width in pixels of text drawn at size.
type Measure func(text string, size float64) float64

type Rect struct {
	X, Y, W, H float64
}

type Point struct {
	X, Y float64
}

type Text struct {
	Text  string
	Pos   Point
	Size  float64
	Color color.RGBA
}

type Swatch struct {
	Center Point
	Radius float64
	Color  color.RGBA
}

// Layout is the host surface chrome for one viewport size.
type Layout struct {
	Width, Height int

	Title    []Text
	Subtitle []Text
	Legend   Rect
	Swatches []Swatch
	Entries  []Text
	Hint     Text
}

// Compute lays out the header, legend and hint for a w×h viewport.
func Compute(w, h int, measure Measure) Layout {
	l := Layout{Width: w, Height: h}

	titleWidth := measure(TitleText+" ", TitleSize)
	l.Title = []Text{
		{Text: TitleText, Pos: Point{Margin, Margin}, Size: TitleSize, Color: TitleColor},
		{Text: TitleAccent, Pos: Point{Margin + titleWidth, Margin}, Size: TitleSize, Color: AccentColor},
	}

	y := float64(Margin + TitleSize + SubtitleGap)
	for _, line := range Wrap(strings.ToUpper(SubtitleText), SubtitleMax, SubtitleSize, measure) {
		l.Subtitle = append(l.Subtitle, Text{Text: line, Pos: Point{Margin, y}, Size: SubtitleSize, Color: SubtitleColor})
		y += SubtitleSize * 1.4
	}

	entries := Legend()
	widest := 0.0
	for _, e := range entries {
		if width := measure(strings.ToUpper(e.Label), LegendText); width > widest {
			widest = width
		}
	}
	rows := float64(len(entries))
	l.Legend = Rect{
		W: LegendPadding*2 + SwatchSize + SwatchGap + widest,
		H: LegendPadding*2 + rows*LegendText + (rows-1)*LegendGap,
	}
	l.Legend.X = Margin
	l.Legend.Y = float64(h) - Margin - l.Legend.H

	rowY := l.Legend.Y + LegendPadding
	for _, e := range entries {
		l.Swatches = append(l.Swatches, Swatch{
			Center: Point{l.Legend.X + LegendPadding + SwatchSize/2, rowY + LegendText/2},
			Radius: SwatchSize / 2,
			Color:  e.Swatch,
		})
		l.Entries = append(l.Entries, Text{
			Text:  strings.ToUpper(e.Label),
			Pos:   Point{l.Legend.X + LegendPadding + SwatchSize + SwatchGap, rowY},
			Size:  LegendText,
			Color: LegendColor,
		})
		rowY += LegendText + LegendGap
	}

	hint := strings.ToUpper(HintText)
	l.Hint = Text{
		Text:  hint,
		Pos:   Point{float64(w) - Margin - measure(hint, HintSize), float64(h) - Margin - HintSize},
		Size:  HintSize,
		Color: HintColor,
	}

	return l
}

// Wrap breaks text on spaces so no line is wider than maxWidth. A single word
// wider than maxWidth gets a line of its own.
func Wrap(text string, maxWidth, size float64, measure Measure) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if measure(candidate, size) > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
