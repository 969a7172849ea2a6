package hud

import (
	"strings"

	"irrigation3d/internal/engine3D"
	"irrigation3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUD draws the 2D chrome over the viewport. Layout is recomputed only when
// the viewport size changes.
type HUD struct {
	font   rl.Font
	layout Layout
	ready  bool
}

func New() *HUD {
	return &HUD{font: engine3D.Font(engine3D.FontSize)}
}

func (h *HUD) measure(text string, size float64) float64 {
	return float64(rl.MeasureTextEx(h.font, h.text(text), float32(size), 0).X)
}

// text swaps glyphs the fallback font lacks.
func (h *HUD) text(s string) string {
	if engine3D.HasGlyphs() {
		return s
	}
	return strings.ReplaceAll(s, "•", "-")
}

func (h *HUD) Resize(w, height int) {
	h.layout = Compute(w, height, h.measure)
	h.ready = true
	utils.Debug("HUD layout for %dx%d", w, height)
}

func (h *HUD) Draw() {
	w, height := rl.GetScreenWidth(), rl.GetScreenHeight()
	if !h.ready || h.layout.Width != w || h.layout.Height != height {
		h.Resize(w, height)
	}
	l := h.layout

	for _, t := range l.Title {
		h.drawText(t)
	}
	for _, t := range l.Subtitle {
		h.drawText(t)
	}

	panel := rl.NewRectangle(float32(l.Legend.X), float32(l.Legend.Y), float32(l.Legend.W), float32(l.Legend.H))
	roundness := float32(LegendRadius*2) / float32(min(l.Legend.W, l.Legend.H))
	rl.DrawRectangleRounded(panel, roundness, 8, LegendBG)
	rl.DrawRectangleLinesEx(panel, 1, LegendBorder)

	for _, s := range l.Swatches {
		rl.DrawCircle(int32(s.Center.X), int32(s.Center.Y), float32(s.Radius), s.Color)
	}
	for _, t := range l.Entries {
		h.drawText(t)
	}

	h.drawText(l.Hint)
}

func (h *HUD) drawText(t Text) {
	rl.DrawTextEx(h.font, h.text(t.Text), rl.NewVector2(float32(t.Pos.X), float32(t.Pos.Y)), float32(t.Size), 0, t.Color)
}
