package debug

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"irrigation3d/internal/engine3D"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FrameInfo is what the frame loop reports to the overlay each frame.
type FrameInfo struct {
	Render   engine3D.FrameStats
	Droplets int
	Frames   uint64
	Wraps    uint64

	Distance float64
	Polar    float64
	Azimuth  float64
}

// DebugOverlay is the F8 stats panel.
type DebugOverlay struct {
	ShowMarkers bool

	fontHeight int
	lineHeight int
	panelWidth int
	uiScale    float64
	font       rl.Font

	monitorWidth  int
	monitorHeight int

	lastSample time.Time
	memStats   runtime.MemStats
}

func NewDebugOverlay() *DebugOverlay {
	monitor := rl.GetCurrentMonitor()

	d := &DebugOverlay{
		ShowMarkers:   true,
		monitorWidth:  rl.GetMonitorWidth(monitor),
		monitorHeight: rl.GetMonitorHeight(monitor),
		font:          engine3D.Font(engine3D.FontSize),
	}
	d.updateLayout()

	return d
}

func (d *DebugOverlay) updateLayout() {
	scale := math.Max(1.0, float64(d.monitorHeight)/1080.0)
	d.fontHeight = int(14 * scale)
	d.lineHeight = int(20 * scale)
	d.panelWidth = int(300 * scale)
	d.uiScale = scale
}

// Update samples memory statistics at most twice a second.
func (d *DebugOverlay) Update() {
	if time.Since(d.lastSample) < 500*time.Millisecond {
		return
	}
	runtime.ReadMemStats(&d.memStats)
	d.lastSample = time.Now()
}

// ToggleMarkers flips the 3D marker pass drawn by DrawMarkers.
func (d *DebugOverlay) ToggleMarkers() {
	d.ShowMarkers = !d.ShowMarkers
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (d *DebugOverlay) Draw(info FrameInfo) {
	x := rl.GetScreenWidth() - d.panelWidth - 16
	rl.DrawRectangle(int32(x-8), 8, int32(d.panelWidth), int32(d.lineHeight*25), rl.Fade(rl.Black, 0.7))

	ui := NewUIContext(x, 16, d.lineHeight, d.fontHeight, d.font)

	ui.Header("Timing:")
	ui.IndentLabel(fmt.Sprintf("FPS: %d", rl.GetFPS()), 10)
	ui.IndentLabel(fmt.Sprintf("Frame Time: %.2f ms", rl.GetFrameTime()*1000), 10)
	ui.IndentLabel(fmt.Sprintf("Refresh Rate: %d Hz", rl.GetMonitorRefreshRate(rl.GetCurrentMonitor())), 10)

	ui.Separator()
	ui.Header("Scene:")
	ui.IndentLabel(fmt.Sprintf("Mesh Draws: %d (%d transparent)", info.Render.Meshes, info.Render.Transparent), 10)
	ui.IndentLabel(fmt.Sprintf("Cached Meshes: %d", info.Render.Cached), 10)
	ui.IndentLabel(fmt.Sprintf("Tori: %d  Stars: %d", info.Render.Tori, info.Render.Stars), 10)
	ui.IndentLabel(fmt.Sprintf("Labels: %d (%d hidden)", info.Render.Labels, info.Render.Hidden), 10)
	ui.IndentLabel(fmt.Sprintf("Droplets: %d", info.Droplets), 10)
	ui.IndentLabel(fmt.Sprintf("Frames: %d  Wraps: %d", info.Frames, info.Wraps), 10)
	ui.IndentLabel(fmt.Sprintf("Markers: %s (F9)", onOff(d.ShowMarkers)), 10)

	ui.Separator()
	ui.Header("Camera:")
	ui.IndentLabel(fmt.Sprintf("Distance: %.2f", info.Distance), 10)
	ui.IndentLabel(fmt.Sprintf("Polar: %.1f deg", info.Polar*180/math.Pi), 10)
	ui.IndentLabel(fmt.Sprintf("Azimuth: %.1f deg", info.Azimuth*180/math.Pi), 10)

	ui.Separator()
	ui.Header("Memory Usage:")
	ui.IndentLabel(fmt.Sprintf("Heap Alloc: %.2f MB", float64(d.memStats.HeapAlloc)/1024/1024), 10)
	ui.IndentLabel(fmt.Sprintf("Process Total: %.2f MB", float64(d.memStats.Sys)/1024/1024), 10)
	ui.IndentLabel(fmt.Sprintf("Goroutines: %d", runtime.NumGoroutine()), 10)

	ui.Separator()
	ui.Header("Window:")
	ui.IndentLabel(fmt.Sprintf("Viewport: %dx%d", rl.GetScreenWidth(), rl.GetScreenHeight()), 10)
	ui.IndentLabel(fmt.Sprintf("Monitor: %dx%d", d.monitorWidth, d.monitorHeight), 10)
	ui.IndentLabel(fmt.Sprintf("UI Scale: %.2fx", d.uiScale), 10)
}
