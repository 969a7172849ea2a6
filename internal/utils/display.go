package utils

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// ScreenSize asks the X server for the default screen's size in pixels.
func ScreenSize() (int, int, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return 0, 0, fmt.Errorf("connect to X server: %w", err)
	}
	defer conn.Close()

	screen := xproto.Setup(conn).DefaultScreen(conn)
	if screen == nil {
		return 0, 0, fmt.Errorf("no default screen")
	}

	return int(screen.WidthInPixels), int(screen.HeightInPixels), nil
}

// WindowSize picks the initial window size: fraction of the X11 screen when
// it can be probed, else the fallback.
func WindowSize(fraction float64, fallbackW, fallbackH int) (int, int) {
	w, h, err := ScreenSize()
	if err != nil {
		Warn("Could not probe display size, using %dx%d: %v", fallbackW, fallbackH, err)
		return fallbackW, fallbackH
	}
	Debug("Display size: %dx%d", w, h)
	return FitWindow(w, h, fraction, fallbackW, fallbackH)
}

// FitWindow scales a screen size by fraction, falling back when the result
// is degenerate.
func FitWindow(screenW, screenH int, fraction float64, fallbackW, fallbackH int) (int, int) {
	if fraction <= 0 || fraction > 1 {
		fraction = 1
	}
	w := int(float64(screenW) * fraction)
	h := int(float64(screenH) * fraction)
	if w <= 0 || h <= 0 {
		return fallbackW, fallbackH
	}
	return w, h
}
