package main

import (
	"flag"
	"math/rand"

	"irrigation3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	debugFlag := flag.Bool("debug", false, "Enable the debug overlay and verbose logging")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	raylibInfo := flag.Bool("raylib-info", false, "Show raylib INFO logs")
	targetFPS := flag.Int("fps", 60, "Target frames per second")
	seed := flag.Int64("seed", 0, "Seed for droplets and stars (0 = random each run)")
	flag.Parse()

	if level, err := utils.ParseLevel(*logLevel); err != nil {
		utils.Warn("%v, keeping %s", err, utils.CurrentLevel)
	} else {
		utils.CurrentLevel = level
	}

	utils.DebugMode = *debugFlag
	utils.ShowDebugUI = *debugFlag
	utils.ShowRaylibInfo = *raylibInfo
	if utils.DebugMode {
		utils.CurrentLevel = utils.LevelDebug
	}

	rl.SetTraceLogCallback(utils.RaylibLogCallback)

	utils.Info("--- Irrigation 3D Start ---")

	width, height := utils.WindowSize(0.8, 1280, 720)

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.InitWindow(int32(width), int32(height), "Irrigation 3D")
	defer rl.CloseWindow()

	var rng *rand.Rand
	if *seed != 0 {
		utils.Info("Using seed %d", *seed)
		rng = rand.New(rand.NewSource(*seed))
	}

	window := NewWindow(rng, *targetFPS)
	defer window.Close()

	utils.Info("Starting render loop...")
	window.Run()
}
