package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mossfet/skylift/config"
)

func main() {
	scenePath := flag.String("scene", "", "scene file to load (YAML); empty runs the embedded default")
	configPath := flag.String("config", "", "config file (YAML); empty falls back to ./skylift.yaml, then defaults")
	cameraMode := flag.String("camera", "", "camera mode override: auto or manual")
	watch := flag.Bool("watch", false, "reload the scene when its file changes on disk")
	debug := flag.Bool("debug", false, "draw the tick/position overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skylift",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", "path", *configPath, "err", err)
	}
	switch *cameraMode {
	case "":
	case config.CameraAuto, config.CameraManual:
		cfg.Camera.Mode = *cameraMode
	default:
		logger.Warn("unknown camera mode, using config value", "mode", *cameraMode)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("skylift")

	game, err := NewGame(*scenePath, cfg, logger, *watch, *debug)
	if err != nil {
		logger.Fatal("load scene", "path", *scenePath, "err", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run", "err", err)
	}
}
