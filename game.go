package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/mossfet/skylift/common"
	"github.com/mossfet/skylift/config"
	"github.com/mossfet/skylift/obj"
	"github.com/mossfet/skylift/physics"
	"github.com/mossfet/skylift/scene"
	"github.com/mossfet/skylift/scenes"
	"github.com/mossfet/skylift/script"
	"github.com/mossfet/skylift/sim"
)

// Game is the ebiten shell around the fixed-tick simulation. Rendering runs
// at the display rate; the sim steps once every framesPerStep updates with
// the latched input snapshot.
type Game struct {
	cfg    config.Config
	logger *log.Logger
	debug  bool

	scenePath string
	scene     *scene.Scene
	sim       *sim.Sim
	hook      *script.Hook

	latch  *obj.Latch
	cam    *obj.Camera
	paused bool
	quit   bool
	pause  *ebitenui.UI

	watcher *scene.Watcher

	frames        int
	ticks         int
	framesPerStep int
	frameAcc      int
}

func NewGame(scenePath string, cfg config.Config, logger *log.Logger, watch, debug bool) (*Game, error) {
	g := &Game{
		cfg:       cfg,
		logger:    logger,
		debug:     debug,
		scenePath: scenePath,
		latch:     obj.NewLatch(),
	}

	g.framesPerStep = cfg.TickMillis * ebiten.TPS() / 1000
	if g.framesPerStep < 1 {
		g.framesPerStep = 1
	}

	sc, hook, err := loadScene(scenePath)
	if err != nil {
		return nil, err
	}
	g.installScene(sc, hook)

	g.cam = obj.NewCamera(common.BaseWidth, common.BaseHeight, cfg.Camera.Smooth, cfg.Camera.Mode == config.CameraAuto)
	g.cam.SetWorldBounds(float64(sc.Width), float64(sc.Height))
	p := sc.Player()
	g.cam.SnapTo(p.Pos(physics.AxisX)+p.Size(physics.AxisX)/2, p.Pos(physics.AxisY)+p.Size(physics.AxisY)/2)

	g.pause = NewPauseUI(g)

	if watch && scenePath != "" {
		w, err := scene.NewWatcher(filepath.Dir(scenePath))
		if err != nil {
			logger.Warn("scene watch unavailable", "err", err)
		} else {
			g.watcher = w
			logger.Info("watching for scene changes", "dir", filepath.Dir(scenePath))
		}
	}

	logger.Info("scene loaded", "scene", sc.Name, "objects", len(sc.Objects), "tick_ms", cfg.TickMillis)
	return g, nil
}

// loadScene reads a scene from disk, or the embedded default when path is
// empty, and compiles its hook script if it names one.
func loadScene(path string) (*scene.Scene, *script.Hook, error) {
	var (
		sc  *scene.Scene
		err error
	)
	if path == "" {
		data, rerr := scenes.Read(scenes.DefaultName)
		if rerr != nil {
			return nil, nil, rerr
		}
		sc, err = scene.Parse(data)
	} else {
		sc, err = scene.Load(path)
	}
	if err != nil {
		return nil, nil, err
	}

	if sc.Script == "" {
		return sc, nil, nil
	}

	var src []byte
	if path == "" {
		src, err = scenes.Read(sc.Script)
	} else {
		src, err = os.ReadFile(filepath.Join(filepath.Dir(path), sc.Script))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("scene script %s: %w", sc.Script, err)
	}
	hook, err := script.New(src)
	if err != nil {
		return nil, nil, fmt.Errorf("scene script %s: %w", sc.Script, err)
	}
	return sc, hook, nil
}

func (g *Game) installScene(sc *scene.Scene, hook *script.Hook) {
	g.scene = sc
	g.hook = hook
	g.sim = sim.New(sc, tuningFrom(g.cfg.Physics))
	g.ticks = 0
	g.frameAcc = 0
}

func tuningFrom(p config.PhysicsConfig) sim.Tuning {
	return sim.Tuning{
		Gravity:     p.Gravity,
		JumpVel:     p.JumpVel,
		JumpTicks:   p.JumpTicks,
		RunSpeed:    p.RunSpeed,
		ElevatorVel: p.ElevatorVel,
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.frames++
	g.latch.Poll()

	if g.latch.FullscreenEdge {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if g.latch.PauseEdge {
		g.paused = !g.paused
	}
	if g.latch.CameraEdge {
		g.cam.SetAuto(!g.cam.Auto())
		g.logger.Debug("camera mode", "auto", g.cam.Auto())
	}

	if g.paused {
		g.pause.Update()
		g.latch.Reset()
		return nil
	}

	g.pollWatcher()

	if !g.cam.Auto() {
		g.cam.Pan(g.latch.PanX, g.latch.PanY)
	}
	g.latch.PanX, g.latch.PanY = 0, 0

	g.frameAcc++
	if g.frameAcc >= g.framesPerStep {
		g.frameAcc = 0
		g.step()
	}

	p := g.scene.Player()
	g.cam.Update(p.Pos(physics.AxisX)+p.Size(physics.AxisX)/2, p.Pos(physics.AxisY)+p.Size(physics.AxisY)/2)
	return nil
}

// step advances the simulation one tick with the latched inputs and drains
// the resulting events into the log and the scene hook.
func (g *Game) step() {
	g.ticks++
	in := sim.Intents{
		Left:  g.latch.Left,
		Right: g.latch.Right,
		Jump:  g.latch.Jump,
		Fire:  g.latch.Fire,
	}
	g.latch.Reset()
	g.sim.Step(in)

	p := g.scene.Player()
	for _, evt := range g.sim.Events().Drain() {
		g.logger.Info(string(evt.Kind), "body", evt.Body, "other", evt.Other, "tick", g.ticks)
		if g.hook == nil {
			continue
		}
		say, err := g.hook.Invoke(string(evt.Kind), evt.Body, evt.Other, p.Pos(physics.AxisX), p.Pos(physics.AxisY))
		if err != nil {
			g.logger.Warn("scene hook", "err", err)
			continue
		}
		if say != "" {
			g.logger.Info(say, "scene", g.scene.Name)
		}
	}
}

// pollWatcher applies pending hot-reload notifications without blocking the
// frame. A failed reload keeps the running scene.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path := <-g.watcher.Events:
			g.logger.Info("scene changed on disk, reloading", "path", path)
			sc, hook, err := loadScene(g.scenePath)
			if err != nil {
				g.logger.Warn("reload failed, keeping current scene", "err", err)
				continue
			}
			g.installScene(sc, hook)
			g.cam.SetWorldBounds(float64(sc.Width), float64(sc.Height))
			p := sc.Player()
			g.cam.SnapTo(p.Pos(physics.AxisX)+p.Size(physics.AxisX)/2, p.Pos(physics.AxisY)+p.Size(physics.AxisY)/2)
		case err := <-g.watcher.Errors:
			g.logger.Warn("scene watcher", "err", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.cam.Render(screen, g.drawWorld)

	if g.debug {
		p := g.scene.Player()
		ground := "-"
		if b := g.sim.Ground(); b != nil {
			ground = b.ID()
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"tick: %d  fps: %0.2f\nplayer: (%0.0f, %0.0f)  ground: %s  facing: %d",
			g.ticks, ebiten.ActualFPS(),
			p.Pos(physics.AxisX), p.Pos(physics.AxisY),
			ground, g.sim.Facing(),
		))
	}

	if g.paused {
		g.pause.Draw(screen)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
