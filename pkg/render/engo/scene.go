//go:build engo

// pkg/render/engo/scene.go
package engo

import (
	"context"
	"errors"
	"image/color"
	"time"
	"unicode/utf8"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spaceshooter/pkg/config"
	"github.com/opd-ai/go-spaceshooter/pkg/engine"
	"github.com/opd-ai/go-spaceshooter/pkg/event"
	"github.com/opd-ai/go-spaceshooter/pkg/logging"
)

// GameScene hosts the simulation inside engo's update loop
type GameScene struct {
	sim    *engine.Simulation
	cfg    *config.GameConfig
	logger *logging.Logger

	surface *Surface
	ticker  *TickSystem
}

// NewGameScene creates a new game scene
func NewGameScene(sim *engine.Simulation, cfg *config.GameConfig, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &GameScene{sim: sim, cfg: cfg, logger: logger}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)
	common.SetBackground(color.Black)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	scene.surface = NewSurface(renderSystem, scene.cfg.Display.Width, scene.cfg.Display.Height)

	quit, _ := utf8.DecodeRuneInString(scene.cfg.Controls.Quit)
	world.AddSystem(NewInputSystem(scene.sim, engine.NewKeyBindings(scene.cfg.Controls), quit))

	scene.ticker = &TickSystem{sim: scene.sim, surface: scene.surface, logger: scene.logger}
	world.AddSystem(scene.ticker)
}

// TickSystem steps the simulation at its fixed tick interval, independent of
// the engo frame rate, and redraws after every step.
type TickSystem struct {
	sim     *engine.Simulation
	surface *Surface
	logger  *logging.Logger
	elapsed time.Duration
	stopped bool
}

// Remove satisfies the ecs.System interface
func (ts *TickSystem) Remove(basic ecs.BasicEntity) {}

// Update advances as many ticks as the elapsed frame time covers
func (ts *TickSystem) Update(dt float32) {
	if ts.stopped {
		return
	}
	ts.elapsed += time.Duration(float64(dt) * float64(time.Second))
	for ts.elapsed >= ts.sim.TickInterval {
		ts.elapsed -= ts.sim.TickInterval
		if ts.tick() {
			ts.stopped = true
			engo.Exit()
			return
		}
	}
}

// tick runs one step and reports whether the run is over
func (ts *TickSystem) tick() bool {
	ctx := context.Background()
	result, err := ts.sim.Tick(ts.surface)
	if err != nil {
		ts.logger.Warn(ctx, "frame dropped", "tick", result.Tick, "error", err.Error())
		ts.sim.EventBus.Publish(event.NewFrameDroppedEvent(ts.sim, result.Tick, err))
	}
	if result.CollisionStarted && ts.sim.Policy == engine.PolicyStop {
		ts.logger.Info(ctx, "game over", "tick", result.Tick, "error", engine.ErrGameOver.Error())
		return true
	}
	return ts.sim.MaxTicks > 0 && result.Tick >= ts.sim.MaxTicks
}

// Run opens a window and blocks until it is closed
func Run(sim *engine.Simulation, cfg *config.GameConfig, logger *logging.Logger) error {
	if sim.TickInterval <= 0 {
		return errors.New("tick interval must be positive")
	}
	engo.Run(engo.RunOptions{
		Title:  "Go Space Shooter",
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
		VSync:  true,
	}, NewGameScene(sim, cfg, logger))
	return nil
}
