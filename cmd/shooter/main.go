// cmd/shooter/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-spaceshooter/pkg/audio"
	"github.com/opd-ai/go-spaceshooter/pkg/config"
	"github.com/opd-ai/go-spaceshooter/pkg/engine"
	"github.com/opd-ai/go-spaceshooter/pkg/frontend/terminal"
	"github.com/opd-ai/go-spaceshooter/pkg/logging"
	"github.com/opd-ai/go-spaceshooter/pkg/render"
	"github.com/opd-ai/go-spaceshooter/pkg/telemetry"
)

// headlessTickLimit bounds a headless run that has no tick limit of its own
const headlessTickLimit = 10000

type options struct {
	configPath    string
	createDefault bool
	frontend      string
	ticks         int
	autopilot     bool
	tracePath     string
	snapshotPath  string
	logPath       string
}

func main() {
	opts := options{}
	flag.StringVar(&opts.configPath, "config", "config.json", "Path to configuration file (.json or .yaml)")
	flag.BoolVar(&opts.createDefault, "default", false, "Create default configuration file")
	flag.StringVar(&opts.frontend, "frontend", "", "Frontend: terminal, headless or engo (overrides config)")
	flag.IntVar(&opts.ticks, "ticks", -1, "Stop after this many ticks, 0 runs forever (overrides config)")
	flag.BoolVar(&opts.autopilot, "autopilot", false, "Fly the ship towards the asteroid")
	flag.StringVar(&opts.tracePath, "trace", "", "Write a per-tick CSV trace to this file (overrides config)")
	flag.StringVar(&opts.snapshotPath, "snapshot", "", "Headless only: write the last frame as PNG")
	flag.StringVar(&opts.logPath, "log", "", "Write logs to this file instead of stderr")
	flag.Parse()

	if err := run(opts); err != nil && !errors.Is(err, engine.ErrGameOver) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.createDefault {
		return config.SaveConfig(config.DefaultConfig(), opts.configPath)
	}

	gameConfig, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(opts.logPath, gameConfig.Display.Frontend)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithRunID(ctx, "")

	sim, err := engine.NewSimulation(gameConfig, logger)
	if err != nil {
		return err
	}
	if opts.autopilot {
		sim.Autopilot = engine.NewAutopilot(sim.Asteroid.Center(), engine.DefaultCruiseSpeed)
	}

	recorder, err := telemetry.CreateRecorder(gameConfig.Trace.Path)
	if err != nil {
		return logging.WrapError(err, "opening trace %s", gameConfig.Trace.Path)
	}
	sim.Recorder = recorder
	defer func() {
		if err := recorder.Close(); err != nil {
			logger.Error(ctx, "Failed to close trace", err)
		}
	}()

	alerter := newAlerter(ctx, sim, gameConfig.Audio, logger)
	defer alerter.Close()

	logger.Info(ctx, "Starting simulation",
		"frontend", gameConfig.Display.Frontend,
		"autopilot", opts.autopilot,
		"max_ticks", sim.MaxTicks,
	)

	switch gameConfig.Display.Frontend {
	case config.FrontendHeadless:
		err = runHeadless(ctx, sim, gameConfig, opts.snapshotPath, logger)
	case config.FrontendEngo:
		err = runEngo(sim, gameConfig, logger)
	default:
		err = runTerminal(ctx, sim, gameConfig, logger)
	}

	logger.Info(ctx, "Simulation finished",
		"ticks", sim.CurrentTick(),
		"intersects", sim.Intersects(),
		"alarms", alerter.Played(),
	)
	return err
}

func loadConfig(opts options) (*config.GameConfig, error) {
	gameConfig := config.DefaultConfig()
	if _, err := os.Stat(opts.configPath); err == nil {
		gameConfig, err = config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnv(gameConfig); err != nil {
		return nil, err
	}

	if opts.frontend != "" {
		gameConfig.Display.Frontend = opts.frontend
	}
	if opts.ticks >= 0 {
		gameConfig.Simulation.MaxTicks = opts.ticks
	}
	if opts.tracePath != "" {
		gameConfig.Trace.Path = opts.tracePath
	}

	if err := gameConfig.Validate(); err != nil {
		return nil, err
	}
	return gameConfig, nil
}

// newLogger keeps the terminal frontend's screen clean by discarding logs
// unless a log file was given.
func newLogger(path, frontend string) (*logging.Logger, func(), error) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, logging.WrapError(err, "opening log file %s", path)
		}
		return logging.NewLoggerWithWriter(f), func() { f.Close() }, nil
	}
	if frontend == config.FrontendTerminal {
		return logging.NewLoggerWithWriter(io.Discard), func() {}, nil
	}
	return logging.NewLogger(), func() {}, nil
}

func newAlerter(ctx context.Context, sim *engine.Simulation, cfg config.AudioConfig, logger *logging.Logger) *audio.Alerter {
	alarm := audio.NewAlarm(cfg)
	var player audio.Player = audio.SilentPlayer{}
	if cfg.Enabled {
		speaker, err := audio.NewSpeakerPlayer(alarm.SampleRate)
		if err != nil {
			logger.Warn(ctx, "Audio disabled", "error", err.Error())
		} else {
			player = speaker
		}
	}
	return audio.NewAlerter(sim.EventBus, alarm, player, logger)
}

func runTerminal(ctx context.Context, sim *engine.Simulation, cfg *config.GameConfig, logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "creating terminal screen")
	}
	if err := screen.Init(); err != nil {
		return logging.WrapError(err, "initialising terminal screen")
	}
	defer screen.Fini()

	return terminal.New(screen, sim, cfg, logger).Run(ctx)
}

// runHeadless steps as fast as possible without a wall clock. Without a
// tick limit it stops at the first collision or after headlessTickLimit.
func runHeadless(ctx context.Context, sim *engine.Simulation, cfg *config.GameConfig, snapshotPath string, logger *logging.Logger) error {
	surface := render.NewRasterSurface(cfg.Display.Width, cfg.Display.Height)
	stopOnHit := sim.MaxTicks == 0 || sim.Policy == engine.PolicyStop
	limit := sim.MaxTicks
	if limit == 0 {
		limit = headlessTickLimit
	}

	var runErr error
	for ctx.Err() == nil {
		result, err := sim.Tick(surface)
		if err != nil {
			logger.Warn(ctx, "Frame dropped", "tick", result.Tick, "error", err.Error())
		}
		if result.CollisionStarted && stopOnHit {
			logger.Info(ctx, "Ship hit asteroid", "tick", result.Tick)
			if sim.Policy == engine.PolicyStop {
				runErr = engine.ErrGameOver
			}
			break
		}
		if result.Tick >= limit {
			break
		}
	}

	if snapshotPath == "" {
		return runErr
	}
	f, err := os.Create(snapshotPath)
	if err != nil {
		return logging.WrapError(err, "creating snapshot %s", snapshotPath)
	}
	defer f.Close()
	if err := surface.WritePNG(f); err != nil {
		return logging.WrapError(err, "writing snapshot %s", snapshotPath)
	}
	logger.Info(ctx, "Snapshot written", "path", snapshotPath)
	return runErr
}
