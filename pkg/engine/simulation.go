// pkg/engine/simulation.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opd-ai/go-spaceshooter/pkg/config"
	"github.com/opd-ai/go-spaceshooter/pkg/entity"
	"github.com/opd-ai/go-spaceshooter/pkg/event"
	"github.com/opd-ai/go-spaceshooter/pkg/logging"
	"github.com/opd-ai/go-spaceshooter/pkg/physics"
	"github.com/opd-ai/go-spaceshooter/pkg/render"
	"github.com/opd-ai/go-spaceshooter/pkg/telemetry"
)

// ErrGameOver is returned by Run when the collision policy stops the game
var ErrGameOver = errors.New("ship collided with asteroid")

// Stop reasons carried by SimulationStopped events
const (
	StopCancelled = "cancelled"
	StopMaxTicks  = "max_ticks"
	StopCollision = "collision"
)

// TickResult describes what one Step did
type TickResult struct {
	Tick             uint64
	Commands         int
	Intersects       bool
	CollisionStarted bool
	CollisionEnded   bool
	Ship             physics.MovementState
}

// Simulation owns the ship, the asteroid and the tick loop. Every method
// except Submit and its shorthands must be called from the tick goroutine.
type Simulation struct {
	Ship         *entity.Ship
	Asteroid     *entity.Asteroid
	EventBus     *event.Bus
	Autopilot    *Autopilot
	Recorder     *telemetry.Recorder
	Policy       CollisionPolicy
	TickInterval time.Duration
	MaxTicks     uint64

	logger      *logging.Logger
	commands    chan Command
	currentTick uint64
	intersects  bool
}

// NewSimulation builds a simulation from a validated config
func NewSimulation(cfg *config.GameConfig, logger *logging.Logger) (*Simulation, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	frame, err := entity.ParseFrame(cfg.Simulation.CollisionFrame)
	if err != nil {
		return nil, logging.WrapError(err, "creating simulation")
	}
	policy, err := ParseCollisionPolicy(cfg.Simulation.CollisionPolicy)
	if err != nil {
		return nil, logging.WrapError(err, "creating simulation")
	}
	buffer := cfg.Simulation.CommandBuffer
	if buffer <= 0 {
		buffer = config.DefaultConfig().Simulation.CommandBuffer
	}

	ship := entity.NewShip(entity.GenerateID(),
		physics.Vector2D{X: cfg.Ship.X, Y: cfg.Ship.Y},
		entity.ShipStats{
			RotationalAcceleration: physics.Angle(cfg.Ship.RotationalAcceleration),
			LinearAcceleration:     physics.Vector2D{X: cfg.Ship.LinearAcceleration},
		})
	ship.Frame = frame

	asteroid := entity.NewAsteroid(entity.GenerateID(),
		physics.Vector2D{X: cfg.Asteroid.X, Y: cfg.Asteroid.Y},
		cfg.Asteroid.Radius)

	return &Simulation{
		Ship:         ship,
		Asteroid:     asteroid,
		EventBus:     event.NewEventBus(),
		Policy:       policy,
		TickInterval: cfg.TickInterval(),
		MaxTicks:     uint64(cfg.Simulation.MaxTicks),
		logger:       logger,
		commands:     make(chan Command, buffer),
	}, nil
}

// Submit queues cmd for the next tick. It never blocks: when the queue is
// full the command is dropped and Submit returns false.
func (s *Simulation) Submit(cmd Command) bool {
	select {
	case s.commands <- cmd:
		return true
	default:
		s.logger.Debug(context.Background(), "command dropped", "command", cmd.String())
		return false
	}
}

// Accelerate queues an Accelerate command
func (s *Simulation) Accelerate() bool { return s.Submit(Accelerate) }

// RotateLeft queues a RotateLeft command
func (s *Simulation) RotateLeft() bool { return s.Submit(RotateLeft) }

// RotateRight queues a RotateRight command
func (s *Simulation) RotateRight() bool { return s.Submit(RotateRight) }

// CurrentTick returns the number of completed steps
func (s *Simulation) CurrentTick() uint64 {
	return s.currentTick
}

// Intersects returns the collision state computed by the last Step
func (s *Simulation) Intersects() bool {
	return s.intersects
}

// Step advances the simulation by one tick: queued commands, then autopilot
// commands, then integration, then the collision test.
func (s *Simulation) Step() TickResult {
	s.currentTick++
	applied := s.drainCommands()

	if s.Autopilot != nil {
		for _, cmd := range s.Autopilot.Commands(s.Ship) {
			s.apply(cmd)
			applied++
		}
	}

	s.Ship.Update(1)

	hit := s.Ship.Intersects(s.Asteroid)
	result := TickResult{
		Tick:             s.currentTick,
		Commands:         applied,
		Intersects:       hit,
		CollisionStarted: hit && !s.intersects,
		CollisionEnded:   !hit && s.intersects,
		Ship:             s.Ship.MovementState,
	}
	s.intersects = hit

	s.publishCollision(result)
	s.record(result)
	return result
}

func (s *Simulation) drainCommands() int {
	applied := 0
	for {
		select {
		case cmd := <-s.commands:
			s.apply(cmd)
			applied++
		default:
			return applied
		}
	}
}

func (s *Simulation) apply(cmd Command) {
	cmd.Apply(s.Ship)
	s.EventBus.Publish(event.NewCommandEvent(s, s.currentTick, uint64(s.Ship.GetID()), cmd.String()))
}

func (s *Simulation) publishCollision(result TickResult) {
	ctx := context.Background()
	shipID, asteroidID := uint64(s.Ship.GetID()), uint64(s.Asteroid.GetID())

	switch {
	case result.CollisionStarted:
		if s.Policy != PolicyIgnore {
			s.logger.Warn(ctx, "ship intersects asteroid",
				"tick", result.Tick,
				"x", result.Ship.Position.X,
				"y", result.Ship.Position.Y,
			)
		}
		s.EventBus.Publish(event.NewCollisionEvent(event.CollisionStarted, s, result.Tick, shipID, asteroidID))
	case result.CollisionEnded:
		if s.Policy != PolicyIgnore {
			s.logger.Info(ctx, "ship clear of asteroid", "tick", result.Tick)
		}
		s.EventBus.Publish(event.NewCollisionEvent(event.CollisionEnded, s, result.Tick, shipID, asteroidID))
	}
}

func (s *Simulation) record(result TickResult) {
	err := s.Recorder.Record(telemetry.TickRow{
		Tick:               result.Tick,
		X:                  result.Ship.Position.X,
		Y:                  result.Ship.Position.Y,
		VelocityX:          result.Ship.Velocity.X,
		VelocityY:          result.Ship.Velocity.Y,
		Rotation:           result.Ship.Rotation.Radians(),
		RotationalVelocity: result.Ship.RotationalVelocity.Radians(),
		Commands:           result.Commands,
		Intersects:         result.Intersects,
	})
	if err != nil {
		s.logger.Error(context.Background(), "trace write failed", err, "tick", result.Tick)
		s.Recorder = nil
	}
}

// Render draws the current state. It never changes simulation state.
func (s *Simulation) Render(surface entity.Surface) error {
	if err := render.CheckSurface(surface); err != nil {
		return err
	}
	surface.Clear()
	s.Ship.Render(surface)
	s.Asteroid.Render(surface)
	if err := surface.Present(); err != nil {
		return fmt.Errorf("presenting frame: %w", err)
	}
	return nil
}

// Tick runs one Step followed by one Render
func (s *Simulation) Tick(surface entity.Surface) (TickResult, error) {
	result := s.Step()
	return result, s.Render(surface)
}

// Run ticks at TickInterval until ctx is cancelled, MaxTicks steps have run
// or the collision policy stops the game, in which case it returns
// ErrGameOver. Frames that fail to render are logged and dropped.
func (s *Simulation) Run(ctx context.Context, surface entity.Surface) error {
	if err := render.CheckSurface(surface); err != nil {
		return logging.WrapError(err, "starting simulation")
	}
	interval := s.TickInterval
	if interval <= 0 {
		interval = config.DefaultConfig().TickInterval()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info(ctx, "simulation started",
		"tick_interval_ms", interval.Milliseconds(),
		"policy", s.Policy.String(),
		"frame", s.Ship.Frame.String(),
	)
	s.EventBus.Publish(event.NewLifecycleEvent(event.SimulationStarted, s, s.currentTick, ""))

	for {
		select {
		case <-ctx.Done():
			s.stop(ctx, StopCancelled)
			return nil
		case <-ticker.C:
		}

		result, err := s.Tick(surface)
		if err != nil {
			s.logger.Warn(ctx, "frame dropped", "tick", result.Tick, "error", err.Error())
			s.EventBus.Publish(event.NewFrameDroppedEvent(s, result.Tick, err))
		}

		if result.CollisionStarted && s.Policy == PolicyStop {
			s.stop(ctx, StopCollision)
			return ErrGameOver
		}
		if s.MaxTicks > 0 && s.currentTick >= s.MaxTicks {
			s.stop(ctx, StopMaxTicks)
			return nil
		}
	}
}

func (s *Simulation) stop(ctx context.Context, reason string) {
	s.logger.Info(ctx, "simulation stopped", "reason", reason, "tick", s.currentTick)
	s.EventBus.Publish(event.NewLifecycleEvent(event.SimulationStopped, s, s.currentTick, reason))
}
