package engine

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/opd-ai/go-spaceshooter/pkg/config"
	"github.com/opd-ai/go-spaceshooter/pkg/event"
	"github.com/opd-ai/go-spaceshooter/pkg/physics"
	"github.com/opd-ai/go-spaceshooter/pkg/render"
	"github.com/opd-ai/go-spaceshooter/pkg/telemetry"
)

func newTestSimulation(t *testing.T, modify func(*config.GameConfig)) *Simulation {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Simulation.TickIntervalMS = 1
	if modify != nil {
		modify(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	sim, err := NewSimulation(cfg, nil)
	if err != nil {
		t.Fatalf("NewSimulation() = %v", err)
	}
	return sim
}

func TestNewSimulation_Defaults(t *testing.T) {
	sim := newTestSimulation(t, nil)

	if sim.Ship.Position != (physics.Vector2D{X: 50, Y: 50}) {
		t.Errorf("ship position = %+v, want (50, 50)", sim.Ship.Position)
	}
	if sim.Asteroid.BoundingBox().Max() != (physics.Vector2D{X: 300, Y: 300}) {
		t.Errorf("asteroid box = %+v", sim.Asteroid.BoundingBox())
	}
	if sim.Policy != PolicyLog {
		t.Errorf("Policy = %v, want log", sim.Policy)
	}
}

func TestNewSimulation_BadConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.GameConfig)
	}{
		{"frame", func(c *config.GameConfig) { c.Simulation.CollisionFrame = "screen" }},
		{"policy", func(c *config.GameConfig) { c.Simulation.CollisionPolicy = "explode" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.modify(cfg)
			if _, err := NewSimulation(cfg, nil); err == nil {
				t.Error("NewSimulation() should fail")
			}
		})
	}
}

func TestSimulation_IdleNeverIntersects(t *testing.T) {
	sim := newTestSimulation(t, nil)
	surface := newMockSurface()

	for i := 0; i < 1000; i++ {
		result, err := sim.Tick(surface)
		if err != nil {
			t.Fatalf("Tick() = %v", err)
		}
		if result.Intersects {
			t.Fatalf("idle ship intersected on tick %d", result.Tick)
		}
	}
	if sim.Ship.Position != (physics.Vector2D{X: 50, Y: 50}) {
		t.Errorf("idle ship moved to %+v", sim.Ship.Position)
	}
	if surface.presents != 1000 || surface.polylines != 1000 || surface.ellipses != 1000 {
		t.Errorf("draw counts = %d/%d/%d, want 1000 each", surface.presents, surface.polylines, surface.ellipses)
	}
}

func TestSimulation_FlyIntoAsteroid(t *testing.T) {
	sim := newTestSimulation(t, nil)
	sim.Autopilot = NewAutopilot(sim.Asteroid.Center(), DefaultCruiseSpeed)

	var started []uint64
	sim.EventBus.Subscribe(event.CollisionStarted, func(e event.Event) {
		started = append(started, e.GetTick())
	})

	var hitTick uint64
	for i := 0; i < 400 && hitTick == 0; i++ {
		if result := sim.Step(); result.CollisionStarted {
			hitTick = result.Tick
		}
	}

	if hitTick == 0 {
		t.Fatal("ship never reached the asteroid")
	}
	if hitTick < 20 {
		t.Errorf("collision on tick %d is too early", hitTick)
	}
	if !sim.Intersects() {
		t.Error("Intersects() = false after collision")
	}
	if len(started) != 1 || started[0] != hitTick {
		t.Errorf("CollisionStarted events = %v, want [%d]", started, hitTick)
	}
}

func TestSimulation_LocalFrameNeverIntersects(t *testing.T) {
	sim := newTestSimulation(t, func(c *config.GameConfig) {
		c.Simulation.CollisionFrame = "local"
	})
	sim.Autopilot = NewAutopilot(sim.Asteroid.Center(), DefaultCruiseSpeed)

	crossed := false
	for i := 0; i < 400; i++ {
		if sim.Step().Intersects {
			t.Fatalf("local frame reported a collision on tick %d", sim.CurrentTick())
		}
		if sim.Asteroid.BoundingBox().Contains(sim.Ship.Position) {
			crossed = true
		}
	}
	if !crossed {
		t.Error("ship never flew through the asteroid")
	}
}

func TestSimulation_CollisionEnded(t *testing.T) {
	sim := newTestSimulation(t, nil)

	var types []event.Type
	record := func(e event.Event) { types = append(types, e.GetType()) }
	sim.EventBus.Subscribe(event.CollisionStarted, record)
	sim.EventBus.Subscribe(event.CollisionEnded, record)

	sim.Ship.Position = physics.Vector2D{X: 270, Y: 270}
	if r := sim.Step(); !r.CollisionStarted || !r.Intersects {
		t.Fatalf("first step = %+v, want collision start", r)
	}
	if r := sim.Step(); r.CollisionStarted || !r.Intersects {
		t.Fatalf("second step = %+v, want ongoing collision", r)
	}
	sim.Ship.Position = physics.Vector2D{X: 500, Y: 500}
	if r := sim.Step(); !r.CollisionEnded || r.Intersects {
		t.Fatalf("third step = %+v, want collision end", r)
	}

	want := []event.Type{event.CollisionStarted, event.CollisionEnded}
	if len(types) != len(want) || types[0] != want[0] || types[1] != want[1] {
		t.Errorf("events = %v, want %v", types, want)
	}
}

func TestSimulation_CommandsAppliedBeforeUpdate(t *testing.T) {
	sim := newTestSimulation(t, nil)

	var applied []string
	sim.EventBus.Subscribe(event.CommandApplied, func(e event.Event) {
		applied = append(applied, e.(*event.CommandEvent).Command)
	})

	if !sim.Accelerate() {
		t.Fatal("Accelerate() was dropped")
	}
	result := sim.Step()

	if result.Commands != 1 {
		t.Errorf("Commands = %d, want 1", result.Commands)
	}
	if result.Ship.Velocity.X != 0.1 {
		t.Errorf("Velocity.X = %v, want 0.1", result.Ship.Velocity.X)
	}
	if got := result.Ship.Position.X - 50; got < 0.1-1e-9 || got > 0.1+1e-9 {
		t.Errorf("position delta = %v, want 0.1", got)
	}
	if len(applied) != 1 || applied[0] != "accelerate" {
		t.Errorf("CommandApplied events = %v", applied)
	}

	sim.RotateLeft()
	sim.RotateRight()
	if r := sim.Step(); r.Ship.RotationalVelocity != 0 || r.Commands != 2 {
		t.Errorf("rotate left+right = %+v, want no spin", r)
	}
}

func TestSimulation_SubmitFullBuffer(t *testing.T) {
	sim := newTestSimulation(t, func(c *config.GameConfig) {
		c.Simulation.CommandBuffer = 2
	})

	if !sim.Submit(Accelerate) || !sim.Submit(Accelerate) {
		t.Fatal("first two commands should be queued")
	}
	if sim.Submit(Accelerate) {
		t.Error("third command should be dropped")
	}
	if r := sim.Step(); r.Commands != 2 {
		t.Errorf("Commands = %d, want 2", r.Commands)
	}
}

func TestSimulation_SubmitConcurrent(t *testing.T) {
	sim := newTestSimulation(t, func(c *config.GameConfig) {
		c.Simulation.CommandBuffer = 100
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				sim.Accelerate()
			}
		}()
	}
	wg.Wait()

	if r := sim.Step(); r.Commands != 100 {
		t.Errorf("Commands = %d, want 100", r.Commands)
	}
}

func TestSimulation_RenderErrors(t *testing.T) {
	sim := newTestSimulation(t, nil)
	sim.Ship.Velocity = physics.Vector2D{X: 1}

	if err := sim.Render(nil); !errors.Is(err, render.ErrNoSurface) {
		t.Errorf("Render(nil) = %v, want ErrNoSurface", err)
	}
	zero := newMockSurface()
	zero.width = 0
	if err := sim.Render(zero); !errors.Is(err, render.ErrSurfaceSize) {
		t.Errorf("Render(zero) = %v, want ErrSurfaceSize", err)
	}

	failing := newMockSurface()
	failing.failPresent = true
	result, err := sim.Tick(failing)
	if !errors.Is(err, errPresent) {
		t.Errorf("Tick() = %v, want present error", err)
	}
	if result.Ship.Position.X != 51 {
		t.Errorf("state did not advance: %+v", result.Ship.Position)
	}

	before := sim.Ship.MovementState
	_ = sim.Render(failing)
	if sim.Ship.MovementState != before {
		t.Error("Render changed simulation state")
	}
}

func TestSimulation_Trace(t *testing.T) {
	var buf bytes.Buffer
	sim := newTestSimulation(t, nil)
	sim.Recorder = telemetry.NewRecorder(&buf)

	sim.Accelerate()
	for i := 0; i < 5; i++ {
		sim.Step()
	}

	rows, err := telemetry.ReadTrace(&buf)
	if err != nil {
		t.Fatalf("ReadTrace() = %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	if rows[0].Tick != 1 || rows[0].Commands != 1 || rows[4].Tick != 5 {
		t.Errorf("rows = %+v", rows)
	}
}

func TestSimulation_RunMaxTicks(t *testing.T) {
	sim := newTestSimulation(t, func(c *config.GameConfig) {
		c.Simulation.MaxTicks = 5
	})

	var reasons []string
	sim.EventBus.Subscribe(event.SimulationStopped, func(e event.Event) {
		reasons = append(reasons, e.(*event.LifecycleEvent).Reason)
	})

	surface := newMockSurface()
	if err := sim.Run(context.Background(), surface); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if sim.CurrentTick() != 5 || surface.presents != 5 {
		t.Errorf("ran %d ticks, presented %d frames, want 5 and 5", sim.CurrentTick(), surface.presents)
	}
	if len(reasons) != 1 || reasons[0] != StopMaxTicks {
		t.Errorf("stop reasons = %v", reasons)
	}
}

func TestSimulation_RunStopPolicy(t *testing.T) {
	sim := newTestSimulation(t, func(c *config.GameConfig) {
		c.Simulation.CollisionPolicy = config.PolicyStop
	})
	sim.Autopilot = NewAutopilot(sim.Asteroid.Center(), 5)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := sim.Run(ctx, newMockSurface())
	if !errors.Is(err, ErrGameOver) {
		t.Fatalf("Run() = %v, want ErrGameOver", err)
	}
	if !sim.Intersects() {
		t.Error("Intersects() = false after game over")
	}
}

func TestSimulation_RunCancel(t *testing.T) {
	sim := newTestSimulation(t, nil)
	ctx, cancel := context.WithCancel(context.Background())

	sim.EventBus.Subscribe(event.CommandApplied, func(event.Event) { cancel() })
	sim.RotateLeft()

	if err := sim.Run(ctx, newMockSurface()); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if sim.CurrentTick() == 0 {
		t.Error("Run() returned before the first tick")
	}
}

func TestSimulation_RunDropsFrames(t *testing.T) {
	sim := newTestSimulation(t, func(c *config.GameConfig) {
		c.Simulation.MaxTicks = 3
	})
	dropped := 0
	sim.EventBus.Subscribe(event.FrameDropped, func(event.Event) { dropped++ })

	surface := newMockSurface()
	surface.failPresent = true
	if err := sim.Run(context.Background(), surface); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if dropped != 3 {
		t.Errorf("dropped %d frames, want 3", dropped)
	}
}

func TestSimulation_RunWithoutSurface(t *testing.T) {
	sim := newTestSimulation(t, nil)
	if err := sim.Run(context.Background(), nil); !errors.Is(err, render.ErrNoSurface) {
		t.Errorf("Run(nil) = %v, want ErrNoSurface", err)
	}
	if sim.CurrentTick() != 0 {
		t.Error("Run(nil) should not tick")
	}
}
