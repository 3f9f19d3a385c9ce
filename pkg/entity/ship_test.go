package entity

import (
	"math"
	"testing"

	"github.com/opd-ai/go-spaceshooter/pkg/physics"
)

const tolerance = 1e-9

func TestShip_IdleIsFixedPoint(t *testing.T) {
	ship := NewShip(1, physics.Vector2D{X: 50, Y: 50}, DefaultShipStats())
	before := ship.MovementState

	for i := 0; i < 100; i++ {
		ship.Update(1)
	}

	if ship.MovementState != before {
		t.Errorf("idle ship moved: got %+v, want %+v", ship.MovementState, before)
	}
}

func TestShip_AccelerateThenUpdate(t *testing.T) {
	ship := NewShip(1, physics.Vector2D{X: 50, Y: 50}, DefaultShipStats())

	ship.Accelerate()
	ship.Update(1)

	if math.Abs(ship.Velocity.X-0.1) > tolerance {
		t.Errorf("Velocity.X = %v, want 0.1", ship.Velocity.X)
	}
	if dx := ship.Position.X - 50; math.Abs(dx-0.1) > tolerance {
		t.Errorf("position delta = %v, want 0.1", dx)
	}
	if ship.Position.Y != 50 {
		t.Errorf("Position.Y = %v, want 50", ship.Position.Y)
	}
}

func TestShip_AccelerateFollowsFacing(t *testing.T) {
	tests := []struct {
		name     string
		rotation physics.Angle
		want     physics.Vector2D
	}{
		{"east", 0, physics.Vector2D{X: 0.1}},
		{"south", math.Pi / 2, physics.Vector2D{Y: 0.1}},
		{"west", math.Pi, physics.Vector2D{X: -0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship := NewShip(1, physics.Vector2D{}, DefaultShipStats())
			ship.Rotation = tt.rotation
			ship.Velocity = physics.Vector2D{X: 1}

			ship.Accelerate()

			want := physics.Vector2D{X: 1}.Add(tt.want)
			if !ship.Velocity.ApproxEqual(want, tolerance) {
				t.Errorf("Velocity = %+v, want %+v", ship.Velocity, want)
			}
		})
	}
}

func TestShip_RotateCancels(t *testing.T) {
	ship := NewShip(1, physics.Vector2D{}, DefaultShipStats())

	ship.RotateLeft()
	if ship.RotationalVelocity != 0.1 {
		t.Fatalf("RotationalVelocity after RotateLeft = %v, want 0.1", ship.RotationalVelocity)
	}
	ship.RotateRight()
	if ship.RotationalVelocity != 0 {
		t.Errorf("RotationalVelocity after RotateLeft+RotateRight = %v, want 0", ship.RotationalVelocity)
	}

	ship.RotateRight()
	ship.Update(1)
	if math.Abs(ship.Rotation.Radians()+0.1) > tolerance {
		t.Errorf("Rotation = %v, want -0.1 rad", ship.Rotation.Radians())
	}
}

func TestShip_DrawDoesNotUpdate(t *testing.T) {
	ship := NewShip(1, physics.Vector2D{X: 50, Y: 50}, DefaultShipStats())
	ship.Velocity = physics.Vector2D{X: 1, Y: 2}
	ship.RotationalVelocity = 0.3
	before := ship.MovementState

	surface := newRecordingSurface()
	ship.Render(surface)
	ship.Draw(surface, func(p physics.Vector2D) physics.Vector2D { return p })

	if ship.MovementState != before {
		t.Errorf("Draw changed state: got %+v, want %+v", ship.MovementState, before)
	}
	if len(surface.polylines) != 2 {
		t.Fatalf("got %d polylines, want 2", len(surface.polylines))
	}
}

func TestShip_Render(t *testing.T) {
	ship := NewShip(1, physics.Vector2D{X: 50, Y: 50}, DefaultShipStats())
	surface := newRecordingSurface()

	ship.Render(surface)

	want := []physics.Vector2D{
		{X: 50, Y: 45},
		{X: 60, Y: 50},
		{X: 50, Y: 55},
		{X: 53, Y: 50},
		{X: 50, Y: 45},
	}
	got := surface.polylines[0]
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].ApproxEqual(want[i], tolerance) {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if surface.colors[0] != ShipColor {
		t.Errorf("color = %v, want ShipColor", surface.colors[0])
	}
}

func TestShip_BoundingBox(t *testing.T) {
	ship := NewShip(1, physics.Vector2D{X: 100, Y: 100}, DefaultShipStats())

	t.Run("local", func(t *testing.T) {
		ship.Frame = FrameLocal
		want := physics.BoundingBox{
			UpperLeft:   physics.Vector2D{X: 0, Y: -5},
			BottomRight: physics.Vector2D{X: 10, Y: 5},
		}
		if got := ship.BoundingBox(); got != want {
			t.Errorf("BoundingBox() = %+v, want %+v", got, want)
		}
	})

	t.Run("world unrotated", func(t *testing.T) {
		ship.Frame = FrameWorld
		ship.Rotation = 0
		got := ship.BoundingBox()
		if !got.Min().ApproxEqual(physics.Vector2D{X: 100, Y: 95}, tolerance) ||
			!got.Max().ApproxEqual(physics.Vector2D{X: 110, Y: 105}, tolerance) {
			t.Errorf("BoundingBox() = %+v", got)
		}
	})

	t.Run("world rotated encloses outline", func(t *testing.T) {
		ship.Frame = FrameWorld
		ship.Rotation = 0.7
		box := ship.BoundingBox()
		for _, p := range ship.Outline(ship.LocalToWorld) {
			grown := physics.BoundingBox{
				UpperLeft:   box.Min().Sub(physics.Vector2D{X: tolerance, Y: tolerance}),
				BottomRight: box.Max().Add(physics.Vector2D{X: tolerance, Y: tolerance}),
			}
			if !grown.Contains(p) {
				t.Errorf("outline point %+v outside %+v", p, box)
			}
		}
	})
}
