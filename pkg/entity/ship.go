// pkg/entity/ship.go
package entity

import (
	"github.com/opd-ai/go-spaceshooter/pkg/physics"
)

// ShipShape is the ship outline in local coordinates, nose along +X.
var ShipShape = []physics.Vector2D{
	{X: 0, Y: -5},
	{X: 10, Y: 0},
	{X: 0, Y: 5},
	{X: 3, Y: 0},
	{X: 0, Y: -5},
}

// shipLocalBounds encloses ShipShape
var shipLocalBounds = physics.BoundingBox{
	UpperLeft:   physics.Vector2D{X: 0, Y: -5},
	BottomRight: physics.Vector2D{X: 10, Y: 5},
}

// ShipStats contains the acceleration constants of a ship
type ShipStats struct {
	// RotationalAcceleration is added to or removed from the rotational
	// velocity by each rotate command.
	RotationalAcceleration physics.Angle
	// LinearAcceleration is the thrust added to the velocity by each
	// accelerate command, in local coordinates.
	LinearAcceleration physics.Vector2D
}

// DefaultShipStats returns the stock acceleration constants
func DefaultShipStats() ShipStats {
	return ShipStats{
		RotationalAcceleration: 0.1,
		LinearAcceleration:     physics.Vector2D{X: 0.1, Y: 0},
	}
}

// Ship is the player-controlled vessel
type Ship struct {
	physics.MovementState
	ID    ID
	Stats ShipStats
	Frame Frame
}

// NewShip creates a ship at rest at position, facing +X
func NewShip(id ID, position physics.Vector2D, stats ShipStats) *Ship {
	return &Ship{
		MovementState: physics.MovementState{Position: position},
		ID:            id,
		Stats:         stats,
	}
}

// GetID returns the ship's identifier
func (s *Ship) GetID() ID {
	return s.ID
}

// Accelerate adds one unit of thrust along the current facing, regardless
// of the direction of travel.
func (s *Ship) Accelerate() {
	s.Velocity = s.Velocity.Add(s.Stats.LinearAcceleration.Rotate(s.Rotation))
}

// RotateLeft increases the rotational velocity
func (s *Ship) RotateLeft() {
	s.RotationalVelocity = s.RotationalVelocity.Add(s.Stats.RotationalAcceleration)
}

// RotateRight decreases the rotational velocity
func (s *Ship) RotateRight() {
	s.RotationalVelocity = s.RotationalVelocity.Sub(s.Stats.RotationalAcceleration)
}

// Update advances the ship by deltaTime ticks
func (s *Ship) Update(deltaTime float64) {
	s.Integrate(deltaTime)
}

// LocalToWorld maps a point in ship space to world space
func (s *Ship) LocalToWorld(p physics.Vector2D) physics.Vector2D {
	return p.Rotate(s.Rotation).Add(s.Position)
}

// Outline returns ShipShape mapped through localToWorld
func (s *Ship) Outline(localToWorld Transform) []physics.Vector2D {
	points := make([]physics.Vector2D, len(ShipShape))
	for i, p := range ShipShape {
		points[i] = localToWorld(p)
	}
	return points
}

// Draw renders the outline through the supplied transform. It does not
// advance the simulation.
func (s *Ship) Draw(surface Surface, localToWorld Transform) {
	surface.DrawPolyline(s.Outline(localToWorld), ShipColor)
}

// Render draws the ship at its current pose
func (s *Ship) Render(surface Surface) {
	s.Draw(surface, s.LocalToWorld)
}

// LocalBoundingBox returns the fixed box around ShipShape
func (s *Ship) LocalBoundingBox() physics.BoundingBox {
	return shipLocalBounds
}

// BoundingBox returns the ship's box in the frame selected by s.Frame
func (s *Ship) BoundingBox() physics.BoundingBox {
	if s.Frame == FrameLocal {
		return s.LocalBoundingBox()
	}
	return shipLocalBounds.Transform(s.Rotation, s.Position)
}

// Intersects reports whether the ship's box overlaps other's
func (s *Ship) Intersects(other Collidable) bool {
	return Intersects(s, other)
}
