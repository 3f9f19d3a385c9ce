// pkg/engine/autopilot.go
package engine

import (
	"math"

	"github.com/opd-ai/go-spaceshooter/pkg/entity"
	"github.com/opd-ai/go-spaceshooter/pkg/physics"
)

// DefaultCruiseSpeed is the autopilot's target speed in pixels per tick
const DefaultCruiseSpeed = 3.0

const epsilon = 1e-9

// Autopilot steers a ship toward a fixed point using the same commands a
// player has. It turns with whole rotate commands until the nose is within
// half a rotation step of the target bearing, stops the turn, then thrusts
// until the ship reaches CruiseSpeed.
type Autopilot struct {
	Target      physics.Vector2D
	CruiseSpeed float64
}

// NewAutopilot creates an autopilot flying toward target
func NewAutopilot(target physics.Vector2D, cruiseSpeed float64) *Autopilot {
	if cruiseSpeed <= 0 {
		cruiseSpeed = DefaultCruiseSpeed
	}
	return &Autopilot{Target: target, CruiseSpeed: cruiseSpeed}
}

// Commands returns the commands to apply to ship this tick
func (a *Autopilot) Commands(ship *entity.Ship) []Command {
	step := ship.Stats.RotationalAcceleration.Radians()
	if step <= 0 {
		return a.thrust(ship)
	}

	bearing := a.Target.Sub(ship.Position).Heading()
	errAngle := bearing.Sub(ship.Rotation).Wrap().Radians()
	spin := ship.RotationalVelocity.Radians()

	if math.Abs(errAngle) <= step/2 {
		if math.Abs(spin) > epsilon {
			return []Command{brake(spin)}
		}
		return a.thrust(ship)
	}

	switch {
	case math.Abs(spin) <= epsilon:
		if errAngle > 0 {
			return []Command{RotateLeft}
		}
		return []Command{RotateRight}
	case (spin > 0) != (errAngle > 0), math.Abs(spin) > step+epsilon:
		return []Command{brake(spin)}
	default:
		// Turning the right way at one step per tick.
		return nil
	}
}

func (a *Autopilot) thrust(ship *entity.Ship) []Command {
	if ship.Velocity.Length() < a.CruiseSpeed {
		return []Command{Accelerate}
	}
	return nil
}

// brake returns the rotate command that reduces spin
func brake(spin float64) Command {
	if spin > 0 {
		return RotateRight
	}
	return RotateLeft
}
