// pkg/physics/angle.go
package physics

import (
	"fmt"
	"math"
)

// Angle is a rotation in radians. It is never normalized: repeated
// additions may carry it past ±2π and that is fine for every consumer
// that only feeds it to sin/cos.
type Angle float64

// Add returns the sum of two angles
func (a Angle) Add(other Angle) Angle {
	return a + other
}

// Sub returns the difference between two angles
func (a Angle) Sub(other Angle) Angle {
	return a.Add(other.Neg())
}

// Neg returns the opposite rotation
func (a Angle) Neg() Angle {
	return -a
}

// Scale multiplies the angle by a scalar value
func (a Angle) Scale(factor float64) Angle {
	return Angle(float64(a) * factor)
}

// Radians returns the raw radian value
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees converts the angle to degrees
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

// Wrap returns the equivalent angle in [-π, π).
func (a Angle) Wrap() Angle {
	const turn = 2 * math.Pi
	r := math.Mod(float64(a)+math.Pi, turn)
	if r < 0 {
		r += turn
	}
	return Angle(r - math.Pi)
}

func (a Angle) String() string {
	return fmt.Sprintf("%.01f degrees", a.Degrees())
}
