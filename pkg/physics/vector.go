// pkg/physics/vector.go
package physics

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Vector2D represents a 2D vector with x and y components
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return v.Add(other.Neg())
}

// Neg returns the vector pointing the opposite way
func (v Vector2D) Neg() Vector2D {
	return Vector2D{X: -v.X, Y: -v.Y}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector2D) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction
func (v Vector2D) Normalize() Vector2D {
	length := v.Length()
	if length == 0 {
		return Vector2D{}
	}
	return Vector2D{
		X: v.X / length,
		Y: v.Y / length,
	}
}

// Distance returns the distance between two vectors
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Dot returns the dot product of two vectors
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Heading returns the direction of the vector
func (v Vector2D) Heading() Angle {
	return Angle(math.Atan2(v.Y, v.X))
}

// FromAngle creates a vector from an angle and magnitude
func FromAngle(angle Angle, magnitude float64) Vector2D {
	sin, cos := math.Sincos(angle.Radians())
	return Vector2D{
		X: magnitude * cos,
		Y: magnitude * sin,
	}
}

// Rotate rotates the vector about the coordinate origin
func (v Vector2D) Rotate(angle Angle) Vector2D {
	sin, cos := math.Sincos(angle.Radians())
	return Vector2D{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// RotateAround rotates the vector about origin
func (v Vector2D) RotateAround(origin Vector2D, angle Angle) Vector2D {
	return v.Sub(origin).Rotate(angle).Add(origin)
}

// ApproxEqual reports whether both components are within tol of other's
func (v Vector2D) ApproxEqual(other Vector2D, tol float64) bool {
	return scalar.EqualWithinAbs(v.X, other.X, tol) && scalar.EqualWithinAbs(v.Y, other.Y, tol)
}
