// pkg/physics/movement.go
package physics

// MovementState tracks constant-acceleration kinematics for one body.
// Velocities are expressed per tick, so a dt of 1 advances one tick.
type MovementState struct {
	Position           Vector2D
	Velocity           Vector2D
	Rotation           Angle
	RotationalVelocity Angle
}

// Integrate applies one explicit Euler step. There is no drag and no speed
// limit: a body keeps whatever velocity it has been given.
func (s *MovementState) Integrate(dt float64) {
	s.Position = s.Position.Add(s.Velocity.Scale(dt))
	s.Rotation = s.Rotation.Add(s.RotationalVelocity.Scale(dt))
}

// IsAtRest reports whether integrating would change nothing
func (s *MovementState) IsAtRest() bool {
	return s.Velocity == (Vector2D{}) && s.RotationalVelocity == 0
}
