// pkg/entity/asteroid.go
package entity

import (
	"github.com/opd-ai/go-spaceshooter/pkg/physics"
)

// DefaultAsteroidRadius is used when no radius is configured
const DefaultAsteroidRadius = 50

// Asteroid is a static obstacle. Position is the upper-left corner of its
// bounding box, which extends Radius in both directions.
type Asteroid struct {
	ID       ID
	Position physics.Vector2D
	Radius   float64
}

// NewAsteroid creates an asteroid
func NewAsteroid(id ID, position physics.Vector2D, radius float64) *Asteroid {
	return &Asteroid{
		ID:       id,
		Position: position,
		Radius:   radius,
	}
}

// GetID returns the asteroid's identifier
func (a *Asteroid) GetID() ID {
	return a.ID
}

// BoundingBox returns the square from Position to Position+(Radius, Radius)
func (a *Asteroid) BoundingBox() physics.BoundingBox {
	return physics.NewBoundingBox(a.Position, a.Radius, a.Radius)
}

// Center returns the centre of the bounding box
func (a *Asteroid) Center() physics.Vector2D {
	return a.BoundingBox().Center()
}

// Outline returns the circle inscribed in the bounding box
func (a *Asteroid) Outline() physics.Circle {
	return physics.CircleIn(a.BoundingBox())
}

// Intersects reports whether the asteroid's box overlaps other's
func (a *Asteroid) Intersects(other Collidable) bool {
	return Intersects(a, other)
}

// Update does nothing; asteroids do not move.
func (a *Asteroid) Update(deltaTime float64) {}

// Render draws the outline
func (a *Asteroid) Render(surface Surface) {
	surface.DrawEllipse(a.Outline().Bounds(), AsteroidColor)
}
