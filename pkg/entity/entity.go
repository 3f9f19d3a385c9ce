// pkg/entity/entity.go
package entity

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/opd-ai/go-spaceshooter/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

var nextID atomic.Uint64

// GenerateID returns a fresh entity ID. IDs start at 1.
func GenerateID() ID {
	return ID(nextID.Add(1))
}

// Collidable is anything that can report a bounding box and test it against
// another collidable.
type Collidable interface {
	BoundingBox() physics.BoundingBox
	Intersects(other Collidable) bool
}

// Entity is the closed set of things that live in the simulation: *Ship
// and *Asteroid.
type Entity interface {
	Collidable
	GetID() ID
	Update(deltaTime float64)
	Render(s Surface)
}

// Intersects compares the bounding boxes of a and b as reported, without
// converting between frames.
func Intersects(a, b Collidable) bool {
	if a == nil || b == nil {
		return false
	}
	return a.BoundingBox().Intersects(b.BoundingBox())
}

// Frame selects the coordinate frame a ship reports its bounding box in.
type Frame int

const (
	// FrameWorld transforms the ship's local box by its rotation and
	// position so it can be compared with world-space boxes.
	FrameWorld Frame = iota
	// FrameLocal reports the untransformed local box, the way the first
	// version of the game did. Ship and asteroid are then compared in
	// different frames.
	FrameLocal
)

func (f Frame) String() string {
	switch f {
	case FrameWorld:
		return "world"
	case FrameLocal:
		return "local"
	default:
		return fmt.Sprintf("Frame(%d)", int(f))
	}
}

// ParseFrame converts a config value to a Frame. The empty string selects
// FrameWorld.
func ParseFrame(s string) (Frame, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "world":
		return FrameWorld, nil
	case "local":
		return FrameLocal, nil
	default:
		return FrameWorld, fmt.Errorf("unknown collision frame %q", s)
	}
}
