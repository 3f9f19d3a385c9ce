// pkg/engine/policy.go
package engine

import (
	"fmt"

	"github.com/opd-ai/go-spaceshooter/pkg/config"
)

// CollisionPolicy decides what Run does when the ship starts intersecting
// the asteroid.
type CollisionPolicy int

const (
	// PolicyLog logs the collision and keeps running
	PolicyLog CollisionPolicy = iota
	// PolicyStop ends the run with ErrGameOver
	PolicyStop
	// PolicyIgnore only updates the intersection flag
	PolicyIgnore
)

func (p CollisionPolicy) String() string {
	switch p {
	case PolicyLog:
		return config.PolicyLog
	case PolicyStop:
		return config.PolicyStop
	case PolicyIgnore:
		return config.PolicyIgnore
	default:
		return fmt.Sprintf("CollisionPolicy(%d)", int(p))
	}
}

// ParseCollisionPolicy converts a config value. The empty string selects
// PolicyLog.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch s {
	case "", config.PolicyLog:
		return PolicyLog, nil
	case config.PolicyStop:
		return PolicyStop, nil
	case config.PolicyIgnore:
		return PolicyIgnore, nil
	default:
		return PolicyLog, fmt.Errorf("unknown collision policy %q", s)
	}
}
