// pkg/engine/command.go
package engine

import (
	"fmt"

	"github.com/opd-ai/go-spaceshooter/pkg/config"
	"github.com/opd-ai/go-spaceshooter/pkg/entity"
)

// Command is a player input applied to the ship
type Command int

const (
	Accelerate Command = iota
	RotateLeft
	RotateRight
)

func (c Command) String() string {
	switch c {
	case Accelerate:
		return "accelerate"
	case RotateLeft:
		return "rotate_left"
	case RotateRight:
		return "rotate_right"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// Apply performs the command on ship
func (c Command) Apply(ship *entity.Ship) {
	switch c {
	case Accelerate:
		ship.Accelerate()
	case RotateLeft:
		ship.RotateLeft()
	case RotateRight:
		ship.RotateRight()
	}
}

// KeyBindings maps typed characters to commands
type KeyBindings map[rune]Command

// DefaultKeyBindings returns the stock layout: w thrusts, d turns left and
// a turns right.
func DefaultKeyBindings() KeyBindings {
	return NewKeyBindings(config.DefaultConfig().Controls)
}

// NewKeyBindings builds bindings from validated controls. Empty entries are
// skipped.
func NewKeyBindings(controls config.ControlsConfig) KeyBindings {
	bindings := make(KeyBindings, 3)
	for key, cmd := range map[string]Command{
		controls.Accelerate:  Accelerate,
		controls.RotateLeft:  RotateLeft,
		controls.RotateRight: RotateRight,
	} {
		for _, r := range key {
			bindings[r] = cmd
			break
		}
	}
	return bindings
}

// Lookup returns the command bound to r
func (k KeyBindings) Lookup(r rune) (Command, bool) {
	cmd, ok := k[r]
	return cmd, ok
}
