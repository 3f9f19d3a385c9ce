//go:build engo

// pkg/render/engo/input.go
package engo

import (
	"unicode"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-spaceshooter/pkg/engine"
)

const quitButton = "quit"

var letterKeys = map[rune]engo.Key{
	'a': engo.KeyA, 'b': engo.KeyB, 'c': engo.KeyC, 'd': engo.KeyD,
	'e': engo.KeyE, 'f': engo.KeyF, 'g': engo.KeyG, 'h': engo.KeyH,
	'i': engo.KeyI, 'j': engo.KeyJ, 'k': engo.KeyK, 'l': engo.KeyL,
	'm': engo.KeyM, 'n': engo.KeyN, 'o': engo.KeyO, 'p': engo.KeyP,
	'q': engo.KeyQ, 'r': engo.KeyR, 's': engo.KeyS, 't': engo.KeyT,
	'u': engo.KeyU, 'v': engo.KeyV, 'w': engo.KeyW, 'x': engo.KeyX,
	'y': engo.KeyY, 'z': engo.KeyZ,
}

// InputSystem turns key presses into simulation commands. Each press
// queues exactly one command, like a typed character in the terminal.
type InputSystem struct {
	sim      *engine.Simulation
	commands map[string]engine.Command
}

// NewInputSystem registers one engo button per binding plus the quit key
func NewInputSystem(sim *engine.Simulation, bindings engine.KeyBindings, quit rune) *InputSystem {
	is := &InputSystem{sim: sim, commands: make(map[string]engine.Command)}
	for r, cmd := range bindings {
		key, ok := letterKeys[unicode.ToLower(r)]
		if !ok {
			continue
		}
		name := cmd.String()
		engo.Input.RegisterButton(name, key)
		is.commands[name] = cmd
	}

	quitKeys := []engo.Key{engo.KeyEscape}
	if key, ok := letterKeys[unicode.ToLower(quit)]; ok {
		quitKeys = append(quitKeys, key)
	}
	engo.Input.RegisterButton(quitButton, quitKeys...)
	return is
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update queues a command for every button pressed this frame
func (is *InputSystem) Update(dt float32) {
	if engo.Input.Button(quitButton).JustPressed() {
		engo.Exit()
		return
	}
	for name, cmd := range is.commands {
		if engo.Input.Button(name).JustPressed() {
			is.sim.Submit(cmd)
		}
	}
}
