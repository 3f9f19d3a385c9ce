// Package terminal drives the simulation from a tcell screen: key presses
// become ship commands and every tick is drawn onto the terminal.
package terminal

import (
	"context"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-spaceshooter/pkg/config"
	"github.com/opd-ai/go-spaceshooter/pkg/engine"
	"github.com/opd-ai/go-spaceshooter/pkg/logging"
	"github.com/opd-ai/go-spaceshooter/pkg/render"
)

// Frontend connects a tcell screen to a Simulation
type Frontend struct {
	screen   tcell.Screen
	sim      *engine.Simulation
	surface  *render.TerminalSurface
	bindings engine.KeyBindings
	quit     rune
	logger   *logging.Logger
}

// New creates a frontend. The screen must already be initialised; the
// caller keeps ownership and calls Fini.
func New(screen tcell.Screen, sim *engine.Simulation, cfg *config.GameConfig, logger *logging.Logger) *Frontend {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	quit, _ := utf8.DecodeRuneInString(cfg.Controls.Quit)
	return &Frontend{
		screen:   screen,
		sim:      sim,
		surface:  render.NewTerminalSurface(screen, cfg.Display.Width, cfg.Display.Height),
		bindings: engine.NewKeyBindings(cfg.Controls),
		quit:     quit,
		logger:   logger,
	}
}

// Surface returns the surface the simulation draws on
func (f *Frontend) Surface() *render.TerminalSurface {
	return f.surface
}

// Run polls terminal events on a separate goroutine and runs the
// simulation until the quit key, Escape, Ctrl-C, ctx cancellation or the
// simulation itself ends the run.
func (f *Frontend) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go f.pollEvents(cancel, done)

	err := f.sim.Run(ctx, f.surface)

	// Unblock PollEvent if the poller is still waiting.
	if postErr := f.screen.PostEvent(tcell.NewEventInterrupt(nil)); postErr != nil {
		f.logger.Debug(ctx, "interrupt not posted", "error", postErr.Error())
	}
	<-done
	return err
}

func (f *Frontend) pollEvents(cancel context.CancelFunc, done chan<- struct{}) {
	defer close(done)
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			return
		}
		if f.HandleEvent(ev) {
			cancel()
			return
		}
	}
}

// HandleEvent translates one terminal event and reports whether the user
// asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			r := ev.Rune()
			if r == f.quit {
				return true
			}
			if cmd, ok := f.bindings.Lookup(r); ok {
				f.sim.Submit(cmd)
			}
		}
	case *tcell.EventResize:
		f.surface.Resize()
	}
	return false
}
