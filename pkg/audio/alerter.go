package audio

import (
	"context"

	"github.com/opd-ai/go-spaceshooter/pkg/event"
	"github.com/opd-ai/go-spaceshooter/pkg/logging"
)

// Alerter plays the alarm every time a collision starts
type Alerter struct {
	alarm  Alarm
	player Player
	logger *logging.Logger
	sub    *event.Subscription
	played int
}

// NewAlerter subscribes to CollisionStarted on bus
func NewAlerter(bus *event.Bus, alarm Alarm, player Player, logger *logging.Logger) *Alerter {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	a := &Alerter{alarm: alarm, player: player, logger: logger}
	a.sub = bus.Subscribe(event.CollisionStarted, a.handleCollision)
	return a
}

func (a *Alerter) handleCollision(e event.Event) {
	s, err := a.alarm.Streamer()
	if err != nil {
		a.logger.Error(context.Background(), "alarm unavailable", err, "tick", e.GetTick())
		return
	}
	a.player.Play(s)
	a.played++
}

// Played returns how many alarms have been started
func (a *Alerter) Played() int {
	return a.played
}

// Close unsubscribes and closes the player
func (a *Alerter) Close() error {
	a.sub.Cancel()
	return a.player.Close()
}
