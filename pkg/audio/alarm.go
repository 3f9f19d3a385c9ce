// Package audio plays a short tone when the ship hits the asteroid.
package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/opd-ai/go-spaceshooter/pkg/config"
)

// ErrUnavailable is returned when the binary was built without speaker support
var ErrUnavailable = errors.New("audio output not available")

// Alarm describes the collision tone
type Alarm struct {
	SampleRate beep.SampleRate
	Frequency  float64
	Duration   time.Duration
}

// NewAlarm builds an Alarm from config
func NewAlarm(cfg config.AudioConfig) Alarm {
	return Alarm{
		SampleRate: beep.SampleRate(cfg.SampleRate),
		Frequency:  cfg.FrequencyHz,
		Duration:   time.Duration(cfg.DurationMS) * time.Millisecond,
	}
}

// Samples returns the length of the tone in samples
func (a Alarm) Samples() int {
	return a.SampleRate.N(a.Duration)
}

// Streamer returns a fresh streamer for one playback of the tone
func (a Alarm) Streamer() (beep.Streamer, error) {
	if a.SampleRate <= 0 || a.Frequency <= 0 || a.Duration <= 0 {
		return nil, fmt.Errorf("invalid alarm %v Hz at %d Hz for %v", a.Frequency, int(a.SampleRate), a.Duration)
	}
	tone, err := generators.SineTone(a.SampleRate, a.Frequency)
	if err != nil {
		return nil, fmt.Errorf("creating tone: %w", err)
	}
	return beep.Take(a.Samples(), tone), nil
}

// Player plays streamers
type Player interface {
	Play(s beep.Streamer)
	Close() error
}

// SilentPlayer discards everything it is given
type SilentPlayer struct{}

// Play implements Player.
func (SilentPlayer) Play(beep.Streamer) {}

// Close implements Player.
func (SilentPlayer) Close() error { return nil }
