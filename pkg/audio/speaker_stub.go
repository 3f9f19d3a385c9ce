//go:build !audio

package audio

import "github.com/gopxl/beep"

// NewSpeakerPlayer reports ErrUnavailable; build with -tags audio for sound.
func NewSpeakerPlayer(sampleRate beep.SampleRate) (Player, error) {
	return nil, ErrUnavailable
}
