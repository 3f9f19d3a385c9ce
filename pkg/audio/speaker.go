//go:build audio

package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SpeakerPlayer mixes streamers onto the system speaker
type SpeakerPlayer struct {
	mu    sync.Mutex
	mixer *beep.Mixer
}

// NewSpeakerPlayer opens the speaker at sampleRate
func NewSpeakerPlayer(sampleRate beep.SampleRate) (Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	p := &SpeakerPlayer{mixer: &beep.Mixer{}}
	speaker.Play(p.mixer)
	return p, nil
}

// Play implements Player.
func (p *SpeakerPlayer) Play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close implements Player.
func (p *SpeakerPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	return nil
}
