// Package audio plays Laser Bounce sound cues through the system speaker.
// Every sound is synthesized; there are no asset files.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/laser-bounce/internal/config"
	"github.com/vovakirdan/laser-bounce/internal/games/laserbounce"
)

// Player turns simulation cues into sound. Cue never blocks on the device
// and never fails; without Init it only tracks music state.
type Player struct {
	mu     sync.Mutex
	cfg    config.AudioConfig
	rate   beep.SampleRate
	mixer  *beep.Mixer
	music  *beep.Ctrl
	gain   *effects.Volume
	ducked bool
	open   bool
	log    *log.Logger
}

var _ laserbounce.Audio = (*Player)(nil)

// New creates a player. Call Init to start the speaker.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
		log:   logger,
	}
}

// Init opens the speaker. Calling it twice is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.open {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.open = true
	return nil
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.open = false
	p.music = nil
	p.gain = nil
}

// Cue plays a sound effect or changes the background music.
func (p *Player) Cue(c laserbounce.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.open {
		speaker.Lock()
		defer speaker.Unlock()
	}

	fx := p.cfg.EffectVolume
	switch c {
	case laserbounce.CueLaser:
		p.mixer.Add(laserSound(p.rate, fx))
	case laserbounce.CueHit:
		p.mixer.Add(hitSound(p.rate, fx))
	case laserbounce.CueDeath:
		p.mixer.Add(deathSound(p.rate, fx))
	case laserbounce.CueUnlock:
		p.mixer.Add(unlockSound(p.rate, fx))
	case laserbounce.CueMusicStart:
		p.startMusic()
	case laserbounce.CueMusicStop:
		p.stopMusic()
	case laserbounce.CueMusicDuck:
		p.ducked = true
		if p.gain != nil {
			setGain(p.gain, p.cfg.DuckedVolume)
		}
	default:
		p.log.Debug("unknown audio cue", "cue", int(c))
	}
}

// MusicPlaying reports whether the background track is audible.
func (p *Player) MusicPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.music != nil
}

// Ducked reports whether the background track is at the ducked level.
func (p *Player) Ducked() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ducked
}

// Active returns the number of streamers in the mix, music included.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Len()
}

// startMusic restarts the background track from the top at full level.
func (p *Player) startMusic() {
	p.stopMusic()
	p.gain = volume(newDrone(p.rate), p.cfg.MusicVolume)
	p.music = &beep.Ctrl{Streamer: p.gain}
	p.ducked = false
	p.mixer.Add(p.music)
}

// stopMusic detaches the track; the mixer drops a Ctrl with no streamer.
func (p *Player) stopMusic() {
	if p.music != nil {
		p.music.Streamer = nil
	}
	p.music = nil
	p.gain = nil
}
