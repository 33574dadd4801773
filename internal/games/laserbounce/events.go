package laserbounce

import (
	"io"

	"github.com/charmbracelet/log"
)

// Listener receives run notifications. ScoreUpdated fires every tick;
// GameOver fires exactly once per run.
type Listener interface {
	ScoreUpdated(score int)
	GameOver(finalScore int)
}

// Cue is a sound effect or music command.
type Cue int

const (
	CueLaser Cue = iota
	CueHit
	CueDeath
	CueUnlock
	CueMusicStart
	CueMusicStop
	CueMusicDuck
)

// String returns the cue name used in logs.
func (c Cue) String() string {
	switch c {
	case CueLaser:
		return "laser"
	case CueHit:
		return "hit"
	case CueDeath:
		return "death"
	case CueUnlock:
		return "unlock"
	case CueMusicStart:
		return "music-start"
	case CueMusicStop:
		return "music-stop"
	case CueMusicDuck:
		return "music-duck"
	default:
		return "unknown"
	}
}

// Audio plays cues. Implementations must not block the tick.
type Audio interface {
	Cue(c Cue)
}

// NopListener ignores all notifications.
type NopListener struct{}

func (NopListener) ScoreUpdated(int) {}
func (NopListener) GameOver(int)     {}

// NopAudio ignores all cues.
type NopAudio struct{}

func (NopAudio) Cue(Cue) {}

// emitter forwards simulation events to the collaborators. A collaborator
// that panics is logged and otherwise ignored.
type emitter struct {
	listener Listener
	audio    Audio
	log      *log.Logger
}

func newEmitter(l Listener, a Audio, logger *log.Logger) *emitter {
	if l == nil {
		l = NopListener{}
	}
	if a == nil {
		a = NopAudio{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &emitter{listener: l, audio: a, log: logger}
}

func (e *emitter) score(s int) {
	defer e.swallow("score listener")
	e.listener.ScoreUpdated(s)
}

func (e *emitter) gameOver(s int) {
	defer e.swallow("game over listener")
	e.listener.GameOver(s)
}

func (e *emitter) cue(c Cue) {
	defer e.swallow("audio cue " + c.String())
	e.audio.Cue(c)
}

func (e *emitter) swallow(what string) {
	if r := recover(); r != nil {
		e.log.Warn("collaborator failed", "what", what, "panic", r)
	}
}
