package laserbounce

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"time"

	"github.com/vovakirdan/laser-bounce/internal/config"
)

type scheduled struct {
	d time.Duration
	t Timer
}

// fakeScheduler records timers until a test fires them.
type fakeScheduler struct {
	pending []scheduled
}

func (f *fakeScheduler) After(d time.Duration, t Timer) {
	f.pending = append(f.pending, scheduled{d: d, t: t})
}

// take removes and returns every pending timer of kind.
func (f *fakeScheduler) take(kind TimerKind) []scheduled {
	var out, keep []scheduled
	for _, s := range f.pending {
		if s.t.Kind == kind {
			out = append(out, s)
		} else {
			keep = append(keep, s)
		}
	}
	f.pending = keep
	return out
}

func (f *fakeScheduler) count(kind TimerKind) int {
	n := 0
	for _, s := range f.pending {
		if s.t.Kind == kind {
			n++
		}
	}
	return n
}

// runFrames fires the pending frame timer n times.
func runFrames(d *Driver, f *fakeScheduler, n int) {
	for range n {
		for _, s := range f.take(TimerFrame) {
			d.Handle(s.t)
		}
	}
}

type recListener struct {
	scores []int
	overs  []int
}

func (l *recListener) ScoreUpdated(s int) { l.scores = append(l.scores, s) }
func (l *recListener) GameOver(s int)     { l.overs = append(l.overs, s) }

type recAudio struct {
	cues []Cue
}

func (a *recAudio) Cue(c Cue) { a.cues = append(a.cues, c) }

func (a *recAudio) count(c Cue) int {
	n := 0
	for _, got := range a.cues {
		if got == c {
			n++
		}
	}
	return n
}

type panicAudio struct{}

func (panicAudio) Cue(Cue) { panic("audio device gone") }

// testSim builds a simulation over an empty 1600×900 run, so speed-scale is 1.
func testSim(preset config.Preset) (*Sim, *Run, *recListener, *recAudio) {
	rules := NewRules(config.Default(), preset)
	l := &recListener{}
	a := &recAudio{}
	sim := NewSim(rules, NewSpawner(rules, 42), l, a, nil)
	run := newRun(1, rules, 1600, 900)
	return sim, run, l, a
}

func newTestDriver(l Listener, a Audio) (*Driver, *fakeScheduler) {
	sched := &fakeScheduler{}
	d := NewDriver(config.Default(), Options{
		Scheduler: sched,
		Listener:  l,
		Audio:     a,
		Seed:      7,
	})
	d.Resize(1600, 900)
	return d, sched
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// snapshotHash folds every field of snap into one value.
func snapshotHash(snap *Snapshot) uint64 {
	var buf []byte
	u := func(v uint64) { buf = binary.LittleEndian.AppendUint64(buf, v) }
	f := func(vs ...float64) {
		for _, v := range vs {
			u(math.Float64bits(v))
		}
	}
	b := func(v bool) {
		if v {
			u(1)
		} else {
			u(0)
		}
	}

	u(snap.RunID)
	u(snap.Frames)
	u(uint64(snap.Score))      //#nosec G115 -- hash computation
	u(uint64(snap.Tier))       //#nosec G115 -- hash computation
	u(uint64(snap.Ammo))       //#nosec G115 -- hash computation
	u(uint64(snap.Banner))     //#nosec G115 -- hash computation
	u(uint64(snap.BannerKind)) //#nosec G115 -- hash computation
	b(snap.Unlocked)
	b(snap.Over)
	f(snap.Width, snap.Height, snap.Scale)

	p := snap.Player
	f(p.X, p.Y, p.Radius, p.Speed, p.DX, p.DY)

	u(uint64(len(snap.Enemies)))
	for _, e := range snap.Enemies {
		f(e.X, e.Y, e.Radius, e.DX, e.DY, e.Hue)
	}
	u(uint64(len(snap.Lasers)))
	for _, l := range snap.Lasers {
		f(l.X, l.Y, l.DX, l.DY, l.Length)
	}
	u(uint64(len(snap.Orbs)))
	for _, o := range snap.Orbs {
		f(o.X, o.Y, o.Radius)
	}

	h := fnv.New64a()
	_, _ = h.Write(buf)
	return h.Sum64()
}
