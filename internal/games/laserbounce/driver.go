package laserbounce

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/laser-bounce/internal/config"
	"github.com/vovakirdan/laser-bounce/internal/core"
)

// State is the lifecycle state of the Driver.
type State int

const (
	StateIdle State = iota
	StateRunning
)

// String returns the state name.
func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// Options configures a Driver. Only Scheduler is required.
type Options struct {
	Scheduler Scheduler
	Listener  Listener
	Audio     Audio
	Logger    *log.Logger
	Seed      int64
	TickRate  int // Frames per second; 0 means core.DefaultConfig().TickRate
}

// Driver runs the frame loop and the orb cadence of one run at a time.
// All methods must be called from the thread the Scheduler delivers on.
type Driver struct {
	cfg   config.Config
	opts  Options
	log   *log.Logger
	state State

	preset config.Preset
	run    *Run
	sim    *Sim
	input  Input

	runSeq uint64
	epoch  uint64 // Bumped on every start, stop and resume

	// Last viewport, applied to the next run.
	width, height float64
}

// NewDriver creates an idle driver.
func NewDriver(cfg config.Config, opts Options) *Driver {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	rules := NewRules(cfg, config.PresetMedium)
	w, h := rules.Bounds(0, 0)
	return &Driver{
		cfg:    cfg,
		opts:   opts,
		log:    opts.Logger,
		preset: config.PresetMedium,
		width:  w,
		height: h,
	}
}

// State returns the lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// Preset returns the preset of the current or last run.
func (d *Driver) Preset() config.Preset {
	return d.preset
}

// Run returns the current run, or nil before the first start. The run is
// owned by the driver; callers must treat it as read-only.
func (d *Driver) Run() *Run {
	return d.run
}

// FrameInterval returns the delay between frame timers.
func (d *Driver) FrameInterval() time.Duration {
	return time.Second / time.Duration(d.opts.TickRate)
}

// Start begins a new run with preset, superseding any previous run and
// every timer it left pending.
func (d *Driver) Start(preset config.Preset) {
	d.preset = preset
	d.runSeq++
	d.epoch++

	rules := NewRules(d.cfg, preset)
	spawner := NewSpawner(rules, d.opts.Seed+int64(d.runSeq)) //#nosec G115 -- run count fits
	d.sim = NewSim(rules, spawner, d.opts.Listener, d.opts.Audio, d.log)
	d.run = newRun(d.runSeq, rules, d.width, d.height)
	d.sim.Populate(d.run)
	d.input = Input{}
	d.state = StateRunning

	d.log.Info("run started",
		"run", d.run.ID,
		"preset", preset,
		"enemies", d.run.Enemies.Len(),
		"width", d.run.Width,
		"height", d.run.Height,
		"scale", d.run.Scale,
	)

	d.sim.ev.cue(CueMusicStart)
	d.scheduleCadence()
}

// Restart starts a new run with the previously selected preset.
func (d *Driver) Restart() {
	d.Start(d.preset)
}

// Stop pauses the current run. Pending frame and spawn timers become
// stale; the run itself is kept for Resume and rendering.
func (d *Driver) Stop() {
	if d.state != StateRunning {
		return
	}
	d.halt()
	d.log.Info("run stopped", "run", d.run.ID, "score", d.run.Score)
}

// Resume continues a stopped run that has not ended.
func (d *Driver) Resume() bool {
	if d.state != StateIdle || d.run == nil || d.run.Over {
		return false
	}
	d.epoch++
	d.state = StateRunning
	d.input = Input{}
	d.sim.ev.cue(CueMusicStart)
	d.scheduleCadence()
	d.log.Info("run resumed", "run", d.run.ID, "score", d.run.Score)
	return true
}

// Resize applies a new viewport size in pixels. Invalid or tiny sizes are
// raised to the configured minimum. The current run, running or not, is
// rescaled in place.
func (d *Driver) Resize(width, height float64) {
	rules := NewRules(d.cfg, d.preset)
	d.width, d.height = rules.Bounds(width, height)
	if d.run == nil {
		return
	}
	d.run.rescale(d.width, d.height, rules.SpeedScale(d.width))
	d.log.Debug("viewport resized", "width", d.width, "height", d.height, "scale", d.run.Scale)
}

// Viewport returns the playfield size in pixels.
func (d *Driver) Viewport() (float64, float64) {
	return d.width, d.height
}

// SetInput replaces the held directions used by the next frames.
func (d *Driver) SetInput(in Input) {
	d.input = in
}

// Fire launches a laser if the running run allows it.
func (d *Driver) Fire() bool {
	if d.state != StateRunning || d.run == nil {
		return false
	}
	return d.sim.Fire(d.run)
}

// Handle processes a fired timer. Timers left over from an earlier run, or
// from before a stop, are ignored.
func (d *Driver) Handle(t Timer) {
	if d.run == nil || t.RunID != d.run.ID {
		return
	}

	switch t.Kind {
	case TimerFrame:
		if !d.live(t) {
			return
		}
		d.sim.Step(d.run, d.input)
		if d.run.Over {
			d.halt()
			return
		}
		d.opts.Scheduler.After(d.FrameInterval(), d.timer(TimerFrame))

	case TimerOrbSpawn:
		if !d.live(t) {
			return
		}
		id := d.sim.spawner.SpawnOrb(d.run)
		expire := d.timer(TimerOrbExpire)
		expire.Orb = id
		d.opts.Scheduler.After(d.sim.rules.OrbLifetime(), expire)
		d.opts.Scheduler.After(d.sim.rules.OrbInterval(), d.timer(TimerOrbSpawn))

	case TimerOrbExpire:
		// Expiry is checked by membership, not epoch: an orb still on the
		// field of a live run always leaves after its lifetime.
		if d.run.Over {
			return
		}
		d.run.Orbs.Remove(t.Orb)
	}
}

func (d *Driver) live(t Timer) bool {
	return d.state == StateRunning && t.Epoch == d.epoch
}

func (d *Driver) halt() {
	d.epoch++
	d.state = StateIdle
	d.input = Input{}
	d.sim.ev.cue(CueMusicStop)
}

func (d *Driver) timer(kind TimerKind) Timer {
	return Timer{Kind: kind, RunID: d.run.ID, Epoch: d.epoch}
}

func (d *Driver) scheduleCadence() {
	d.opts.Scheduler.After(d.FrameInterval(), d.timer(TimerFrame))
	d.opts.Scheduler.After(d.sim.rules.OrbInterval(), d.timer(TimerOrbSpawn))
}
