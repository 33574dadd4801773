package laserbounce

import "time"

// TimerKind identifies a scheduled callback.
type TimerKind int

const (
	TimerFrame TimerKind = iota
	TimerOrbSpawn
	TimerOrbExpire
)

// String returns the timer name used in logs.
func (k TimerKind) String() string {
	switch k {
	case TimerFrame:
		return "frame"
	case TimerOrbSpawn:
		return "orb-spawn"
	case TimerOrbExpire:
		return "orb-expire"
	default:
		return "unknown"
	}
}

// Timer is a callback token. The scheduler hands it back to Driver.Handle
// when it fires; the token carries enough to tell whether it is stale.
type Timer struct {
	Kind  TimerKind
	RunID uint64
	Epoch uint64 // Cadence generation for frame and spawn timers
	Orb   ID     // Orb to expire
}

// Scheduler delivers timers back to the driver on the simulation's single
// logical thread. There is no cancellation; stale timers are ignored.
type Scheduler interface {
	After(d time.Duration, t Timer)
}
