package core

import "time"

// RuntimeConfig describes the host a game runs in.
type RuntimeConfig struct {
	ScreenW  int   // Surface width in host units (cells or pixels)
	ScreenH  int   // Surface height in host units
	TickRate int   // Frames requested per second
	Seed     int64 // RNG seed; 0 means the host picks one from the clock
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Phase is the lifecycle state of a game.
type Phase int

const (
	PhaseIdle    Phase = iota // title screen, nothing simulated
	PhaseRunning              // frames are simulated
	PhasePaused               // frames stopped, resumable
	PhaseEnded                // run is over, restartable
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// GameState is the externally visible summary of a game.
type GameState struct {
	Phase Phase
	Score int
	Best  int
	Tier  int
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool { return s.Phase == PhaseEnded }

// Paused reports whether the run is paused.
func (s GameState) Paused() bool { return s.Phase == PhasePaused }

// TimerToken identifies one scheduled one-shot timer. A token is only honored
// while both its session and its generation are still the latest.
type TimerToken struct {
	Session uint64
	Gen     uint64
}

// EventKind enumerates things a game reports to its host.
type EventKind int

const (
	EventStarted EventKind = iota
	EventJumped
	EventScored
	EventTierUp
	EventHighScore
	EventPaused
	EventResumed
	EventEnded
	EventIdle
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventJumped:
		return "jumped"
	case EventScored:
		return "scored"
	case EventTierUp:
		return "tier-up"
	case EventHighScore:
		return "high-score"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventEnded:
		return "ended"
	case EventIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// Event is a lifecycle or score notification.
// Token and Delay are set for EventJumped: the host must call back with Token
// once Delay of wall-clock time has passed.
type Event struct {
	Kind   EventKind
	Score  int
	Tier   int
	Reason string
	Token  TimerToken
	Delay  time.Duration
}

// StepResult is returned by every game transition and frame.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of kind k is present.
func (r StepResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}
