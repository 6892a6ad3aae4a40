// Package flappy implements the simulation of a Flappy Bird-style game: a
// circle falls under gravity and must pass through the gaps of a stream of
// scrolling pipes by timing jumps.
//
// The package is host-agnostic. A host feeds it input edges and frame
// timestamps, schedules the jump-clear timers it asks for, and hands it a
// Surface to draw on. All methods must be called from one goroutine.
package flappy

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ID is the identifier used for score storage.
const ID = "flappy"

// Game is the lifecycle state machine around a Session:
//
//	Idle --start--> Running --pause--> Paused --resume--> Running
//	Running --collision--> Ended --restart--> Running
//	Ended/Paused --back--> Idle
type Game struct {
	cfg    config.FlappyConfig
	seed   int64
	keeper ScoreKeeper

	phase    core.Phase
	clock    core.FrameClock
	session  *Session
	sessions uint64
	best     int
}

// New creates an idle game. The best score is read from keeper once; keeper may be nil.
func New(cfg config.FlappyConfig, seed int64, keeper ScoreKeeper) *Game {
	g := &Game{
		cfg:    cfg,
		seed:   seed,
		keeper: keeper,
		phase:  core.PhaseIdle,
	}
	if keeper != nil {
		if best, err := keeper.LoadBest(); err == nil && best > 0 {
			g.best = best
		}
	}
	g.session = g.newSession(time.Time{})
	return g
}

func (g *Game) newSession(now time.Time) *Session {
	g.sessions++
	return newSession(g.sessions, g.cfg, g.seed+int64(g.sessions-1), now)
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig { return g.cfg }

// Phase returns the lifecycle phase.
func (g *Game) Phase() core.Phase { return g.phase }

// Session returns the current run. In Idle it is a fresh, unstarted session.
func (g *Game) Session() *Session { return g.session }

// Best returns the best score seen, including the current run.
func (g *Game) Best() int { return g.best }

// Generation returns the frame chain hosts must tag their frames with.
func (g *Game) Generation() uint64 { return g.clock.Generation() }

// State returns the externally visible summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase,
		Score: g.session.score,
		Best:  g.best,
		Tier:  g.session.Tier(),
	}
}

func (g *Game) result(events ...core.Event) core.StepResult {
	return core.StepResult{State: g.State(), Events: events}
}

// Handle dispatches one input edge. Edges that are not valid in the current
// phase are ignored.
func (g *Game) Handle(a core.Action, now time.Time) core.StepResult {
	switch a {
	case core.ActionActivate:
		return g.Activate(now)
	case core.ActionPause:
		return g.TogglePause(now)
	case core.ActionRestart:
		return g.Restart(now)
	case core.ActionBack:
		return g.ReturnToIdle()
	default:
		return g.result()
	}
}

// Start leaves the title screen and begins a run.
func (g *Game) Start(now time.Time) core.StepResult {
	if g.phase != core.PhaseIdle {
		return g.result()
	}
	return g.begin(now)
}

// Restart begins a new run after the previous one ended, skipping the title screen.
func (g *Game) Restart(now time.Time) core.StepResult {
	if g.phase != core.PhaseEnded {
		return g.result()
	}
	return g.begin(now)
}

func (g *Game) begin(now time.Time) core.StepResult {
	g.session = g.newSession(now)
	g.phase = core.PhaseRunning
	g.clock.Start(now)
	return g.result(core.Event{Kind: core.EventStarted})
}

// Activate is the primary input: it starts from the title screen and jumps
// while running. It does nothing while paused or after the run ended.
func (g *Game) Activate(now time.Time) core.StepResult {
	switch g.phase {
	case core.PhaseIdle:
		return g.Start(now)
	case core.PhaseRunning:
		s := g.session
		gen := s.player.Jump(g.cfg.Physics.Scale)
		return g.result(core.Event{
			Kind:  core.EventJumped,
			Token: core.TimerToken{Session: s.id, Gen: gen},
			Delay: g.cfg.Physics.JumpFlagDuration(),
		})
	default:
		return g.result()
	}
}

// Pause stops the frame chain.
func (g *Game) Pause() core.StepResult {
	if g.phase != core.PhaseRunning {
		return g.result()
	}
	g.phase = core.PhasePaused
	g.clock.Stop()
	return g.result(core.Event{Kind: core.EventPaused})
}

// Resume restarts the frame chain with now as the new baseline.
func (g *Game) Resume(now time.Time) core.StepResult {
	if g.phase != core.PhasePaused {
		return g.result()
	}
	g.phase = core.PhaseRunning
	g.clock.Start(now)
	return g.result(core.Event{Kind: core.EventResumed})
}

// TogglePause pauses a running game or resumes a paused one.
func (g *Game) TogglePause(now time.Time) core.StepResult {
	if g.phase == core.PhasePaused {
		return g.Resume(now)
	}
	return g.Pause()
}

// ReturnToIdle abandons a paused or finished run and shows the title screen.
func (g *Game) ReturnToIdle() core.StepResult {
	if g.phase != core.PhaseEnded && g.phase != core.PhasePaused {
		return g.result()
	}
	g.clock.Stop()
	g.phase = core.PhaseIdle
	g.session = g.newSession(time.Time{})
	return g.result(core.Event{Kind: core.EventIdle})
}

// ClearJump lowers the jumping flag for a timer scheduled by an EventJumped.
// Tokens from an earlier jump or an earlier session are ignored.
func (g *Game) ClearJump(token core.TimerToken) bool {
	if token.Session != g.session.id {
		return false
	}
	return g.session.player.ClearJump(token.Gen)
}

// Tick runs one simulation pass for the frame chain gen at timestamp now.
// It reports false when the frame was rejected or the run is no longer
// running; the host must then stop requesting frames.
func (g *Game) Tick(gen uint64, now time.Time) (core.StepResult, bool) {
	if g.phase != core.PhaseRunning {
		return g.result(), false
	}
	dt, ok := g.clock.Frame(gen, now)
	if !ok {
		return g.result(), false
	}

	s := g.session
	p := &s.player
	var events []core.Event

	s.ticks++
	s.elapsed += dt

	p.ApplyGravity(g.cfg.Physics.Scale)
	p.ClampCeiling()

	bounds := s.spawnBounds()
	if last, spawned := s.stream.TrySpawn(now, s.lastSpawn, s.difficulty.Interval(), bounds); spawned {
		s.lastSpawn = last
	}
	speed := s.difficulty.Speed()
	s.stream.Advance(speed)
	s.groundOffset = math.Mod(s.groundOffset+speed, g.cfg.Field.Width)

	if passed := s.stream.Score(p.Left()); passed > 0 {
		s.score += passed
		events = append(events, core.Event{Kind: core.EventScored, Score: s.score, Tier: s.Tier()})
	}
	if s.difficulty.Observe(s.score) {
		events = append(events, core.Event{Kind: core.EventTierUp, Score: s.score, Tier: s.Tier()})
	}
	if s.score > g.best {
		g.best = s.score
		if g.keeper != nil {
			_ = g.keeper.SaveBest(g.best)
		}
		if !s.beatBest {
			s.beatBest = true
			events = append(events, core.Event{Kind: core.EventHighScore, Score: s.score})
		}
	}

	groundY := g.cfg.Field.GroundY()
	if c := Collide(*p, s.stream.Obstacles(), s.stream.Width(), groundY); c != CollisionNone {
		if c == CollisionGround {
			p.ClampGround(groundY)
		}
		events = append(events, g.end(c))
	}

	return g.result(events...), g.phase == core.PhaseRunning
}

func (g *Game) end(c Collision) core.Event {
	g.session.collision = c
	g.phase = core.PhaseEnded
	g.clock.Stop()
	return core.Event{
		Kind:   core.EventEnded,
		Score:  g.session.score,
		Tier:   g.session.Tier(),
		Reason: c.String(),
	}
}

// Render draws the current frame. Positions are final for the frame by the
// time any draw call is made.
func (g *Game) Render(dst Surface) {
	s := g.session
	f := g.cfg.Field
	groundY := f.GroundY()

	dst.DrawBackground(f)
	for _, o := range s.stream.Obstacles() {
		dst.DrawObstacle(o, s.stream.Width(), groundY)
	}
	dst.DrawPlayer(s.player)
	dst.DrawGround(groundY, f, s.groundOffset)
	dst.DrawScore(s.score, g.best, s.Tier())
	dst.DrawOverlay(g.phase, s.score, g.best)
}
