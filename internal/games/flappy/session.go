package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// ScoreKeeper persists the best score across program runs.
// Errors are never fatal: a failed load counts as 0 and a failed save is skipped.
type ScoreKeeper interface {
	LoadBest() (int, error)
	SaveBest(score int) error
}

// Session is the state of one run. Every start or restart builds a new one,
// so nothing carries over except what the Game owns (best score, counters).
type Session struct {
	id         uint64
	cfg        config.FlappyConfig
	player     Player
	stream     *Stream
	difficulty *config.Difficulty
	score      int
	beatBest   bool

	lastSpawn    time.Time
	started      time.Time
	elapsed      time.Duration
	ticks        int
	groundOffset float64
	collision    Collision
}

func newSession(id uint64, cfg config.FlappyConfig, seed int64, now time.Time) *Session {
	return &Session{
		id:         id,
		cfg:        cfg,
		player:     NewPlayer(cfg),
		stream:     NewStream(seed, cfg.Obstacles.Width),
		difficulty: config.NewDifficulty(cfg.Difficulty),
		started:    now,
	}
}

// ID identifies the session; jump timers are scoped to it.
func (s *Session) ID() uint64 { return s.id }

// Score returns the number of obstacles passed in this run.
func (s *Session) Score() int { return s.score }

// Player returns a copy of the player body.
func (s *Session) Player() Player { return s.player }

// Obstacles returns the live obstacles in spawn order.
func (s *Session) Obstacles() []Obstacle { return s.stream.Obstacles() }

// ObstacleWidth returns the pipe width.
func (s *Session) ObstacleWidth() float64 { return s.stream.Width() }

// Tier returns the current difficulty tier.
func (s *Session) Tier() int { return s.difficulty.Tier() }

// Speed returns the current obstacle speed per tick.
func (s *Session) Speed() float64 { return s.difficulty.Speed() }

// SpawnInterval returns the current time between obstacles.
func (s *Session) SpawnInterval() time.Duration { return s.difficulty.Interval() }

// Elapsed returns the simulated wall time, excluding pauses.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Ticks returns the number of simulated frames.
func (s *Session) Ticks() int { return s.ticks }

// GroundOffset returns how far the ground has scrolled, for renderers.
func (s *Session) GroundOffset() float64 { return s.groundOffset }

// Collision returns what ended the run, or CollisionNone.
func (s *Session) Collision() Collision { return s.collision }

func (s *Session) spawnBounds() SpawnBounds {
	return SpawnBounds{
		FieldWidth:   s.cfg.Field.Width,
		FieldHeight:  s.cfg.Field.Height,
		GroundHeight: s.cfg.Field.GroundHeight,
		GapSize:      s.cfg.Obstacles.GapSize,
		MarginMin:    s.cfg.Obstacles.MarginMin,
	}
}
