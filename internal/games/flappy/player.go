package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// maxTilt bounds the visual rotation derived from velocity.
const maxTilt = math.Pi / 4

// Player is the circular body the user keeps in the air.
// X is fixed for the lifetime of a session; only Y and Velocity move.
type Player struct {
	X        float64
	Y        float64
	Radius   float64
	Velocity float64 // positive is downward
	Gravity  float64
	Lift     float64

	jumping bool
	jumpGen uint64
}

// NewPlayer places a resting player at the configured start position.
func NewPlayer(cfg config.FlappyConfig) Player {
	return Player{
		X:       cfg.Player.X,
		Y:       cfg.Player.StartY,
		Radius:  cfg.Player.Radius,
		Gravity: cfg.Physics.Gravity,
		Lift:    cfg.Physics.Lift,
	}
}

// ApplyGravity integrates one tick: velocity first, then position.
func (p *Player) ApplyGravity(scale float64) {
	p.Velocity += p.Gravity * scale
	p.Y += p.Velocity
}

// Jump replaces the current velocity with the jump impulse and raises the
// jumping flag. It returns the generation the flag must be cleared with.
func (p *Player) Jump(scale float64) uint64 {
	p.Velocity = -p.Lift * scale
	p.jumping = true
	p.jumpGen++
	return p.jumpGen
}

// ClearJump lowers the jumping flag if gen belongs to the most recent jump.
func (p *Player) ClearJump(gen uint64) bool {
	if gen != p.jumpGen || !p.jumping {
		return false
	}
	p.jumping = false
	return true
}

// Jumping reports whether a jump happened within the flag duration.
func (p Player) Jumping() bool {
	return p.jumping
}

// Left returns the x coordinate of the player's left edge.
func (p Player) Left() float64 {
	return p.X - p.Radius
}

// ClampCeiling keeps the body inside the top of the field. It stops upward
// motion but does not end the run.
func (p *Player) ClampCeiling() bool {
	if !TouchesCeiling(*p) {
		return false
	}
	p.Y = p.Radius
	p.Velocity = 0
	return true
}

// ClampGround rests the body on the ground if it sank into it.
func (p *Player) ClampGround(groundY float64) bool {
	if !HitsGround(*p, groundY) {
		return false
	}
	p.Y = groundY - p.Radius
	return true
}

// Rotation returns a tilt in radians for renderers: nose up while rising,
// nose down while falling.
func (p Player) Rotation() float64 {
	return core.ClampF(p.Velocity*0.1, -maxTilt, maxTilt)
}
