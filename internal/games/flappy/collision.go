package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Collision names what ended a run.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionGround
	CollisionObstacle
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionGround:
		return "ground"
	case CollisionObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// HitsGround reports whether the body reaches below groundY.
func HitsGround(p Player, groundY float64) bool {
	return p.Y+p.Radius > groundY
}

// TouchesCeiling reports whether the body pokes above the field.
// The ceiling clamps; it is never a collision.
func TouchesCeiling(p Player) bool {
	return p.Y-p.Radius < 0
}

// HitsObstacle reports whether the body overlaps o horizontally while being
// outside its gap vertically.
func HitsObstacle(p Player, o Obstacle, width float64) bool {
	if !core.Overlaps(p.X-p.Radius, p.X+p.Radius, o.X, o.Right(width)) {
		return false
	}
	return p.Y-p.Radius < o.GapTop || p.Y+p.Radius > o.GapBottom()
}

// Collide checks the ground, then every obstacle, and returns the first hit.
func Collide(p Player, obstacles []Obstacle, width, groundY float64) Collision {
	if HitsGround(p, groundY) {
		return CollisionGround
	}
	for _, o := range obstacles {
		if HitsObstacle(p, o, width) {
			return CollisionObstacle
		}
	}
	return CollisionNone
}
