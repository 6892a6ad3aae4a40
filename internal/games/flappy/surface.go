package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Surface receives the draw calls of one frame. Game.Render calls the methods
// in a fixed order: background, obstacles, player, ground, score, overlay.
// Implementations own every pixel-level decision, including asset use.
type Surface interface {
	DrawBackground(f config.Field)
	DrawObstacle(o Obstacle, width, groundY float64)
	DrawPlayer(p Player)
	DrawGround(groundY float64, f config.Field, offset float64)
	DrawScore(score, best, tier int)
	DrawOverlay(phase core.Phase, score, best int)
}
