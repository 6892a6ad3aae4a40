package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// ScreenSurface draws a frame into a core.Screen, scaling world units to
// cells on both axes independently so the field always fills the terminal.
type ScreenSurface struct {
	screen *core.Screen
	sx, sy float64
}

// NewScreenSurface creates a surface over screen.
func NewScreenSurface(screen *core.Screen) *ScreenSurface {
	return &ScreenSurface{screen: screen, sx: 1, sy: 1}
}

func (s *ScreenSurface) col(x float64) int { return int(math.Floor(x * s.sx)) }
func (s *ScreenSurface) row(y float64) int { return int(math.Floor(y * s.sy)) }

// DrawBackground clears the screen and fixes the scale for the frame.
func (s *ScreenSurface) DrawBackground(f config.Field) {
	s.sx = float64(s.screen.Width()) / f.Width
	s.sy = float64(s.screen.Height()) / f.Height
	s.screen.Clear()

	// Two fixed clouds give the sky some depth.
	s.screen.DrawText(s.col(f.Width*0.15), s.row(f.Height*0.12), "~~~", core.ColorCloud)
	s.screen.DrawText(s.col(f.Width*0.65), s.row(f.Height*0.22), "~~~~", core.ColorCloud)
}

// DrawObstacle draws the upper and lower pipe with caps at the gap.
func (s *ScreenSurface) DrawObstacle(o flappy.Obstacle, width, groundY float64) {
	x0 := s.col(o.X)
	w := max(s.col(o.Right(width))-x0, 1)
	top := s.row(o.GapTop)
	bottom := s.row(o.GapBottom())
	ground := s.row(groundY)

	body := core.ColorPipe
	if o.Decor%4 == 0 {
		body = core.ColorPipeDark
	}

	s.screen.DrawRect(core.NewRect(x0, 0, w, top), '█', body)
	s.screen.DrawRect(core.NewRect(x0, bottom, w, ground-bottom), '█', body)
	if top > 0 {
		s.screen.DrawHLine(x0-1, top-1, w+2, '▀', core.ColorPipeCap)
	}
	if bottom < ground {
		s.screen.DrawHLine(x0-1, bottom, w+2, '▄', core.ColorPipeCap)
	}
}

// DrawPlayer draws the bird, picking a glyph from the jumping flag and tilt.
func (s *ScreenSurface) DrawPlayer(p flappy.Player) {
	glyph, c := "-o>", core.ColorBird
	switch {
	case p.Jumping():
		glyph, c = "^o>", core.ColorBirdFlap
	case p.Rotation() > math.Pi/8:
		glyph = "vo>"
	}
	s.screen.DrawText(s.col(p.X)-1, s.row(p.Y), glyph, c)
}

// DrawGround draws a grass line and a dirt band that scrolls with offset.
func (s *ScreenSurface) DrawGround(groundY float64, f config.Field, offset float64) {
	y := s.row(groundY)
	s.screen.DrawHLine(0, y, s.screen.Width(), '▀', core.ColorGrass)

	shift := int(offset * s.sx)
	for row := y + 1; row < s.screen.Height(); row++ {
		for x := 0; x < s.screen.Width(); x++ {
			r := '░'
			if (x+shift+row)%4 == 0 {
				r = '▒'
			}
			s.screen.SetColored(x, row, r, core.ColorGround)
		}
	}
}

// DrawScore draws the HUD line.
func (s *ScreenSurface) DrawScore(score, best, tier int) {
	s.screen.DrawTextCentered(0, fmt.Sprintf(" %d ", score), core.ColorHUD)
	s.screen.DrawText(1, 0, fmt.Sprintf("best %d", best), core.ColorMuted)
	label := fmt.Sprintf("tier %d", tier)
	s.screen.DrawText(s.screen.Width()-len(label)-1, 0, label, core.ColorMuted)
}

// DrawOverlay draws the title, pause and game-over cards.
func (s *ScreenSurface) DrawOverlay(phase core.Phase, score, best int) {
	var lines []string
	c := core.ColorHUD
	switch phase {
	case core.PhaseIdle:
		lines = []string{"F L A P P Y", "", "space to flap", fmt.Sprintf("best %d", best)}
	case core.PhasePaused:
		lines = []string{"PAUSED", "", "p to resume", "b for title"}
	case core.PhaseEnded:
		c = core.ColorDanger
		lines = []string{"GAME OVER", "", fmt.Sprintf("score %d", score), fmt.Sprintf("best  %d", best), "", "r to restart"}
		if score > 0 && score >= best {
			lines[1] = "new best!"
		}
	default:
		return
	}
	s.card(lines, c)
}

func (s *ScreenSurface) card(lines []string, c core.Color) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w = core.Clamp(w+6, 0, s.screen.Width())
	h := len(lines) + 2
	r := core.NewRect((s.screen.Width()-w)/2, (s.screen.Height()-h)/2, w, h)

	s.screen.DrawRect(r, ' ', core.ColorDefault)
	s.screen.DrawBox(r, c)
	for i, l := range lines {
		lc := core.ColorHUD
		if i == 0 {
			lc = c
		}
		if i == 1 && l != "" {
			lc = core.ColorAccent
		}
		s.screen.DrawTextCentered(r.Y+1+i, l, lc)
	}
}

var _ flappy.Surface = (*ScreenSurface)(nil)
