package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// palette used when a sprite is not available.
var (
	colSky      = color.NRGBA{112, 197, 206, 255}
	colCloud    = color.NRGBA{240, 248, 255, 220}
	colPipe     = color.NRGBA{94, 173, 60, 255}
	colPipeDark = color.NRGBA{66, 130, 40, 255}
	colPipeEdge = color.NRGBA{40, 80, 25, 255}
	colBird     = color.NRGBA{250, 200, 50, 255}
	colBirdFlap = color.NRGBA{255, 150, 40, 255}
	colEye      = color.NRGBA{255, 255, 255, 255}
	colPupil    = color.NRGBA{20, 20, 20, 255}
	colBeak     = color.NRGBA{230, 90, 40, 255}
	colGrass    = color.NRGBA{120, 200, 70, 255}
	colDirt     = color.NRGBA{222, 216, 149, 255}
	colDirtDark = color.NRGBA{200, 190, 120, 255}
	colText     = color.NRGBA{255, 255, 255, 255}
	colShadow   = color.NRGBA{0, 0, 0, 160}
	colAccent   = color.NRGBA{255, 215, 0, 255}
	colDim      = color.NRGBA{0, 0, 0, 120}
)

const (
	glyphW = 7
	glyphH = 13
	capH   = 24
	capOut = 4
)

// CanvasSurface draws frames onto an ebiten image in world coordinates.
// Sprites from the catalog are used when Ready; shapes are drawn otherwise.
type CanvasSurface struct {
	dst     *ebiten.Image
	catalog *assets.Catalog
	sprites map[string]*ebiten.Image
	frame   int
	field   config.Field
}

// NewCanvasSurface creates a surface. catalog may be nil.
func NewCanvasSurface(catalog *assets.Catalog) *CanvasSurface {
	return &CanvasSurface{
		catalog: catalog,
		sprites: make(map[string]*ebiten.Image),
	}
}

// Begin sets the target of the next frame.
func (c *CanvasSurface) Begin(dst *ebiten.Image) {
	c.dst = dst
}

// Advance steps the player animation by one update.
func (c *CanvasSurface) Advance() {
	c.frame++
}

// sprite returns the GPU image for name, converting it on first use.
func (c *CanvasSurface) sprite(name string) *ebiten.Image {
	if img, ok := c.sprites[name]; ok {
		return img
	}
	if c.catalog == nil {
		return nil
	}
	src, ok := c.catalog.Image(name)
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	c.sprites[name] = img
	return img
}

// drawStretched draws img over the rectangle x, y, w, h.
func (c *CanvasSurface) drawStretched(img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	c.dst.DrawImage(img, op)
}

func (c *CanvasSurface) DrawBackground(f config.Field) {
	c.field = f
	if bg := c.sprite(assets.Background); bg != nil {
		c.drawStretched(bg, 0, 0, f.Width, f.Height)
		return
	}
	c.dst.Fill(colSky)
	for i, cx := range []float64{0.2, 0.7} {
		x := float32(cx * f.Width)
		y := float32(f.Height * (0.12 + 0.08*float64(i)))
		vector.DrawFilledCircle(c.dst, x, y, 18, colCloud, true)
		vector.DrawFilledCircle(c.dst, x+20, y+4, 14, colCloud, true)
		vector.DrawFilledCircle(c.dst, x-18, y+6, 12, colCloud, true)
	}
}

func (c *CanvasSurface) DrawObstacle(o flappy.Obstacle, width, groundY float64) {
	top := c.sprite(assets.PipeTop)
	bottom := c.sprite(assets.PipeBottom)
	if top != nil && bottom != nil {
		if o.GapTop > 0 {
			c.drawStretched(top, o.X, 0, width, o.GapTop)
		}
		if h := groundY - o.GapBottom(); h > 0 {
			c.drawStretched(bottom, o.X, o.GapBottom(), width, h)
		}
		return
	}

	body := colPipe
	if o.Decor%4 == 0 {
		body = colPipeDark
	}
	x, w := float32(o.X), float32(width)
	c.pipeRect(x, 0, w, float32(o.GapTop), body)
	c.pipeRect(x-capOut, float32(o.GapTop)-capH, w+2*capOut, capH, body)
	c.pipeRect(x, float32(o.GapBottom()), w, float32(groundY-o.GapBottom()), body)
	c.pipeRect(x-capOut, float32(o.GapBottom()), w+2*capOut, capH, body)
}

func (c *CanvasSurface) pipeRect(x, y, w, h float32, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, x, y, w, h, clr, true)
	vector.StrokeRect(c.dst, x, y, w, h, 2, colPipeEdge, true)
}

func (c *CanvasSurface) DrawPlayer(p flappy.Player) {
	name := assets.PlayerFrame((c.frame / 6) % assets.PlayerFrames)
	if p.Jumping() {
		name = assets.PlayerJumpFrame((c.frame / 4) % assets.PlayerJumpFrames)
	}
	if img := c.sprite(name); img != nil {
		b := img.Bounds()
		d := 2 * p.Radius
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Scale(d/float64(b.Dx()), d/float64(b.Dy()))
		op.GeoM.Rotate(p.Rotation())
		op.GeoM.Translate(p.X, p.Y)
		c.dst.DrawImage(img, op)
		return
	}

	body := colBird
	if p.Jumping() {
		body = colBirdFlap
	}
	x, y, r := float32(p.X), float32(p.Y), float32(p.Radius)
	vector.DrawFilledCircle(c.dst, x, y, r, body, true)

	// eye and beak follow the tilt
	rot := p.Rotation()
	cos, sin := float32(math.Cos(rot)), float32(math.Sin(rot))
	ex, ey := x+(r*0.35)*cos-(-r*0.3)*sin, y+(r*0.35)*sin+(-r*0.3)*cos
	vector.DrawFilledCircle(c.dst, ex, ey, r*0.28, colEye, true)
	vector.DrawFilledCircle(c.dst, ex+r*0.08*cos, ey+r*0.08*sin, r*0.12, colPupil, true)
	bx, by := x+r*0.9*cos, y+r*0.9*sin
	vector.DrawFilledCircle(c.dst, bx, by, r*0.25, colBeak, true)
}

func (c *CanvasSurface) DrawGround(groundY float64, f config.Field, offset float64) {
	h := f.Height - groundY
	if h <= 0 {
		return
	}
	if g := c.sprite(assets.Ground); g != nil {
		w := float64(g.Bounds().Dx()) * h / float64(g.Bounds().Dy())
		if w <= 0 {
			return
		}
		for x := -math.Mod(offset, w); x < f.Width; x += w {
			c.drawStretched(g, x, groundY, w, h)
		}
		return
	}

	vector.DrawFilledRect(c.dst, 0, float32(groundY), float32(f.Width), float32(h), colDirt, false)
	const stripe = 24.0
	for x := -math.Mod(offset, 2*stripe); x < f.Width; x += 2 * stripe {
		vector.DrawFilledRect(c.dst, float32(x), float32(groundY)+12, stripe, float32(h)-12, colDirtDark, false)
	}
	vector.DrawFilledRect(c.dst, 0, float32(groundY), float32(f.Width), 12, colGrass, false)
}

func (c *CanvasSurface) DrawScore(score, best, tier int) {
	s := fmt.Sprint(score)
	c.shadowText(s, int(c.field.Width/2)-len(s)*glyphW/2, 40, colText)
	c.shadowText(fmt.Sprintf("best %d", best), 10, 20, colText)
	t := fmt.Sprintf("tier %d", tier)
	c.shadowText(t, int(c.field.Width)-10-len(t)*glyphW, 20, colText)
}

func (c *CanvasSurface) DrawOverlay(phase core.Phase, score, best int) {
	var lines []string
	switch phase {
	case core.PhaseIdle:
		lines = []string{"F L A P P Y", "", "space / click to flap", "p pause   q quit"}
	case core.PhasePaused:
		lines = []string{"PAUSED", "", "p resume   b title"}
	case core.PhaseEnded:
		lines = []string{"GAME OVER", "", fmt.Sprintf("score %d   best %d", score, best)}
		if score > 0 && score >= best {
			lines = append(lines, "new best!")
		}
		lines = append(lines, "", "r restart   b title")
	default:
		return
	}

	w, h := c.field.Width, c.field.Height
	vector.DrawFilledRect(c.dst, 0, 0, float32(w), float32(h), colDim, false)
	y := int(h/2) - len(lines)*(glyphH+4)/2
	for i, line := range lines {
		clr := color.Color(colText)
		if i == 0 || line == "new best!" {
			clr = colAccent
		}
		c.shadowText(line, int(w/2)-len(line)*glyphW/2, y, clr)
		y += glyphH + 4
	}
}

// shadowText draws s with a one-pixel drop shadow. y is the baseline.
func (c *CanvasSurface) shadowText(s string, x, y int, clr color.Color) {
	text.Draw(c.dst, s, basicfont.Face7x13, x+1, y+1, colShadow)
	text.Draw(c.dst, s, basicfont.Face7x13, x, y, clr)
}

var _ flappy.Surface = (*CanvasSurface)(nil)
