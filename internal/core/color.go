package core

// Color is a foreground color for a screen cell.
// Hosts map it onto their own palette (ANSI 256 in the terminal).
type Color uint8

const (
	ColorDefault Color = iota
	ColorSky
	ColorCloud
	ColorPipe
	ColorPipeDark
	ColorPipeCap
	ColorBird
	ColorBirdFlap
	ColorGround
	ColorGrass
	ColorHUD
	ColorAccent
	ColorDanger
	ColorMuted
)
