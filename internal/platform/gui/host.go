// Package gui is the window host: it runs a flappy game inside an ebiten
// window, with keyboard, mouse and touch input and optional sprites.
package gui

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configures the window host.
type Options struct {
	TickRate int            // updates per second; 0 means 60
	Scale    float64        // window size relative to the field; 0 means 1
	AssetDir string         // directory with <sprite>.png files; empty means shapes only
	Store    *storage.Store // run history; nil keeps nothing
	Logger   *log.Logger
}

// Host adapts a flappy game to ebiten.Game. Update runs one frame of the
// current chain per call, so frames are strictly serial.
type Host struct {
	game    *flappy.Game
	surface *CanvasSurface
	catalog *assets.Catalog
	timers  core.TimerQueue
	store   *storage.Store
	logger  *log.Logger

	input func() core.InputFrame
	now   func() time.Time
}

// NewHost creates a host for game. catalog may be nil.
func NewHost(game *flappy.Game, catalog *assets.Catalog, opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{
		game:    game,
		surface: NewCanvasSurface(catalog),
		catalog: catalog,
		store:   opts.Store,
		logger:  logger,
		input:   pollInput,
		now:     time.Now,
	}
}

// loading reports whether sprites are still being decoded.
func (h *Host) loading() bool {
	return h.catalog != nil && !h.catalog.Settled()
}

// Update is called by ebiten once per tick.
func (h *Host) Update() error {
	in := h.input()
	if h.loading() {
		if in.Has(core.ActionQuit) {
			return ebiten.Termination
		}
		return nil
	}
	if !h.step(in, h.now()) {
		return ebiten.Termination
	}
	h.surface.Advance()
	return nil
}

// step applies due jump clears, then input, then one frame. It reports false
// when the user asked to quit.
func (h *Host) step(in core.InputFrame, now time.Time) bool {
	for _, tok := range h.timers.Due(now) {
		h.game.ClearJump(tok)
	}
	for _, a := range in.Ordered() {
		if a == core.ActionQuit {
			return false
		}
		h.react(h.game.Handle(a, now), now)
	}
	if h.game.Phase() == core.PhaseRunning {
		res, _ := h.game.Tick(h.game.Generation(), now)
		h.react(res, now)
	}
	return true
}

func (h *Host) react(res core.StepResult, now time.Time) {
	for _, e := range res.Events {
		switch e.Kind {
		case core.EventJumped:
			h.timers.Schedule(e.Token, now.Add(e.Delay))
		case core.EventStarted, core.EventIdle:
			h.timers.Reset()
			h.logger.Debug(e.Kind.String(), "session", h.game.Session().ID())
		case core.EventTierUp:
			h.logger.Debug("tier up", "tier", e.Tier, "score", e.Score, "speed", h.game.Session().Speed())
		case core.EventHighScore:
			h.logger.Info("new best score", "score", e.Score)
		case core.EventEnded:
			s := h.game.Session()
			h.logger.Info("run ended", "score", e.Score, "tier", e.Tier, "reason", e.Reason, "elapsed", s.Elapsed().Round(time.Millisecond))
			storage.RecordRun(h.store, flappy.ID, storage.Run{Score: e.Score, Tier: e.Tier, Duration: s.Elapsed()}, h.logger)
		case core.EventPaused, core.EventResumed:
			h.logger.Debug(e.Kind.String())
		}
	}
}

// Draw renders the game, or a progress line while sprites load.
func (h *Host) Draw(screen *ebiten.Image) {
	h.surface.Begin(screen)
	if h.loading() {
		settled, total := h.catalog.Progress()
		screen.Fill(colSky)
		f := h.game.Config().Field
		msg := fmt.Sprintf("loading %d/%d", settled, total)
		h.surface.shadowText(msg, int(f.Width/2)-len(msg)*glyphW/2, int(f.Height/2), colText)
		return
	}
	h.game.Render(h.surface)
}

// Layout keeps the logical screen at field size so world units are pixels.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	f := h.game.Config().Field
	return int(f.Width), int(f.Height)
}

var (
	activateKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyEnter}
	pauseKeys    = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
)

// pollInput collects the edges of this tick from every input device.
func pollInput() core.InputFrame {
	f := core.NewInputFrame()
	for _, k := range activateKeys {
		if inpututil.IsKeyJustPressed(k) {
			f.Set(core.ActionActivate)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.Set(core.ActionActivate)
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		f.Set(core.ActionActivate)
	}
	for _, k := range pauseKeys {
		if inpututil.IsKeyJustPressed(k) {
			f.Set(core.ActionPause)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		f.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		f.Set(core.ActionBack)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		f.Set(core.ActionQuit)
	}
	return f
}

// assetFS returns the asset directory as a filesystem, or nil when there is none.
func assetFS(dir string) fs.FS {
	if dir == "" {
		return nil
	}
	path, err := storage.ExpandHome(dir)
	if err != nil {
		return nil
	}
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		return nil
	}
	return os.DirFS(path)
}

// Run opens the window and blocks until it is closed.
func Run(game *flappy.Game, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tps := opts.TickRate
	if tps <= 0 {
		tps = 60
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fsys := assetFS(opts.AssetDir)
	if fsys == nil && opts.AssetDir != "" {
		logger.Warn("asset directory unavailable, drawing shapes", "dir", opts.AssetDir)
	}
	catalog := assets.NewCatalog(fsys, logger, assets.DefaultNames()...)
	catalog.Load(ctx)

	f := game.Config().Field
	ebiten.SetWindowSize(int(f.Width*scale), int(f.Height*scale))
	ebiten.SetWindowTitle("flappy")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	logger.Debug("opening window", "tps", tps, "scale", scale, "assets", opts.AssetDir)
	if err := ebiten.RunGame(NewHost(game, catalog, opts)); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
