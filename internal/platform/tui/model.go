package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configures the terminal host.
type Options struct {
	Runtime       core.RuntimeConfig
	Store         *storage.Store // run history; nil keeps nothing
	Logger        *log.Logger
	ScreenshotDir string // empty means ~/.arcade/screenshots
}

// Model is the Bubble Tea model running one flappy game.
type Model struct {
	game     *flappy.Game
	screen   *core.Screen
	surface  *ScreenSurface
	store    *storage.Store
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	tickRate int
	shotDir  string
	status   string
	quitting bool
	now      func() time.Time
}

// NewModel creates a model for game. The screen keeps one row for the help footer.
func NewModel(game *flappy.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			shotDir = filepath.Join(home, ".arcade", "screenshots")
		}
	}

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1))
	return Model{
		game:     game,
		screen:   screen,
		surface:  NewScreenSurface(screen),
		store:    opts.Store,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tickRate: cfg.TickRate,
		shotDir:  shotDir,
		now:      time.Now,
	}
}

// Init sets the window title. No frames run until the game starts.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("flappy")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m, m.react(m.game.Handle(core.ActionActivate, m.now()))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case jumpClearMsg:
		m.game.ClearJump(msg.Token)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Actions go to the game at once; there
// are no frames to batch them into while paused or on the title screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.status = m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}
	m.status = ""
	return m, m.react(m.game.Handle(action, m.now()))
}

// handleTick runs one frame. The chain continues only while the game accepts
// frames of this generation; stale chains end here.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	res, ok := m.game.Tick(msg.Gen, msg.Time)
	cmd := m.react(res)
	if ok {
		cmd = tea.Batch(cmd, tickCmd(m.tickRate, msg.Gen))
	}
	return m, cmd
}

// react turns game events into commands and side effects.
func (m Model) react(res core.StepResult) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range res.Events {
		switch e.Kind {
		case core.EventStarted, core.EventResumed:
			m.logger.Debug(e.Kind.String(), "session", m.game.Session().ID())
			cmds = append(cmds, tickCmd(m.tickRate, m.game.Generation()))
		case core.EventJumped:
			cmds = append(cmds, jumpClearCmd(e.Token, e.Delay))
		case core.EventTierUp:
			m.logger.Debug("tier up", "tier", e.Tier, "score", e.Score, "speed", m.game.Session().Speed())
		case core.EventHighScore:
			m.logger.Info("new best score", "score", e.Score)
		case core.EventEnded:
			m.recordRun(e)
		case core.EventPaused, core.EventIdle:
			m.logger.Debug(e.Kind.String())
		}
	}
	return tea.Batch(cmds...)
}

// recordRun writes a finished run to the history. Runs without a point are skipped.
func (m Model) recordRun(e core.Event) {
	s := m.game.Session()
	m.logger.Info("run ended", "score", e.Score, "tier", e.Tier, "reason", e.Reason, "elapsed", s.Elapsed().Round(time.Millisecond))
	storage.RecordRun(m.store, flappy.ID, storage.Run{Score: e.Score, Tier: e.Tier, Duration: s.Elapsed()}, m.logger)
}

// saveScreenshot writes the current frame as plain text and returns a status line.
func (m Model) saveScreenshot() string {
	m.game.Render(m.surface)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", m.shotDir, "err", err)
		return "screenshot failed"
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", flappy.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot write screenshot", "path", path, "err", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.surface)

	footer := m.help.View(m.keys.ForPhase(m.game.Phase()))
	if m.status != "" {
		footer = m.status
	}
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(footer)
}

// Run starts the Bubble Tea program for game.
func Run(game *flappy.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
