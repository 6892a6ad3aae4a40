package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/gui"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagGUI        bool
	flagAssets     string
	flagScale      float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the terminal, or in a window with --gui.

Controls:
  Space/Up/W/Enter/click - Start, flap
  P/Esc                  - Pause, resume
  R                      - Restart (after game over)
  B                      - Back to the title screen (paused or game over)
  Ctrl+S                 - Screenshot (terminal only)
  Q/Ctrl+C               - Quit

Difficulty options:
  easy   - Slower pipes, longer spawn interval, wider gaps
  normal - The configured values
  hard   - Faster pipes, shorter spawn interval, narrower gaps
  fixed  - No progression, stays at the starting tier

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --gui --assets ~/.arcade/assets/flappy
  flappy play --config ./my-flappy.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a window instead of the terminal")
	playCmd.Flags().StringVar(&flagAssets, "assets", "~/.arcade/assets/flappy", "Sprite directory for the window (missing sprites are drawn as shapes)")
	playCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the play field")
}

// loadGameConfig resolves the config file and applies the difficulty preset.
func loadGameConfig() (config.FlappyConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	return config.LoadFlappyPreset(flagConfig, preset)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(!flagGUI)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game := flappy.New(cfg, seed, storage.NewBestKeeper(store, flappy.ID, logger))
	logger.Debug("game created", "seed", seed, "best", game.Best(), "difficulty", flagDifficulty)

	if flagGUI {
		err = gui.Run(game, gui.Options{
			TickRate: flagFPS,
			Scale:    flagScale,
			AssetDir: flagAssets,
			Store:    store,
			Logger:   logger,
		})
	} else {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.Run(game, tui.Options{
			Runtime: core.RuntimeConfig{
				ScreenW:  width,
				ScreenH:  height,
				TickRate: flagFPS,
				Seed:     seed,
			},
			Store:  store,
			Logger: logger,
		})
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
