package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-hub/internal/audio"
	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/platform/tui"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagVolume     float64
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Move
  Space       - Fire, launch, drop, pop
  Enter       - Start, flip, pick up
  P/Esc       - Pause
  R           - Restart (after game over)
  B           - Back to the title (after game over)
  Tab / 1-3   - Change difficulty (between runs)
  + / - / M   - Volume up, down, mute
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower, more time
  medium - Default tuning
  hard   - Faster, less time

The selected difficulty is remembered per game.

Examples:
  arcade play snake
  arcade play invaders --difficulty hard
  arcade play simon --volume 0.8
  arcade play breakout --config ./my-breakout.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard (default: last used)")
	playCmd.Flags().Float64Var(&flagVolume, "volume", audio.DefaultVolume, "Volume from 0 to 1")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if err := checkGame(gameID); err != nil {
		return err
	}

	logger, closeLog, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger, closeLog = log.New(io.Discard), func() {}
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		FrameRate:  flagFPS,
		Seed:       flagSeed,
		ConfigPath: flagConfig,
	}

	// Open score storage. Without it scores last for this run only.
	var local *storage.Local
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
		local = storage.NewLocal(nil, logger)
	} else {
		defer store.Close()
		local = storage.NewLocal(store, logger)
	}

	if flagDifficulty != "" {
		level, ok := core.ParseLevel(flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Warning: unknown difficulty %q, using %s\n", flagDifficulty, level)
		}
		cfg.Difficulty = config.ForLevel(level)
		local.SetDifficulty(gameID, level)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	var snd audio.Source
	if flagMute {
		snd = &audio.Silent{}
	} else {
		snd = audio.NewSynth(gameID, audio.WithSynthLogger(logger))
	}
	snd.SetVolume(flagVolume)

	logger.Info("starting game", "game", gameID, "width", width, "height", height, "seed", flagSeed)
	if err := tui.Run(game, tui.Options{
		Config: cfg,
		Local:  local,
		Store:  store,
		Audio:  snd,
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("game stopped: %w", err)
	}
	return nil
}
