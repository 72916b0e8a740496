// arcade is a hub of mini-games for the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade hub               - Show the game catalog as cards
//	arcade play <game>       - Play a game
//	arcade scores [game]     - Browse the score history
//	arcade serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set display frame rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--catalog <path>   - Use a custom hub catalog
//	--debug            - Verbose logging
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register every game
	_ "github.com/vovakirdan/arcade-hub/internal/games/all"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagCatalog string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade Hub - ten mini-games in your terminal",
	Long: `Arcade Hub is a collection of classic mini-games for the terminal:
Snake, Tetris, Pong, Breakout, Space Invaders, Memory Match, Balloon Pop,
Picture Puzzle, Simon Says and Whack-a-Mole.

Available commands:
  list     - Show all available games
  hub      - Show the game catalog as cards
  play     - Play a specific game
  scores   - Browse high scores
  serve    - Start SSH server for remote play

Examples:
  arcade list
  arcade play snake
  arcade play tetris --difficulty hard
  arcade serve --ssh :2222
  arcade scores puzzle`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Display frame rate (redraws per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Path to a hub catalog YAML (default: built-in)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(hubCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// openLogFile returns a logger writing to ~/.arcade/arcade.log, since the
// terminal belongs to the game while it runs. The returned func closes the file.
func openLogFile() (*log.Logger, func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "arcade"})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}

// checkGame reports an unknown game id with a hint.
func checkGame(id string) error {
	if registry.Exists(id) {
		return nil
	}
	return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", id)
}
