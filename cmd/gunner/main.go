// gunner is a terminal asteroid shooter.
//
// Usage:
//
//	gunner list              - List available games
//	gunner play [game]       - Play a game (default: gunner)
//	gunner serve             - Start SSH server for remote play
//	gunner scores [game]     - Show high scores for a game
//	gunner record            - Run a headless seeded game and save its frames
//	gunner inspect <file>    - Summarize a recorded frame file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.gunner/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gunner/internal/config"
	"github.com/vovakirdan/gunner/internal/games/gunner"
)

const defaultGame = "gunner"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gunner",
	Short: "Gunner - shoot falling asteroids in your terminal",
	Long: `Gunner is a terminal shoot-'em-up: a ship at the bottom of the screen
fires at asteroids falling from the top. Large asteroids break into
fragments, and the run ends when any rock reaches the ship.

Available commands:
  list     - Show all available games
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  record   - Run a headless game and save msgpack frames
  inspect  - Summarize a recorded frame file

Examples:
  gunner play
  gunner play --difficulty hard
  gunner serve --ssh :2222
  gunner scores -i
  gunner record --seed 7 --ticks 1200 --out run.frames`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gunner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(inspectCmd)
}

// newLogger builds the stderr logger used by the non-interactive commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gunner",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// applyGameFlags hands --config and --difficulty to the game package before
// any game instance is created.
func applyGameFlags() {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Warning: unknown difficulty %q, using config defaults\n", flagDifficulty)
	}
	gunner.SetConfigPath(flagConfig)
	gunner.SetDifficultyPreset(flagDifficulty)
}

// gameArg returns the game named on the command line, or the default.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}
