package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gunner/internal/core"
	"github.com/vovakirdan/gunner/internal/platform/tui"
	"github.com/vovakirdan/gunner/internal/registry"
	"github.com/vovakirdan/gunner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing in this terminal.

Controls:
  Space        - Fire straight up
  Left/H       - Fire and steer left
  Right/L      - Fire and steer right
  Mouse click  - Fire and steer toward the clicked column
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot to ~/.gunner/screenshots
  Ctrl+Y       - Copy the screen to the clipboard
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - One starting asteroid, wider steering, progression from zero
  normal - Starts at 30% difficulty, progresses to max
  hard   - Four starting asteroids, tighter steering, starts at 70%
  fixed  - No progression

Examples:
  gunner play
  gunner play --difficulty hard
  gunner play --seed 42 --fps 30
  gunner play --config ./my-gunner.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := gameArg(args)
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gunner list' to see available games.")
		os.Exit(1)
	}

	applyGameFlags()

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works, scores just aren't kept
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
