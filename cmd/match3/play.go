package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [ruleset]",
	Short: "Play match-3",
	Long: `Start playing straight away, skipping the ruleset picker.

Controls:
  Arrows/WASD/hjkl  - Move the cursor
  Enter/Space       - Select a tile, then a neighbour to swap
  T                 - Show a hint
  Esc               - Back (game over screen)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 90s levels and more power tiles, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - 45s levels, steeper goals, fewer power tiles
  fixed  - No progression, stays at config's initial level

Examples:
  match3 play
  match3 play --difficulty easy
  match3 play match3_commit
  match3 play --config ./my-match3.yaml --bell`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func validPreset(name string) bool {
	_, ok := config.ParsePreset(name)
	return ok
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, or returns nil so the game still runs.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("no score storage", "error", err)
		return nil
	}
	return store
}

func gameOptions() tui.Options {
	opts := tui.Options{Logger: logger}
	if flagBell {
		opts.Bell = os.Stdout
	}
	return opts
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := match3.IDClassic
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown ruleset %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available rulesets.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig(), gameOptions())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runSession starts the ruleset picker, games and scoreboard in one program.
func runSession(_ *cobra.Command, _ []string) {
	store := openStore()
	runErr := tui.RunSession(store, runtimeConfig(), gameOptions())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
