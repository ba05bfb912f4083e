package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jigsaw/internal/audio"
	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/games/jigsaw"
	"github.com/vovakirdan/tui-jigsaw/internal/platform/tui"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive difficulty picker",
	Long: `Start the puzzle in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a difficulty.
After quitting a puzzle you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select difficulty
  Tab          - View solve board
  Q            - Quit

Examples:
  jigsaw menu
  jigsaw menu --fps 30
  jigsaw menu --db ./solves.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Snap sound cue, shared across games in this session
	var cue *audio.Cue
	if c, cueErr := audio.NewCue(""); cueErr == nil {
		cue = c
		jigsaw.SetSnapCue(cue.Play)
	}

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants the solve board
		if menuResult.WantsSolves {
			goBack, sbErr := tui.RunSolves(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the solve board
		}

		// Configure the game for the chosen difficulty
		jigsaw.SetDifficultyPreset(string(menuResult.Preset))
		game := jigsaw.New()

		grid := config.GridForPreset(menuResult.Preset)
		meta := tui.SolveMeta{Rows: grid.Rows, Cols: grid.Cols, Picture: "builtin"}

		// Update seed for each game
		cfg.Seed = time.Now().UnixNano()

		// Run the game
		if err := tui.Run(game, store, cfg, meta); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if cue != nil {
		cue.Close()
	}
	if store != nil {
		store.Close()
	}
}
