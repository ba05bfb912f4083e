package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jigsaw/internal/assets"
	"github.com/vovakirdan/tui-jigsaw/internal/audio"
	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/games/jigsaw"
	"github.com/vovakirdan/tui-jigsaw/internal/platform/tui"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

var (
	flagImage      string
	flagRows       int
	flagCols       int
	flagConfig     string
	flagDifficulty string
	flagNoSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a puzzle",
	Long: `Cut a picture into pieces, scatter them, and start solving.

Without --image a built-in procedural picture is used.

Controls:
  Mouse      - Drag pieces (snapping happens on release)
  S          - Shuffle pieces again
  R          - Return all pieces to their solved position
  G          - Toggle ghost preview of the full picture
  P          - Pause
  Q/Ctrl+C   - Quit

Difficulty presets:
  easy   - 3x4 grid (12 pieces)
  normal - 4x6 grid (24 pieces)
  hard   - 6x9 grid (54 pieces)
  expert - 8x12 grid (96 pieces)

Examples:
  jigsaw play
  jigsaw play --image ./photo.png
  jigsaw play --difficulty expert
  jigsaw play --rows 5 --cols 8
  jigsaw play --config ./my-jigsaw.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagImage, "image", "", "Path to source image (PNG, JPEG, GIF, BMP, TIFF, WebP)")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Grid rows (overrides config and difficulty)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Grid columns (overrides config and difficulty)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, expert")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable the snap sound cue")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
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

	// Resolve the effective game config for metadata and audio settings.
	// The game loads its own copy through the same path on Reset.
	jcfg, err := config.LoadJigsaw(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		jcfg = config.DefaultJigsawConfig()
	}
	if flagDifficulty != "" {
		config.ApplyJigsawPreset(&jcfg, config.DifficultyPreset(flagDifficulty))
	}
	if flagRows > 0 && flagCols > 0 {
		jcfg.Grid.Rows = flagRows
		jcfg.Grid.Cols = flagCols
	}

	// Configure the game before creation
	jigsaw.SetConfigPath(flagConfig)
	jigsaw.SetDifficultyPreset(flagDifficulty)
	if flagRows > 0 && flagCols > 0 {
		jigsaw.SetGrid(flagRows, flagCols)
	}

	// Load the source image, if given
	picture := "builtin"
	if flagImage != "" {
		img, imgErr := assets.LoadImage(flagImage)
		if imgErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading image: %v\n", imgErr)
			os.Exit(1)
		}
		jigsaw.SetSourceImage(img)
		picture = filepath.Base(flagImage)
	}

	// Snap sound cue
	if jcfg.Audio.Enabled && !flagNoSound {
		cue, cueErr := audio.NewCue(jcfg.Audio.Cue)
		if cueErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", cueErr)
		} else {
			jigsaw.SetSnapCue(cue.Play)
			defer cue.Close()
		}
	}

	game := jigsaw.New()

	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	meta := tui.SolveMeta{
		Rows:    jcfg.Grid.Rows,
		Cols:    jcfg.Grid.Cols,
		Picture: picture,
	}

	// Run the game
	runErr := tui.Run(game, store, cfg, meta)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
