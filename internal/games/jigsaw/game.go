// Package jigsaw implements the jigsaw puzzle: an image cut into a grid of
// interlocking pieces that the player drags together until every piece
// joins a single cluster.
//
// The package is pure game logic. Asset decoding, frame scheduling, pointer
// translation and audio playback live with the platform; the game only
// needs decoded pixels and an optional "play feedback cue" callback.
package jigsaw

import (
	"image"
	"math/rand"

	"github.com/vovakirdan/tui-jigsaw/internal/assets"
	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

// Package-level knobs set from the CLI before the game starts. The CLI is
// single-session so these are written once, from one goroutine; anything
// that runs games concurrently must use NewWithOptions instead.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	gridOverride     config.GridConfig
	sourceImage      image.Image
	snapCue          func()
)

// Options fixes every knob for a single game instance. A game created with
// NewWithOptions never reads the package-level setters, so several games
// can reset and run on separate goroutines (one per SSH session) without
// sharing any state.
type Options struct {
	ConfigPath string
	Difficulty config.DifficultyPreset
	Grid       config.GridConfig
	Source     image.Image
	SnapCue    func()
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects a grid-size preset by name.
// Unknown names leave the configured grid untouched.
func SetDifficultyPreset(preset string) {
	switch config.DifficultyPreset(preset) {
	case config.DifficultyEasy, config.DifficultyNormal,
		config.DifficultyHard, config.DifficultyExpert:
		difficultyPreset = config.DifficultyPreset(preset)
	default:
		difficultyPreset = ""
	}
}

// SetGrid overrides the board dimensions directly. Zero values keep the
// configured grid.
func SetGrid(rows, cols int) {
	gridOverride = config.GridConfig{Rows: rows, Cols: cols}
}

// SetSourceImage supplies the decoded puzzle picture. When none is set the
// built-in procedural picture is used.
func SetSourceImage(img image.Image) {
	sourceImage = img
}

// SetSnapCue installs the feedback callback invoked on a successful snap.
// Nil disables feedback.
func SetSnapCue(cue func()) {
	snapCue = cue
}

// Game implements the jigsaw puzzle logic.
type Game struct {
	// Configuration. opts is nil for games built with New, which read the
	// package-level knobs on every Reset.
	opts    *Options
	runtime core.RuntimeConfig
	cfg     config.JigsawConfig
	rng     *rand.Rand

	// Viewport in pixels (one cell wide, two cells tall)
	viewW, viewH int

	// Immutable catalog, rebuilt wholesale on any re-layout
	board   Board
	edges   *EdgeSet
	pieces  []Piece
	picture *image.RGBA // Source picture scaled to exact board size

	// Mutable play state
	clusters *Clusters
	drag     dragSession
	ghost    bool
	paused   bool
	tick     int
	moves    int
	snapCue  func()

	// Layout guard
	minScreenW, minScreenH int
	screenTooSmall         bool
}

// New creates a new jigsaw game instance configured through the
// package-level setters.
func New() *Game {
	return &Game{}
}

// NewWithOptions creates a game whose configuration is fixed per instance.
func NewWithOptions(opts Options) *Game {
	return &Game{opts: &opts}
}

// ID returns the identifier used for solve storage.
func (g *Game) ID() string {
	return "jigsaw"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Jigsaw Puzzle"
}

// Reset lays the puzzle out for the given runtime config and scatters the
// pieces. Called at start and again on terminal resize; a re-layout
// destroys and rebuilds every piece and resets all clusters to singletons.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	opts := g.opts
	if opts == nil {
		opts = &Options{
			ConfigPath: configPath,
			Difficulty: difficultyPreset,
			Grid:       gridOverride,
			Source:     sourceImage,
			SnapCue:    snapCue,
		}
	}

	cfg, err := config.LoadJigsaw(opts.ConfigPath)
	if err != nil {
		cfg = config.DefaultJigsawConfig()
	}
	if opts.Difficulty != "" {
		config.ApplyJigsawPreset(&cfg, opts.Difficulty)
	}
	if opts.Grid.Rows > 0 {
		cfg.Grid.Rows = opts.Grid.Rows
	}
	if opts.Grid.Cols > 0 {
		cfg.Grid.Cols = opts.Grid.Cols
	}
	g.cfg = cfg
	g.snapCue = opts.SnapCue

	g.viewW = runtime.ScreenW
	g.viewH = runtime.ScreenH * 2

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
	if g.screenTooSmall {
		return
	}

	src := opts.Source
	if src == nil {
		pad := cfg.Layout.Padding
		src = assets.Placeholder(g.viewW-2*pad, g.viewH-2*pad)
	}
	srcBounds := src.Bounds()

	g.board = NewBoard(cfg.Grid.Rows, cfg.Grid.Cols,
		g.viewW, g.viewH, cfg.Layout.Padding,
		srcBounds.Dx(), srcBounds.Dy())
	g.picture = assets.ScaleTo(src, int(g.board.W+0.5), int(g.board.H+0.5))

	g.edges = BuildEdges(g.board.Rows, g.board.Cols, g.board.CellW, g.board.CellH)
	g.pieces = BuildPieces(g.board, g.edges)

	g.clusters = NewClusters()
	g.clusters.CreateSingletons(len(g.pieces))

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.drag = dragSession{}
	g.ghost = false
	g.paused = false
	g.tick = 0
	g.moves = 0

	g.shuffleClusters()
}

// Solved reports whether every piece belongs to one cluster.
func (g *Game) Solved() bool {
	return g.clusters != nil && g.clusters.Count() == 1
}

// Step advances the game by one tick: actions first, then pointer events
// in arrival order, then the drag easing. Merges happen inside endDrag, so
// cluster membership and the piece index are already consistent by the
// time this tick's state is observed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			// Pointer events are dropped while paused, so the button
			// state would be stale by unpause. End the drag here.
			g.cancelDrag()
		}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionGhost) {
		g.ghost = !g.ghost
	}
	if in.Has(core.ActionShuffle) {
		g.cancelDrag()
		g.shuffleClusters()
		g.tick = 0
	}
	if in.Has(core.ActionReset) {
		g.cancelDrag()
		g.resetPositions()
	}

	for _, ev := range in.Pointer {
		switch ev.Kind {
		case core.PointerDown:
			g.beginDrag(ev.Pos)
		case core.PointerMove:
			g.moveDrag(ev.Pos)
		case core.PointerUp:
			g.endDrag()
		case core.PointerCancel:
			g.cancelDrag()
		}
	}

	g.updateDrag()

	if !g.Solved() {
		g.tick++
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	clusters := 0
	if g.clusters != nil {
		clusters = g.clusters.Count()
	}
	return core.GameState{
		Clusters: clusters,
		Pieces:   len(g.pieces),
		Moves:    g.moves,
		Ticks:    g.tick,
		Solved:   g.Solved(),
		Paused:   g.paused,
	}
}
