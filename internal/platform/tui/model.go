package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

// SolveMeta describes the puzzle being played, for solve records.
type SolveMeta struct {
	Rows    int
	Cols    int
	Picture string // Source image name, or "builtin"
}

// Model is the Bubble Tea model for running a puzzle session.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	meta       SolveMeta
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	inSession  bool // Esc returns to menu instead of quitting
	solveSaved bool // Whether the solve has been recorded for this shuffle
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, meta SolveMeta) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		meta:       meta,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// NewSessionGameModel creates a model for use inside a larger session flow,
// where Esc returns to the menu rather than ending the program.
func NewSessionGameModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, meta SolveMeta) Model {
	m := NewModel(game, store, cfg, meta)
	m.inSession = true
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if m.inSession {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse translates terminal mouse events into pointer events for the
// game. Mouse coordinates arrive in cells; the game works in the half-block
// pixel grid, so the pointer is placed at the center of the clicked cell in
// pixel space.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pos := core.Vec{
		X: float64(msg.X) + 0.5,
		Y: float64(msg.Y)*2 + 1.0,
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.inputFrame.AddPointer(core.PointerDown, pos)
		}
	case tea.MouseActionMotion:
		m.inputFrame.AddPointer(core.PointerMove, pos)
	case tea.MouseActionRelease:
		m.inputFrame.AddPointer(core.PointerUp, pos)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Update screen size
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Re-layout the board for the new dimensions. A reset rebuilds the
	// piece catalog and rescatters everything as singletons; assembly
	// progress does not survive a resize.
	m.game.Reset(m.config)
	m.solveSaved = false

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the solve once per completed shuffle
	if m.gameState.Solved && !m.solveSaved {
		if m.store != nil && m.config.TickRate > 0 {
			entry := storage.SolveEntry{
				Rows:         m.meta.Rows,
				Cols:         m.meta.Cols,
				Pieces:       m.gameState.Pieces,
				Moves:        m.gameState.Moves,
				DurationSecs: m.gameState.Ticks / m.config.TickRate,
				Picture:      m.meta.Picture,
			}
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveSolve(entry)
		}
		m.solveSaved = true
	}
	if !m.gameState.Solved {
		m.solveSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".jigsaw", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig, meta SolveMeta) error {
	model := NewModel(game, store, cfg, meta)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drag is the primary input
	)

	_, err := p.Run()
	return err
}
