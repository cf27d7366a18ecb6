package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/game"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Model is the Bubble Tea model for a play session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	highScore  int
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model around an engine.
func NewModel(rules game.Config, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g := game.New(rules)
	g.Reset(cfg.Seed)

	m := Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   DefaultKeyMap(),
	}

	if store != nil {
		if best, err := store.HighScore(); err == nil {
			m.highScore = best
		}
	}

	return m
}

// Init starts the gravity loop.
func (m Model) Init() tea.Cmd {
	return gravityCmd(m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case GravityMsg:
		return m.handleGravity()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.ActionFor(msg)

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		// The gravity chain from Init keeps running across restarts, so no
		// new tick command here or ticks would double up.
		if m.game.Apply(core.ActionRestart) {
			m.scoreSaved = false
		}
		return m, nil
	}

	m.game.Apply(action)
	m.maybeSaveScore() // Hard drop can end the game
	return m, nil
}

// handleGravity advances the piece one row and reschedules the next tick at
// the current level's interval. Ticks keep flowing while paused or after game
// over; the engine ignores them.
func (m Model) handleGravity() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	m.game.Tick()
	m.maybeSaveScore()

	return m, gravityCmd(m.game.TickInterval())
}

// maybeSaveScore persists the final score once per game over.
func (m *Model) maybeSaveScore() {
	if !m.game.GameOver() || m.scoreSaved {
		return
	}

	if score := m.game.Score(); score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(score, m.game.Lines(), m.game.Level())
		}
		if score > m.highScore {
			m.highScore = score
		}
	}
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.game.Snapshot(), m.highScore)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local play session.
func Run(rules game.Config, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(rules, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
