package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// Model is the Bubble Tea model that drives one game: it schedules ticks,
// collects input between them, records finished runs on the leaderboard
// and switches to the scoreboard screen on request.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	fixedSeed  bool
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	ticking    bool
	scoreSaved bool
	lastScore  int64 // Leaderboard ID of the last recorded run
	startedAt  time.Time
	board      ScoreboardModel
	showBoard  bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil store disables the leaderboard; a nil logger discards log output.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fixedSeed := cfg.Seed != 0
	// Use time-based seed if not specified
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		player:     player,
		fixedSeed:  fixedSeed,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		ticking:    true,
		startedAt:  time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "player", m.player, "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

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

	if m.showBoard {
		return m.updateBoard(msg)
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionRestart:
		if m.gameState.GameOver {
			return m.restart()
		}
		return m, nil
	case core.ActionBack:
		if m.gameState.GameOver {
			m.openBoard()
		}
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// updateBoard forwards a message to the scoreboard and handles leaving it.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.board.Closed() {
		m.showBoard = false
		if m.board.WantsRestart() {
			return m.restart()
		}
	}

	return m, cmd
}

// openBoard switches to the scoreboard with the last run selected.
func (m *Model) openBoard() {
	m.board = NewScoreboardModel(m.store, m.game.ID(), m.game.Title(), m.config.ScreenW, m.config.ScreenH)
	if m.lastScore != 0 {
		m.board.Highlight(m.lastScore)
	}
	m.showBoard = true
}

// handleResize processes window resize events. The world is scaled to the
// screen on every render, so the running game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.showBoard {
		return m.updateBoard(msg)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordScore()
	}

	// The game asked to stop being driven
	if !result.Ticking {
		m.ticking = false
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run and resumes ticking.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.scoreSaved = false
	m.ticking = true
	m.startedAt = time.Now()

	m.logger.Info("game started", "game", m.game.ID(), "player", m.player, "seed", m.config.Seed)

	return m, tickCmd(m.config.TickRate)
}

// recordScore stores the final score once. Leaderboard failures are logged
// and otherwise ignored.
func (m *Model) recordScore() {
	m.scoreSaved = true
	score := m.gameState.Score

	m.logger.Info("game over",
		"game", m.game.ID(),
		"player", m.player,
		"score", score,
		"duration", time.Since(m.startedAt).Round(time.Second),
	)

	if m.store == nil {
		return
	}

	id, err := m.store.SaveScore(m.game.ID(), m.player, score)
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.lastScore = id
}

// saveScreenshot saves the current screen as plain text in the temp directory.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(os.TempDir(), filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showBoard {
		return m.board.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Ticking reports whether the model is still scheduling simulation ticks.
func (m Model) Ticking() bool {
	return m.ticking
}

// ShowingScores reports whether the scoreboard screen is active.
func (m Model) ShowingScores() bool {
	return m.showBoard
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) error {
	model := NewModel(game, store, logger, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
