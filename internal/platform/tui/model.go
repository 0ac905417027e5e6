package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ResultSaver records finished sessions.
type ResultSaver interface {
	SaveResult(r storage.Result) (int64, error)
}

// ResultFunc is called once per finished session with the save error, if any.
type ResultFunc func(r storage.Result, err error)

// GameModel runs one game variant. It is used directly by "snake play" and
// embedded in SessionModel for the menu flow.
type GameModel struct {
	game        registry.Game
	screen      *core.Screen
	saver       ResultSaver
	onResult    ResultFunc
	config      core.RuntimeConfig
	sessionID   string
	owner       uint64
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	standalone  bool // Back quits the program instead of returning to a menu
	quitting    bool
	backToMenu  bool
	resultSaved bool
}

// NewGameModel creates a model for the given game. A nil store disables
// persistence; an empty session ID gets a generated one.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sessionID string) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	var saver ResultSaver
	if store != nil {
		saver = store
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		saver:      saver,
		config:     cfg,
		sessionID:  sessionID,
		owner:      nextOwner(),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// OnResult returns a copy of the model that reports finished sessions to fn.
func (m GameModel) OnResult(fn ResultFunc) GameModel {
	m.onResult = fn
	return m
}

// Init resets the game and starts the frame clock.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.owner)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board is laid out from the screen size on every render,
		// so a resize never restarts the session.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Owner != m.owner {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionBack) {
		m.inputFrame.Clear()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}

	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case m.gameState.GameOver && !m.resultSaved:
		m.recordResult()
		m.resultSaved = true
	case !m.gameState.GameOver:
		// Restarted, the next finish is a new result
		m.resultSaved = false
	}

	return m, tickCmd(m.config.TickRate, m.owner)
}

func (m GameModel) recordResult() {
	outcome := storage.OutcomeLost
	if m.gameState.Won {
		outcome = storage.OutcomeWon
	}
	r := storage.Result{
		SessionID:  m.sessionID,
		Difficulty: m.game.ID(),
		Length:     m.gameState.Score,
		Outcome:    outcome,
		Ticks:      m.gameState.Ticks,
	}

	var err error
	if m.saver != nil {
		_, err = m.saver.SaveResult(r)
	}
	if m.onResult != nil {
		m.onResult(r, err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last frame.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user left the game.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game variant until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, onResult ResultFunc) error {
	model := NewGameModel(game, store, cfg, "").OnResult(onResult)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
