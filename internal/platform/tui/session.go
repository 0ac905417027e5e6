package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

type screen int

const (
	screenMenu screen = iota
	screenDifficulty
	screenGame
	screenScores
)

// SessionModel manages the full flow of one player:
// main menu -> difficulty dialog -> game -> main menu, plus the scoreboard.
// It backs both "snake menu" and every SSH connection.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	sessionID  string
	onResult   ResultFunc
	screen     screen
	menu       MenuModel
	difficulty DifficultyModel
	scoreboard ScoreboardModel
	game       *GameModel
	games      int64 // Games started, offsets the seed of each new one
	quitting   bool
}

// NewSessionModel creates a new session model starting at the main menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, sessionID string, onResult ResultFunc) SessionModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	return SessionModel{
		store:     store,
		config:    cfg,
		sessionID: sessionID,
		onResult:  onResult,
		menu:      NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenDifficulty:
		return m.updateDifficulty(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	// The menu quits its own program on every choice; here it only switches screens
	switch m.menu.Choice() {
	case MenuChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuChoiceNewGame:
		return m.showDifficulty(), nil
	case MenuChoiceScores:
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) showDifficulty() SessionModel {
	cfg, err := snake.Difficulties()
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	m.difficulty = NewDifficultyModel(cfg, m.config.ScreenW, m.config.ScreenH)
	m.screen = screenDifficulty
	return m
}

func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.store, m.config)
	m.game = nil
	m.screen = screenMenu
	return m, m.menu.Init()
}

func (m SessionModel) updateDifficulty(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.difficulty.Update(msg)
	if d, ok := newModel.(DifficultyModel); ok {
		m.difficulty = d
	}

	switch {
	case m.difficulty.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.difficulty.WantsBack():
		return m.showMenu()
	case m.difficulty.Selected() != nil:
		return m.startGame(*m.difficulty.Selected())
	}

	return m, cmd
}

func (m SessionModel) startGame(preset config.DifficultyPreset) (tea.Model, tea.Cmd) {
	game, err := registry.Create(string(preset))
	if err != nil {
		// The dialog only lists registered presets
		return m.showMenu()
	}

	cfg := m.config
	cfg.Seed += m.games
	m.games++

	gm := NewGameModel(game, m.store, cfg, m.sessionID).OnResult(m.onResult)
	m.game = &gm
	m.screen = screenGame
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(GameModel); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.showMenu()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.showMenu()
	}

	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenDifficulty:
		return m.difficulty.View()
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu flow locally until the user quits.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, onResult ResultFunc) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, "", onResult),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
