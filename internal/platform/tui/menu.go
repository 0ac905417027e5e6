package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// MenuChoice is what the user picked in the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoiceNewGame
	MenuChoiceScores
	MenuChoiceQuit
)

type menuItem struct {
	label  string
	choice MenuChoice
}

var mainMenuItems = []menuItem{
	{"New Game", MenuChoiceNewGame},
	{"High Scores", MenuChoiceScores},
	{"Quit", MenuChoiceQuit},
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	best      []string // Best length per difficulty, preformatted
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		best:      bestLengths(store),
		keyMapper: NewKeyMapper(),
	}
}

func bestLengths(store *storage.Store) []string {
	if store == nil {
		return nil
	}

	var best []string
	for _, p := range config.AllPresets() {
		high, err := store.HighScore(string(p))
		if err != nil || high == 0 {
			continue
		}
		best = append(best, fmt.Sprintf("%s %d", p.Title(), high))
	}
	return best
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(mainMenuItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = mainMenuItems[m.cursor].choice
		return m, tea.Quit

	case MenuActionScoreboard:
		m.choice = MenuChoiceScores
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == MenuChoiceQuit {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  S N A K E  ", m.width))
	b.WriteString("\n\n")

	for i, item := range mainMenuItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.label, m.width))
		b.WriteString("\n")
	}

	if len(m.best) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText("Best: "+strings.Join(m.best, "  "), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the menu entry the user picked.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
