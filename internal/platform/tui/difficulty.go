package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// DifficultyModel is the "choose difficulty" dialog shown before a new game.
type DifficultyModel struct {
	presets    []config.DifficultyPreset
	details    map[config.DifficultyPreset]string
	cursor     int
	width      int
	height     int
	keyMapper  *KeyMapper
	selected   *config.DifficultyPreset
	quitting   bool
	back       bool
	exitOnBack bool
}

// NewDifficultyModel creates the dialog. Presets that fail validation in
// cfg are still listed, the game reports the error when started.
func NewDifficultyModel(cfg config.SnakeConfig, width, height int) DifficultyModel {
	presets := config.AllPresets()
	details := make(map[config.DifficultyPreset]string, len(presets))
	cursor := 0

	for i, p := range presets {
		if p == cfg.Default {
			cursor = i
		}
		d, err := cfg.Preset(p)
		if err != nil {
			details[p] = err.Error()
			continue
		}
		details[p] = d.String()
	}

	return DifficultyModel{
		presets:   presets,
		details:   details,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		p := m.presets[m.cursor]
		m.selected = &p
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		if m.exitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// View renders the dialog.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))

	b.WriteString("\n")
	b.WriteString(centerText("CHOOSE DIFFICULTY", m.width))
	b.WriteString("\n\n")
	b.WriteString(hint.Render(centerText("Difficulty sets the field size, the snake's speed,", m.width)))
	b.WriteString("\n")
	b.WriteString(hint.Render(centerText("how much food appears and how long it lasts.", m.width)))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		if i == m.cursor {
			b.WriteString(active.Render(centerText(fmt.Sprintf("> %-7s %s", p.Title(), m.details[p]), m.width)))
		} else {
			b.WriteString(centerText(fmt.Sprintf("  %-7s %s", p.Title(), m.details[p]), m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Start  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or nil while still choosing.
func (m DifficultyModel) Selected() *config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector shows the dialog on its own. It returns nil when the
// user backs out or quits.
func RunDifficultySelector(cfg config.SnakeConfig, rc core.RuntimeConfig) (*config.DifficultyPreset, error) {
	model := NewDifficultyModel(cfg, rc.ScreenW, rc.ScreenH)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
