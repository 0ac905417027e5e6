package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

type fakeSaver struct {
	results []storage.Result
}

func (f *fakeSaver) SaveResult(r storage.Result) (int64, error) {
	f.results = append(f.results, r)
	return int64(len(f.results)), nil
}

// newTestGameModel runs a 10x6 board where one frame is exactly one tick.
func newTestGameModel(t *testing.T) (GameModel, *fakeSaver) {
	t.Helper()
	game := snake.NewWithDifficulty(config.DifficultyCustom, config.DifficultyConfig{
		Label:          "Test",
		Width:          10,
		Height:         6,
		TickMS:         100,
		MaxFood:        0,
		FoodLifetimeMS: 1000,
	})

	saver := &fakeSaver{}
	m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1}, "s-1")
	m.saver = saver
	m.Init()
	return m, saver
}

func send(m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(GameModel), cmd
}

func (m GameModel) frame() tea.Msg {
	return TickMsg{Time: time.Now(), Owner: m.owner}
}

func TestGameModelSavesResultOnce(t *testing.T) {
	m, saver := newTestGameModel(t)

	var reported []storage.Result
	m = m.OnResult(func(r storage.Result, err error) {
		if err != nil {
			t.Errorf("unexpected save error: %v", err)
		}
		reported = append(reported, r)
	})

	m, _ = send(m, runeKey(" "))
	for i := 0; i < 20; i++ {
		m, _ = send(m, m.frame())
	}

	if !m.State().GameOver {
		t.Fatal("snake should have hit the wall")
	}
	if len(saver.results) != 1 || len(reported) != 1 {
		t.Fatalf("saved %d and reported %d results, expected 1 each", len(saver.results), len(reported))
	}

	r := saver.results[0]
	if r.SessionID != "s-1" || r.Difficulty != "custom" || r.Outcome != storage.OutcomeLost || r.Length != 3 {
		t.Errorf("unexpected result %+v", r)
	}
	if r.Ticks != 8 {
		t.Errorf("Ticks = %d, expected 8", r.Ticks)
	}
}

func TestGameModelPlayAgain(t *testing.T) {
	m, saver := newTestGameModel(t)

	m, _ = send(m, runeKey(" "))
	for i := 0; i < 20; i++ {
		m, _ = send(m, m.frame())
	}

	m, _ = send(m, runeKey("y"))
	m, _ = send(m, m.frame())
	if m.State().GameOver || m.State().Ticks != 0 {
		t.Fatalf("y should start a new game, state %+v", m.State())
	}

	m, _ = send(m, runeKey(" "))
	for i := 0; i < 20; i++ {
		m, _ = send(m, m.frame())
	}
	if len(saver.results) != 2 {
		t.Errorf("saved %d results, expected one per finished game", len(saver.results))
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	m, _ := newTestGameModel(t)

	m, _ = send(m, runeKey(" "))
	m, cmd := send(m, TickMsg{Time: time.Now(), Owner: m.owner + 1})
	if cmd != nil {
		t.Error("a stale tick should not schedule another one")
	}
	if m.State().Ticks != 0 {
		t.Errorf("stale tick advanced the game to %d ticks", m.State().Ticks)
	}
}

func TestGameModelResizeKeepsSession(t *testing.T) {
	m, _ := newTestGameModel(t)

	m, _ = send(m, runeKey(" "))
	m, _ = send(m, m.frame())
	m, _ = send(m, m.frame())

	m, _ = send(m, tea.WindowSizeMsg{Width: 40, Height: 12})
	m, _ = send(m, m.frame())
	if m.State().Ticks != 3 {
		t.Errorf("Ticks = %d after resize, expected 3", m.State().Ticks)
	}
	if m.View() == "" {
		t.Error("view should not be empty")
	}
}

func TestGameModelBack(t *testing.T) {
	m, _ := newTestGameModel(t)

	embedded, _ := send(m, runeKey("n"))
	if !embedded.BackToMenu() || embedded.IsQuitting() {
		t.Error("n should return to the menu when embedded")
	}

	m.standalone = true
	standalone, cmd := send(m, runeKey("n"))
	if !standalone.IsQuitting() || cmd == nil {
		t.Error("n should quit a standalone game")
	}
}
