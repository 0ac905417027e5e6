package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

const hudHeight = 2 // Status line + separator

// Package-level config path shared by all registered variants.
var configPath string

// SetConfigPath sets the YAML file difficulty presets are loaded from.
func SetConfigPath(path string) {
	configPath = path
}

// Difficulties loads the presets from the configured YAML.
func Difficulties() (config.SnakeConfig, error) {
	return config.LoadSnake(configPath)
}

// Game adapts a Session to the platform's registry.Game interface.
type Game struct {
	preset     config.DifficultyPreset
	difficulty *config.DifficultyConfig // Fixed difficulty, bypasses config loading
	rng        *rand.Rand
	tickRate   int
	session    *Session
	loop       *Loop
	frame      uint64
	last       Event
	err        error
}

// New creates a game for a difficulty preset. The preset parameters are
// loaded from the configured YAML on every reset.
func New(preset config.DifficultyPreset) *Game {
	return &Game{preset: preset}
}

// NewWithDifficulty creates a game with explicit parameters.
func NewWithDifficulty(id config.DifficultyPreset, d config.DifficultyConfig) *Game {
	return &Game{preset: id, difficulty: &d}
}

func init() {
	for _, p := range config.AllPresets() {
		registry.Register(string(p), func() registry.Game {
			return New(p)
		})
	}
}

// ID returns the difficulty identifier; scores are kept per difficulty.
func (g *Game) ID() string {
	return string(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("Snake (%s)", g.label())
}

func (g *Game) label() string {
	if g.session != nil {
		return g.session.Difficulty().Label
	}
	if g.difficulty != nil && g.difficulty.Label != "" {
		return g.difficulty.Label
	}
	return g.preset.Title()
}

// Reset rebuilds the whole session. Any partially elapsed tick is dropped.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.frame = 0
	g.last = Event{}
	g.err = nil
	g.session = nil
	g.loop = nil

	d, err := g.resolveDifficulty()
	if err != nil {
		g.err = err
		return
	}

	session, err := NewSession(d, g.rng.Int63())
	if err != nil {
		g.err = err
		return
	}
	g.session = session
	g.loop = NewLoop(session)
}

func (g *Game) resolveDifficulty() (config.DifficultyConfig, error) {
	if g.difficulty != nil {
		return *g.difficulty, nil
	}
	cfg, err := Difficulties()
	if err != nil {
		return config.DifficultyConfig{}, err
	}
	return cfg.Preset(g.preset)
}

// Session returns the running session, nil if the difficulty was invalid.
func (g *Game) Session() *Session {
	return g.session
}

// Err returns the error that prevented the session from being built.
func (g *Game) Err() error {
	return g.err
}

// Step handles one platform frame of input and advances the loop by one
// frame's worth of time.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frame++

	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	// Restart any time, or confirm "play again?" after the session ended
	if input.Has(core.ActionRestart) || (g.session.Finished() && input.Has(core.ActionConfirm)) {
		g.Reset(core.RuntimeConfig{Seed: g.rng.Int63(), TickRate: g.tickRate})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.session.TogglePause()
	}

	for _, a := range input.Order {
		if a.IsDirection() {
			g.session.Turn(actionDirection(a))
		}
	}

	finished := false
	for _, ev := range g.loop.Update(time.Second / time.Duration(g.tickRate)) {
		g.last = ev
		if ev.Terminal() {
			finished = true
		}
	}

	return core.StepResult{State: g.State(), Finished: finished}
}

func actionDirection(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	}
	return DirRight
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Label: g.label()}
	}
	return core.GameState{
		Score:    g.session.Length(),
		GameOver: g.session.Finished(),
		Won:      g.session.Outcome() == OutcomeWon,
		Paused:   g.session.State() == StatePaused,
		Label:    g.label(),
		Ticks:    g.session.Ticks(),
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.err != nil {
		g.renderOverlay(dst, core.ColorBrightRed, "Cannot start game", g.err.Error())
		return
	}
	if g.session == nil {
		return
	}

	board, cellW, ok := g.boardRect(dst)
	if !ok {
		need := g.session.Grid().Cols() + 2
		g.renderOverlay(dst, core.ColorYellow, "Window too small",
			fmt.Sprintf("Need %dx%d to continue", need, g.session.Grid().Rows()+2+hudHeight))
		return
	}

	dst.DrawBox(board, core.ColorGreen)
	g.renderCells(dst, board, cellW)

	s := g.session
	switch {
	case s.Outcome() == OutcomeWon:
		g.renderOverlay(dst, core.ColorBrightGreen, "You win!",
			fmt.Sprintf("You survived in %s mode!", s.Difficulty().Label),
			"Play again? (y/n)")
	case s.Outcome() == OutcomeLost:
		g.renderOverlay(dst, core.ColorBrightRed, "You lost!",
			fmt.Sprintf("The snake %s at length %d", Describe(s.CrashCause()), s.Length()),
			"Play again? (y/n)")
	case s.State() == StateNotStarted:
		g.renderOverlay(dst, core.ColorYellow, "Press Space to start/pause")
	case s.State() == StatePaused:
		g.renderOverlay(dst, core.ColorYellow, "Paused", "Press Space to continue")
	}
}

// boardRect centers the bordered board below the HUD. Cells are two
// characters wide when space allows, to keep them roughly square.
func (g *Game) boardRect(dst *core.Screen) (core.Rect, int, bool) {
	rows, cols := g.session.Grid().Rows(), g.session.Grid().Cols()
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)

	for _, cellW := range []int{2, 1} {
		w, h := cols*cellW+2, rows+2
		if w <= area.W && h <= area.H {
			return area.CenterIn(w, h), cellW, true
		}
	}
	return core.Rect{}, 0, false
}

func (g *Game) renderCells(dst *core.Screen, board core.Rect, cellW int) {
	grid := g.session.Grid()
	head := g.session.Snake().Head()

	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			p := Point{Row: r, Col: c}
			state, _ := grid.CellAt(p)
			glyph, color := cellGlyph(state, p == head)

			x := board.X + 1 + c*cellW
			y := board.Y + 1 + r
			dst.SetColored(x, y, glyph, color)
			if cellW == 2 {
				if state == CellEmpty {
					dst.SetColored(x+1, y, ' ', color)
				} else {
					dst.SetColored(x+1, y, glyph, color)
				}
			}
		}
	}
}

// cellGlyph derives the on-screen look of a cell from its logical state.
func cellGlyph(state CellState, isHead bool) (rune, core.Color) {
	switch state {
	case CellSnakeBody:
		if isHead {
			return '█', core.ColorDarkOrange
		}
		return '▓', core.ColorOrange
	case CellFood:
		return '●', core.ColorBrightRed
	default:
		return '·', core.ColorGreen
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	switch {
	case g.session == nil:
		hud = fmt.Sprintf(" Snake | %s", g.label())
	case !g.session.Started():
		hud = fmt.Sprintf(" Snake | %s  Press Space to start/pause", g.label())
	default:
		hud = fmt.Sprintf(" Snake | %s  Snake's length: %d/%d  Food: %d",
			g.label(), g.session.Length(), g.session.WinLength(), g.session.Grid().Count(CellFood))
	}

	dst.DrawTextColored(0, 0, hud, core.ColorBrightYellow)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, color core.Color, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	box := dst.Bounds().CenterIn(maxLen+4, len(lines)*2+1)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = color
		}
		dst.DrawTextCenteredColored(box.Y+1+i*2, l, c)
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	if g.session == nil {
		return fmt.Sprintf("Frame: %d, Error: %v\n", g.frame, g.err)
	}
	s := g.session
	var b strings.Builder
	fmt.Fprintf(&b, "Frame: %d, Tick: %d, Clock: %v\n", g.frame, s.Ticks(), s.Clock())
	fmt.Fprintf(&b, "Length: %d, Direction: %s, Head: %v\n", s.Length(), s.Snake().Direction(), s.Snake().Head())
	fmt.Fprintf(&b, "State: %s, Outcome: %s, Food: %d\n", s.State(), s.Outcome(), s.Spawner().Active())
	return b.String()
}
