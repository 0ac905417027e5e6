package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// RunState is the scheduling state of a session.
type RunState int

const (
	StateNotStarted RunState = iota
	StateRunning
	StatePaused
)

func (s RunState) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of a session.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// EventKind classifies what happened during a tick.
type EventKind int

const (
	EventNone EventKind = iota
	EventMoved
	EventAte
	EventWon
	EventLost
)

// Event is the notification produced by one tick.
type Event struct {
	Kind   EventKind
	Length int
	Label  string // Difficulty label, set on EventWon
	Err    error  // Collision cause, set on EventLost
}

// Terminal reports whether the event ended the session.
func (e Event) Terminal() bool {
	return e.Kind == EventWon || e.Kind == EventLost
}

// Session owns every piece of state of one game: grid, snake and spawner.
// It is rebuilt wholesale on reset.
type Session struct {
	difficulty config.DifficultyConfig
	grid       *Grid
	snake      *Snake
	spawner    *Spawner
	state      RunState
	outcome    Outcome
	clock      time.Duration
	ticks      uint64
	lastErr    error
}

// NewSession builds a fresh session for the given difficulty.
func NewSession(d config.DifficultyConfig, seed int64) (*Session, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	grid := NewGrid(d.Height, d.Width)
	snake := NewSnake(d.Height/2, config.MinSnakeLength)
	if err := snake.Place(grid); err != nil {
		return nil, err
	}

	return &Session{
		difficulty: d,
		grid:       grid,
		snake:      snake,
		spawner:    NewSpawner(rng, d.MaxFood, d.FoodLifetime()),
		state:      StateNotStarted,
	}, nil
}

// Grid returns the session grid.
func (s *Session) Grid() *Grid { return s.grid }

// Snake returns the session snake.
func (s *Session) Snake() *Snake { return s.snake }

// Spawner returns the session food spawner.
func (s *Session) Spawner() *Spawner { return s.spawner }

// Difficulty returns the parameters the session runs with.
func (s *Session) Difficulty() config.DifficultyConfig { return s.difficulty }

// State returns the scheduling state.
func (s *Session) State() RunState { return s.state }

// Outcome returns the terminal result, OutcomeNone while playing.
func (s *Session) Outcome() Outcome { return s.outcome }

// Finished reports whether the session has ended.
func (s *Session) Finished() bool { return s.outcome != OutcomeNone }

// Running reports whether ticks should be scheduled.
func (s *Session) Running() bool { return s.state == StateRunning && !s.Finished() }

// Started reports whether the session has left NotStarted.
func (s *Session) Started() bool { return s.state != StateNotStarted }

// Clock returns the elapsed session time.
func (s *Session) Clock() time.Duration { return s.clock }

// Ticks returns the number of ticks performed.
func (s *Session) Ticks() uint64 { return s.ticks }

// Length returns the snake length.
func (s *Session) Length() int { return s.snake.Len() }

// WinLength is the length at which the session is won.
func (s *Session) WinLength() int {
	return s.grid.Rows()*s.grid.Cols() - 1
}

// CrashCause returns the collision that lost the session.
func (s *Session) CrashCause() error { return s.lastErr }

// TogglePause starts, pauses or resumes the session. Finished sessions
// ignore it.
func (s *Session) TogglePause() RunState {
	if s.Finished() {
		return s.state
	}
	switch s.state {
	case StateNotStarted, StatePaused:
		s.state = StateRunning
	case StateRunning:
		s.state = StatePaused
	}
	return s.state
}

// Turn queues a direction change. Returns false when the turn is rejected.
func (s *Session) Turn(d Direction) bool {
	if s.Finished() {
		return false
	}
	return s.snake.SetDirection(d)
}

// Tick performs one simulation step: expire and spawn food, move the snake,
// then check terminal conditions. It does nothing unless the session is running.
func (s *Session) Tick() Event {
	if !s.Running() {
		return Event{Kind: EventNone, Length: s.Length()}
	}

	s.ticks++
	s.clock += s.difficulty.TickInterval()

	s.expireFood()
	s.spawner.Spawn(s.grid, s.clock)

	move, err := s.snake.Advance(s.grid)
	if err != nil {
		return s.finish(OutcomeLost, err)
	}

	if !move.Ate {
		return Event{Kind: EventMoved, Length: s.Length()}
	}

	s.spawner.Consume(move.Head)
	if s.Length() >= s.WinLength() {
		return s.finish(OutcomeWon, nil)
	}
	return Event{Kind: EventAte, Length: s.Length()}
}

// expireFood reverts food whose lifetime has elapsed. Cells are only cleared
// while the session is active.
func (s *Session) expireFood() []Point {
	return s.spawner.Expire(s.grid, s.clock, s.Started() && !s.Finished())
}

func (s *Session) finish(o Outcome, cause error) Event {
	s.outcome = o
	s.lastErr = cause

	if o == OutcomeWon {
		return Event{Kind: EventWon, Length: s.Length(), Label: s.difficulty.Label}
	}
	return Event{Kind: EventLost, Length: s.Length(), Err: cause}
}

// Describe returns a one-line description of a lost session's cause.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrOutOfBounds):
		return "hit the wall"
	case errors.Is(err, ErrSelfCollision):
		return "bit itself"
	default:
		return fmt.Sprintf("crashed: %v", err)
	}
}
