package snake

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// testDifficulty returns a 20x20 board with no food unless maxFood > 0.
func testDifficulty(maxFood int) config.DifficultyConfig {
	return config.DifficultyConfig{
		Label:          "Test",
		Width:          20,
		Height:         20,
		TickMS:         100,
		MaxFood:        maxFood,
		FoodLifetimeMS: 1000,
	}
}

func newStartedSession(t *testing.T, d config.DifficultyConfig, seed int64) *Session {
	t.Helper()
	s, err := NewSession(d, seed)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if s.TogglePause() != StateRunning {
		t.Fatalf("first toggle should start the session")
	}
	return s
}

func TestInitialSnake(t *testing.T) {
	s, err := NewSession(testDifficulty(0), 1)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	want := []Point{{10, 2}, {10, 1}, {10, 0}}
	body := s.Snake().Body()
	if len(body) != len(want) {
		t.Fatalf("body length = %d, expected %d", len(body), len(want))
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("body[%d] = %v, expected %v", i, body[i], want[i])
		}
	}
	if s.Snake().Direction() != DirRight {
		t.Errorf("initial direction = %v, expected right", s.Snake().Direction())
	}
	if s.State() != StateNotStarted {
		t.Errorf("initial state = %v, expected not_started", s.State())
	}
	if got := s.Grid().Count(CellSnakeBody); got != 3 {
		t.Errorf("grid has %d snake cells, expected 3", got)
	}
}

func TestRightWallCrash(t *testing.T) {
	s := newStartedSession(t, testDifficulty(0), 1)

	for i := 1; i <= 17; i++ {
		ev := s.Tick()
		if ev.Kind != EventMoved {
			t.Fatalf("tick %d: event = %v, expected a plain move", i, ev.Kind)
		}
		if s.State() != StateRunning || s.Finished() {
			t.Fatalf("tick %d: session should still be running", i)
		}
	}

	before := s.Snake().Body()
	ev := s.Tick()
	if ev.Kind != EventLost {
		t.Fatalf("18th tick: event = %v, expected EventLost", ev.Kind)
	}
	if !errors.Is(ev.Err, ErrOutOfBounds) {
		t.Errorf("crash cause = %v, expected ErrOutOfBounds", ev.Err)
	}
	if s.Outcome() != OutcomeLost {
		t.Errorf("outcome = %v, expected lost", s.Outcome())
	}

	after := s.Snake().Body()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("crash changed body[%d]: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestEatFoodAhead(t *testing.T) {
	s := newStartedSession(t, testDifficulty(0), 1)
	target := Point{Row: 10, Col: 3}
	if err := s.Grid().Set(target, CellFood); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	ev := s.Tick()
	if ev.Kind != EventAte {
		t.Fatalf("event = %v, expected EventAte", ev.Kind)
	}
	if s.Length() != 4 {
		t.Errorf("length = %d, expected 4", s.Length())
	}
	if state, _ := s.Grid().CellAt(target); state != CellSnakeBody {
		t.Errorf("eaten cell = %v, expected snake", state)
	}
	if !s.Snake().JustAte() {
		t.Error("JustAte should be set after eating")
	}
	// Tail stays put while growing
	if s.Snake().Tail() != (Point{Row: 10, Col: 0}) {
		t.Errorf("tail = %v, expected (10,0)", s.Snake().Tail())
	}

	s.Tick()
	if s.Snake().JustAte() {
		t.Error("JustAte should clear after a plain move")
	}
	if s.Length() != 4 {
		t.Errorf("length after plain move = %d, expected 4", s.Length())
	}
}

func TestSetDirectionRejectsSameAndOpposite(t *testing.T) {
	sn := NewSnake(5, 3)

	if sn.SetDirection(DirRight) {
		t.Error("turning into the current direction should be rejected")
	}
	if sn.SetDirection(DirLeft) {
		t.Error("reversing should be rejected")
	}
	if sn.Direction() != DirRight || sn.Pending() != DirRight {
		t.Errorf("direction changed to %v/%v", sn.Direction(), sn.Pending())
	}

	if !sn.SetDirection(DirUp) {
		t.Fatal("turning up should be accepted")
	}
	if sn.Pending() != DirUp {
		t.Errorf("pending = %v, expected up", sn.Pending())
	}
	// The committed direction only changes when the move happens
	if sn.Direction() != DirRight {
		t.Errorf("direction = %v before the move, expected right", sn.Direction())
	}

	g := NewGrid(10, 10)
	if err := sn.Place(g); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	if _, err := sn.Advance(g); err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}
	if sn.Direction() != DirUp {
		t.Errorf("direction after move = %v, expected up", sn.Direction())
	}
	if sn.SetDirection(DirDown) {
		t.Error("reversing the new direction should be rejected")
	}
}

// Presses within one tick are checked against the committed direction and
// the last accepted one is used for the move.
func TestTurnsWithinOneTick(t *testing.T) {
	tests := []struct {
		name    string
		presses []Direction
		head    Point
		dir     Direction
	}{
		{"single turn", []Direction{DirUp}, Point{Row: 9, Col: 2}, DirUp},
		{"reverse after turn is ignored", []Direction{DirUp, DirLeft}, Point{Row: 9, Col: 2}, DirUp},
		{"current direction after turn is ignored", []Direction{DirUp, DirRight}, Point{Row: 9, Col: 2}, DirUp},
		{"last valid turn wins", []Direction{DirUp, DirDown}, Point{Row: 11, Col: 2}, DirDown},
		{"reverse alone is ignored", []Direction{DirLeft}, Point{Row: 10, Col: 3}, DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newStartedSession(t, testDifficulty(0), 1)
			for _, d := range tc.presses {
				s.Turn(d)
			}
			if ev := s.Tick(); ev.Kind == EventLost {
				t.Fatalf("Tick() lost: %v", ev.Err)
			}
			if head := s.Snake().Head(); head != tc.head {
				t.Errorf("head = %v, expected %v", head, tc.head)
			}
			if s.Snake().Direction() != tc.dir {
				t.Errorf("direction = %v, expected %v", s.Snake().Direction(), tc.dir)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	g := NewGrid(10, 10)
	sn := NewSnake(5, 5) // (5,4) .. (5,0)
	if err := sn.Place(g); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}

	// Curl up: up, left, down into the body
	for _, d := range []Direction{DirUp, DirLeft} {
		sn.SetDirection(d)
		if _, err := sn.Advance(g); err != nil {
			t.Fatalf("Advance(%v) failed: %v", d, err)
		}
	}
	sn.SetDirection(DirDown)
	before := sn.Body()
	_, err := sn.Advance(g)
	if !errors.Is(err, ErrSelfCollision) {
		t.Fatalf("Advance() = %v, expected ErrSelfCollision", err)
	}
	after := sn.Body()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("collision changed body[%d]", i)
		}
	}
}

func TestMovingIntoTailCrashes(t *testing.T) {
	// A 2x2 loop: the tail cell is still body when the head reaches it.
	g := NewGrid(4, 4)
	sn := NewSnake(1, 3) // (1,2),(1,1),(1,0)
	if err := sn.Place(g); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	g.Set(Point{Row: 2, Col: 2}, CellFood) //nolint:errcheck

	sn.SetDirection(DirDown)
	if _, err := sn.Advance(g); err != nil { // eats, length 4: (2,2),(1,2),(1,1),(1,0)
		t.Fatalf("Advance(down) failed: %v", err)
	}
	sn.SetDirection(DirLeft)
	if _, err := sn.Advance(g); err != nil { // (2,1),(2,2),(1,2),(1,1)
		t.Fatalf("Advance(left) failed: %v", err)
	}
	sn.SetDirection(DirUp)
	if _, err := sn.Advance(g); !errors.Is(err, ErrSelfCollision) {
		t.Errorf("moving into the tail cell = %v, expected ErrSelfCollision", err)
	}
}

func TestWinFillsBoard(t *testing.T) {
	d := config.DifficultyConfig{
		Label: "Tiny", Width: 4, Height: 2,
		TickMS: 100, MaxFood: 0, FoodLifetimeMS: 1000,
	}
	s := newStartedSession(t, d, 1)
	if s.WinLength() != 7 {
		t.Fatalf("WinLength() = %d, expected 7", s.WinLength())
	}

	for _, p := range []Point{{1, 3}, {0, 3}, {0, 2}, {0, 1}} {
		s.Grid().Set(p, CellFood) //nolint:errcheck
	}

	steps := []struct {
		turn Direction
		want EventKind
	}{
		{DirRight, EventAte},
		{DirUp, EventAte},
		{DirLeft, EventAte},
		{DirLeft, EventWon},
	}
	for i, st := range steps {
		s.Turn(st.turn)
		ev := s.Tick()
		if ev.Kind != st.want {
			t.Fatalf("step %d: event = %v, expected %v", i, ev.Kind, st.want)
		}
		if ev.Kind == EventWon && ev.Label != "Tiny" {
			t.Errorf("win label = %q, expected Tiny", ev.Label)
		}
	}

	if s.Outcome() != OutcomeWon {
		t.Errorf("outcome = %v, expected won", s.Outcome())
	}
	head := s.Snake().Head()
	if ev := s.Tick(); ev.Kind != EventNone {
		t.Errorf("tick after win = %v, expected no movement", ev.Kind)
	}
	if s.Snake().Head() != head {
		t.Error("snake moved after the session was won")
	}
}

func TestPauseToggle(t *testing.T) {
	s, err := NewSession(testDifficulty(0), 1)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	if ev := s.Tick(); ev.Kind != EventNone {
		t.Error("not started session should not tick")
	}

	transitions := []RunState{StateRunning, StatePaused, StateRunning}
	for i, want := range transitions {
		if got := s.TogglePause(); got != want {
			t.Errorf("toggle %d = %v, expected %v", i, got, want)
		}
	}

	s.TogglePause()
	if ev := s.Tick(); ev.Kind != EventNone {
		t.Error("paused session should not tick")
	}
}

func TestPauseWhileFinishedHasNoEffect(t *testing.T) {
	s := newStartedSession(t, testDifficulty(0), 1)
	for !s.Finished() {
		s.Tick()
	}
	state, outcome := s.State(), s.Outcome()

	for i := 0; i < 3; i++ {
		s.TogglePause()
		if s.State() != state || s.Outcome() != outcome {
			t.Fatalf("toggle %d changed finished session to %v/%v", i, s.State(), s.Outcome())
		}
	}
	if s.Turn(DirUp) {
		t.Error("finished session should ignore turns")
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := newStartedSession(t, testDifficulty(5), seed)
		rng := rand.New(rand.NewSource(seed))

		for i := 0; i < 400 && !s.Finished(); i++ {
			if rng.Intn(4) == 0 {
				s.Turn(Direction(rng.Intn(4)))
			}
			s.Tick()
			checkInvariants(t, s)
		}
	}
}

func checkInvariants(t *testing.T, s *Session) {
	t.Helper()
	body := s.Snake().Body()

	if len(body) != s.Length() {
		t.Fatalf("len(body) = %d, length counter = %d", len(body), s.Length())
	}
	if got := s.Grid().Count(CellSnakeBody); got != len(body) {
		t.Fatalf("grid has %d snake cells, body has %d", got, len(body))
	}
	for i, p := range body {
		if st, err := s.Grid().CellAt(p); err != nil || st != CellSnakeBody {
			t.Fatalf("body[%d] %v is %v (err %v)", i, p, st, err)
		}
		if i > 0 {
			prev := body[i-1]
			if manhattan(prev, p) != 1 {
				t.Fatalf("body[%d] %v not adjacent to %v", i, p, prev)
			}
		}
	}
}

func TestPauseFreezesClock(t *testing.T) {
	s := newStartedSession(t, testDifficulty(0), 1)

	s.Tick()
	if s.Clock() != 100*time.Millisecond {
		t.Fatalf("Clock() = %v, expected 100ms", s.Clock())
	}

	s.TogglePause()
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	if s.Clock() != 100*time.Millisecond || s.Ticks() != 1 {
		t.Errorf("paused session advanced to %v after %d ticks", s.Clock(), s.Ticks())
	}

	s.TogglePause()
	s.Tick()
	if s.Clock() != 200*time.Millisecond {
		t.Errorf("Clock() after resume = %v, expected 200ms", s.Clock())
	}
}

func TestDeterminism(t *testing.T) {
	d := testDifficulty(5)
	run := func() Snapshot {
		s := newStartedSession(t, d, 12345)
		for i := 0; i < 60; i++ {
			switch i {
			case 5:
				s.Turn(DirDown)
			case 9:
				s.Turn(DirRight)
			case 14:
				s.Turn(DirUp)
			}
			s.Tick()
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Tick != b.Tick || a.Length != b.Length || a.HeadRow != b.HeadRow || a.HeadCol != b.HeadCol {
		t.Errorf("snapshots differ: %+v vs %+v", a, b)
	}
	if len(a.Food) != len(b.Food) {
		t.Fatalf("food count differs: %d vs %d", len(a.Food), len(b.Food))
	}
	for i := range a.Food {
		if a.Food[i] != b.Food[i] {
			t.Errorf("food[%d] differs: %v vs %v", i, a.Food[i], b.Food[i])
		}
	}
}

func TestNewSessionRejectsInvalidDifficulty(t *testing.T) {
	d := testDifficulty(0)
	d.TickMS = 0
	if _, err := NewSession(d, 1); !errors.Is(err, config.ErrInvalidTick) {
		t.Errorf("NewSession() = %v, expected ErrInvalidTick", err)
	}
}

func manhattan(a, b Point) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}
