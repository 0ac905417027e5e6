package snake

import (
	"errors"
	"fmt"
)

// ErrSelfCollision is returned when the head would enter the snake's own body.
var ErrSelfCollision = errors.New("snake: self collision")

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the row/column unit vector of the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MoveResult describes a successful advance.
type MoveResult struct {
	Head    Point
	Ate     bool
	Vacated *Point // Tail cell freed by the move, nil when growing
}

// Snake is an ordered body of grid points, head first.
type Snake struct {
	body      []Point
	direction Direction
	pending   Direction
	length    int
	justAte   bool
}

// NewSnake creates a horizontal snake on the given row with its tail in
// column 0, facing right.
func NewSnake(row, length int) *Snake {
	s := &Snake{
		direction: DirRight,
		pending:   DirRight,
		length:    length,
	}
	s.body = make([]Point, length)
	for i := range s.body {
		s.body[i] = Point{Row: row, Col: length - 1 - i}
	}
	return s
}

// Place marks the body on the grid.
func (s *Snake) Place(g *Grid) error {
	for _, p := range s.body {
		if err := g.Set(p, CellSnakeBody); err != nil {
			return fmt.Errorf("place snake: %w", err)
		}
	}
	return nil
}

// Head returns the head position.
func (s *Snake) Head() Point { return s.body[0] }

// Tail returns the last body segment.
func (s *Snake) Tail() Point { return s.body[len(s.body)-1] }

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the length counter.
func (s *Snake) Len() int { return s.length }

// Direction returns the direction used by the last move.
func (s *Snake) Direction() Direction { return s.direction }

// Pending returns the direction the next move will use.
func (s *Snake) Pending() Direction { return s.pending }

// JustAte reports whether the last move consumed food.
func (s *Snake) JustAte() bool { return s.justAte }

// SetDirection queues a turn for the next move. Turning into the current
// direction or straight back is ignored.
func (s *Snake) SetDirection(d Direction) bool {
	if d == s.direction || d == s.direction.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// Advance moves the snake one cell. On collision nothing is changed and
// ErrOutOfBounds or ErrSelfCollision is returned.
func (s *Snake) Advance(g *Grid) (MoveResult, error) {
	dir := s.pending
	next := s.Head().Add(dir)

	target, err := g.CellAt(next)
	if err != nil {
		return MoveResult{}, err
	}
	if target == CellSnakeBody {
		return MoveResult{}, fmt.Errorf("head %v: %w", next, ErrSelfCollision)
	}

	s.direction = dir
	s.justAte = target == CellFood

	if s.justAte {
		s.body = append(s.body, Point{})
		copy(s.body[1:], s.body[:len(s.body)-1])
		s.body[0] = next
		s.length++
		//nolint:errcheck // next is in bounds
		g.Set(next, CellSnakeBody)
		return MoveResult{Head: next, Ate: true}, nil
	}

	tail := s.Tail()
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = next
	//nolint:errcheck // tail was on the grid
	g.Set(tail, CellEmpty)
	//nolint:errcheck // next is in bounds
	g.Set(next, CellSnakeBody)
	return MoveResult{Head: next, Vacated: &tail}, nil
}
