package snake

// Snapshot captures the observable game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Length  int
	HeadRow int
	HeadCol int
	Dir     Direction
	Food    []Point // Food cells in row-major order
	State   RunState
	Outcome Outcome
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	head := s.snake.Head()

	var food []Point
	for r := 0; r < s.grid.Rows(); r++ {
		for c := 0; c < s.grid.Cols(); c++ {
			p := Point{Row: r, Col: c}
			if st, _ := s.grid.CellAt(p); st == CellFood {
				food = append(food, p)
			}
		}
	}

	return Snapshot{
		Tick:    s.ticks,
		Length:  s.Length(),
		HeadRow: head.Row,
		HeadCol: head.Col,
		Dir:     s.snake.Direction(),
		Food:    food,
		State:   s.state,
		Outcome: s.outcome,
	}
}
