package snake

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned for coordinates outside the grid.
// A move that produces it is a boundary crash.
var ErrOutOfBounds = errors.New("snake: coordinate out of bounds")

// Point is a grid coordinate.
type Point struct {
	Row, Col int
}

// Add returns p shifted by one step in direction d.
func (p Point) Add(d Direction) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// CellState is the logical content of a grid cell.
// Rendering is derived from it, never the reverse.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellSnakeBody
	CellFood
)

func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellSnakeBody:
		return "snake"
	case CellFood:
		return "food"
	default:
		return "unknown"
	}
}

// Grid is a fixed rows×cols array of cells.
type Grid struct {
	rows  int
	cols  int
	cells [][]CellState
}

// NewGrid creates a grid with every cell empty.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]CellState, rows)
	for r := range g.cells {
		g.cells[r] = make([]CellState, cols)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// CellAt returns the state of the cell at p.
func (g *Grid) CellAt(p Point) (CellState, error) {
	if !g.InBounds(p) {
		return CellEmpty, fmt.Errorf("cell %v on %dx%d grid: %w", p, g.rows, g.cols, ErrOutOfBounds)
	}
	return g.cells[p.Row][p.Col], nil
}

// Set changes the state of the cell at p.
func (g *Grid) Set(p Point, s CellState) error {
	if !g.InBounds(p) {
		return fmt.Errorf("cell %v on %dx%d grid: %w", p, g.rows, g.cols, ErrOutOfBounds)
	}
	g.cells[p.Row][p.Col] = s
	return nil
}

// EmptyCells returns every coordinate not occupied by the snake body,
// food cells included, in row-major order.
func (g *Grid) EmptyCells() []Point {
	result := make([]Point, 0, g.rows*g.cols)
	for r, row := range g.cells {
		for c, s := range row {
			if s != CellSnakeBody {
				result = append(result, Point{Row: r, Col: c})
			}
		}
	}
	return result
}

// Count returns how many cells are in the given state.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, row := range g.cells {
		for _, cs := range row {
			if cs == s {
				n++
			}
		}
	}
	return n
}
