package snake

import (
	"math/rand"
	"sort"
	"time"
)

// Spawner marks random cells as transient food and reverts them once their
// lifetime elapses. Deadlines are measured on the session clock.
type Spawner struct {
	rng      *rand.Rand
	maxFood  int
	lifetime time.Duration
	timers   map[Point]time.Duration // food cell -> deadline
}

// NewSpawner creates a spawner marking up to maxFood cells per pass.
func NewSpawner(rng *rand.Rand, maxFood int, lifetime time.Duration) *Spawner {
	return &Spawner{
		rng:      rng,
		maxFood:  maxFood,
		lifetime: lifetime,
		timers:   make(map[Point]time.Duration),
	}
}

// Spawn runs one spawn pass at session time now and returns the marked cells.
// Boards with fewer than two free cells are left alone.
func (s *Spawner) Spawn(g *Grid, now time.Duration) []Point {
	free := g.EmptyCells()
	if len(free) < 2 {
		return nil
	}

	k := min(s.maxFood, len(free)-1)
	if k <= 0 {
		return nil
	}

	// Partial Fisher-Yates: the first k entries become a uniform sample.
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(len(free)-i)
		free[i], free[j] = free[j], free[i]
	}

	chosen := free[:k]
	for _, p := range chosen {
		//nolint:errcheck // p comes from the grid itself
		g.Set(p, CellFood)
		s.timers[p] = now + s.lifetime
	}
	return chosen
}

// Expire drops every timer whose deadline has passed. The cell reverts to
// empty only while the session is active and the cell still holds food.
func (s *Spawner) Expire(g *Grid, now time.Duration, active bool) []Point {
	var cleared []Point
	for p, deadline := range s.timers {
		if deadline > now {
			continue
		}
		delete(s.timers, p)

		if !active {
			continue
		}
		if state, err := g.CellAt(p); err != nil || state != CellFood {
			continue
		}
		//nolint:errcheck // bounds checked above
		g.Set(p, CellEmpty)
		cleared = append(cleared, p)
	}

	sort.Slice(cleared, func(i, j int) bool {
		if cleared[i].Row != cleared[j].Row {
			return cleared[i].Row < cleared[j].Row
		}
		return cleared[i].Col < cleared[j].Col
	})
	return cleared
}

// Consume forgets the timer of an eaten food cell.
func (s *Spawner) Consume(p Point) {
	delete(s.timers, p)
}

// Active returns the number of pending food timers.
func (s *Spawner) Active() int {
	return len(s.timers)
}

// Deadline returns the expiry time of the food at p.
func (s *Spawner) Deadline(p Point) (time.Duration, bool) {
	d, ok := s.timers[p]
	return d, ok
}
