package snake

import (
	"math/rand"
	"testing"
	"time"
)

func TestSpawnSkipsNearlyFullBoard(t *testing.T) {
	g := NewGrid(2, 2)
	for _, p := range []Point{{0, 0}, {0, 1}, {1, 1}} {
		g.Set(p, CellSnakeBody) //nolint:errcheck
	}

	sp := NewSpawner(rand.New(rand.NewSource(1)), 5, time.Second)
	if chosen := sp.Spawn(g, 0); len(chosen) != 0 {
		t.Errorf("Spawn() marked %d cells with one free cell", len(chosen))
	}
	if g.Count(CellFood) != 0 || sp.Active() != 0 {
		t.Error("nothing should be marked on a nearly full board")
	}
}

func TestSpawnLeavesOneFreeCell(t *testing.T) {
	g := NewGrid(1, 4)
	g.Set(Point{0, 0}, CellSnakeBody) //nolint:errcheck
	g.Set(Point{0, 1}, CellSnakeBody) //nolint:errcheck

	sp := NewSpawner(rand.New(rand.NewSource(1)), 5, time.Second)
	chosen := sp.Spawn(g, 0)
	if len(chosen) != 1 {
		t.Fatalf("Spawn() marked %d cells, expected min(5, 2-1) = 1", len(chosen))
	}
}

func TestSpawnMarksDistinctFreeCells(t *testing.T) {
	g := NewGrid(20, 20)
	sn := NewSnake(10, 3)
	if err := sn.Place(g); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}

	sp := NewSpawner(rand.New(rand.NewSource(99)), 5, 1500*time.Millisecond)
	for pass := 0; pass < 100; pass++ {
		now := time.Duration(pass) * 100 * time.Millisecond
		chosen := sp.Spawn(g, now)
		if len(chosen) != 5 {
			t.Fatalf("pass %d: marked %d cells, expected 5", pass, len(chosen))
		}

		seen := make(map[Point]bool)
		for _, p := range chosen {
			if seen[p] {
				t.Fatalf("pass %d: %v chosen twice", pass, p)
			}
			seen[p] = true

			if st, _ := g.CellAt(p); st != CellFood {
				t.Errorf("pass %d: chosen %v is %v", pass, p, st)
			}
			if d, ok := sp.Deadline(p); !ok || d != now+1500*time.Millisecond {
				t.Errorf("pass %d: deadline of %v = %v, expected %v", pass, p, d, now+1500*time.Millisecond)
			}
		}

		if g.Count(CellSnakeBody) != 3 {
			t.Fatalf("pass %d: spawner touched snake cells", pass)
		}
	}
}

func TestRespawnRestartsLifetime(t *testing.T) {
	g := NewGrid(1, 3)
	sp := NewSpawner(rand.New(rand.NewSource(3)), 2, time.Second)

	sp.Spawn(g, 0)
	second := sp.Spawn(g, 500*time.Millisecond)

	// Two passes of two cells on a three-cell board must overlap.
	for _, p := range second {
		if d, _ := sp.Deadline(p); d != 1500*time.Millisecond {
			t.Errorf("re-marked %v has deadline %v, expected 1.5s", p, d)
		}
	}
}

func TestExpireRevertsFoodWhileActive(t *testing.T) {
	g := NewGrid(5, 5)
	sp := NewSpawner(rand.New(rand.NewSource(5)), 3, time.Second)
	chosen := sp.Spawn(g, 0)

	if cleared := sp.Expire(g, 999*time.Millisecond, true); len(cleared) != 0 {
		t.Fatalf("Expire() before the deadline cleared %v", cleared)
	}

	cleared := sp.Expire(g, time.Second, true)
	if len(cleared) != len(chosen) {
		t.Fatalf("Expire() cleared %d cells, expected %d", len(cleared), len(chosen))
	}
	if g.Count(CellFood) != 0 || sp.Active() != 0 {
		t.Error("all food should be gone after expiry")
	}
}

func TestExpireGuard(t *testing.T) {
	t.Run("inactive session keeps markers", func(t *testing.T) {
		g := NewGrid(5, 5)
		sp := NewSpawner(rand.New(rand.NewSource(5)), 3, time.Second)
		sp.Spawn(g, 0)

		if cleared := sp.Expire(g, 2*time.Second, false); len(cleared) != 0 {
			t.Errorf("inactive Expire() cleared %v", cleared)
		}
		if g.Count(CellFood) != 3 {
			t.Errorf("food cells = %d, expected markers kept", g.Count(CellFood))
		}
		if sp.Active() != 0 {
			t.Error("elapsed timers should be dropped even when suppressed")
		}
	})

	t.Run("occupied cell is not cleared", func(t *testing.T) {
		g := NewGrid(5, 5)
		sp := NewSpawner(rand.New(rand.NewSource(5)), 3, time.Second)
		chosen := sp.Spawn(g, 0)
		eaten := chosen[0]
		g.Set(eaten, CellSnakeBody) //nolint:errcheck

		cleared := sp.Expire(g, time.Second, true)
		for _, p := range cleared {
			if p == eaten {
				t.Errorf("Expire() cleared occupied cell %v", p)
			}
		}
		if st, _ := g.CellAt(eaten); st != CellSnakeBody {
			t.Errorf("occupied cell became %v", st)
		}
	})
}

func TestConsumeDropsTimer(t *testing.T) {
	g := NewGrid(3, 3)
	sp := NewSpawner(rand.New(rand.NewSource(1)), 1, time.Second)
	p := sp.Spawn(g, 0)[0]

	sp.Consume(p)
	if _, ok := sp.Deadline(p); ok {
		t.Error("consumed food should have no timer")
	}
}
