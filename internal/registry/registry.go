// Package registry keeps the factories of every playable snake variant.
// Variants register themselves in init() functions so the CLI and the SSH
// server can list and build them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is the interface the platform drives. Implementations hold pure game
// logic; the platform owns input mapping, timing and terminal output.
type Game interface {
	// ID returns the variant identifier (e.g. "easy", "hard").
	// Scores are stored under this ID.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset rebuilds the game from scratch.
	Reset(cfg core.RuntimeConfig)

	// Step processes one platform frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
	Order int
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
	order   int
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a factory. Variants are listed in registration order.
// Panics if the ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	entries[id] = entry{
		factory: f,
		title:   f().Title(),
		order:   len(entries),
	}
}

// List returns all registered variants in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title, Order: e.order})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})
	return result
}

// Create instantiates a variant by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}
