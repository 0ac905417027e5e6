package registry

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	for _, id := range []string{"stub-b", "stub-a"} {
		id := id
		Register(id, func() Game { return &stubGame{id: id} })
	}

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-b" {
		t.Errorf("ID() = %q, expected stub-b", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of an unknown ID should fail")
	}

	// Listing keeps registration order rather than sorting by ID
	var ids []string
	for _, info := range List() {
		if info.ID == "stub-a" || info.ID == "stub-b" {
			ids = append(ids, info.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "stub-b" || ids[1] != "stub-a" {
		t.Errorf("List() = %v, expected [stub-b stub-a]", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", func() Game { return &stubGame{id: "dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("dup", func() Game { return &stubGame{id: "dup"} })
}
