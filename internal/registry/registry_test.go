package registry

import (
	"testing"

	"github.com/vovakirdan/slides/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string {
	return g.id
}

func (g *stubGame) Title() string {
	return "Stub " + g.id
}

func (g *stubGame) Reset(core.RuntimeConfig) {}

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (g *stubGame) State() core.GameState {
	return core.GameState{}
}

// gridStub reports a board size.
type gridStub struct {
	stubGame
	size int
}

func (g *gridStub) BoardSize() int {
	return g.size
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("Exists(stub-a) = false after Register")
	}

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-b" {
		t.Errorf("Create() ID = %s, want stub-b", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() should fail for an unknown game")
	}
}

func TestInfoReportsBoardSize(t *testing.T) {
	Register("grid-7", func() Game { return &gridStub{stubGame: stubGame{id: "grid-7"}, size: 7} })
	Register("plain", func() Game { return &stubGame{id: "plain"} })

	tests := []struct {
		id    string
		title string
		size  int
	}{
		{"grid-7", "Stub grid-7", 7},
		{"plain", "Stub plain", 0},
	}

	for _, tc := range tests {
		info, ok := Info(tc.id)
		if !ok {
			t.Fatalf("Info(%s) not found", tc.id)
		}
		if info.Title != tc.title || info.Size != tc.size {
			t.Errorf("Info(%s) = %+v, want title %q size %d", tc.id, info, tc.title, tc.size)
		}
	}

	if _, ok := Info("missing"); ok {
		t.Error("Info(missing) should not be found")
	}
}

func TestListOrderedBySizeThenID(t *testing.T) {
	Register("grid-3b", func() Game { return &gridStub{stubGame: stubGame{id: "grid-3b"}, size: 3} })
	Register("grid-3a", func() Game { return &gridStub{stubGame: stubGame{id: "grid-3a"}, size: 3} })
	Register("grid-2", func() Game { return &gridStub{stubGame: stubGame{id: "grid-2"}, size: 2} })

	list := List()
	for i := 1; i < len(list); i++ {
		prev, cur := list[i-1], list[i]
		if prev.Size > cur.Size || (prev.Size == cur.Size && prev.ID > cur.ID) {
			t.Errorf("List() out of order: %s (%d) before %s (%d)", prev.ID, prev.Size, cur.ID, cur.Size)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on duplicate ID")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
