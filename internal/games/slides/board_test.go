package slides

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/slides/internal/core"
)

func newTestBoard(t *testing.T, size int) *Board {
	t.Helper()
	b, err := New(size, core.NewPoint(200, 150))
	if err != nil {
		t.Fatalf("New(%d) failed: %v", size, err)
	}
	return b
}

// checkInvariants verifies cursor uniqueness, cursor/empty coincidence and
// that addresses match their construction-time values.
func checkInvariants(t *testing.T, b *Board, addrs []Address) {
	t.Helper()

	selected := 0
	for i, tile := range b.Tiles() {
		if tile.Address != addrs[i] {
			t.Fatalf("tile %d address = %v, want %v", i, tile.Address, addrs[i])
		}
		if tile.Selected {
			selected++
			if !tile.HasValue || tile.Value != 0 {
				t.Fatalf("selected tile at %v holds %d (has=%v), want 0", tile.Address, tile.Value, tile.HasValue)
			}
		}
		if tile.HasValue && tile.Value == 0 && !tile.Selected {
			t.Fatalf("empty tile at %v is not selected", tile.Address)
		}
	}
	if selected != 1 {
		t.Fatalf("selected tiles = %d, want 1", selected)
	}
}

func addresses(b *Board) []Address {
	addrs := make([]Address, b.Len())
	for i, tile := range b.Tiles() {
		addrs[i] = tile.Address
	}
	return addrs
}

func TestNewBoardLayout(t *testing.T) {
	b := newTestBoard(t, 3)

	if b.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", b.Len())
	}

	cursor := b.Tile(0)
	if cursor.Address != (Address{0, 0}) || cursor.Value != 0 || !cursor.Selected {
		t.Errorf("tile 0 = %+v, want selected cursor at (0,0)", cursor)
	}

	for i := 1; i < 3; i++ {
		tile := b.Tile(i)
		if !tile.Blocking || tile.Address != (Address{i, 0}) {
			t.Errorf("tile %d = %+v, want blocking header at (%d,0)", i, tile, i)
		}
	}

	for n := 1; n <= 9; n++ {
		tile := b.Tile(n + 2)
		want := Address{Col: (n - 1) % 3, Row: (n-1)/3 + 1}
		if tile.Value != n || tile.Address != want {
			t.Errorf("tile %d = value %d at %v, want %d at %v", n+2, tile.Value, tile.Address, n, want)
		}
	}

	if !b.CheckArranged() {
		t.Error("new board should be arranged")
	}
	if b.Cursor() != (Address{0, 0}) {
		t.Errorf("Cursor() = %v, want (0,0)", b.Cursor())
	}
}

func TestNewBoardInvalidSize(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		if _, err := New(size, core.NewPoint(0, 0)); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestNewBoardRegions(t *testing.T) {
	b := newTestBoard(t, 3)

	if _, ok := b.cells[0].Source(); ok {
		t.Error("cursor should not carry an image region")
	}
	if got := b.Tile(0).Dest; got != core.NewRect(200, 150, 100, 100) {
		t.Errorf("cursor Dest = %v, want (200,150,100,100)", got)
	}

	// Tile 5 sits at (1,2): second column, second play row
	tile := b.Tile(7)
	if tile.Value != 5 {
		t.Fatalf("tile 7 value = %d, want 5", tile.Value)
	}
	if tile.Source != core.NewRect(110, 110, 100, 100) {
		t.Errorf("Source = %v, want (110,110,100,100)", tile.Source)
	}
	if tile.Dest != core.NewRect(310, 370, 100, 100) {
		t.Errorf("Dest = %v, want (310,370,100,100)", tile.Dest)
	}
}

func TestMoveRefusedAtEdges(t *testing.T) {
	b := newTestBoard(t, 3)
	before := b.Grid()

	for _, dir := range []Direction{DirUp, DirLeft, DirRight} {
		if b.Move(dir) {
			t.Errorf("Move(%s) from (0,0) should fail", dir)
		}
		if !reflect.DeepEqual(b.Grid(), before) {
			t.Fatalf("failed Move(%s) changed the board", dir)
		}
	}

	if !b.Move(DirDown) {
		t.Fatal("Move(down) from (0,0) should succeed")
	}
	if b.Cursor() != (Address{0, 1}) {
		t.Errorf("Cursor() = %v, want (0,1)", b.Cursor())
	}
}

func TestMoveIntoBlockingTile(t *testing.T) {
	b := newTestBoard(t, 3)
	b.Move(DirDown)
	b.Move(DirRight)

	before := b.Grid()
	if b.Move(DirUp) {
		t.Error("Move(up) into a header tile should fail")
	}
	if !reflect.DeepEqual(b.Grid(), before) {
		t.Error("refused move changed the board")
	}
	if b.Cursor() != (Address{1, 1}) {
		t.Errorf("Cursor() = %v, want (1,1)", b.Cursor())
	}
}

func TestMoveScenario(t *testing.T) {
	b := newTestBoard(t, 3)
	addrs := addresses(b)

	if !b.Move(DirDown) {
		t.Fatal("initial Move(down) should succeed")
	}

	seq := []Direction{DirDown, DirRight, DirRight, DirRight, DirDown, DirDown, DirLeft, DirLeft, DirLeft, DirUp, DirUp, DirUp, DirUp}
	for _, dir := range seq {
		from := b.Cursor()
		before := b.Grid()
		moved := b.Move(dir)
		after := b.Grid()

		if !moved {
			if !reflect.DeepEqual(before, after) {
				t.Fatalf("Move(%s) from %v returned false but changed the board", dir, from)
			}
			continue
		}

		to := b.Cursor()
		if from.Step(dir) != to {
			t.Fatalf("Move(%s) from %v moved cursor to %v", dir, from, to)
		}

		// Exactly the two addresses swapped values
		for y := range after {
			for x := range after[y] {
				addr := Address{Col: x, Row: y}
				switch addr {
				case from:
					if after[y][x] != before[to.Row][to.Col] {
						t.Errorf("old cursor cell %v = %d, want %d", addr, after[y][x], before[to.Row][to.Col])
					}
				case to:
					if after[y][x] != 0 {
						t.Errorf("new cursor cell %v = %d, want 0", addr, after[y][x])
					}
				default:
					if after[y][x] != before[y][x] {
						t.Errorf("untouched cell %v changed from %d to %d", addr, before[y][x], after[y][x])
					}
				}
			}
		}
		checkInvariants(t, b, addrs)
	}

	// Cursor in column 0 cannot go further left
	for b.Cursor().Col > 0 {
		b.Move(DirLeft)
	}
	before := b.Grid()
	if b.Move(DirLeft) {
		t.Error("Move(left) from column 0 should fail")
	}
	if !reflect.DeepEqual(b.Grid(), before) {
		t.Error("refused Move(left) changed the board")
	}
}

func TestMoveInvariantsRandomWalk(t *testing.T) {
	for _, size := range []int{2, 3, 5} {
		b := newTestBoard(t, size)
		addrs := addresses(b)
		rng := rand.New(rand.NewSource(int64(size)))

		for range 2000 {
			dir := RandomDirection(rng)
			target, onGrid := b.LocateByAddress(b.Cursor().Step(dir))
			blocked := onGrid && b.Tile(target).Blocking

			moved := b.Move(dir)
			if blocked && moved {
				t.Fatalf("size %d: Move(%s) succeeded into a blocking tile", size, dir)
			}
			if !onGrid && moved {
				t.Fatalf("size %d: Move(%s) succeeded off-grid", size, dir)
			}
			checkInvariants(t, b, addrs)
		}

		for i := 1; i < size; i++ {
			if !b.Tile(i).Blocking {
				t.Errorf("size %d: header tile %d received a value", size, i)
			}
		}
	}
}

func TestMoveReversible(t *testing.T) {
	b := newTestBoard(t, 4)
	rng := rand.New(rand.NewSource(7))
	b.ScatterN(rng, 50)

	for _, dir := range Directions {
		before := b.Tiles()
		if !b.Move(dir) {
			continue
		}
		if !b.Move(dir.Opposite()) {
			t.Fatalf("Move(%s) after Move(%s) should succeed", dir.Opposite(), dir)
		}
		if !reflect.DeepEqual(b.Tiles(), before) {
			t.Errorf("Move(%s) then Move(%s) did not restore the board", dir, dir.Opposite())
		}
	}
}

func TestImageRegionFollowsValue(t *testing.T) {
	b := newTestBoard(t, 3)
	src1 := b.Tile(3).Source

	b.Move(DirDown)

	top := b.Tile(0)
	if top.Value != 1 || !top.HasSource || top.Source != src1 {
		t.Errorf("tile at (0,0) = value %d source %v (has=%v), want 1 with %v", top.Value, top.Source, top.HasSource, src1)
	}
	if top.Dest != core.NewRect(200, 150, 100, 100) {
		t.Errorf("Dest moved with the value: %v", top.Dest)
	}

	gap := b.Tile(3)
	if gap.Value != 0 || gap.HasSource {
		t.Errorf("tile at (0,1) = value %d has source %v, want cursor without source", gap.Value, gap.HasSource)
	}
}

func TestCheckArranged(t *testing.T) {
	b := newTestBoard(t, 3)
	if !b.CheckArranged() {
		t.Fatal("solved layout should be arranged")
	}

	// Swap the values 1 and 2 in place
	b.cells[3].value, b.cells[4].value = b.cells[4].value, b.cells[3].value
	if b.CheckArranged() {
		t.Error("board with 1 and 2 swapped should not be arranged")
	}
	b.cells[3].value, b.cells[4].value = b.cells[4].value, b.cells[3].value

	b.Move(DirDown)
	if b.CheckArranged() {
		t.Error("board with cursor off (0,0) should not be arranged")
	}
	b.Move(DirUp)
	if !b.CheckArranged() {
		t.Error("moving the cursor back should restore the arrangement")
	}
}

func TestLocateByAddress(t *testing.T) {
	b := newTestBoard(t, 3)

	tests := []struct {
		addr  Address
		index int
		ok    bool
	}{
		{Address{0, 0}, 0, true},
		{Address{2, 0}, 2, true},
		{Address{2, 3}, 11, true},
		{Address{-1, 0}, 0, false},
		{Address{3, 1}, 0, false},
		{Address{0, 4}, 0, false},
		{Address{0, -1}, 0, false},
	}

	for _, tc := range tests {
		i, ok := b.LocateByAddress(tc.addr)
		if ok != tc.ok || (ok && i != tc.index) {
			t.Errorf("LocateByAddress(%v) = (%d, %v), want (%d, %v)", tc.addr, i, ok, tc.index, tc.ok)
		}
	}
}

func TestLocateCursorRecoversStaleCache(t *testing.T) {
	b := newTestBoard(t, 3)
	b.Move(DirDown)

	b.cursor = 7
	i, ok := b.LocateCursor()
	if !ok || i != 3 {
		t.Errorf("LocateCursor() = (%d, %v), want (3, true)", i, ok)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := newTestBoard(t, 3)
	c := b.Clone()

	c.Move(DirDown)
	if b.Cursor() != (Address{0, 0}) {
		t.Error("moving the clone changed the original")
	}
	if c.Cursor() != (Address{0, 1}) {
		t.Errorf("clone Cursor() = %v, want (0,1)", c.Cursor())
	}
}
