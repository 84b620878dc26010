package slides

// Direction is the way the cursor travels on a move.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in a fixed order for random selection.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a lowercase name for the direction.
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

// Opposite returns the direction that undoes a move in d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// LocateCursor returns the index of the selected tile.
// The cached index is verified and the cells rescanned if it went stale.
func (b *Board) LocateCursor() (int, bool) {
	if b.cursor >= 0 && b.cursor < len(b.cells) && b.cells[b.cursor].selected {
		return b.cursor, true
	}
	for i := range b.cells {
		if b.cells[i].selected {
			b.cursor = i
			return i, true
		}
	}
	return 0, false
}

// LocateByAddress returns the index of the tile at addr, or false when addr is off-grid.
func (b *Board) LocateByAddress(addr Address) (int, bool) {
	i, ok := b.index[addr]
	return i, ok
}

// Move swaps the cursor with its neighbor in dir.
// Returns false at a grid edge or when the neighbor is a blocking tile.
func (b *Board) Move(dir Direction) bool {
	from, ok := b.LocateCursor()
	if !ok {
		return false
	}

	to, ok := b.LocateByAddress(b.cells[from].address.Step(dir))
	if !ok {
		return false
	}

	if !attemptSwap(&b.cells[from], &b.cells[to]) {
		return false
	}

	b.cursor = to
	return true
}
