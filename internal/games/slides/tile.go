package slides

import "github.com/vovakirdan/slides/internal/core"

// Address is a fixed grid coordinate. Row 0 is the header row above the play grid.
type Address struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// Step returns the neighboring address in the given direction.
func (a Address) Step(dir Direction) Address {
	dx, dy := dir.delta()
	return Address{Col: a.Col + dx, Row: a.Row + dy}
}

// Tile is a single grid cell.
//
// The address never changes after construction; the value, the selection flag and
// the source image region are the contents that move between addresses on a swap.
// The destination region describes where the cell sits on screen and stays with the
// address.
type Tile struct {
	address  Address
	value    int
	hasValue bool // false for blocking header tiles
	selected bool

	source    core.Rect // region of the preview image depicted by the value
	hasSource bool
	dest      core.Rect
}

// Address returns the tile's fixed grid coordinate.
func (t *Tile) Address() Address {
	return t.address
}

// Value returns the tile's value and whether it has one.
// Blocking tiles have no value; the cursor holds 0.
func (t *Tile) Value() (int, bool) {
	return t.value, t.hasValue
}

// Selected reports whether this tile currently holds the cursor.
func (t *Tile) Selected() bool {
	return t.selected
}

// Blocking reports whether this is an immovable header tile.
func (t *Tile) Blocking() bool {
	return !t.hasValue
}

// Source returns the preview image region attached to the tile's value.
func (t *Tile) Source() (core.Rect, bool) {
	return t.source, t.hasSource
}

// Dest returns the on-screen region of the cell.
func (t *Tile) Dest() core.Rect {
	return t.dest
}

// attemptSwap exchanges the contents of a and b.
// Refused with no mutation when b is a blocking tile.
func attemptSwap(a, b *Tile) bool {
	if !b.hasValue {
		return false
	}

	a.value, b.value = b.value, a.value
	a.hasValue, b.hasValue = b.hasValue, a.hasValue
	a.selected, b.selected = b.selected, a.selected

	// The image region always follows the value, including an absent one.
	a.source, b.source = b.source, a.source
	a.hasSource, b.hasSource = b.hasSource, a.hasSource

	return true
}

// TileView is a read-only copy of a tile for renderers.
type TileView struct {
	Address   Address
	Value     int
	HasValue  bool
	Selected  bool
	Blocking  bool
	Source    core.Rect
	HasSource bool
	Dest      core.Rect
}

func (t *Tile) view() TileView {
	return TileView{
		Address:   t.address,
		Value:     t.value,
		HasValue:  t.hasValue,
		Selected:  t.selected,
		Blocking:  !t.hasValue,
		Source:    t.source,
		HasSource: t.hasSource,
		Dest:      t.dest,
	}
}
