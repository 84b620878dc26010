// Package slides implements a sliding-tile puzzle: a grid of numbered tiles and one
// cursor tile that swaps with its neighbors.
package slides

import (
	"errors"

	"github.com/vovakirdan/slides/internal/core"
)

// MinSize is the smallest play grid that a shuffle can leave unsolved.
const MinSize = 2

// Blocked marks header tiles in value grids.
const Blocked = -1

// ErrInvalidSize is returned when a board is requested below MinSize.
var ErrInvalidSize = errors.New("slides: board size must be at least 2")

// Layout controls the on-screen geometry of a board.
type Layout struct {
	TileSize int
	Spacing  int
}

// DefaultLayout returns 100px tiles with 10px gaps.
func DefaultLayout() Layout {
	return Layout{TileSize: 100, Spacing: 10}
}

// offset returns the pixel offset of the n-th column or row.
func (l Layout) offset(n int) int {
	return l.TileSize*n + l.Spacing*n
}

// Board is a size×size play grid below a header row.
//
// Cells are stored in construction order: the cursor at (0,0), the blocking header
// tiles (1..size-1, 0), then the numbered tiles row-major from row 1. The order is
// what CheckArranged scans, so it must never be changed.
type Board struct {
	size   int
	origin core.Point
	layout Layout

	cells  []Tile
	index  map[Address]int
	cursor int // index of the selected tile
}

// New creates a solved board using DefaultLayout.
func New(size int, origin core.Point) (*Board, error) {
	return NewWithLayout(size, origin, DefaultLayout())
}

// NewWithLayout creates a solved board with the given tile geometry.
func NewWithLayout(size int, origin core.Point, layout Layout) (*Board, error) {
	if size < MinSize {
		return nil, ErrInvalidSize
	}

	b := &Board{
		size:   size,
		origin: origin,
		layout: layout,
		cells:  make([]Tile, 0, size*size+size),
		index:  make(map[Address]int, size*size+size),
	}

	// Cursor occupies the first header cell
	b.add(Tile{
		address:  Address{Col: 0, Row: 0},
		value:    0,
		hasValue: true,
		selected: true,
		dest:     b.destRect(0, 0),
	})

	// Immovable header tiles
	for x := 1; x < size; x++ {
		b.add(Tile{
			address: Address{Col: x, Row: 0},
			dest:    b.destRect(x, 0),
		})
	}

	// Numbered tiles, row-major below the header
	for i := range size * size {
		x := i % size
		y := i/size + 1
		b.add(Tile{
			address:   Address{Col: x, Row: y},
			value:     i + 1,
			hasValue:  true,
			source:    core.NewRect(layout.offset(x), layout.offset(y-1), layout.TileSize, layout.TileSize),
			hasSource: true,
			dest:      b.destRect(x, y),
		})
	}

	b.cursor = 0
	return b, nil
}

func (b *Board) add(t Tile) {
	b.index[t.address] = len(b.cells)
	b.cells = append(b.cells, t)
}

func (b *Board) destRect(x, y int) core.Rect {
	pos := b.origin.Add(core.NewPoint(b.layout.offset(x), b.layout.offset(y)))
	return core.NewRect(pos.X, pos.Y, b.layout.TileSize, b.layout.TileSize)
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		size:   b.size,
		origin: b.origin,
		layout: b.layout,
		cells:  make([]Tile, len(b.cells)),
		index:  make(map[Address]int, len(b.index)),
		cursor: b.cursor,
	}
	copy(c.cells, b.cells)
	for addr, i := range b.index {
		c.index[addr] = i
	}
	return c
}

// Size returns the play grid dimension.
func (b *Board) Size() int {
	return b.size
}

// Origin returns the top-left corner of the board.
func (b *Board) Origin() core.Point {
	return b.origin
}

// Len returns the number of cells including header tiles.
func (b *Board) Len() int {
	return len(b.cells)
}

// Tile returns the cell at index i in construction order.
func (b *Board) Tile(i int) TileView {
	return b.cells[i].view()
}

// Tiles returns read-only views of all cells in construction order.
func (b *Board) Tiles() []TileView {
	views := make([]TileView, len(b.cells))
	for i := range b.cells {
		views[i] = b.cells[i].view()
	}
	return views
}

// Cursor returns the address currently holding the cursor.
func (b *Board) Cursor() Address {
	i, ok := b.LocateCursor()
	if !ok {
		return Address{}
	}
	return b.cells[i].address
}

// Grid returns the values by row and column. Header tiles read as Blocked.
func (b *Board) Grid() [][]int {
	grid := make([][]int, b.size+1)
	for y := range grid {
		grid[y] = make([]int, b.size)
	}
	for i := range b.cells {
		t := &b.cells[i]
		v := Blocked
		if t.hasValue {
			v = t.value
		}
		grid[t.address.Row][t.address.Col] = v
	}
	return grid
}

// CheckArranged reports whether the defined values appear as 0, 1, 2, ... in
// construction order, i.e. the board is back in its solved layout.
func (b *Board) CheckArranged() bool {
	want := 0
	for i := range b.cells {
		v, ok := b.cells[i].Value()
		if !ok {
			continue
		}
		if v != want {
			return false
		}
		want++
	}
	return true
}
