package slides

// DefaultScatterMoves is the number of counted random moves in a shuffle.
const DefaultScatterMoves = 1000

// Rand is the randomness a shuffle needs. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// RandomDirection picks a direction uniformly.
func RandomDirection(rng Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}

// Scatter shuffles the board with DefaultScatterMoves random moves.
func (b *Board) Scatter(rng Rand) {
	b.ScatterN(rng, DefaultScatterMoves)
}

// ScatterN shuffles the board by walking the cursor through legal moves only, so the
// result is always solvable.
//
// The cursor first steps down off the header row. After that, a random move counts
// toward n only if it succeeds and leaves the board unarranged; refused moves and moves
// landing on the solved layout are retried without consuming the counter.
// The retry loop needs at least MinSize, which New enforces.
func (b *Board) ScatterN(rng Rand, n int) {
	b.Move(DirDown)

	for count := n; count > 0; count-- {
		for {
			if b.Move(RandomDirection(rng)) && !b.CheckArranged() {
				break
			}
		}
	}
}
