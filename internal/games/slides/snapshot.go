package slides

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying GameStateType = "playing"
	StateSolved  GameStateType = "solved"
	StateHome    GameStateType = "home"
)

// Snapshot captures the complete game state for determinism testing and replay output.
type Snapshot struct {
	Tick     uint64        `yaml:"tick"`
	Game     string        `yaml:"game"`
	Size     int           `yaml:"size"`
	Moves    int           `yaml:"moves"`
	Help     bool          `yaml:"help"`
	Cursor   Address       `yaml:"cursor"`
	Grid     [][]int       `yaml:"grid"` // header row first; Blocked marks header tiles
	Arranged bool          `yaml:"arranged"`
	State    GameStateType `yaml:"state"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.screen == ScreenHome:
		state = StateHome
	case g.solved:
		state = StateSolved
	}

	snap := Snapshot{
		Tick:  g.tick,
		Game:  g.id,
		Size:  g.size,
		Moves: g.moves,
		Help:  g.help,
		State: state,
	}
	if g.board != nil {
		snap.Cursor = g.board.Cursor()
		snap.Grid = g.board.Grid()
		snap.Arranged = g.board.CheckArranged()
	}
	return snap
}
