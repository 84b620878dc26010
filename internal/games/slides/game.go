package slides

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/slides/internal/config"
	"github.com/vovakirdan/slides/internal/core"
	"github.com/vovakirdan/slides/internal/registry"
)

// Screen is the part of the session currently shown.
type Screen string

const (
	ScreenHome Screen = "home"
	ScreenPlay Screen = "play"
)

// Game wraps a Board as a registry game: it owns the RNG, counts moves and
// handles the session commands (new game, help, back to home).
type Game struct {
	id    string
	title string
	size  int

	rng  *rand.Rand
	tick uint64

	cfg    config.SlidesConfig
	cfgErr error // load failure that made Reset fall back to defaults
	board  *Board
	screen Screen
	help   bool
	moves  int
	solved bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// NewSized creates a game on a size×size grid.
// Panics if size is below MinSize.
func NewSized(size int) *Game {
	if size < MinSize {
		panic(fmt.Sprintf("slides: invalid board size %d", size))
	}

	id := "slides"
	if size != 3 {
		id = fmt.Sprintf("slides%d", size)
	}

	return &Game{
		id:     id,
		title:  fmt.Sprintf("Slides %dx%d", size, size),
		size:   size,
		screen: ScreenHome,
	}
}

// NewGame creates the classic 3x3 game.
func NewGame() *Game {
	return NewSized(3)
}

func init() {
	registry.Register("slides", func() registry.Game {
		return NewGame()
	})
	registry.Register("slides4", func() registry.Game {
		return NewSized(4)
	})
	registry.Register("slides5", func() registry.Game {
		return NewSized(5)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the config and starts a freshly scattered board.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadSlides(configPath)
	if err != nil {
		cfg = config.DefaultSlidesConfig()
	}
	g.cfgErr = err

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplySlidesPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.help = false
	g.startBoard()
}

// startBoard replaces the board with a new scattered one.
func (g *Game) startBoard() {
	origin := core.NewPoint(g.cfg.Board.OriginX, g.cfg.Board.OriginY)
	layout := Layout{TileSize: g.cfg.Board.TileSize, Spacing: g.cfg.Board.Spacing}

	// size is validated by NewSized
	board, _ := NewWithLayout(g.size, origin, layout)
	board.ScatterN(g.rng, g.cfg.Scatter.Moves)

	g.board = board
	g.moves = 0
	g.solved = false
	g.screen = ScreenPlay
}

// Step applies one input frame.
//
// Directional actions slide a tile into the gap, so the cursor travels the
// opposite way: Up moves the tile below the gap upward.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.screen == ScreenHome {
		// Nothing to start until Reset has seeded the RNG
		if in.Has(core.ActionConfirm) && g.rng != nil {
			g.startBoard()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionBack) {
		g.screen = ScreenHome
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionHelp) {
		g.help = !g.help
	}

	// Don't process moves once solved
	if g.solved {
		return core.StepResult{State: g.State()}
	}

	dir, ok := slideDirection(in)
	if !ok || !g.board.Move(dir) {
		return core.StepResult{State: g.State()}
	}

	g.moves++
	if g.board.CheckArranged() {
		g.solved = true
	}

	return core.StepResult{State: g.State(), Moved: true}
}

// slideDirection maps a tile slide action to the cursor direction.
func slideDirection(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirDown, true
	case in.Has(core.ActionDown):
		return DirUp, true
	case in.Has(core.ActionLeft):
		return DirRight, true
	case in.Has(core.ActionRight):
		return DirLeft, true
	}
	return DirUp, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.moves,
		GameOver: g.solved,
		Paused:   g.screen == ScreenHome,
	}
}

// BoardSize returns the play grid dimension.
func (g *Game) BoardSize() int {
	return g.size
}

// ConfigErr returns the error that made the last Reset use the default config, if any.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// Board returns the live board. Callers must treat it as read-only.
func (g *Game) Board() *Board {
	return g.board
}

// Help reports whether the help overlay is shown.
func (g *Game) Help() bool {
	return g.help
}

// Screen returns the current screen.
func (g *Game) Screen() Screen {
	return g.screen
}

// Moves returns the number of successful moves on the current board.
func (g *Game) Moves() int {
	return g.moves
}
