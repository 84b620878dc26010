// Package runner drives a game headlessly: it feeds input frames, restarts
// finished games on request and records solves.
package runner

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/slides/internal/core"
	"github.com/vovakirdan/slides/internal/registry"
	"github.com/vovakirdan/slides/internal/storage"
)

// SolveSaver persists finished games. *storage.Store implements it.
type SolveSaver interface {
	SaveSolve(solve storage.Solve) (int64, error)
}

// configReporter is implemented by games that fall back to defaults when their
// config cannot be loaded.
type configReporter interface {
	ConfigErr() error
}

// Runner owns one play session of a game.
type Runner struct {
	game       registry.Game
	store      SolveSaver
	logger     *log.Logger
	config     core.RuntimeConfig
	runID      string
	gameState  core.GameState
	solveSaved bool // Whether the current solve has been recorded
	solves     int
}

// New creates a runner for the given game. store may be nil.
func New(game registry.Game, store SolveSaver, cfg core.RuntimeConfig, logger *log.Logger) *Runner {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Runner{
		game:   game,
		store:  store,
		logger: logger.With("game", game.ID()),
		config: cfg,
		runID:  uuid.NewString(),
	}
}

// Start resets the game and returns its initial state.
func (r *Runner) Start() core.GameState {
	r.game.Reset(r.config)
	if cr, ok := r.game.(configReporter); ok {
		if err := cr.ConfigErr(); err != nil {
			r.logger.Warn("using default config", "error", err)
		}
	}
	r.gameState = r.game.State()
	r.solveSaved = false
	r.logger.Debug("game started", "run", r.runID, "seed", r.config.Seed)
	return r.gameState
}

// Step applies one input frame.
func (r *Runner) Step(in core.InputFrame) core.StepResult {
	// Check for restart
	if in.Has(core.ActionRestart) && r.gameState.GameOver {
		r.config.Seed++
		r.Start()
		return core.StepResult{State: r.gameState}
	}

	result := r.game.Step(in)
	r.gameState = result.State

	// A new board from the home screen clears the solved state
	if !r.gameState.GameOver {
		r.solveSaved = false
		return result
	}

	// Save solve on game over (once)
	if !r.solveSaved {
		r.solveSaved = true
		r.solves++
		r.logger.Info("puzzle solved", "run", r.runID, "moves", r.gameState.Score)
		r.saveSolve()
	}

	return result
}

func (r *Runner) saveSolve() {
	if r.store == nil {
		return
	}

	_, err := r.store.SaveSolve(storage.Solve{
		RunID:  r.runID,
		GameID: r.game.ID(),
		Seed:   r.config.Seed,
		Moves:  r.gameState.Score,
	})
	if err != nil {
		// Best-effort save, the session continues regardless
		r.logger.Warn("could not save solve", "error", err)
	}
}

// Run starts the game and applies frames until they run out or one asks to quit.
func (r *Runner) Run(frames []core.InputFrame) core.GameState {
	r.Start()
	for _, in := range frames {
		if in.Has(core.ActionQuit) {
			break
		}
		r.Step(in)
	}
	return r.gameState
}

// RunID returns the unique identifier of this session.
func (r *Runner) RunID() string {
	return r.runID
}

// Seed returns the seed of the current game.
func (r *Runner) Seed() int64 {
	return r.config.Seed
}

// Solves returns how many games were solved in this session.
func (r *Runner) Solves() int {
	return r.solves
}

// State returns the most recent game state.
func (r *Runner) State() core.GameState {
	return r.gameState
}
