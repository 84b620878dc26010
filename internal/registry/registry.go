// Package registry keeps the puzzle variants known to the CLI and the runner.
// Each variant registers a factory from its package init(), so commands only
// need a blank import of the game package.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/slides/internal/core"
)

// Game is a puzzle session driven by logical input frames.
// Implementations hold no references to terminals, files or databases.
type Game interface {
	// ID is the variant key used on the command line and in the solves table.
	ID() string

	// Title is the display name, e.g. "Slides 3x3".
	Title() string

	// Reset starts a fresh board seeded from cfg.
	// The runner calls it once per session and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of actions and reports the resulting state.
	Step(in core.InputFrame) core.StepResult

	// State reports moves made, whether the board is solved, and whether
	// the home screen is showing.
	State() core.GameState
}

// Sizer is implemented by games played on a square grid.
type Sizer interface {
	BoardSize() int
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
	Size  int // 0 when the game does not report a grid size
}

// Factory creates a new, not yet reset, game.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a variant under id.
// Panics if id is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// A throwaway instance supplies the metadata
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if s, ok := g.(Sizer); ok {
		info.Size = s.BoardSize()
	}

	entries[id] = entry{factory: f, info: info}
}

// List returns all variants ordered by board size, then by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Size != result[j].Size {
			return result[i].Size < result[j].Size
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns the metadata of a registered variant.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
