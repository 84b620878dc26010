package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/slides/internal/core"
	"github.com/vovakirdan/slides/internal/platform/runner"
	"github.com/vovakirdan/slides/internal/registry"
	"github.com/vovakirdan/slides/internal/script"
	"github.com/vovakirdan/slides/internal/storage"
)

var flagNoSave bool

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Replay a move script",
	Long: `Load a YAML move script, scatter the board with its seed and apply
every action in order. Solves are recorded in the database.

Script format:
  game: slides
  seed: 42
  actions: [up, up, left, down, help, back, confirm, restart, quit]

Directional actions slide a tile into the gap: "up" moves the tile
below the gap upward.

Examples:
  slides replay run.yaml
  slides replay run.yaml --no-save`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record solves")
}

func runReplay(cmd *cobra.Command, args []string) {
	s, err := script.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(s.Game)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", s.Game)
		fmt.Fprintln(os.Stderr, "Run 'slides list' to see available games.")
		os.Exit(1)
	}

	// --seed overrides the script seed
	seed := s.Seed
	if flagSeed != 0 {
		seed = flagSeed
	}

	var (
		store    *storage.Store
		saver    runner.SolveSaver
		prevBest int
	)
	if !flagNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open solves database", "error", err)
			// Continue without storage - replay still works
		} else {
			defer store.Close()
			saver = store
			if prevBest, err = store.BestMoves(s.Game); err != nil {
				logger.Warn("could not read best solve", "error", err)
			}
		}
	}

	r := runner.New(game, saver, core.RuntimeConfig{Seed: seed}, logger)
	state := r.Run(s.Frames())

	if snap, ok := game.(snapshotter); ok {
		out, err := yaml.Marshal(snap.Snapshot())
		if err == nil {
			fmt.Print(string(out))
		}
	}

	fmt.Println()
	switch {
	case r.Solves() > 0 && state.GameOver:
		fmt.Println(styled(okStyle, fmt.Sprintf("Solved in %d moves (seed %d).", state.Score, r.Seed())))
	case r.Solves() > 0:
		fmt.Printf("Solved %d board(s); current board unsolved after %d moves.\n", r.Solves(), state.Score)
	default:
		fmt.Printf("Not solved after %d moves (seed %d).\n", state.Score, r.Seed())
	}

	if store != nil && r.Solves() > 0 {
		printRunSolves(store, r.RunID(), prevBest)
	}
}

// printRunSolves lists the solves recorded by this replay and flags a new record.
func printRunSolves(store *storage.Store, runID string, prevBest int) {
	solves, err := store.RunSolves(runID)
	if err != nil {
		logger.Warn("could not read recorded solves", "error", err)
		return
	}

	fmt.Println()
	fmt.Println(styled(headerStyle, "Recorded this run:"))
	best := 0
	for _, sv := range solves {
		fmt.Printf("  seed %-20d  %d moves\n", sv.Seed, sv.Moves)
		if best == 0 || sv.Moves < best {
			best = sv.Moves
		}
	}

	if best > 0 && (prevBest == 0 || best < prevBest) {
		fmt.Println(styled(okStyle, fmt.Sprintf("New best: %d moves.", best)))
	} else if prevBest > 0 {
		fmt.Printf("Best so far: %d moves.\n", prevBest)
	}
}
