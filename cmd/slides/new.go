package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/slides/internal/core"
	"github.com/vovakirdan/slides/internal/games/slides"
	"github.com/vovakirdan/slides/internal/registry"
	"github.com/vovakirdan/slides/internal/script"
)

var flagSave string

var newCmd = &cobra.Command{
	Use:   "new [game]",
	Short: "Scatter a new board",
	Long: `Create a board, scatter it and print the snapshot as YAML.

The grid lists the header row first; -1 marks the immovable header tiles
and 0 is the gap. With --save, an empty move script for the same game and
seed is written so the board can be replayed.

Examples:
  slides new
  slides new slides4 --seed 7
  slides new --difficulty easy --save run.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runNew,
}

func init() {
	newCmd.Flags().StringVar(&flagSave, "save", "", "Write a replayable script skeleton to this path")
}

// snapshotter is implemented by games that can describe their board.
type snapshotter interface {
	Snapshot() slides.Snapshot
}

func runNew(cmd *cobra.Command, args []string) {
	gameID := "slides"
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'slides list' to see available games.")
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game.Reset(core.RuntimeConfig{Seed: seed})
	if g, ok := game.(*slides.Game); ok && g.ConfigErr() != nil {
		logger.Warn("using default config", "error", g.ConfigErr())
	}
	logger.Debug("board scattered", "game", gameID, "seed", seed)

	snap, ok := game.(snapshotter)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: game %q cannot be printed\n", gameID)
		os.Exit(1)
	}

	out, err := yaml.Marshal(struct {
		Seed     int64           `yaml:"seed"`
		Snapshot slides.Snapshot `yaml:"snapshot"`
	}{seed, snap.Snapshot()})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding snapshot: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))

	if flagSave == "" {
		return
	}

	data, err := script.Encode(script.Script{Game: gameID, Seed: seed})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding script: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(flagSave, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing script: %v\n", err)
		os.Exit(1)
	}
	logger.Info("script saved", "path", flagSave)
}
