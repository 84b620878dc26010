package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slides/internal/registry"
	"github.com/vovakirdan/slides/internal/storage"
)

var (
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the best solves for a game",
	Long: `Display the solves with the fewest moves for a board, with totals.

Examples:
  slides scores slides
  slides scores slides4 --limit 3
  slides scores slides --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded solves for the game")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of solves to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'slides list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSolves(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("solves cleared", "game", gameID)
		fmt.Printf("Cleared all solves for %s.\n", info.Title)
		return
	}

	solves, err := store.BestSolves(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(styled(headerStyle, "Best Solves - "+info.Title))
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'slides new %s --save run.yaml' and replay it to record one.\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-20s  %s\n", "Rank", "Moves", "Seed", "Date")
	for i, sv := range solves {
		fmt.Printf("  %-4d  %-5d  %-20d  %s\n", i+1, sv.Moves, sv.Seed, sv.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		logger.Warn("could not read stats", "error", err)
		return
	}
	fmt.Println()
	fmt.Printf("%d solves, best %d moves, average %.1f, last on %s\n",
		stats.Solves, stats.BestMoves, stats.AvgMoves, stats.LastPlayed.Format("2006-01-02"))
}
