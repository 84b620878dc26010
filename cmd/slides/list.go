package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slides/internal/config"
	"github.com/vovakirdan/slides/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the puzzle sizes",
	Long: `Show every registered board with its grid size and tile count, along
with the number of scatter moves a new board gets under the current
config and difficulty.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No boards registered.")
		return
	}

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	fmt.Println(styled(headerStyle, fmt.Sprintf("  %-*s  %-5s  %5s  %s", idWidth, "ID", "Board", "Tiles", "Title")))
	for _, g := range games {
		board, tiles := "-", "-"
		if g.Size > 0 {
			board = fmt.Sprintf("%dx%d", g.Size, g.Size)
			tiles = fmt.Sprint(g.Size * g.Size)
		}
		fmt.Printf("  %-*s  %-5s  %5s  %s\n", idWidth, g.ID, board, tiles, g.Title)
	}

	cfg, err := config.LoadSlides(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplySlidesPreset(&cfg, preset)
	}

	fmt.Println()
	fmt.Printf("New boards are scattered with %d moves. Run 'slides new <id>' to start one.\n", cfg.Scatter.Moves)
}
