// slides is a sliding-tile puzzle engine driven from the command line.
//
// Usage:
//
//	slides list              - List available puzzle sizes
//	slides new [game]        - Scatter a new board and print it
//	slides replay <script>   - Replay a YAML move script and record the solve
//	slides scores <game>     - Show the best solves for a game
//	slides config            - Show the effective board config
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible shuffles
//	--db <path>          - Set database path (default: ~/.slides/solves.db)
//	--config <path>      - Path to custom slides config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--log-level <level>  - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slides/internal/games/slides"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "slides",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slides",
	Short: "Slides - a sliding-tile puzzle",
	Long: `Slides shuffles a grid of numbered tiles by random legal moves and
checks move scripts against it.

Available commands:
  list     - Show all puzzle sizes
  new      - Scatter a board and print it as YAML
  replay   - Apply a move script and record the result
  scores   - View the best solves
  config   - Show or initialize the board config

Examples:
  slides list
  slides new --seed 42
  slides new slides4 --save run.yaml
  slides replay run.yaml
  slides scores slides`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slides/solves.db", "Path to solves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom slides config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies the global flags before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	// Set config path and difficulty for games before creation
	slides.SetConfigPath(flagConfig)
	slides.SetDifficultyPreset(flagDifficulty)
	return nil
}
