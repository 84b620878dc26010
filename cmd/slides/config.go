package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/slides/internal/config"
)

var (
	flagDefaults bool
	flagInit     bool
	flagForce    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective board config",
	Long: `Print the config new boards are built with and the file it came from.

Files are searched in this order: --config, ~/.slides/configs/slides.yaml,
./configs/slides.yaml, then the built-in defaults. --difficulty overrides
the scatter moves.

Examples:
  slides config
  slides config --difficulty hard
  slides config --defaults
  slides config --init`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
	configCmd.Flags().BoolVar(&flagInit, "init", false, "Write the defaults to ~/.slides/configs/slides.yaml")
	configCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file with --init")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	if flagInit {
		path := config.UserConfigPath()
		if path == "" {
			fmt.Fprintln(os.Stderr, "Error: cannot determine home directory")
			os.Exit(1)
		}
		if err := config.WriteDefault(path, flagForce); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		return
	}

	cfg, source, err := config.ResolveSlides(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplySlidesPreset(&cfg, preset)
		source += " (difficulty " + string(preset) + ")"
	} else if flagDifficulty != "" {
		logger.Warn("unknown difficulty ignored", "difficulty", flagDifficulty)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(styled(headerStyle, "# source: "+source))
	fmt.Print(string(out))
}
