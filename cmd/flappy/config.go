package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the world configuration the game would run with, after
applying the config search order and the --jump-mode override.

Search order:
  --config <path>
  ~/.flappy/config.yaml
  ./configs/flappy.yaml
  built-in defaults

Examples:
  flappy config
  flappy config > ~/.flappy/config.yaml
  flappy config --config ./my-flappy.yaml --jump-mode grounded`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "flappy"})

	cfg, err := loadWorldConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Encode(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

// loadWorldConfig resolves the world config from the global flags.
func loadWorldConfig(logger *log.Logger) (config.FlappyConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if source == config.SourceBuiltin {
		logger.Warn("embedded config unusable, using built-in defaults")
	}
	logger.Debug("config loaded", "source", source)

	if flagJumpMode != "" {
		mode, err := config.ParseJumpMode(flagJumpMode)
		if err != nil {
			return cfg, err
		}
		cfg.Physics.JumpMode = mode
	}
	return cfg, cfg.Validate()
}
