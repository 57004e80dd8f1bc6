// flappy is a terminal side-scroller: keep the bird off the columns and
// collect the diamonds floating between them.
//
// Usage:
//
//	flappy                   - Play in the current terminal (same as "flappy play")
//	flappy play              - Play in the current terminal
//	flappy serve             - Start SSH server for remote play
//	flappy sim               - Run a headless simulation and print the result
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom world config YAML
//	--jump-mode <mode>   - Override jump rule: airborne or grounded
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagJumpMode string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - a side-scroller for your terminal",
	Long: `Flappy is a terminal side-scroller. Jump to stay clear of the
columns and pick up diamonds for points.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  sim      - Run a headless simulation
  config   - Print the effective configuration

Examples:
  flappy
  flappy play --seed 42
  flappy play --jump-mode grounded
  flappy serve --ssh :2222
  flappy sim --frames 600 --jump-every 20`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom world config YAML")
	rootCmd.PersistentFlags().StringVar(&flagJumpMode, "jump-mode", "", "Jump rule override: airborne, grounded")

	rootCmd.Flags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
