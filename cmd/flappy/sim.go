package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

var (
	flagFrames    int
	flagJumpEvery int
	flagVerbose   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal, feeding a jump every N frames,
and print how the run ended.

The run stops at game over or when the frame budget is spent.
With a fixed --seed the result is reproducible.

Examples:
  flappy sim --seed 42
  flappy sim --frames 3600 --jump-every 25
  flappy sim --jump-every 0 --verbose`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 600, "Frame budget (0 = until game over)")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 20, "Jump on every N-th frame (0 = never)")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log spawn, collect and crash events")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "flappy-sim"})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := loadWorldConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runtime := runtimeConfig()
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	game := flappy.New(cfg)
	game.Reset(runtime)

	sched := core.Scheduler{
		MaxFrames: flagFrames,
		Input:     core.JumpEvery(flagJumpEvery),
		OnFrame: func(frame int, res core.StepResult) {
			for _, e := range res.Events {
				logger.Debug(e.Kind.String(), "frame", frame, "score", e.Score)
			}
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := sched.Run(ctx, game)
	if err != nil {
		logger.Warn("simulation interrupted", "frames", summary.Frames)
	}

	fmt.Printf("seed:         %d\n", runtime.Seed)
	fmt.Printf("frames:       %d\n", summary.Frames)
	fmt.Printf("score:        %d\n", summary.State.Score)
	fmt.Printf("alive:        %t\n", !summary.State.GameOver)
	fmt.Printf("spawned:      %d\n", summary.Events[core.EventSpawn])
	fmt.Printf("collected:    %d\n", summary.Events[core.EventCollect])
	if summary.State.GameOver {
		fmt.Println(game.Summary())
	}
}
