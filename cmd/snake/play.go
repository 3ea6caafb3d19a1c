package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagFrontend string
	flagSpeed    string
	flagTick     time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of snake.

Controls:
  w/a/s/d    - Up/Left/Down/Right
  q/Ctrl+C   - Quit

Speed options:
  easy    - 1.5x the tick interval
  normal  - The configured tick interval
  hard    - 0.6x the tick interval

Examples:
  snake play
  snake play --speed easy
  snake play --tick 80ms --frontend tea`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers play flags on cmd. The root command runs play too.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFrontend, "frontend", "", "Front end: term, tea, tcell (default from config)")
	cmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: easy, normal, hard")
	cmd.Flags().DurationVar(&flagTick, "tick", 0, "Base tick interval, e.g. 120ms")
}

// loadConfig loads the config file and applies command line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagFrontend != "" {
		cfg.Frontend = flagFrontend
	}
	if flagSpeed != "" {
		cfg.Speed = config.SpeedPreset(flagSpeed)
	}
	if flagTick != 0 {
		cfg.TickInterval = flagTick
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, _ []string) (err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if !registry.Exists(cfg.Frontend) {
		return fmt.Errorf("unknown frontend %q (run 'snake frontends' to list them)", cfg.Frontend)
	}
	frontend, err := registry.Create(cfg.Frontend)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() {
		err = withCloseError(err, closeLog)
	}()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := core.RuntimeConfig{
		ScreenW:      core.BoardWidth,
		ScreenH:      core.BoardHeight + 1,
		TickInterval: cfg.EffectiveInterval(),
		Seed:         seed,
	}

	game := snake.New()
	game.Reset(runtime)
	logger = logger.With("game", game.ID())
	logger.Info("starting game",
		"frontend", frontend.ID(), "speed", cfg.Speed, "tick", runtime.TickInterval, "seed", seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcome, err := frontend.Run(ctx, game, registry.Options{
		Runtime: runtime,
		Palette: cfg.Colors.Palette(),
		Logger:  logger,
	})
	interrupted := errors.Is(err, context.Canceled)
	if err != nil && !interrupted {
		return err
	}

	printOutcome(cmd.OutOrStdout(), outcome, interrupted)
	return nil
}

// withCloseError runs closeFn and reports its error unless err is already set.
func withCloseError(err error, closeFn func() error) error {
	if closeErr := closeFn(); closeErr != nil && err == nil {
		return closeErr
	}
	return err
}

// printOutcome writes the end-of-game summary.
func printOutcome(w io.Writer, outcome registry.Outcome, interrupted bool) {
	state := outcome.State
	switch {
	case state.Won:
		fmt.Fprintf(w, "\nBOARD FULL - YOU WIN\nFinal Score: %d\n", state.Score)
	case state.GameOver:
		fmt.Fprintf(w, "\nGAME OVER\nFinal Score: %d\n", state.Score)
	case interrupted:
		fmt.Fprintf(w, "\nInterrupted\nFinal Score: %d\n", state.Score)
	default:
		fmt.Fprintf(w, "\nFinal Score: %d\n", state.Score)
	}
}
