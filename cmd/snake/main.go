// snake is a single-player snake game for the terminal.
//
// Usage:
//
//	snake                 - Play with the configured front end
//	snake play            - Play a game
//	snake config          - Print the effective configuration
//	snake frontends       - List available front ends
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - RNG seed for reproducible gameplay (0 = time based)
//	--log-file <path>   - Write logs to a file instead of stderr
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import front ends to register them
	_ "github.com/vovakirdan/tui-snake/internal/platform/cells"
	_ "github.com/vovakirdan/tui-snake/internal/platform/term"
	_ "github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is played on a walled 40x20 board. Steer with w/a/s/d,
eat food to grow, and avoid the walls and your own tail.

Available commands:
  play       - Play a game (default)
  config     - Print the effective configuration
  frontends  - List available front ends

Examples:
  snake
  snake play --speed hard
  snake play --frontend tea --seed 42
  snake config --config ./my-snake.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: stderr)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(frontendsCmd)
}
