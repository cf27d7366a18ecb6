// tetris is a terminal falling-block game, playable locally or over SSH.
//
// Usage:
//
//	tetris                   - Play (same as 'tetris play')
//	tetris play              - Play in the current terminal
//	tetris scores            - Show the high score table
//	tetris serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetris/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A terminal falling-block game with levels, scoring and a shared
high score table. Runs locally or serves sessions over SSH.

Available commands:
  play     - Play in the current terminal (default)
  scores   - View the high score table
  serve    - Start SSH server for remote play

Examples:
  tetris
  tetris play --difficulty hard
  tetris play --config ./my-rules.yaml
  tetris scores
  tetris serve --ssh :2222`,
	// Running without a subcommand starts a game
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
