// jigsaw is a TUI jigsaw puzzle for assembling pictures in the terminal.
//
// Usage:
//
//	jigsaw play              - Start a puzzle directly
//	jigsaw menu              - Pick a difficulty interactively
//	jigsaw serve             - Start SSH server for remote play
//	jigsaw solves            - Show recorded solves
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible shuffles
//	--db <path>     - Set database path (default: ~/.jigsaw/solves.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
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
	Use:   "jigsaw",
	Short: "TUI Jigsaw - Assemble puzzles in your terminal",
	Long: `TUI Jigsaw cuts a picture into interlocking pieces and lets you
drag them together with the mouse, directly in your terminal.

Available commands:
  play     - Start a puzzle directly
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  solves   - View recorded solves

Examples:
  jigsaw play
  jigsaw play --image ./photo.png --difficulty hard
  jigsaw menu
  jigsaw serve --ssh :2222
  jigsaw solves
  jigsaw solves hard`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jigsaw/solves.db", "Path to solves database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(solvesCmd)
}
