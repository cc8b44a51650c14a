// runcade is a TUI arcade for endless-runner style games in the terminal.
//
// Usage:
//
//	runcade list              - List available games
//	runcade play <game>       - Play a game
//	runcade menu              - Start menu to pick games interactively
//	runcade serve             - Start SSH server for remote play
//	runcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.runcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okulov/runcade/internal/locale"

	// Import games to register them
	_ "github.com/okulov/runcade/internal/games/runner"
	_ "github.com/okulov/runcade/internal/games/snake"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagStrings string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runcade",
	Short: "Runcade - Play retro games in your terminal",
	Long: `Runcade is a terminal-based gaming platform that lets you play
classic-style games directly in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  runcade list
  runcade play runner
  runcade menu
  runcade serve --ssh :2222
  runcade scores runner`,
	PersistentPreRunE: loadStrings,
}

// loadStrings applies an optional custom strings table and validates that
// every key the games render is present, so a broken table fails at startup
// instead of leaking raw keys onto the screen.
func loadStrings(_ *cobra.Command, _ []string) error {
	if flagStrings != "" {
		data, err := os.ReadFile(flagStrings)
		if err != nil {
			return fmt.Errorf("cannot read strings table: %w", err)
		}
		if err := locale.Load(data); err != nil {
			return err
		}
	}
	return locale.Validate()
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStrings, "strings", "", "Path to custom UI strings YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
