// checkers is a 3x3 board game played with the mouse in the terminal.
//
// Usage:
//
//	checkers                 - Play (click a piece, click a highlighted cell, q quits)
//	checkers variants        - List available rule variants
//	checkers history         - Browse journaled sessions and their moves
//	checkers config init     - Write the default config file
//
// Global flags:
//
//	--config <path>   - Config file (default: $XDG_CONFIG_HOME/tui-checkers/config.yaml)
//	--db <path>       - Journal database (default: $XDG_DATA_HOME/tui-checkers/journal.db)
//	--driver <name>   - Terminal driver: tcell or tea
//	--variant <id>    - Rule variant to play
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-checkers/internal/games/checkers"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagDriver  string
	flagVariant string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "checkers",
	Short: "Checkers 3x3 - a tiny mouse-driven board in your terminal",
	Long: `Checkers 3x3 draws a three by three board in the middle of the terminal.
Your pieces start on the bottom row, the computer's on the top row.

Controls:
  Click a blue piece      - Select it and highlight its moves
  Click a marked cell     - Move the selected piece there
  Click anywhere else     - Deselect
  q                       - Quit

Examples:
  checkers
  checkers --variant checkers-diagonal
  checkers --driver tea
  checkers history`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the move journal database")
	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "", "Terminal driver: tcell or tea")
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", "", "Rule variant (see 'checkers variants')")

	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
