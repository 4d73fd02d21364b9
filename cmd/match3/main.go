// match3 is a timed match-3 puzzle for the terminal.
//
// Usage:
//
//	match3                   - Pick a ruleset, play and browse scores
//	match3 list              - List available rulesets
//	match3 play [ruleset]    - Play directly (default: match3)
//	match3 serve             - Start SSH server for remote play
//	match3 scores [ruleset]  - Show high scores
//	match3 config            - Print or check the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.match3/scores.db)
//	--log <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string

	// Game flags shared by play, serve and the root command
	flagConfig     string
	flagDifficulty string
	flagBell       bool
)

// logger is the debug logger configured by --log. It discards by default
// because the game owns the terminal.
var logger = log.New(io.Discard)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - a timed tile-matching puzzle in your terminal",
	Long: `Match-3 is a terminal puzzle: swap neighbouring tiles to line up three or
more of a colour, clear them for points and reach the level goal before the
clock runs out. Power tiles clear their whole row or column.

Available commands:
  list     - Show all rulesets
  play     - Play a ruleset directly
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print or check the configuration

Examples:
  match3
  match3 play --difficulty hard
  match3 play match3_commit
  match3 serve --ssh :2222
  match3 scores`,
	PersistentPreRunE: setupLogging,
	Run:               runSession,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on errors, level clears and game over")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging points the debug logger at --log and applies the game flags.
// Without --log, game logs are discarded so they cannot corrupt the screen.
func setupLogging(cmd *cobra.Command, _ []string) error {
	if flagDifficulty != "" && !validPreset(flagDifficulty) {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	match3.SetConfigPath(flagConfig)
	match3.SetDifficultyPreset(flagDifficulty)

	if flagLogPath == "" {
		return nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "match3",
	})
	match3.SetLogger(logger.WithPrefix("session"))
	logger.Debug("logging started", "command", cmd.Name())
	return nil
}
