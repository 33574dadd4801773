// laserbounce is a terminal build of the Laser Bounce arcade game: dodge
// bouncing enemies, collect orbs and earn a laser.
//
// Usage:
//
//	laserbounce                 - Start menu (difficulty, instructions, scores)
//	laserbounce play            - Play right away
//	laserbounce scores          - Show high scores
//	laserbounce config          - Print the active configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.laserbounce/scores.db)
//	--config <path>       - Load settings from a YAML file
//	--mute                - Disable sound
//	--log-file <path>     - Write logs to a file (default: ~/.laserbounce/laserbounce.log)
//	--log-level <level>   - debug, info, warn or error (default: info)
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
	flagDBPath   string
	flagConfig   string
	flagMute     bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "laserbounce",
	Short: "Laser Bounce - dodge, collect and shoot in your terminal",
	Long: `Laser Bounce is a terminal arcade game. Enemies bounce around the field;
touch one and the run is over. Orbs are worth points, and at 200 points you
earn a laser that recharges every 200 points after that.

Running without a command opens the start menu.

Available commands:
  play     - Play right away with a difficulty
  scores   - View high scores
  config   - Print the active configuration

Examples:
  laserbounce
  laserbounce play --difficulty hard
  laserbounce scores --difficulty easy`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.laserbounce/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.laserbounce/laserbounce.log", "Log file path (empty = no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
