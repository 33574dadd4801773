package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/laser-bounce/internal/config"
	"github.com/vovakirdan/laser-bounce/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round right away",
	Long: `Start playing without the menu.

Controls:
  Arrows/WASD  - Move
  Space        - Fire (once the laser is unlocked)
  P            - Pause/resume
  R            - Restart (paused or after game over)
  Esc/B        - Leave
  Q/Ctrl+C     - Quit

Difficulty options:
  easy    - 6 enemies, slower, steps every 400 points
  medium  - 8 enemies, steps every 400 points (default)
  hard    - 10 enemies, faster, steps every 250 points

Examples:
  laserbounce play
  laserbounce play --difficulty hard
  laserbounce play --seed 42 --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "Difficulty preset: easy, medium, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	a.withStore()
	a.withAudio()

	_, _, runErr := tui.Run(a.options(preset))

	// Close before a potential exit
	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
