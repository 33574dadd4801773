package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/laser-bounce/internal/config"
	"github.com/vovakirdan/laser-bounce/internal/platform/tui"
)

// runMenu is the default command: pick a difficulty, play, come back.
func runMenu(_ *cobra.Command, _ []string) {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	a.withStore()
	a.withAudio()
	defer a.Close()

	preset := config.PresetMedium
	for {
		menuResult, err := tui.RunMenu(a.cfg, a.runtime, preset, a.best())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		a.runtime = menuResult.Runtime

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(a.store, preset, a.runtime.ScreenW, a.runtime.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				break
			}
			if !goBack {
				break
			}
			continue
		}

		preset = menuResult.Preset
		a.log.Info("session started", "preset", preset)
		goBack, runtime, err := tui.Run(a.options(preset))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
		a.runtime = runtime
		if !goBack {
			break
		}
	}
}
