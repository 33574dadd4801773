package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/laser-bounce/internal/audio"
	"github.com/vovakirdan/laser-bounce/internal/config"
	"github.com/vovakirdan/laser-bounce/internal/core"
	"github.com/vovakirdan/laser-bounce/internal/games/laserbounce"
	"github.com/vovakirdan/laser-bounce/internal/platform/tui"
	"github.com/vovakirdan/laser-bounce/internal/storage"
)

// app holds everything a command shares: settings, logger, storage and sound.
type app struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	log     *log.Logger
	logFile io.Closer
	store   *storage.Store // nil if the database could not be opened
	player  *audio.Player  // nil when muted or without a sound device
}

// newApp loads configuration and opens the logger. Storage and audio are
// opened by withStore and withAudio.
func newApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	logger, closer, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return &app{
		cfg: cfg,
		runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		log:     logger,
		logFile: closer,
	}, nil
}

// withStore opens the scores database. A failure is a warning; the game
// still runs without saving scores.
func (a *app) withStore() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		a.log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return
	}
	a.store = store
}

// withAudio starts the speaker unless muted. A missing sound device means
// a silent game, not an error.
func (a *app) withAudio() {
	if flagMute {
		return
	}
	p := audio.New(a.cfg.Audio, a.log)
	if err := p.Init(); err != nil {
		a.log.Warn("sound disabled", "error", err)
		return
	}
	a.player = p
}

// best returns the stored best score, or 0.
func (a *app) best() int {
	if a.store == nil {
		return 0
	}
	best, err := a.store.BestScore(storage.BestScoreKey)
	if err != nil {
		a.log.Warn("could not read best score", "error", err)
	}
	return best
}

// options builds the session options for preset.
func (a *app) options(preset config.Preset) tui.Options {
	return tui.Options{
		Config:  a.cfg,
		Runtime: a.runtime,
		Preset:  preset,
		Store:   a.store,
		Audio:   a.audioOrNil(),
		Logger:  a.log,
	}
}

// audioOrNil keeps a nil *audio.Player from becoming a non-nil interface.
func (a *app) audioOrNil() laserbounce.Audio {
	if a.player == nil {
		return nil
	}
	return a.player
}

// Close releases storage, audio and the log file.
func (a *app) Close() {
	if a.player != nil {
		a.player.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn("could not close scores database", "error", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// openLogger returns a logger writing to path. The terminal belongs to the
// game, so logs never go to stdout or stderr. An empty path discards logs.
func openLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	if path == "" {
		return log.New(io.Discard), nil, nil
	}

	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("log file: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "laserbounce",
		Level:           lvl,
	})
	return logger, f, nil
}
