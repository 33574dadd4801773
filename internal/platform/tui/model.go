package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/laser-bounce/internal/config"
	"github.com/vovakirdan/laser-bounce/internal/core"
	"github.com/vovakirdan/laser-bounce/internal/games/laserbounce"
	"github.com/vovakirdan/laser-bounce/internal/storage"
)

// footerHeight is the number of terminal rows reserved for the help bar.
const footerHeight = 1

// HistoryID returns the score history a preset's runs are saved under.
func HistoryID(p config.Preset) string {
	return "laserbounce:" + string(p)
}

// Options configures a game session.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Preset  config.Preset
	Store   *storage.Store    // nil disables score saving
	Audio   laserbounce.Audio // nil plays nothing
	Logger  *log.Logger
}

// runListener records the notifications of the current run.
type runListener struct {
	score int
	final int
	ended bool
}

func (l *runListener) ScoreUpdated(score int) { l.score = score }

func (l *runListener) GameOver(finalScore int) {
	l.final = finalScore
	l.ended = true
}

func (l *runListener) reset() {
	*l = runListener{}
}

// Model is the Bubble Tea model for one Laser Bounce session. Restarts
// stay inside the session; going back to the menu ends it.
type Model struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	preset  config.Preset
	driver  *laserbounce.Driver
	sched   *cmdScheduler
	events  *runListener
	hold    *holdTracker
	keys    KeyMap
	help    help.Model
	screen  *core.Screen
	store   *storage.Store
	log     *log.Logger
	now     func() time.Time

	best     int
	newBest  bool
	paused   bool
	over     bool
	back     bool
	quitting bool
}

// NewModel creates a session model. The first run starts in Init.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	sched := &cmdScheduler{}
	events := &runListener{}
	driver := laserbounce.NewDriver(opts.Config, laserbounce.Options{
		Scheduler: sched,
		Listener:  events,
		Audio:     opts.Audio,
		Logger:    opts.Logger,
		Seed:      opts.Runtime.Seed,
		TickRate:  opts.Runtime.TickRate,
	})

	m := Model{
		cfg:     opts.Config,
		runtime: opts.Runtime,
		preset:  opts.Preset,
		driver:  driver,
		sched:   sched,
		events:  events,
		hold:    newHoldTracker(opts.Config.Input.HoldInitial, opts.Config.Input.HoldRepeat),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		screen:  core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-footerHeight, 0)),
		store:   opts.Store,
		log:     opts.Logger,
		now:     time.Now,
	}
	m.help.Width = opts.Runtime.ScreenW
	m.resizeViewport()

	if m.store != nil {
		best, err := m.store.BestScore(storage.BestScoreKey)
		if err != nil {
			m.log.Warn("could not read best score", "error", err)
		}
		m.best = best
	}

	return m
}

// Init starts the first run.
func (m Model) Init() tea.Cmd {
	m.driver.Start(m.preset)
	return m.sched.Flush()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 0))
		m.help.Width = msg.Width
		m.resizeViewport()
		return m, nil

	case timerMsg:
		return m.handleTimer(msg.timer)
	}

	return m, nil
}

// handleTimer feeds a fired timer to the driver. Held directions are
// sampled once per frame.
func (m Model) handleTimer(t laserbounce.Timer) (tea.Model, tea.Cmd) {
	if t.Kind == laserbounce.TimerFrame {
		m.driver.SetInput(laserbounce.InputFromFrame(m.hold.Frame(m.now())))
	}
	m.driver.Handle(t)

	if m.events.ended && !m.over {
		m.finishRun()
	}
	return m, m.sched.Flush()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.driver.Stop()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.driver.Stop()
		m.back = true
		return m, tea.Quit
	}
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("could not save screenshot", "error", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch {
	case action == core.ActionRestart && (m.over || m.paused):
		m.restart()
	case m.over:
		// Only restart, back and quit apply after the run ended.
	case action == core.ActionPause:
		m.togglePause()
	case m.paused:
		// Movement and fire wait for resume.
	case action == core.ActionFire:
		m.driver.Fire()
	case action.IsDirection():
		m.hold.Press(action, m.now())
	}

	return m, m.sched.Flush()
}

func (m *Model) togglePause() {
	if m.paused {
		if m.driver.Resume() {
			m.paused = false
		}
		return
	}
	m.driver.Stop()
	m.hold.Reset()
	m.paused = true
}

func (m *Model) restart() {
	m.events.reset()
	m.hold.Reset()
	m.over = false
	m.paused = false
	m.newBest = false
	m.driver.Restart()
}

// finishRun latches the game-over screen and saves the score. Storage
// failures are logged; the session carries on without them.
func (m *Model) finishRun() {
	m.over = true
	m.hold.Reset()
	final := m.events.final

	if final > m.best {
		m.best = final
		m.newBest = true
	}

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(HistoryID(m.preset), final); err != nil {
		m.log.Warn("could not save score", "score", final, "error", err)
	}
	changed, err := m.store.RecordBest(storage.BestScoreKey, final)
	if err != nil {
		m.log.Warn("could not record best score", "score", final, "error", err)
		return
	}
	if changed {
		m.log.Info("new best score", "score", final, "preset", m.preset)
	}
}

func (m *Model) resizeViewport() {
	m.driver.Resize(laserbounce.PlayfieldSize(m.runtime.ScreenW, m.runtime.ScreenH-footerHeight, m.cfg.Display))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.driver.Render(m.screen)
	m.drawBest()

	switch {
	case m.over:
		m.drawOverlay("GAME OVER", m.gameOverLines())
	case m.paused:
		m.drawOverlay("PAUSED", []string{"P resume", "R restart"})
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// drawBest writes the best score into the HUD row, centered.
func (m Model) drawBest() {
	text := fmt.Sprintf("BEST %d", m.best)
	x := (m.screen.Width() - len(text)) / 2
	if x < 28 {
		return // no room beside the score and ammo readouts
	}
	m.screen.DrawColoredText(x, 0, text, core.ColorYellow)
}

func (m Model) gameOverLines() []string {
	lines := []string{fmt.Sprintf("Score %d", m.events.final)}
	if m.newBest {
		lines = append(lines, "NEW BEST!")
	} else {
		lines = append(lines, fmt.Sprintf("Best %d", m.best))
	}
	return append(lines, "", "R restart  B menu")
}

// drawOverlay draws a centered box with a title and lines of text.
func (m Model) drawOverlay(title string, lines []string) {
	w := len(title)
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 6
	h := len(lines) + 4
	x := (m.screen.Width() - w) / 2
	y := (m.screen.Height() - h) / 2

	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			m.screen.SetColored(col, row, ' ', core.ColorDefault)
		}
	}
	m.screen.DrawBox(core.NewRect(x, y, w, h), core.ColorWhite)
	m.screen.DrawTextCentered(y+1, title, core.ColorBrightRed)
	for i, l := range lines {
		m.screen.DrawTextCentered(y+3+i, l, core.ColorWhite)
	}
}

// saveScreenshot writes the current screen as plain text under
// ~/.laserbounce/screenshots.
func (m Model) saveScreenshot() (string, error) {
	m.driver.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".laserbounce", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	name := fmt.Sprintf("laserbounce_%s.txt", m.now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// IsGoingBack returns true if the player asked to return to the menu.
func (m Model) IsGoingBack() bool {
	return m.back
}

// Runtime returns the current runtime config (may have been updated by resize).
func (m Model) Runtime() core.RuntimeConfig {
	return m.runtime
}

// Run plays sessions until the player quits or goes back to the menu.
// It returns true for back.
func Run(opts Options) (goBack bool, runtime core.RuntimeConfig, err error) {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, opts.Runtime, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, opts.Runtime, nil
	}
	return m.IsGoingBack(), m.Runtime(), nil
}
