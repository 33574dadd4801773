package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/laser-bounce/internal/config"
	"github.com/vovakirdan/laser-bounce/internal/core"
)

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Select       key.Binding
	Instructions key.Binding
	Scores       key.Binding
	Back         key.Binding
	Quit         key.Binding
}

// DefaultMenuKeyMap returns default menu key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:           key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "s", "j")),
		Select:       key.NewBinding(key.WithKeys("enter", " ")),
		Instructions: key.NewBinding(key.WithKeys("i", "?")),
		Scores:       key.NewBinding(key.WithKeys("tab")),
		Back:         key.NewBinding(key.WithKeys("esc", "b")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// instructions is the text of the how-to-play screen.
var instructions = []string{
	"Dodge the bouncing enemies. One touch ends the run.",
	"",
	"Move with the arrow keys or WASD.",
	"Collect green orbs for +50. Each orb fades after a while.",
	"",
	"At 200 points the laser unlocks with 30 shots.",
	"Every further 200 points recharges it with 30 more.",
	"Space fires along your last direction of travel.",
	"Each enemy shot is worth +100.",
	"",
	"The field speeds up and gains an enemy every few hundred",
	"points. Hard gets there fastest.",
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	presets        []config.Preset
	cursor         int
	cfg            config.Config
	runtime        core.RuntimeConfig
	best           int
	keys           MenuKeyMap
	showHelp       bool // instructions screen
	quitting       bool
	selected       bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model with the cursor on preset.
func NewMenuModel(cfg config.Config, runtime core.RuntimeConfig, preset config.Preset, best int) MenuModel {
	m := MenuModel{
		presets: config.Presets,
		cfg:     cfg,
		runtime: runtime,
		best:    best,
		keys:    DefaultMenuKeyMap(),
	}
	for i, p := range m.presets {
		if p == preset {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Back, m.keys.Select, m.keys.Instructions) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.selected = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Instructions):
		m.showHelp = true
	case key.Matches(msg, m.keys.Scores):
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected || m.openScoreboard {
		return ""
	}
	if m.showHelp {
		return m.instructionsView()
	}

	width := m.runtime.ScreenW
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("L A S E R   B O U N C E"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Best %d", m.best), width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty", width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		s := m.cfg.Settings(p)
		line := fmt.Sprintf("%-6s  %2d enemies  x%.1f speed", p.Title(), s.EnemyCount, s.SpeedMultiplier)
		if i == m.cursor {
			line = menuCursor.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  I: How to play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) instructionsView() string {
	width := m.runtime.ScreenW
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("HOW TO PLAY"), width))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Render(strings.Join(instructions, "\n"))
	for _, line := range strings.Split(body, "\n") {
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Esc/Enter: Back"), width))
	b.WriteString("\n")
	return b.String()
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset          config.Preset
	Runtime         core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg config.Config, runtime core.RuntimeConfig, preset config.Preset, best int) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg, runtime, preset, best), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Runtime: runtime}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Runtime: runtime, Quit: true}, nil
	}

	result := MenuResult{Runtime: m.runtime}
	switch {
	case m.openScoreboard:
		result.WantsScoreboard = true
	case m.selected:
		result.Preset = m.presets[m.cursor]
	default:
		result.Quit = true
	}
	return result, nil
}
