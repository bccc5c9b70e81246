package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/solitaire/internal/core"
	"github.com/vovakirdan/solitaire/internal/layout"
	"github.com/vovakirdan/solitaire/internal/storage"
)

// MenuItem represents a selectable layout in the menu.
type MenuItem struct {
	LayoutID  string
	Title     string
	Tiles     int
	HighScore int
	HasSaved  bool
}

// MenuChoice is what the player picked.
type MenuChoice struct {
	LayoutID string
	Resume   bool
}

// MenuModel is the Bubble Tea model for the layout picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	quitting       bool
	selected       *MenuChoice
	openScoreboard bool
}

// NewMenuModel creates a new menu model. The cursor starts on cfg.LayoutID.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	infos := layout.List()
	items := make([]MenuItem, 0, len(infos))
	cursor := 0

	for i, info := range infos {
		item := MenuItem{
			LayoutID: info.ID,
			Title:    info.Name,
			Tiles:    info.Tiles,
		}
		if store != nil {
			if high, err := store.HighScore(info.ID); err == nil {
				item.HighScore = high
			}
			if snap, err := store.LoadGame(info.ID); err == nil && snap != nil {
				item.HasSaved = true
			}
		}
		if info.ID == cfg.LayoutID {
			cursor = i
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		cursor: cursor,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
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
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			m.selected = &MenuChoice{LayoutID: m.items[m.cursor].LayoutID}
		}

	case MenuActionResume:
		if len(m.items) > 0 && m.items[m.cursor].HasSaved {
			m.selected = &MenuChoice{LayoutID: m.items[m.cursor].LayoutID, Resume: true}
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  M A H J O N G   S O L I T A I R E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a layout", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-16s %3d tiles", cursor, item.Title, item.Tiles)
		if item.HighScore > 0 {
			line += fmt.Sprintf("  best %d", item.HighScore)
		}
		if item.HasSaved {
			line += "  [saved]"
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: New game  |  C: Continue  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the player's choice, or nil if none was made.
func (m MenuModel) Selected() *MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
