package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/solitaire/internal/config"
	"github.com/vovakirdan/solitaire/internal/core"
	"github.com/vovakirdan/solitaire/internal/storage"
)

// phase is the screen a session is on.
type phase int

const (
	phaseMenu phase = iota
	phaseTable
	phaseScores
)

// SessionModel runs one player's visit: the layout menu, tables started from
// it and the scoreboard. Sub-screens only raise flags; the session decides
// where to go next and owns tea.Quit.
type SessionModel struct {
	store  *storage.Store
	rules  config.Config
	config core.RuntimeConfig
	logger *log.Logger

	phase      phase
	menu       MenuModel
	table      Model
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel starts a session on the menu.
func NewSessionModel(store *storage.Store, rules config.Config, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	return SessionModel{
		store:  store,
		rules:  rules,
		config: cfg,
		logger: logger,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update implements tea.Model.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	var cmd tea.Cmd
	switch m.phase {
	case phaseTable:
		cmd = m.updateTable(msg)
	case phaseScores:
		cmd = m.updateScores(msg)
	default:
		cmd = m.updateMenu(msg)
	}

	if m.quitting {
		return m, tea.Quit
	}
	return m, cmd
}

func (m *SessionModel) updateMenu(msg tea.Msg) tea.Cmd {
	next, _ := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return nil

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard.embedded = true
		m.phase = phaseScores
		return m.scoreboard.Init()

	case m.menu.Selected() != nil:
		return m.startTable(*m.menu.Selected())
	}
	return nil
}

// startTable deals or resumes the chosen layout.
func (m *SessionModel) startTable(choice MenuChoice) tea.Cmd {
	cfg := m.config
	cfg.LayoutID = choice.LayoutID
	cfg.Seed = time.Now().UnixNano()

	table, err := NewModel(cfg, Options{
		Store:  m.store,
		Rules:  m.rules,
		Logger: m.logger,
		Resume: choice.Resume,
	})
	if err != nil {
		m.logger.Error("cannot start game", "layout", choice.LayoutID, "err", err)
		return m.showMenu()
	}

	m.logger.Debug("table opened", "layout", choice.LayoutID, "resume", choice.Resume)
	table.embedded = true
	m.table = table
	m.phase = phaseTable
	return m.table.Init()
}

func (m *SessionModel) updateTable(msg tea.Msg) tea.Cmd {
	next, cmd := m.table.Update(msg)
	m.table = next.(Model)

	switch {
	case m.table.IsQuitting():
		m.quitting = true
		return nil
	case m.table.BackToMenu():
		m.config.LayoutID = m.table.layout.ID
		return m.showMenu()
	}
	return cmd
}

func (m *SessionModel) updateScores(msg tea.Msg) tea.Cmd {
	next, cmd := m.scoreboard.Update(msg)
	m.scoreboard = next.(ScoreboardModel)

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return nil
	case m.scoreboard.IsGoingBack():
		return m.showMenu()
	}
	return cmd
}

// showMenu rebuilds the menu so best scores and saved games are current.
func (m *SessionModel) showMenu() tea.Cmd {
	m.menu = NewMenuModel(m.store, m.config)
	m.phase = phaseMenu
	return m.menu.Init()
}

// View implements tea.Model.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.phase {
	case phaseTable:
		return m.table.View()
	case phaseScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(store *storage.Store, rules config.Config, cfg core.RuntimeConfig, logger *log.Logger) error {
	_, err := tea.NewProgram(
		NewSessionModel(store, rules, cfg, logger),
		tea.WithAltScreen(),
	).Run()
	return err
}
