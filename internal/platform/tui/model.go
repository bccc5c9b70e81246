package tui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/solitaire/internal/config"
	"github.com/vovakirdan/solitaire/internal/core"
	"github.com/vovakirdan/solitaire/internal/game"
	"github.com/vovakirdan/solitaire/internal/layout"
	"github.com/vovakirdan/solitaire/internal/storage"
	"github.com/vovakirdan/solitaire/internal/tile"
)

// Options configures a game screen.
type Options struct {
	Store  *storage.Store // may be nil
	Rules  config.Config
	Logger *log.Logger
	Resume bool // continue the saved game of the layout if there is one
}

// Model is the Bubble Tea model for one solitaire table.
type Model struct {
	game    *game.Game
	layout  layout.Layout
	store   *storage.Store
	logger  *log.Logger
	config  core.RuntimeConfig
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	events  chan game.Event
	done    chan struct{}
	stop    *sync.Once
	view    game.View
	cursor  int
	message string

	savedGameID string // game whose result has been stored
	quitting    bool
	backToMenu  bool
	embedded    bool // part of a session: Back returns to the menu
}

// NewModel deals a new game, or resumes the saved one, on cfg.LayoutID.
func NewModel(cfg core.RuntimeConfig, opts Options) (Model, error) {
	l, err := layout.Get(cfg.LayoutID)
	if err != nil {
		return Model{}, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	events := make(chan game.Event, eventBuffer)
	g := game.New(opts.Rules.Game(), game.Options{
		Logger:   opts.Logger.WithPrefix("game"),
		Listener: forwardEvents(events),
		Seed:     cfg.Seed,
	})

	m := Model{
		game:   g,
		layout: l,
		store:  opts.Store,
		logger: opts.Logger,
		config: cfg,
		screen: core.NewScreen(cfg.ScreenW, screenRows(cfg.ScreenH)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		events: events,
		done:   make(chan struct{}),
		stop:   &sync.Once{},
		cursor: -1,
	}
	m.help.Width = cfg.ScreenW

	resumed, err := m.resume(opts.Resume)
	if err != nil {
		return Model{}, err
	}
	if !resumed {
		if err := g.NewGame(l.ID, l.Positions, tile.PoolFor(l.TileCount())); err != nil {
			return Model{}, err
		}
	}
	m.refresh()
	return m, nil
}

// resume restores the saved game of the layout. A snapshot that no longer
// fits the layout is discarded.
func (m *Model) resume(want bool) (bool, error) {
	if !want || m.store == nil {
		return false, nil
	}
	snap, err := m.store.LoadGame(m.layout.ID)
	if err != nil {
		return false, err
	}
	if snap == nil {
		return false, nil
	}
	if err := m.game.Restore(m.layout.Positions, *snap); err != nil {
		m.logger.Warn("discarding saved game", "layout", m.layout.ID, "err", err)
		//nolint:errcheck // Best-effort cleanup
		m.store.ClearSavedGame(m.layout.ID)
		return false, nil
	}
	m.message = "Saved game restored"
	return true, nil
}

// screenRows leaves the last terminal row for the help line.
func screenRows(h int) int {
	return core.Max(h-1, 1)
}

// Init starts the timer and the event pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), waitForEvent(m.events, m.done))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, screenRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.game.Tick()
		m.refresh()
		return m, tickCmd()

	case eventMsg:
		m.handleEvent(msg.event)
		m.refresh()
		return m, waitForEvent(m.events, m.done)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.embedded && key.Matches(msg, m.keys.Back) {
		m.suspend()
		m.backToMenu = true
		return m, nil
	}

	action := m.keys.Action(msg)
	if dx, dy, ok := action.Direction(); ok {
		m.cursor = moveCursor(m.view.Tiles, m.view.FreeTiles, m.cursor, dx, dy)
		return m, nil
	}

	m.message = ""
	switch action {
	case core.ActionQuit:
		m.suspend()
		m.quitting = true
		return m, tea.Quit
	case core.ActionNext:
		m.cursor = cycleCursor(m.view.Tiles, m.view.FreeTiles, m.cursor, 1)
	case core.ActionPrev:
		m.cursor = cycleCursor(m.view.Tiles, m.view.FreeTiles, m.cursor, -1)
	case core.ActionSelect:
		if m.cursor >= 0 {
			m.game.SelectTile(m.cursor)
		}
	case core.ActionUndo:
		m.game.Undo()
	case core.ActionRedo:
		m.game.Redo()
	case core.ActionHint:
		m.toggleHint()
	case core.ActionShuffle:
		m.game.Shuffle()
	case core.ActionPause:
		m.game.TogglePause()
	case core.ActionCancelShuffle:
		m.game.CancelAutoShuffle()
	case core.ActionNewGame:
		m.newGame()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	m.refresh()
	return m, nil
}

func (m *Model) toggleHint() {
	for _, t := range m.view.Tiles {
		if t.Hinted {
			m.game.StopHint()
			return
		}
	}
	if !m.game.RequestHint() {
		m.message = "No matching pairs"
	}
}

// newGame abandons the current deal and starts another on the same layout.
func (m *Model) newGame() {
	m.recordResult()
	if err := m.game.NewGame(m.layout.ID, m.layout.Positions, tile.PoolFor(m.layout.TileCount())); err != nil {
		m.logger.Error("cannot deal", "layout", m.layout.ID, "err", err)
		m.message = "Could not deal a new game"
		return
	}
	m.clearSaved()
}

// handleEvent turns game events into status messages and persists results.
func (m *Model) handleEvent(e game.Event) {
	switch e := e.(type) {
	case game.MatchEvent:
		if e.Combo > 1 {
			m.message = fmt.Sprintf("+%d  combo x%d", e.ScoreDelta, e.Combo)
		} else {
			m.message = fmt.Sprintf("+%d", e.ScoreDelta)
		}
	case game.MismatchEvent:
		m.message = "Those tiles do not match"
	case game.HintEvent:
		m.message = fmt.Sprintf("%d tiles can be matched", len(e.Tiles))
	case game.AutoShufflePendingEvent:
		m.message = fmt.Sprintf("No moves left. Shuffling in %s (c to cancel)", e.Delay)
	case game.AutoShuffleCancelledEvent:
		m.message = "Shuffle cancelled"
	case game.ShuffledEvent:
		m.message = "Tiles shuffled"
	case game.GameCompleteEvent:
		m.recordResult()
		m.clearSaved()
	}
}

// recordResult stores the score and statistics of a finished game once.
func (m *Model) recordResult() {
	if m.store == nil {
		return
	}
	st := m.game.Stats()
	if m.game.Status() != game.StatusComplete || st.GameID == m.savedGameID {
		return
	}
	m.savedGameID = st.GameID

	if st.Score > 0 {
		if _, err := m.store.SaveScore(st.LayoutID, st.Score, st.Won, st.Elapsed); err != nil {
			m.logger.Warn("cannot save score", "err", err)
		}
	}
	if err := m.store.SaveResult(st); err != nil {
		m.logger.Warn("cannot save result", "err", err)
	}
}

func (m *Model) clearSaved() {
	if m.store == nil {
		return
	}
	if err := m.store.ClearSavedGame(m.layout.ID); err != nil {
		m.logger.Warn("cannot clear saved game", "err", err)
	}
}

// suspend leaves the table: a finished game is recorded, an unfinished one is
// saved so it can be resumed. The game and the event pump are stopped.
func (m *Model) suspend() {
	m.stop.Do(func() {
		defer close(m.done)
		defer m.game.Close()

		switch {
		case m.store == nil:
		case m.game.Status() == game.StatusComplete:
			m.recordResult()
			m.clearSaved()
		case m.game.Stats().Moves > 0:
			if err := m.store.SaveGame(m.game.Snapshot()); err != nil {
				m.logger.Warn("cannot save game", "err", err)
			}
		}
	})
}

// refresh re-reads the game and keeps the cursor on a free tile.
func (m *Model) refresh() {
	m.view = m.game.State()
	m.cursor = settleCursor(m.view.Tiles, m.view.FreeTiles, m.cursor)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	renderGame(m.screen, m.view, m.layout.Name, m.cursor, m.message)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single table.
func Run(cfg core.RuntimeConfig, opts Options) error {
	model, err := NewModel(cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
