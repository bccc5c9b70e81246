package tui

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/solitaire/internal/config"
	"github.com/vovakirdan/solitaire/internal/core"
	"github.com/vovakirdan/solitaire/internal/game"
	"github.com/vovakirdan/solitaire/internal/layout"
	"github.com/vovakirdan/solitaire/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 100, ScreenH: 30, Seed: 11, LayoutID: "mobile-turtle"}
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Rules.Layout == "" {
		opts.Rules = config.Default()
	}
	m, err := NewModel(testConfig(), opts)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	t.Cleanup(m.suspend)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestNewModelDeals(t *testing.T) {
	m := newTestModel(t, Options{})

	if m.view.Status != game.StatusPlaying {
		t.Fatalf("status = %v, want playing", m.view.Status)
	}
	if len(m.view.Tiles) != 72 {
		t.Errorf("tiles = %d, want 72", len(m.view.Tiles))
	}
	if !contains(m.view.FreeTiles, m.cursor) {
		t.Errorf("cursor %d is not on a free tile", m.cursor)
	}
	if m.View() == "" {
		t.Error("empty view")
	}
}

func TestNewModelUnknownLayout(t *testing.T) {
	cfg := testConfig()
	cfg.LayoutID = "nope"
	_, err := NewModel(cfg, Options{Rules: config.Default()})
	if !errors.Is(err, layout.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestModelHintToggle(t *testing.T) {
	m := newTestModel(t, Options{})

	hinted := func(m Model) int {
		n := 0
		for _, tl := range m.view.Tiles {
			if tl.Hinted {
				n++
			}
		}
		return n
	}

	m, _ = update(t, m, runeKey("h"))
	if hinted(m) < 2 {
		t.Fatalf("hinted tiles = %d, want at least 2", hinted(m))
	}
	m, _ = update(t, m, runeKey("h"))
	if hinted(m) != 0 {
		t.Errorf("hinted tiles after toggle = %d, want 0", hinted(m))
	}
}

func TestModelSelectMovesCursor(t *testing.T) {
	m := newTestModel(t, Options{})
	start := m.cursor

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.cursor == start {
		t.Error("tab did not move the cursor")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.cursor != start {
		t.Errorf("cursor = %d, want %d", m.cursor, start)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view.Selected != start {
		t.Errorf("selected = %d, want %d", m.view.Selected, start)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Options{})

	m, cmd := update(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("model is not quitting")
	}
	if cmd == nil {
		t.Error("quit returned no command")
	}
	if m.View() != "" {
		t.Error("view after quit is not empty")
	}
}

func TestModelBackOnlyWhenEmbedded(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("standalone table went back to the menu")
	}

	m.embedded = true
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("embedded table did not go back to the menu")
	}
	if cmd != nil {
		t.Error("back must not end the program")
	}
}

func TestModelSavesAndResumes(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := newTestModel(t, Options{Store: store})
	pair := m.game.MatchingPairs()[0]
	m.game.SelectTile(pair.A)
	m.game.SelectTile(pair.B)
	m.refresh()
	score := m.view.Score

	update(t, m, runeKey("q"))

	snap, err := store.LoadGame("mobile-turtle")
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if snap == nil {
		t.Fatal("unfinished game was not saved")
	}

	resumed := newTestModel(t, Options{Store: store, Resume: true})
	if resumed.view.Score != score {
		t.Errorf("resumed score = %d, want %d", resumed.view.Score, score)
	}
	if resumed.view.Stats.TilesRemaining != 70 {
		t.Errorf("resumed tiles = %d, want 70", resumed.view.Stats.TilesRemaining)
	}
	if resumed.message == "" {
		t.Error("no message after resume")
	}
}

func TestModelUntouchedGameNotSaved(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := newTestModel(t, Options{Store: store})
	update(t, m, runeKey("q"))

	snap, err := store.LoadGame("mobile-turtle")
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if snap != nil {
		t.Error("untouched game was saved")
	}
}
