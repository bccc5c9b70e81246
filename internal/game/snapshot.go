package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/solitaire/internal/board"
	"github.com/vovakirdan/solitaire/internal/tile"
)

// TileState is the mutable part of a tile. Positions and relations come from
// the layout when a snapshot is restored.
type TileState struct {
	Type   tile.Type `yaml:"type"`
	Active bool      `yaml:"active"`
}

// Snapshot is a saved game in progress. The redo stack is not kept.
type Snapshot struct {
	GameID       string      `yaml:"game_id"`
	LayoutID     string      `yaml:"layout"`
	Score        int         `yaml:"score"`
	ElapsedSecs  int         `yaml:"elapsed_secs"`
	Tiles        []TileState `yaml:"tiles"`
	Moves        []Move      `yaml:"moves,omitempty"`
	Undo         []UndoItem  `yaml:"undo,omitempty"`
	HintsUsed    int         `yaml:"hints_used"`
	UndoCount    int         `yaml:"undo_count"`
	WrongMatches int         `yaml:"wrong_matches"`
	MaxCombo     int         `yaml:"max_combo"`
	AutoShuffles int         `yaml:"auto_shuffles"`
	Shuffles     int         `yaml:"shuffles"`
	SavedAt      time.Time   `yaml:"saved_at"`
}

// Snapshot captures the current game.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := g.st
	tiles := make([]TileState, st.board.Len())
	for i := range tiles {
		t := st.board.Tile(i)
		tiles[i] = TileState{Type: t.Type, Active: t.Active}
	}

	return Snapshot{
		GameID:       st.id,
		LayoutID:     st.layoutID,
		Score:        st.score,
		ElapsedSecs:  int(st.elapsed / time.Second),
		Tiles:        tiles,
		Moves:        append([]Move(nil), st.moves...),
		Undo:         append([]UndoItem(nil), st.undo...),
		HintsUsed:    st.hintsUsed,
		UndoCount:    st.undoCount,
		WrongMatches: st.wrongMatches,
		MaxCombo:     st.maxCombo,
		AutoShuffles: st.autoShuffles,
		Shuffles:     st.shuffles,
		SavedAt:      g.sched.Now(),
	}
}

// Restore resumes a saved game on the layout it was played on. Relations are
// rebuilt from positions, so positions must be in the original order.
func (g *Game) Restore(positions []board.Position, snap Snapshot) error {
	var err error
	g.locked(func() {
		err = g.restore(positions, snap)
	})
	return err
}

func (g *Game) restore(positions []board.Position, snap Snapshot) error {
	if len(positions) == 0 {
		return fmt.Errorf("game: restore %q: %w", snap.LayoutID, ErrEmptyLayout)
	}
	if len(snap.Tiles) != len(positions) {
		return fmt.Errorf("game: restore %q: %d tiles for %d positions: %w",
			snap.LayoutID, len(snap.Tiles), len(positions), ErrSnapshotMismatch)
	}
	for _, item := range snap.Undo {
		if !validRemoved(snap.Tiles, item.A) || !validRemoved(snap.Tiles, item.B) {
			return fmt.Errorf("game: restore %q: undo entry %d/%d: %w",
				snap.LayoutID, item.A, item.B, ErrSnapshotMismatch)
		}
	}

	b := board.Build(positions)
	for i, ts := range snap.Tiles {
		t := b.Tile(i)
		t.Type = ts.Type
		t.Active = ts.Active
	}

	id := snap.GameID
	if id == "" {
		id = g.newID()
	}

	g.cancelAutoShuffle()
	st := newState(id, snap.LayoutID, b)
	st.score = snap.Score
	st.elapsed = time.Duration(snap.ElapsedSecs) * time.Second
	st.moves = append([]Move(nil), snap.Moves...)
	st.history = append([]Move(nil), snap.Moves...)
	st.undo = append([]UndoItem(nil), snap.Undo...)
	st.hintsUsed = snap.HintsUsed
	st.undoCount = snap.UndoCount
	st.wrongMatches = snap.WrongMatches
	st.maxCombo = snap.MaxCombo
	st.autoShuffles = snap.AutoShuffles
	st.shuffles = snap.Shuffles
	st.status = StatusPlaying
	g.st = st

	g.logger.Debug("game restored", "game", id, "layout", snap.LayoutID, "remaining", b.ActiveCount())
	g.checkCompletion()
	return nil
}

func validRemoved(tiles []TileState, id int) bool {
	return id >= 0 && id < len(tiles) && !tiles[id].Active
}
