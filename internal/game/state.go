package game

import (
	"time"

	"github.com/vovakirdan/solitaire/internal/board"
	"github.com/vovakirdan/solitaire/internal/tile"
)

// Status is the phase of a game.
type Status int

const (
	StatusNotStarted Status = iota
	StatusPlaying
	StatusPaused
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not started"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// noSelection marks an empty selection.
const noSelection = -1

// TileRef identifies a tile and its face at the time of a move.
type TileRef struct {
	ID   int       `yaml:"id"`
	X    int       `yaml:"x"`
	Y    int       `yaml:"y"`
	Z    int       `yaml:"z"`
	Type tile.Type `yaml:"type"`
}

func refOf(t *board.Tile) TileRef {
	return TileRef{ID: t.ID, X: t.X, Y: t.Y, Z: t.Z, Type: t.Type}
}

// Move is a completed match. Moves are never modified once recorded.
type Move struct {
	A          TileRef   `yaml:"a"`
	B          TileRef   `yaml:"b"`
	ScoreDelta int       `yaml:"score_delta"`
	At         time.Time `yaml:"at"`
}

// UndoItem is what undo needs to take a match back.
type UndoItem struct {
	A                 int `yaml:"a"`
	B                 int `yaml:"b"`
	PreviousScore     int `yaml:"previous_score"`
	PreviousSelection int `yaml:"previous_selection"` // -1 when nothing was selected
}

// Stats summarizes a game.
type Stats struct {
	GameID         string
	LayoutID       string
	Won            bool
	Score          int
	Elapsed        time.Duration
	Moves          int
	TilesRemaining int
	HintsUsed      int
	UndoCount      int
	WrongMatches   int
	MaxCombo       int
	AutoShuffles   int
	Shuffles       int
}

// state is everything that belongs to one dealt game. It is replaced, never
// reused, when a new game starts.
type state struct {
	id       string
	layoutID string
	board    *board.Board
	status   Status
	won      bool

	selected int
	score    int
	elapsed  time.Duration

	undo    []UndoItem
	redo    []UndoItem
	moves   []Move // current line of play; undo pops from here
	history []Move // every match ever made, including undone ones

	combo    int
	maxCombo int
	hinting  bool

	hintsUsed    int
	undoCount    int
	wrongMatches int
	autoShuffles int
	shuffles     int
}

func newState(id, layoutID string, b *board.Board) *state {
	return &state{
		id:       id,
		layoutID: layoutID,
		board:    b,
		selected: noSelection,
	}
}

func (st *state) stats() Stats {
	return Stats{
		GameID:         st.id,
		LayoutID:       st.layoutID,
		Won:            st.won,
		Score:          st.score,
		Elapsed:        st.elapsed,
		Moves:          len(st.moves),
		TilesRemaining: st.board.ActiveCount(),
		HintsUsed:      st.hintsUsed,
		UndoCount:      st.undoCount,
		WrongMatches:   st.wrongMatches,
		MaxCombo:       st.maxCombo,
		AutoShuffles:   st.autoShuffles,
		Shuffles:       st.shuffles,
	}
}

// View is a read-only copy of the game for rendering.
type View struct {
	Status             Status
	Won                bool
	LayoutID           string
	Tiles              []board.Tile
	Selected           int // -1 when nothing is selected
	Score              int
	Elapsed            time.Duration
	Combo              int
	CanUndo            bool
	CanRedo            bool
	HasLegalMove       bool
	FreeTiles          []int
	AutoShufflePending bool
	Stats              Stats
}
