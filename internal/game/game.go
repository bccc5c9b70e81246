// Package game implements the rules of Mahjong solitaire as a state machine:
// dealing a layout, selecting and matching free tiles, undo and redo, hints,
// scoring, and the automatic reshuffle of deadlocked boards.
//
// The package does no I/O. Time comes from an injected clock.Scheduler and
// notifications go to an injected Listener, so a game runs the same in a
// terminal session, over SSH, or headless in tests.
package game

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/solitaire/internal/autoshuffle"
	"github.com/vovakirdan/solitaire/internal/board"
	"github.com/vovakirdan/solitaire/internal/clock"
	"github.com/vovakirdan/solitaire/internal/shuffle"
	"github.com/vovakirdan/solitaire/internal/tile"
)

var (
	// ErrEmptyLayout is returned when a game is started without positions.
	ErrEmptyLayout = errors.New("game: layout has no tiles")

	// ErrPoolSize is returned when the face pool does not cover the layout.
	ErrPoolSize = shuffle.ErrPoolSize

	// ErrSnapshotMismatch is returned when a snapshot does not fit a layout.
	ErrSnapshotMismatch = errors.New("game: snapshot does not fit layout")
)

// Config holds the rules a game is played with.
type Config struct {
	BaseScore        int           // points for every match
	TimeBonusMax     int           // time bonus at the start of the game
	TimeBonusDecay   time.Duration // elapsed time that costs one bonus point
	ComboStep        int           // extra points per consecutive match after the first
	AutoShuffle      bool          // reshuffle deadlocked boards instead of ending the game
	AutoShuffleDelay time.Duration // wait before an automatic reshuffle
	MaxAutoShuffles  int           // 0 means unlimited
	ShuffleAttempts  int           // random deals tried before recovery
	PermanentHints   bool          // keep hints on and refresh them after every change
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		BaseScore:        10,
		TimeBonusMax:     10,
		TimeBonusDecay:   30 * time.Second,
		ComboStep:        5,
		AutoShuffle:      true,
		AutoShuffleDelay: autoshuffle.DefaultDelay,
		ShuffleAttempts:  shuffle.DefaultMaxAttempts,
	}
}

// Options carries the collaborators of a game.
type Options struct {
	Scheduler clock.Scheduler // defaults to clock.Real
	Logger    *log.Logger     // defaults to a discarding logger
	Listener  Listener        // may be nil
	Seed      int64           // 0 derives a seed from the scheduler's clock
	NewID     func() string   // defaults to uuid.NewString
}

// Game is a single player's table. All methods are safe for concurrent use.
type Game struct {
	mu sync.Mutex

	cfg      Config
	sched    clock.Scheduler
	logger   *log.Logger
	listener Listener
	newID    func() string

	shuffler *shuffle.Engine
	coord    *autoshuffle.Coordinator

	st     *state
	events []Event
}

// New creates a game that has not been dealt yet.
func New(cfg Config, opts Options) *Game {
	if opts.Scheduler == nil {
		opts.Scheduler = clock.Real{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Seed == 0 {
		opts.Seed = opts.Scheduler.Now().UnixNano()
	}

	g := &Game{
		cfg:      cfg,
		sched:    opts.Scheduler,
		logger:   opts.Logger,
		listener: opts.Listener,
		newID:    opts.NewID,
	}
	g.shuffler = shuffle.New(opts.Seed,
		shuffle.WithMaxAttempts(cfg.ShuffleAttempts),
		shuffle.WithLogger(g.logger.WithPrefix("shuffle")),
	)
	g.coord = autoshuffle.New(g.sched, cfg.AutoShuffleDelay,
		autoshuffle.WithGuard(g.locked),
		autoshuffle.WithLogger(g.logger.WithPrefix("auto-shuffle")),
	)
	g.st = newState("", "", board.Build(nil))
	return g
}

// locked runs fn under the game lock and then delivers the events it emitted.
func (g *Game) locked(fn func()) {
	g.mu.Lock()
	fn()
	events := g.events
	g.events = nil
	listener := g.listener
	g.mu.Unlock()

	if listener == nil {
		return
	}
	for _, e := range events {
		listener(e)
	}
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// SetListener replaces the event listener.
func (g *Game) SetListener(l Listener) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listener = l
}

// NewGame builds the board for a layout, deals the pool onto it and starts
// play. Any pending reshuffle of the previous game is dropped.
func (g *Game) NewGame(layoutID string, positions []board.Position, pool []tile.Type) error {
	var err error
	g.locked(func() {
		err = g.newGame(layoutID, positions, pool)
	})
	return err
}

func (g *Game) newGame(layoutID string, positions []board.Position, pool []tile.Type) error {
	if len(positions) == 0 {
		return fmt.Errorf("game: deal %q: %w", layoutID, ErrEmptyLayout)
	}

	b := board.Build(positions)
	res, err := g.shuffler.Deal(b, pool)
	if err != nil {
		if errors.Is(err, shuffle.ErrUnsolvable) {
			g.logger.Error("deal produced an unsolvable board", "layout", layoutID, "err", err)
		}
		return fmt.Errorf("game: deal %q: %w", layoutID, err)
	}

	g.cancelAutoShuffle()
	g.st = newState(g.newID(), layoutID, b)
	g.st.status = StatusPlaying
	g.logger.Debug("game started",
		"game", g.st.id,
		"layout", layoutID,
		"tiles", b.Len(),
		"attempts", res.Attempts,
		"recovered", res.Recovered,
	)
	g.checkCompletion()
	return nil
}

// Close drops any pending reshuffle. The game must not be used afterwards.
func (g *Game) Close() {
	g.locked(func() {
		g.coord.Cancel()
	})
}

// State returns a copy of the game for rendering.
func (g *Game) State() View {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := g.st
	return View{
		Status:             st.status,
		Won:                st.won,
		LayoutID:           st.layoutID,
		Tiles:              st.board.Tiles(),
		Selected:           st.selected,
		Score:              st.score,
		Elapsed:            st.elapsed,
		Combo:              st.combo,
		CanUndo:            len(st.undo) > 0,
		CanRedo:            len(st.redo) > 0,
		HasLegalMove:       st.board.HasLegalMove(),
		FreeTiles:          st.board.FreeTiles(),
		AutoShufflePending: g.coord.Pending(),
		Stats:              st.stats(),
	}
}

// Stats returns the statistics of the current game.
func (g *Game) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.st.stats()
}

// Status returns the phase of the current game.
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.st.status
}

// Score returns the current score.
func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.st.score
}

// HasLegalMove reports whether a matching pair of free tiles exists.
func (g *Game) HasLegalMove() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.st.board.HasLegalMove()
}

// MatchingPairs lists every pair of free tiles that could be removed now.
func (g *Game) MatchingPairs() []board.Pair {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.st.board.MatchingPairs()
}

// CanUndo reports whether there is a match to take back.
func (g *Game) CanUndo() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.st.undo) > 0
}

// CanRedo reports whether there is an undone match to replay.
func (g *Game) CanRedo() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.st.redo) > 0
}

// AutoShufflePending reports whether a reshuffle is scheduled.
func (g *Game) AutoShufflePending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.coord.Pending()
}

// History returns every match made in this game, including undone ones.
func (g *Game) History() []Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Move(nil), g.st.history...)
}
