package game

import "time"

// Event is something that happened during a game step.
// Events are delivered to the Listener after the game lock is released, so a
// listener may call back into the game.
type Event interface {
	gameEvent()
}

// Listener receives game events.
type Listener func(Event)

// MatchEvent is sent when two tiles are removed as a pair.
type MatchEvent struct {
	A, B       TileRef
	ScoreDelta int
	Combo      int
}

func (MatchEvent) gameEvent() {}

// MismatchEvent is sent when a free tile that does not match the current
// selection is picked. The new tile becomes the selection.
type MismatchEvent struct {
	Previous, Selected int
}

func (MismatchEvent) gameEvent() {}

// UndoEvent is sent when a match is taken back.
type UndoEvent struct {
	A, B int
}

func (UndoEvent) gameEvent() {}

// RedoEvent is sent when an undone match is replayed.
type RedoEvent struct {
	A, B int
}

func (RedoEvent) gameEvent() {}

// HintEvent is sent when hint marks are placed.
type HintEvent struct {
	Tiles []int
}

func (HintEvent) gameEvent() {}

// ShuffledEvent is sent after the faces of the board were redistributed.
type ShuffledEvent struct {
	Auto      bool
	Attempts  int
	Recovered bool
}

func (ShuffledEvent) gameEvent() {}

// AutoShufflePendingEvent is sent when a deadlock was detected and a reshuffle
// is scheduled.
type AutoShufflePendingEvent struct {
	Delay time.Duration
}

func (AutoShufflePendingEvent) gameEvent() {}

// AutoShuffleFiredEvent is sent when a scheduled reshuffle ran.
type AutoShuffleFiredEvent struct {
	Count int
}

func (AutoShuffleFiredEvent) gameEvent() {}

// AutoShuffleCancelledEvent is sent when a scheduled reshuffle was dropped.
type AutoShuffleCancelledEvent struct{}

func (AutoShuffleCancelledEvent) gameEvent() {}

// PausedEvent is sent when the game is paused or resumed.
type PausedEvent struct {
	Paused bool
}

func (PausedEvent) gameEvent() {}

// GameCompleteEvent is sent once when the game ends.
type GameCompleteEvent struct {
	Won   bool
	Stats Stats
}

func (GameCompleteEvent) gameEvent() {}
