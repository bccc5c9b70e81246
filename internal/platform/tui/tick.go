// Package tui provides the Bubble Tea front end for solitaire.
// It handles the terminal UI loop, input mapping, and forwarding of game events.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/solitaire/internal/game"
)

// TickMsg is sent once per second to advance the game timer.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick.
func tickCmd() tea.Cmd {
	return tea.Tick(game.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// eventMsg carries a game event into the update loop.
type eventMsg struct {
	event game.Event
}

// eventBuffer is the number of events held for the UI before new ones are
// dropped. The UI always re-reads game state, so a dropped event only loses a
// status message.
const eventBuffer = 64

// forwardEvents returns a listener that hands events to ch without blocking.
// The game calls listeners from timer goroutines too, so it must never wait
// on the UI.
func forwardEvents(ch chan<- game.Event) game.Listener {
	return func(e game.Event) {
		select {
		case ch <- e:
		default:
		}
	}
}

// waitForEvent returns a command that delivers the next event from ch. It
// gives up once done is closed.
func waitForEvent(ch <-chan game.Event, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-ch:
			return eventMsg{event: e}
		case <-done:
			return nil
		}
	}
}
