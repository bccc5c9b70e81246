package game

import "time"

// TickInterval is the amount of play time one Tick adds.
const TickInterval = time.Second

// Tick advances the game timer while the game is being played.
func (g *Game) Tick() {
	g.locked(func() {
		if g.st.status == StatusPlaying {
			g.st.elapsed += TickInterval
		}
	})
}

// Elapsed returns the play time of the current game.
func (g *Game) Elapsed() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.st.elapsed
}

// Pause stops the timer. A pending reshuffle is dropped and reconsidered on
// Resume.
func (g *Game) Pause() {
	g.locked(func() {
		if g.st.status != StatusPlaying {
			return
		}
		g.cancelAutoShuffle()
		g.st.status = StatusPaused
		g.emit(PausedEvent{Paused: true})
	})
}

// Resume continues a paused game.
func (g *Game) Resume() {
	g.locked(func() {
		if g.st.status != StatusPaused {
			return
		}
		g.st.status = StatusPlaying
		g.emit(PausedEvent{Paused: false})
		g.checkCompletion()
	})
}

// TogglePause pauses a running game or resumes a paused one.
func (g *Game) TogglePause() {
	g.mu.Lock()
	paused := g.st.status == StatusPaused
	g.mu.Unlock()

	if paused {
		g.Resume()
	} else {
		g.Pause()
	}
}
