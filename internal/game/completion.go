package game

// checkCompletion decides what happens after the board changed: a win when
// no tile is left, nothing while a legal move exists, and otherwise either a
// scheduled reshuffle or the end of the game.
func (g *Game) checkCompletion() {
	st := g.st
	if st.status != StatusPlaying {
		return
	}

	if st.board.ActiveCount() == 0 {
		g.complete(true)
		return
	}
	if st.board.HasLegalMove() {
		g.cancelAutoShuffle()
		return
	}
	if !g.cfg.AutoShuffle || g.autoShufflesExhausted() {
		g.complete(false)
		return
	}

	scheduled := g.coord.Request(
		func() bool { return g.deadlocked(st) },
		func() { g.autoShuffle(st) },
	)
	if scheduled {
		g.logger.Debug("board deadlocked", "game", st.id, "tiles", st.board.ActiveCount())
		g.emit(AutoShufflePendingEvent{Delay: g.coord.Delay()})
	}
}

func (g *Game) autoShufflesExhausted() bool {
	return g.cfg.MaxAutoShuffles > 0 && g.st.autoShuffles >= g.cfg.MaxAutoShuffles
}

// deadlocked re-checks, when the scheduled reshuffle fires, that st is still
// the live game and still has no move.
func (g *Game) deadlocked(st *state) bool {
	return g.st == st &&
		st.status == StatusPlaying &&
		st.board.ActiveCount() > 0 &&
		!st.board.HasLegalMove()
}

func (g *Game) autoShuffle(st *state) {
	res, err := g.shuffler.Shuffle(st.board)
	if err != nil {
		g.logShuffleError(err)
	}
	st.autoShuffles++
	g.resetLine()

	g.emit(ShuffledEvent{Auto: true, Attempts: res.Attempts, Recovered: res.Recovered})
	g.emit(AutoShuffleFiredEvent{Count: st.autoShuffles})
	g.refreshHints()

	if !st.board.HasLegalMove() {
		g.complete(false)
	}
}

func (g *Game) complete(won bool) {
	st := g.st
	g.cancelAutoShuffle()
	g.setSelection(noSelection)
	st.status = StatusComplete
	st.won = won

	g.logger.Info("game complete",
		"game", st.id,
		"won", won,
		"score", st.score,
		"remaining", st.board.ActiveCount(),
	)
	g.emit(GameCompleteEvent{Won: won, Stats: st.stats()})
}

// CancelAutoShuffle drops a scheduled reshuffle. It is a no-op when nothing
// is pending and may be called repeatedly.
func (g *Game) CancelAutoShuffle() {
	g.locked(g.cancelAutoShuffle)
}

func (g *Game) cancelAutoShuffle() {
	if g.coord.Cancel() {
		g.emit(AutoShuffleCancelledEvent{})
	}
}
