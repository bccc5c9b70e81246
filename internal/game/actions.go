package game

import (
	"errors"
	"sort"

	"github.com/vovakirdan/solitaire/internal/shuffle"
)

// SelectTile picks a tile.
//
// Picking a tile that is not free, or picking anything outside play, does
// nothing. With no selection the tile becomes selected; picking the selected
// tile again clears the selection. A free tile matching the selection removes
// both; any other free tile replaces the selection and counts as a wrong match.
func (g *Game) SelectTile(id int) {
	g.locked(func() {
		g.selectTile(id)
	})
}

func (g *Game) selectTile(id int) {
	st := g.st
	if st.status != StatusPlaying || !st.board.IsFree(id) {
		return
	}

	switch {
	case st.selected == noSelection:
		g.setSelection(id)
	case st.selected == id:
		g.setSelection(noSelection)
	case st.board.Tile(st.selected).Type.Matches(st.board.Tile(id).Type):
		g.commitMatch(st.selected, id)
	default:
		prev := st.selected
		g.setSelection(id)
		st.wrongMatches++
		st.combo = 0
		g.emit(MismatchEvent{Previous: prev, Selected: id})
	}
}

func (g *Game) setSelection(id int) {
	st := g.st
	if st.selected != noSelection {
		st.board.Tile(st.selected).Selected = false
	}
	st.selected = id
	if id != noSelection {
		st.board.Tile(id).Selected = true
	}
}

func (g *Game) commitMatch(a, b int) {
	st := g.st
	st.undo = append(st.undo, UndoItem{
		A:                 a,
		B:                 b,
		PreviousScore:     st.score,
		PreviousSelection: st.selected,
	})
	st.redo = nil
	g.setSelection(noSelection)

	ta, tb := st.board.Tile(a), st.board.Tile(b)
	ta.Active = false
	tb.Active = false

	st.combo++
	if st.combo > st.maxCombo {
		st.maxCombo = st.combo
	}
	delta := g.cfg.BaseScore + g.timeBonus() + g.comboBonus()
	st.score += delta

	move := Move{A: refOf(ta), B: refOf(tb), ScoreDelta: delta, At: g.sched.Now()}
	st.moves = append(st.moves, move)
	st.history = append(st.history, move)

	g.emit(MatchEvent{A: move.A, B: move.B, ScoreDelta: delta, Combo: st.combo})
	g.afterChange()
}

// timeBonus decays by one point per TimeBonusDecay of play and never goes
// below zero.
func (g *Game) timeBonus() int {
	if g.cfg.TimeBonusDecay <= 0 {
		return g.cfg.TimeBonusMax
	}
	bonus := g.cfg.TimeBonusMax - int(g.st.elapsed/g.cfg.TimeBonusDecay)
	if bonus < 0 {
		return 0
	}
	return bonus
}

func (g *Game) comboBonus() int {
	if g.st.combo <= 1 {
		return 0
	}
	return (g.st.combo - 1) * g.cfg.ComboStep
}

// Undo takes back the last match. It does nothing when there is none.
func (g *Game) Undo() {
	g.locked(g.undoMove)
}

func (g *Game) undoMove() {
	st := g.st
	if st.status != StatusPlaying || len(st.undo) == 0 {
		return
	}

	item := st.undo[len(st.undo)-1]
	st.undo = st.undo[:len(st.undo)-1]

	g.setSelection(noSelection)
	st.board.Tile(item.A).Active = true
	st.board.Tile(item.B).Active = true
	st.score = item.PreviousScore
	if prev := item.PreviousSelection; prev != item.A && prev != item.B &&
		prev >= 0 && prev < st.board.Len() && st.board.IsFree(prev) {
		g.setSelection(prev)
	}

	if len(st.moves) > 0 {
		st.moves = st.moves[:len(st.moves)-1]
	}
	st.redo = append(st.redo, item)
	st.undoCount++
	st.combo = 0

	g.emit(UndoEvent{A: item.A, B: item.B})
	g.afterChange()
}

// Redo replays the last undone match. The replayed match scores the base and
// time bonus only; the combo bonus of the original match is not restored.
func (g *Game) Redo() {
	g.locked(g.redoMove)
}

func (g *Game) redoMove() {
	st := g.st
	if st.status != StatusPlaying || len(st.redo) == 0 {
		return
	}

	item := st.redo[len(st.redo)-1]
	st.redo = st.redo[:len(st.redo)-1]

	g.setSelection(noSelection)
	ta, tb := st.board.Tile(item.A), st.board.Tile(item.B)
	ta.Active = false
	tb.Active = false

	delta := g.cfg.BaseScore + g.timeBonus()
	st.score = item.PreviousScore + delta

	move := Move{A: refOf(ta), B: refOf(tb), ScoreDelta: delta, At: g.sched.Now()}
	st.moves = append(st.moves, move)
	st.history = append(st.history, move)
	st.undo = append(st.undo, item)

	g.emit(RedoEvent{A: item.A, B: item.B})
	g.afterChange()
}

// RequestHint marks every free tile that belongs to a matching pair. It
// reports whether any pair was found and never changes score or history.
func (g *Game) RequestHint() bool {
	var found bool
	g.locked(func() {
		found = g.requestHint()
	})
	return found
}

func (g *Game) requestHint() bool {
	st := g.st
	if st.status != StatusPlaying {
		return false
	}

	ids := g.markHints()
	if len(ids) == 0 {
		return false
	}
	st.hinting = true
	st.hintsUsed++
	g.emit(HintEvent{Tiles: ids})
	return true
}

// StopHint removes the hint marks.
func (g *Game) StopHint() {
	g.locked(func() {
		g.st.hinting = false
		g.st.board.ClearHints()
	})
}

func (g *Game) markHints() []int {
	b := g.st.board
	b.ClearHints()

	marked := make(map[int]bool)
	for _, p := range b.MatchingPairs() {
		marked[p.A] = true
		marked[p.B] = true
	}

	ids := make([]int, 0, len(marked))
	for id := range marked {
		b.Tile(id).Hinted = true
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// refreshHints drops stale hint marks after the board changed. In permanent
// hint mode the marks are recomputed instead.
func (g *Game) refreshHints() {
	st := g.st
	if !st.hinting {
		return
	}
	if g.cfg.PermanentHints && st.status == StatusPlaying {
		g.markHints()
		return
	}
	st.hinting = false
	st.board.ClearHints()
}

// Shuffle redistributes the faces of the remaining tiles. Because faces
// change, the undo and redo stacks are cleared.
func (g *Game) Shuffle() {
	g.locked(g.manualShuffle)
}

func (g *Game) manualShuffle() {
	st := g.st
	if st.status != StatusPlaying {
		return
	}

	g.cancelAutoShuffle()
	res, err := g.shuffler.Shuffle(st.board)
	if err != nil {
		g.logShuffleError(err)
	}
	st.shuffles++
	g.resetLine()

	g.emit(ShuffledEvent{Attempts: res.Attempts, Recovered: res.Recovered})
	g.afterChange()
}

// resetLine forgets selection, undo and redo after the faces changed.
func (g *Game) resetLine() {
	st := g.st
	g.setSelection(noSelection)
	st.undo = nil
	st.redo = nil
	st.combo = 0
}

func (g *Game) afterChange() {
	g.refreshHints()
	g.checkCompletion()
}

func (g *Game) logShuffleError(err error) {
	if errors.Is(err, shuffle.ErrUnsolvable) {
		g.logger.Error("shuffle could not guarantee a move", "game", g.st.id, "err", err)
		return
	}
	g.logger.Warn("shuffle failed", "game", g.st.id, "err", err)
}
