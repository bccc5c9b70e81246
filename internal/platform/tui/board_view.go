package tui

import (
	"fmt"
	"sort"
	"time"

	"github.com/vovakirdan/solitaire/internal/board"
	"github.com/vovakirdan/solitaire/internal/core"
	"github.com/vovakirdan/solitaire/internal/game"
	"github.com/vovakirdan/solitaire/internal/tile"
)

// Screen cells per grid unit. A tile covers 2x2 units, so 4x2 cells.
const (
	cellsPerUnitX = 2
	cellsPerUnitY = 1
)

// headerRows is the space above the board.
const headerRows = 2

var groupColors = map[string]core.Color{
	tile.GroupBall:   core.ColorRed,
	tile.GroupBam:    core.ColorGreen,
	tile.GroupNum:    core.ColorBlue,
	tile.GroupWind:   core.ColorCyan,
	tile.GroupDragon: core.ColorMagenta,
	tile.GroupSeason: core.ColorYellow,
	tile.GroupFlower: core.ColorYellow,
}

var windLabels = []string{"Ea", "So", "We", "No"}
var dragonLabels = []string{"Dr", "Dg", "Dw"}

// faceLabel returns the two-cell label printed on a tile.
func faceLabel(t tile.Type) string {
	if !t.Valid() {
		return "  "
	}
	switch t.Group {
	case tile.GroupBall:
		return fmt.Sprintf("o%d", t.Index+1)
	case tile.GroupBam:
		return fmt.Sprintf("b%d", t.Index+1)
	case tile.GroupNum:
		return fmt.Sprintf("n%d", t.Index+1)
	case tile.GroupWind:
		if t.Index >= 0 && t.Index < len(windLabels) {
			return windLabels[t.Index]
		}
	case tile.GroupDragon:
		if t.Index >= 0 && t.Index < len(dragonLabels) {
			return dragonLabels[t.Index]
		}
	case tile.GroupSeason:
		return fmt.Sprintf("S%d", t.Index+1)
	case tile.GroupFlower:
		return fmt.Sprintf("F%d", t.Index+1)
	}
	label := []rune(t.String())
	if len(label) < 2 {
		return string(label) + " "
	}
	return string(label[:2])
}

// formatElapsed renders a duration as mm:ss.
func formatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// boardOrigin returns the screen cell of grid point (0, 0) at level 0 so that
// the board is centred below the header.
func boardOrigin(s *core.Screen, tiles []board.Tile) (int, int) {
	if len(tiles) == 0 {
		return 0, headerRows
	}
	var bounds core.Rect
	maxZ := 0
	for _, t := range tiles {
		bounds = bounds.Union(core.Footprint(t.X, t.Y))
		maxZ = core.Max(maxZ, t.Z)
	}
	boardW := bounds.W*cellsPerUnitX + maxZ
	ox := (s.Width()-boardW)/2 + maxZ - bounds.X*cellsPerUnitX
	oy := headerRows + maxZ - bounds.Y*cellsPerUnitY
	return ox, oy
}

// drawBoard draws the active tiles, lower layers first. Each level is shifted
// one cell up and left.
func drawBoard(s *core.Screen, v game.View, cursor int) {
	ox, oy := boardOrigin(s, v.Tiles)

	free := make(map[int]bool, len(v.FreeTiles))
	for _, id := range v.FreeTiles {
		free[id] = true
	}

	order := make([]int, 0, len(v.Tiles))
	for _, t := range v.Tiles {
		if t.Active {
			order = append(order, t.ID)
		}
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := v.Tiles[order[i]], v.Tiles[order[j]]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	for _, id := range order {
		t := v.Tiles[id]
		x := ox + t.X*cellsPerUnitX - t.Z
		y := oy + t.Y*cellsPerUnitY - t.Z
		drawTile(s, x, y, t, free[id], id == cursor)
	}
}

func drawTile(s *core.Screen, x, y int, t board.Tile, free, cursor bool) {
	frame := core.ColorGray
	label := core.ColorGray
	if free {
		frame = core.ColorWhite
		if c, ok := groupColors[t.Type.Group]; ok {
			label = c
		} else {
			label = core.ColorBrightWhite
		}
	}
	switch {
	case t.Selected:
		frame = core.ColorBrightYellow
		label = core.ColorBrightYellow
	case cursor:
		frame = core.ColorBrightCyan
	case t.Hinted:
		frame = core.ColorBrightGreen
	}

	text := []rune(faceLabel(t.Type))
	s.SetColor(x, y, '┌', frame)
	s.SetColor(x+1, y, text[0], label)
	s.SetColor(x+2, y, text[1], label)
	s.SetColor(x+3, y, '┐', frame)
	s.DrawTextColor(x, y+1, "└──┘", frame)
}

// drawHeader draws the status line above the board.
func drawHeader(s *core.Screen, v game.View, title string) {
	left := fmt.Sprintf(" %s  Score %d  Time %s  Tiles %d",
		title, v.Score, formatElapsed(v.Elapsed), v.Stats.TilesRemaining)
	if v.Combo > 1 {
		left += fmt.Sprintf("  Combo x%d", v.Combo)
	}
	s.DrawTextColor(0, 0, left, core.ColorBrightWhite)

	var right string
	switch {
	case v.Status == game.StatusPaused:
		right = "PAUSED"
	case v.AutoShufflePending:
		right = "NO MOVES - SHUFFLING"
	case v.Status == game.StatusPlaying:
		right = fmt.Sprintf("%d free", len(v.FreeTiles))
	}
	if right != "" {
		s.DrawTextColor(s.Width()-len([]rune(right))-1, 0, right, core.ColorYellow)
	}
}

// drawOverlay draws a centred message box over the board. Each line is
// centred inside the box.
func drawOverlay(s *core.Screen, lines []string, c core.Color) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	box := core.NewRect((s.Width()-w-4)/2, (s.Height()-len(lines)-2)/2, w+4, len(lines)+2)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, c)
	for i, l := range lines {
		s.DrawTextCentered(box.Y+1+i, l, c)
	}
}

// renderGame draws a whole game frame: header, board, overlay and message.
func renderGame(s *core.Screen, v game.View, title string, cursor int, message string) {
	s.Clear()
	drawHeader(s, v, title)

	switch v.Status {
	case game.StatusPaused:
		drawOverlay(s, []string{"Paused", "", "p: resume"}, core.ColorYellow)
	case game.StatusComplete:
		drawBoard(s, v, -1)
		heading := "No more moves"
		color := core.ColorRed
		if v.Won {
			heading = "You cleared the board!"
			color = core.ColorBrightGreen
		}
		drawOverlay(s, []string{
			heading,
			"",
			fmt.Sprintf("Score  %d", v.Score),
			fmt.Sprintf("Time   %s", formatElapsed(v.Elapsed)),
			fmt.Sprintf("Moves  %d", v.Stats.Moves),
			"",
			"n: new game  q: quit",
		}, color)
	default:
		drawBoard(s, v, cursor)
	}

	if message != "" {
		s.DrawTextColor(1, s.Height()-1, message, core.ColorCyan)
	}
}
