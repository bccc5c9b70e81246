package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/solitaire/internal/board"
	"github.com/vovakirdan/solitaire/internal/core"
	"github.com/vovakirdan/solitaire/internal/game"
	"github.com/vovakirdan/solitaire/internal/tile"
)

func TestFaceLabel(t *testing.T) {
	tests := []struct {
		face tile.Type
		want string
	}{
		{tile.Type{Group: tile.GroupBall, Index: 0}, "o1"},
		{tile.Type{Group: tile.GroupBam, Index: 8}, "b9"},
		{tile.Type{Group: tile.GroupNum, Index: 4}, "n5"},
		{tile.Type{Group: tile.GroupWind, Index: 2}, "We"},
		{tile.Type{Group: tile.GroupDragon, Index: 1}, "Dg"},
		{tile.Type{Group: tile.GroupSeason, Index: 3, MatchAny: true}, "S4"},
		{tile.Type{Group: tile.GroupFlower, Index: 0, MatchAny: true}, "F1"},
		{tile.Type{Group: "x", Index: 0}, "x-"},
		{tile.Type{}, "  "},
	}

	for _, tt := range tests {
		if got := faceLabel(tt.face); got != tt.want {
			t.Errorf("faceLabel(%v) = %q, want %q", tt.face, got, tt.want)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{61 * time.Second, "01:01"},
		{12*time.Minute + 3*time.Second, "12:03"},
	}

	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func singleTileView(status game.Status) game.View {
	tiles := board.Build([]board.Position{{X: 0, Y: 0}}).Tiles()
	tiles[0].Type = tile.Type{Group: tile.GroupBall, Index: 0}
	return game.View{
		Status:    status,
		Tiles:     tiles,
		FreeTiles: []int{0},
		Score:     30,
		Selected:  -1,
	}
}

func TestRenderGameDrawsBoard(t *testing.T) {
	s := core.NewScreen(40, 8)
	renderGame(s, singleTileView(game.StatusPlaying), "Test", 0, "hello")

	if row := s.Row(0); !strings.Contains(row, "Test  Score 30") {
		t.Errorf("header = %q", row)
	}
	// One 2x2 tile is 4x2 cells, centred on a 40 cell screen.
	if row := s.Row(headerRows); !strings.Contains(row, "┌o1┐") {
		t.Errorf("tile top = %q", row)
	}
	if row := s.Row(headerRows + 1); !strings.Contains(row, "└──┘") {
		t.Errorf("tile bottom = %q", row)
	}
	if got := s.Get(18, headerRows); got != '┌' {
		t.Errorf("tile starts at %q, want centred at x=18", got)
	}
	if row := s.Row(7); !strings.Contains(row, "hello") {
		t.Errorf("message row = %q", row)
	}
}

func TestRenderGamePausedHidesBoard(t *testing.T) {
	s := core.NewScreen(30, 10)
	renderGame(s, singleTileView(game.StatusPaused), "Test", 0, "")

	if strings.Contains(s.String(), "o1") {
		t.Error("paused screen shows tile faces")
	}
	if !strings.Contains(s.String(), "Paused") {
		t.Error("paused screen has no overlay")
	}
}

func TestRenderGameRemovedTilesNotDrawn(t *testing.T) {
	v := singleTileView(game.StatusComplete)
	v.Tiles[0].Active = false
	v.FreeTiles = nil
	v.Won = true

	s := core.NewScreen(40, 14)
	renderGame(s, v, "Test", -1, "")
	if strings.Contains(s.String(), "o1") {
		t.Error("removed tile was drawn")
	}
	if !strings.Contains(s.String(), "You cleared the board!") {
		t.Error("missing win overlay")
	}
}

func TestDrawOverlayCentresLines(t *testing.T) {
	s := core.NewScreen(30, 10)
	drawOverlay(s, []string{"Paused", "", "p: resume"}, core.ColorYellow)

	tests := []struct {
		text string
		x, y int
	}{
		{"Paused", 12, 3},
		{"p: resume", 10, 5},
	}
	for _, tt := range tests {
		for i, r := range tt.text {
			cell := s.GetCell(tt.x+i, tt.y)
			if cell.Rune != r {
				t.Fatalf("%q: row %d = %q, want it at x=%d", tt.text, tt.y, s.Row(tt.y), tt.x)
			}
			if cell.Color != core.ColorYellow {
				t.Errorf("%q: color = %v, want yellow", tt.text, cell.Color)
			}
		}
	}
	if got := s.Get(8, 3); got != '│' {
		t.Errorf("box edge = %q, want the frame at x=8", got)
	}
}
