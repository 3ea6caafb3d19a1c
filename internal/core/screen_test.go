package core

import (
	"strings"
	"testing"
)

// drawBoard fills a frame with the wall ring of b and a score line below it.
func drawBoard(b Bounds, score string) *Screen {
	s := NewScreen(b.W, b.H+1)
	for y := range b.H {
		for x := range b.W {
			if b.IsWall(Point{X: x, Y: y}) {
				s.Set(x, y, '#')
			}
		}
	}
	s.DrawText(0, b.H, score)
	return s
}

func TestScreenBoardLines(t *testing.T) {
	b := DefaultBounds()
	s := drawBoard(b, "Score: 12")

	lines := s.Lines()
	if len(lines) != BoardHeight+1 {
		t.Fatalf("Lines() returned %d rows, expected %d", len(lines), BoardHeight+1)
	}

	ring := strings.Repeat("#", BoardWidth)
	inner := "#" + strings.Repeat(" ", BoardWidth-2) + "#"
	for y, line := range lines[:BoardHeight] {
		want := inner
		if y == 0 || y == BoardHeight-1 {
			want = ring
		}
		if line != want {
			t.Errorf("row %d = %q, expected %q", y, line, want)
		}
	}

	score := lines[BoardHeight]
	if len(score) != BoardWidth || strings.TrimRight(score, " ") != "Score: 12" {
		t.Errorf("score row = %q", score)
	}
}

func TestScreenClearKeepsSize(t *testing.T) {
	s := drawBoard(DefaultBounds(), "Score: 3")
	s.Clear()

	blank := strings.Repeat(" ", BoardWidth)
	for y, line := range s.Lines() {
		if line != blank {
			t.Errorf("row %d after Clear = %q", y, line)
		}
	}
	if s.Width() != BoardWidth || s.Height() != BoardHeight+1 {
		t.Errorf("size after Clear = %dx%d", s.Width(), s.Height())
	}
}

func TestScreenClipsOutsideFrame(t *testing.T) {
	s := NewScreen(BoardWidth, BoardHeight+1)

	// Cells beyond the frame are dropped and read back as blank
	for _, p := range []Point{{X: -1, Y: 0}, {X: BoardWidth, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: BoardHeight + 1}} {
		s.Set(p.X, p.Y, 'O')
		if got := s.Get(p.X, p.Y); got != ' ' {
			t.Errorf("Get(%v) = %q, expected blank", p, got)
		}
	}

	// A score too long for the row is cut at the right edge
	long := "Score: " + strings.Repeat("9", BoardWidth)
	s.DrawText(0, BoardHeight, long)
	if got := s.Lines()[BoardHeight]; got != long[:BoardWidth] {
		t.Errorf("score row = %q, expected %q", got, long[:BoardWidth])
	}
}
