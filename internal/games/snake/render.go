package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs used when drawing the board.
const (
	GlyphWall  = '#'
	GlyphFood  = 'o'
	GlyphSnake = 'O'
	GlyphEmpty = ' '
)

// Render draws the board into dst followed by the score line.
// Every cell gets exactly one glyph; wall wins over food, food over snake.
func (g *Game) Render(dst *core.Screen) {
	for y := range g.bounds.H {
		for x := range g.bounds.W {
			dst.Set(x, y, g.glyphAt(core.Point{X: x, Y: y}))
		}
	}
	dst.DrawText(0, g.bounds.H, fmt.Sprintf("Score: %d", g.score))
}

// glyphAt picks the glyph for a single board cell.
func (g *Game) glyphAt(p core.Point) rune {
	switch {
	case g.bounds.IsWall(p):
		return GlyphWall
	case g.hasFood && p == g.food:
		return GlyphFood
	case g.snake != nil && g.snake.Occupies(p):
		return GlyphSnake
	default:
		return GlyphEmpty
	}
}
