package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Styles maps board glyphs to lipgloss styles.
type Styles struct {
	Wall  lipgloss.Style
	Food  lipgloss.Style
	Snake lipgloss.Style
	Text  lipgloss.Style
}

// NewStyles builds styles from a palette. Empty colors leave the glyph unstyled.
func NewStyles(p registry.Palette) Styles {
	return Styles{
		Wall:  colored(p.Wall),
		Food:  colored(p.Food),
		Snake: colored(p.Snake),
		Text:  colored(p.Score),
	}
}

func colored(c string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c != "" {
		s = s.Foreground(lipgloss.Color(c))
	}
	return s
}

func (s Styles) forRune(r rune) lipgloss.Style {
	switch r {
	case snake.GlyphWall:
		return s.Wall
	case snake.GlyphFood:
		return s.Food
	case snake.GlyphSnake:
		return s.Snake
	default:
		return s.Text
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Rows from boardRows on are plain text such as the score line.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(scr *core.Screen, styles Styles, boardRows int) string {
	var sb strings.Builder
	sb.Grow(scr.Width()*scr.Height()*2 + scr.Height())

	for y, line := range scr.Lines() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		if y >= boardRows {
			sb.WriteString(styles.Text.Render(line))
			continue
		}

		runes := []rune(line)
		for x := 0; x < len(runes); {
			class := glyphClass(runes[x])
			end := x
			for end < len(runes) && glyphClass(runes[end]) == class {
				end++
			}
			sb.WriteString(styles.forRune(class).Render(string(runes[x:end])))
			x = end
		}
	}
	return sb.String()
}

// glyphClass folds every non-board rune into a single text class.
func glyphClass(r rune) rune {
	switch r {
	case snake.GlyphWall, snake.GlyphFood, snake.GlyphSnake:
		return r
	default:
		return 0
	}
}
