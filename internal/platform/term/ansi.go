// Package term runs the game directly on the controlling terminal: raw
// mode, non-blocking single-byte input and ANSI cursor-home redraws.
package term

import (
	"bufio"
	"io"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ANSI control sequences.
const (
	seqClearScreen = "\x1b[2J"
	seqCursorHome  = "\x1b[H"
	seqHideCursor  = "\x1b[?25l"
	seqShowCursor  = "\x1b[?25h"
)

// Raw mode turns off output post-processing, so lines end in CRLF.
const lineEnd = "\r\n"

// WriteFrame moves the cursor home and writes the screen line by line.
func WriteFrame(w io.Writer, s *core.Screen) error {
	bw := bufio.NewWriterSize(w, (s.Width()+len(lineEnd))*s.Height()+len(seqCursorHome))
	bw.WriteString(seqCursorHome)
	for _, line := range s.Lines() {
		bw.WriteString(line)
		bw.WriteString(lineEnd)
	}
	return bw.Flush()
}
