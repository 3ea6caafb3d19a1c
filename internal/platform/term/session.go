package term

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNotTerminal is returned when stdin is not an interactive terminal.
var ErrNotTerminal = errors.New("term: stdin is not a terminal")

// Session owns the terminal while a game runs. Open puts the input in raw
// mode and hides the cursor; Close undoes both and is safe to call more
// than once.
type Session struct {
	in     *os.File
	out    io.Writer
	inFd   int
	old    *xterm.State
	logger *log.Logger

	closeOnce sync.Once
	closeErr  error
}

// Open enters raw mode on in and prepares out for full-frame redraws.
func Open(in *os.File, out io.Writer, logger *log.Logger) (*Session, error) {
	fd := int(in.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	old, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("term: enter raw mode: %w", err)
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		in:     in,
		out:    out,
		inFd:   fd,
		old:    old,
		logger: logger,
	}

	if _, err := io.WriteString(out, seqClearScreen+seqHideCursor); err != nil {
		s.Close()
		return nil, fmt.Errorf("term: prepare screen: %w", err)
	}
	return s, nil
}

// Close shows the cursor and restores the saved terminal state.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		_, werr := io.WriteString(s.out, seqShowCursor)
		if err := xterm.Restore(s.inFd, s.old); err != nil {
			s.closeErr = fmt.Errorf("term: restore terminal: %w", err)
			return
		}
		if werr != nil {
			s.closeErr = fmt.Errorf("term: show cursor: %w", werr)
		}
	})
	return s.closeErr
}

// Poll returns the action for at most one pending keystroke. It never
// blocks; read failures and unknown keys count as no input.
func (s *Session) Poll() core.InputFrame {
	b, ok, err := pollByte(s.inFd)
	if err != nil {
		s.logger.Debug("input read failed", "error", err)
		return core.InputFrame{}
	}
	if !ok {
		return core.InputFrame{}
	}

	action, known := core.ActionForByte(b)
	if !known {
		return core.InputFrame{}
	}
	return core.NewInputFrame(action)
}

// Draw writes a frame to the terminal.
func (s *Session) Draw(screen *core.Screen) error {
	return WriteFrame(s.out, screen)
}

// Size returns the terminal dimensions of f.
func Size(f *os.File) (int, int, error) {
	return xterm.GetSize(int(f.Fd()))
}
