package cli

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
)

var errNotTerminal = errors.New("playback needs an interactive terminal")

// enterPlayback puts in into raw mode and switches out to the alternate
// screen with the cursor hidden. The returned restore undoes both and is safe
// to call more than once.
func enterPlayback(in *os.File, out io.Writer) (func() error, error) {
	fd := in.Fd()
	if !term.IsTerminal(fd) {
		return nil, errNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(out, ansi.EnableAltScreenBuffer+ansi.HideCursor); err != nil {
		term.Restore(fd, state)
		return nil, err
	}

	var (
		once       sync.Once
		restoreErr error
	)
	return func() error {
		once.Do(func() {
			io.WriteString(out, ansi.ShowCursor+ansi.DisableAltScreenBuffer)
			restoreErr = term.Restore(fd, state)
		})
		return restoreErr
	}, nil
}

// lockedWriter serializes writes to the terminal. Playback renders each
// frame with one Write and clips such as the bell write from their own
// goroutines, so a bell lands between frames and never inside one.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(f.Fd())
}
