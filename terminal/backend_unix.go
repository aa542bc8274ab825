//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// RawMode is the scoped raw-mode handle for one terminal fd
// Restore puts back the settings captured at EnableRawMode and is safe to call repeatedly
type RawMode struct {
	fd    int
	state *term.State

	once sync.Once
	err  error
}

// EnableRawMode captures the current settings of fd and switches it to raw input:
// no echo, no canonical buffering, no flow control or signal keys, unprocessed output,
// and reads that return empty after 0.1s (VMIN=0, VTIME=1)
func EnableRawMode(fd int) (*RawMode, error) {
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	old, err := term.GetState(fd)
	if err != nil {
		return nil, fmt.Errorf("tcgetattr: %w", err)
	}

	t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("tcgetattr: %w", err)
	}
	makeRaw(t)

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, t); err != nil {
		return nil, fmt.Errorf("tcsetattr: %w", err)
	}

	return &RawMode{fd: fd, state: old}, nil
}

// makeRaw applies the raw-mode flag set in place
func makeRaw(t *unix.Termios) {
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Cflag |= unix.CS8
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 1 // Tenths of a second
}

// Restore reapplies the original settings; only the first call touches the terminal
func (r *RawMode) Restore() error {
	if r == nil {
		return nil
	}
	r.once.Do(func() {
		if err := term.Restore(r.fd, r.state); err != nil {
			r.err = fmt.Errorf("tcsetattr: %w", err)
		}
	})
	return r.err
}

// fdReader reads straight from the fd so a VTIME expiry surfaces as a 0-byte read
type fdReader int

func (f fdReader) Read(p []byte) (int, error) {
	n, err := unix.Read(int(f), p)
	if n < 0 {
		n = 0
	}
	return n, err
}

// isNoData reports read errors that only mean "nothing arrived"
func isNoData(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, unix.EAGAIN) ||
		errors.Is(err, unix.EINTR)
}

// windowSize asks the kernel for the terminal size of fd
func windowSize(fd int) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	if ws.Col == 0 {
		return 0, 0, ErrGeometry
	}
	return int(ws.Col), int(ws.Row), nil
}
