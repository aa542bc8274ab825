package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	// ErrNotTerminal is returned when stdin is not an interactive terminal
	ErrNotTerminal = errors.New("stdin is not a terminal")

	// ErrGeometry is returned when the terminal size cannot be determined
	ErrGeometry = errors.New("cannot determine terminal size")
)

// maxCursorReport bounds the cursor position reply read during size probing
const maxCursorReport = 31

// Terminal is the controlling terminal in raw mode
// It owns the raw-mode handle and the key decoder on stdin
type Terminal struct {
	out  *os.File
	raw  *RawMode
	src  io.Reader
	keys *Decoder

	mu     sync.Mutex
	closed bool
}

// Open switches stdin to raw mode and prepares key decoding
func Open() (*Terminal, error) {
	inFd := int(os.Stdin.Fd())

	raw, err := EnableRawMode(inFd)
	if err != nil {
		return nil, err
	}

	src := fdReader(inFd)
	return &Terminal{
		out:  os.Stdout,
		raw:  raw,
		src:  src,
		keys: NewDecoder(src),
	}, nil
}

// Size returns terminal columns and rows
func (t *Terminal) Size() (cols, rows int, err error) {
	return QuerySize(int(t.out.Fd()), t.src, t.out)
}

// ReadKey waits at most one read timeout for the next key
func (t *Terminal) ReadKey() (Event, error) {
	return t.keys.ReadKey()
}

// Flush writes the frame in one call
func (t *Terminal) Flush(f *Frame) error {
	_, err := t.out.Write(f.Bytes())
	return err
}

// Clear erases the screen and homes the cursor
func (t *Terminal) Clear() error {
	f := NewFrame(8)
	f.ClearScreen()
	f.Home()
	return t.Flush(f)
}

// Restore returns the terminal to its original settings without clearing the screen
func (t *Terminal) Restore() error {
	return t.raw.Restore()
}

// Close clears the screen, shows the cursor and restores the original settings
// Safe to call multiple times
func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	f := NewFrame(16)
	f.ClearScreen()
	f.Home()
	f.ShowCursor()
	werr := t.Flush(f)

	if err := t.raw.Restore(); err != nil {
		return err
	}
	return werr
}

// QuerySize determines terminal dimensions from the window size ioctl on fd,
// falling back to pushing the cursor to the far corner and asking where it landed
func QuerySize(fd int, in io.Reader, out io.Writer) (cols, rows int, err error) {
	if cols, rows, err := windowSize(fd); err == nil {
		return cols, rows, nil
	}
	return probeSize(in, out)
}

// probeSize moves the cursor far right and down, then reads the cursor report
func probeSize(in io.Reader, out io.Writer) (cols, rows int, err error) {
	if _, err := out.Write(seqProbeFar); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrGeometry, err)
	}
	if _, err := out.Write(seqQueryCursor); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrGeometry, err)
	}

	var buf [maxCursorReport]byte
	var one [1]byte
	n := 0
	for n < len(buf) {
		if k, _ := in.Read(one[:]); k != 1 {
			break
		}
		if one[0] == 'R' {
			break
		}
		buf[n] = one[0]
		n++
	}

	rows, cols, ok := ParseCursorReport(buf[:n])
	if !ok {
		return 0, 0, ErrGeometry
	}
	return cols, rows, nil
}

// ParseCursorReport parses a cursor position reply "ESC [ row ; col" with optional trailing R
func ParseCursorReport(data []byte) (row, col int, ok bool) {
	if len(data) > 0 && data[len(data)-1] == 'R' {
		data = data[:len(data)-1]
	}
	if len(data) < 2 || data[0] != 0x1b || data[1] != '[' {
		return 0, 0, false
	}

	state := 0 // 0=row, 1=col
	digits := 0
	val := 0
	for _, b := range data[2:] {
		switch {
		case b == ';':
			if state != 0 || digits == 0 {
				return 0, 0, false
			}
			row = val
			state++
			val, digits = 0, 0
		case b >= '0' && b <= '9':
			val = val*10 + int(b-'0')
			digits++
			if val > 9999 { // Sanity limit
				return 0, 0, false
			}
		default:
			return 0, 0, false
		}
	}

	if state != 1 || digits == 0 {
		return 0, 0, false
	}
	col = val
	if row < 1 || col < 1 {
		return 0, 0, false
	}
	return row, col, true
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Close() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(seqStyleOff)
	w.Write(seqCursorShow)
	w.Write(seqLineBreak)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
