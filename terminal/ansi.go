// @focus: #terminal { ansi }
package terminal

import (
	"strconv"
)

// Pre-allocated ANSI sequence fragments
var (
	seqCursorHide   = []byte("\x1b[?25l")
	seqCursorShow   = []byte("\x1b[?25h")
	seqHome         = []byte("\x1b[H")
	seqClearLine    = []byte("\x1b[K")
	seqClearScreen  = []byte("\x1b[2J")
	seqInverse      = []byte("\x1b[7m")
	seqHighlight    = []byte("\x1b[7;33m") // Yellow inverse
	seqStyleOff     = []byte("\x1b[m")
	seqQueryCursor  = []byte("\x1b[6n")
	seqProbeFar     = []byte("\x1b[999C\x1b[999B")
	seqLineBreak    = []byte("\r\n")
	seqCursorPrefix = []byte("\x1b[") // followed by row;colH
)

// Frame accumulates every byte of one screen update
// A frame is written with a single Write and then dropped
type Frame struct {
	buf []byte
}

// NewFrame creates a frame with room for sizeHint bytes
func NewFrame(sizeHint int) *Frame {
	return &Frame{buf: make([]byte, 0, sizeHint)}
}

// Bytes returns the accumulated frame contents
func (f *Frame) Bytes() []byte { return f.buf }

// Len returns the number of accumulated bytes
func (f *Frame) Len() int { return len(f.buf) }

// Reset empties the frame, keeping its capacity
func (f *Frame) Reset() { f.buf = f.buf[:0] }

// Write implements io.Writer
func (f *Frame) Write(p []byte) (int, error) {
	f.buf = append(f.buf, p...)
	return len(p), nil
}

// WriteString appends s
func (f *Frame) WriteString(s string) {
	f.buf = append(f.buf, s...)
}

// WriteByte appends a single byte
func (f *Frame) WriteByte(b byte) error {
	f.buf = append(f.buf, b)
	return nil
}

// WriteInt appends n in decimal
func (f *Frame) WriteInt(n int) {
	f.buf = strconv.AppendInt(f.buf, int64(n), 10)
}

// HideCursor appends ESC[?25l
func (f *Frame) HideCursor() { f.buf = append(f.buf, seqCursorHide...) }

// ShowCursor appends ESC[?25h
func (f *Frame) ShowCursor() { f.buf = append(f.buf, seqCursorShow...) }

// Home appends ESC[H
func (f *Frame) Home() { f.buf = append(f.buf, seqHome...) }

// ClearLine appends ESC[K (clear to end of line)
func (f *Frame) ClearLine() { f.buf = append(f.buf, seqClearLine...) }

// ClearScreen appends ESC[2J
func (f *Frame) ClearScreen() { f.buf = append(f.buf, seqClearScreen...) }

// Inverse appends ESC[7m
func (f *Frame) Inverse() { f.buf = append(f.buf, seqInverse...) }

// Highlight appends ESC[7;33m
func (f *Frame) Highlight() { f.buf = append(f.buf, seqHighlight...) }

// StyleOff appends ESC[m
func (f *Frame) StyleOff() { f.buf = append(f.buf, seqStyleOff...) }

// LineBreak appends CR LF; output post-processing is off in raw mode
func (f *Frame) LineBreak() { f.buf = append(f.buf, seqLineBreak...) }

// MoveCursor appends ESC[row;colH (1-indexed input)
func (f *Frame) MoveCursor(row, col int) {
	f.buf = append(f.buf, seqCursorPrefix...)
	f.WriteInt(row)
	f.buf = append(f.buf, ';')
	f.WriteInt(col)
	f.buf = append(f.buf, 'H')
}
