package terminal

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// escapeLookahead bounds how many bytes after ESC are read before giving up
// Longest recognized form is ESC [ 1 ; 5 A
const escapeLookahead = 5

// Decoder turns a raw byte stream into key events one key at a time
// Reads are expected to return 0 bytes when nothing arrives within the terminal read timeout
type Decoder struct {
	r   io.Reader
	one [1]byte
}

// NewDecoder creates a decoder reading from r
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// readByte returns ok=false when no byte arrived within the read timeout
func (d *Decoder) readByte() (byte, bool, error) {
	n, err := d.r.Read(d.one[:])
	if n == 1 {
		return d.one[0], true, nil
	}
	if err == nil || isNoData(err) {
		return 0, false, nil
	}
	return 0, false, err
}

// fill reads up to len(p) bytes one at a time, stopping at the first timeout
func (d *Decoder) fill(p []byte) (int, error) {
	for i := range p {
		b, ok, err := d.readByte()
		if err != nil {
			return i, err
		}
		if !ok {
			return i, nil
		}
		p[i] = b
	}
	return len(p), nil
}

// ReadKey blocks for at most one read timeout and returns the next key
// KeyNone means nothing was typed; errors are unrecoverable read failures
func (d *Decoder) ReadKey() (Event, error) {
	b, ok, err := d.readByte()
	if err != nil {
		return Event{}, fmt.Errorf("read: %w", err)
	}
	if !ok {
		return Event{Key: KeyNone}, nil
	}

	switch {
	case b == 0x1b:
		ev, err := d.parseEscape()
		if err != nil {
			return Event{}, fmt.Errorf("read: %w", err)
		}
		return ev, nil
	case b >= 0x20 && b < 0x7f:
		return Event{Key: KeyRune, Rune: rune(b)}, nil
	case b == 0x7f:
		return Event{Key: KeyBackspace}, nil
	case b < 0x20:
		return parseControl(b), nil
	}

	ev, err := d.parseUTF8(b)
	if err != nil {
		return Event{}, fmt.Errorf("read: %w", err)
	}
	return ev, nil
}

// parseEscape resolves the bytes following ESC
// Any sequence that is cut short or not recognized collapses to a bare Escape
func (d *Decoder) parseEscape() (Event, error) {
	var seq [escapeLookahead]byte
	esc := Event{Key: KeyEscape}

	if n, err := d.fill(seq[:1]); err != nil || n < 1 {
		return esc, err
	}

	// Alt+letter
	if seq[0] >= 'a' && seq[0] <= 'z' {
		return Event{Key: KeyRune, Rune: rune(seq[0]), Modifiers: ModAlt}, nil
	}

	if n, err := d.fill(seq[1:2]); err != nil || n < 1 {
		return esc, err
	}

	switch seq[0] {
	case '[':
		return d.parseCSI(seq[:])
	case 'O':
		ev, _ := lookupSS3(seq[1:2])
		return ev, nil
	}
	return esc, nil
}

// parseCSI continues an ESC [ sequence; seq[0:2] is already filled
func (d *Decoder) parseCSI(seq []byte) (Event, error) {
	esc := Event{Key: KeyEscape}

	// ESC [ <letter>
	if !isDigit(seq[1]) {
		ev, _ := lookupCSI(seq[1:2])
		return ev, nil
	}

	if n, err := d.fill(seq[2:3]); err != nil || n < 1 {
		return esc, err
	}

	switch seq[2] {
	case '~':
		// ESC [ <digit> ~
		ev, _ := lookupCSI(seq[1:3])
		return ev, nil
	case ';':
		// ESC [ <digit> ; <mod> <letter>
		if n, err := d.fill(seq[3:5]); err != nil || n < 2 {
			return esc, err
		}
		ev, _ := lookupCSI(seq[1:5])
		return ev, nil
	}

	// ESC [ <digit> <digit> ~
	if n, err := d.fill(seq[3:4]); err != nil || n < 1 {
		return esc, err
	}
	if seq[3] != '~' {
		return esc, nil
	}
	ev, _ := lookupCSI(seq[1:4])
	return ev, nil
}

// parseUTF8 reads the continuation bytes of a multibyte character
func (d *Decoder) parseUTF8(lead byte) (Event, error) {
	var buf [utf8.UTFMax]byte
	buf[0] = lead

	size := utf8SeqLen(lead)
	if size == 0 {
		return Event{Key: KeyRune, Rune: utf8.RuneError}, nil
	}

	n, err := d.fill(buf[1:size])
	if err != nil {
		return Event{}, err
	}

	r, _ := utf8.DecodeRune(buf[:1+n])
	return Event{Key: KeyRune, Rune: r}, nil
}

// utf8SeqLen returns expected UTF-8 sequence length from start byte, 0 if invalid
func utf8SeqLen(b byte) int {
	if b < 0x80 {
		return 1
	}
	if b&0xe0 == 0xc0 {
		return 2
	}
	if b&0xf0 == 0xe0 {
		return 3
	}
	if b&0xf8 == 0xf0 {
		return 4
	}
	return 0 // Invalid
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// parseControl maps control characters to keys
func parseControl(b byte) Event {
	switch b {
	case 0x00: // Ctrl+Space or Ctrl+@
		return Event{Key: KeyCtrlSpace}
	case 0x08: // Ctrl+H or Backspace
		return Event{Key: KeyBackspace}
	case 0x09: // Tab
		return Event{Key: KeyTab}
	case 0x0a, 0x0d: // LF, CR (Enter)
		return Event{Key: KeyEnter}
	case 0x1b:
		return Event{Key: KeyEscape}
	case 0x1c:
		return Event{Key: KeyCtrlBackslash}
	case 0x1d:
		return Event{Key: KeyCtrlBracketRight}
	case 0x1e:
		return Event{Key: KeyCtrlCaret}
	case 0x1f:
		return Event{Key: KeyCtrlUnderscore}
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Key: KeyCtrlA + Key(b-0x01)}
	}
	return Event{Key: KeyNone}
}
