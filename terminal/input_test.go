package terminal

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// decodeAll feeds raw bytes through a decoder until the input is exhausted
func decodeAll(t *testing.T, raw string) []Event {
	t.Helper()
	d := NewDecoder(bytes.NewReader([]byte(raw)))

	var events []Event
	for i := 0; i < 64; i++ {
		ev, err := d.ReadKey()
		if err != nil {
			t.Fatalf("ReadKey failed: %v", err)
		}
		if ev.Key == KeyNone {
			return events
		}
		events = append(events, ev)
	}
	t.Fatalf("Decoder did not drain input %q", raw)
	return nil
}

func TestDecodeTable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Event
	}{
		{"printable", "a", Event{Key: KeyRune, Rune: 'a'}},
		{"space", " ", Event{Key: KeyRune, Rune: ' '}},
		{"tilde", "~", Event{Key: KeyRune, Rune: '~'}},
		{"ctrl_q", "\x11", Event{Key: KeyCtrlQ}},
		{"ctrl_r", "\x12", Event{Key: KeyCtrlR}},
		{"ctrl_s", "\x13", Event{Key: KeyCtrlS}},
		{"ctrl_l", "\x0c", Event{Key: KeyCtrlL}},
		{"ctrl_a", "\x01", Event{Key: KeyCtrlA}},
		{"ctrl_z", "\x1a", Event{Key: KeyCtrlZ}},
		{"ctrl_space", "\x00", Event{Key: KeyCtrlSpace}},
		{"backspace_del", "\x7f", Event{Key: KeyBackspace}},
		{"backspace_ctrl_h", "\x08", Event{Key: KeyBackspace}},
		{"tab", "\t", Event{Key: KeyTab}},
		{"enter_cr", "\r", Event{Key: KeyEnter}},
		{"enter_lf", "\n", Event{Key: KeyEnter}},
		{"utf8", "é", Event{Key: KeyRune, Rune: 'é'}},

		{"escape_alone", "\x1b", Event{Key: KeyEscape}},
		{"alt_s", "\x1bs", Event{Key: KeyRune, Rune: 's', Modifiers: ModAlt}},
		{"alt_f", "\x1bf", Event{Key: KeyRune, Rune: 'f', Modifiers: ModAlt}},

		{"up", "\x1b[A", Event{Key: KeyUp}},
		{"down", "\x1b[B", Event{Key: KeyDown}},
		{"right", "\x1b[C", Event{Key: KeyRight}},
		{"left", "\x1b[D", Event{Key: KeyLeft}},
		{"home_csi", "\x1b[H", Event{Key: KeyHome}},
		{"end_csi", "\x1b[F", Event{Key: KeyEnd}},

		{"home_1", "\x1b[1~", Event{Key: KeyHome}},
		{"delete", "\x1b[3~", Event{Key: KeyDelete}},
		{"end_4", "\x1b[4~", Event{Key: KeyEnd}},
		{"page_up", "\x1b[5~", Event{Key: KeyPageUp}},
		{"page_down", "\x1b[6~", Event{Key: KeyPageDown}},
		{"home_7", "\x1b[7~", Event{Key: KeyHome}},
		{"end_8", "\x1b[8~", Event{Key: KeyEnd}},

		{"f5_csi", "\x1b[15~", Event{Key: KeyF5}},
		{"f6_csi", "\x1b[17~", Event{Key: KeyF6}},
		{"f7_csi", "\x1b[18~", Event{Key: KeyF7}},
		{"f8_csi", "\x1b[19~", Event{Key: KeyF8}},
		{"f9_csi", "\x1b[20~", Event{Key: KeyF9}},

		{"ctrl_up", "\x1b[1;5A", Event{Key: KeyUp, Modifiers: ModCtrl}},
		{"ctrl_down", "\x1b[1;5B", Event{Key: KeyDown, Modifiers: ModCtrl}},
		{"ctrl_right", "\x1b[1;5C", Event{Key: KeyRight, Modifiers: ModCtrl}},
		{"ctrl_left", "\x1b[1;5D", Event{Key: KeyLeft, Modifiers: ModCtrl}},

		{"f1_ss3", "\x1bOP", Event{Key: KeyF1}},
		{"f2_ss3", "\x1bOQ", Event{Key: KeyF2}},
		{"f3_ss3", "\x1bOR", Event{Key: KeyF3}},
		{"f4_ss3", "\x1bOS", Event{Key: KeyF4}},
		{"f5_ss3", "\x1bOt", Event{Key: KeyF5}},
		{"f6_ss3", "\x1bOu", Event{Key: KeyF6}},
		{"f7_ss3", "\x1bOv", Event{Key: KeyF7}},
		{"f8_ss3", "\x1bOl", Event{Key: KeyF8}},
		{"f9_ss3", "\x1bOw", Event{Key: KeyF9}},
		{"f10_ss3", "\x1bOx", Event{Key: KeyF10}},
		{"home_ss3", "\x1bOH", Event{Key: KeyHome}},
		{"end_ss3", "\x1bOF", Event{Key: KeyEnd}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := decodeAll(t, tt.raw)
			if len(events) != 1 {
				t.Fatalf("Expected 1 event for %q, got %d: %v", tt.raw, len(events), events)
			}
			if events[0] != tt.want {
				t.Errorf("Expected %v for %q, got %v", tt.want, tt.raw, events[0])
			}
		})
	}
}

func TestDecodeUnknownSequencesBecomeEscape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"csi_unknown_letter", "\x1b[Z"},
		{"csi_unknown_tilde", "\x1b[2~"},
		{"csi_unknown_two_digit", "\x1b[21~"},
		{"csi_two_digit_no_tilde", "\x1b[15x"},
		{"csi_modifier_not_ctrl", "\x1b[1;2A"},
		{"csi_ctrl_unknown_letter", "\x1b[1;5Z"},
		{"ss3_unknown", "\x1bOZ"},
		{"esc_uppercase", "\x1bXY"},
		{"esc_digit", "\x1b9q"},
		{"truncated_csi", "\x1b["},
		{"truncated_digit", "\x1b[1"},
		{"truncated_modifier", "\x1b[1;5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(bytes.NewReader([]byte(tt.raw)))
			ev, err := d.ReadKey()
			if err != nil {
				t.Fatalf("ReadKey failed: %v", err)
			}
			if ev.Key != KeyEscape || ev.Modifiers != ModNone {
				t.Errorf("Expected bare Escape for %q, got %v", tt.raw, ev)
			}
		})
	}
}

func TestDecodeLookaheadIsBounded(t *testing.T) {
	// Unknown CSI body consumes its lookahead; following bytes decode on their own
	events := decodeAll(t, "\x1b[2~x")
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d: %v", len(events), events)
	}
	if events[0].Key != KeyEscape {
		t.Errorf("Expected Escape first, got %v", events[0])
	}
	if !events[1].IsRune('x') {
		t.Errorf("Expected 'x' second, got %v", events[1])
	}
}

func TestDecodeSequenceStream(t *testing.T) {
	events := decodeAll(t, "\x1b[A\x1b[B \x13\x1b[15~\x11")
	want := []Event{
		{Key: KeyUp},
		{Key: KeyDown},
		{Key: KeyRune, Rune: ' '},
		{Key: KeyCtrlS},
		{Key: KeyF5},
		{Key: KeyCtrlQ},
	}
	if len(events) != len(want) {
		t.Fatalf("Expected %d events, got %d: %v", len(want), len(events), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], events[i])
		}
	}
}

func TestDecodeNoDataIsNoEvent(t *testing.T) {
	d := NewDecoder(bytes.NewReader(nil))
	ev, err := d.ReadKey()
	if err != nil {
		t.Fatalf("Expected no error on empty input, got %v", err)
	}
	if ev.Key != KeyNone {
		t.Errorf("Expected KeyNone, got %v", ev)
	}
}

// failingReader returns a hard error on every read
type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestDecodeReadErrorIsFatal(t *testing.T) {
	boom := errors.New("boom")
	d := NewDecoder(failingReader{err: boom})
	if _, err := d.ReadKey(); !errors.Is(err, boom) {
		t.Errorf("Expected wrapped read error, got %v", err)
	}
}

// stutterReader delivers one byte, then one empty read, then the rest
type stutterReader struct {
	data  []byte
	reads int
}

func (s *stutterReader) Read(p []byte) (int, error) {
	s.reads++
	if s.reads == 2 {
		return 0, nil
	}
	if len(s.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p, s.data[:1])
	s.data = s.data[1:]
	return n, nil
}

func TestDecodeTimeoutMidSequence(t *testing.T) {
	// ESC followed by a timeout is a bare Escape even if more bytes arrive later
	r := &stutterReader{data: []byte("\x1b[A")}
	d := NewDecoder(r)

	ev, err := d.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey failed: %v", err)
	}
	if ev.Key != KeyEscape {
		t.Errorf("Expected Escape after timeout, got %v", ev)
	}

	ev, _ = d.ReadKey()
	if !ev.IsRune('[') {
		t.Errorf("Expected '[' after timed-out escape, got %v", ev)
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Key: KeyUp, Modifiers: ModCtrl}, "ctrl+up"},
		{Event{Key: KeyRune, Rune: 's', Modifiers: ModAlt}, "alt+s"},
		{Event{Key: KeyRune, Rune: 'x'}, "'x'"},
		{Event{Key: KeyCtrlQ}, "ctrl_q"},
		{Event{Key: KeyF6}, "f6"},
		{Event{Key: KeyNone}, "none"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
