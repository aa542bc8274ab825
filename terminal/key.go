// @focus: #sys { io } #input { keys }
package terminal

// Key represents a decoded input key
type Key uint16

// Key constants form a closed set; the decoder never produces anything else
const (
	KeyNone Key = iota // Nothing arrived within the read timeout
	KeyRune            // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10

	// Ctrl+letter (Ctrl+A = 0x01, Ctrl+Z = 0x1A)
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH // Decoded as Backspace
	KeyCtrlI // Decoded as Tab
	KeyCtrlJ // Decoded as Enter
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM // Decoded as Enter
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	// Ctrl+special
	KeyCtrlSpace
	KeyCtrlBackslash
	KeyCtrlBracketRight
	KeyCtrlCaret
	KeyCtrlUnderscore
)

// Modifier flags
type Modifier uint8

const (
	ModNone Modifier = 0
	ModAlt  Modifier = 1 << 0
	ModCtrl Modifier = 1 << 1
)

// Event is a single decoded key press
type Event struct {
	Key       Key
	Rune      rune // For KeyRune
	Modifiers Modifier
}

// IsRune reports whether the event is the unmodified printable character r
func (e Event) IsRune(r rune) bool {
	return e.Key == KeyRune && e.Modifiers == ModNone && e.Rune == r
}

// escapeSequence maps the body of an escape sequence to a key
// Key: bytes after ESC [ or ESC O (e.g., "A" for up arrow)
type escapeSequence struct {
	seq string
	key Key
	mod Modifier
}

// Known CSI sequences (ESC [ ...)
var csiSequences = []escapeSequence{
	// Arrow keys
	{"A", KeyUp, ModNone},
	{"B", KeyDown, ModNone},
	{"C", KeyRight, ModNone},
	{"D", KeyLeft, ModNone},

	// Ctrl+Arrows (xterm style: ESC [ 1 ; 5 X)
	{"1;5A", KeyUp, ModCtrl},
	{"1;5B", KeyDown, ModCtrl},
	{"1;5C", KeyRight, ModCtrl},
	{"1;5D", KeyLeft, ModCtrl},

	// Navigation
	{"H", KeyHome, ModNone},
	{"F", KeyEnd, ModNone},
	{"1~", KeyHome, ModNone},
	{"3~", KeyDelete, ModNone},
	{"4~", KeyEnd, ModNone},
	{"5~", KeyPageUp, ModNone},
	{"6~", KeyPageDown, ModNone},
	{"7~", KeyHome, ModNone},
	{"8~", KeyEnd, ModNone},

	// Function keys (xterm)
	{"15~", KeyF5, ModNone},
	{"17~", KeyF6, ModNone},
	{"18~", KeyF7, ModNone},
	{"19~", KeyF8, ModNone},
	{"20~", KeyF9, ModNone},
}

// SS3 sequences (ESC O ...)
var ss3Sequences = []escapeSequence{
	{"H", KeyHome, ModNone},
	{"F", KeyEnd, ModNone},
	{"P", KeyF1, ModNone},
	{"Q", KeyF2, ModNone},
	{"R", KeyF3, ModNone},
	{"S", KeyF4, ModNone},
	{"t", KeyF5, ModNone},
	{"u", KeyF6, ModNone},
	{"v", KeyF7, ModNone},
	{"l", KeyF8, ModNone},
	{"w", KeyF9, ModNone},
	{"x", KeyF10, ModNone},
}

var csiMap = buildSequenceMap(csiSequences)
var ss3Map = buildSequenceMap(ss3Sequences)

func buildSequenceMap(seqs []escapeSequence) map[string]escapeSequence {
	m := make(map[string]escapeSequence, len(seqs))
	for _, s := range seqs {
		m[s.seq] = s
	}
	return m
}

// lookupCSI performs zero-alloc map lookup via compiler optimization
// The string([]byte) conversion inline in map access does not allocate
func lookupCSI(seq []byte) (Event, bool) {
	if s, ok := csiMap[string(seq)]; ok {
		return Event{Key: s.key, Modifiers: s.mod}, true
	}
	return Event{Key: KeyEscape}, false
}

// lookupSS3 performs zero-alloc map lookup
func lookupSS3(seq []byte) (Event, bool) {
	if s, ok := ss3Map[string(seq)]; ok {
		return Event{Key: s.key, Modifiers: s.mod}, true
	}
	return Event{Key: KeyEscape}, false
}
