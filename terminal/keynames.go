package terminal

import (
	"strconv"
	"strings"
)

// keyToName maps Key constants to canonical names used in debug logs
var keyToName = map[Key]string{
	KeyNone:      "none",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",

	KeyCtrlSpace:        "ctrl_space",
	KeyCtrlBackslash:    "ctrl_backslash",
	KeyCtrlBracketRight: "ctrl_bracket_right",
	KeyCtrlCaret:        "ctrl_caret",
	KeyCtrlUnderscore:   "ctrl_underscore",
}

// KeyName returns the canonical name for a Key constant
// Ctrl+letter keys are named ctrl_a..ctrl_z; KeyRune has no name
func KeyName(k Key) string {
	if k >= KeyCtrlA && k <= KeyCtrlZ {
		return "ctrl_" + string(rune('a'+(k-KeyCtrlA)))
	}
	return keyToName[k]
}

// String renders an event for logging, e.g. "ctrl+up", "alt+s", "'x'"
func (e Event) String() string {
	var b strings.Builder
	if e.Modifiers&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if e.Modifiers&ModAlt != 0 {
		b.WriteString("alt+")
	}
	if e.Key == KeyRune {
		if e.Modifiers != ModNone {
			b.WriteRune(e.Rune)
		} else {
			b.WriteString(strconv.QuoteRune(e.Rune))
		}
		return b.String()
	}
	name := KeyName(e.Key)
	if name == "" {
		name = "key(" + strconv.Itoa(int(e.Key)) + ")"
	}
	b.WriteString(name)
	return b.String()
}
