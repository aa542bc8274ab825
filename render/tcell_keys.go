package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lifeterm/terminal"
)

// tcellKeys maps tcell special keys onto the decoder's key set
// tcell aliases Ctrl-H, Ctrl-I, Ctrl-M and Ctrl-[ to Backspace, Tab, Enter and Escape
var tcellKeys = map[tcell.Key]terminal.Key{
	tcell.KeyUp:             terminal.KeyUp,
	tcell.KeyDown:           terminal.KeyDown,
	tcell.KeyLeft:           terminal.KeyLeft,
	tcell.KeyRight:          terminal.KeyRight,
	tcell.KeyHome:           terminal.KeyHome,
	tcell.KeyEnd:            terminal.KeyEnd,
	tcell.KeyPgUp:           terminal.KeyPageUp,
	tcell.KeyPgDn:           terminal.KeyPageDown,
	tcell.KeyDelete:         terminal.KeyDelete,
	tcell.KeyBackspace:      terminal.KeyBackspace,
	tcell.KeyBackspace2:     terminal.KeyBackspace,
	tcell.KeyTab:            terminal.KeyTab,
	tcell.KeyEnter:          terminal.KeyEnter,
	tcell.KeyCtrlJ:          terminal.KeyEnter,
	tcell.KeyEscape:         terminal.KeyEscape,
	tcell.KeyCtrlSpace:      terminal.KeyCtrlSpace,
	tcell.KeyCtrlBackslash:  terminal.KeyCtrlBackslash,
	tcell.KeyCtrlRightSq:    terminal.KeyCtrlBracketRight,
	tcell.KeyCtrlCarat:      terminal.KeyCtrlCaret,
	tcell.KeyCtrlUnderscore: terminal.KeyCtrlUnderscore,
	tcell.KeyF1:             terminal.KeyF1,
	tcell.KeyF2:             terminal.KeyF2,
	tcell.KeyF3:             terminal.KeyF3,
	tcell.KeyF4:             terminal.KeyF4,
	tcell.KeyF5:             terminal.KeyF5,
	tcell.KeyF6:             terminal.KeyF6,
	tcell.KeyF7:             terminal.KeyF7,
	tcell.KeyF8:             terminal.KeyF8,
	tcell.KeyF9:             terminal.KeyF9,
	tcell.KeyF10:            terminal.KeyF10,
}

// arrowKeys keep a Ctrl modifier; everything else in tcellKeys drops modifiers
var arrowKeys = map[terminal.Key]bool{
	terminal.KeyUp:    true,
	terminal.KeyDown:  true,
	terminal.KeyLeft:  true,
	terminal.KeyRight: true,
}

// TranslateKey converts a tcell key event into the decoder's event vocabulary
// so both backends drive the engine identically
func TranslateKey(k tcell.Key, r rune, mod tcell.ModMask) terminal.Event {
	if k == tcell.KeyRune {
		switch {
		case mod&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z':
			return ctrlLetter(int(r - 'a'))
		case mod&tcell.ModCtrl != 0 && r >= 'A' && r <= 'Z':
			return ctrlLetter(int(r - 'A'))
		case mod&tcell.ModAlt != 0 && r >= 'a' && r <= 'z':
			return terminal.Event{Key: terminal.KeyRune, Rune: r, Modifiers: terminal.ModAlt}
		case mod&(tcell.ModAlt|tcell.ModCtrl) != 0:
			return terminal.Event{Key: terminal.KeyEscape}
		}
		return terminal.Event{Key: terminal.KeyRune, Rune: r}
	}

	if tk, ok := tcellKeys[k]; ok {
		if arrowKeys[tk] && mod&tcell.ModCtrl != 0 {
			return terminal.Event{Key: tk, Modifiers: terminal.ModCtrl}
		}
		if arrowKeys[tk] && mod != tcell.ModNone {
			// Shift/Alt arrows have no binding in the decoder either
			return terminal.Event{Key: terminal.KeyEscape}
		}
		return terminal.Event{Key: tk}
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return ctrlLetter(int(k - tcell.KeyCtrlA))
	}

	return terminal.Event{Key: terminal.KeyEscape}
}

// ctrlLetter returns the event for Ctrl plus the letter at offset from 'a',
// folding the ASCII aliases the same way the byte decoder does
func ctrlLetter(offset int) terminal.Event {
	switch terminal.KeyCtrlA + terminal.Key(offset) {
	case terminal.KeyCtrlH:
		return terminal.Event{Key: terminal.KeyBackspace}
	case terminal.KeyCtrlI:
		return terminal.Event{Key: terminal.KeyTab}
	case terminal.KeyCtrlJ, terminal.KeyCtrlM:
		return terminal.Event{Key: terminal.KeyEnter}
	}
	return terminal.Event{Key: terminal.KeyCtrlA + terminal.Key(offset)}
}
