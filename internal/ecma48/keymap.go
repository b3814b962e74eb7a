package ecma48

import (
	"strconv"

	"github.com/go-termkit/termkit/internal/termio"
)

// xtermModifier encodes the xterm modifyOtherKeys modifier parameter:
// 1 is the "no modifier" baseline, with shift/alt/ctrl adding 1/2/4.
func xtermModifier(k termio.Key) int {
	mod := 1
	if k.Shift {
		mod += 1
	}
	if k.Alt {
		mod += 2
	}
	if k.Ctrl {
		mod += 4
	}
	return mod
}

// fKeyTilde is the CSI ... ~ tilde parameter for each of F5..F12 (F1..F4
// use fKeySS3 below). Each named key maps to its own entry: earlier
// revisions of this table folded every modifier variant of a function key
// onto the same byte sequence as the unmodified key, which made
// Shift/Alt/Ctrl-F5..F12 indistinguishable from plain F5..F12 to the
// child process; every variant below is addressed independently through
// xtermModifier instead.
var fKeyTilde = map[termio.KeyCode]int{
	termio.KeyF5:  15,
	termio.KeyF6:  17,
	termio.KeyF7:  18,
	termio.KeyF8:  19,
	termio.KeyF9:  20,
	termio.KeyF10: 21,
	termio.KeyF11: 23,
	termio.KeyF12: 24,
}

var fKeySS3 = map[termio.KeyCode]byte{
	termio.KeyF1: 'P',
	termio.KeyF2: 'Q',
	termio.KeyF3: 'R',
	termio.KeyF4: 'S',
}

var arrowFinal = map[termio.KeyCode]byte{
	termio.KeyUp:    'A',
	termio.KeyDown:  'B',
	termio.KeyRight: 'C',
	termio.KeyLeft:  'D',
	termio.KeyHome:  'H',
	termio.KeyEnd:   'F',
}

// Keypress maps a structured key event to the byte string a real terminal
// would send the child process, respecting the emulator's ArrowKeyMode and
// vt52Mode.
func (e *Emulator) Keypress(k termio.Key) []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.keypressInternal(k)
}

func (e *Emulator) keypressInternal(k termio.Key) []byte {
	if k.Code == termio.KeyBackspace {
		return []byte{0x7F}
	}

	if final, ok := arrowFinal[k.Code]; ok {
		return e.encodeArrow(k, final)
	}

	if final, ok := fKeySS3[k.Code]; ok {
		return e.encodeF1ToF4(k, final)
	}

	if tilde, ok := fKeyTilde[k.Code]; ok {
		return e.encodeTildeKey(k, tilde)
	}

	switch k.Code {
	case termio.KeyPgUp:
		return e.encodeTildeKey(k, 5)
	case termio.KeyPgDn:
		return e.encodeTildeKey(k, 6)
	case termio.KeyIns:
		return e.encodeTildeKey(k, 2)
	case termio.KeyDel:
		return e.encodeTildeKey(k, 3)
	case termio.KeyEnter:
		return []byte{0x0D}
	case termio.KeyTab:
		return []byte{0x09}
	case termio.KeyBTab:
		return []byte("\x1b[Z")
	case termio.KeyEsc:
		return []byte{0x1B}
	}

	return e.encodePlainRune(k)
}

func (e *Emulator) encodeArrow(k termio.Key, final byte) []byte {
	if k.Shift || k.Alt || k.Ctrl {
		return []byte("\x1b[1;" + strconv.Itoa(xtermModifier(k)) + string(final))
	}
	switch e.arrowKeyMode {
	case ArrowKeyVT52:
		return []byte("\x1b" + string(final))
	case ArrowKeyVT100:
		return []byte("\x1bO" + string(final))
	default:
		return []byte("\x1b[" + string(final))
	}
}

func (e *Emulator) encodeF1ToF4(k termio.Key, final byte) []byte {
	if k.Shift || k.Alt || k.Ctrl {
		return []byte("\x1b[1;" + strconv.Itoa(xtermModifier(k)) + string(final))
	}
	if e.vt52Mode {
		return []byte("\x1b" + string(final))
	}
	return []byte("\x1bO" + string(final))
}

func (e *Emulator) encodeTildeKey(k termio.Key, code int) []byte {
	if k.Shift || k.Alt || k.Ctrl {
		return []byte("\x1b[" + strconv.Itoa(code) + ";" + strconv.Itoa(xtermModifier(k)) + "~")
	}
	return []byte("\x1b[" + strconv.Itoa(code) + "~")
}

func (e *Emulator) encodePlainRune(k termio.Key) []byte {
	ch := k.Ch
	if ch == 0 {
		return nil
	}
	if k.Ctrl {
		return []byte{byte(ch) - 0x40}
	}
	if k.Alt {
		return append([]byte{0x1B}, []byte(string(ch))...)
	}
	return []byte(string(ch))
}
