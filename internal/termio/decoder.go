package termio

import (
	"strconv"
	"strings"
	"time"
)

type decoderState int

const (
	stateGround decoderState = iota
	stateEscape
	stateEscapeIntermediate
	stateCSIEntry
	stateCSIParam
	stateMouse
)

// bareEscTimeout is the idle window after a lone ESC before it is
// synthesized as KeyEsc, per spec.
const bareEscTimeout = 250 * time.Millisecond

// Decoder turns a stream of UTF-8 code points into keyboard and xterm
// mouse (1005) InputEvents. It holds no I/O of its own; callers feed it one
// rune at a time as it is read from the controlling terminal.
type Decoder struct {
	state decoderState

	paramBuf strings.Builder
	escAt    time.Time

	mouseBuf   [3]rune
	mouseCount int
	trackedBtn MouseButton
}

// NewDecoder returns a decoder starting in GROUND.
func NewDecoder() *Decoder {
	return &Decoder{state: stateGround}
}

// Feed processes one code point and returns zero or more events.
func (d *Decoder) Feed(r rune, now time.Time) []InputEvent {
	switch d.state {
	case stateGround:
		return d.feedGround(r, now)
	case stateEscape:
		return d.feedEscape(r, now)
	case stateEscapeIntermediate:
		return d.feedEscapeIntermediate(r)
	case stateCSIEntry:
		return d.feedCSIEntry(r)
	case stateCSIParam:
		return d.feedCSIParam(r)
	case stateMouse:
		return d.feedMouse(r)
	}
	return nil
}

// CheckEscTimeout is called by the main loop when no new input has arrived.
// If the decoder has been sitting in ESCAPE for more than bareEscTimeout it
// synthesizes a KeyEsc and returns to GROUND.
func (d *Decoder) CheckEscTimeout(now time.Time) []InputEvent {
	if d.state != stateEscape {
		return nil
	}
	if now.Sub(d.escAt) <= bareEscTimeout {
		return nil
	}
	d.state = stateGround
	return []InputEvent{keypressEvent(Key{Code: KeyEsc})}
}

func keypressEvent(k Key) InputEvent {
	return InputEvent{Type: EventKeypress, Key: k}
}

func (d *Decoder) feedGround(r rune, now time.Time) []InputEvent {
	switch {
	case r == 0x1B:
		d.state = stateEscape
		d.escAt = now
		return nil
	case r == 0x0D:
		return []InputEvent{keypressEvent(Key{Code: KeyEnter})}
	case r == 0x09:
		return []InputEvent{keypressEvent(Key{Code: KeyTab})}
	case r == 0x7F:
		return []InputEvent{keypressEvent(Key{Code: KeyBackspace})}
	case r >= 0x00 && r <= 0x1F:
		return []InputEvent{keypressEvent(Key{Ch: r + 0x40, Ctrl: true})}
	case r >= 0x20:
		return []InputEvent{keypressEvent(Key{Ch: r})}
	}
	return nil
}

func (d *Decoder) feedEscape(r rune, now time.Time) []InputEvent {
	switch {
	case r == 'O':
		d.state = stateEscapeIntermediate
		return nil
	case r == '[':
		d.state = stateCSIEntry
		d.paramBuf.Reset()
		return nil
	case r <= 0x1F:
		d.state = stateGround
		k := controlKey(r)
		k.Alt = true
		return []InputEvent{keypressEvent(k)}
	default:
		d.state = stateGround
		return []InputEvent{keypressEvent(Key{Ch: r, Alt: true})}
	}
}

func controlKey(r rune) Key {
	switch r {
	case 0x0D:
		return Key{Code: KeyEnter}
	case 0x09:
		return Key{Code: KeyTab}
	default:
		return Key{Ch: r + 0x40, Ctrl: true}
	}
}

func (d *Decoder) feedEscapeIntermediate(r rune) []InputEvent {
	d.state = stateGround
	switch r {
	case 'P':
		return []InputEvent{keypressEvent(Key{Code: KeyF1})}
	case 'Q':
		return []InputEvent{keypressEvent(Key{Code: KeyF2})}
	case 'R':
		return []InputEvent{keypressEvent(Key{Code: KeyF3})}
	case 'S':
		return []InputEvent{keypressEvent(Key{Code: KeyF4})}
	}
	return nil
}

func (d *Decoder) feedCSIEntry(r rune) []InputEvent {
	if isParamByte(r) {
		d.paramBuf.WriteRune(r)
		d.state = stateCSIParam
		return nil
	}
	d.state = stateGround
	switch r {
	case 'A':
		return []InputEvent{keypressEvent(Key{Code: KeyUp})}
	case 'B':
		return []InputEvent{keypressEvent(Key{Code: KeyDown})}
	case 'C':
		return []InputEvent{keypressEvent(Key{Code: KeyRight})}
	case 'D':
		return []InputEvent{keypressEvent(Key{Code: KeyLeft})}
	case 'H':
		return []InputEvent{keypressEvent(Key{Code: KeyHome})}
	case 'F':
		return []InputEvent{keypressEvent(Key{Code: KeyEnd})}
	case 'Z':
		return []InputEvent{keypressEvent(Key{Code: KeyBTab})}
	case 'M':
		d.state = stateMouse
		d.mouseCount = 0
		return nil
	}
	return nil
}

func isParamByte(r rune) bool {
	return (r >= '0' && r <= '9') || r == ';'
}

func (d *Decoder) feedCSIParam(r rune) []InputEvent {
	if isParamByte(r) {
		d.paramBuf.WriteRune(r)
		return nil
	}
	d.state = stateGround
	if r == '~' {
		return d.resolveTilde()
	}
	return nil
}

func (d *Decoder) resolveTilde() []InputEvent {
	params := parseParams(d.paramBuf.String())
	d.paramBuf.Reset()
	if len(params) == 0 {
		return nil
	}
	k := Key{}
	switch params[0] {
	case 1:
		k.Code = KeyHome
	case 2:
		k.Code = KeyIns
	case 3:
		k.Code = KeyDel
	case 4:
		k.Code = KeyEnd
	case 5:
		k.Code = KeyPgUp
	case 6:
		k.Code = KeyPgDn
	case 15:
		k.Code = KeyF5
	case 17:
		k.Code = KeyF6
	case 18:
		k.Code = KeyF7
	case 19:
		k.Code = KeyF8
	case 20:
		k.Code = KeyF9
	case 21:
		k.Code = KeyF10
	case 23:
		k.Code = KeyF11
	case 24:
		k.Code = KeyF12
	default:
		return nil
	}
	if len(params) > 1 {
		switch params[1] {
		case 2:
			k.Shift = true
		case 3:
			k.Alt = true
		case 5:
			k.Ctrl = true
		}
	}
	return []InputEvent{keypressEvent(k)}
}

func parseParams(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		out = append(out, n)
	}
	return out
}

func (d *Decoder) feedMouse(r rune) []InputEvent {
	d.mouseBuf[d.mouseCount] = r
	d.mouseCount++
	if d.mouseCount < 3 {
		return nil
	}
	d.state = stateGround

	buttonCode := int(d.mouseBuf[0]) - 32
	col := int(d.mouseBuf[1]) - 33
	row := int(d.mouseBuf[2]) - 33

	return d.decodeMouse(buttonCode, col, row)
}

// decodeMouse implements the xterm 1000-class button byte semantics: the
// low two bits name the button or release, bit 5 (32) marks a drag, and
// 64/65 report the wheel. Sticky tracked-button state disambiguates a
// release from motion.
func (d *Decoder) decodeMouse(buttonCode, col, row int) []InputEvent {
	ev := InputEvent{X: col, Y: row, AbsoluteX: col, AbsoluteY: row}

	switch {
	case buttonCode == 0:
		d.trackedBtn = Mouse1
		ev.Type, ev.Button = EventMouseDown, Mouse1
	case buttonCode == 1:
		d.trackedBtn = Mouse2
		ev.Type, ev.Button = EventMouseDown, Mouse2
	case buttonCode == 2:
		d.trackedBtn = Mouse3
		ev.Type, ev.Button = EventMouseDown, Mouse3
	case buttonCode == 3:
		if d.trackedBtn == MouseNone {
			ev.Type, ev.Button = EventMouseMotion, MouseNone
		} else {
			ev.Type, ev.Button = EventMouseUp, d.trackedBtn
			d.trackedBtn = MouseNone
		}
	case buttonCode == 32:
		ev.Type, ev.Button = EventMouseMotion, Mouse1
	case buttonCode == 33:
		ev.Type, ev.Button = EventMouseMotion, Mouse2
	case buttonCode == 34:
		ev.Type, ev.Button = EventMouseMotion, Mouse3
	case buttonCode == 64:
		ev.Type, ev.Button = EventMouseDown, MouseWheelUp
	case buttonCode == 65:
		ev.Type, ev.Button = EventMouseDown, MouseWheelDown
	default:
		ev.Type, ev.Button = EventMouseMotion, MouseNone
	}

	return []InputEvent{ev}
}
