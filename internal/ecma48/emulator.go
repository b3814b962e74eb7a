package ecma48

import (
	"sync"

	"github.com/go-termkit/termkit/internal/cell"
)

const defaultScrollbackLimit = 2000

// Option configures an Emulator at construction time.
type Option func(*Emulator)

// WithScrollbackLimit bounds the scrollback ring to n lines; 0 means
// unbounded. The default is 2000.
func WithScrollbackLimit(n int) Option {
	return func(e *Emulator) { e.scrollbackLimit = n }
}

// WithWriteRemote sets the callback used to deliver replies (device-ID
// and DSR reports) back to the hosting widget.
func WithWriteRemote(fn func([]byte)) Option {
	return func(e *Emulator) { e.writeRemote = fn }
}

// WithDevice overrides the default VT102 device type.
func WithDevice(d DeviceType) Option {
	return func(e *Emulator) { e.device = d }
}

// Emulator parses a child process's output byte stream into display-line
// mutations and answers replies (device-ID, DSR) through writeRemote.
type Emulator struct {
	mu sync.Mutex

	device DeviceType
	width  int
	height int

	display    []cell.DisplayLine
	scrollback []cell.DisplayLine
	scrollbackLimit int

	region region
	cur    cursor

	wrapPending      bool
	insertMode       bool
	vt52Mode         bool
	eightBitControls bool
	reverseVideo     bool
	col132           bool
	newLineMode      bool
	originMode       bool
	arrowKeyMode     ArrowKeyMode
	keypadMode       KeypadMode
	tabStops         map[int]bool

	attr cell.Attributes

	g       [4]CharacterSet
	glIndex int
	grIndex int
	singleShift int

	saved SaveableState

	state    parserState
	params   []int
	paramBuf string
	collect  []rune

	writeRemote func([]byte)
}

// New returns an emulator sized width x height, defaulting to VT102.
func New(width, height int, opts ...Option) *Emulator {
	e := &Emulator{
		device:          VT102,
		width:           width,
		height:          height,
		scrollbackLimit: defaultScrollbackLimit,
		attr:            cell.DefaultAttributes,
		arrowKeyMode:    ArrowKeyANSI,
	}
	for i := range e.g {
		e.g[i] = CharsetUSASCII
	}
	e.region = region{top: 0, bottom: height - 1}
	e.resetTabStops()
	e.display = make([]cell.DisplayLine, height)
	for i := range e.display {
		e.display[i] = cell.NewDisplayLine(e.reverseVideo)
	}
	e.state = stGround

	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Emulator) resetTabStops() {
	e.tabStops = make(map[int]bool)
	for col := 0; col < e.width; col += 8 {
		e.tabStops[col] = true
	}
}

// Width reports the emulator's configured column count.
func (e *Emulator) Width() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.width
}

// Height reports the emulator's configured row count.
func (e *Emulator) Height() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.height
}

// Display returns a snapshot of the current display lines.
func (e *Emulator) Display() []cell.DisplayLine {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]cell.DisplayLine, len(e.display))
	copy(out, e.display)
	return out
}

// Scrollback returns a snapshot of the scrollback ring, oldest first.
func (e *Emulator) Scrollback() []cell.DisplayLine {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]cell.DisplayLine, len(e.scrollback))
	copy(out, e.scrollback)
	return out
}

// CursorPosition returns the zero-based (row, col) of the cursor.
func (e *Emulator) CursorPosition() (row, col int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cur.y, e.cur.x
}

// rightMargin is width-1, halved (minus one) when the line is double-width.
// Double-width lines are a display-line-level flag, read here from the
// cursor's current line.
func (e *Emulator) rightMargin() int {
	if e.cur.y >= 0 && e.cur.y < len(e.display) && e.display[e.cur.y].DoubleWidth {
		return e.width/2 - 1
	}
	return e.width - 1
}

// Consume feeds one code point into the parser state machine.
func (e *Emulator) Consume(r rune) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.consumeLocked(r)
}

// ConsumeBytes decodes and feeds a raw byte slice, masking to 7 bits for
// VT100/VT102 as required.
func (e *Emulator) ConsumeBytes(b []byte) {
	for _, c := range b {
		r := rune(c)
		if e.device == VT100 || e.device == VT102 {
			r &= 0x7F
		}
		e.Consume(r)
	}
}

func (e *Emulator) consumeLocked(r rune) {
	// 0x18, 0x1A, 0x1B, 0x9B force a state change from almost any state.
	switch r {
	case 0x18, 0x1A:
		e.state = stGround
		return
	case 0x1B:
		e.state = stEscape
		e.collect = e.collect[:0]
		return
	case 0x9B:
		e.enterCSI()
		return
	case 0x7F:
		return
	}

	if r >= 0x80 && r <= 0x9F {
		if e.handleC1(r) {
			return
		}
	}

	switch e.state {
	case stGround:
		e.consumeGround(r)
	case stEscape:
		e.consumeEscape(r)
	case stEscapeIntermediate:
		e.consumeEscapeIntermediate(r)
	case stCSIEntry, stCSIParam, stCSIIntermediate, stCSIIgnore:
		e.consumeCSI(r)
	case stDCSEntry, stDCSIntermediate, stDCSParam, stDCSPassthrough, stDCSIgnore:
		e.consumeDCS(r)
	case stOSCString:
		e.consumeOSC(r)
	case stSOSPMAPCString:
		e.consumeSOSPMAPC(r)
	case stVT52DirectCursorAddress:
		e.consumeVT52DirectCursorAddress(r)
	}
}

// handleC1 honors 0x80-0x9F as the equivalent of their ESC <X> two-byte
// forms, gated by s8c1t for VT220. It returns true if the byte was
// consumed as a C1 control.
func (e *Emulator) handleC1(r rune) bool {
	if e.device == VT220 && !e.eightBitControls {
		return false
	}
	if e.device == VT100 || e.device == VT102 {
		return false
	}
	switch r {
	case 0x9B:
		e.enterCSI()
		return true
	case 0x9D:
		e.state = stOSCString
		e.collect = e.collect[:0]
		return true
	case 0x90:
		e.state = stDCSEntry
		e.collect = e.collect[:0]
		return true
	case 0x9C:
		e.state = stGround
		return true
	case 0x8E:
		e.singleShift = 2
		return true
	case 0x8F:
		e.singleShift = 3
		return true
	}
	return false
}

func (e *Emulator) enterCSI() {
	e.state = stCSIEntry
	e.params = e.params[:0]
	e.paramBuf = ""
	e.collect = e.collect[:0]
}

func (e *Emulator) consumeGround(r rune) {
	switch {
	case r == 0x1B:
		e.state = stEscape
	case r == 0x0D:
		e.carriageReturn()
	case r == 0x0A, r == 0x0B, r == 0x0C:
		e.lineFeed()
	case r == 0x08:
		e.backspace()
	case r == 0x09:
		e.horizontalTab()
	case r == 0x07:
		// bell: no visible effect on the display model.
	case r >= 0x20:
		e.printRune(r)
	}
}

func (e *Emulator) consumeEscape(r rune) {
	if e.vt52Mode {
		e.consumeVT52Escape(r)
		return
	}
	switch r {
	case '[':
		e.enterCSI()
	case ']':
		e.state = stOSCString
		e.collect = e.collect[:0]
	case 'P':
		e.state = stDCSEntry
		e.collect = e.collect[:0]
	case 'X', '^', '_':
		e.state = stSOSPMAPCString
	case '(', ')', '*', '+':
		e.collect = append(e.collect[:0], r)
		e.state = stEscapeIntermediate
	case '7':
		e.saveState()
		e.state = stGround
	case '8':
		e.restoreState()
		e.state = stGround
	case 'D':
		e.indexDown()
		e.state = stGround
	case 'M':
		e.reverseIndex()
		e.state = stGround
	case 'E':
		e.newLine()
		e.state = stGround
	case 'H':
		e.horizontalTabSet()
		e.state = stGround
	case 'Z':
		e.identifyTerminal()
		e.state = stGround
	case 'c':
		e.fullReset()
		e.state = stGround
	case 'N':
		e.singleShift = 2
		e.state = stGround
	case 'O':
		e.singleShift = 3
		e.state = stGround
	case '#':
		e.state = stEscapeIntermediate
		e.collect = append(e.collect[:0], '#')
	case ' ':
		e.state = stEscapeIntermediate
		e.collect = append(e.collect[:0], ' ')
	default:
		e.state = stGround
	}
}

// consumeVT52Escape handles the VT52-mode escape set, a flat alternative
// to the ANSI CSI grammar: single-letter cursor motion, ESC Y for direct
// cursor addressing, and ESC Z / ESC < for identify / ANSI-mode entry.
func (e *Emulator) consumeVT52Escape(r rune) {
	switch r {
	case 'A':
		e.moveUpInternal(1, false)
	case 'B':
		e.moveDownInternal(1, false)
	case 'C':
		e.moveRightInternal(1)
	case 'D':
		e.moveLeftInternal(1)
	case 'H':
		e.gotoInternal(0, 0, false)
	case 'I':
		e.reverseIndex()
	case 'J':
		e.eraseInDisplay(0)
	case 'K':
		e.eraseInLine(0)
	case 'Y':
		e.state = stVT52DirectCursorAddress
		e.collect = e.collect[:0]
		return
	case 'Z':
		e.vt52IdentifyInternal()
	case '<':
		e.vt52Mode = false
	case '=':
		e.keypadMode = KeypadApplication
	case '>':
		e.keypadMode = KeypadNumeric
	}
	e.state = stGround
}

func (e *Emulator) consumeEscapeIntermediate(r rune) {
	if len(e.collect) == 1 {
		switch e.collect[0] {
		case '(', ')', '*', '+':
			idx := map[rune]int{'(': 0, ')': 1, '*': 2, '+': 3}[e.collect[0]]
			e.configureCharset(idx, r)
			e.state = stGround
			return
		case '#':
			if r == '8' {
				e.decaln()
			}
			e.state = stGround
			return
		case ' ':
			switch r {
			case 'F':
				e.eightBitControls = false
			case 'G':
				e.eightBitControls = true
			}
			e.state = stGround
			return
		}
	}
	e.state = stGround
}

func (e *Emulator) configureCharset(slot int, designator rune) {
	set := designatorToCharset(designator)
	e.g[slot] = set
}

func designatorToCharset(d rune) CharacterSet {
	switch d {
	case 'A':
		return CharsetUK
	case 'B':
		return CharsetUSASCII
	case '0':
		return CharsetDECLineDrawing
	case '1':
		return CharsetROM
	case '2':
		return CharsetROMSpecial
	case '<':
		return CharsetDECSupplemental
	case '4':
		return CharsetNRCDutch
	case '5', 'C':
		return CharsetNRCFinnish
	case 'R':
		return CharsetNRCFrench
	case 'Q':
		return CharsetNRCFrenchCanadian
	case 'K':
		return CharsetNRCGerman
	case 'Y':
		return CharsetNRCItalian
	case '7', 'H':
		return CharsetNRCSwedish
	default:
		return CharsetUSASCII
	}
}

func (e *Emulator) printRune(r rune) {
	set := e.g[e.glIndex]
	if e.singleShift != 0 {
		set = e.g[e.singleShift]
		e.singleShift = 0
	}
	ch := translate(set, r)

	margin := e.rightMargin()

	if e.cur.x == margin {
		if !e.wrapPending {
			e.wrapPending = true
			if e.insertMode {
				e.shiftRowRightBy(e.cur.y, e.cur.x, 1)
			}
			e.placeRune(e.cur.x, e.cur.y, ch)
			return
		}
		if e.cur.y == e.region.bottom {
			e.lineFeed()
		} else {
			e.cur.y++
		}
		e.cur.x = 0
		e.wrapPending = false
	}

	if e.insertMode {
		e.shiftRowRightBy(e.cur.y, e.cur.x, 1)
	}
	e.placeRune(e.cur.x, e.cur.y, ch)
	e.wrapPending = false
	if e.cur.x < margin {
		e.cur.x++
	}
}

func (e *Emulator) placeRune(x, y int, r rune) {
	if y < 0 || y >= len(e.display) || x < 0 || x >= cell.MaxLine {
		return
	}
	e.display[y].Cells[x] = cell.Cell{Ch: r, Attr: e.attr}
}

// shiftRowRightBy moves the existing content of row y from fromCol
// rightward by n cells, then blanks the n cells starting at fromCol,
// making room for an insertion. Content shifted past the right margin is
// dropped.
func (e *Emulator) shiftRowRightBy(y, fromCol, n int) {
	if y < 0 || y >= len(e.display) || n <= 0 {
		return
	}
	line := &e.display[y]
	for x := e.width - 1; x >= fromCol+n; x-- {
		line.Cells[x] = line.Cells[x-n]
	}
	for x := fromCol; x < fromCol+n && x < e.width; x++ {
		line.Cells[x] = cell.Blank
	}
}
