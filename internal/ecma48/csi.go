package ecma48

import "github.com/go-termkit/termkit/internal/cell"

// dispatchCSI runs the operation named by the final byte of a completed
// CSI sequence against the accumulated parameters and private markers.
func (e *Emulator) dispatchCSI(final rune) {
	params := e.currentParams()
	private := e.hasPrivateMarker('?')

	switch final {
	case 'A':
		e.moveUpInternal(paramOr(params, 0, 1), true)
	case 'B', 'e':
		e.moveDownInternal(paramOr(params, 0, 1), true)
	case 'C', 'a':
		e.moveRightInternal(paramOr(params, 0, 1))
	case 'D':
		e.moveLeftInternal(paramOr(params, 0, 1))
	case 'E':
		e.moveDownInternal(paramOr(params, 0, 1), true)
		e.cur.x = 0
	case 'F':
		e.moveUpInternal(paramOr(params, 0, 1), true)
		e.cur.x = 0
	case 'G', '`':
		e.gotoInternal(e.cur.y, paramOr(params, 0, 1)-1, false)
	case 'd':
		e.gotoInternal(paramOr(params, 0, 1)-1, e.cur.x, true)
	case 'H', 'f':
		row := paramOr(params, 0, 1) - 1
		col := paramOr(params, 1, 1) - 1
		e.gotoInternal(row, col, true)
	case 'I':
		e.cur.x = e.nextTabStop(e.cur.x)
	case 'Z':
		e.cur.x = e.previousTabStop(e.cur.x)
	case 'J':
		e.eraseInDisplay(paramOr(params, 0, 0))
	case 'K':
		e.eraseInLine(paramOr(params, 0, 0))
	case 'X':
		e.eraseChars(paramOr(params, 0, 1))
	case 'L':
		e.insertLines(paramOr(params, 0, 1))
	case 'M':
		e.deleteLines(paramOr(params, 0, 1))
	case 'P':
		e.deleteChars(paramOr(params, 0, 1))
	case '@':
		e.insertChars(paramOr(params, 0, 1))
	case 'm':
		e.selectGraphicRendition(params)
	case 'r':
		e.setScrollingRegion(paramOr(params, 0, 1), paramOr(params, 1, e.height))
	case 'n':
		e.deviceStatusReport(paramOr(params, 0, 0))
	case 'g':
		e.clearTab(paramOr(params, 0, 0))
	case 'c':
		if !private {
			e.identifyTerminal()
		}
	case 'h':
		e.setMode(params, private)
	case 'l':
		e.resetMode(params, private)
	}

	e.paramBuf = ""
	e.collect = e.collect[:0]
}

// eraseInDisplay implements ED: 0 = cursor to end, 1 = start to cursor,
// 2 = entire display.
func (e *Emulator) eraseInDisplay(mode int) {
	switch mode {
	case 0:
		e.eraseInLine(0)
		for y := e.cur.y + 1; y < e.height; y++ {
			e.display[y] = cell.NewDisplayLine(e.reverseVideo)
		}
	case 1:
		e.eraseInLine(1)
		for y := 0; y < e.cur.y; y++ {
			e.display[y] = cell.NewDisplayLine(e.reverseVideo)
		}
	case 2, 3:
		for y := range e.display {
			e.display[y] = cell.NewDisplayLine(e.reverseVideo)
		}
	}
}

// eraseInLine implements EL: 0 = cursor to end of line, 1 = start to
// cursor, 2 = entire line.
func (e *Emulator) eraseInLine(mode int) {
	if e.cur.y < 0 || e.cur.y >= len(e.display) {
		return
	}
	line := &e.display[e.cur.y]
	blank := cell.Blank
	switch mode {
	case 0:
		for x := e.cur.x; x < e.width; x++ {
			line.Cells[x] = blank
		}
	case 1:
		for x := 0; x <= e.cur.x && x < e.width; x++ {
			line.Cells[x] = blank
		}
	case 2:
		for x := 0; x < e.width; x++ {
			line.Cells[x] = blank
		}
	}
}

// eraseChars implements ECH: blank n cells starting at the cursor,
// without moving it.
func (e *Emulator) eraseChars(n int) {
	if e.cur.y < 0 || e.cur.y >= len(e.display) {
		return
	}
	line := &e.display[e.cur.y]
	for x := e.cur.x; x < e.cur.x+n && x < e.width; x++ {
		line.Cells[x] = cell.Blank
	}
}

// insertChars implements ICH: shift the row right from the cursor,
// inserting n blanks.
func (e *Emulator) insertChars(n int) {
	e.shiftRowRightBy(e.cur.y, e.cur.x, n)
}

// deleteChars implements DCH: shift the row left from the cursor,
// removing n cells.
func (e *Emulator) deleteChars(n int) {
	if e.cur.y < 0 || e.cur.y >= len(e.display) {
		return
	}
	line := &e.display[e.cur.y]
	for i := 0; i < n; i++ {
		for x := e.cur.x; x < e.width-1; x++ {
			line.Cells[x] = line.Cells[x+1]
		}
		line.Cells[e.width-1] = cell.Blank
	}
}

// insertLines implements IL: insert n blank lines at the cursor row
// within the scroll region, pushing later lines down.
func (e *Emulator) insertLines(n int) {
	if e.cur.y < e.region.top || e.cur.y > e.region.bottom {
		return
	}
	for i := 0; i < n; i++ {
		for y := e.region.bottom; y > e.cur.y; y-- {
			e.display[y] = e.display[y-1]
		}
		e.display[e.cur.y] = cell.NewDisplayLine(e.reverseVideo)
	}
}

// deleteLines implements DL: delete n lines at the cursor row within the
// scroll region, pulling later lines up.
func (e *Emulator) deleteLines(n int) {
	if e.cur.y < e.region.top || e.cur.y > e.region.bottom {
		return
	}
	for i := 0; i < n; i++ {
		for y := e.cur.y; y < e.region.bottom; y++ {
			e.display[y] = e.display[y+1]
		}
		e.display[e.region.bottom] = cell.NewDisplayLine(e.reverseVideo)
	}
}

// setScrollingRegion implements DECSTBM: top/bottom are 1-based inclusive.
func (e *Emulator) setScrollingRegion(top, bottom int) {
	if top < 1 {
		top = 1
	}
	if bottom > e.height {
		bottom = e.height
	}
	if top >= bottom {
		top, bottom = 1, e.height
	}
	e.region = region{top: top - 1, bottom: bottom - 1}
	e.gotoInternal(0, 0, false)
}

// selectGraphicRendition implements SGR: an empty parameter list or a
// bare 0 resets to default attributes.
func (e *Emulator) selectGraphicRendition(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	for _, p := range params {
		switch {
		case p == 0:
			e.attr = cell.DefaultAttributes
		case p == 1:
			e.attr.Bold = true
		case p == 5:
			e.attr.Blink = true
		case p == 22:
			e.attr.Bold = false
		case p == 25:
			e.attr.Blink = false
		case p == 7:
			e.attr.Fg, e.attr.Bg = e.attr.Bg, e.attr.Fg
		case p >= 30 && p <= 37:
			e.attr.Fg = cell.Color(p - 30)
		case p == 39:
			e.attr.Fg = cell.DefaultAttributes.Fg
		case p >= 40 && p <= 47:
			e.attr.Bg = cell.Color(p - 40)
		case p == 49:
			e.attr.Bg = cell.DefaultAttributes.Bg
		}
	}
}

func (e *Emulator) setMode(params []int, private bool) {
	e.applyModes(params, private, true)
}

func (e *Emulator) resetMode(params []int, private bool) {
	e.applyModes(params, private, false)
}

func (e *Emulator) applyModes(params []int, private bool, set bool) {
	for _, p := range params {
		if private {
			switch p {
			case 1:
				if set {
					e.arrowKeyMode = ArrowKeyVT100
				} else {
					e.arrowKeyMode = ArrowKeyANSI
				}
			case 3:
				e.col132 = set
			case 5:
				e.reverseVideo = set
			case 6:
				e.originMode = set
				e.gotoInternal(0, 0, true)
			}
			continue
		}
		switch p {
		case 4:
			e.insertMode = set
		case 20:
			e.newLineMode = set
		}
	}
}
