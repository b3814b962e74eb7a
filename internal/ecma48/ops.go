package ecma48

import "github.com/go-termkit/termkit/internal/cell"

// Goto moves the cursor to the given zero-based (row, col), honoring
// originMode: when set, row is relative to the current scroll region top.
func (e *Emulator) Goto(row, col int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gotoInternal(row, col, true)
}

func (e *Emulator) gotoInternal(row, col int, honorScrollRegion bool) {
	if e.originMode {
		row += e.region.top
	}
	if honorScrollRegion {
		if row < e.region.top {
			row = e.region.top
		}
		if row > e.region.bottom {
			row = e.region.bottom
		}
	} else {
		if row < 0 {
			row = 0
		}
		if row > e.height-1 {
			row = e.height - 1
		}
	}
	if col < 0 {
		col = 0
	}
	if col > e.width-1 {
		col = e.width - 1
	}
	e.cur.y, e.cur.x = row, col
	e.wrapPending = false
}

// MoveUp moves the cursor up n rows, optionally honoring the scroll region.
func (e *Emulator) MoveUp(n int, honorScrollRegion bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.moveUpInternal(n, honorScrollRegion)
}

func (e *Emulator) moveUpInternal(n int, honorScrollRegion bool) {
	if n <= 0 {
		return
	}
	limit := 0
	if honorScrollRegion && e.cur.y >= e.region.top {
		limit = e.region.top
	}
	target := e.cur.y - n
	if target < limit {
		target = limit
	}
	e.cur.y = target
	e.wrapPending = false
}

// MoveDown moves the cursor down n rows, optionally honoring the scroll region.
func (e *Emulator) MoveDown(n int, honorScrollRegion bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.moveDownInternal(n, honorScrollRegion)
}

func (e *Emulator) moveDownInternal(n int, honorScrollRegion bool) {
	if n <= 0 {
		return
	}
	limit := e.height - 1
	if honorScrollRegion && e.cur.y <= e.region.bottom {
		limit = e.region.bottom
	}
	target := e.cur.y + n
	if target > limit {
		target = limit
	}
	e.cur.y = target
	e.wrapPending = false
}

// MoveLeft moves the cursor left n columns.
func (e *Emulator) MoveLeft(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.moveLeftInternal(n)
}

func (e *Emulator) moveLeftInternal(n int) {
	if n <= 0 {
		return
	}
	e.cur.x -= n
	if e.cur.x < 0 {
		e.cur.x = 0
	}
	e.wrapPending = false
}

// MoveRight moves the cursor right n columns, clamped at the right margin.
func (e *Emulator) MoveRight(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.moveRightInternal(n)
}

func (e *Emulator) moveRightInternal(n int) {
	if n <= 0 {
		return
	}
	margin := e.rightMargin()
	e.cur.x += n
	if e.cur.x > margin {
		e.cur.x = margin
	}
	e.wrapPending = false
}

// LineFeed performs a line feed: advance within the scroll region, or
// scroll the region (or append to scrollback when the region spans the
// whole screen) when already at the bottom.
func (e *Emulator) LineFeed() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lineFeed()
}

func (e *Emulator) lineFeed() {
	if e.cur.y < e.region.bottom {
		e.cur.y++
	} else if e.region.top == 0 && e.region.bottom == e.height-1 {
		e.appendScrollback()
	} else {
		e.scrollRegionUp()
	}
	if e.newLineMode {
		e.cur.x = 0
	}
	e.wrapPending = false
}

// appendScrollback moves the top display line into the scrollback ring
// (capped at scrollbackLimit, 0 meaning unbounded) and appends a fresh
// blank line stamped with the current reverse-video mode.
func (e *Emulator) appendScrollback() {
	e.scrollback = append(e.scrollback, e.display[0])
	if e.scrollbackLimit > 0 && len(e.scrollback) > e.scrollbackLimit {
		e.scrollback = e.scrollback[len(e.scrollback)-e.scrollbackLimit:]
	}
	copy(e.display, e.display[1:])
	e.display[e.height-1] = cell.NewDisplayLine(e.reverseVideo)
}

// scrollRegionUp scrolls only the scroll region up by one line; lines
// outside the region are not moved.
func (e *Emulator) scrollRegionUp() {
	for y := e.region.top; y < e.region.bottom; y++ {
		e.display[y] = e.display[y+1]
	}
	e.display[e.region.bottom] = cell.NewDisplayLine(e.reverseVideo)
}

// scrollRegionDown scrolls only the scroll region down by one line.
func (e *Emulator) scrollRegionDown() {
	for y := e.region.bottom; y > e.region.top; y-- {
		e.display[y] = e.display[y-1]
	}
	e.display[e.region.top] = cell.NewDisplayLine(e.reverseVideo)
}

func (e *Emulator) carriageReturn() {
	e.cur.x = 0
	e.wrapPending = false
}

func (e *Emulator) backspace() {
	if e.cur.x > 0 {
		e.cur.x--
	}
	e.wrapPending = false
}

func (e *Emulator) newLine() {
	e.carriageReturn()
	e.lineFeed()
}

func (e *Emulator) indexDown() {
	e.lineFeed()
}

func (e *Emulator) reverseIndex() {
	if e.cur.y > e.region.top {
		e.cur.y--
	} else {
		e.scrollRegionDown()
	}
	e.wrapPending = false
}

func (e *Emulator) horizontalTab() {
	next := e.nextTabStop(e.cur.x)
	if next > e.rightMargin() {
		next = e.rightMargin()
	}
	e.cur.x = next
}

func (e *Emulator) nextTabStop(from int) int {
	for col := from + 1; col < e.width; col++ {
		if e.tabStops[col] {
			return col
		}
	}
	return e.width - 1
}

func (e *Emulator) previousTabStop(from int) int {
	for col := from - 1; col >= 0; col-- {
		if e.tabStops[col] {
			return col
		}
	}
	return 0
}

func (e *Emulator) horizontalTabSet() {
	e.tabStops[e.cur.x] = true
}

func (e *Emulator) clearTab(mode int) {
	switch mode {
	case 0:
		delete(e.tabStops, e.cur.x)
	case 3:
		e.tabStops = make(map[int]bool)
	}
}

// saveState captures origin mode, cursor, charsets, lockshifts, and
// current attributes into the saved SaveableState, per DECSC.
func (e *Emulator) saveState() {
	e.saved = SaveableState{
		OriginMode:  e.originMode,
		Cursor:      e.cur,
		G:           e.g,
		GR:          e.grIndex,
		Attr:        e.attr,
		LockshiftGL: e.glIndex,
		LockshiftGR: e.grIndex,
	}
}

// restoreState restores the fields saveState captured, per DECRC.
func (e *Emulator) restoreState() {
	e.originMode = e.saved.OriginMode
	e.cur = e.saved.Cursor
	e.g = e.saved.G
	e.grIndex = e.saved.GR
	e.attr = e.saved.Attr
	e.glIndex = e.saved.LockshiftGL
	e.wrapPending = false
}

// decaln fills the screen with 'E', the DEC screen-alignment test pattern.
func (e *Emulator) decaln() {
	for y := range e.display {
		for x := 0; x < e.width; x++ {
			e.display[y].Cells[x] = cell.Cell{Ch: 'E', Attr: cell.DefaultAttributes}
		}
	}
}

// fullReset (RIS) restores the emulator to its power-on state.
func (e *Emulator) fullReset() {
	e.originMode = false
	e.insertMode = false
	e.newLineMode = false
	e.reverseVideo = false
	e.col132 = false
	e.vt52Mode = false
	e.attr = cell.DefaultAttributes
	e.cur = cursor{}
	e.region = region{top: 0, bottom: e.height - 1}
	for i := range e.g {
		e.g[i] = CharsetUSASCII
	}
	e.glIndex, e.grIndex, e.singleShift = 0, 0, 0
	e.resetTabStops()
	for y := range e.display {
		e.display[y] = cell.NewDisplayLine(false)
	}
	e.scrollback = nil
}

// Resize changes the emulator's column/row count, preserving existing
// display content in the overlapping region, clamping the cursor to the
// new bounds and resetting the scroll region to the full new height, the
// same clamp-don't-propagate
// behavior spec §7 requires for geometry violations.
func (e *Emulator) Resize(width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	next := make([]cell.DisplayLine, height)
	for y := range next {
		next[y] = cell.NewDisplayLine(e.reverseVideo)
	}
	for y := 0; y < len(e.display) && y < height; y++ {
		next[y] = e.display[y]
	}

	e.width, e.height = width, height
	e.display = next
	e.resetTabStops()

	if e.cur.x >= width {
		e.cur.x = width - 1
	}
	if e.cur.y >= height {
		e.cur.y = height - 1
	}
	e.region = region{top: 0, bottom: height - 1}
}
