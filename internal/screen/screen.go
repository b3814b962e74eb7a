// Package screen implements the double-buffered cell grid and minimal-diff
// flush described in the core specification: logical writes accumulate into
// one grid, and Flush emits only the escape sequences needed to bring the
// physical terminal in sync with it.
package screen

import (
	"strings"

	"github.com/go-termkit/termkit/internal/cell"
	"github.com/unilibs/uniwidth"
)

// BorderStyle selects the box-drawing glyphs used by DrawBox.
type BorderStyle int

const (
	BorderSingle BorderStyle = iota
	BorderDouble
	BorderMixed
)

// Screen is a double-buffered grid of cells with a drawing offset and a
// clip rectangle. All mutating calls are relative to (offsetX, offsetY) and
// clipped against [0, clipX) x [0, clipY) before the offset is applied.
type Screen struct {
	width, height int

	logical  [][]cell.Cell // [x][y]
	physical [][]cell.Cell // [x][y]

	dirty         bool
	reallyCleared bool

	offsetX, offsetY int
	clipX, clipY     int
}

// New allocates a screen of the given dimensions, reset to blank cells.
func New(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the current grid width.
func (s *Screen) Width() int { return s.width }

// Height returns the current grid height.
func (s *Screen) Height() int { return s.height }

// Dirty reports whether any logical cell has changed since the last flush.
func (s *Screen) Dirty() bool { return s.dirty }

// SetOffset sets the drawing offset applied to all put/draw calls.
func (s *Screen) SetOffset(x, y int) { s.offsetX, s.offsetY = x, y }

// Offset returns the current drawing offset.
func (s *Screen) Offset() (int, int) { return s.offsetX, s.offsetY }

// SetClip sets the clip rectangle (exclusive upper bounds), evaluated in
// pre-offset coordinates.
func (s *Screen) SetClip(x, y int) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	s.clipX, s.clipY = x, y
}

// Clip returns the current clip rectangle.
func (s *Screen) Clip() (int, int) { return s.clipX, s.clipY }

func newGrid(width, height int) [][]cell.Cell {
	g := make([][]cell.Cell, width)
	for x := range g {
		g[x] = make([]cell.Cell, height)
		for y := range g[x] {
			g[x][y] = cell.Blank
		}
	}
	return g
}

// Resize reallocates both grids to blank cells, resets the clip rectangle
// to the new dimensions, and forces a full redraw on the next flush.
func (s *Screen) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s.width, s.height = width, height
	s.logical = newGrid(width, height)
	s.physical = newGrid(width, height)
	s.clipX, s.clipY = width, height
	s.reallyCleared = true
	s.dirty = true
}

// Reset blanks the logical grid and clears the offset and clip rectangle
// back to the full screen, without forcing a physical redraw.
func (s *Screen) Reset() {
	for x := range s.logical {
		for y := range s.logical[x] {
			s.logical[x][y] = cell.Blank
		}
	}
	s.offsetX, s.offsetY = 0, 0
	s.clipX, s.clipY = s.width, s.height
	s.dirty = true
}

// inClip reports whether pre-offset (x, y) lies within [0, clipX) x [0, clipY).
func (s *Screen) inClip(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.clipX && y < s.clipY
}

// PutChar writes ch at (x, y) with the given attributes, if the pre-offset
// coordinate is within the clip rectangle and the post-offset coordinate
// lies on the grid. Any modification marks the screen dirty.
func (s *Screen) PutChar(x, y int, ch rune, attr cell.Attributes) {
	if !s.inClip(x, y) {
		return
	}
	ax, ay := x+s.offsetX, y+s.offsetY
	if ax < 0 || ay < 0 || ax >= s.width || ay >= s.height {
		return
	}
	s.logical[ax][ay] = cell.Cell{Ch: ch, Attr: attr}
	s.dirty = true
}

// PutCharDefault writes ch with DefaultAttributes.
func (s *Screen) PutCharDefault(x, y int, ch rune) {
	s.PutChar(x, y, ch, cell.DefaultAttributes)
}

// PutStr writes each rune of str starting at (x, y), advancing by each
// glyph's display width, truncating at the grid width.
func (s *Screen) PutStr(x, y int, str string, attr cell.Attributes) {
	col := x
	for _, r := range str {
		if col >= s.clipX {
			break
		}
		s.PutChar(col, y, r, attr)
		w := uniwidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		col += w
	}
}

// PutAttr modifies only the attributes of the cell at (x, y), leaving the
// glyph intact.
func (s *Screen) PutAttr(x, y int, attr cell.Attributes) {
	if !s.inClip(x, y) {
		return
	}
	ax, ay := x+s.offsetX, y+s.offsetY
	if ax < 0 || ay < 0 || ax >= s.width || ay >= s.height {
		return
	}
	s.logical[ax][ay].Attr = attr
	s.dirty = true
}

// HLine draws n copies of ch horizontally starting at (x, y).
func (s *Screen) HLine(x, y, n int, ch rune, attr cell.Attributes) {
	for i := 0; i < n; i++ {
		s.PutChar(x+i, y, ch, attr)
	}
}

// VLine draws n copies of ch vertically starting at (x, y).
func (s *Screen) VLine(x, y, n int, ch rune, attr cell.Attributes) {
	for i := 0; i < n; i++ {
		s.PutChar(x, y+i, ch, attr)
	}
}

type boxGlyphs struct {
	tl, tr, bl, br, h, v rune
}

var boxGlyphsFor = map[BorderStyle]boxGlyphs{
	BorderSingle: {'┌', '┐', '└', '┘', '─', '│'},
	BorderDouble: {'╔', '╗', '╚', '╝', '═', '║'},
	BorderMixed:  {'╒', '╕', '╘', '╛', '═', '│'},
}

// DrawBox draws a border of the given style around the rectangle
// (x, y, w, h). If fill is true the interior is cleared to attr first. If
// shadow is true a one-cell shadow is drawn below and to the right of the
// box; the shadow honors the drawing offset but deliberately ignores the
// clip rectangle, per spec.
func (s *Screen) DrawBox(x, y, w, h int, style BorderStyle, attr cell.Attributes, fill, shadow bool) {
	if w < 2 || h < 2 {
		return
	}
	g := boxGlyphsFor[style]

	if fill {
		for row := y + 1; row < y+h-1; row++ {
			for col := x + 1; col < x+w-1; col++ {
				s.PutChar(col, row, ' ', attr)
			}
		}
	}

	s.PutChar(x, y, g.tl, attr)
	s.PutChar(x+w-1, y, g.tr, attr)
	s.PutChar(x, y+h-1, g.bl, attr)
	s.PutChar(x+w-1, y+h-1, g.br, attr)
	s.HLine(x+1, y, w-2, g.h, attr)
	s.HLine(x+1, y+h-1, w-2, g.h, attr)
	s.VLine(x, y+1, h-2, g.v, attr)
	s.VLine(x+w-1, y+1, h-2, g.v, attr)

	if shadow {
		shadowAttr := cell.Attributes{Fg: cell.Black, Bg: cell.Black}
		for row := y + 1; row <= y+h; row++ {
			s.putUnclipped(x+w, row, ' ', shadowAttr)
		}
		for col := x + 1; col <= x+w; col++ {
			s.putUnclipped(col, y+h, ' ', shadowAttr)
		}
	}
}

// putUnclipped writes a cell honoring the offset but not the clip
// rectangle, used by the box shadow per spec.
func (s *Screen) putUnclipped(x, y int, ch rune, attr cell.Attributes) {
	ax, ay := x+s.offsetX, y+s.offsetY
	if ax < 0 || ay < 0 || ax >= s.width || ay >= s.height {
		return
	}
	s.logical[ax][ay] = cell.Cell{Ch: ch, Attr: attr}
	s.dirty = true
}

// Flush computes the minimal escape-sequence delta between the logical and
// physical grids, writes the physical grid to match, and clears the dirty
// and reallyCleared flags.
func (s *Screen) Flush() []byte {
	var out strings.Builder

	if s.reallyCleared {
		out.WriteString(sgrNormal())
		out.WriteString(fullClear())
	}

	var lastAttr *cell.Attributes
	emittedAny := false
	normal := cell.DefaultAttributes

	for y := 0; y < s.height; y++ {
		textBegin, textEnd := s.rowTextBounds(y)

		if textBegin < 0 {
			before := out.Len()
			s.flushBlankRow(y, &out)
			if out.Len() != before && emittedAny {
				lastAttr = &normal
			}
			continue
		}

		// cursorAt tracks the column the physical cursor sits at after the
		// last write in this row; -1 means the next write (if any) is not
		// contiguous with a prior one and needs a fresh CUP.
		cursorAt := -1

		rowDone := false
		for x := 0; x < s.width && !rowDone; x++ {
			changed := s.reallyCleared || !s.logical[x][y].Equal(s.physical[x][y])
			if !changed {
				cursorAt = -1
				continue
			}

			if cursorAt != x {
				out.WriteString(cup(y, x))
				if x == textBegin && x > 0 {
					out.WriteString(sgrNormal())
					out.WriteString(clearToBOL())
					if emittedAny {
						lastAttr = &normal
					}
				}
			}

			if textEnd >= 0 && textEnd < s.width && x == textEnd {
				out.WriteString(sgrNormal())
				out.WriteString(clearToEOL())
				if emittedAny {
					lastAttr = &normal
				}
				for cx := x; cx < s.width; cx++ {
					s.physical[cx][y] = s.logical[cx][y]
				}
				rowDone = true
				break
			}

			c := s.logical[x][y]

			if !emittedAny {
				out.WriteString(sgrNormal())
				def := cell.DefaultAttributes
				lastAttr = &def
				emittedAny = true
			}

			out.WriteString(sgrDelta(*lastAttr, c.Attr))
			lastAttr = &c.Attr

			out.WriteRune(glyphOrSpace(c.Ch))

			s.physical[x][y] = c
			cursorAt = x + 1
		}
	}

	s.dirty = false
	s.reallyCleared = false

	return []byte(out.String())
}

// flushBlankRow handles a row whose logical content is entirely blank
// (rowTextBounds returned textBegin < 0): rather than emitting a CUP
// followed by a space for every stale cell, it emits at most one
// cursor-position-plus-clear-to-end-of-line sequence for the whole row, or
// nothing at all when reallyCleared already guarantees the row is blank on
// the physical side (the full-screen clear prepended to the flush covers
// it).
func (s *Screen) flushBlankRow(y int, out *strings.Builder) {
	if s.reallyCleared {
		for x := 0; x < s.width; x++ {
			s.physical[x][y] = s.logical[x][y]
		}
		return
	}

	anyChanged := false
	for x := 0; x < s.width; x++ {
		if !s.logical[x][y].Equal(s.physical[x][y]) {
			anyChanged = true
			break
		}
	}
	if !anyChanged {
		return
	}

	out.WriteString(cup(y, 0))
	out.WriteString(sgrNormal())
	out.WriteString(clearToEOL())

	for x := 0; x < s.width; x++ {
		s.physical[x][y] = s.logical[x][y]
	}
}

// rowTextBounds returns the index of the first and one-past-last non-blank
// cell in row y of the logical grid, or (-1, -1) if the row is entirely
// blank.
func (s *Screen) rowTextBounds(y int) (begin, end int) {
	begin = -1
	for x := 0; x < s.width; x++ {
		if s.logical[x][y].Ch != ' ' {
			begin = x
			break
		}
	}
	if begin < 0 {
		return -1, -1
	}
	end = s.width
	for x := s.width - 1; x >= begin; x-- {
		if s.logical[x][y].Ch != ' ' {
			end = x + 1
			break
		}
	}
	return begin, end
}

func glyphOrSpace(r rune) rune {
	if r == 0 {
		return ' '
	}
	return r
}
