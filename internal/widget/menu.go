package widget

import (
	"github.com/go-termkit/termkit/internal/cell"
	"github.com/go-termkit/termkit/internal/screen"
	"github.com/go-termkit/termkit/internal/termio"
)

// MenuItem is one selectable entry in a Menu. A zero-value Label marks a
// separator.
type MenuItem struct {
	Label      string
	OnActivate func()
	SubMenu    *Menu
}

// Menu is a dropdown opened from a MenuBar entry.
type Menu struct {
	Items  []MenuItem
	cursor int
	open   bool
}

func (m *Menu) draw(s *screen.Screen, x, y int, style Style) {
	width := 4
	for _, it := range m.Items {
		if l := runeLen(it.Label); l+2 > width {
			width = l + 2
		}
	}
	s.DrawBox(x, y, width, len(m.Items)+2, screen.BorderSingle, style.Border, true, true)
	for i, it := range m.Items {
		attr := style.Body
		if i == m.cursor {
			attr = cell.Attributes{Fg: cell.Black, Bg: cell.White}
		}
		if it.Label == "" {
			s.HLine(x+1, y+1+i, width-2, '─', style.Border)
			continue
		}
		s.PutStr(x+1, y+1+i, it.Label, attr)
	}
}

func (m *Menu) moveCursor(delta int) {
	if len(m.Items) == 0 {
		return
	}
	n := len(m.Items)
	next := m.cursor
	for i := 0; i < n; i++ {
		next = (next + delta + n) % n
		if m.Items[next].Label != "" {
			break
		}
	}
	m.cursor = next
}

func (m *Menu) activate() {
	if m.cursor < 0 || m.cursor >= len(m.Items) {
		return
	}
	if fn := m.Items[m.cursor].OnActivate; fn != nil {
		fn()
	}
}

// MenuBar is the top-of-screen horizontal bar of Menu entries, matching
// the teacher's fixed-geometry top decoration but widget-driven rather
// than hardcoded.
type MenuBar struct {
	Base
	Y       int
	Width   int
	Labels  []string
	Menus   []*Menu
	active  int
	isOpen  bool
	style   Style
}

func NewMenuBar(y, width int) *MenuBar {
	return &MenuBar{Y: y, Width: width}
}

// AddMenu appends a top-level entry with its dropdown.
func (b *MenuBar) AddMenu(label string, menu *Menu) {
	b.Labels = append(b.Labels, label)
	b.Menus = append(b.Menus, menu)
}

func (b *MenuBar) SetStyle(s Style) { b.style = s }

func (b *MenuBar) labelOffsets() []int {
	offsets := make([]int, len(b.Labels))
	x := 1
	for i, l := range b.Labels {
		offsets[i] = x
		x += runeLen(l) + 2
	}
	return offsets
}

func (b *MenuBar) Draw(s *screen.Screen) {
	bar := b.style.Title
	for x := 0; x < b.Width; x++ {
		s.PutChar(x, b.Y, ' ', bar)
	}
	offsets := b.labelOffsets()
	for i, l := range b.Labels {
		attr := bar
		if b.isOpen && i == b.active {
			attr = cell.Attributes{Fg: cell.Black, Bg: cell.White}
		}
		s.PutStr(offsets[i], b.Y, " "+l+" ", attr)
	}
	if b.isOpen && b.active < len(b.Menus) {
		b.Menus[b.active].draw(s, offsets[b.active], b.Y+1, b.style)
	}
}

func (b *MenuBar) OnKey(k termio.Key) bool {
	if !b.isOpen {
		if k.Code == termio.KeyF10 {
			b.isOpen = true
			return true
		}
		return false
	}
	switch k.Code {
	case termio.KeyLeft:
		b.active = (b.active - 1 + len(b.Menus)) % len(b.Menus)
		return true
	case termio.KeyRight:
		b.active = (b.active + 1) % len(b.Menus)
		return true
	case termio.KeyUp:
		b.Menus[b.active].moveCursor(-1)
		return true
	case termio.KeyDown:
		b.Menus[b.active].moveCursor(1)
		return true
	case termio.KeyEnter:
		b.Menus[b.active].activate()
		b.isOpen = false
		return true
	case termio.KeyEsc:
		b.isOpen = false
		return true
	}
	return false
}

func (b *MenuBar) OnMouseDown(x, y int, btn termio.MouseButton) bool {
	if btn != termio.Mouse1 {
		return false
	}
	if y == b.Y {
		offsets := b.labelOffsets()
		for i, off := range offsets {
			if x >= off && x < off+runeLen(b.Labels[i])+2 {
				if b.isOpen && b.active == i {
					b.isOpen = false
				} else {
					b.active = i
					b.isOpen = true
				}
				return true
			}
		}
		b.isOpen = false
		return false
	}
	if b.isOpen {
		b.isOpen = false
		return true
	}
	return false
}
