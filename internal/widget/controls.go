package widget

import (
	"strings"

	"github.com/go-termkit/termkit/internal/cell"
	"github.com/go-termkit/termkit/internal/screen"
	"github.com/go-termkit/termkit/internal/termio"
)

// Label is static, non-interactive text.
type Label struct {
	Base
	X, Y int
	Text string
	Attr cell.Attributes
}

func NewLabel(x, y int, text string) *Label {
	return &Label{X: x, Y: y, Text: text, Attr: cell.DefaultAttributes}
}

func (l *Label) Draw(s *screen.Screen) { s.PutStr(l.X, l.Y, l.Text, l.Attr) }

// Button is a single-line clickable/activatable control.
type Button struct {
	Base
	X, Y, Width int
	Text        string
	Pressed     bool
	OnActivate  func()
}

func NewButton(x, y, width int, text string, onActivate func()) *Button {
	return &Button{X: x, Y: y, Width: width, Text: text, OnActivate: onActivate}
}

func (b *Button) Draw(s *screen.Screen) {
	attr := cell.Attributes{Fg: cell.Black, Bg: cell.Cyan}
	if b.Pressed {
		attr = cell.Attributes{Fg: cell.White, Bg: cell.Blue, Bold: true}
	}
	label := "[ " + b.Text + " ]"
	pad := b.Width - runeLen(label)
	if pad > 0 {
		label = label + strings.Repeat(" ", pad)
	}
	s.PutStr(b.X, b.Y, label, attr)
}

func (b *Button) OnMouseDown(x, y int, btn termio.MouseButton) bool {
	if btn != termio.Mouse1 || y != b.Y || x < b.X || x >= b.X+b.Width {
		return false
	}
	b.Pressed = true
	return true
}

func (b *Button) OnMouseUp(x, y int, btn termio.MouseButton) bool {
	was := b.Pressed
	b.Pressed = false
	if was && btn == termio.Mouse1 && y == b.Y && x >= b.X && x < b.X+b.Width && b.OnActivate != nil {
		b.OnActivate()
	}
	return was
}

func (b *Button) OnKey(k termio.Key) bool {
	if k.Code == termio.KeyEnter {
		if b.OnActivate != nil {
			b.OnActivate()
		}
		return true
	}
	return false
}

// Field is a single-line editable text input.
type Field struct {
	Base
	X, Y, Width int
	Text        []rune
	Cursor      int
	Masked      bool // password-style masking
}

func NewField(x, y, width int) *Field {
	return &Field{X: x, Y: y, Width: width}
}

func (f *Field) Value() string { return string(f.Text) }

func (f *Field) Draw(s *screen.Screen) {
	shown := string(f.Text)
	if f.Masked {
		shown = strings.Repeat("*", len(f.Text))
	}
	if runeLen(shown) > f.Width {
		shown = string([]rune(shown)[:f.Width])
	}
	attr := cell.Attributes{Fg: cell.Black, Bg: cell.White}
	s.PutStr(f.X, f.Y, shown, attr)
	for x := runeLen(shown); x < f.Width; x++ {
		s.PutChar(f.X+x, f.Y, ' ', attr)
	}
}

func (f *Field) OnKey(k termio.Key) bool {
	switch k.Code {
	case termio.KeyBackspace:
		if f.Cursor > 0 {
			f.Text = append(f.Text[:f.Cursor-1], f.Text[f.Cursor:]...)
			f.Cursor--
		}
		return true
	case termio.KeyLeft:
		if f.Cursor > 0 {
			f.Cursor--
		}
		return true
	case termio.KeyRight:
		if f.Cursor < len(f.Text) {
			f.Cursor++
		}
		return true
	case termio.KeyHome:
		f.Cursor = 0
		return true
	case termio.KeyEnd:
		f.Cursor = len(f.Text)
		return true
	case termio.KeyDel:
		if f.Cursor < len(f.Text) {
			f.Text = append(f.Text[:f.Cursor], f.Text[f.Cursor+1:]...)
		}
		return true
	case termio.KeyNone:
		if k.Ch >= 0x20 {
			f.Text = append(f.Text[:f.Cursor], append([]rune{k.Ch}, f.Text[f.Cursor:]...)...)
			f.Cursor++
			return true
		}
	}
	return false
}

// Checkbox toggles a boolean on activation.
type Checkbox struct {
	Base
	X, Y    int
	Label   string
	Checked bool
	OnToggle func(bool)
}

func NewCheckbox(x, y int, label string) *Checkbox {
	return &Checkbox{X: x, Y: y, Label: label}
}

func (c *Checkbox) Draw(s *screen.Screen) {
	mark := ' '
	if c.Checked {
		mark = 'X'
	}
	s.PutStr(c.X, c.Y, "[ ]", cell.DefaultAttributes)
	s.PutChar(c.X+1, c.Y, mark, cell.DefaultAttributes)
	s.PutStr(c.X+4, c.Y, c.Label, cell.DefaultAttributes)
}

func (c *Checkbox) toggle() {
	c.Checked = !c.Checked
	if c.OnToggle != nil {
		c.OnToggle(c.Checked)
	}
}

func (c *Checkbox) OnKey(k termio.Key) bool {
	if k.Code == termio.KeyEnter || (k.Code == termio.KeyNone && k.Ch == ' ') {
		c.toggle()
		return true
	}
	return false
}

func (c *Checkbox) OnMouseDown(x, y int, btn termio.MouseButton) bool {
	if btn != termio.Mouse1 || y != c.Y || x < c.X || x > c.X+2 {
		return false
	}
	c.toggle()
	return true
}

// RadioGroup presents mutually-exclusive options stacked vertically.
type RadioGroup struct {
	Base
	X, Y     int
	Options  []string
	Selected int
	OnSelect func(int)
}

func NewRadioGroup(x, y int, options []string) *RadioGroup {
	return &RadioGroup{X: x, Y: y, Options: options}
}

func (r *RadioGroup) Draw(s *screen.Screen) {
	for i, opt := range r.Options {
		mark := "( )"
		if i == r.Selected {
			mark = "(*)"
		}
		s.PutStr(r.X, r.Y+i, mark+" "+opt, cell.DefaultAttributes)
	}
}

func (r *RadioGroup) selectIndex(i int) {
	if i < 0 || i >= len(r.Options) || i == r.Selected {
		return
	}
	r.Selected = i
	if r.OnSelect != nil {
		r.OnSelect(i)
	}
}

func (r *RadioGroup) OnKey(k termio.Key) bool {
	switch k.Code {
	case termio.KeyUp:
		r.selectIndex(r.Selected - 1)
		return true
	case termio.KeyDown:
		r.selectIndex(r.Selected + 1)
		return true
	}
	return false
}

func (r *RadioGroup) OnMouseDown(x, y int, btn termio.MouseButton) bool {
	row := y - r.Y
	if btn != termio.Mouse1 || row < 0 || row >= len(r.Options) || x < r.X {
		return false
	}
	r.selectIndex(row)
	return true
}

// ProgressBar renders a fraction in [0,1] as a filled bar.
type ProgressBar struct {
	Base
	X, Y, Width int
	Fraction    float64
}

func NewProgressBar(x, y, width int) *ProgressBar {
	return &ProgressBar{X: x, Y: y, Width: width}
}

func (p *ProgressBar) SetFraction(f float64) {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	p.Fraction = f
}

func (p *ProgressBar) Draw(s *screen.Screen) {
	filled := int(float64(p.Width) * p.Fraction)
	attrFilled := cell.Attributes{Fg: cell.Black, Bg: cell.Green}
	attrEmpty := cell.Attributes{Fg: cell.White, Bg: cell.Black}
	for x := 0; x < p.Width; x++ {
		if x < filled {
			s.PutChar(p.X+x, p.Y, ' ', attrFilled)
		} else {
			s.PutChar(p.X+x, p.Y, '░', attrEmpty)
		}
	}
}

// TreeNode is one entry in a TreeView.
type TreeNode struct {
	Label    string
	Children []*TreeNode
	expanded bool
}

// TreeView renders an indented, expandable/collapsible outline.
type TreeView struct {
	Base
	X, Y, Width, Height int
	Root                *TreeNode
	Cursor              int
	visible             []*TreeNode
	depth               []int
	OnSelect            func(*TreeNode)
}

func NewTreeView(x, y, w, h int, root *TreeNode) *TreeView {
	root.expanded = true
	return &TreeView{X: x, Y: y, Width: w, Height: h, Root: root}
}

func (t *TreeView) rebuild() {
	t.visible = t.visible[:0]
	t.depth = t.depth[:0]
	var walk func(n *TreeNode, depth int)
	walk = func(n *TreeNode, depth int) {
		t.visible = append(t.visible, n)
		t.depth = append(t.depth, depth)
		if n.expanded {
			for _, c := range n.Children {
				walk(c, depth+1)
			}
		}
	}
	walk(t.Root, 0)
}

func (t *TreeView) Draw(s *screen.Screen) {
	t.rebuild()
	for i, n := range t.visible {
		if i >= t.Height {
			break
		}
		marker := "  "
		if len(n.Children) > 0 {
			if n.expanded {
				marker = "- "
			} else {
				marker = "+ "
			}
		}
		attr := cell.DefaultAttributes
		if i == t.Cursor {
			attr = cell.Attributes{Fg: cell.Black, Bg: cell.White}
		}
		indent := strings.Repeat("  ", t.depth[i])
		s.PutStr(t.X, t.Y+i, indent+marker+n.Label, attr)
	}
}

func (t *TreeView) OnKey(k termio.Key) bool {
	switch k.Code {
	case termio.KeyUp:
		if t.Cursor > 0 {
			t.Cursor--
		}
		return true
	case termio.KeyDown:
		if t.Cursor < len(t.visible)-1 {
			t.Cursor++
		}
		return true
	case termio.KeyEnter:
		t.activate()
		return true
	case termio.KeyRight:
		if t.Cursor < len(t.visible) {
			t.visible[t.Cursor].expanded = true
		}
		return true
	case termio.KeyLeft:
		if t.Cursor < len(t.visible) {
			t.visible[t.Cursor].expanded = false
		}
		return true
	}
	return false
}

func (t *TreeView) activate() {
	if t.Cursor < 0 || t.Cursor >= len(t.visible) {
		return
	}
	n := t.visible[t.Cursor]
	if len(n.Children) > 0 {
		n.expanded = !n.expanded
	}
	if t.OnSelect != nil {
		t.OnSelect(n)
	}
}

func (t *TreeView) OnMouseDown(x, y int, btn termio.MouseButton) bool {
	row := y - t.Y
	if btn != termio.Mouse1 || row < 0 || row >= len(t.visible) {
		return false
	}
	t.Cursor = row
	t.activate()
	return true
}

// TextView is a scrollable, read-only block of lines split on newlines;
// lines longer than Width are not wrapped.
type TextView struct {
	Base
	X, Y, Width, Height int
	Lines               []string
	Top                 int
}

func NewTextView(x, y, w, h int, text string) *TextView {
	return &TextView{X: x, Y: y, Width: w, Height: h, Lines: strings.Split(text, "\n")}
}

func (v *TextView) Draw(s *screen.Screen) {
	for row := 0; row < v.Height; row++ {
		idx := v.Top + row
		if idx >= len(v.Lines) {
			break
		}
		s.PutStr(v.X, v.Y+row, v.Lines[idx], cell.DefaultAttributes)
	}
}

func (v *TextView) OnKey(k termio.Key) bool {
	switch k.Code {
	case termio.KeyUp:
		if v.Top > 0 {
			v.Top--
		}
		return true
	case termio.KeyDown:
		if v.Top < len(v.Lines)-1 {
			v.Top++
		}
		return true
	case termio.KeyPgUp:
		v.Top -= v.Height
		if v.Top < 0 {
			v.Top = 0
		}
		return true
	case termio.KeyPgDn:
		v.Top += v.Height
		if max := len(v.Lines) - 1; v.Top > max {
			v.Top = max
		}
		if v.Top < 0 {
			v.Top = 0
		}
		return true
	}
	return false
}

// Editor is a minimal multi-line text buffer editor: arrow navigation,
// insertion, backspace/delete, and newline splitting. Full-screen visual
// editors run inside vtwidget.TTerminal instead; this is the toolkit's own
// lightweight in-process editor for short bodies (comment boxes, config
// snippets).
type Editor struct {
	Base
	X, Y, Width, Height int
	Lines               [][]rune
	CursorLine, CursorCol int
	Top                 int
}

func NewEditor(x, y, w, h int, text string) *Editor {
	e := &Editor{X: x, Y: y, Width: w, Height: h}
	for _, l := range strings.Split(text, "\n") {
		e.Lines = append(e.Lines, []rune(l))
	}
	if len(e.Lines) == 0 {
		e.Lines = [][]rune{{}}
	}
	return e
}

func (e *Editor) Text() string {
	lines := make([]string, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = string(l)
	}
	return strings.Join(lines, "\n")
}

func (e *Editor) Draw(s *screen.Screen) {
	for row := 0; row < e.Height; row++ {
		idx := e.Top + row
		if idx >= len(e.Lines) {
			break
		}
		s.PutStr(e.X, e.Y+row, string(e.Lines[idx]), cell.DefaultAttributes)
	}
}

func (e *Editor) ensureVisible() {
	if e.CursorLine < e.Top {
		e.Top = e.CursorLine
	}
	if e.CursorLine >= e.Top+e.Height {
		e.Top = e.CursorLine - e.Height + 1
	}
}

func (e *Editor) OnKey(k termio.Key) bool {
	line := e.Lines[e.CursorLine]
	switch k.Code {
	case termio.KeyLeft:
		if e.CursorCol > 0 {
			e.CursorCol--
		} else if e.CursorLine > 0 {
			e.CursorLine--
			e.CursorCol = len(e.Lines[e.CursorLine])
		}
	case termio.KeyRight:
		if e.CursorCol < len(line) {
			e.CursorCol++
		} else if e.CursorLine < len(e.Lines)-1 {
			e.CursorLine++
			e.CursorCol = 0
		}
	case termio.KeyUp:
		if e.CursorLine > 0 {
			e.CursorLine--
			e.CursorCol = min(e.CursorCol, len(e.Lines[e.CursorLine]))
		}
	case termio.KeyDown:
		if e.CursorLine < len(e.Lines)-1 {
			e.CursorLine++
			e.CursorCol = min(e.CursorCol, len(e.Lines[e.CursorLine]))
		}
	case termio.KeyBackspace:
		if e.CursorCol > 0 {
			e.Lines[e.CursorLine] = append(line[:e.CursorCol-1], line[e.CursorCol:]...)
			e.CursorCol--
		} else if e.CursorLine > 0 {
			prev := e.Lines[e.CursorLine-1]
			e.CursorCol = len(prev)
			e.Lines[e.CursorLine-1] = append(prev, line...)
			e.Lines = append(e.Lines[:e.CursorLine], e.Lines[e.CursorLine+1:]...)
			e.CursorLine--
		}
	case termio.KeyDel:
		if e.CursorCol < len(line) {
			e.Lines[e.CursorLine] = append(line[:e.CursorCol], line[e.CursorCol+1:]...)
		} else if e.CursorLine < len(e.Lines)-1 {
			e.Lines[e.CursorLine] = append(line, e.Lines[e.CursorLine+1]...)
			e.Lines = append(e.Lines[:e.CursorLine+1], e.Lines[e.CursorLine+2:]...)
		}
	case termio.KeyEnter:
		rest := append([]rune{}, line[e.CursorCol:]...)
		e.Lines[e.CursorLine] = line[:e.CursorCol]
		tail := append([][]rune{rest}, e.Lines[e.CursorLine+1:]...)
		e.Lines = append(e.Lines[:e.CursorLine+1], tail...)
		e.CursorLine++
		e.CursorCol = 0
	case termio.KeyNone:
		if k.Ch >= 0x20 {
			e.Lines[e.CursorLine] = append(line[:e.CursorCol], append([]rune{k.Ch}, line[e.CursorCol:]...)...)
			e.CursorCol++
		} else {
			return false
		}
	default:
		return false
	}
	e.ensureVisible()
	return true
}

