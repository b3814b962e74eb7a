package widget

import (
	"github.com/go-termkit/termkit/internal/cell"
	"github.com/go-termkit/termkit/internal/screen"
	"github.com/go-termkit/termkit/internal/termio"
	"github.com/google/uuid"
)

// Window is the concrete TWindow of the design notes: every visible
// surface (a plain dialog, a text view, an embedded terminal) composes one
// of these rather than subclassing it. A Window owns its own Tree of
// child controls; the root of that tree is the window's own body, which
// is its own parent per the arena's cyclic-root convention.
type Window struct {
	Base

	ID    uuid.UUID
	Title string

	X, Y, Width, Height int
	Z                   int

	Modal   bool
	Focused bool
	Style   Style

	// Minimize/dock state, grounded on the reference window manager's
	// field shape: a window collapses to its title bar and remembers its
	// prior geometry so restoring does not require recomputing layout.
	Minimized     bool
	MinimizeOrder int
	PreMinimizeX  int
	PreMinimizeY  int
	PreMinimizeW  int
	PreMinimizeH  int

	Dirty bool

	Tree         *Tree
	FocusedChild NodeID
	hasFocusKid  bool

	onClose func()
}

// Style is the subset of internal/theme a Window needs without importing
// it directly, avoiding an import cycle between widget and theme.
type Style struct {
	Border      cell.Attributes
	Title       cell.Attributes
	Body        cell.Attributes
	FocusBorder cell.Attributes
}

// NewWindow creates an unfocused, non-modal window at the given geometry
// with body as the root of its tree; controls added later become body's
// children.
func NewWindow(title string, x, y, w, h int, body Widget) *Window {
	win := &Window{
		ID:     uuid.New(),
		Title:  title,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		Dirty:  true,
	}
	win.Tree = NewTree(body)
	return win
}

// Add inserts a child control into the window's body tree.
func (w *Window) Add(child Widget) NodeID {
	id := w.Tree.Add(w.Tree.Root(), child)
	if !w.hasFocusKid {
		w.FocusedChild = id
		w.hasFocusKid = true
	}
	w.Dirty = true
	return id
}

// SetOnClose registers a callback invoked once from OnClose.
func (w *Window) SetOnClose(fn func()) { w.onClose = fn }

// Minimize collapses the window to its title bar, remembering its prior
// geometry so Restore can put it back exactly.
func (w *Window) Minimize() {
	if w.Minimized {
		return
	}
	w.PreMinimizeX, w.PreMinimizeY = w.X, w.Y
	w.PreMinimizeW, w.PreMinimizeH = w.Width, w.Height
	w.Height = 1
	w.Minimized = true
	w.Dirty = true
}

// Restore undoes Minimize, returning the window to its pre-minimize
// geometry.
func (w *Window) Restore() {
	if !w.Minimized {
		return
	}
	w.X, w.Y = w.PreMinimizeX, w.PreMinimizeY
	w.Width, w.Height = w.PreMinimizeW, w.PreMinimizeH
	w.Minimized = false
	w.Dirty = true
}

// Draw renders the window's border, title, and (unless minimized) its
// body tree clipped to the interior.
func (w *Window) Draw(s *screen.Screen) {
	savedOffX, savedOffY := s.Offset()
	savedClipX, savedClipY := s.Clip()
	defer func() {
		s.SetOffset(savedOffX, savedOffY)
		s.SetClip(savedClipX, savedClipY)
	}()

	s.SetOffset(w.X, w.Y)
	s.SetClip(w.Width, w.Height)

	border := w.Style.Border
	if w.Focused {
		border = w.Style.FocusBorder
	}
	style := screen.BorderSingle
	if w.Modal {
		style = screen.BorderDouble
	}
	s.DrawBox(0, 0, w.Width, w.Height, style, border, true, !w.Modal)

	title := " " + w.Title + " "
	titleX := (w.Width - runeLen(title)) / 2
	if titleX < 1 {
		titleX = 1
	}
	s.PutStr(titleX, 0, title, w.Style.Title)

	if w.Minimized {
		return
	}

	s.SetOffset(w.X+1, w.Y+1)
	s.SetClip(w.Width-2, w.Height-2)
	w.Tree.Walk(w.Tree.Root(), func(_ NodeID, child Widget) {
		child.Draw(s)
	})
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// OnMouseDown routes to the focused child; neither Window nor the
// application dispatcher (internal/app, which hit-tests only whole
// windows) hit-tests individual children. Window forwards every click to
// whichever child currently holds focus, matching the single-focus model
// spec §5 describes for keyboard dispatch and extends here to clicks that
// land inside the body without a more specific target.
func (w *Window) OnMouseDown(x, y int, btn termio.MouseButton) bool {
	if w.hasFocusKid {
		return w.Tree.Widget(w.FocusedChild).OnMouseDown(x, y, btn)
	}
	return false
}

func (w *Window) OnMouseUp(x, y int, btn termio.MouseButton) bool {
	if w.hasFocusKid {
		return w.Tree.Widget(w.FocusedChild).OnMouseUp(x, y, btn)
	}
	return false
}

func (w *Window) OnMouseMotion(x, y int, btn termio.MouseButton) bool {
	if w.hasFocusKid {
		return w.Tree.Widget(w.FocusedChild).OnMouseMotion(x, y, btn)
	}
	return false
}

// OnKey forwards to the focused child, then to Tab/Shift-Tab focus cycling
// if the child declined the key.
func (w *Window) OnKey(k termio.Key) bool {
	if w.hasFocusKid && w.Tree.Widget(w.FocusedChild).OnKey(k) {
		return true
	}
	switch k.Code {
	case termio.KeyTab:
		w.focusNext(1)
		return true
	case termio.KeyBTab:
		w.focusNext(-1)
		return true
	}
	return false
}

func (w *Window) focusNext(dir int) {
	kids := w.Tree.Children(w.Tree.Root())
	if len(kids) == 0 {
		return
	}
	cur := 0
	for i, k := range kids {
		if k == w.FocusedChild {
			cur = i
			break
		}
	}
	next := (cur + dir + len(kids)) % len(kids)
	w.FocusedChild = kids[next]
	w.Dirty = true
}

func (w *Window) OnResize(width, height int) {
	w.Width, w.Height = width, height
	w.Dirty = true
}

func (w *Window) OnClose() {
	if w.onClose != nil {
		w.onClose()
	}
}

func (w *Window) OnIdle() {
	w.Tree.Walk(w.Tree.Root(), func(_ NodeID, child Widget) {
		child.OnIdle()
	})
}
