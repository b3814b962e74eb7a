package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-termkit/termkit/internal/termio"
	"github.com/go-termkit/termkit/internal/widget"
)

func newTestApp() *App {
	return New(strings.NewReader(""), &bytes.Buffer{}, 40, 10, NoopLogger{})
}

func newTestWindow(x, y, w, h int) *widget.Window {
	return widget.NewWindow("w", x, y, w, h, &widget.Label{Text: "body"})
}

func TestAddWindowFocusesTheNewWindow(t *testing.T) {
	a := newTestApp()
	first := newTestWindow(0, 0, 10, 5)
	second := newTestWindow(10, 0, 10, 5)

	a.AddWindow(first)
	a.AddWindow(second)

	if a.FocusedWindow() != second {
		t.Fatal("expected the most recently added window to be focused")
	}
	if first.Focused {
		t.Fatal("expected the first window to lose focus")
	}
	if !second.Focused {
		t.Fatal("expected the second window to report Focused = true")
	}
}

func TestCycleFocusWrapsBothDirections(t *testing.T) {
	a := newTestApp()
	first := newTestWindow(0, 0, 10, 5)
	second := newTestWindow(10, 0, 10, 5)
	a.AddWindow(first)
	a.AddWindow(second)

	a.CycleFocus(1)
	if a.FocusedWindow() != first {
		t.Fatal("expected CycleFocus(1) to wrap back to the first window")
	}

	a.CycleFocus(-1)
	if a.FocusedWindow() != second {
		t.Fatal("expected CycleFocus(-1) to wrap back to the second window")
	}
}

func TestCloseFocusedRemovesWindowAndRefocuses(t *testing.T) {
	a := newTestApp()
	first := newTestWindow(0, 0, 10, 5)
	second := newTestWindow(10, 0, 10, 5)
	a.AddWindow(first)
	a.AddWindow(second)

	closed := false
	second.SetOnClose(func() { closed = true })

	a.CloseFocused()

	if !closed {
		t.Fatal("expected OnClose to run on the focused window")
	}
	if a.FocusedWindow() != first {
		t.Fatal("expected focus to fall back to the remaining window")
	}
}

func TestDispatchRoutesKeypressToFocusedWindow(t *testing.T) {
	a := newTestApp()
	win := newTestWindow(0, 0, 10, 5)
	btn := widget.NewButton(0, 0, 8, "OK", nil)
	win.Add(btn)
	win.FocusedChild = 1 // the button, not the label body
	a.AddWindow(win)

	activated := false
	btn.OnActivate = func() { activated = true }

	a.dispatch(termio.InputEvent{Type: termio.EventKeypress, Key: termio.Key{Code: termio.KeyEnter}})

	if !activated {
		t.Fatal("expected the keypress to reach the focused window's focused child")
	}
}

func TestDispatchMouseHitTestsFrontToBackAndRefocuses(t *testing.T) {
	a := newTestApp()
	back := newTestWindow(0, 0, 20, 10)
	front := newTestWindow(5, 5, 20, 10)
	a.AddWindow(back)
	a.AddWindow(front)

	// Focus is on front; click inside back's unique region (outside front).
	a.dispatchMouse(termio.InputEvent{
		Type: termio.EventMouseDown, Button: termio.Mouse1,
		AbsoluteX: 1, AbsoluteY: 1,
	})

	if a.FocusedWindow() != back {
		t.Fatal("expected a click over the back window alone to refocus it")
	}
	if front.Focused {
		t.Fatal("expected the front window to lose focus")
	}
}
