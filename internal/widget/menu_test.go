package widget

import (
	"testing"

	"github.com/go-termkit/termkit/internal/termio"
)

func newTestMenuBar() *MenuBar {
	bar := NewMenuBar(0, 40)
	bar.AddMenu("File", &Menu{Items: []MenuItem{{Label: "New"}, {Label: "Open"}}})
	bar.AddMenu("Edit", &Menu{Items: []MenuItem{{Label: "Cut"}, {Label: "Copy"}}})
	return bar
}

func TestMenuBarF10OpensWhenClosed(t *testing.T) {
	bar := newTestMenuBar()

	if bar.isOpen {
		t.Fatal("expected bar to start closed")
	}
	if handled := bar.OnKey(termio.Key{Code: termio.KeyF10}); !handled {
		t.Fatal("expected F10 to be handled")
	}
	if !bar.isOpen {
		t.Fatal("expected F10 to open the bar")
	}
}

func TestMenuBarEscClosesAndLeftRightCyclesActive(t *testing.T) {
	bar := newTestMenuBar()
	bar.OnKey(termio.Key{Code: termio.KeyF10})

	bar.OnKey(termio.Key{Code: termio.KeyRight})
	if bar.active != 1 {
		t.Fatalf("active after Right = %d, want 1", bar.active)
	}

	bar.OnKey(termio.Key{Code: termio.KeyRight})
	if bar.active != 0 {
		t.Fatalf("active after wrapping Right = %d, want 0", bar.active)
	}

	bar.OnKey(termio.Key{Code: termio.KeyLeft})
	if bar.active != 1 {
		t.Fatalf("active after wrapping Left = %d, want 1", bar.active)
	}

	bar.OnKey(termio.Key{Code: termio.KeyEsc})
	if bar.isOpen {
		t.Fatal("expected Esc to close the bar")
	}
}

func TestMenuBarEnterActivatesSelectedItemAndCloses(t *testing.T) {
	activated := false
	bar := NewMenuBar(0, 40)
	bar.AddMenu("File", &Menu{Items: []MenuItem{{Label: "New", OnActivate: func() { activated = true }}}})

	bar.OnKey(termio.Key{Code: termio.KeyF10})
	bar.OnKey(termio.Key{Code: termio.KeyEnter})

	if !activated {
		t.Fatal("expected Enter to activate the selected item")
	}
	if bar.isOpen {
		t.Fatal("expected Enter to close the bar")
	}
}

func TestMenuMoveCursorSkipsSeparators(t *testing.T) {
	m := &Menu{Items: []MenuItem{{Label: "A"}, {Label: ""}, {Label: "B"}}}

	m.moveCursor(1)
	if m.cursor != 2 {
		t.Fatalf("cursor after moveCursor(1) = %d, want 2 (skipping separator)", m.cursor)
	}
}

func TestMenuBarMouseDownOpensAndTogglesClickedLabel(t *testing.T) {
	bar := newTestMenuBar()

	bar.OnMouseDown(1, 0, termio.Mouse1)
	if !bar.isOpen || bar.active != 0 {
		t.Fatalf("expected click on first label to open menu 0, isOpen=%v active=%d", bar.isOpen, bar.active)
	}

	bar.OnMouseDown(1, 0, termio.Mouse1)
	if bar.isOpen {
		t.Fatal("expected clicking the already-open label again to close the bar")
	}
}
