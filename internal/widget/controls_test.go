package widget

import (
	"testing"

	"github.com/go-termkit/termkit/internal/termio"
)

func TestButtonActivatesOnEnter(t *testing.T) {
	activated := false
	b := NewButton(0, 0, 10, "OK", func() { activated = true })

	if handled := b.OnKey(termio.Key{Code: termio.KeyEnter}); !handled {
		t.Fatal("expected Enter to be handled")
	}
	if !activated {
		t.Fatal("expected OnActivate to run on Enter")
	}
}

func TestButtonActivatesOnMouseClickInsideBounds(t *testing.T) {
	activated := false
	b := NewButton(2, 3, 10, "OK", func() { activated = true })

	b.OnMouseDown(4, 3, termio.Mouse1)
	if !b.Pressed {
		t.Fatal("expected Pressed = true after mouse down inside bounds")
	}

	b.OnMouseUp(4, 3, termio.Mouse1)
	if !activated {
		t.Fatal("expected OnActivate to run on mouse up inside bounds")
	}
	if b.Pressed {
		t.Fatal("expected Pressed = false after mouse up")
	}
}

func TestButtonDoesNotActivateOnMouseUpOutsideBounds(t *testing.T) {
	activated := false
	b := NewButton(2, 3, 10, "OK", func() { activated = true })

	b.OnMouseDown(4, 3, termio.Mouse1)
	b.OnMouseUp(50, 50, termio.Mouse1)

	if activated {
		t.Fatal("did not expect OnActivate to run for a release outside bounds")
	}
}

func TestFieldInsertAndBackspace(t *testing.T) {
	f := NewField(0, 0, 20)

	for _, r := range "hi" {
		f.OnKey(termio.Key{Code: termio.KeyNone, Ch: r})
	}
	if f.Value() != "hi" {
		t.Fatalf("Value() = %q, want %q", f.Value(), "hi")
	}

	f.OnKey(termio.Key{Code: termio.KeyBackspace})
	if f.Value() != "h" {
		t.Fatalf("Value() after backspace = %q, want %q", f.Value(), "h")
	}
}

func TestFieldHomeEndCursorMovement(t *testing.T) {
	f := NewField(0, 0, 20)
	for _, r := range "abc" {
		f.OnKey(termio.Key{Code: termio.KeyNone, Ch: r})
	}

	f.OnKey(termio.Key{Code: termio.KeyHome})
	if f.Cursor != 0 {
		t.Fatalf("Cursor after Home = %d, want 0", f.Cursor)
	}

	f.OnKey(termio.Key{Code: termio.KeyEnd})
	if f.Cursor != 3 {
		t.Fatalf("Cursor after End = %d, want 3", f.Cursor)
	}
}

func TestCheckboxTogglesOnEnterAndSpace(t *testing.T) {
	var toggledTo []bool
	c := NewCheckbox(0, 0, "wrap")
	c.OnToggle = func(v bool) { toggledTo = append(toggledTo, v) }

	c.OnKey(termio.Key{Code: termio.KeyEnter})
	if !c.Checked {
		t.Fatal("expected Checked = true after Enter")
	}

	c.OnKey(termio.Key{Code: termio.KeyNone, Ch: ' '})
	if c.Checked {
		t.Fatal("expected Checked = false after second toggle")
	}

	if len(toggledTo) != 2 || toggledTo[0] != true || toggledTo[1] != false {
		t.Fatalf("OnToggle calls = %v, want [true false]", toggledTo)
	}
}

func TestRadioGroupSelectIndexIgnoresOutOfRange(t *testing.T) {
	selected := -1
	r := NewRadioGroup(0, 0, []string{"a", "b", "c"})
	r.OnSelect = func(i int) { selected = i }

	r.selectIndex(5)
	if selected != -1 {
		t.Fatalf("expected out-of-range selectIndex to be ignored, selected = %d", selected)
	}

	r.OnKey(termio.Key{Code: termio.KeyDown})
	if r.Selected != 1 || selected != 1 {
		t.Fatalf("Selected = %d, OnSelect arg = %d, want 1", r.Selected, selected)
	}
}

func TestProgressBarSetFractionClamps(t *testing.T) {
	p := NewProgressBar(0, 0, 10)

	p.SetFraction(-1)
	if p.Fraction != 0 {
		t.Fatalf("Fraction after negative set = %v, want 0", p.Fraction)
	}

	p.SetFraction(2)
	if p.Fraction != 1 {
		t.Fatalf("Fraction after >1 set = %v, want 1", p.Fraction)
	}
}

func TestTreeViewExpandCollapseChangesVisibleCount(t *testing.T) {
	root := &TreeNode{Label: "root", Children: []*TreeNode{
		{Label: "child", Children: []*TreeNode{{Label: "grandchild"}}},
	}}
	tv := NewTreeView(0, 0, 20, 10, root)

	tv.rebuild()
	collapsedCount := len(tv.visible)

	tv.Cursor = 1 // "child"
	tv.OnKey(termio.Key{Code: termio.KeyRight})
	tv.rebuild()
	if len(tv.visible) <= collapsedCount {
		t.Fatalf("expected expanding child to reveal grandchild, visible count = %d", len(tv.visible))
	}

	tv.OnKey(termio.Key{Code: termio.KeyLeft})
	tv.rebuild()
	if len(tv.visible) != collapsedCount {
		t.Fatalf("expected collapsing child to hide grandchild again, visible count = %d, want %d", len(tv.visible), collapsedCount)
	}
}

func TestTextViewScrollsWithinBounds(t *testing.T) {
	tv := NewTextView(0, 0, 10, 2, "one\ntwo\nthree\nfour")

	tv.OnKey(termio.Key{Code: termio.KeyDown})
	if tv.Top != 1 {
		t.Fatalf("Top after Down = %d, want 1", tv.Top)
	}

	tv.OnKey(termio.Key{Code: termio.KeyUp})
	if tv.Top != 0 {
		t.Fatalf("Top after Up = %d, want 0", tv.Top)
	}

	tv.OnKey(termio.Key{Code: termio.KeyUp})
	if tv.Top != 0 {
		t.Fatalf("Top should clamp at 0, got %d", tv.Top)
	}
}

func TestEditorEnterSplitsLine(t *testing.T) {
	e := NewEditor(0, 0, 20, 5, "hello")
	e.CursorCol = 2

	e.OnKey(termio.Key{Code: termio.KeyEnter})

	if len(e.Lines) != 2 {
		t.Fatalf("expected 2 lines after split, got %d", len(e.Lines))
	}
	if string(e.Lines[0]) != "he" || string(e.Lines[1]) != "llo" {
		t.Fatalf("lines = %q / %q, want %q / %q", e.Lines[0], e.Lines[1], "he", "llo")
	}
	if e.CursorLine != 1 || e.CursorCol != 0 {
		t.Fatalf("cursor after split = (%d,%d), want (1,0)", e.CursorLine, e.CursorCol)
	}
}

func TestEditorBackspaceJoinsLines(t *testing.T) {
	e := NewEditor(0, 0, 20, 5, "ab\ncd")
	e.CursorLine, e.CursorCol = 1, 0

	e.OnKey(termio.Key{Code: termio.KeyBackspace})

	if len(e.Lines) != 1 {
		t.Fatalf("expected 1 line after join, got %d", len(e.Lines))
	}
	if e.Text() != "abcd" {
		t.Fatalf("Text() = %q, want %q", e.Text(), "abcd")
	}
	if e.CursorLine != 0 || e.CursorCol != 2 {
		t.Fatalf("cursor after join = (%d,%d), want (0,2)", e.CursorLine, e.CursorCol)
	}
}
