package screen

import (
	"strings"
	"testing"

	"github.com/go-termkit/termkit/internal/cell"
)

func TestFlushIsIdempotent(t *testing.T) {
	s := New(10, 3)
	s.PutStr(2, 1, "hi", cell.DefaultAttributes)

	first := s.Flush()
	if len(first) == 0 {
		t.Fatal("expected first flush to emit output")
	}

	second := s.Flush()
	if len(second) != 0 {
		t.Errorf("expected second flush with no changes to emit nothing, got %q", second)
	}
}

func TestFlushOnlyEmitsChangedCells(t *testing.T) {
	s := New(10, 3)
	s.PutStr(0, 0, "hello", cell.DefaultAttributes)
	s.Flush()

	s.PutChar(0, 0, 'H', cell.DefaultAttributes)
	out := string(s.Flush())

	if !strings.Contains(out, "H") {
		t.Errorf("expected flush to contain the changed glyph, got %q", out)
	}
	if strings.Count(out, "e") > 0 {
		t.Errorf("expected flush to skip unchanged cells, got %q", out)
	}
}

func TestFlushPositionsCursorForChangeAfterTextBegin(t *testing.T) {
	s := New(10, 1)
	s.PutStr(0, 0, "status: ok", cell.DefaultAttributes)
	s.Flush()

	// Only the tail changes, as with a clock or a status field; the
	// leading text is untouched, so the first changed cell lies after
	// textBegin.
	s.PutStr(8, 0, "no", cell.DefaultAttributes)
	out := string(s.Flush())

	if !strings.Contains(out, "no") {
		t.Errorf("expected the changed tail to be written, got %q", out)
	}
	// Column 8 in a 10-wide 1-row screen: CSI row;col H with row=1, col=9.
	if !strings.Contains(out, "1;9H") {
		t.Errorf("expected a cursor-position sequence for the first changed cell at column 8, got %q", out)
	}
	if strings.Count(out, "H") != 1 {
		t.Errorf("expected exactly one cursor-position sequence for one contiguous run, got %q", out)
	}
}

func TestFlushBlankRowEmitsAtMostOneClear(t *testing.T) {
	s := New(10, 3)
	s.PutStr(0, 1, "hi", cell.DefaultAttributes)
	s.Flush()

	// Blanking row 1 again leaves its physical content stale; the row is
	// now entirely blank, so it must collapse to a single clear instead of
	// one cursor-position-plus-space pair per stale column.
	s.Reset()
	out := string(s.Flush())

	if strings.Count(out, "H") > 1 {
		t.Errorf("expected at most one cursor-position sequence for the blank row, got %q", out)
	}
	if !strings.Contains(out, "K") {
		t.Errorf("expected a clear-to-end-of-line sequence for the now-blank row, got %q", out)
	}
}

func TestFlushMinimizesSGR(t *testing.T) {
	s := New(10, 1)
	attr := cell.Attributes{Fg: cell.Red, Bg: cell.Black}
	s.PutChar(0, 0, 'A', attr)
	s.PutChar(1, 0, 'B', attr)

	out := string(s.Flush())

	// Only one SGR color-setting sequence should appear for two
	// consecutive cells sharing the same attributes.
	if strings.Count(out, "31") != 1 {
		t.Errorf("expected exactly one red-foreground SGR emission, got %q", out)
	}
}

func TestFlushEmitsFullClearAfterResize(t *testing.T) {
	s := New(5, 5)
	s.Flush()

	s.Resize(6, 6)
	out := string(s.Flush())

	if !strings.Contains(out, "2J") {
		t.Errorf("expected a full-screen clear after resize, got %q", out)
	}
}

func TestPutCharRespectsClip(t *testing.T) {
	s := New(10, 10)
	s.SetClip(5, 5)
	s.PutChar(7, 7, 'X', cell.DefaultAttributes)

	if s.logical[7][7].Ch == 'X' {
		t.Error("expected write outside clip rectangle to be dropped")
	}
}

func TestPutCharHonorsOffset(t *testing.T) {
	s := New(10, 10)
	s.SetOffset(2, 3)
	s.PutChar(0, 0, 'X', cell.DefaultAttributes)

	if s.logical[2][3].Ch != 'X' {
		t.Errorf("expected offset write to land at (2,3), got %q", s.logical[2][3].Ch)
	}
}

func TestDrawBoxShadowIgnoresClip(t *testing.T) {
	s := New(10, 10)
	s.SetClip(4, 4)
	s.DrawBox(0, 0, 4, 4, BorderSingle, cell.DefaultAttributes, false, true)

	if s.logical[4][1].Attr != (cell.Attributes{Fg: cell.Black, Bg: cell.Black}) {
		t.Error("expected shadow cell beyond the clip rectangle to be written")
	}
}

func TestResizePreservesNothingButDoesNotPanic(t *testing.T) {
	s := New(3, 3)
	s.PutChar(1, 1, 'Z', cell.DefaultAttributes)
	s.Resize(1, 1)

	if s.Width() != 1 || s.Height() != 1 {
		t.Fatalf("expected 1x1 grid after resize, got %dx%d", s.Width(), s.Height())
	}
}
