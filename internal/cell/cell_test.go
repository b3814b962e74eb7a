package cell

import "testing"

func TestNewCellIsBlank(t *testing.T) {
	c := New()

	if c.Ch != ' ' {
		t.Errorf("expected space, got %q", c.Ch)
	}
	if c.Attr.Fg != White || c.Attr.Bg != Black {
		t.Errorf("expected white-on-black, got fg=%v bg=%v", c.Attr.Fg, c.Attr.Bg)
	}
	if c.Attr.Bold || c.Attr.Blink {
		t.Error("expected not-bold, not-blink")
	}
	if !c.IsBlank() {
		t.Error("expected IsBlank to be true for a fresh cell")
	}
}

func TestCellReset(t *testing.T) {
	c := Cell{Ch: 'X', Attr: Attributes{Fg: Red, Bg: Blue, Bold: true, Blink: true}}
	c.Reset()

	if !c.IsBlank() {
		t.Error("expected reset cell to equal the default blank cell")
	}
}

func TestCellEqualIsStructural(t *testing.T) {
	a := Cell{Ch: 'Q', Attr: Attributes{Fg: Green, Bold: true}}
	b := Cell{Ch: 'Q', Attr: Attributes{Fg: Green, Bold: true}}
	c := Cell{Ch: 'Q', Attr: Attributes{Fg: Green, Bold: false}}

	if !a.Equal(b) {
		t.Error("expected identical cells to be equal")
	}
	if a.Equal(c) {
		t.Error("expected cells differing in one attribute to be unequal")
	}
}
