package ecma48

import "testing"

func TestEraseInLineModes(t *testing.T) {
	e := New(10, 1)
	e.ConsumeBytes([]byte("abcdefghij"))
	e.Goto(0, 5)

	e.ConsumeBytes([]byte("\x1b[K")) // erase to end of line

	display := e.Display()
	for x := 0; x < 5; x++ {
		if display[0].Cells[x].Ch == ' ' {
			t.Fatalf("expected cell %d left intact, got blank", x)
		}
	}
	for x := 5; x < 10; x++ {
		if display[0].Cells[x].Ch != ' ' {
			t.Fatalf("expected cell %d cleared, got %q", x, display[0].Cells[x].Ch)
		}
	}
}

func TestInsertAndDeleteChars(t *testing.T) {
	e := New(10, 1)
	e.ConsumeBytes([]byte("abcdefghij"))
	e.Goto(0, 2)

	e.ConsumeBytes([]byte("\x1b[2@")) // ICH 2: insert two blanks at col 2

	display := e.Display()
	if display[0].Cells[2].Ch != ' ' || display[0].Cells[3].Ch != ' ' {
		t.Fatalf("expected two blanks inserted at col 2, got %q %q",
			display[0].Cells[2].Ch, display[0].Cells[3].Ch)
	}
	if display[0].Cells[4].Ch != 'c' {
		t.Fatalf("expected original 'c' pushed to col 4, got %q", display[0].Cells[4].Ch)
	}

	e2 := New(10, 1)
	e2.ConsumeBytes([]byte("abcdefghij"))
	e2.Goto(0, 2)
	e2.ConsumeBytes([]byte("\x1b[2P")) // DCH 2: delete two chars at col 2

	display2 := e2.Display()
	if display2[0].Cells[2].Ch != 'e' {
		t.Fatalf("expected 'e' shifted into col 2 after DCH, got %q", display2[0].Cells[2].Ch)
	}
}

func TestInsertAndDeleteLines(t *testing.T) {
	e := New(5, 4)
	e.ConsumeBytes([]byte("1\r\n2\r\n3\r\n4"))
	e.Goto(1, 0)

	e.ConsumeBytes([]byte("\x1b[L")) // IL 1 at row 1

	display := e.Display()
	if display[1].Cells[0].Ch != ' ' {
		t.Fatalf("expected blank inserted line at row 1, got %q", display[1].Cells[0].Ch)
	}
	if display[2].Cells[0].Ch != '2' {
		t.Fatalf("expected original row 1 pushed to row 2, got %q", display[2].Cells[0].Ch)
	}

	e.ConsumeBytes([]byte("\x1b[M")) // DL 1 at row 1

	if got := e.Display()[1].Cells[0].Ch; got != '2' {
		t.Fatalf("expected row 2 pulled back up to row 1 after DL, got %q", got)
	}
}

func TestTabSetAndClear(t *testing.T) {
	e := New(40, 1)
	e.ConsumeBytes([]byte("\x1b[3g")) // TBC 3: clear all tab stops
	e.Goto(0, 0)
	e.ConsumeBytes([]byte("\t"))

	row, col := e.CursorPosition()
	if row != 0 || col != e.Width()-1 {
		t.Fatalf("expected tab with no stops to land at the right margin, got (%d,%d)", row, col)
	}
}

func TestDeviceStatusReportCursorPosition(t *testing.T) {
	var reply []byte
	e := New(80, 24, WithWriteRemote(func(b []byte) { reply = append(reply, b...) }))
	e.Goto(9, 4)

	e.ConsumeBytes([]byte("\x1b[6n"))

	if string(reply) != "\x1b[10;5R" {
		t.Fatalf("expected cursor position report, got %q", reply)
	}
}
