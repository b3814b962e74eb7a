package vtwidget

import (
	"io"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/go-termkit/termkit/internal/ecma48"
)

// newTestTerminal builds a TTerminal around an emulator without spawning a
// child process, exercising the same feed/resize paths Spawn's result would
// use once its stdout pipe starts producing bytes.
func newTestTerminal(width, height int) *TTerminal {
	t := &TTerminal{}
	t.emu = ecma48.New(width, height)
	return t
}

func TestDecodeRuneASCII(t *testing.T) {
	r, size := decodeRune([]byte("A"))
	if r != 'A' || size != 1 {
		t.Fatalf("decodeRune(\"A\") = (%q, %d), want ('A', 1)", r, size)
	}
}

func TestDecodeRuneMultiByteUTF8(t *testing.T) {
	// é is U+00E9, encoded as 0xC3 0xA9 in UTF-8.
	r, size := decodeRune([]byte{0xC3, 0xA9})
	if r != 'é' || size != 2 {
		t.Fatalf("decodeRune(é) = (%q, %d), want ('é', 2)", r, size)
	}
}

func TestDecodeRuneTruncatedSequenceFallsBackToOneByte(t *testing.T) {
	r, size := decodeRune([]byte{0xC3})
	if size != 1 {
		t.Fatalf("decodeRune(truncated) size = %d, want 1", size)
	}
	if r != 0xC3 {
		t.Fatalf("decodeRune(truncated) rune = %v, want 0xC3", r)
	}
}

func TestFeedTranslatesLoneLFToCRLF(t *testing.T) {
	term := newTestTerminal(10, 3)

	term.feed([]byte("ab\ncd"))

	row0 := term.emu.Display()[0]
	row1 := term.emu.Display()[1]
	if row0.Cells[0].Ch != 'a' || row0.Cells[1].Ch != 'b' {
		t.Fatalf("row0 = %q%q, want ab", row0.Cells[0].Ch, row0.Cells[1].Ch)
	}
	if row1.Cells[0].Ch != 'c' || row1.Cells[1].Ch != 'd' {
		t.Fatalf("expected lone LF to start row 1 at column 0 (CRLF), got %q%q", row1.Cells[0].Ch, row1.Cells[1].Ch)
	}
}

func TestOnResizePropagatesToEmulator(t *testing.T) {
	term := newTestTerminal(10, 5)

	term.OnResize(20, 8)

	if term.emu.Width() != 20 || term.emu.Height() != 8 {
		t.Fatalf("emulator size = (%d,%d), want (20,8)", term.emu.Width(), term.emu.Height())
	}
}

func TestOfflineDefaultsFalse(t *testing.T) {
	term := newTestTerminal(10, 5)
	if term.Offline() {
		t.Fatal("expected a freshly built terminal to report Offline() = false")
	}
}

func TestOnIdleDrainsBufferedChunksWithoutBlocking(t *testing.T) {
	term := newTestTerminal(10, 3)
	chunks := make(chan []byte, 1)
	chunks <- []byte("hi")
	term.chunks = chunks
	term.errs = make(chan error)

	done := make(chan struct{})
	go func() {
		term.OnIdle()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("OnIdle blocked instead of draining the buffered chunk and returning")
	}

	row0 := term.emu.Display()[0]
	if row0.Cells[0].Ch != 'h' || row0.Cells[1].Ch != 'i' {
		t.Fatalf("expected the buffered chunk to be fed to the emulator, got %q%q", row0.Cells[0].Ch, row0.Cells[1].Ch)
	}
}

func TestOnIdleReturnsImmediatelyWhenNothingBuffered(t *testing.T) {
	term := newTestTerminal(10, 3)
	term.chunks = make(chan []byte)
	term.errs = make(chan error)

	done := make(chan struct{})
	go func() {
		term.OnIdle()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("OnIdle blocked on empty channels instead of polling with a zero timeout")
	}
}

func TestOnIdleGoesOfflineOnError(t *testing.T) {
	term := newTestTerminal(10, 3)
	term.chunks = make(chan []byte)
	errs := make(chan error, 1)
	errs <- io.ErrClosedPipe
	term.errs = errs
	term.stdout = io.NopCloser(strings.NewReader(""))
	term.cmd = &exec.Cmd{}

	term.OnIdle()

	if !term.Offline() {
		t.Fatal("expected OnIdle to go offline after observing an error on the errs channel")
	}
}
