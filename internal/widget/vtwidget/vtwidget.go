// Package vtwidget hosts a child shell process behind an ecma48.Emulator
// and renders its display as a window body. No pseudoterminal is
// allocated: stdout and stderr are merged ordinary pipes, which limits
// fidelity to programs that do not require a real TTY (full-screen
// editors and pagers will misbehave — spec §9(d)).
package vtwidget

import (
	"io"
	"os/exec"
	"sync"

	"github.com/go-termkit/termkit/internal/cell"
	"github.com/go-termkit/termkit/internal/ecma48"
	"github.com/go-termkit/termkit/internal/screen"
	"github.com/go-termkit/termkit/internal/termio"
	"github.com/go-termkit/termkit/internal/widget"
)

// readChunk caps how many bytes a single idle poll drains from the child's
// combined output, preserving UI responsiveness per spec §5.
const readChunk = 1024

// TTerminal composes a generic window body around one ecma48.Emulator and
// one child process, rather than subclassing Window, matching the "compose
// rather than inherit" guidance for TTerminal/TEditor in the design notes.
type TTerminal struct {
	widget.Base

	mu      sync.Mutex
	emu     *ecma48.Emulator
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	stdout  io.ReadCloser
	offline bool

	chunks <-chan []byte
	errs   <-chan error

	// OnOffline, if set, is called once when the child exits or its
	// output pipe errors, so the hosting Window can annotate its title.
	OnOffline func(err error)
}

// Spawn starts `setsid /bin/bash -i` with stdin piped and stdout+stderr
// merged onto one pipe, and wires an ecma48.Emulator of the given size to
// consume its output.
func Spawn(width, height int) (*TTerminal, error) {
	t := &TTerminal{}
	t.emu = ecma48.New(width, height, ecma48.WithWriteRemote(t.writeToChild))

	cmd := exec.Command("setsid", "/bin/bash", "-i")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	t.cmd = cmd
	t.stdin = stdin
	t.stdout = stdout

	chunks := make(chan []byte)
	errs := make(chan error, 1)
	t.chunks = chunks
	t.errs = errs
	go pumpOutput(stdout, chunks, errs)

	return t, nil
}

// pumpOutput runs on its own goroutine, exactly like app.pumpInput does for
// the controlling terminal: it owns the blocking Read loop so the main
// loop's OnIdle never blocks waiting on the child. It touches no shared
// state directly, only the channels.
func pumpOutput(r io.Reader, chunks chan<- []byte, errs chan<- error) {
	buf := make([]byte, readChunk)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			cp := make([]byte, n)
			copy(cp, buf[:n])
			chunks <- cp
		}
		if err != nil {
			errs <- err
			close(chunks)
			return
		}
	}
}

// writeToChild is the emulator's writeRemote sink: device-status and
// cursor-position replies go back to the child exactly as a real pty
// would echo them.
func (t *TTerminal) writeToChild(b []byte) {
	if t.offline {
		return
	}
	_, _ = t.stdin.Write(b)
}

// Emulator returns the underlying emulator, e.g. for tests that want to
// assert on display contents directly.
func (t *TTerminal) Emulator() *ecma48.Emulator { return t.emu }

// Offline reports whether the child process has exited or its output
// pipe has failed.
func (t *TTerminal) Offline() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.offline
}

// OnIdle feeds at most one chunk (up to readChunk bytes) that pumpOutput
// has already buffered from the child's combined stdout/stderr pipe,
// polling with a zero timeout as
// required by the main loop's cooperative scheduling (spec §4.4/§5): it
// never itself blocks, since the goroutine started in Spawn owns the
// blocking Read.
func (t *TTerminal) OnIdle() {
	if t.Offline() {
		return
	}

	select {
	case data, ok := <-t.chunks:
		if !ok {
			select {
			case err := <-t.errs:
				t.goOffline(err)
			default:
			}
			return
		}
		t.feed(data)
	case err := <-t.errs:
		t.goOffline(err)
	default:
	}
}

// feed decodes the child's raw bytes one UTF-8 code point at a time and
// consumes them through the emulator, translating a lone LF to CRLF since
// no real TTY performs that translation for us without a pty line
// discipline.
func (t *TTerminal) feed(data []byte) {
	for len(data) > 0 {
		r, size := decodeRune(data)
		data = data[size:]
		if r == '\n' {
			t.emu.Consume('\r')
		}
		t.emu.Consume(r)
	}
}

// decodeRune is a minimal UTF-8 lead-byte length decoder matching the
// continuation-length table the termio reader uses on the controlling
// terminal's input, applied here to the child's output stream instead.
func decodeRune(b []byte) (rune, int) {
	first := b[0]
	var size int
	switch {
	case first < 0x80:
		return rune(first), 1
	case first&0xE0 == 0xC0:
		size = 2
	case first&0xF0 == 0xE0:
		size = 3
	case first&0xF8 == 0xF0:
		size = 4
	default:
		return rune(first), 1
	}
	if size > len(b) {
		return rune(first), 1
	}
	r := rune(first & (0xFF >> uint(size+1)))
	for i := 1; i < size; i++ {
		r = r<<6 | rune(b[i]&0x3F)
	}
	return r, size
}

func (t *TTerminal) goOffline(err error) {
	t.mu.Lock()
	if t.offline {
		t.mu.Unlock()
		return
	}
	t.offline = true
	t.mu.Unlock()

	_ = t.stdout.Close()
	if t.cmd.Process != nil {
		_ = t.cmd.Process.Kill()
		_, _ = t.cmd.Process.Wait()
	}

	if t.OnOffline != nil {
		t.OnOffline(err)
	}
}

// OnKey converts the keypress to the child's expected byte encoding via
// the emulator and writes it to stdin; writes to a closed/offline child
// are silently ignored per spec §7 category 3.
func (t *TTerminal) OnKey(k termio.Key) bool {
	if t.Offline() {
		return false
	}
	bytes := t.emu.Keypress(k)
	if len(bytes) == 0 {
		return false
	}
	_, _ = t.stdin.Write(bytes)
	return true
}

// OnResize propagates a window resize to the emulator's display grid.
func (t *TTerminal) OnResize(w, h int) {
	t.emu.Resize(w, h)
}

// OnClose sends a terminate signal to the child and reaps it, matching the
// Terminal Widget's documented close behavior (spec §4.4).
func (t *TTerminal) OnClose() {
	t.goOffline(nil)
}

// Draw renders the emulator's display grid into the screen at (0,0)
// relative to the caller's current offset/clip — the hosting Window sets
// those before calling Draw on its body tree.
func (t *TTerminal) Draw(s *screen.Screen) {
	lines := t.emu.Display()
	for y, line := range lines {
		for x := 0; x < s.Width(); x++ {
			if x >= cell.MaxLine {
				break
			}
			c := line.Cells[x]
			attr := c.Attr
			if line.ReverseColor {
				attr.Fg, attr.Bg = attr.Bg, attr.Fg
			}
			s.PutChar(x, y, c.Ch, attr)
		}
	}
}
