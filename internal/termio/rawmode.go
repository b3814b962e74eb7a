package termio

import (
	"os"

	"golang.org/x/term"
)

// TTY owns the raw-mode acquisition/restore cycle and the window-size query
// for the controlling terminal.
type TTY struct {
	fd       int
	oldState *term.State
}

// NewTTY binds to the given file's descriptor, typically os.Stdin.
func NewTTY(f *os.File) *TTY {
	return &TTY{fd: int(f.Fd())}
}

// EnterRaw disables canonical mode, echo, signal generation, and output
// processing, matching the fidelity the spec requires for the controlling
// terminal. It is idempotent; a second call without an intervening Restore
// is a no-op.
func (t *TTY) EnterRaw() error {
	if t.oldState != nil {
		return nil
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return err
	}
	t.oldState = state
	return nil
}

// Restore puts the terminal back into the mode captured by EnterRaw. Safe
// to call when EnterRaw was never called or already restored.
func (t *TTY) Restore() error {
	if t.oldState == nil {
		return nil
	}
	err := term.Restore(t.fd, t.oldState)
	t.oldState = nil
	return err
}

// Size queries the physical column/row count of the controlling terminal.
func (t *TTY) Size() (cols, rows int, err error) {
	return term.GetSize(t.fd)
}

// IsTerminal reports whether the bound descriptor is an interactive
// terminal rather than a redirected file or pipe.
func (t *TTY) IsTerminal() bool {
	return term.IsTerminal(t.fd)
}

// EnableMouseAndMeta returns the initialization sequence that turns on
// xterm any-event mouse tracking (1003), UTF-8 extended coordinates
// (1005), the alternate screen (1049), and meta-sends-escape.
func EnableMouseAndMeta() string {
	return "\x1b[?1003;1005h\x1b[>2p\x1b[?1049h\x1b[?1036h\x1b[?1034l"
}

// DisableMouseAndMeta is the teardown sequence for EnableMouseAndMeta,
// restoring the primary screen and turning tracking back off.
func DisableMouseAndMeta() string {
	return "\x1b[?1049l\x1b[?1003;1005l"
}
