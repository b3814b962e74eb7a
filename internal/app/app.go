// Package app implements the single-threaded cooperative main loop: read
// input, decode it to events, dispatch to the focused window, idle-poll
// every window, and flush the screen if anything changed.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-termkit/termkit/internal/screen"
	"github.com/go-termkit/termkit/internal/termio"
	"github.com/go-termkit/termkit/internal/widget"
)

// Logger is the minimal logging surface library packages accept, exactly
// as the teacher's own Logger interface: a single Printf-shaped method so
// any structured logger (or none) can satisfy it without this package
// importing a concrete logging library.
type Logger interface {
	Printf(format string, v ...any)
}

// NoopLogger discards every message, matching the teacher's Noop*
// provider pattern for optional dependencies.
type NoopLogger struct{}

func (NoopLogger) Printf(string, ...any) {}

// idlePollInterval bounds how long Run blocks waiting for the next input
// byte before running an idle tick; it is not a feature timeout, only the
// loop's responsiveness budget (spec §5's "small poll/select").
const idlePollInterval = 25 * time.Millisecond

// App owns the screen, the window stack, and the input decoder — the
// three pieces of process-wide shared state the spec's concurrency model
// says only the main loop may mutate.
type App struct {
	Screen  *screen.Screen
	Decoder *termio.Decoder
	Logger  Logger

	out io.Writer

	windows []*widget.Window
	focus   int

	input  <-chan rune
	ioErrs <-chan error
}

// New builds an App that reads decoded UTF-8 code points from in and
// writes flushed output to out. Reading happens on a dedicated goroutine
// that does nothing but push code points onto a channel; it never touches
// screen, window, or decoder state, so the single-threaded ownership
// model in spec §5 still holds for everything that matters.
func New(in io.Reader, out io.Writer, width, height int, logger Logger) *App {
	if logger == nil {
		logger = NoopLogger{}
	}
	a := &App{
		Screen:  screen.New(width, height),
		Decoder: termio.NewDecoder(),
		Logger:  logger,
		out:     out,
		focus:   -1,
	}

	runeCh := make(chan rune, 256)
	errCh := make(chan error, 1)
	a.input = runeCh
	a.ioErrs = errCh

	go pumpInput(in, runeCh, errCh)

	return a
}

func pumpInput(in io.Reader, out chan<- rune, errs chan<- error) {
	reader := termio.NewCodepointReader(in)
	for {
		r, _, err := reader.ReadRune()
		if err != nil {
			errs <- err
			close(out)
			return
		}
		out <- r
	}
}

// AddWindow pushes a window onto the front of the stack and focuses it.
func (a *App) AddWindow(w *widget.Window) {
	for _, existing := range a.windows {
		existing.Focused = false
	}
	a.windows = append(a.windows, w)
	a.focus = len(a.windows) - 1
	w.Focused = true
}

// FocusedWindow returns the currently focused window, or nil if the
// stack is empty.
func (a *App) FocusedWindow() *widget.Window {
	if a.focus < 0 || a.focus >= len(a.windows) {
		return nil
	}
	return a.windows[a.focus]
}

// CycleFocus moves focus to the next (dir=1) or previous (dir=-1) window
// in the stack, bringing it to the front of the draw order.
func (a *App) CycleFocus(dir int) {
	if len(a.windows) < 2 {
		return
	}
	cur := a.FocusedWindow()
	if cur != nil {
		cur.Focused = false
	}
	a.focus = (a.focus + dir + len(a.windows)) % len(a.windows)
	a.windows[a.focus].Focused = true
}

// CloseFocused calls OnClose on the focused window and removes it from
// the stack.
func (a *App) CloseFocused() {
	if a.focus < 0 || a.focus >= len(a.windows) {
		return
	}
	win := a.windows[a.focus]
	win.OnClose()
	a.windows = append(a.windows[:a.focus], a.windows[a.focus+1:]...)
	if a.focus >= len(a.windows) {
		a.focus = len(a.windows) - 1
	}
	if a.focus >= 0 {
		a.windows[a.focus].Focused = true
	}
}

// Run drives the main loop until ctx is canceled or the input stream
// ends. It returns a non-nil error only for unrecoverable input-stream
// failures (spec §7, category 2); a canceled context returns nil.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(idlePollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-a.ioErrs:
			return fmt.Errorf("controlling terminal input: %w", err)

		case r, ok := <-a.input:
			if !ok {
				return nil
			}
			a.dispatchRune(r)
			a.drainAvailable()
			a.tick()

		case <-ticker.C:
			a.tick()
		}
	}
}

// drainAvailable consumes any further code points already buffered on
// the input channel without blocking, so a pasted burst or an escape
// sequence is decoded in one tick rather than one event per idle wakeup.
func (a *App) drainAvailable() {
	for {
		select {
		case r, ok := <-a.input:
			if !ok {
				return
			}
			a.dispatchRune(r)
		default:
			return
		}
	}
}

func (a *App) dispatchRune(r rune) {
	now := time.Now()
	events := a.Decoder.Feed(r, now)
	for _, ev := range events {
		a.dispatch(ev)
	}
}

// tick runs the bare-ESC timeout check, calls OnIdle on every window
// back to front, and flushes the screen if anything is dirty.
func (a *App) tick() {
	for _, ev := range a.Decoder.CheckEscTimeout(time.Now()) {
		a.dispatch(ev)
	}

	anyDirty := false
	for _, w := range a.windows {
		w.OnIdle()
		if w.Dirty {
			anyDirty = true
		}
	}
	if anyDirty {
		a.Screen.Reset()
	}

	a.draw()

	if a.Screen.Dirty() {
		if _, err := a.out.Write(a.Screen.Flush()); err != nil {
			a.Logger.Printf("write to controlling terminal: %v", err)
		}
	}
}

// draw renders every window back-to-front; the focused window is last in
// the stack's draw order on top of everything else, per spec §5.
func (a *App) draw() {
	for _, w := range a.windows {
		if w.Dirty || a.Screen.Dirty() {
			w.Draw(a.Screen)
			w.Dirty = false
		}
	}
}

// dispatch hit-tests mouse events against the window stack (front to
// back, first match wins) and routes keypresses to the focused window.
func (a *App) dispatch(ev termio.InputEvent) {
	switch ev.Type {
	case termio.EventKeypress:
		if w := a.FocusedWindow(); w != nil {
			w.OnKey(ev.Key)
		}
	case termio.EventMouseDown, termio.EventMouseUp, termio.EventMouseMotion:
		a.dispatchMouse(ev)
	}
}

func (a *App) dispatchMouse(ev termio.InputEvent) {
	for i := len(a.windows) - 1; i >= 0; i-- {
		w := a.windows[i]
		if ev.AbsoluteX < w.X || ev.AbsoluteX >= w.X+w.Width ||
			ev.AbsoluteY < w.Y || ev.AbsoluteY >= w.Y+w.Height {
			continue
		}
		if i != a.focus {
			if cur := a.FocusedWindow(); cur != nil {
				cur.Focused = false
			}
			a.focus = i
			w.Focused = true
		}
		localX, localY := ev.AbsoluteX-w.X, ev.AbsoluteY-w.Y
		switch ev.Type {
		case termio.EventMouseDown:
			w.OnMouseDown(localX, localY, ev.Button)
		case termio.EventMouseUp:
			w.OnMouseUp(localX, localY, ev.Button)
		case termio.EventMouseMotion:
			w.OnMouseMotion(localX, localY, ev.Button)
		}
		return
	}
}
