// Package widget implements the uniform widget interface, the
// arena-indexed widget tree, windows, menus, and the built-in controls
// (buttons, labels, fields, checkboxes, radio groups, progress bars,
// trees, text views, and editors).
package widget

import (
	"github.com/go-termkit/termkit/internal/screen"
	"github.com/go-termkit/termkit/internal/termio"
)

// Widget is the uniform interface every tagged-variant node in the arena
// implements. TWindow, TText, TTreeView, and TTerminal compose a base
// widget rather than inheriting from it.
type Widget interface {
	Draw(s *screen.Screen)
	OnMouseDown(x, y int, btn termio.MouseButton) bool
	OnMouseUp(x, y int, btn termio.MouseButton) bool
	OnMouseMotion(x, y int, btn termio.MouseButton) bool
	OnKey(k termio.Key) bool
	OnResize(w, h int)
	OnClose()
	OnIdle()
}

// Base provides no-op implementations of every Widget method, to be
// embedded by concrete widgets that only need to override a few hooks.
type Base struct{}

func (Base) Draw(*screen.Screen)                                 {}
func (Base) OnMouseDown(int, int, termio.MouseButton) bool        { return false }
func (Base) OnMouseUp(int, int, termio.MouseButton) bool          { return false }
func (Base) OnMouseMotion(int, int, termio.MouseButton) bool      { return false }
func (Base) OnKey(termio.Key) bool                                { return false }
func (Base) OnResize(int, int)                                    {}
func (Base) OnClose()                                             {}
func (Base) OnIdle()                                              {}
