// Package theme provides the named color/style table consumed by the
// widget layer: borders, titles, focus highlight, and menu highlight are
// all looked up by role rather than by raw escape codes. Windows copy
// their style when they are built, so swapping the active Theme affects
// only windows styled after the swap.
package theme

import "github.com/go-termkit/termkit/internal/cell"

// Theme is a named table of cell.Attributes keyed by widget role. Unlike
// the teacher's truecolor/image.Color palette, every field here is one of
// the eight indexed colors the emulator and screen compositor actually
// support (spec §6's color model).
type Theme struct {
	Name string

	BorderUnfocused cell.Attributes
	BorderFocused   cell.Attributes
	BorderModal     cell.Attributes

	TitleUnfocused cell.Attributes
	TitleFocused   cell.Attributes

	Body         cell.Attributes
	Disabled     cell.Attributes
	MenuBar      cell.Attributes
	MenuHighlight cell.Attributes

	StatusBar cell.Attributes
}

// Default is the built-in theme used when no user config overrides it.
var Default = Theme{
	Name:            "default",
	BorderUnfocused: cell.Attributes{Fg: cell.White, Bg: cell.Black},
	BorderFocused:   cell.Attributes{Fg: cell.Yellow, Bg: cell.Black, Bold: true},
	BorderModal:     cell.Attributes{Fg: cell.White, Bg: cell.Red, Bold: true},
	TitleUnfocused:  cell.Attributes{Fg: cell.Black, Bg: cell.White},
	TitleFocused:    cell.Attributes{Fg: cell.Black, Bg: cell.Yellow, Bold: true},
	Body:            cell.Attributes{Fg: cell.White, Bg: cell.Blue},
	Disabled:        cell.Attributes{Fg: cell.Black, Bg: cell.Blue},
	MenuBar:         cell.Attributes{Fg: cell.Black, Bg: cell.White},
	MenuHighlight:   cell.Attributes{Fg: cell.White, Bg: cell.Black, Bold: true},
	StatusBar:       cell.Attributes{Fg: cell.Black, Bg: cell.Cyan},
}

// current is the process-wide active theme; Set installs a new one,
// mirroring the teacher's single active-tint-registry model without
// pulling in a third-party tint registry, since the spec's palette is
// fixed at eight indexed colors rather than an open theme catalog.
var current = Default

// Set installs t as the active theme.
func Set(t Theme) { current = t }

// Current returns the active theme.
func Current() Theme { return current }

// WindowStyle adapts the active theme's roles into the widget package's
// Style shape, carrying both the unfocused and the focused border.
type WindowStyle struct {
	Border      cell.Attributes
	FocusBorder cell.Attributes
	Title       cell.Attributes
	Body        cell.Attributes
}

// ForWindow returns the style roles a Window needs from the active theme.
func ForWindow() WindowStyle {
	t := current
	return WindowStyle{
		Border:      t.BorderUnfocused,
		FocusBorder: t.BorderFocused,
		Title:       t.TitleFocused,
		Body:        t.Body,
	}
}
