// Command termkitdemo exercises the full toolkit stack end to end: it
// loads user configuration, puts the controlling terminal into raw mode,
// opens a menu bar and one embedded terminal window hosting a shell, and
// runs the main loop until the user quits.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-termkit/termkit/internal/app"
	"github.com/go-termkit/termkit/internal/config"
	"github.com/go-termkit/termkit/internal/termio"
	"github.com/go-termkit/termkit/internal/theme"
	"github.com/go-termkit/termkit/internal/widget"
	"github.com/go-termkit/termkit/internal/widget/vtwidget"
)

var (
	initialWidth  int
	initialHeight int
	debugLog      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "termkitdemo",
		Short: "A demo text-mode desktop built on the termkit toolkit",
		Long: `termkitdemo exercises the termkit windowing toolkit end to end:
a menu bar, a handful of widgets, and one embedded terminal window running
an interactive shell.`,
		Example: `  # Run the demo at the terminal's current size
  termkitdemo

  # Run the demo at a fixed geometry, useful over a pipe or in CI
  termkitdemo --width 100 --height 30`,
		RunE: runDemo,
	}

	rootCmd.Flags().IntVar(&initialWidth, "width", 0, "initial columns (0 = query the terminal)")
	rootCmd.Flags().IntVar(&initialHeight, "height", 0, "initial rows (0 = query the terminal)")
	rootCmd.Flags().BoolVar(&debugLog, "debug", false, "enable debug-level logging to stderr")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if debugLog {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Appearance.Theme != "" {
		logger.Debugf("theme override %q requested; built-in theme table has no named registry yet, using default", cfg.Appearance.Theme)
	}
	theme.Set(theme.Default)

	tty := termio.NewTTY(os.Stdin)
	if err := tty.EnterRaw(); err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer tty.Restore()

	width, height := initialWidth, initialHeight
	if width == 0 || height == 0 {
		if qw, qh, err := tty.Size(); err == nil {
			width, height = qw, qh
		} else {
			width, height = 80, 24
		}
	}

	fmt.Fprint(os.Stdout, termio.EnableMouseAndMeta())
	defer fmt.Fprint(os.Stdout, termio.DisableMouseAndMeta())

	a := app.New(os.Stdin, os.Stdout, width, height, logger)
	style := theme.ForWindow()
	windowStyle := widget.Style{
		Border:      style.Border,
		FocusBorder: style.FocusBorder,
		Title:       style.Title,
		Body:        style.Body,
	}

	panelHeight := 8
	panel := buildControlPanel(a, width, panelHeight)
	panel.Style = windowStyle
	a.AddWindow(panel)

	term, err := vtwidget.Spawn(width-2, height-panelHeight-3)
	if err != nil {
		return fmt.Errorf("spawn embedded shell: %w", err)
	}
	shell := widget.NewWindow("shell", 0, panelHeight, width, height-panelHeight, term)
	shell.Style = windowStyle
	shell.SetOnClose(func() { term.OnClose() })
	a.AddWindow(shell)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		logger.Errorf("main loop exited: %v", err)
		return err
	}
	return nil
}

// buildControlPanel wires a menu bar and a handful of widgets into one
// window, for manual smoke-testing of the non-terminal parts of the
// toolkit (spec §2's "Widgets/Application" row).
func buildControlPanel(a *app.App, width, height int) *widget.Window {
	bar := widget.NewMenuBar(0, width-2)
	bar.SetStyle(widget.Style{
		Border: theme.Current().BorderUnfocused,
		Title:  theme.Current().MenuBar,
	})
	bar.AddMenu("Window", &widget.Menu{
		Items: []widget.MenuItem{
			{Label: "Next", OnActivate: func() { a.CycleFocus(1) }},
			{Label: "Previous", OnActivate: func() { a.CycleFocus(-1) }},
			{Label: "Close", OnActivate: func() { a.CloseFocused() }},
		},
	})

	progress := widget.NewProgressBar(0, 4, 30)
	progress.SetFraction(0.4)

	panel := widget.NewWindow("control panel", 0, 0, width, height, widget.NewLabel(0, 0, ""))
	panel.Add(bar)
	panel.Add(widget.NewLabel(0, 2, "termkit demo — F10 opens the menu, Tab switches focus"))
	panel.Add(widget.NewCheckbox(0, 3, "wrap long lines"))
	panel.Add(progress)
	panel.Add(widget.NewButton(0, 5, 12, "Quit", func() { os.Exit(0) }))
	return panel
}
