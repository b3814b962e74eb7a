package cell

// MaxLine is the fixed width of a DisplayLine, independent of the terminal's
// configured column count.
const MaxLine = 256

// DoubleHeight selects which half of a double-height line a DisplayLine
// represents.
type DoubleHeight int

const (
	// DoubleHeightNone is a normal single-height line.
	DoubleHeightNone DoubleHeight = iota
	// DoubleHeightTop is the top half of a double-height pair.
	DoubleHeightTop
	// DoubleHeightBottom is the bottom half of a double-height pair.
	DoubleHeightBottom
)

// DisplayLine is a fixed-size row of cells plus line-level rendering flags.
// ReverseColor is captured at construction time from the emulator's current
// reverse-video mode so scrollback lines retain the colors they were
// written with, independent of later mode changes.
type DisplayLine struct {
	Cells        [MaxLine]Cell
	DoubleWidth  bool
	DoubleHeight DoubleHeight
	ReverseColor bool
}

// NewDisplayLine returns a line of blank cells, stamped with the given
// reverse-video state.
func NewDisplayLine(reverse bool) DisplayLine {
	line := DisplayLine{ReverseColor: reverse}
	for i := range line.Cells {
		line.Cells[i] = Blank
	}
	return line
}

// Reset blanks every cell and clears the line-level flags, re-stamping
// ReverseColor from the given value.
func (l *DisplayLine) Reset(reverse bool) {
	for i := range l.Cells {
		l.Cells[i] = Blank
	}
	l.DoubleWidth = false
	l.DoubleHeight = DoubleHeightNone
	l.ReverseColor = reverse
}

// Clone returns a deep copy (DisplayLine contains only a fixed array, so
// normal assignment already copies, but Clone documents intent at call
// sites that move a line into scrollback storage).
func (l DisplayLine) Clone() DisplayLine {
	return l
}
