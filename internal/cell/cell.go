// Package cell defines the unit of screen content shared by the screen
// compositor, the ECMA-48 emulator, and the widget layer.
package cell

// Color is one of the eight indexed ANSI colors.
type Color uint8

// Indexed colors. Bold applied to a foreground color yields the bright
// variant on standard terminals; the index itself never changes.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Attributes are the non-glyph rendering properties of a Cell.
type Attributes struct {
	Fg    Color
	Bg    Color
	Bold  bool
	Blink bool
}

// DefaultAttributes is white-on-black, not bold, not blinking.
var DefaultAttributes = Attributes{Fg: White, Bg: Black}

// Cell is a single glyph plus its rendering attributes.
type Cell struct {
	Ch   rune
	Attr Attributes
}

// Blank is the cell produced by a reset: a space in DefaultAttributes.
var Blank = Cell{Ch: ' ', Attr: DefaultAttributes}

// New returns a freshly reset cell.
func New() Cell {
	return Blank
}

// Reset restores the cell to its freshly-constructed state.
func (c *Cell) Reset() {
	*c = Blank
}

// Equal reports structural equality across glyph and all attribute fields.
func (c Cell) Equal(other Cell) bool {
	return c == other
}

// IsBlank reports whether the cell equals the default reset cell.
func (c Cell) IsBlank() bool {
	return c == Blank
}
