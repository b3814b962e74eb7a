package screen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-termkit/termkit/internal/cell"
)

// cup returns the cursor-position sequence for the given zero-based
// (row, col), emitted in the 1-based coordinates ECMA-48 CUP expects.
func cup(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row+1, col+1)
}

// sgrNormal resets all graphic rendition to the terminal's default.
func sgrNormal() string {
	return "\x1b[0m"
}

// fullClear erases the entire screen. Callers that need back-color-erase
// to behave predictably must emit sgrNormal first.
func fullClear() string {
	return "\x1b[2J"
}

// clearToBOL erases from the start of the line to the cursor, inclusive.
func clearToBOL() string {
	return "\x1b[1K"
}

// clearToEOL erases from the cursor to the end of the line, inclusive.
func clearToEOL() string {
	return "\x1b[K"
}

// sgrDelta returns the minimal SGR sequence needed to move the terminal's
// current graphic rendition from "from" to "to", or the empty string if no
// attribute differs.
func sgrDelta(from, to cell.Attributes) string {
	fgChanged := from.Fg != to.Fg
	bgChanged := from.Bg != to.Bg
	boldChanged := from.Bold != to.Bold
	blinkChanged := from.Blink != to.Blink

	if !fgChanged && !bgChanged && !boldChanged && !blinkChanged {
		return ""
	}

	if fgChanged && bgChanged && boldChanged && blinkChanged {
		params := []string{"0", strconv.Itoa(30 + int(to.Fg)), strconv.Itoa(40 + int(to.Bg))}
		if to.Bold {
			params = append(params, "1")
		}
		if to.Blink {
			params = append(params, "5")
		}
		return "\x1b[" + strings.Join(params, ";") + "m"
	}

	var params []string
	if fgChanged {
		params = append(params, strconv.Itoa(30+int(to.Fg)))
	}
	if bgChanged {
		params = append(params, strconv.Itoa(40+int(to.Bg)))
	}
	if boldChanged {
		if to.Bold {
			params = append(params, "1")
		} else {
			params = append(params, "22")
		}
	}
	if blinkChanged {
		if to.Blink {
			params = append(params, "5")
		} else {
			params = append(params, "25")
		}
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}
