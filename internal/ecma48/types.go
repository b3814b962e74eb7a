// Package ecma48 implements the byte-level VT100/VT102/VT220/XTerm parser
// state machine: it turns a child process's output byte stream into
// DisplayLine mutations and turns structured keypresses into the byte
// strings a real terminal would send.
package ecma48

import "github.com/go-termkit/termkit/internal/cell"

// DeviceType selects which device-ID reply and keypad/arrow-key encodings
// the emulator uses.
type DeviceType int

const (
	VT100 DeviceType = iota
	VT102
	VT220
	XTERM
)

// CharacterSet names one of the charsets a G0..G3 slot can hold.
type CharacterSet int

const (
	CharsetUSASCII CharacterSet = iota
	CharsetUK
	CharsetDECLineDrawing
	CharsetDECSupplemental
	CharsetROM
	CharsetROMSpecial
	CharsetVT52Graphics
	CharsetNRCDutch
	CharsetNRCFinnish
	CharsetNRCFrench
	CharsetNRCFrenchCanadian
	CharsetNRCGerman
	CharsetNRCItalian
	CharsetNRCSwedish
)

// ArrowKeyMode selects the byte encoding keypress() uses for arrow keys
// and HOME/END.
type ArrowKeyMode int

const (
	ArrowKeyANSI ArrowKeyMode = iota
	ArrowKeyVT52
	ArrowKeyVT100
)

// KeypadMode selects numeric vs application keypad encoding.
type KeypadMode int

const (
	KeypadNumeric KeypadMode = iota
	KeypadApplication
)

// parserState names one of the ~15 byte-level parser states from the
// canonical "Parsing ANSI escape codes" state table.
type parserState int

const (
	stGround parserState = iota
	stEscape
	stEscapeIntermediate
	stCSIEntry
	stCSIParam
	stCSIIntermediate
	stCSIIgnore
	stDCSEntry
	stDCSIntermediate
	stDCSParam
	stDCSPassthrough
	stDCSIgnore
	stOSCString
	stSOSPMAPCString
	stVT52DirectCursorAddress
)

// region is an inclusive [top, bottom] scroll region in display-row
// indices.
type region struct {
	top, bottom int
}

// cursor is the emulator's visible cursor position, zero-based.
type cursor struct {
	x, y int
}

// SaveableState is the subset of emulator state covered by DECSC/DECRC.
type SaveableState struct {
	OriginMode  bool
	Cursor      cursor
	G           [4]CharacterSet
	GR          int // index 0..3 into G, selected for the GR slot
	Attr        cell.Attributes
	LockshiftGL int
	LockshiftGR int
}
