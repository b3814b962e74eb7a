package termio

// KeyCode names a non-printable key. A Key with Code == KeyNone carries a
// plain code point in Ch instead.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPgUp
	KeyPgDn
	KeyHome
	KeyEnd
	KeyIns
	KeyDel
	KeyTab
	KeyBTab
	KeyEnter
	KeyEsc
	KeyBackspace
)

// Key is a single decoded keypress: either a named key (Code != KeyNone) or
// a bare code point (Ch), with modifier flags.
type Key struct {
	Code  KeyCode
	Ch    rune
	Shift bool
	Alt   bool
	Ctrl  bool
}

// IsNamed reports whether this key carries a named KeyCode rather than a
// bare code point.
func (k Key) IsNamed() bool {
	return k.Code != KeyNone
}
