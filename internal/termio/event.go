package termio

// EventType names the kind of input event produced by the decoder.
type EventType int

const (
	EventKeypress EventType = iota
	EventMouseDown
	EventMouseUp
	EventMouseMotion
)

// MouseButton enumerates the five buttons the decoder can report.
type MouseButton int

const (
	MouseNone MouseButton = iota
	Mouse1
	Mouse2
	Mouse3
	MouseWheelUp
	MouseWheelDown
)

// InputEvent is a single decoded unit of terminal input. For mouse events
// the decoder sets both X/Y and AbsoluteX/Y to the terminal-relative
// coordinates; the dispatcher computes window-relative coordinates
// separately and does not rewrite X/Y.
type InputEvent struct {
	Type EventType
	Key  Key

	Button    MouseButton
	X, Y      int
	AbsoluteX int
	AbsoluteY int
}
