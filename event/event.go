package event

import "fmt"

// Event is one unit of user or windowing-system input. Events are consumed
// by the dispatcher as soon as they are retrieved.
type Event interface{}

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyQ
	KeyF
	KeyP
	KeySpace
	KeyM
	KeyKPMultiply
	Key0
	KeyKPDivide
	Key9
	KeyS
	KeyA
	KeyV
	KeyC
	KeyT
	KeyW
	KeyPageUp
	KeyPageDown
	KeyLeft
	KeyRight
	KeyUp
	KeyArrowDown
)

var keyNames = map[Key]string{
	KeyUnknown:    "unknown",
	KeyEscape:     "escape",
	KeyQ:          "q",
	KeyF:          "f",
	KeyP:          "p",
	KeySpace:      "space",
	KeyM:          "m",
	KeyKPMultiply: "keypad *",
	Key0:          "0",
	KeyKPDivide:   "keypad /",
	Key9:          "9",
	KeyS:          "s",
	KeyA:          "a",
	KeyV:          "v",
	KeyC:          "c",
	KeyT:          "t",
	KeyW:          "w",
	KeyPageUp:     "page up",
	KeyPageDown:   "page down",
	KeyLeft:       "left",
	KeyRight:      "right",
	KeyUp:         "up",
	KeyArrowDown:  "down",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

type KeyDown struct {
	Key Key
	// Sym is the raw platform key symbol, Name its platform label.
	Sym  int32
	Name string
}

type MouseButtonDown struct {
	Button uint8
	X, Y   int32
}

type MouseMotion struct {
	X, Y int32
}

type WindowKind int

const (
	WindowOther WindowKind = iota
	WindowShown
	WindowExposed
	WindowResized
	WindowSizeChanged
	WindowFocusGained
	WindowFocusLost
	WindowClose
)

type Window struct {
	Kind         WindowKind
	Data1, Data2 int32
}

// Quit is the windowing system asking the application to close.
type Quit struct{}

// ApplicationQuit is a quit request raised by the application itself, e.g.
// on an OS signal.
type ApplicationQuit struct{}

// Other carries any event type the shell does not classify.
type Other struct {
	Type uint32
}
