package domain

// EventType represents the type of input event
type EventType string

// Event types
const (
	EventPointerDown EventType = "pointerdown"
	EventPointerMove EventType = "pointermove"
	EventPointerUp   EventType = "pointerup"
	EventClick       EventType = "click"
	EventKeyDown     EventType = "keydown"
	EventResize      EventType = "resize"
)

// Event is the interface for all input events dispatched through the document
type Event interface {
	Type() EventType
	Target() Element
	PreventDefault()
	DefaultPrevented() bool
}

// base carries the target and default-action state shared by every event
type base struct {
	target    Element
	prevented bool
}

func (b *base) Target() Element        { return b.target }
func (b *base) PreventDefault()        { b.prevented = true }
func (b *base) DefaultPrevented() bool { return b.prevented }

// PointerKind distinguishes mouse and touch input
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

// Button identifies the pressed mouse button
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
	ButtonNone
)

// PointerEvent is emitted on press, move and release
type PointerEvent struct {
	base
	typ    EventType
	Kind   PointerKind
	Button Button
	X, Y   float64
}

// NewPointerEvent creates a pointer event of the given type
func NewPointerEvent(t EventType, target Element, x, y float64) *PointerEvent {
	return &PointerEvent{base: base{target: target}, typ: t, X: x, Y: y}
}

func (e *PointerEvent) Type() EventType { return e.typ }

// Coord returns the pointer coordinate along the axis
func (e *PointerEvent) Coord(a Axis) float64 {
	if a == Vertical {
		return e.Y
	}
	return e.X
}

// ClickEvent is synthesised when a release lands on the press target
type ClickEvent struct {
	base
	X, Y float64
}

// NewClickEvent creates a click event
func NewClickEvent(target Element, x, y float64) *ClickEvent {
	return &ClickEvent{base: base{target: target}, X: x, Y: y}
}

func (e *ClickEvent) Type() EventType { return EventClick }

// Coord returns the click coordinate along the axis
func (e *ClickEvent) Coord(a Axis) float64 {
	if a == Vertical {
		return e.Y
	}
	return e.X
}

// KeyEvent is emitted on key-down to the focused element
type KeyEvent struct {
	base
	Key string // key name as bubbletea spells it: "left", "home", "a"
}

// NewKeyEvent creates a key-down event
func NewKeyEvent(target Element, name string) *KeyEvent {
	return &KeyEvent{base: base{target: target}, Key: name}
}

func (e *KeyEvent) Type() EventType { return EventKeyDown }

// String satisfies fmt.Stringer so key bindings can match the event directly
func (e *KeyEvent) String() string { return e.Key }

// ResizeEvent is emitted to the window when the terminal size changes
type ResizeEvent struct {
	base
	Width  int
	Height int
}

// NewResizeEvent creates a window resize event
func NewResizeEvent(width, height int) *ResizeEvent {
	return &ResizeEvent{Width: width, Height: height}
}

func (e *ResizeEvent) Type() EventType { return EventResize }
