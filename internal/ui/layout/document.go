package layout

import (
	"errors"
	"fmt"

	"scrollsync/internal/domain"
	"scrollsync/internal/eventbus"
)

var (
	ErrDuplicateID   = errors.New("duplicate element id")
	ErrUnknownParent = errors.New("unknown parent element")
)

// Document is the element tree of the terminal screen. It routes input to
// elements through the event bus and tracks which element has focus.
type Document struct {
	bus     eventbus.EventBus
	root    *Box
	boxes   map[string]*Box
	focused *Box
	pressed *Box

	width  int
	height int
}

// NewDocument creates a document whose root carries the document target id
func NewDocument(bus eventbus.EventBus) *Document {
	root := newBox(eventbus.DocumentTarget, nil)
	return &Document{
		bus:   bus,
		root:  root,
		boxes: map[string]*Box{root.id: root},
	}
}

// Append adds a box under parentID
func (d *Document) Append(parentID, id string) (*Box, error) {
	if _, exists := d.boxes[id]; exists || id == eventbus.WindowTarget {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	parent, ok := d.boxes[parentID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParent, parentID)
	}
	b := newBox(id, parent)
	d.boxes[id] = b
	return b, nil
}

func (d *Document) Root() *Box {
	return d.root
}

// Box looks up a box by id
func (d *Document) Box(id string) (*Box, bool) {
	b, ok := d.boxes[id]
	return b, ok
}

// ElementByID implements the coordinator's element lookup
func (d *Document) ElementByID(id string) (domain.Element, bool) {
	b, ok := d.boxes[id]
	if !ok {
		return nil, false
	}
	return b, true
}

// Focus moves focus to el. Elements that are not part of this document
// clear focus.
func (d *Document) Focus(el domain.Element) {
	if el == nil {
		d.focused = nil
		return
	}
	d.focused = d.boxes[el.ID()]
}

// Focused returns the focused box or nil
func (d *Document) Focused() *Box {
	return d.focused
}

// FocusedID returns the focused box id, or "" when nothing has focus
func (d *Document) FocusedID() string {
	if d.focused == nil {
		return ""
	}
	return d.focused.id
}

// FocusNext moves focus to the next focusable box in tree order, wrapping
func (d *Document) FocusNext() {
	var order []*Box
	walk(d.root, func(b *Box) {
		if b.Focusable() {
			order = append(order, b)
		}
	})
	if len(order) == 0 {
		d.focused = nil
		return
	}
	for i, b := range order {
		if b == d.focused {
			d.focused = order[(i+1)%len(order)]
			return
		}
	}
	d.focused = order[0]
}

// HitTest returns the innermost box containing the cell, honouring the
// clip of every ancestor. It returns nil outside the document.
func (d *Document) HitTest(x, y float64) *Box {
	if !d.root.Bounds().Contains(x, y) {
		return nil
	}
	return hit(d.root, x, y)
}

func hit(b *Box, x, y float64) *Box {
	// Later children paint over earlier ones
	for i := len(b.children) - 1; i >= 0; i-- {
		child := b.children[i]
		if child.Bounds().Contains(x, y) {
			return hit(child, x, y)
		}
	}
	return b
}

// SetSize resizes the root to the terminal
func (d *Document) SetSize(width, height int) {
	d.width, d.height = width, height
	d.root.SetFrame(domain.Rect{W: float64(width), H: float64(height)})
}

// Size returns the terminal size last given to SetSize
func (d *Document) Size() (int, int) {
	return d.width, d.height
}

func walk(b *Box, fn func(*Box)) {
	fn(b)
	for _, c := range b.children {
		walk(c, fn)
	}
}
