package layout

import (
	tea "github.com/charmbracelet/bubbletea"

	"scrollsync/internal/domain"
	"scrollsync/internal/eventbus"
)

// HandleMouse translates a bubbletea mouse message into pointer events.
// A release over the box that received the press also produces a click.
// It reports whether a listener prevented the default action.
func (d *Document) HandleMouse(msg tea.MouseMsg) bool {
	if tea.MouseEvent(msg).IsWheel() {
		return false
	}

	// Cells are addressed by their centre
	x, y := float64(msg.X)+0.5, float64(msg.Y)+0.5
	target := d.HitTest(x, y)

	switch msg.Action {
	case tea.MouseActionPress:
		ev := domain.NewPointerEvent(domain.EventPointerDown, elementOf(target), x, y)
		ev.Button = buttonOf(msg.Button)
		d.pressed = target
		d.dispatch(target, ev)
		if !ev.DefaultPrevented() {
			d.focused = focusableAncestor(target)
		}
		return ev.DefaultPrevented()

	case tea.MouseActionMotion:
		ev := domain.NewPointerEvent(domain.EventPointerMove, elementOf(target), x, y)
		ev.Button = buttonOf(msg.Button)
		d.dispatch(target, ev)
		return ev.DefaultPrevented()

	case tea.MouseActionRelease:
		ev := domain.NewPointerEvent(domain.EventPointerUp, elementOf(target), x, y)
		ev.Button = buttonOf(msg.Button)
		d.dispatch(target, ev)

		pressed := d.pressed
		d.pressed = nil
		if target != nil && target == pressed {
			click := domain.NewClickEvent(target, x, y)
			d.dispatch(target, click)
		}
		return ev.DefaultPrevented()
	}
	return false
}

// HandleKey delivers a key-down to the focused box, or to the document when
// nothing has focus. A false result means the key is free for the app keymap.
func (d *Document) HandleKey(msg tea.KeyMsg) bool {
	ev := domain.NewKeyEvent(elementOf(d.focused), msg.String())
	d.dispatch(d.focused, ev)
	return ev.DefaultPrevented()
}

// HandleResize resizes the document and notifies window listeners. Callers
// relayout before calling it so listeners measure the new geometry.
func (d *Document) HandleResize(msg tea.WindowSizeMsg) {
	d.SetSize(msg.Width, msg.Height)
	d.bus.Dispatch([]string{eventbus.WindowTarget}, domain.NewResizeEvent(msg.Width, msg.Height))
}

// dispatch bubbles ev from target to the document root
func (d *Document) dispatch(target *Box, ev domain.Event) {
	path := []string{eventbus.DocumentTarget}
	if target != nil {
		path = target.path()
	}
	d.bus.Dispatch(path, ev)
}

func elementOf(b *Box) domain.Element {
	if b == nil {
		return nil
	}
	return b
}

func focusableAncestor(b *Box) *Box {
	for cur := b; cur != nil; cur = cur.parent {
		if cur.Focusable() {
			return cur
		}
	}
	return nil
}

func buttonOf(b tea.MouseButton) domain.Button {
	switch b {
	case tea.MouseButtonLeft:
		return domain.ButtonPrimary
	case tea.MouseButtonRight:
		return domain.ButtonSecondary
	case tea.MouseButtonMiddle:
		return domain.ButtonMiddle
	default:
		return domain.ButtonNone
	}
}
