package coordinator

import (
	"github.com/charmbracelet/bubbles/key"

	"scrollsync/internal/domain"
)

// keyMap holds the thumb's key bindings for one axis
type keyMap struct {
	Back    key.Binding
	Forward key.Binding
	Home    key.Binding
	End     key.Binding
}

func newKeyMap(axis domain.Axis) keyMap {
	km := keyMap{
		Home: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "start")),
		End:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "end")),
	}
	if axis == domain.Vertical {
		km.Back = key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "step up"))
		km.Forward = key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "step down"))
	} else {
		km.Back = key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "step left"))
		km.Forward = key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "step right"))
	}
	return km
}

// KeyBindings returns the bindings active while the thumb has focus
func (c *Coordinator) KeyBindings() []key.Binding {
	return []key.Binding{c.keys.Back, c.keys.Forward, c.keys.Home, c.keys.End}
}

func (c *Coordinator) onKeyDown(ev domain.Event) {
	ke, ok := ev.(*domain.KeyEvent)
	if !ok || c.destroyed {
		return
	}

	switch {
	case key.Matches(ke, c.keys.Back):
		c.setRatio(c.ratio - c.stepRatio())
	case key.Matches(ke, c.keys.Forward):
		c.setRatio(c.ratio + c.stepRatio())
	case key.Matches(ke, c.keys.Home):
		c.setRatio(0)
	case key.Matches(ke, c.keys.End):
		c.setRatio(1)
	default:
		return
	}
	ke.PreventDefault()
}

// stepRatio is one keyboard step expressed as a ratio. A track the thumb
// fills has no travel, so the step is zero.
func (c *Coordinator) stepRatio() float64 {
	travel := c.measure().Travel()
	if travel <= 0 {
		return 0
	}
	return c.stepSize / travel
}
