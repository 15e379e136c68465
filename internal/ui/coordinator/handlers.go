package coordinator

import (
	"scrollsync/internal/domain"
	"scrollsync/internal/eventbus"
)

// handlerSet holds the adapter callbacks. It is built once per coordinator so
// the same identities are used to attach and to detach.
type handlerSet struct {
	pointerDown eventbus.EventHandler
	pointerMove eventbus.EventHandler
	pointerUp   eventbus.EventHandler
	keyDown     eventbus.EventHandler
	trackClick  eventbus.EventHandler
	resize      eventbus.EventHandler
	remeasure   func()
}

func newHandlerSet(c *Coordinator) *handlerSet {
	return &handlerSet{
		pointerDown: c.onPointerDown,
		pointerMove: c.onPointerMove,
		pointerUp:   c.onPointerUp,
		keyDown:     c.onKeyDown,
		trackClick:  c.onTrackClick,
		resize:      c.onResize,
		remeasure:   c.onResizeSettled,
	}
}

// attach registers the construction-time listeners
func (c *Coordinator) attach() {
	thumb := c.thumb.ID()
	c.listen(thumb, domain.EventPointerDown, c.handlers.pointerDown)
	c.listen(thumb, domain.EventKeyDown, c.handlers.keyDown)
	if c.opts.TrackClick {
		c.listen(c.track.ID(), domain.EventClick, c.handlers.trackClick)
	}
	if c.opts.AutoResize {
		c.listen(eventbus.WindowTarget, domain.EventResize, c.handlers.resize)
	}
}

func (c *Coordinator) listen(target string, t domain.EventType, h eventbus.EventHandler) {
	c.listeners = append(c.listeners, c.bus.Subscribe(target, t, h))
}

// detach removes every construction-time listener exactly once
func (c *Coordinator) detach() {
	for _, id := range c.listeners {
		c.bus.Unsubscribe(id)
	}
	c.listeners = nil
}
