package coordinator

import (
	"scrollsync/internal/domain"
	"scrollsync/internal/eventbus"
)

// dragSession lives from a press on the thumb to the matching release
type dragSession struct {
	last       float64 // pointer coordinate at the previous event
	startThumb float64 // thumb offset when the press landed
	moveID     eventbus.ListenerID
	upID       eventbus.ListenerID
}

func (c *Coordinator) onPointerDown(ev domain.Event) {
	pe, ok := ev.(*domain.PointerEvent)
	if !ok || c.destroyed || c.drag != nil {
		return
	}
	if pe.Kind == domain.PointerMouse && pe.Button != domain.ButtonPrimary {
		return
	}

	pe.PreventDefault()
	g := c.measure()
	c.drag = &dragSession{
		last:       pe.Coord(c.opts.Axis),
		startThumb: g.ThumbPosition(c.ratio),
	}
	// Document-level so the drag keeps going once the pointer leaves the thumb
	c.drag.moveID = c.bus.Subscribe(eventbus.DocumentTarget, domain.EventPointerMove, c.handlers.pointerMove)
	c.drag.upID = c.bus.Subscribe(eventbus.DocumentTarget, domain.EventPointerUp, c.handlers.pointerUp)

	c.logf("drag start at %.1f (thumb %.1f)", c.drag.last, c.drag.startThumb)
	if c.opts.OnDragStart != nil {
		c.opts.OnDragStart()
	}
}

func (c *Coordinator) onPointerMove(ev domain.Event) {
	pe, ok := ev.(*domain.PointerEvent)
	if !ok || c.destroyed || c.drag == nil {
		return
	}

	current := pe.Coord(c.opts.Axis)
	delta := c.drag.last - current
	c.drag.last = current

	g := c.measure()
	travel := g.Travel()
	if travel <= 0 {
		return
	}
	c.setRatio((g.ThumbPosition(c.ratio) - delta) / travel)
}

func (c *Coordinator) onPointerUp(ev domain.Event) {
	if c.destroyed || c.drag == nil {
		return
	}
	c.stopDrag(true)
}

// stopDrag tears down the drag session and its document listeners
func (c *Coordinator) stopDrag(notify bool) {
	if c.drag == nil {
		return
	}
	c.bus.Unsubscribe(c.drag.moveID)
	c.bus.Unsubscribe(c.drag.upID)
	start := c.drag.startThumb
	c.drag = nil

	if !notify {
		return
	}
	c.logf("drag end (thumb %.1f -> ratio %.3f)", start, c.ratio)
	if c.opts.OnDragEnd != nil {
		c.opts.OnDragEnd()
	}
}
