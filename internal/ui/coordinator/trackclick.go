package coordinator

import "scrollsync/internal/domain"

// onTrackClick jumps to the clicked position. Clicks that land on the thumb
// end a drag gesture and are ignored.
func (c *Coordinator) onTrackClick(ev domain.Event) {
	ce, ok := ev.(*domain.ClickEvent)
	if !ok || c.destroyed {
		return
	}
	if domain.IsWithin(ce.Target(), c.thumb) {
		return
	}

	bounds := c.track.Bounds()
	extent := bounds.Extent(c.opts.Axis)
	if extent <= 0 {
		return
	}
	c.setRatio((ce.Coord(c.opts.Axis) - bounds.Start(c.opts.Axis)) / extent)
}
