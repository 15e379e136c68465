package coordinator

import "scrollsync/internal/domain"

// onResize restarts the debounce window. Only the last resize of a burst
// re-measures.
func (c *Coordinator) onResize(ev domain.Event) {
	if c.destroyed {
		return
	}
	if c.cancelResize != nil {
		c.cancelResize()
	}
	c.cancelResize = c.sched.Schedule(c.opts.ResizeDelay, c.handlers.remeasure)
}

func (c *Coordinator) onResizeSettled() {
	c.cancelResize = nil
	if c.destroyed {
		return
	}
	c.sizeThumb()
	c.apply(c.ratio)
	c.logf("resize settled: step %.2f, ratio %.3f", c.stepSize, c.ratio)
}
