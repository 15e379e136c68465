package coordinator

import (
	"math"
	"strconv"

	"scrollsync/internal/domain"
)

// Geometry is a snapshot of the four extents along the active axis. It is
// measured fresh for every operation and never kept.
type Geometry struct {
	Track    float64
	Thumb    float64
	Viewport float64
	Content  float64
}

// Travel is how far the thumb can move inside the track
func (g Geometry) Travel() float64 {
	return g.Track - g.Thumb
}

// Overflow is how far the content can move behind the viewport
func (g Geometry) Overflow() float64 {
	return g.Content - g.Viewport
}

// ThumbPosition maps ratio to the thumb offset inside the track
func (g Geometry) ThumbPosition(ratio float64) float64 {
	travel := g.Travel()
	if travel <= 0 {
		return 0
	}
	return ratio * travel
}

// ContentPosition maps ratio to the content offset inside the viewport
func (g Geometry) ContentPosition(ratio float64) float64 {
	overflow := g.Overflow()
	if overflow <= 0 {
		return 0
	}
	return -ratio * overflow
}

// ThumbExtent is the track scaled by the visible share of the content
func (g Geometry) ThumbExtent() float64 {
	if g.Content <= 0 {
		return g.Track
	}
	return g.Track * math.Min(g.Viewport/g.Content, 1)
}

// measure reads the current extents. The first content element is the
// reference; the rest follow it in lockstep.
func (c *Coordinator) measure() Geometry {
	ax := c.opts.Axis
	return Geometry{
		Track:    c.track.Bounds().Extent(ax),
		Thumb:    c.thumb.Bounds().Extent(ax),
		Viewport: c.viewport.Bounds().Extent(ax),
		Content:  c.contents[0].Bounds().Extent(ax),
	}
}

// sizeThumb sets the thumb extent and recomputes the keyboard step
func (c *Coordinator) sizeThumb() {
	g := c.measure()
	c.thumb.SetStyle(c.opts.Axis.ExtentProp(), g.ThumbExtent())
	c.stepSize = g.Track / float64(c.opts.KeyboardSteps)
}

// apply writes every output derived from ratio. It never changes c.ratio.
func (c *Coordinator) apply(ratio float64) {
	g := c.measure()
	offset := c.opts.Axis.OffsetProp()

	c.thumb.SetStyle(offset, g.ThumbPosition(ratio))
	pos := g.ContentPosition(ratio)
	for _, el := range c.contents {
		el.SetStyle(offset, pos)
	}
	c.thumb.SetAttr(domain.AttrValueNow, strconv.Itoa(percent(ratio)))

	if c.opts.OnScroll != nil {
		c.opts.OnScroll(ratio)
	}
}

func clamp(r float64) float64 {
	switch {
	case math.IsNaN(r), r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}

func percent(ratio float64) int {
	return int(math.Round(ratio * 100))
}
