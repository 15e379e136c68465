package coordinator

import (
	"errors"
	"fmt"
	"time"

	"scrollsync/internal/domain"
	"scrollsync/internal/eventbus"
)

var (
	// ErrElementNotFound is returned when an element id does not resolve
	ErrElementNotFound = errors.New("element not found")
	// ErrNoContent is returned when no content element ids are given
	ErrNoContent = errors.New("at least one content element is required")
	// ErrNilDependency is returned when document, bus or scheduler is nil
	ErrNilDependency = errors.New("nil dependency")
)

// Document resolves element ids and owns input focus
type Document interface {
	ElementByID(id string) (domain.Element, bool)
	Focus(el domain.Element)
}

// Scheduler runs fn once after d unless cancelled first
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// Options configures a Coordinator. Start from DefaultOptions.
type Options struct {
	TrackID    string
	ThumbID    string
	ViewportID string
	ContentIDs []string

	Axis          domain.Axis
	KeyboardSteps int
	TrackClick    bool
	AutoResize    bool
	ResizeDelay   time.Duration

	OnScroll    func(ratio float64)
	OnDragStart func()
	OnDragEnd   func()

	// Logf receives debug output; nil discards it
	Logf func(format string, args ...interface{})
}

const (
	DefaultKeyboardSteps = 50
	DefaultResizeDelay   = 100 * time.Millisecond
)

// DefaultOptions returns the options a bare control uses
func DefaultOptions() Options {
	return Options{
		Axis:          domain.Horizontal,
		KeyboardSteps: DefaultKeyboardSteps,
		TrackClick:    true,
		AutoResize:    true,
		ResizeDelay:   DefaultResizeDelay,
	}
}

// Coordinator keeps a thumb, its track and one or more content elements in
// sync with a single scroll ratio in [0,1].
type Coordinator struct {
	opts  Options
	doc   Document
	bus   eventbus.EventBus
	sched Scheduler

	track    domain.Element
	thumb    domain.Element
	viewport domain.Element
	contents []domain.Element

	ratio    float64
	stepSize float64

	keys      keyMap
	handlers  *handlerSet
	listeners []eventbus.ListenerID
	drag      *dragSession

	cancelResize func()
	destroyed    bool
}

// New resolves the elements named in opts and attaches the input adapters.
// It is the only fallible step of a coordinator's life.
func New(doc Document, bus eventbus.EventBus, sched Scheduler, opts Options) (*Coordinator, error) {
	if doc == nil || bus == nil || sched == nil {
		return nil, ErrNilDependency
	}
	if len(opts.ContentIDs) == 0 {
		return nil, ErrNoContent
	}
	if opts.KeyboardSteps <= 0 {
		opts.KeyboardSteps = DefaultKeyboardSteps
	}
	if opts.ResizeDelay < 0 {
		opts.ResizeDelay = DefaultResizeDelay
	}

	c := &Coordinator{
		opts:  opts,
		doc:   doc,
		bus:   bus,
		sched: sched,
		keys:  newKeyMap(opts.Axis),
	}

	var err error
	if c.track, err = resolve(doc, opts.TrackID); err != nil {
		return nil, err
	}
	if c.thumb, err = resolve(doc, opts.ThumbID); err != nil {
		return nil, err
	}
	if c.viewport, err = resolve(doc, opts.ViewportID); err != nil {
		return nil, err
	}
	for _, id := range opts.ContentIDs {
		el, err := resolve(doc, id)
		if err != nil {
			return nil, err
		}
		c.contents = append(c.contents, el)
	}

	c.thumb.SetAttr(domain.AttrRole, "slider")
	c.thumb.SetAttr(domain.AttrTabIndex, "0")
	c.thumb.SetAttr(domain.AttrValueMin, "0")
	c.thumb.SetAttr(domain.AttrValueMax, "100")
	c.thumb.SetAttr(domain.AttrOrientation, opts.Axis.String())

	c.handlers = newHandlerSet(c)
	c.attach()

	c.sizeThumb()
	c.apply(c.ratio)
	return c, nil
}

func resolve(doc Document, id string) (domain.Element, error) {
	el, ok := doc.ElementByID(id)
	if !ok || el == nil {
		return nil, fmt.Errorf("%w: %q", ErrElementNotFound, id)
	}
	return el, nil
}

// ScrollTo moves to ratio, clamped to [0,1]
func (c *Coordinator) ScrollTo(ratio float64) {
	if c.destroyed {
		return
	}
	c.setRatio(ratio)
}

// ScrollToOffset scrolls so content pixel px sits at the viewport centre
func (c *Coordinator) ScrollToOffset(px float64) {
	if c.destroyed {
		return
	}
	g := c.measure()
	overflow := g.Overflow()
	if overflow <= 0 {
		c.setRatio(0)
		return
	}
	c.setRatio((px - g.Viewport/2) / overflow)
}

// Update re-measures the thumb and step size and reapplies the current ratio
func (c *Coordinator) Update() {
	if c.destroyed {
		return
	}
	c.sizeThumb()
	c.apply(c.ratio)
}

// Ratio returns the current scroll position in [0,1]
func (c *Coordinator) Ratio() float64 {
	return c.ratio
}

// IsDragging reports whether a pointer drag is in progress
func (c *Coordinator) IsDragging() bool {
	return c.drag != nil
}

// Axis returns the axis fixed at construction
func (c *Coordinator) Axis() domain.Axis {
	return c.opts.Axis
}

// StepSize returns the keyboard step in cells
func (c *Coordinator) StepSize() float64 {
	return c.stepSize
}

// Focus moves input focus to the thumb
func (c *Coordinator) Focus() {
	if c.destroyed {
		return
	}
	c.doc.Focus(c.thumb)
}

// Destroy detaches every listener, cancels a pending resize and drops the
// element references. Calling it again does nothing.
func (c *Coordinator) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true

	c.stopDrag(false)
	c.detach()
	if c.cancelResize != nil {
		c.cancelResize()
		c.cancelResize = nil
	}

	c.track = nil
	c.thumb = nil
	c.viewport = nil
	c.contents = nil
	c.logf("coordinator destroyed")
}

// setRatio clamps r and applies it. Every input path funnels through here.
func (c *Coordinator) setRatio(r float64) {
	c.ratio = clamp(r)
	c.apply(c.ratio)
}

func (c *Coordinator) logf(format string, args ...interface{}) {
	if c.opts.Logf != nil {
		c.opts.Logf(format, args...)
	}
}
