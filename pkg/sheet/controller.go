package sheet

import (
	"github.com/go-drift/sheet/pkg/dispatch"
	"github.com/go-drift/sheet/pkg/scroll"
)

// PositionListener receives resolved or programmatic position changes.
// animated is a rendering hint: true when the host should animate the
// transition to the new position.
type PositionListener func(position Position, animated bool)

// DragOffsetListener receives the live sheet offset while a gesture is
// attributed to the sheet. The offset is the accumulated downward
// translation in pixels, and resets to zero when the gesture resolves.
type DragOffsetListener func(offset float64)

// Controller owns a sheet's position state and arbitrates gestures
// between sheet dragging and content scrolling.
//
// All methods must be called from the host's single UI/update context;
// the controller performs no locking. Input callbacks arriving off that
// context should be routed through the dispatch package.
type Controller struct {
	cfg       Config
	positions []Position // configured positions sorted ascending by ratio

	position        Position
	dragOffset      float64
	containerHeight float64

	session *gestureSession

	scrollController *scroll.Controller
	scrollRemove     func()

	positionListeners map[int]PositionListener
	dragListeners     map[int]DragOffsetListener
	nextListener      int
}

// NewController creates a controller for the given configuration.
// It fails when the configuration has no positions.
func NewController(cfg Config) (*Controller, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	cfg = normalizeConfig(cfg)
	return &Controller{
		cfg:       cfg,
		positions: sortPositions(cfg.Positions),
		position:  cfg.Initial,
	}, nil
}

// Position returns the current snap position.
func (c *Controller) Position() Position {
	return c.position
}

// DragOffset returns the live drag offset of the in-progress gesture,
// or zero when idle.
func (c *Controller) DragOffset() float64 {
	return c.dragOffset
}

// Positions returns the configured positions sorted ascending by
// height ratio.
func (c *Controller) Positions() []Position {
	result := make([]Position, len(c.positions))
	copy(result, c.positions)
	return result
}

// ScrollEnabled reports whether the embedded content should scroll
// natively at the current position. Hosts use this to toggle their
// scroll view.
func (c *Controller) ScrollEnabled() bool {
	return c.position.ScrollEnabled()
}

// SetContainerHeight records the container height in pixels. Hosts call
// this from layout; the resolver needs it to convert drag distances to
// height fractions.
func (c *Controller) SetContainerHeight(height float64) {
	if height < 0 {
		height = 0
	}
	c.containerHeight = height
}

// SetPosition programmatically moves the sheet. A gesture in flight is
// discarded without resolving: explicit position changes take precedence
// over touch input. The animated flag is forwarded untouched to position
// listeners.
func (c *Controller) SetPosition(position Position, animated bool) {
	if c.session != nil {
		c.session = nil
		c.setDragOffset(0)
	}
	if position.SameHeight(c.position) {
		c.position = position
		return
	}
	c.position = position
	c.notifyPosition(position, animated)
}

// AddPositionListener registers a callback for position changes.
// The returned function removes the listener.
func (c *Controller) AddPositionListener(listener PositionListener) func() {
	if listener == nil {
		return func() {}
	}
	if c.positionListeners == nil {
		c.positionListeners = make(map[int]PositionListener)
	}
	id := c.nextListener
	c.nextListener++
	c.positionListeners[id] = listener
	return func() {
		delete(c.positionListeners, id)
	}
}

// AddDragOffsetListener registers a callback for live drag offsets.
// The returned function removes the listener.
func (c *Controller) AddDragOffsetListener(listener DragOffsetListener) func() {
	if listener == nil {
		return func() {}
	}
	if c.dragListeners == nil {
		c.dragListeners = make(map[int]DragOffsetListener)
	}
	id := c.nextListener
	c.nextListener++
	c.dragListeners[id] = listener
	return func() {
		delete(c.dragListeners, id)
	}
}

// AttachScrollable binds the embedded content's scroll controller so
// the engine can pin scrolling while the sheet owns a gesture, and
// clamp elastic overscroll above the content top while idle.
// The returned function detaches it.
func (c *Controller) AttachScrollable(controller *scroll.Controller) func() {
	if controller == nil {
		return func() {}
	}
	if c.scrollRemove != nil {
		c.scrollRemove()
	}
	c.scrollController = controller
	remove := controller.AddListener(func() {
		c.clampIdleOverscroll()
	})
	c.scrollRemove = remove
	return func() {
		if c.scrollRemove != nil {
			c.scrollRemove()
			c.scrollRemove = nil
		}
		if c.scrollController == controller {
			c.scrollController = nil
		}
	}
}

// clampIdleOverscroll pulls a negative content offset back to zero when
// no sheet-owned drag is active. Without this the content rubber-bands
// above its true top while the sheet itself sits still.
func (c *Controller) clampIdleOverscroll() {
	if c.scrollController == nil {
		return
	}
	if c.session != nil && c.session.ownsSheet {
		return
	}
	if c.scrollController.Offset() < 0 {
		c.scrollController.JumpTo(0)
	}
}

// applyPosition commits a resolved target and notifies on change.
func (c *Controller) applyPosition(target Position, animated bool) {
	if target.SameHeight(c.position) {
		c.position = target
		return
	}
	c.position = target
	c.notifyPosition(target, animated)
}

func (c *Controller) notifyPosition(position Position, animated bool) {
	for _, listener := range c.positionListeners {
		listener(position, animated)
	}
}

// setDragOffset updates the live drag offset and delivers it to
// listeners on the UI tick. Delivery falls back to a synchronous call
// when no dispatcher is registered.
func (c *Controller) setDragOffset(offset float64) {
	if offset == c.dragOffset {
		return
	}
	c.dragOffset = offset
	for _, listener := range c.dragListeners {
		l := listener
		if !dispatch.Dispatch(func() { l(offset) }) {
			l(offset)
		}
	}
}
