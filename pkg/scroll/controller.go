// Package scroll tracks the vertical scroll position of a sheet's
// embedded content.
//
// The host's native scroll view remains the source of truth for scroll
// motion; it reports offsets here via SetOffset, and the sheet engine
// reads and occasionally forces the offset while arbitrating gestures.
package scroll

// Controller stores the content scroll offset and extents and notifies
// listeners of changes.
type Controller struct {
	offset    float64
	min       float64
	max       float64
	listeners map[int]func()
	nextID    int
}

// Offset returns the current scroll offset. Negative values indicate
// elastic overscroll above the content's top.
func (c *Controller) Offset() float64 {
	return c.offset
}

// SetExtents updates the min/max scroll extents.
func (c *Controller) SetExtents(min, max float64) {
	if max < min {
		max = min
	}
	c.min = min
	c.max = max
}

// SetOffset records an offset reported by the host's scroll view.
// The value is stored as reported, including overscroll past the
// extents, so observers can see elastic motion.
func (c *Controller) SetOffset(value float64) {
	if value == c.offset {
		return
	}
	c.offset = value
	c.notifyListeners()
}

// JumpTo programmatically moves the content to an offset, clamped to the
// extents. Used by the sheet engine to pin or reset content scrolling
// while the sheet owns a gesture.
func (c *Controller) JumpTo(value float64) {
	c.SetOffset(clamp(value, c.min, c.max))
}

// AtTop reports whether the content is at or above its top edge.
func (c *Controller) AtTop() bool {
	return c.offset <= c.min
}

// AddListener registers a callback for offset changes.
// The returned function removes the listener.
func (c *Controller) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	if c.listeners == nil {
		c.listeners = make(map[int]func())
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = listener
	return func() {
		delete(c.listeners, id)
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
