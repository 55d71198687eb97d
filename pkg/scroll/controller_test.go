package scroll

import "testing"

func TestController_SetOffsetNotifies(t *testing.T) {
	c := &Controller{}
	calls := 0
	c.AddListener(func() { calls++ })

	c.SetOffset(40)
	if c.Offset() != 40 {
		t.Errorf("Offset() = %f, want 40", c.Offset())
	}
	if calls != 1 {
		t.Errorf("Expected 1 listener call, got %d", calls)
	}

	// Same value: no notification
	c.SetOffset(40)
	if calls != 1 {
		t.Errorf("Unchanged offset should not notify, got %d calls", calls)
	}
}

func TestController_SetOffsetAllowsOverscroll(t *testing.T) {
	c := &Controller{}
	c.SetExtents(0, 500)
	c.SetOffset(-12)
	if c.Offset() != -12 {
		t.Errorf("SetOffset should store overscroll values, got %f", c.Offset())
	}
	if !c.AtTop() {
		t.Error("AtTop should be true while overscrolled above the top")
	}
}

func TestController_JumpToClamps(t *testing.T) {
	c := &Controller{}
	c.SetExtents(0, 500)

	c.JumpTo(-50)
	if c.Offset() != 0 {
		t.Errorf("JumpTo(-50) should clamp to 0, got %f", c.Offset())
	}
	c.JumpTo(900)
	if c.Offset() != 500 {
		t.Errorf("JumpTo(900) should clamp to 500, got %f", c.Offset())
	}
}

func TestController_SetExtentsOrdersBounds(t *testing.T) {
	c := &Controller{}
	c.SetExtents(100, 50)
	c.JumpTo(900)
	if c.Offset() != 100 {
		t.Errorf("Inverted extents should collapse to min, got %f", c.Offset())
	}
}

func TestController_RemoveListener(t *testing.T) {
	c := &Controller{}
	calls := 0
	remove := c.AddListener(func() { calls++ })
	remove()
	c.SetOffset(10)
	if calls != 0 {
		t.Errorf("Removed listener should not fire, got %d calls", calls)
	}
}

func TestController_NilListener(t *testing.T) {
	c := &Controller{}
	remove := c.AddListener(nil)
	remove() // must not panic
	c.SetOffset(5)
}
