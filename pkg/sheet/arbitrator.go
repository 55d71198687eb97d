package sheet

import "github.com/go-drift/sheet/pkg/errors"

// Phase identifies a stage of a gesture fed to the controller.
type Phase int

const (
	// PhaseBegin opens a gesture session.
	PhaseBegin Phase = iota
	// PhaseChanged carries a movement sample of an active gesture.
	PhaseChanged
	// PhaseEnded closes a gesture and resolves the next position.
	PhaseEnded
	// PhaseCancelled is treated identically to PhaseEnded, finalizing
	// with the last known translation and velocity.
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "begin"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "invalid"
	}
}

// gestureSession holds per-gesture arbitration state. It exists only
// between PhaseBegin and PhaseEnded/PhaseCancelled, making the
// one-gesture-at-a-time invariant explicit.
type gestureSession struct {
	// ownsSheet is true once the gesture has been attributed to the
	// sheet frame rather than the content scroll. Ownership never
	// reverts within a gesture.
	ownsSheet bool
	// startScrollOffset is the content offset the scroll view is pinned
	// to while the sheet owns the movement.
	startScrollOffset float64
	// translation is the accumulated drag distance attributed to the
	// sheet, positive downward.
	translation float64
}

// FeedGestureSample feeds one gesture event into the arbitrator.
//
// translation is the cumulative vertical movement since the gesture
// began (positive = finger moved down), velocity the vertical speed in
// px/s with the same sign, and scrollOffset the embedded content's
// current scroll offset. Samples for phases other than PhaseBegin are
// ignored when no gesture is active.
func (c *Controller) FeedGestureSample(phase Phase, translation, velocity, scrollOffset float64) {
	switch phase {
	case PhaseBegin:
		c.session = &gestureSession{startScrollOffset: scrollOffset}
	case PhaseChanged:
		if c.session == nil {
			reportOrphanSample(phase)
			return
		}
		c.arbitrate(translation, scrollOffset)
	case PhaseEnded, PhaseCancelled:
		if c.session == nil {
			reportOrphanSample(phase)
			return
		}
		c.finishGesture(velocity)
	}
}

// arbitrate decides, for one movement sample, whether the sheet or the
// content scroll owns the gesture.
//
// The sheet owns the movement outright when the current position does
// not allow scrolling, when scroll handoff is disabled, or once the
// session has already claimed it. Otherwise the sheet claims ownership
// the moment a downward drag arrives with the content at its top.
// Anything else belongs to the native scroll.
func (c *Controller) arbitrate(dy, scrollOffset float64) {
	s := c.session

	if !c.position.ScrollEnabled() || c.cfg.DisableScrollAtTop || s.ownsSheet {
		s.ownsSheet = true
		s.translation = dy
		c.setDragOffset(dy)
		c.pinScroll(s.startScrollOffset)
		return
	}

	if dy > 0 && scrollOffset <= 0 {
		// Content is at its top and the finger moves down: the sheet
		// takes over from here.
		s.ownsSheet = true
		s.startScrollOffset = 0
		s.translation = dy
		c.setDragOffset(dy)
		c.pinScroll(0)
		return
	}

	// Native scroll keeps the gesture.
	s.translation = 0
}

// finishGesture resolves the gesture through the position resolver when
// the sheet owns it; a scroll-owned gesture keeps its native momentum
// and the sheet does nothing. The session is discarded either way.
func (c *Controller) finishGesture(velocity float64) {
	s := c.session
	c.session = nil

	if !s.ownsSheet {
		return
	}

	target := c.findTarget(s.translation, velocity)
	c.setDragOffset(0)
	c.applyPosition(target, true)
}

// pinScroll forces the attached content scroll to a fixed offset,
// suppressing scroll motion while the sheet owns the gesture.
func (c *Controller) pinScroll(offset float64) {
	if c.scrollController == nil {
		return
	}
	if c.scrollController.Offset() != offset {
		c.scrollController.JumpTo(offset)
	}
}

func reportOrphanSample(phase Phase) {
	errors.Report(&errors.SheetError{
		Op:   "sheet.FeedGestureSample(" + phase.String() + ")",
		Kind: errors.KindGesture,
		Err:  errors.ErrNoSession,
	})
}
