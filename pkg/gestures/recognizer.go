package gestures

import (
	"math"
	"time"
)

// DefaultTouchSlop is the distance in pixels a pointer must travel
// before a drag is recognized.
const DefaultTouchSlop = 18.0

// velocity smoothing weights; exponential smoothing keeps fling
// detection stable against jittery input samples.
const (
	velocityKeep  = 0.8
	velocityBlend = 0.2
)

// VerticalDragRecognizer recognizes predominantly vertical drags from a
// raw pointer stream. A gesture is recognized only once the pointer
// travels past the touch slop with vertical movement dominating
// horizontal movement; horizontal-dominant gestures are rejected so the
// sheet never hijacks horizontal swipes.
//
// ShouldAccept, when set, is consulted once at recognition time with the
// total vertical delta and may veto the gesture, letting the host's own
// handlers take it instead.
type VerticalDragRecognizer struct {
	ShouldAccept func(totalDelta float64) bool
	OnStart      func(DragStartDetails)
	OnUpdate     func(DragUpdateDetails)
	OnEnd        func(DragEndDetails)
	OnCancel     func()

	pointer  int64     // current pointer being tracked
	startX   float64   // initial touch position
	startY   float64
	lastX    float64   // most recent touch position
	lastY    float64
	lastTime time.Time // timestamp of last sample (for velocity)
	velocity float64   // smoothed vertical velocity in px/s
	slop     float64   // minimum distance before recognizing a drag
	tracking bool      // true between down and up/cancel
	accepted bool      // true once the gesture is recognized as ours
	rejected bool      // true once the gesture is given away
	started  bool      // true after OnStart has been called
}

// NewVerticalDragRecognizer creates a recognizer with the default slop.
func NewVerticalDragRecognizer() *VerticalDragRecognizer {
	return &VerticalDragRecognizer{slop: DefaultTouchSlop}
}

// AddPointer begins tracking a pointer from its down event.
func (r *VerticalDragRecognizer) AddPointer(event PointerEvent) {
	r.pointer = event.PointerID
	r.startX = event.X
	r.startY = event.Y
	r.lastX = event.X
	r.lastY = event.Y
	r.lastTime = event.timestamp()
	r.velocity = 0
	if r.slop <= 0 {
		r.slop = DefaultTouchSlop
	}
	r.tracking = true
	r.accepted = false
	r.rejected = false
	r.started = false
}

// HandleEvent processes a move, up, or cancel event for the tracked
// pointer. Events for other pointers or rejected gestures are ignored.
func (r *VerticalDragRecognizer) HandleEvent(event PointerEvent) {
	if !r.tracking || event.PointerID != r.pointer || r.rejected {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		r.handleMove(event)
	case PointerPhaseUp:
		r.handleUp(event)
	case PointerPhaseCancel:
		r.handleCancel()
	}
}

// handleMove decides acceptance once the slop is exceeded and tracks
// velocity for fling detection.
func (r *VerticalDragRecognizer) handleMove(event PointerEvent) {
	now := event.timestamp()
	dt := now.Sub(r.lastTime).Seconds()

	totalX := event.X - r.startX
	totalY := event.Y - r.startY
	primary := math.Abs(totalY)
	orthogonal := math.Abs(totalX)

	if !r.accepted {
		if primary > r.slop && primary >= orthogonal {
			// Vertical movement dominant: ask the veto callback
			shouldAccept := true
			if r.ShouldAccept != nil {
				shouldAccept = r.ShouldAccept(totalY)
			}
			if shouldAccept {
				r.accepted = true
				r.ensureStarted()
			} else {
				r.rejected = true
				return
			}
		} else if orthogonal > r.slop {
			// Horizontal movement dominant: likely a horizontal swipe
			r.rejected = true
			return
		}
	}

	deltaY := event.Y - r.lastY
	if dt > 0 {
		inst := deltaY / dt
		r.velocity = r.velocity*velocityKeep + inst*velocityBlend
	}

	if r.accepted && r.OnUpdate != nil {
		r.OnUpdate(DragUpdateDetails{
			X:            event.X,
			Y:            event.Y,
			DeltaY:       deltaY,
			TranslationY: totalY,
			VelocityY:    r.velocity,
		})
	}

	r.lastX = event.X
	r.lastY = event.Y
	r.lastTime = now
}

func (r *VerticalDragRecognizer) handleUp(event PointerEvent) {
	r.tracking = false
	if !r.accepted {
		return
	}
	if r.OnEnd != nil {
		r.OnEnd(DragEndDetails{
			TranslationY: event.Y - r.startY,
			VelocityY:    r.velocity,
		})
	}
}

func (r *VerticalDragRecognizer) handleCancel() {
	r.tracking = false
	if r.accepted && r.OnCancel != nil {
		r.OnCancel()
	}
	r.rejected = true
}

func (r *VerticalDragRecognizer) ensureStarted() {
	if r.started {
		return
	}
	r.started = true
	if r.OnStart != nil {
		r.OnStart(DragStartDetails{X: r.startX, Y: r.startY})
	}
}
