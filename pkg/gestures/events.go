// Package gestures converts raw pointer-event streams into the drag
// samples the sheet engine consumes.
package gestures

import "time"

// PointerPhase identifies a stage of a pointer's lifecycle.
type PointerPhase int

const (
	// PointerPhaseDown begins tracking a pointer.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove carries pointer movement.
	PointerPhaseMove
	// PointerPhaseUp lifts the pointer.
	PointerPhaseUp
	// PointerPhaseCancel aborts the pointer (system takeover, palm
	// rejection, window loss).
	PointerPhaseCancel
)

// PointerEvent is one raw input sample from the host.
type PointerEvent struct {
	// PointerID distinguishes concurrent pointers.
	PointerID int64
	// X, Y is the pointer position in the host's coordinate space,
	// Y growing downward.
	X, Y float64
	// Phase is the pointer lifecycle stage.
	Phase PointerPhase
	// Time is when the event occurred. A zero value means now; tests
	// set it explicitly to control velocity computation.
	Time time.Time
}

func (e PointerEvent) timestamp() time.Time {
	if e.Time.IsZero() {
		return time.Now()
	}
	return e.Time
}

// DragStartDetails describes the start of a recognized vertical drag.
type DragStartDetails struct {
	// X, Y is the initial touch position.
	X, Y float64
}

// DragUpdateDetails describes one movement sample of a recognized drag.
type DragUpdateDetails struct {
	// X, Y is the current pointer position.
	X, Y float64
	// DeltaY is the vertical movement since the previous sample.
	DeltaY float64
	// TranslationY is the cumulative vertical movement since the drag
	// began, positive downward.
	TranslationY float64
	// VelocityY is the smoothed vertical velocity in px/s.
	VelocityY float64
}

// DragEndDetails describes the release of a recognized drag.
type DragEndDetails struct {
	// TranslationY is the total vertical movement of the drag.
	TranslationY float64
	// VelocityY is the smoothed vertical velocity at release in px/s.
	VelocityY float64
}
