package sheet

import "github.com/go-drift/sheet/pkg/gestures"

// GestureDriver connects a raw pointer stream to a Controller. It runs
// a vertical drag recognizer over the host's pointer events and feeds
// the recognized samples into the controller's arbitrator, reading the
// content scroll offset from the attached scroll controller (or a
// custom source) at each sample.
type GestureDriver struct {
	controller   *Controller
	recognizer   *gestures.VerticalDragRecognizer
	scrollOffset func() float64

	lastTranslation float64
	lastVelocity    float64
}

// NewGestureDriver creates a driver feeding the given controller.
// scrollOffset supplies the embedded content's current offset per
// sample; pass nil when there is no scrollable content.
func NewGestureDriver(controller *Controller, scrollOffset func() float64) *GestureDriver {
	d := &GestureDriver{
		controller:   controller,
		scrollOffset: scrollOffset,
	}
	rec := gestures.NewVerticalDragRecognizer()
	rec.OnStart = d.onStart
	rec.OnUpdate = d.onUpdate
	rec.OnEnd = d.onEnd
	rec.OnCancel = d.onCancel
	d.recognizer = rec
	return d
}

// HandlePointer routes one raw pointer event through the recognizer.
func (d *GestureDriver) HandlePointer(event gestures.PointerEvent) {
	if event.Phase == gestures.PointerPhaseDown {
		d.recognizer.AddPointer(event)
		return
	}
	d.recognizer.HandleEvent(event)
}

func (d *GestureDriver) onStart(_ gestures.DragStartDetails) {
	d.lastTranslation = 0
	d.lastVelocity = 0
	d.controller.FeedGestureSample(PhaseBegin, 0, 0, d.offset())
}

func (d *GestureDriver) onUpdate(details gestures.DragUpdateDetails) {
	d.lastTranslation = details.TranslationY
	d.lastVelocity = details.VelocityY
	d.controller.FeedGestureSample(PhaseChanged, details.TranslationY, details.VelocityY, d.offset())
}

func (d *GestureDriver) onEnd(details gestures.DragEndDetails) {
	d.controller.FeedGestureSample(PhaseEnded, details.TranslationY, details.VelocityY, d.offset())
}

// onCancel finalizes with the last known translation and velocity; a
// cancelled gesture snaps the same way an ended one does.
func (d *GestureDriver) onCancel() {
	d.controller.FeedGestureSample(PhaseCancelled, d.lastTranslation, d.lastVelocity, d.offset())
}

func (d *GestureDriver) offset() float64 {
	if d.scrollOffset != nil {
		return d.scrollOffset()
	}
	if d.controller.scrollController != nil {
		return d.controller.scrollController.Offset()
	}
	return 0
}
