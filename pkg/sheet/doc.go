// Package sheet implements the gesture and position engine for a
// draggable bottom sheet.
//
// The engine coordinates two competing interaction modes, dragging the
// sheet frame and scrolling its embedded content, so they feel like one
// continuous gesture. It owns no rendering: hosts feed it gesture
// samples and layout metrics, and it answers with live drag offsets and
// discrete snap-position changes.
//
// # Positions
//
// A sheet rests at one of a configured set of [Position] values, each a
// fraction of the container height. The presets [Dismissed],
// [Collapsed], [Half] and [Expanded] cover the common bands; [Custom]
// creates arbitrary ratios. Content scrolling unlocks only at
// [Expanded] or custom positions at or above 0.7.
//
// # Basic usage
//
//	ctrl, err := sheet.NewController(sheet.Config{
//	    Positions: []sheet.Position{sheet.Collapsed, sheet.Half, sheet.Expanded},
//	    Initial:   sheet.Half,
//	})
//	if err != nil {
//	    return err
//	}
//	ctrl.SetContainerHeight(screenHeight)
//	ctrl.AddPositionListener(func(p sheet.Position, animated bool) {
//	    relayout(p, animated)
//	})
//
// Hosts with raw pointer input use [GestureDriver] to run recognition;
// hosts with their own drag recognition call
// [Controller.FeedGestureSample] directly with begin/changed/ended
// samples.
//
// # Gesture arbitration
//
// While a gesture is active the engine decides per sample whether the
// sheet or the content scroll owns the movement: positions without
// scrolling always drag the sheet, and a downward drag with the content
// at its top hands the gesture from the scroll to the sheet. On release
// the accumulated translation and velocity resolve to the next snap
// position: past the drag or velocity threshold the sheet moves one
// step, past 2.5x/1.5x those thresholds it jumps to the extreme
// position.
//
// All engine calls must happen on the host's single UI/update context.
package sheet
