package sheet

// findTarget maps a completed drag to the snap position the sheet
// settles into. translation is the accumulated sheet-owned drag distance
// (positive = downward) and velocity the release speed in px/s with the
// same sign convention.
func (c *Controller) findTarget(translation, velocity float64) Position {
	return resolveTarget(
		translation,
		velocity,
		c.position,
		c.positions,
		c.cfg.DragThreshold,
		c.cfg.VelocityThreshold,
		c.containerHeight,
	)
}

// resolveTarget implements the snap decision: a drag past the distance
// or velocity threshold moves one step in the drag direction; a drag
// past 2.5x the distance threshold or 1.5x the velocity threshold (a
// hard flick) jumps to the extreme configured position. Anything short
// of the thresholds keeps the current position.
func resolveTarget(translation, velocity float64, current Position, sorted []Position, dragThreshold, velocityThreshold, containerHeight float64) Position {
	if len(sorted) == 0 {
		return current
	}

	dragRatio := dragRatioFor(translation, containerHeight, dragThreshold)

	if translation < 0 {
		// Upward drag
		if -dragRatio >= dragThreshold || velocity < -velocityThreshold {
			if -dragRatio >= dragThreshold*hardFlickDragFactor || velocity < -velocityThreshold*hardFlickVelocityFactor {
				return highestPosition(sorted)
			}
			return nextAbove(sorted, current)
		}
		return current
	}

	// Downward drag or none
	if dragRatio >= dragThreshold || velocity > velocityThreshold {
		if dragRatio >= dragThreshold*hardFlickDragFactor || velocity > velocityThreshold*hardFlickVelocityFactor {
			// A hard flick down lands on the lowest configured position
			// even when that position dismisses the sheet.
			return lowestPosition(sorted)
		}
		return nextBelow(sorted, current)
	}
	return current
}

// dragRatioFor converts a drag distance to a fraction of container
// height. A zero container height makes the division degenerate; any
// non-zero drag then counts as exactly the base threshold, so it can
// move one step but never registers as a hard flick by distance.
func dragRatioFor(translation, containerHeight, dragThreshold float64) float64 {
	if containerHeight > 0 {
		return translation / containerHeight
	}
	if translation > 0 {
		return dragThreshold
	}
	if translation < 0 {
		return -dragThreshold
	}
	return 0
}

// nextAbove returns the configured position resting immediately above
// current, or current when none is higher. Positions sharing current's
// height anchor at the first match and are skipped.
func nextAbove(sorted []Position, current Position) Position {
	start := anchorIndex(sorted, current)
	for i := start + 1; i < len(sorted); i++ {
		if sorted[i].HeightRatio() > current.HeightRatio() {
			return sorted[i]
		}
	}
	return current
}

// nextBelow returns the configured position resting immediately below
// current, or current when none is lower.
func nextBelow(sorted []Position, current Position) Position {
	start := anchorIndex(sorted, current)
	if start == -1 {
		start = len(sorted)
	}
	for i := start - 1; i >= 0; i-- {
		if sorted[i].HeightRatio() < current.HeightRatio() {
			return sorted[i]
		}
	}
	return current
}

// highestPosition returns the first configured position with the
// maximum height ratio.
func highestPosition(sorted []Position) Position {
	max := sorted[len(sorted)-1].HeightRatio()
	for _, p := range sorted {
		if p.HeightRatio() == max {
			return p
		}
	}
	return sorted[len(sorted)-1]
}

// lowestPosition returns the first configured position with the minimum
// height ratio.
func lowestPosition(sorted []Position) Position {
	return sorted[0]
}
