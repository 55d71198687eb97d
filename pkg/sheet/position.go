package sheet

import "sort"

// band identifies one of the closed set of named sheet heights.
type band int

const (
	bandDismissed band = iota
	bandCollapsed
	bandHalf
	bandExpanded
	bandCustom
)

// Ratio constants for the named bands.
const (
	dismissedRatio = 0.0
	collapsedRatio = 0.125
	halfRatio      = 0.4
	expandedRatio  = 0.85

	// scrollUnlockRatio is the minimum custom ratio at which the sheet's
	// content becomes natively scrollable.
	scrollUnlockRatio = 0.7
)

// Position is a discrete resting height for the sheet, expressed as a
// fraction of the container height. Use the preset values or Custom for
// arbitrary ratios. Two positions with equal HeightRatio are
// interchangeable for ordering and comparison, even when one is a named
// preset and the other a Custom value.
type Position struct {
	band  band
	ratio float64
}

// Preset positions.
var (
	// Dismissed hides the sheet entirely.
	Dismissed = Position{band: bandDismissed}
	// Collapsed shows a small peek of the sheet.
	Collapsed = Position{band: bandCollapsed}
	// Half opens the sheet to a bit under half the container.
	Half = Position{band: bandHalf}
	// Expanded opens the sheet near full height with scrollable content.
	Expanded = Position{band: bandExpanded}
)

// DefaultPositions is the position set used by DefaultConfig.
var DefaultPositions = []Position{Collapsed, Half, Expanded}

// Custom returns a position at an arbitrary height ratio.
// The ratio is clamped to [0, 1].
func Custom(ratio float64) Position {
	return Position{band: bandCustom, ratio: clampFloat(ratio, 0, 1)}
}

// HeightRatio returns the fraction of container height the sheet
// occupies at this position.
func (p Position) HeightRatio() float64 {
	switch p.band {
	case bandDismissed:
		return dismissedRatio
	case bandCollapsed:
		return collapsedRatio
	case bandHalf:
		return halfRatio
	case bandExpanded:
		return expandedRatio
	default:
		return clampFloat(p.ratio, 0, 1)
	}
}

// ScrollEnabled reports whether embedded content may scroll natively at
// this position. Only Expanded and sufficiently tall Custom positions
// unlock scrolling; everywhere else a vertical drag moves the sheet.
func (p Position) ScrollEnabled() bool {
	switch p.band {
	case bandExpanded:
		return true
	case bandCustom:
		return p.HeightRatio() >= scrollUnlockRatio
	default:
		return false
	}
}

// Visible reports whether the sheet occupies any screen space.
func (p Position) Visible() bool {
	return p.band != bandDismissed
}

// SameHeight reports whether two positions rest at the same height.
// This is the engine's notion of position equality.
func (p Position) SameHeight(other Position) bool {
	return p.HeightRatio() == other.HeightRatio()
}

func (p Position) String() string {
	switch p.band {
	case bandDismissed:
		return "dismissed"
	case bandCollapsed:
		return "collapsed"
	case bandHalf:
		return "half"
	case bandExpanded:
		return "expanded"
	default:
		return "custom"
	}
}

// sortPositions returns the positions ordered ascending by height ratio.
// The sort is stable so configured order breaks ties deterministically.
func sortPositions(positions []Position) []Position {
	result := make([]Position, len(positions))
	copy(result, positions)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].HeightRatio() < result[j].HeightRatio()
	})
	return result
}

// anchorIndex returns the index of the first position in the sorted set
// resting at the same height as current, or -1 if none matches.
func anchorIndex(sorted []Position, current Position) int {
	for i, p := range sorted {
		if p.SameHeight(current) {
			return i
		}
	}
	return -1
}

// clampFloat constrains v to the range [min, max].
func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
