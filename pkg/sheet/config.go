package sheet

import "github.com/go-drift/sheet/pkg/errors"

// Default gesture thresholds.
const (
	// DefaultDragThreshold is the fraction of container height a drag
	// must cover to trigger a one-step position change.
	DefaultDragThreshold = 0.12
	// DefaultVelocityThreshold is the release speed (px/s) that can
	// trigger a position change regardless of distance covered.
	DefaultVelocityThreshold = 600

	// hardFlickDragFactor and hardFlickVelocityFactor scale the base
	// thresholds; a drag exceeding either scaled threshold jumps to the
	// extreme configured position instead of stepping.
	hardFlickDragFactor     = 2.5
	hardFlickVelocityFactor = 1.5
)

// Config describes a sheet's selectable positions and gesture tuning.
// Config values are immutable once passed to NewController;
// reconfiguring a sheet means constructing a new controller.
type Config struct {
	// Positions is the set of selectable snap positions. Order is not
	// significant; the engine sorts by height ratio before use.
	// Must be non-empty.
	Positions []Position
	// Initial is the position the sheet starts at.
	Initial Position
	// DragThreshold is the fraction of container height a drag must
	// cover to move one step. Zero means DefaultDragThreshold.
	DragThreshold float64
	// VelocityThreshold is the release speed (px/s) that moves one step
	// independent of distance. Zero means DefaultVelocityThreshold.
	VelocityThreshold float64
	// DisableScrollAtTop turns off the handoff that lets a downward drag
	// grab the sheet when the embedded content is scrolled to its top.
	// The zero value keeps the handoff enabled.
	DisableScrollAtTop bool
}

// DefaultConfig returns a three-position configuration opening at Half.
func DefaultConfig() Config {
	return Config{
		Positions: DefaultPositions,
		Initial:   Half,
	}
}

// normalizeConfig fills zero thresholds with defaults.
func normalizeConfig(cfg Config) Config {
	if cfg.DragThreshold <= 0 {
		cfg.DragThreshold = DefaultDragThreshold
	}
	if cfg.VelocityThreshold <= 0 {
		cfg.VelocityThreshold = DefaultVelocityThreshold
	}
	return cfg
}

// validateConfig rejects configurations the engine cannot operate on.
// An empty position set fails here rather than being silently defaulted.
func validateConfig(cfg Config) error {
	if len(cfg.Positions) == 0 {
		return &errors.SheetError{
			Op:   "sheet.NewController",
			Kind: errors.KindConfig,
			Err:  errors.ErrNoPositions,
		}
	}
	return nil
}
