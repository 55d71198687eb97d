package sheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file LoadOptional looks for.
const ConfigFileName = "sheet.yaml"

// fileConfig mirrors the sheet.yaml layout.
type fileConfig struct {
	Positions         []positionValue `yaml:"positions"`
	Initial           *positionValue  `yaml:"initial,omitempty"`
	DragThreshold     float64         `yaml:"drag_threshold,omitempty"`
	VelocityThreshold float64         `yaml:"velocity_threshold,omitempty"`
	ScrollAtTop       *bool           `yaml:"scroll_at_top,omitempty"`
}

// positionValue parses a YAML scalar into a Position. Named bands are
// written as strings ("half"), custom positions as ratios (0.3).
type positionValue Position

func (p *positionValue) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("position must be a band name or ratio: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dismissed":
		*p = positionValue(Dismissed)
		return nil
	case "collapsed":
		*p = positionValue(Collapsed)
		return nil
	case "half":
		*p = positionValue(Half)
		return nil
	case "expanded":
		*p = positionValue(Expanded)
		return nil
	}
	ratio, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("unknown position %q", raw)
	}
	*p = positionValue(Custom(ratio))
	return nil
}

// LoadConfigFile reads and parses a sheet configuration file.
// Fields absent from the file keep the engine defaults.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return parseConfig(data)
}

// LoadOptional reads sheet.yaml from dir if present, returning
// DefaultConfig when the file does not exist.
func LoadOptional(dir string) (Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	cfg := DefaultConfig()
	if len(fc.Positions) > 0 {
		cfg.Positions = make([]Position, len(fc.Positions))
		for i, p := range fc.Positions {
			cfg.Positions[i] = Position(p)
		}
	}
	if fc.Initial != nil {
		cfg.Initial = Position(*fc.Initial)
	} else if len(fc.Positions) > 0 {
		// Explicit position sets default to opening at the lowest
		// visible position rather than DefaultConfig's Half.
		cfg.Initial = firstVisible(cfg.Positions)
	}
	if fc.DragThreshold > 0 {
		cfg.DragThreshold = fc.DragThreshold
	}
	if fc.VelocityThreshold > 0 {
		cfg.VelocityThreshold = fc.VelocityThreshold
	}
	if fc.ScrollAtTop != nil {
		cfg.DisableScrollAtTop = !*fc.ScrollAtTop
	}
	return cfg, nil
}

// firstVisible returns the lowest visible position in the set, or the
// lowest position overall when every entry is dismissed.
func firstVisible(positions []Position) Position {
	sorted := sortPositions(positions)
	for _, p := range sorted {
		if p.Visible() {
			return p
		}
	}
	return sorted[0]
}
