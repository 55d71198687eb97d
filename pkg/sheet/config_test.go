package sheet

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Positions) != 3 {
		t.Fatalf("Expected 3 default positions, got %d", len(cfg.Positions))
	}
	if cfg.Initial != Half {
		t.Errorf("Initial = %s, want half", cfg.Initial)
	}
	if cfg.DisableScrollAtTop {
		t.Error("Scroll handoff should be enabled by default")
	}
}

func TestNormalizeConfig_FillsZeroThresholds(t *testing.T) {
	cfg := normalizeConfig(Config{})
	if cfg.DragThreshold != DefaultDragThreshold {
		t.Errorf("DragThreshold = %f, want %f", cfg.DragThreshold, DefaultDragThreshold)
	}
	if cfg.VelocityThreshold != DefaultVelocityThreshold {
		t.Errorf("VelocityThreshold = %f, want %f", cfg.VelocityThreshold, float64(DefaultVelocityThreshold))
	}
}

func TestNormalizeConfig_KeepsExplicitValues(t *testing.T) {
	cfg := normalizeConfig(Config{DragThreshold: 0.2, VelocityThreshold: 900})
	if cfg.DragThreshold != 0.2 || cfg.VelocityThreshold != 900 {
		t.Errorf("Explicit thresholds overwritten: %f, %f", cfg.DragThreshold, cfg.VelocityThreshold)
	}
}

func TestParseConfig_FullFile(t *testing.T) {
	data := []byte(`
positions:
  - collapsed
  - half
  - 0.75
initial: half
drag_threshold: 0.15
velocity_threshold: 800
scroll_at_top: false
`)
	cfg, err := parseConfig(data)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if len(cfg.Positions) != 3 {
		t.Fatalf("Expected 3 positions, got %d", len(cfg.Positions))
	}
	if cfg.Positions[0] != Collapsed || cfg.Positions[1] != Half {
		t.Errorf("Named positions parsed wrong: %v", cfg.Positions)
	}
	if cfg.Positions[2].HeightRatio() != 0.75 {
		t.Errorf("Ratio position = %f, want 0.75", cfg.Positions[2].HeightRatio())
	}
	if cfg.Initial != Half {
		t.Errorf("Initial = %s, want half", cfg.Initial)
	}
	if cfg.DragThreshold != 0.15 {
		t.Errorf("DragThreshold = %f, want 0.15", cfg.DragThreshold)
	}
	if cfg.VelocityThreshold != 800 {
		t.Errorf("VelocityThreshold = %f, want 800", cfg.VelocityThreshold)
	}
	if !cfg.DisableScrollAtTop {
		t.Error("scroll_at_top: false should disable the handoff")
	}
}

func TestParseConfig_DefaultsWhenSparse(t *testing.T) {
	cfg, err := parseConfig([]byte("drag_threshold: 0.2\n"))
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if len(cfg.Positions) != len(DefaultPositions) {
		t.Errorf("Sparse file should keep default positions, got %v", cfg.Positions)
	}
	if cfg.DragThreshold != 0.2 {
		t.Errorf("DragThreshold = %f, want 0.2", cfg.DragThreshold)
	}
	if cfg.DisableScrollAtTop {
		t.Error("Absent scroll_at_top should keep the handoff enabled")
	}
}

func TestParseConfig_InitialDefaultsToLowestVisible(t *testing.T) {
	data := []byte(`
positions:
  - dismissed
  - half
  - expanded
`)
	cfg, err := parseConfig(data)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.Initial != Half {
		t.Errorf("Initial = %s, want lowest visible (half)", cfg.Initial)
	}
}

func TestParseConfig_UnknownPosition(t *testing.T) {
	_, err := parseConfig([]byte("positions:\n  - sideways\n"))
	if err == nil {
		t.Fatal("Unknown position name should fail to parse")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("velocity_threshold: 750\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.VelocityThreshold != 750 {
		t.Errorf("VelocityThreshold = %f, want 750", cfg.VelocityThreshold)
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("Missing explicit config file should fail")
	}
}

func TestLoadOptional_MissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Initial != Half {
		t.Errorf("Missing sheet.yaml should return defaults, got initial %s", cfg.Initial)
	}
}

func TestLoadOptional_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("positions:\n  - collapsed\n  - expanded\n")
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if len(cfg.Positions) != 2 {
		t.Fatalf("Expected 2 positions, got %d", len(cfg.Positions))
	}
	if cfg.Initial != Collapsed {
		t.Errorf("Initial = %s, want lowest visible (collapsed)", cfg.Initial)
	}
}
