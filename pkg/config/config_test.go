package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/planet/pkg/math3d"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() does not validate: %v", err)
	}
	if !cfg.AutoRotation.Enabled || cfg.AutoRotation.Speed != 0.005 {
		t.Errorf("AutoRotation = %+v", cfg.AutoRotation)
	}
	if cfg.AutoRotation.Axis != math3d.Up() {
		t.Errorf("AutoRotation.Axis = %v, want up", cfg.AutoRotation.Axis)
	}
	if cfg.Gesture.Sensitivity != 0.01 || cfg.Gesture.VelocityScale != 1e-4 {
		t.Errorf("Gesture = %+v", cfg.Gesture)
	}
	if cfg.Inertia.MinimumVelocity != 300 || cfg.Inertia.DecayRate != 0.95 {
		t.Errorf("Inertia = %+v", cfg.Inertia)
	}
	if cfg.Scaling.Range != (Range{0.3, 3.0}) {
		t.Errorf("Scaling.Range = %+v", cfg.Scaling.Range)
	}
	if cfg.HitTesting.MinWidth != 44 || cfg.HitTesting.Expansion != 10 || !cfg.HitTesting.DepthTesting {
		t.Errorf("HitTesting = %+v", cfg.HitTesting)
	}
	if cfg.ReferenceFPS != 60 {
		t.Errorf("ReferenceFPS = %v", cfg.ReferenceFPS)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name  string
		check func(Config) bool
	}{
		{"default", func(c Config) bool { return c.Gesture.Enabled }},
		{"minimal", func(c Config) bool { return !c.Tap.Enabled }},
		{"deluxe", func(c Config) bool { return c.Tap.MaxScale == 1.5 }},
		{"high-performance", func(c Config) bool { return c.DepthEffects.BackfaceCulling }},
		{"minimalist", func(c Config) bool { return !c.DepthEffects.ColorAdjustment }},
		{"display-only", func(c Config) bool { return !c.Gesture.Enabled && !c.Inertia.Enabled }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, ok := Preset(tt.name)
			if !ok {
				t.Fatalf("Preset(%q) not found", tt.name)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Preset(%q) invalid: %v", tt.name, err)
			}
			if !tt.check(cfg) {
				t.Errorf("Preset(%q) = %+v", tt.name, cfg)
			}
		})
	}

	if _, ok := Preset("bogus"); ok {
		t.Error("Preset(bogus) should not exist")
	}
}

func TestRange(t *testing.T) {
	r := Range{0.3, 1}
	if got := r.Clamp(5); got != 1 {
		t.Errorf("Clamp(5) = %v", got)
	}
	if got := r.Lerp(0); got != 0.3 {
		t.Errorf("Lerp(0) = %v", got)
	}
	if got := r.Lerp(1); got != 1 {
		t.Errorf("Lerp(1) = %v", got)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "planet.json")

	testJSON := `{
  "auto_rotation": {"speed": 0.01, "axis": {"x": 1, "y": 0, "z": 0}},
  "inertia": {"enabled": false},
  "depth_effects": {"backface_culling": true},
  "layout": {"radius_mode": "fixed", "fixed_radius": 200}
}`
	if err := os.WriteFile(configPath, []byte(testJSON), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AutoRotation.Speed != 0.01 {
		t.Errorf("Speed = %v, want 0.01", cfg.AutoRotation.Speed)
	}
	if cfg.AutoRotation.Axis != math3d.V3(1, 0, 0) {
		t.Errorf("Axis = %v", cfg.AutoRotation.Axis)
	}
	if !cfg.AutoRotation.Enabled {
		t.Error("omitted auto_rotation.enabled should keep its default")
	}
	if cfg.Inertia.Enabled {
		t.Error("inertia.enabled should be overridden to false")
	}
	if cfg.Inertia.DecayRate != 0.95 {
		t.Errorf("omitted decay_rate = %v, want default", cfg.Inertia.DecayRate)
	}
	if !cfg.DepthEffects.BackfaceCulling {
		t.Error("backface_culling should be true")
	}
	if cfg.Layout.RadiusMode != RadiusFixed || cfg.Layout.FixedRadius != 200 {
		t.Errorf("Layout = %+v", cfg.Layout)
	}
}

func TestLoadErrors(t *testing.T) {
	tmpDir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return path
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"wrong extension", write("planet.yaml", "{}"), ".json extension"},
		{"missing file", filepath.Join(tmpDir, "missing.json"), "stat"},
		{"bad json", write("bad.json", "{"), "parse"},
		{"unknown field", write("unknown.json", `{"speed": 1}`), "parse"},
		{"invalid value", write("invalid.json", `{"inertia": {"decay_rate": 1.5}}`), "decay_rate"},
		{"bad mode", write("mode.json", `{"layout": {"radius_mode": "huge"}}`), "radius_mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.json")
	data := make([]byte, maxFileSize+1)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "too large") {
		t.Errorf("Load(big) error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fps", func(c *Config) { c.ReferenceFPS = 0 }},
		{"inverted scale range", func(c *Config) { c.Scaling.Range = Range{3, 1} }},
		{"zero scale min", func(c *Config) { c.Scaling.Range = Range{0, 1} }},
		{"zero axis", func(c *Config) { c.AutoRotation.Axis = math3d.Zero3() }},
		{"zero sensitivity", func(c *Config) { c.Gesture.Sensitivity = 0 }},
		{"alpha above one", func(c *Config) { c.DepthEffects.AlphaRange = Range{0.5, 2} }},
		{"camera inside sphere", func(c *Config) {
			c.Projection.Type = Perspective
			c.Projection.CameraDistance = 0.5
		}},
		{"unknown projection", func(c *Config) { c.Projection.Type = "fisheye" }},
		{"tap shrinks", func(c *Config) { c.Tap.MaxScale = 0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
