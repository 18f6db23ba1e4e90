package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const maxFileSize = 1 * 1024 * 1024 // 1MB

// Load reads a JSON file and overlays it onto Default. Fields omitted from
// the file keep their default values. Unknown fields are rejected.
func Load(path string) (Config, error) {
	return LoadOnto(Default(), path)
}

// LoadOnto overlays a JSON file onto base and validates the result.
func LoadOnto(base Config, path string) (Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return Config{}, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return Config{}, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := base
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c Config) Validate() error {
	if c.ReferenceFPS <= 0 {
		return fmt.Errorf("reference_fps must be positive, got %f", c.ReferenceFPS)
	}

	ranges := []struct {
		name string
		r    Range
	}{
		{"auto_rotation.speed_range", c.AutoRotation.SpeedRange},
		{"gesture.speed_factor", c.Gesture.SpeedFactor},
		{"scaling.range", c.Scaling.Range},
		{"depth_effects.alpha_range", c.DepthEffects.AlphaRange},
		{"depth_effects.scale_range", c.DepthEffects.ScaleRange},
		{"layout.radius_range", c.Layout.RadiusRange},
	}
	for _, rng := range ranges {
		if rng.r.Min < 0 || rng.r.Max < rng.r.Min {
			return fmt.Errorf("%s must satisfy 0 <= min <= max, got [%g, %g]", rng.name, rng.r.Min, rng.r.Max)
		}
	}
	if c.Scaling.Range.Min == 0 {
		return fmt.Errorf("scaling.range min must be positive")
	}
	if c.DepthEffects.AlphaRange.Max > 1 {
		return fmt.Errorf("depth_effects.alpha_range max must be at most 1, got %g", c.DepthEffects.AlphaRange.Max)
	}

	if c.AutoRotation.Axis.LenSq() < 1e-6 {
		return fmt.Errorf("auto_rotation.axis must be non-zero")
	}
	if c.Gesture.Sensitivity <= 0 {
		return fmt.Errorf("gesture.sensitivity must be positive, got %g", c.Gesture.Sensitivity)
	}
	if c.Gesture.DirectionDivisor <= 0 {
		return fmt.Errorf("gesture.direction_divisor must be positive, got %g", c.Gesture.DirectionDivisor)
	}
	if c.Gesture.VelocityScale < 0 {
		return fmt.Errorf("gesture.velocity_scale must be non-negative, got %g", c.Gesture.VelocityScale)
	}
	if c.Inertia.DecayRate <= 0 || c.Inertia.DecayRate >= 1 {
		return fmt.Errorf("inertia.decay_rate must be between 0 and 1 (exclusive), got %g", c.Inertia.DecayRate)
	}
	if c.Inertia.StopThreshold <= 0 {
		return fmt.Errorf("inertia.stop_threshold must be positive, got %g", c.Inertia.StopThreshold)
	}
	if c.Scaling.PinchSensitivity <= 0 {
		return fmt.Errorf("scaling.pinch_sensitivity must be positive, got %g", c.Scaling.PinchSensitivity)
	}
	if c.HitTesting.Expansion < 0 || c.HitTesting.MinWidth < 0 || c.HitTesting.MinHeight < 0 {
		return fmt.Errorf("hit_testing sizes must be non-negative")
	}
	if c.DepthEffects.ColorIntensity < 0 || c.DepthEffects.ColorIntensity > 1 {
		return fmt.Errorf("depth_effects.color_intensity must be between 0 and 1, got %g", c.DepthEffects.ColorIntensity)
	}

	switch c.Layout.RadiusMode {
	case RadiusProportional, RadiusFixed, RadiusAdaptive:
	default:
		return fmt.Errorf("layout.radius_mode %q is not one of proportional, fixed, adaptive", c.Layout.RadiusMode)
	}
	if c.Layout.ProportionFactor <= 0 || c.Layout.FixedRadius <= 0 {
		return fmt.Errorf("layout.proportion_factor and layout.fixed_radius must be positive")
	}

	switch c.Projection.Type {
	case Orthographic:
	case Perspective:
		if c.Projection.FieldOfView <= 0 || c.Projection.FieldOfView >= 180 {
			return fmt.Errorf("projection.field_of_view must be in (0, 180), got %g", c.Projection.FieldOfView)
		}
		if c.Projection.CameraDistance <= 1 {
			return fmt.Errorf("projection.camera_distance must exceed the sphere radius (1), got %g", c.Projection.CameraDistance)
		}
		if c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near {
			return fmt.Errorf("projection near/far must satisfy 0 < near < far")
		}
	default:
		return fmt.Errorf("projection.type %q is not one of orthographic, perspective", c.Projection.Type)
	}

	if c.Tap.Enabled {
		if c.Tap.MaxScale < 1 || c.Tap.Duration < 0 || c.Tap.Frequency <= 0 || c.Tap.Damping < 0 {
			return fmt.Errorf("tap requires max_scale >= 1, duration >= 0, frequency > 0, damping >= 0")
		}
	}
	return nil
}
