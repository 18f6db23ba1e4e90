// Package config holds the tuning values that drive rotation, gestures,
// picking and label styling. Default returns the stock values; Load
// overlays a JSON file onto them.
package config

import (
	"github.com/taigrr/planet/pkg/math3d"
)

// Range is a closed interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	return math3d.Clamp(v, r.Min, r.Max)
}

// Lerp maps t in [0, 1] onto the range.
func (r Range) Lerp(t float64) float64 {
	return math3d.Lerp(r.Min, r.Max, t)
}

// RadiusMode selects how the sphere radius follows the view size.
type RadiusMode string

const (
	RadiusProportional RadiusMode = "proportional"
	RadiusFixed        RadiusMode = "fixed"
	RadiusAdaptive     RadiusMode = "adaptive"
)

// ProjectionType selects the screen mapping.
type ProjectionType string

const (
	Orthographic ProjectionType = "orthographic"
	Perspective  ProjectionType = "perspective"
)

// Config is the full set of tuning values for one sphere.
type Config struct {
	AutoRotation AutoRotation `json:"auto_rotation"`
	Gesture      Gesture      `json:"gesture"`
	Inertia      Inertia      `json:"inertia"`
	Scaling      Scaling      `json:"scaling"`
	HitTesting   HitTesting   `json:"hit_testing"`
	DepthEffects DepthEffects `json:"depth_effects"`
	Layout       Layout       `json:"layout"`
	Projection   Projection   `json:"projection"`
	Tap          Tap          `json:"tap"`

	// ReferenceFPS is the frame rate the per-frame speeds were tuned at.
	// Every update is scaled by dt*ReferenceFPS.
	ReferenceFPS float64 `json:"reference_fps"`
}

// AutoRotation configures the idle drift.
type AutoRotation struct {
	Enabled bool        `json:"enabled"`
	Axis    math3d.Vec3 `json:"axis"`
	// Speed is in radians per reference frame.
	Speed      float64 `json:"speed"`
	SpeedRange Range   `json:"speed_range"`
	// RememberDirection makes drift resume along the last drag direction.
	RememberDirection bool `json:"remember_direction"`
}

// Gesture configures the drag trackball.
type Gesture struct {
	Enabled bool `json:"enabled"`
	// Sensitivity converts screen points to radians.
	Sensitivity float64 `json:"sensitivity"`
	// DirectionDivisor and SpeedFactor shape the drift speed picked up from
	// a drag: factor = clamp(angle/Sensitivity/DirectionDivisor, SpeedFactor).
	DirectionDivisor float64 `json:"direction_divisor"`
	SpeedFactor      Range   `json:"speed_factor"`
	// VelocityScale converts release velocity (points/s) into inertia units.
	VelocityScale float64 `json:"velocity_scale"`
}

// Inertia configures post-drag momentum.
type Inertia struct {
	Enabled bool `json:"enabled"`
	// MinimumVelocity is the release speed in points/s needed to coast.
	MinimumVelocity float64 `json:"minimum_velocity"`
	// DecayRate is the velocity multiplier per reference frame.
	DecayRate     float64 `json:"decay_rate"`
	StopThreshold float64 `json:"stop_threshold"`
}

// Scaling configures pinch zoom.
type Scaling struct {
	Enabled          bool    `json:"enabled"`
	Range            Range   `json:"range"`
	Default          float64 `json:"default"`
	PinchSensitivity float64 `json:"pinch_sensitivity"`
}

// HitTesting configures label picking.
type HitTesting struct {
	DepthTesting bool    `json:"depth_testing"`
	Expansion    float64 `json:"expansion"`
	MinWidth     float64 `json:"min_width"`
	MinHeight    float64 `json:"min_height"`
}

// DepthEffects configures culling and depth-based styling.
type DepthEffects struct {
	BackfaceCulling bool  `json:"backface_culling"`
	AlphaRange      Range `json:"alpha_range"`
	ScaleRange      Range `json:"scale_range"`
	ColorAdjustment bool  `json:"color_adjustment"`
	// ColorIntensity is how much the far side darkens, in [0, 1].
	ColorIntensity float64 `json:"color_intensity"`
}

// Layout configures the sphere radius.
type Layout struct {
	RadiusMode       RadiusMode `json:"radius_mode"`
	ProportionFactor float64    `json:"proportion_factor"`
	FixedRadius      float64    `json:"fixed_radius"`
	RadiusRange      Range      `json:"radius_range"`
}

// Projection configures the screen mapping.
type Projection struct {
	Type ProjectionType `json:"type"`
	// FieldOfView is the vertical field of view in degrees.
	FieldOfView float64 `json:"field_of_view"`
	// CameraDistance is measured in sphere radii.
	CameraDistance float64 `json:"camera_distance"`
	Near           float64 `json:"near"`
	Far            float64 `json:"far"`
}

// Tap configures the pulse played on a tapped label.
type Tap struct {
	Enabled  bool    `json:"enabled"`
	MaxScale float64 `json:"max_scale"`
	// Duration is the time in seconds spent pushing toward MaxScale before
	// the spring settles back.
	Duration  float64 `json:"duration"`
	Frequency float64 `json:"frequency"`
	Damping   float64 `json:"damping"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		AutoRotation: AutoRotation{
			Enabled:           true,
			Axis:              math3d.Up(),
			Speed:             0.005,
			SpeedRange:        Range{0.001, 0.02},
			RememberDirection: true,
		},
		Gesture: Gesture{
			Enabled:          true,
			Sensitivity:      0.01,
			DirectionDivisor: 50,
			SpeedFactor:      Range{0.3, 2.0},
			VelocityScale:    1e-4,
		},
		Inertia: Inertia{
			Enabled:         true,
			MinimumVelocity: 300,
			DecayRate:       0.95,
			StopThreshold:   0.001,
		},
		Scaling: Scaling{
			Enabled:          true,
			Range:            Range{0.3, 3.0},
			Default:          1.0,
			PinchSensitivity: 1.0,
		},
		HitTesting: HitTesting{
			DepthTesting: true,
			Expansion:    10,
			MinWidth:     44,
			MinHeight:    44,
		},
		DepthEffects: DepthEffects{
			AlphaRange:      Range{0.3, 1.0},
			ScaleRange:      Range{0.7, 1.0},
			ColorAdjustment: true,
			ColorIntensity:  0.3,
		},
		Layout: Layout{
			RadiusMode:       RadiusProportional,
			ProportionFactor: 0.4,
			FixedRadius:      150,
			RadiusRange:      Range{50, 500},
		},
		Projection: Projection{
			Type:           Orthographic,
			FieldOfView:    60,
			CameraDistance: 3,
			Near:           0.1,
			Far:            1000,
		},
		Tap: Tap{
			Enabled:   true,
			MaxScale:  1.3,
			Duration:  0.2,
			Frequency: 12,
			Damping:   0.6,
		},
		ReferenceFPS: 60,
	}
}

// Minimal turns off the tap pulse.
func Minimal() Config {
	c := Default()
	c.Tap.Enabled = false
	return c
}

// Deluxe exaggerates the tap pulse.
func Deluxe() Config {
	c := Default()
	c.Tap.MaxScale = 1.5
	return c
}

// HighPerformance hides the far hemisphere and skips color adjustment so a
// host draws roughly half the labels.
func HighPerformance() Config {
	c := Default()
	c.DepthEffects.BackfaceCulling = true
	c.DepthEffects.ColorAdjustment = false
	return c
}

// Minimalist keeps interaction but flattens the depth styling.
func Minimalist() Config {
	c := Default()
	c.DepthEffects.ColorAdjustment = false
	c.Tap.Enabled = false
	return c
}

// DisplayOnly ignores all gestures; labels only drift.
func DisplayOnly() Config {
	c := Default()
	c.Gesture.Enabled = false
	c.Inertia.Enabled = false
	return c
}

// Preset returns the named preset.
func Preset(name string) (Config, bool) {
	switch name {
	case "", "default":
		return Default(), true
	case "minimal":
		return Minimal(), true
	case "deluxe":
		return Deluxe(), true
	case "high-performance":
		return HighPerformance(), true
	case "minimalist":
		return Minimalist(), true
	case "display-only":
		return DisplayOnly(), true
	}
	return Config{}, false
}
