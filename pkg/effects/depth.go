// Package effects derives per-label display styling from depth and plays
// the spring pulse on tapped labels.
package effects

import (
	"github.com/taigrr/planet/pkg/config"
	"github.com/taigrr/planet/pkg/math3d"
)

// Style is how strongly a label is drawn.
type Style struct {
	Alpha float64
	Scale float64
	// ColorIntensity multiplies the label color; 1 leaves it unchanged.
	ColorIntensity float64
}

// DepthStyle maps depth in [-1, 1] (far to near) onto the configured alpha
// and scale ranges. Labels fade, shrink, and darken toward the back.
func DepthStyle(depth float64, cfg config.DepthEffects) Style {
	t := math3d.Clamp((depth+1)/2, 0, 1)

	s := Style{
		Alpha:          cfg.AlphaRange.Lerp(t),
		Scale:          cfg.ScaleRange.Lerp(t),
		ColorIntensity: 1,
	}
	if cfg.ColorAdjustment {
		s.ColorIntensity = 1 - cfg.ColorIntensity*(1-t)
	}
	return s
}
