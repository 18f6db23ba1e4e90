package projection

import (
	"math"

	"github.com/taigrr/planet/pkg/config"
	"github.com/taigrr/planet/pkg/math3d"
)

// Extent is the rendered size of a label in screen units.
type Extent struct {
	Width, Height float64
}

// HitBox returns the pick rectangle of a label centered at screen: the
// extent raised to the minimum size, then grown by the expansion margin on
// every side.
func HitBox(screen math3d.Vec2, ext Extent, hit config.HitTesting) (lo, hi math3d.Vec2) {
	w := math.Max(ext.Width, hit.MinWidth) + 2*hit.Expansion
	h := math.Max(ext.Height, hit.MinHeight) + 2*hit.Expansion
	half := math3d.V2(w/2, h/2)
	return screen.Sub(half), screen.Add(half)
}

// Pick returns the label under point. Only visible placements are
// candidates. Labels without an entry in extents use the minimum hit size.
// With depth testing the nearest candidate wins, otherwise the first in
// label order.
func Pick(point math3d.Vec2, placements []Placement, extents []Extent, hit config.HitTesting) (int, bool) {
	best, bestDepth := -1, math.Inf(-1)

	for i, pl := range placements {
		if !pl.Visible {
			continue
		}
		var ext Extent
		if i < len(extents) {
			ext = extents[i]
		}
		lo, hi := HitBox(pl.Screen, ext, hit)
		if point.X < lo.X || point.X > hi.X || point.Y < lo.Y || point.Y > hi.Y {
			continue
		}

		if !hit.DepthTesting {
			return pl.Index, true
		}
		if pl.Depth > bestDepth {
			best, bestDepth = pl.Index, pl.Depth
		}
	}
	return best, best >= 0
}
