package projection

import (
	"testing"

	"github.com/taigrr/planet/pkg/config"
	"github.com/taigrr/planet/pkg/math3d"
)

func placement(index int, x, y, depth float64, visible bool) Placement {
	return Placement{Index: index, Screen: math3d.V2(x, y), Depth: depth, FrontFacing: visible, Visible: visible}
}

func TestHitBox(t *testing.T) {
	hit := config.HitTesting{Expansion: 10, MinWidth: 44, MinHeight: 44}

	lo, hi := HitBox(math3d.V2(100, 100), Extent{Width: 20, Height: 80}, hit)
	// width max(20,44)+20 = 64, height max(80,44)+20 = 100
	if lo != math3d.V2(68, 50) || hi != math3d.V2(132, 150) {
		t.Errorf("HitBox = %v..%v", lo, hi)
	}
}

func TestPick(t *testing.T) {
	hit := config.Default().HitTesting
	placements := []Placement{
		placement(0, 100, 100, 0.2, true),
		placement(1, 300, 100, 0.5, true),
		placement(2, 110, 105, 0.9, true),
		placement(3, 500, 500, 1.0, false),
	}
	extents := []Extent{{20, 10}, {20, 10}, {20, 10}, {20, 10}}

	tests := []struct {
		name   string
		point  math3d.Vec2
		depth  bool
		want   int
		wantOK bool
	}{
		{"single hit", math3d.V2(300, 100), true, 1, true},
		{"inside expansion margin", math3d.V2(300+31, 100), true, 1, true},
		{"just outside", math3d.V2(300+33, 100), true, -1, false},
		{"miss", math3d.V2(700, 700), true, -1, false},
		{"overlap prefers nearest", math3d.V2(105, 102), true, 2, true},
		{"overlap without depth takes first", math3d.V2(105, 102), false, 0, true},
		{"hidden label ignored", math3d.V2(500, 500), true, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := hit
			h.DepthTesting = tt.depth
			got, ok := Pick(tt.point, placements, extents, h)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Pick(%v) = %d, %v; want %d, %v", tt.point, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestPickDepthTieKeepsLowerIndex(t *testing.T) {
	placements := []Placement{
		placement(0, 0, 0, 0.5, true),
		placement(1, 0, 0, 0.5, true),
	}
	got, ok := Pick(math3d.V2(0, 0), placements, nil, config.Default().HitTesting)
	if !ok || got != 0 {
		t.Errorf("Pick = %d, %v; want 0", got, ok)
	}
}
