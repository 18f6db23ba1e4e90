package effects

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/planet/pkg/config"
)

// settleEpsilon is how close to rest a pulse must be before it stops.
const settleEpsilon = 1e-3

// Pulse is a spring-driven scale bump: it pushes toward the configured peak
// for the tap duration, then settles back to 1.
type Pulse struct {
	cfg config.Tap

	scale    float64
	velocity float64
	elapsed  float64
	active   bool

	spring   harmonica.Spring
	springDt float64
}

// NewPulse returns a resting pulse.
func NewPulse(cfg config.Tap) *Pulse {
	return &Pulse{cfg: cfg, scale: 1}
}

// Configure replaces the tap settings.
func (p *Pulse) Configure(cfg config.Tap) {
	p.cfg = cfg
	p.springDt = 0
	if !cfg.Enabled {
		p.stop()
	}
}

// Trigger (re)starts the pulse from its current scale. It does nothing when
// the tap pulse is disabled.
func (p *Pulse) Trigger() {
	if !p.cfg.Enabled {
		return
	}
	p.active = true
	p.elapsed = 0
}

// Active reports whether the pulse is still moving.
func (p *Pulse) Active() bool { return p.active }

// Scale returns the current display multiplier.
func (p *Pulse) Scale() float64 { return p.scale }

// Update advances the spring by dt seconds and returns the new scale.
func (p *Pulse) Update(dt float64) float64 {
	if !p.active || dt <= 0 {
		return p.scale
	}

	target := 1.0
	if p.elapsed < p.cfg.Duration {
		target = p.cfg.MaxScale
	}
	p.elapsed += dt

	if dt != p.springDt {
		p.spring = harmonica.NewSpring(dt, p.cfg.Frequency, p.cfg.Damping)
		p.springDt = dt
	}
	p.scale, p.velocity = p.spring.Update(p.scale, p.velocity, target)

	if p.elapsed >= p.cfg.Duration && math.Abs(p.scale-1) < settleEpsilon && math.Abs(p.velocity) < settleEpsilon {
		p.stop()
	}
	return p.scale
}

func (p *Pulse) stop() {
	p.active = false
	p.scale = 1
	p.velocity = 0
	p.elapsed = 0
}
