package gallery

import "github.com/charmbracelet/harmonica"

// Mode selects how scroll input reaches the spring target.
type Mode int

const (
	// ModeWheel accumulates discrete wheel deltas into the target.
	ModeWheel Mode = iota
	// ModeAuto drifts the target at a constant rate, used on touch-first
	// devices where no wheel events arrive.
	ModeAuto
)

const (
	// DefaultSensitivity converts one wheel delta unit into world units.
	DefaultSensitivity = 0.075
	// DefaultAutoRate is the auto-scroll drift in world units per second.
	DefaultAutoRate = 0.35

	// Critically damped so a wheel impulse eases in without overshoot.
	springFrequency = 5.0
	springDamping   = 1.0
)

// Scroller turns discrete wheel deltas (or a constant auto-scroll drift)
// into one continuous spring-damped offset. The offset itself never jumps;
// only the target moves discontinuously.
type Scroller struct {
	spring harmonica.Spring
	mode   Mode

	offset float64
	vel    float64
	target float64

	sensitivity float64
	autoRate    float64
}

func NewScroller(mode Mode, sensitivity, autoRate float64) *Scroller {
	if sensitivity == 0 {
		sensitivity = DefaultSensitivity
	}
	if autoRate == 0 {
		autoRate = DefaultAutoRate
	}
	return &Scroller{
		spring:      harmonica.NewSpring(harmonica.FPS(60), springFrequency, springDamping),
		mode:        mode,
		sensitivity: sensitivity,
		autoRate:    autoRate,
	}
}

// Wheel records a wheel delta. Sign is inverted so scrolling down moves
// content up, matching natural scroll direction.
func (s *Scroller) Wheel(deltaY float64) {
	s.target -= deltaY * s.sensitivity
}

func (s *Scroller) SetMode(m Mode) { s.mode = m }
func (s *Scroller) Mode() Mode     { return s.mode }

// Step integrates the spring one frame and returns the new offset. In auto
// mode the target drifts by autoRate*dt first.
func (s *Scroller) Step(dt float64) float64 {
	if s.mode == ModeAuto {
		s.target += s.autoRate * dt
	}
	s.offset, s.vel = s.spring.Update(s.offset, s.vel, s.target)
	return s.offset
}

func (s *Scroller) Offset() float64 { return s.offset }
func (s *Scroller) Target() float64 { return s.target }
