package gallery

import (
	"math"
	"time"
)

// Slot is the persistent positional unit that hosts one item's visual.
// It is created once per item and survives recycling; only its anchors
// move, so entrance animation and media state are never restarted.
type Slot struct {
	ID        string
	ItemIndex int

	// BaseY is the vertical anchor at scroll offset zero. Recycling jumps
	// it by exactly one content height, nothing else touches it.
	BaseY float64
	X, Z  float64

	// RenderY is the committed per-frame position handed to the renderer.
	RenderY float64

	born time.Time
}

// EntranceDuration is how long a slot's alpha/scale ramp runs after creation.
const EntranceDuration = 900 * time.Millisecond

const edgeFadeStart = 0.72

// Entrance returns the eased entrance progress in [0,1], clocked from slot
// creation. Monotonic: recycling moves BaseY but never resets this.
func (s *Slot) Entrance(now time.Time) float64 {
	t := now.Sub(s.born).Seconds() / EntranceDuration.Seconds()
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	u := 1 - t
	return 1 - u*u*u
}

// EdgeFade attenuates alpha near the vertical frustum edges so slots fade
// out instead of clipping. Full alpha inside edgeFadeStart of the half
// height, zero at the edge, smoothstepped between.
func EdgeFade(renderY, halfHeight float64) float64 {
	if halfHeight <= 0 {
		return 0
	}
	f := math.Abs(renderY) / halfHeight
	if f <= edgeFadeStart {
		return 1
	}
	if f >= 1 {
		return 0
	}
	return smoothstep((1 - f) / (1 - edgeFadeStart))
}

func smoothstep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
