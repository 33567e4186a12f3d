package gallery

import (
	"math"
	"testing"
)

func TestWheelTargetAccumulation(t *testing.T) {
	s := NewScroller(ModeWheel, 0.075, 0)

	s.Wheel(120)
	if math.Abs(s.Target()-(-9)) > 1e-12 {
		t.Errorf("target after one notch: %.4f, want -9", s.Target())
	}
	s.Wheel(-120)
	if math.Abs(s.Target()) > 1e-12 {
		t.Errorf("target after cancel: %.4f, want 0", s.Target())
	}
}

func TestSpringConvergesWithoutOvershoot(t *testing.T) {
	s := NewScroller(ModeWheel, 0.075, 0)
	s.Wheel(120) // target -9

	min := 0.0
	for i := 0; i < 240; i++ {
		off := s.Step(1.0 / 60)
		if off < min {
			min = off
		}
	}
	if math.Abs(s.Offset()-(-9)) > 0.01 {
		t.Errorf("offset %.4f after 4s, want within 0.01 of -9", s.Offset())
	}
	// Critically damped: no overshoot past 5% of the move.
	if min < -9*1.05 {
		t.Errorf("overshoot: offset reached %.4f, limit %.4f", min, -9*1.05)
	}
}

func TestOffsetIsContinuous(t *testing.T) {
	s := NewScroller(ModeWheel, 0.075, 0)
	s.Wheel(1200) // large impulse, target -90

	prev := s.Offset()
	for i := 0; i < 600; i++ {
		off := s.Step(1.0 / 60)
		// The offset eases; one frame never covers more than a fraction
		// of the remaining distance.
		if math.Abs(off-prev) > 90*0.2 {
			t.Fatalf("frame %d: offset jumped %.3f", i, math.Abs(off-prev))
		}
		prev = off
	}
}

func TestAutoScrollDrift(t *testing.T) {
	s := NewScroller(ModeAuto, 0, 0.35)

	for i := 0; i < 60; i++ {
		s.Step(1.0 / 60)
	}
	if math.Abs(s.Target()-0.35) > 1e-9 {
		t.Errorf("auto target after 1s: %.4f, want 0.35", s.Target())
	}
	if s.Offset() <= 0 {
		t.Errorf("auto offset should have started moving, got %.4f", s.Offset())
	}
}

func TestScrollerDefaults(t *testing.T) {
	s := NewScroller(ModeWheel, 0, 0)
	s.Wheel(1)
	if math.Abs(s.Target()-(-DefaultSensitivity)) > 1e-12 {
		t.Errorf("default sensitivity not applied: target %.4f", s.Target())
	}
}
