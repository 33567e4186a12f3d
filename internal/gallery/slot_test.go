package gallery

import (
	"testing"
	"time"
)

func TestEntranceMonotonic(t *testing.T) {
	born := time.Now()
	e := NewEngine([]string{"a"}, DefaultParams(), born)
	s := &e.Slots()[0]

	if got := s.Entrance(born); got != 0 {
		t.Errorf("entrance at birth: %.4f, want 0", got)
	}

	prev := 0.0
	for ms := 0; ms <= 1200; ms += 16 {
		p := s.Entrance(born.Add(time.Duration(ms) * time.Millisecond))
		if p < prev {
			t.Fatalf("entrance regressed at %dms: %.4f < %.4f", ms, p, prev)
		}
		if p < 0 || p > 1 {
			t.Fatalf("entrance out of range at %dms: %.4f", ms, p)
		}
		prev = p
	}
	if got := s.Entrance(born.Add(EntranceDuration)); got != 1 {
		t.Errorf("entrance at full duration: %.4f, want 1", got)
	}
}

func TestEntranceSurvivesRecycling(t *testing.T) {
	born := time.Now()
	e := NewEngine(testIDs(4), DefaultParams(), born)

	mid := born.Add(EntranceDuration / 2)
	before := e.Slots()[0].Entrance(mid)

	// Force plenty of recycling.
	for off := 0.0; off <= 30; off += 0.5 {
		e.Advance(off, 2)
	}

	after := e.Slots()[0].Entrance(mid)
	if before != after {
		t.Errorf("recycling changed entrance progress: %.4f -> %.4f", before, after)
	}
}

func TestEdgeFade(t *testing.T) {
	const halfH = 4.0

	if got := EdgeFade(0, halfH); got != 1 {
		t.Errorf("fade at center: %.4f, want 1", got)
	}
	if got := EdgeFade(halfH, halfH); got != 0 {
		t.Errorf("fade at edge: %.4f, want 0", got)
	}
	if got := EdgeFade(-halfH*2, halfH); got != 0 {
		t.Errorf("fade past edge: %.4f, want 0", got)
	}

	// Strictly decreasing through the fade band, symmetric in sign.
	prev := 1.0
	for y := 2.9; y < 4.0; y += 0.1 {
		f := EdgeFade(y, halfH)
		if f > prev {
			t.Fatalf("fade increased at y=%.1f: %.4f > %.4f", y, f, prev)
		}
		if f != EdgeFade(-y, halfH) {
			t.Fatalf("fade asymmetric at y=%.1f", y)
		}
		prev = f
	}

	if got := EdgeFade(1, 0); got != 0 {
		t.Errorf("degenerate half height: %.4f, want 0", got)
	}
}
