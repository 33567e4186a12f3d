package gallery

import (
	"math"
	"testing"
	"time"
)

func testIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}
	return ids
}

// residues returns every BaseY mod totalContentHeight, normalized to
// [0, total). Recycling must never change this set.
func residues(e *Engine) []float64 {
	total := e.TotalContentHeight()
	out := make([]float64, 0, e.Len())
	for _, s := range e.Slots() {
		r := math.Mod(s.BaseY, total)
		if r < 0 {
			r += total
		}
		out = append(out, r)
	}
	sortFloats(out)
	return out
}

func sortFloats(v []float64) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j] < v[j-1]; j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}

func TestInitialSpacing(t *testing.T) {
	p := DefaultParams()
	e := NewEngine(testIDs(16), p, time.Now())

	res := residues(e)
	if len(res) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(res))
	}
	// Circular gaps between sorted residues must all equal VerticalGap.
	total := e.TotalContentHeight()
	for i := range res {
		next := res[(i+1)%len(res)]
		gap := next - res[i]
		if i == len(res)-1 {
			gap += total
		}
		if math.Abs(gap-p.VerticalGap) > 1e-9 {
			t.Errorf("gap %d: expected %.4f, got %.4f", i, p.VerticalGap, gap)
		}
	}
}

func TestRecyclePreservesSpacing(t *testing.T) {
	p := DefaultParams()
	p.RecycleBuffer = 2
	e := NewEngine(testIDs(16), p, time.Now())

	before := residues(e)
	recycles := 0
	for off := 0.0; off <= 20; off += 0.5 {
		r, _ := e.Advance(off, 4)
		recycles += r
		after := residues(e)
		for i := range before {
			if math.Abs(after[i]-before[i]) > 1e-9 {
				t.Fatalf("offset %.1f: residue %d drifted from %.6f to %.6f",
					off, i, before[i], after[i])
			}
		}
	}
	if recycles == 0 {
		t.Error("expected at least one recycle scrolling to offset 20")
	}
	if e.Len() != 16 {
		t.Errorf("slot count changed: %d", e.Len())
	}
}

func TestRecycleRoundTrip(t *testing.T) {
	p := DefaultParams()
	e := NewEngine(testIDs(16), p, time.Now())

	const halfH = 10.0
	total := e.TotalContentHeight()
	bound := halfH + p.RecycleBuffer

	e.Advance(0, halfH)
	initial := make([]float64, e.Len())
	for i, s := range e.Slots() {
		initial[i] = s.RenderY
	}

	// Out and back along the same path. Recycling is hysteretic, so a slot
	// need not land on its starting anchor, but it must come back to a
	// position congruent to it and inside the window.
	for off := 0.0; off <= 15; off += 0.25 {
		e.Advance(off, halfH)
	}
	for off := 15.0; off >= 0; off -= 0.25 {
		e.Advance(off, halfH)
	}
	e.Advance(0, halfH)

	for i, s := range e.Slots() {
		d := s.RenderY - initial[i]
		jumps := math.Round(d / total)
		if math.Abs(d-jumps*total) > 1e-6 {
			t.Errorf("slot %d: renderY %.6f not congruent to %.6f mod %.4f",
				i, s.RenderY, initial[i], total)
		}
		if math.Abs(s.RenderY) > bound+1e-9 {
			t.Errorf("slot %d: renderY %.6f outside ±%.3f after round trip",
				i, s.RenderY, bound)
		}
	}
}

func TestRecycledSlotsStayInWindow(t *testing.T) {
	p := DefaultParams()
	e := NewEngine(testIDs(16), p, time.Now())

	const halfH = 10.0
	bound := halfH + p.RecycleBuffer
	for off := 0.0; off <= 40; off += 0.25 {
		e.Advance(off, halfH)
		for i, s := range e.Slots() {
			if math.Abs(s.RenderY) > bound+1e-9 {
				t.Fatalf("offset %.2f: slot %d renderY %.3f outside ±%.3f",
					off, i, s.RenderY, bound)
			}
		}
	}
}

func TestNoDuplicateVisibleItems(t *testing.T) {
	p := DefaultParams()
	e := NewEngine(testIDs(16), p, time.Now())

	const halfH = 4.0
	for off := 0.0; off <= 30; off += 1.0 {
		e.Advance(off, halfH)
		seen := map[int]bool{}
		for _, s := range e.Slots() {
			if math.Abs(s.RenderY) > halfH {
				continue
			}
			if seen[s.ItemIndex] {
				t.Fatalf("offset %.0f: item %d visible twice", off, s.ItemIndex)
			}
			seen[s.ItemIndex] = true
		}
	}
}

func TestIdleFrameMutatesNothing(t *testing.T) {
	e := NewEngine(testIDs(8), DefaultParams(), time.Now())

	if _, changed := e.Advance(0.5, 4); !changed {
		t.Fatal("first frame must commit positions")
	}
	before := make([]float64, e.Len())
	for i, s := range e.Slots() {
		before[i] = s.RenderY
	}

	recycled, changed := e.Advance(0.5, 4)
	if recycled != 0 || changed {
		t.Errorf("idle frame: recycled=%d changed=%v, want 0/false", recycled, changed)
	}
	for i, s := range e.Slots() {
		if s.RenderY != before[i] {
			t.Errorf("idle frame mutated slot %d", i)
		}
	}
}

func TestZeroItems(t *testing.T) {
	e := NewEngine(nil, DefaultParams(), time.Now())
	recycled, changed := e.Advance(5, 4)
	if recycled != 0 || changed {
		t.Errorf("zero items: recycled=%d changed=%v, want 0/false", recycled, changed)
	}
	if e.TotalContentHeight() != 0 {
		t.Errorf("zero items: content height %.2f", e.TotalContentHeight())
	}
}

func TestMultiColumnJitterRerolls(t *testing.T) {
	p := DefaultParams()
	p.Columns = 3
	p.ColumnSpread = 4
	p.DepthJitter = 0.5
	p.RecycleBuffer = 1
	e := NewEngine(testIDs(9), p, time.Now())

	s0 := e.Slots()[0]
	x0, z0 := s0.X, s0.Z

	// Scroll until slot 0 recycles at least once.
	rerolled := false
	for off := 0.0; off <= 60 && !rerolled; off += 0.5 {
		e.Advance(off, 3)
		s := e.Slots()[0]
		if s.X != x0 || s.Z != z0 {
			rerolled = true
		}
	}
	if !rerolled {
		t.Error("multi-column slot never re-rolled jitter across recycles")
	}
	for _, s := range e.Slots() {
		if math.Abs(s.Z) > p.DepthJitter {
			t.Errorf("slot %s depth %.3f exceeds jitter bound %.3f", s.ID, s.Z, p.DepthJitter)
		}
	}
}
