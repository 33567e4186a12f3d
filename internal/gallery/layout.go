package gallery

import (
	"math/rand"
	"time"
)

// Params configures slot placement and recycling.
type Params struct {
	// VerticalGap is the world-space distance between adjacent BaseY anchors.
	VerticalGap float64
	// SlotHeight is the base render height of one slot in world units.
	SlotHeight float64
	// RecycleBuffer is the extra margin past the frustum half height within
	// which a slot is still considered on screen.
	RecycleBuffer float64

	// Columns > 1 selects the dense multi-column variant with per-recycle
	// x/z jitter re-rolls.
	Columns      int
	ColumnSpread float64
	DepthJitter  float64

	Seed int64
}

func DefaultParams() Params {
	return Params{
		VerticalGap:   1.05,
		SlotHeight:    0.9,
		RecycleBuffer: 1.8, // two slot heights, keeps the jump off screen
		Columns:       1,
	}
}

// Engine owns the slot pool and performs the per-frame recycle/commit step.
// One slot per item, fixed for the session; a slot's item never changes,
// only its anchors teleport by whole content heights.
type Engine struct {
	params Params
	slots  []Slot
	rng    *rand.Rand

	lastOffset float64
	committed  bool
}

// NewEngine creates one slot per id, laid out in an evenly spaced column
// (or Columns columns) centered on scroll offset zero.
func NewEngine(ids []string, p Params, now time.Time) *Engine {
	if p.Columns < 1 {
		p.Columns = 1
	}
	e := &Engine{
		params: p,
		rng:    rand.New(rand.NewSource(p.Seed)),
		slots:  make([]Slot, len(ids)),
	}
	n := float64(len(ids))
	for i := range e.slots {
		s := &e.slots[i]
		s.ID = ids[i]
		s.ItemIndex = i
		s.BaseY = (float64(i) - (n-1)/2) * p.VerticalGap
		s.X, s.Z = e.jitter(i)
		s.RenderY = s.BaseY
		s.born = now
	}
	return e
}

// TotalContentHeight is the world height one full pass of the pool spans.
// Recycling jumps are always exactly this value.
func (e *Engine) TotalContentHeight() float64 {
	return float64(len(e.slots)) * e.params.VerticalGap
}

func (e *Engine) Len() int { return len(e.slots) }

func (e *Engine) Params() Params { return e.params }

// Slots exposes the pool for rendering. Callers read positions and must
// not reorder or resize it; all mutation happens in Advance.
func (e *Engine) Slots() []Slot { return e.slots }

// Advance runs one frame of the recycle state machine: slots past the top
// of the frustum-plus-buffer teleport down by one content height, slots
// past the bottom teleport up, then every RenderY is committed against the
// given offset. An idle frame (same offset, no recycle since the last
// commit) mutates nothing and reports changed=false.
func (e *Engine) Advance(offset, halfHeight float64) (recycled int, changed bool) {
	if len(e.slots) == 0 {
		return 0, false
	}
	total := e.TotalContentHeight()
	bound := halfHeight + e.params.RecycleBuffer
	for i := range e.slots {
		s := &e.slots[i]
		rel := s.BaseY - offset
		switch {
		case rel > bound:
			s.BaseY -= total
			e.reroll(s)
			recycled++
		case rel < -bound:
			s.BaseY += total
			e.reroll(s)
			recycled++
		}
	}
	if recycled == 0 && e.committed && offset == e.lastOffset {
		return 0, false
	}
	for i := range e.slots {
		s := &e.slots[i]
		s.RenderY = s.BaseY - offset
	}
	e.lastOffset = offset
	e.committed = true
	return recycled, true
}

// reroll re-jitters x/z on recycle in the multi-column variant. The single
// column keeps slots on the axis so recycling is positionally invisible.
func (e *Engine) reroll(s *Slot) {
	if e.params.Columns > 1 {
		s.X, s.Z = e.jitter(s.ItemIndex)
	}
}

func (e *Engine) jitter(index int) (x, z float64) {
	if e.params.Columns <= 1 {
		return 0, 0
	}
	cols := e.params.Columns
	colWidth := e.params.ColumnSpread / float64(cols)
	center := (float64(index%cols) - float64(cols-1)/2) * colWidth
	x = center + (e.rng.Float64()-0.5)*colWidth*0.5
	z = (e.rng.Float64() - 0.5) * 2 * e.params.DepthJitter
	return x, z
}
