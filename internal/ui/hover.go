package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HoverLabel is the floating title that follows the pointer while a slot
// is hovered. The renderer reports titles into it; Draw shows nothing when
// no slot is hovered.
type HoverLabel struct {
	title string
	x, y  int
}

// Set reports a hovered item's title and the current pointer position.
func (h *HoverLabel) Set(title string, x, y int) {
	h.title = title
	h.x = x
	h.y = y
}

// Clear hides the label. Call on pointer leave.
func (h *HoverLabel) Clear() {
	h.title = ""
}

func (h *HoverLabel) Title() string { return h.title }

func (h *HoverLabel) Draw(dst *ebiten.Image) {
	if h.title == "" {
		return
	}
	w, th := MeasureText(h.title, FontSizeLabel)
	x := float64(h.x) + HoverOffsetX
	y := float64(h.y) + HoverOffsetY

	// Keep the label on screen near the edges.
	bounds := dst.Bounds()
	if x+w+HoverPad*2 > float64(bounds.Dx()) {
		x = float64(h.x) - HoverOffsetX - w - HoverPad*2
	}
	if y+th+HoverPad*2 > float64(bounds.Dy()) {
		y = float64(h.y) - HoverOffsetY - th - HoverPad*2
	}

	vector.DrawFilledRect(dst,
		float32(x), float32(y),
		float32(w+HoverPad*2), float32(th+HoverPad*2),
		ColorShadow, false)
	DrawText(dst, h.title, x+HoverPad, y+HoverPad, FontSizeLabel, ColorText)
}
