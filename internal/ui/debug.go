package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// DebugStats is the per-frame snapshot the wall hands to the overlay.
type DebugStats struct {
	Offset   float64
	Target   float64
	Slots    int
	Visible  int
	Recycles int // cumulative
	Resolved int
	Textures int
}

// ToggleDebugOverlay toggles the overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DrawDebugOverlay draws wall internals if the overlay is visible.
func DrawDebugOverlay(screen *ebiten.Image, st DebugStats) {
	if !debugOverlayVisible {
		return
	}

	const (
		pad   = 12.0
		lineH = 18.0
	)

	lines := []string{
		fmt.Sprintf("fps %.1f  tps %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("offset %.3f -> %.3f", st.Offset, st.Target),
		fmt.Sprintf("slots %d  visible %d", st.Slots, st.Visible),
		fmt.Sprintf("recycles %d", st.Recycles),
		fmt.Sprintf("probes %d/%d  textures %d/%d", st.Resolved, st.Slots, st.Textures, st.Slots),
	}

	panelW := 300.0
	panelH := float64(len(lines))*lineH + pad*2
	vector.DrawFilledRect(screen, 16, 16, float32(panelW), float32(panelH), ColorShadow, false)

	y := 16 + pad
	for _, line := range lines {
		DrawText(screen, line, 16+pad, y, FontSizeCaption, ColorText)
		y += lineH
	}
}
