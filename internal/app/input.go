package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelNotchDelta converts one ebiten wheel unit into the browser-style
// delta units the scroller sensitivity is tuned for.
const wheelNotchDelta = 120

// wheelDelta returns this frame's vertical wheel movement in delta units,
// positive meaning "scroll down".
func wheelDelta() float64 {
	_, wy := ebiten.Wheel()
	return -wy * wheelNotchDelta
}

// appendTouches reports whether any touches are active, reusing buf.
func appendTouches(buf []ebiten.TouchID) ([]ebiten.TouchID, bool) {
	buf = ebiten.AppendTouchIDs(buf[:0])
	return buf, len(buf) > 0
}

func fullscreenToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt)
}

func backPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func clicked() (x, y int, ok bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		ok = true
	}
	return
}
