package gallery

import "math"

// Camera models the fixed perspective view the wall is rendered through.
// World units are arbitrary; the visible vertical extent at the wall plane
// (z=0) follows from the field of view and the camera distance, so frustum
// math stays correct across window resizes.
type Camera struct {
	FOVDeg   float64
	Distance float64

	width  int
	height int
}

func NewCamera(fovDeg, distance float64) *Camera {
	return &Camera{FOVDeg: fovDeg, Distance: distance}
}

// SetViewport records the render target size in pixels. Call whenever the
// window or device scale changes.
func (c *Camera) SetViewport(w, h int) {
	c.width = w
	c.height = h
}

func (c *Camera) Viewport() (w, h int) {
	return c.width, c.height
}

// HalfHeight returns half the visible world height at the wall plane.
func (c *Camera) HalfHeight() float64 {
	return c.Distance * math.Tan(c.FOVDeg*math.Pi/360)
}

// PixelsPerUnit returns the screen pixels covered by one world unit at z=0.
func (c *Camera) PixelsPerUnit() float64 {
	hh := c.HalfHeight()
	if hh <= 0 || c.height == 0 {
		return 0
	}
	return float64(c.height) / 2 / hh
}

// Project maps a world position to screen pixels. The returned scale is
// pixels per world unit at depth z, with z > 0 toward the camera, so
// nearer content renders larger.
func (c *Camera) Project(x, y, z float64) (sx, sy, scale float64) {
	persp := 1.0
	if d := c.Distance - z; d > 1e-6 {
		persp = c.Distance / d
	}
	scale = c.PixelsPerUnit() * persp
	sx = float64(c.width)/2 + x*scale
	sy = float64(c.height)/2 - y*scale
	return sx, sy, scale
}
