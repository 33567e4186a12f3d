package gallery

import (
	"math"
	"testing"
)

func TestCameraHalfHeight(t *testing.T) {
	c := NewCamera(50, 8.5)
	want := 8.5 * math.Tan(25*math.Pi/180)
	if math.Abs(c.HalfHeight()-want) > 1e-9 {
		t.Errorf("half height %.6f, want %.6f", c.HalfHeight(), want)
	}
}

func TestCameraProject(t *testing.T) {
	c := NewCamera(50, 8.5)
	c.SetViewport(1920, 1080)

	sx, sy, _ := c.Project(0, 0, 0)
	if sx != 960 || sy != 540 {
		t.Errorf("origin projects to (%.1f, %.1f), want screen center", sx, sy)
	}

	// World up is screen up.
	_, syUp, _ := c.Project(0, 1, 0)
	if syUp >= 540 {
		t.Errorf("y=+1 projected to %.1f, expected above center", syUp)
	}

	// Content nearer the camera renders larger.
	_, _, s0 := c.Project(0, 0, 0)
	_, _, s1 := c.Project(0, 0, 1)
	if s1 <= s0 {
		t.Errorf("perspective scale at z=1 (%.2f) not larger than at z=0 (%.2f)", s1, s0)
	}
}

func TestCameraUnsetViewport(t *testing.T) {
	c := NewCamera(50, 8.5)
	if c.PixelsPerUnit() != 0 {
		t.Errorf("pixels per unit without viewport: %.2f, want 0", c.PixelsPerUnit())
	}
}
