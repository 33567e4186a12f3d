package icon

import (
	"image"
	"image/color"
)

var (
	darkBG = color.RGBA{R: 0x0A, G: 0x0A, B: 0x0B, A: 0xFF}
	frame0 = color.RGBA{R: 0xEC, G: 0xEC, B: 0xE8, A: 0xFF}
	frame1 = color.RGBA{R: 0x9A, G: 0x9A, B: 0x9E, A: 0xFF}
	frame2 = color.RGBA{R: 0x4A, G: 0x4A, B: 0x4E, A: 0xFF}
)

// Generate returns 64x64 and 32x32 window icons: three media frames
// drifting upward out of view.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, s, s, darkBG)

	// Bottom frame leaving at the top edge, middle frame centered, top
	// frame entering from below — one column of the wall.
	w := s * 0.56
	h := s * 0.34
	x := (s - w) / 2
	fillRect(img, x, -h*0.4, w, h, frame2)
	fillRect(img, x, s*0.33, w, h, frame0)
	fillRect(img, x, s*0.33+h+s*0.08, w, h, frame1)

	return img
}

func fillRect(img *image.RGBA, xf, yf, wf, hf float64, c color.RGBA) {
	bounds := img.Bounds()
	for y := int(yf); y < int(yf+hf); y++ {
		if y < 0 || y >= bounds.Max.Y {
			continue
		}
		for x := int(xf); x < int(xf+wf); x++ {
			if x < 0 || x >= bounds.Max.X {
				continue
			}
			img.SetRGBA(x, y, c)
		}
	}
}
