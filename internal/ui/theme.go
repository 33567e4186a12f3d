package ui

import "image/color"

// Colors — near-black gallery backdrop, soft monochrome text
var (
	ColorBackground  = color.RGBA{R: 0x0A, G: 0x0A, B: 0x0B, A: 0xFF}
	ColorSurface     = color.RGBA{R: 0x17, G: 0x17, B: 0x19, A: 0xFF}
	ColorText        = color.RGBA{R: 0xEC, G: 0xEC, B: 0xE8, A: 0xFF}
	ColorTextMuted   = color.RGBA{R: 0x6E, G: 0x6E, B: 0x70, A: 0xFF}
	ColorPlaceholder = color.RGBA{R: 0x20, G: 0x20, B: 0x23, A: 0xFF}
	ColorBadge       = color.RGBA{R: 0xA3, G: 0xA3, B: 0xA0, A: 0xB0}
	ColorShadow      = color.RGBA{A: 0xA0}
)

// Layout constants
const (
	FontSizeLabel   = 15.0
	FontSizeCaption = 12.0

	HoverOffsetX = 16.0
	HoverOffsetY = 12.0
	HoverPad     = 7.0
)
