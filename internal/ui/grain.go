package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Film-grain overlay: a full-screen noise quad whose pattern reseeds every
// frame through the Time uniform.
const grainSrc = `//kage:unit pixels

package main

var Time float
var Strength float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := dstPos.xy + vec2(Time*61.0, Time*83.0)
	n := fract(sin(dot(p, vec2(12.9898, 78.233))) * 43758.5453)
	a := n * Strength
	return vec4(a, a, a, a)
}
`

type Grain struct {
	shader   *ebiten.Shader
	strength float64
	frame    int
}

func NewGrain(strength float64) (*Grain, error) {
	sh, err := ebiten.NewShader([]byte(grainSrc))
	if err != nil {
		return nil, fmt.Errorf("grain shader: %w", err)
	}
	return &Grain{shader: sh, strength: strength}, nil
}

func (g *Grain) Draw(dst *ebiten.Image) {
	if g == nil || g.strength <= 0 {
		return
	}
	g.frame++
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Time":     float32(g.frame%240) / 60,
		"Strength": float32(g.strength),
	}
	dst.DrawRectShader(dst.Bounds().Dx(), dst.Bounds().Dy(), g.shader, op)
}
