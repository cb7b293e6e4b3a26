// Package postfx implements the glow/bloom post-process: a source layer
// is downsampled, gaussian-blurred in two separable passes, and
// composited back additively.
package postfx

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Separable 9-tap gaussian. Direction is (1,0) for the horizontal pass
// and (0,1) for the vertical one, in pixels of the source image.
const blurShaderSrc = `package main

var Direction vec2

func Fragment(position vec4, texCoord vec2, color vec4) vec4 {
	texel := Direction / imageSrcTextureSize()
	sum := imageSrc0At(texCoord) * 0.227027
	sum += (imageSrc0At(texCoord+texel) + imageSrc0At(texCoord-texel)) * 0.1945946
	sum += (imageSrc0At(texCoord+2.0*texel) + imageSrc0At(texCoord-2.0*texel)) * 0.1216216
	sum += (imageSrc0At(texCoord+3.0*texel) + imageSrc0At(texCoord-3.0*texel)) * 0.054054
	sum += (imageSrc0At(texCoord+4.0*texel) + imageSrc0At(texCoord-4.0*texel)) * 0.016216
	return sum
}
`

// Glow blurs a screen-sized source at reduced resolution and adds the
// result onto a destination. The shader and the two ping-pong buffers
// live for the whole process.
type Glow struct {
	shader *ebiten.Shader
	scale  int
	pingA  *ebiten.Image
	pingB  *ebiten.Image
}

// NewGlow compiles the blur shader and allocates buffers for sources of
// the given size, blurred at 1/scale resolution.
func NewGlow(width, height, scale int) (*Glow, error) {
	shader, err := ebiten.NewShader([]byte(blurShaderSrc))
	if err != nil {
		return nil, fmt.Errorf("compile blur shader: %w", err)
	}
	return &Glow{
		shader: shader,
		scale:  scale,
		pingA:  ebiten.NewImage(width/scale, height/scale),
		pingB:  ebiten.NewImage(width/scale, height/scale),
	}, nil
}

// Render blurs src and composites it additively onto dst. src must have
// the size NewGlow was given.
func (g *Glow) Render(dst, src *ebiten.Image) error {
	w, h := g.pingA.Bounds().Dx(), g.pingA.Bounds().Dy()
	if src.Bounds().Dx()/g.scale != w || src.Bounds().Dy()/g.scale != h {
		return fmt.Errorf("glow source is %v, want %dx%d", src.Bounds().Size(), w*g.scale, h*g.scale)
	}

	// Downsample.
	g.pingA.Clear()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1/float64(g.scale), 1/float64(g.scale))
	op.Filter = ebiten.FilterLinear
	g.pingA.DrawImage(src, op)

	// Horizontal then vertical blur.
	g.blurPass(g.pingB, g.pingA, 1, 0)
	g.blurPass(g.pingA, g.pingB, 0, 1)

	// Additive composite back at full size.
	cop := &ebiten.DrawImageOptions{}
	cop.GeoM.Scale(float64(g.scale), float64(g.scale))
	cop.Filter = ebiten.FilterLinear
	cop.Blend = ebiten.BlendLighter
	dst.DrawImage(g.pingA, cop)

	return nil
}

func (g *Glow) blurPass(dst, src *ebiten.Image, dx, dy float32) {
	dst.Clear()
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = src
	op.Uniforms = map[string]any{
		"Direction": []float32{dx, dy},
	}
	dst.DrawRectShader(src.Bounds().Dx(), src.Bounds().Dy(), g.shader, op)
}
