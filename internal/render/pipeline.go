// Package render hosts the field program on the GPU through ebiten.
package render

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/lavafield/internal/field"
)

//go:embed field.kage
var fieldSource []byte

var (
	// ErrContextUnavailable means no GPU context could be created. Nothing was rendered.
	ErrContextUnavailable = errors.New("gpu context unavailable")
	// ErrProgramBuild means the field program did not compile.
	ErrProgramBuild = errors.New("field program build failed")
)

// Frame is everything the program reads besides the pixel position.
type Frame struct {
	Width, Height int
	// Time is in seconds.
	Time float64
}

func (f Frame) Valid() bool {
	return f.Width > 0 && f.Height > 0 && f.Time >= 0
}

func (f Frame) Resolution() field.Vec2 {
	return field.V2(float64(f.Width), float64(f.Height))
}

type Options struct {
	// ShaderPath replaces the embedded program when set.
	ShaderPath string
	ClearColor color.Color
	Aurora     field.AuroraMode
}

// Pipeline is created once at startup and is read only afterwards.
type Pipeline struct {
	shader     *ebiten.Shader
	clearColor color.Color
	auroraMix  float32
}

// Source returns the field program, from path if it is set.
func Source(path string) ([]byte, error) {
	if path == "" {
		return fieldSource, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProgramBuild, err)
	}
	return src, nil
}

func NewPipeline(opts Options) (*Pipeline, error) {
	src, err := Source(opts.ShaderPath)
	if err != nil {
		return nil, err
	}

	shader, err := ebiten.NewShader(src)
	if err != nil {
		// the compiler diagnostic travels in the error; the caller logs it
		return nil, fmt.Errorf("%w: %w", ErrProgramBuild, err)
	}

	p := &Pipeline{
		shader:     shader,
		clearColor: opts.ClearColor,
	}
	if p.clearColor == nil {
		p.clearColor = color.Black
	}
	if opts.Aurora == field.AuroraAdditive {
		p.auroraMix = 1
	}

	return p, nil
}

func (p *Pipeline) Uniforms(f Frame) map[string]any {
	return map[string]any{
		"Resolution": []float32{float32(f.Width), float32(f.Height)},
		"Time":       float32(f.Time),
		"AuroraMix":  p.auroraMix,
	}
}

// Draw evaluates the field once for every pixel of dst.
func (p *Pipeline) Draw(dst *ebiten.Image, f Frame) {
	dst.Fill(p.clearColor)

	if !f.Valid() {
		return
	}

	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = p.Uniforms(f)

	bounds := dst.Bounds()
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), p.shader, op)
}

// Release frees the GPU program. p must not be drawn afterwards.
func (p *Pipeline) Release() {
	if p.shader != nil {
		p.shader.Deallocate()
		p.shader = nil
	}
}
