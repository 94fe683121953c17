// Package raster evaluates the field on the CPU into an image.
package raster

import (
	"context"
	"image"
	"image/color"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/iburimskiy/lavafield/internal/field"
)

// rows handed to one worker at a time
const bandHeight = 16

// Render shades every pixel of img at time. Pixels are independent, so
// horizontal bands are shaded in parallel.
func Render(ctx context.Context, img *image.RGBA, time float64, mode field.AuroraMode) error {
	bounds := img.Bounds()
	resolution := field.V2(float64(bounds.Dx()), float64(bounds.Dy()))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for y0 := 0; y0 < bounds.Dy(); y0 += bandHeight {
		y1 := min(y0+bandHeight, bounds.Dy())

		y0 := y0
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for y := y0; y < y1; y++ {
				for x := 0; x < bounds.Dx(); x++ {
					c := field.Shade(field.PixelCenter(x, y, resolution), resolution, time, mode)
					img.SetRGBA(bounds.Min.X+x, bounds.Min.Y+y, ToRGBA(c))
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// ToRGBA quantizes an in-gamut colour to 8 bits per channel, opaque.
func ToRGBA(c field.RGB) color.RGBA {
	c = c.Clamp01()
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: 255,
	}
}

type FrameStats struct {
	// MeanLuma is the mean Rec. 709 luma in [0, 1].
	MeanLuma float64
	// BlackFraction is the share of pixels under the black point.
	BlackFraction float64
}

func Stats(img *image.RGBA) FrameStats {
	bounds := img.Bounds()
	n := bounds.Dx() * bounds.Dy()
	if n == 0 {
		return FrameStats{}
	}

	luma := make([]float64, 0, n)
	black := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			luma = append(luma, (0.2126*float64(c.R)+0.7152*float64(c.G)+0.0722*float64(c.B))/255)

			if c.R == 0 && c.G == 0 && c.B == 0 {
				black++
			}
		}
	}

	return FrameStats{
		MeanLuma:      stat.Mean(luma, nil),
		BlackFraction: float64(black) / float64(n),
	}
}
