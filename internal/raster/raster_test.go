package raster

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/lavafield/internal/field"
)

func TestRenderMatchesShade(t *testing.T) {
	const w, h = 64, 48
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	require.NoError(t, Render(context.Background(), img, 7.5, field.AuroraOff))

	res := field.V2(w, h)
	for _, p := range []image.Point{{0, 0}, {w - 1, h - 1}, {w / 2, h / 2}, {13, 40}} {
		want := ToRGBA(field.Shade(field.PixelCenter(p.X, p.Y, res), res, 7.5, field.AuroraOff))
		assert.Equal(t, want, img.RGBAAt(p.X, p.Y), "pixel %v", p)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			require.Equal(t, uint8(255), img.RGBAAt(x, y).A)
		}
	}
}

func TestRenderSubImage(t *testing.T) {
	full := image.NewRGBA(image.Rect(0, 0, 40, 40))
	sub := full.SubImage(image.Rect(10, 10, 30, 30)).(*image.RGBA)
	require.NoError(t, Render(context.Background(), sub, 1, field.AuroraOff))

	fresh := image.NewRGBA(image.Rect(0, 0, 20, 20))
	require.NoError(t, Render(context.Background(), fresh, 1, field.AuroraOff))

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			require.Equal(t, fresh.RGBAAt(x, y), sub.RGBAAt(10+x, 10+y))
		}
	}
	assert.Equal(t, color.RGBA{}, full.RGBAAt(0, 0), "outside the sub image is untouched")
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	assert.ErrorIs(t, Render(ctx, img, 0, field.AuroraOff), context.Canceled)
}

func TestToRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, ToRGBA(field.Black))
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, ToRGBA(field.RGB{R: 2, G: 0.5, B: -1}))
}

func TestStats(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(1, 1, color.RGBA{0, 0, 0, 255})

	s := Stats(img)
	assert.InDelta(t, 0.25, s.MeanLuma, 1e-9)
	assert.InDelta(t, 0.75, s.BlackFraction, 1e-12)

	assert.Equal(t, FrameStats{}, Stats(image.NewRGBA(image.Rectangle{})))
}

func TestStatsCountsBlackOnSubImage(t *testing.T) {
	full := image.NewRGBA(image.Rect(0, 0, 5, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			full.SetRGBA(x, y, color.RGBA{10, 20, 30, 255})
		}
	}
	full.SetRGBA(2, 1, color.RGBA{0, 0, 0, 255})
	// outside the sub image, must not be counted
	full.SetRGBA(0, 0, color.RGBA{0, 0, 0, 255})

	s := Stats(full.SubImage(image.Rect(1, 1, 4, 2)).(*image.RGBA))
	assert.InDelta(t, 1.0/3.0, s.BlackFraction, 1e-12)
}
