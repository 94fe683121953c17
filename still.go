package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"

	"github.com/iburimskiy/lavafield/internal/config"
	"github.com/iburimskiy/lavafield/internal/logs"
	"github.com/iburimskiy/lavafield/internal/raster"
)

var errClipboardUnavailable = errors.New("clipboard unavailable")

func parseSize(s string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("size %q: want WIDTHxHEIGHT: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: width and height must be positive", s)
	}
	return w, h, nil
}

// exportStill renders the frame at FlagAt without opening a window.
func exportStill(cfg *config.Config, path string) error {
	w, h, err := parseSize(FlagSize)
	if err != nil {
		return err
	}
	if FlagAt < 0 {
		return fmt.Errorf("time %v is negative", FlagAt)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := raster.Render(ctx, img, FlagAt, cfg.Render.Aurora); err != nil {
		return err
	}

	stats := raster.Stats(img)
	logs.InfoLogger.Printf("rendered %dx%d at %.3fs: mean luma %.4f, black %.1f%%",
		w, h, FlagAt, stats.MeanLuma, stats.BlackFraction*100)

	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, img); err != nil {
		return err
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0644); err != nil {
		return err
	}
	logs.InfoLogger.Printf("wrote %s", path)

	if FlagCopy {
		if err := copyImage(ctx, buffer.Bytes()); err != nil {
			logs.WarnLogger.Printf("not copied: %v", err)
		}
	}

	return nil
}
