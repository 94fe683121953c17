// golang.design/x/clipboard panics instead of failing Init
// when built without cgo, so those builds get clipboard_dummy.go.

//go:build !js && (windows || cgo)

package main

import (
	"context"
	"fmt"

	"golang.design/x/clipboard"

	"github.com/iburimskiy/lavafield/internal/logs"
)

// copyImage puts png on the clipboard and holds it until something else
// replaces it or ctx ends. On X11 the image is only available while we own
// the selection.
func copyImage(ctx context.Context, png []byte) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("%w: %w", errClipboardUnavailable, err)
	}

	changed := clipboard.Write(clipboard.FmtImage, png)

	logs.InfoLogger.Print("copied to clipboard, holding it until replaced or interrupted")
	select {
	case <-changed:
	case <-ctx.Done():
	}
	return nil
}
