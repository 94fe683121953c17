//go:build js || (!windows && !cgo)

package main

import "context"

func copyImage(ctx context.Context, png []byte) error {
	return errClipboardUnavailable
}
