//go:build !js

package clipboard

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
)

var ErrUnsupported = errors.New("clipboard: no system clipboard available")

// SystemWriter writes to the desktop clipboard (xclip/xsel/wl-copy on
// Linux, pbcopy on macOS, the Win32 API on Windows).
type SystemWriter struct{}

func (SystemWriter) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}
