// Package term renders the CHIP-8 display as text.
package term

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/mnafees/chopper/internal"
)

// Render writes fb to w, one line per display row, using on for lit pixels
// and off for unlit ones.
func Render(w io.Writer, fb *internal.Framebuffer, on, off rune) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < internal.ScreenHeight; y++ {
		for x := 0; x < internal.ScreenWidth; x++ {
			r := off
			if fb.At(x, y) {
				r = on
			}
			if _, err := bw.WriteRune(r); err != nil {
				return errors.Wrapf(err, "rendering row %d", y)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrapf(err, "rendering row %d", y)
		}
	}
	return errors.Wrap(bw.Flush(), "rendering display")
}
