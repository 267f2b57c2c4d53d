// Package lcd drives 128x64 monochrome LCD modules over a serial link.
package lcd

import (
	"fmt"
	"image"
	"io"
	"iter"
	"time"

	"go.afab.re/colorcast"
	"go.afab.re/colorcast/monochrome"
)

const (
	Width  = 128
	Height = 64

	// Bytes of one page: 8 rows, a byte per column.
	pageSize = Width
	// Frames are sent in blocks of this size.
	blockSize = 64
)

// The module needs a little time after each command.
var commandDelay = 5 * time.Millisecond

// Display is a framebuffer for the LCD. Drawing to it doesn't send anything,
// call Flush for that.
//
// Pixels are true for dark, false for light.
type Display struct {
	fb *monochrome.Image
}

var _ colorcast.Target[bool] = &Display{}

func New() *Display {
	return &Display{
		fb: monochrome.New(image.Rect(0, 0, Width, Height)),
	}
}

// Image is the framebuffer. Black is dark.
func (d *Display) Image() *monochrome.Image {
	return d.fb
}

// Clear sets every pixel to light.
func (d *Display) Clear() {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			d.fb.SetBlack(x, y, false)
		}
	}
}

// DrawPixels clips pixels outside of the display.
func (d *Display) DrawPixels(pixels iter.Seq[colorcast.Pixel[bool]]) error {
	bounds := d.fb.Bounds()

	for px := range pixels {
		if !px.Point.In(bounds) {
			continue
		}
		d.fb.SetBlack(px.Point.X, px.Point.Y, px.Color)
	}

	return nil
}

// Frame encodes the framebuffer in pages of 8 rows. Each byte is a column
// of a page, with the top row in the least significant bit.
func (d *Display) Frame() []byte {
	frame := make([]byte, Width*Height/8)

	for y := 0; y < Height; y++ {
		page := y / 8
		bit := byte(1) << (y % 8)

		for x := 0; x < Width; x++ {
			if d.fb.BlackAt(x, y) {
				frame[page*pageSize+x] |= bit
			}
		}
	}

	return frame
}

// Init resets and clears the module.
func Init(w io.Writer) error {
	for _, cmd := range [][]byte{
		{0x1B, 0x40}, // Reset.
		{0x0B},       // Home.
		{0x0C},       // Clear.
	} {
		if err := write(w, cmd); err != nil {
			return fmt.Errorf("init: %w", err)
		}
		time.Sleep(commandDelay)
	}

	return nil
}

// Flush sends the framebuffer to the module.
func (d *Display) Flush(w io.Writer) error {
	if err := write(w, []byte{0x1B, 0x47}); err != nil {
		return fmt.Errorf("graphics mode: %w", err)
	}

	frame := d.Frame()

	// The module wants even blocks first, then odd blocks.
	for pass := 0; pass < 2; pass++ {
		for i := pass * blockSize; i < len(frame); i += 2 * blockSize {
			if err := write(w, frame[i:min(i+blockSize, len(frame))]); err != nil {
				return fmt.Errorf("block %d: %w", i/blockSize, err)
			}
		}
	}

	return nil
}

// write all of b, serial ports can return short writes.
func write(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		b = b[n:]
	}
	return nil
}
