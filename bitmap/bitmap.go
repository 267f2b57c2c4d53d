// Package bitmap reads packed 1 bit per pixel images.
package bitmap

import (
	"image"
	"image/color"

	"go.afab.re/colorcast"
)

// BitOrder is the order of pixels in a byte.
type BitOrder int

const (
	// MSBFirst stores the leftmost pixel in the most significant bit.
	// This is the raw / PBM layout.
	MSBFirst BitOrder = iota
	// LSBFirst stores the leftmost pixel in the least significant bit.
	// This is the XBM layout.
	LSBFirst
)

// Raw is a packed bitmap. Each row starts on a new byte, a set bit is on.
type Raw struct {
	data   []byte
	width  int
	height int
	stride int
	order  BitOrder
}

var (
	_ colorcast.Source    = &Raw{}
	_ image.PalettedImage = &Raw{}
)

// New returns a Raw image of width pixels wide.
// The height is determined by the length of data, partial trailing rows are ignored.
// data is not copied.
func New(data []byte, width int, order BitOrder) *Raw {
	if width <= 0 {
		return &Raw{order: order}
	}

	stride := (width + 7) / 8

	return &Raw{
		data:   data,
		width:  width,
		height: len(data) / stride,
		stride: stride,
		order:  order,
	}
}

func (r *Raw) Size() image.Point {
	return image.Pt(r.width, r.height)
}

func (r *Raw) Pixel(p image.Point) (on, ok bool) {
	if p.X < 0 || p.Y < 0 || p.X >= r.width || p.Y >= r.height {
		return false, false
	}

	byt := r.data[p.Y*r.stride+p.X/8]
	bit := p.X % 8
	if r.order == MSBFirst {
		bit = 7 - bit
	}

	return byt&(1<<bit) != 0, true
}

func (r *Raw) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// ColorModel is white for off and black for on.
func (r *Raw) ColorModel() color.Model {
	return palette
}

func (r *Raw) At(x, y int) color.Color {
	return palette[r.ColorIndexAt(x, y)]
}

func (r *Raw) ColorIndexAt(x, y int) uint8 {
	if on, _ := r.Pixel(image.Pt(x, y)); on {
		return 1
	}
	return 0
}

var palette = color.Palette{color.White, color.Black}
