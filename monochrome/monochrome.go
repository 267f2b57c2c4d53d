package monochrome

import (
	"image"
	"image/color"

	"go.afab.re/colorcast"
)

// Palette of every Image: index 0 is white (off), 1 is black (on).
func Palette() color.Palette {
	return color.Palette{color.White, color.Black}
}

const (
	white uint8 = iota
	black
)

// Image is an image with black data on a white background.
// Black pixels are on when it is used as a colorcast.Source.
type Image struct {
	// A byte per pixel. bitmap.Raw is the packed equivalent,
	// this is easier to draw into.
	p *image.Paletted
}

// PNG encodes PalettedImages with two colors as 1 bit images.
var (
	_ image.PalettedImage = &Image{}
	_ colorcast.Source    = &Image{}
)

func New(r image.Rectangle) *Image {
	return &Image{
		p: image.NewPaletted(r, Palette()),
	}
}

func (m *Image) ColorModel() color.Model {
	return m.p.ColorModel()
}

func (m *Image) Bounds() image.Rectangle {
	return m.p.Bounds()
}

func (m *Image) At(x, y int) color.Color {
	return m.p.At(x, y)
}

func (m *Image) ColorIndexAt(x, y int) uint8 {
	return m.p.ColorIndexAt(x, y)
}

// Set quantizes c to black or white.
func (m *Image) Set(x, y int, c color.Color) {
	m.p.Set(x, y, c)
}

func (m *Image) BlackAt(x, y int) bool {
	return m.p.ColorIndexAt(x, y) == black
}

func (m *Image) SetBlack(x, y int, isBlack bool) {
	if isBlack {
		m.p.SetColorIndex(x, y, black)
	} else {
		m.p.SetColorIndex(x, y, white)
	}
}

func (m *Image) Size() image.Point {
	return m.p.Bounds().Size()
}

// Pixel reports if the pixel at p is black.
// p is relative to the top left corner of Bounds(), which isn't necessarily (0, 0).
func (m *Image) Pixel(p image.Point) (on, ok bool) {
	p = p.Add(m.p.Bounds().Min)
	if !p.In(m.p.Bounds()) {
		return false, false
	}
	return m.BlackAt(p.X, p.Y), true
}
