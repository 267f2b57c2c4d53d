// Package rgb565 implements the 16 bit color space used by most small color displays.
package rgb565

import (
	"image"
	"image/color"
	"iter"

	"go.afab.re/colorcast"
)

// Color is 5 bits of red, 6 of green and 5 of blue, red in the high bits.
type Color uint16

const (
	Black Color = 0x0000
	White Color = 0xFFFF
	Red   Color = 0xF800
	Green Color = 0x07E0
	Blue  Color = 0x001F
)

// RGB converts 8 bit components, discarding the low bits.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGB888 expands the color to 8 bit components, replicating the high bits
// so White stays 0xFF.
func (c Color) RGB888() (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1F
	g6 := uint8(c>>5) & 0x3F
	b5 := uint8(c) & 0x1F

	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB888()
	return color.RGBA{R: r8, G: g8, B: b8, A: 0xFF}.RGBA()
}

// Model converts any color to a Color. Alpha is ignored.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
})

// Image is a little endian RGB565 framebuffer.
type Image struct {
	Pix []byte
	// Stride is the number of bytes between vertically adjacent pixels.
	Stride int
	Rect   image.Rectangle
}

var (
	_ image.Image             = &Image{}
	_ colorcast.Target[Color] = &Image{}
)

func New(r image.Rectangle) *Image {
	return &Image{
		Pix:    make([]byte, 2*r.Dx()*r.Dy()),
		Stride: 2 * r.Dx(),
		Rect:   r,
	}
}

// NewFrom uses pix as the framebuffer, for memory that is owned elsewhere.
func NewFrom(pix []byte, stride int, r image.Rectangle) *Image {
	return &Image{
		Pix:    pix,
		Stride: stride,
		Rect:   r,
	}
}

func (m *Image) Bounds() image.Rectangle { return m.Rect }
func (m *Image) ColorModel() color.Model { return Model }

func (m *Image) PixOffset(x, y int) int {
	return (y-m.Rect.Min.Y)*m.Stride + (x-m.Rect.Min.X)*2
}

func (m *Image) At(x, y int) color.Color {
	return m.RGB565At(x, y)
}

func (m *Image) RGB565At(x, y int) Color {
	if !image.Pt(x, y).In(m.Rect) {
		return Black
	}

	pix := m.Pix[m.PixOffset(x, y):]
	return Color(pix[0]) | Color(pix[1])<<8
}

func (m *Image) Set(x, y int, c color.Color) {
	m.SetRGB565(x, y, Model.Convert(c).(Color))
}

func (m *Image) SetRGB565(x, y int, c Color) {
	if !image.Pt(x, y).In(m.Rect) {
		return
	}

	pix := m.Pix[m.PixOffset(x, y):]
	pix[0] = byte(c)
	pix[1] = byte(c >> 8)
}

// Fill sets every pixel to c.
func (m *Image) Fill(c Color) {
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
			m.SetRGB565(x, y, c)
		}
	}
}

// DrawPixels clips pixels outside of the image.
func (m *Image) DrawPixels(pixels iter.Seq[colorcast.Pixel[Color]]) error {
	for px := range pixels {
		m.SetRGB565(px.Point.X, px.Point.Y, px.Color)
	}
	return nil
}
