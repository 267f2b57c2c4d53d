// Package colorcast draws two color images onto surfaces with a richer color space.
//
// On pixels are drawn in a single color, off pixels are left untouched. The source
// bitmap is read at draw time and never converted or copied.
package colorcast

import (
	"image"
	"iter"
)

// Source is a two color image.
//
// Its top left corner is always (0, 0).
type Source interface {
	// Size is the width and height of the image. Neither can be negative.
	Size() image.Point
	// Pixel reports whether the pixel at p is on.
	// ok is false if p is outside the image.
	Pixel(p image.Point) (on, ok bool)
}

// Pixel is a single positioned pixel.
type Pixel[C any] struct {
	Point image.Point
	Color C
}

// Target is a surface pixels can be drawn to.
type Target[C any] interface {
	// DrawPixels draws every pixel of the sequence.
	// On error, it stops consuming the sequence.
	DrawPixels(pixels iter.Seq[Pixel[C]]) error
}

// Drawable is anything that can be drawn to a Target.
type Drawable[C any] interface {
	Draw(t Target[C]) error
	Bounds() image.Rectangle
}

var _ Drawable[bool] = Image[bool]{}

// Image casts a Source to a single color C at a position.
//
// The Source is referenced, not copied: it must outlive the Image,
// and must not be modified while the Image is being drawn.
// Several Images can share a Source, and be drawn concurrently.
type Image[C any] struct {
	src   Source
	pos   image.Point
	color C
}

// New returns an Image with its top left corner at pos.
func New[C any](src Source, pos image.Point, color C) Image[C] {
	return Image[C]{
		src:   src,
		pos:   pos,
		color: color,
	}
}

// WithCenter returns an Image centered on center.
// See CenteredRect for how odd sizes are handled.
func WithCenter[C any](src Source, center image.Point, color C) Image[C] {
	return New(src, CenteredRect(center, src.Size()).Min, color)
}

func (i Image[C]) Source() Source {
	return i.src
}

func (i Image[C]) Position() image.Point {
	return i.pos
}

func (i Image[C]) Color() C {
	return i.color
}

// Bounds returns every pixel the image could draw to, whether it is on or not.
func (i Image[C]) Bounds() image.Rectangle {
	return image.Rectangle{
		Min: i.pos,
		Max: i.pos.Add(size(i.src)),
	}
}

// Translate returns a copy of the image moved by by.
// Coordinates wrap around on overflow, like image.Point.Add.
func (i Image[C]) Translate(by image.Point) Image[C] {
	i.pos = i.pos.Add(by)
	return i
}

// TranslateInPlace moves the image by by.
func (i *Image[C]) TranslateInPlace(by image.Point) *Image[C] {
	i.pos = i.pos.Add(by)
	return i
}

// Pixels returns the on pixels of the image, in row major order.
// Pixels the Source reports as out of range are treated as off.
func (i Image[C]) Pixels() iter.Seq[Pixel[C]] {
	return func(yield func(Pixel[C]) bool) {
		sz := size(i.src)

		for y := 0; y < sz.Y; y++ {
			for x := 0; x < sz.X; x++ {
				p := image.Pt(x, y)

				if on, ok := i.src.Pixel(p); !on || !ok {
					continue
				}

				if !yield(Pixel[C]{Point: i.pos.Add(p), Color: i.color}) {
					return
				}
			}
		}
	}
}

// Draw draws the on pixels of the image to t.
// Errors from t are returned as is.
func (i Image[C]) Draw(t Target[C]) error {
	return t.DrawPixels(i.Pixels())
}

// size of src, with negative dimensions clamped to 0.
func size(src Source) image.Point {
	sz := src.Size()
	return image.Pt(max(sz.X, 0), max(sz.Y, 0))
}
