package colorcast

import (
	"image/color"
	"image/draw"
	"iter"
)

// Canvas draws pixels to any draw.Image.
// Pixels outside of Dst's bounds are discarded.
type Canvas struct {
	Dst draw.Image
}

var _ Target[color.Color] = Canvas{}

func (c Canvas) DrawPixels(pixels iter.Seq[Pixel[color.Color]]) error {
	bounds := c.Dst.Bounds()

	for px := range pixels {
		if !px.Point.In(bounds) {
			continue
		}
		c.Dst.Set(px.Point.X, px.Point.Y, px.Color)
	}

	return nil
}
