// Package mock provides a Target that records what is drawn to it, for tests.
package mock

import (
	"errors"
	"fmt"
	"image"
	"iter"

	"go.afab.re/colorcast"
)

var (
	ErrOutOfBounds = errors.New("pixel out of bounds")
	ErrOverdraw    = errors.New("pixel drawn twice")
)

// Display records every pixel drawn to it, in order.
//
// By default drawing outside of Bounds or drawing the same point twice is an error,
// which catches most positioning mistakes.
type Display[C comparable] struct {
	Bounds image.Rectangle

	AllowOutOfBounds bool
	AllowOverdraw    bool

	// FailAfter, if not nil, is returned instead of drawing
	// once FailAfterN pixels have been drawn.
	FailAfter  error
	FailAfterN int

	drawn  []colorcast.Pixel[C]
	pixels map[image.Point]C
}

var _ colorcast.Target[bool] = &Display[bool]{}

// New returns a Display covering (0, 0) to size.
func New[C comparable](size image.Point) *Display[C] {
	return &Display[C]{
		Bounds: image.Rectangle{Max: size},
	}
}

func (d *Display[C]) DrawPixels(pixels iter.Seq[colorcast.Pixel[C]]) error {
	if d.pixels == nil {
		d.pixels = make(map[image.Point]C)
	}

	for px := range pixels {
		if d.FailAfter != nil && len(d.drawn) >= d.FailAfterN {
			return d.FailAfter
		}

		if !d.AllowOutOfBounds && !px.Point.In(d.Bounds) {
			return fmt.Errorf("%v: %w", px.Point, ErrOutOfBounds)
		}

		if _, ok := d.pixels[px.Point]; ok && !d.AllowOverdraw {
			return fmt.Errorf("%v: %w", px.Point, ErrOverdraw)
		}

		d.pixels[px.Point] = px.Color
		d.drawn = append(d.drawn, px)
	}

	return nil
}

// Drawn returns every pixel drawn so far, in order.
func (d *Display[C]) Drawn() []colorcast.Pixel[C] {
	return d.drawn
}

// At returns the latest color drawn at p.
func (d *Display[C]) At(p image.Point) (C, bool) {
	c, ok := d.pixels[p]
	return c, ok
}

// Reset forgets every drawn pixel.
func (d *Display[C]) Reset() {
	d.drawn = nil
	d.pixels = nil
}
