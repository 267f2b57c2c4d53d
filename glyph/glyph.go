// Package glyph renders text as two color images.
package glyph

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"go.afab.re/colorcast/monochrome"
)

// Face loads a TrueType / OpenType font at size points.
func Face(ttf []byte, size, dpi float64) (font.Face, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

// Render draws text in black on a white image just big enough for it.
// The image's top left corner is (0, 0), so it can be used directly as a colorcast.Source.
//
// A nil face uses basicfont.Face7x13.
func Render(face font.Face, text string) *monochrome.Image {
	if face == nil {
		face = basicfont.Face7x13
	}

	b := bounds(face, text)
	dst := monochrome.New(image.Rectangle{Max: b.Size()})

	d := font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
		// Move the baseline so b.Min ends up at (0, 0).
		Dot: fixed.P(-b.Min.X, -b.Min.Y),
	}
	d.DrawString(text)

	return dst
}

// Bounds of text drawn with the baseline at y = 0.
func bounds(face font.Face, text string) image.Rectangle {
	m := face.Metrics()

	// Use the font's ascent and descent, not the text's:
	// otherwise lines with and without descenders are aligned differently.
	yMin := -m.Ascent.Ceil()
	yMax := m.Descent.Ceil()

	tBounds, _ := font.BoundString(face, text)

	return image.Rect(
		tBounds.Min.X.Floor(), yMin,
		tBounds.Max.X.Ceil(), yMax,
	)
}
