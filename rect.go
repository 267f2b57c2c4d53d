package colorcast

import "image"

// CenteredRect returns the rectangle of the given size centered on center.
//
// Rectangles with an even width or height can't be centered exactly.
// center is then the pixel left of (or above) the middle, so the
// extra pixel goes to the bottom right.
func CenteredRect(center, size image.Point) image.Rectangle {
	tl := center.Sub(centerOffset(size))
	return image.Rectangle{Min: tl, Max: tl.Add(size)}
}

// Center returns the center point of r, following the same rules as CenteredRect.
func Center(r image.Rectangle) image.Point {
	return r.Min.Add(centerOffset(r.Size()))
}

// Offset of the center from the top left corner.
func centerOffset(size image.Point) image.Point {
	return image.Pt(
		max(size.X-1, 0)/2,
		max(size.Y-1, 0)/2,
	)
}
