package monochrome

import (
	"image"
	"image/draw"
)

// From converts an image to monochrome with Otsu thresholding.
// https://en.wikipedia.org/wiki/Otsu%27s_method
func From(img image.Image) *Image {
	var gray *image.Gray
	switch i := img.(type) {
	case *Image:
		return i
	case *image.Gray:
		gray = i
	default:
		gray = image.NewGray(img.Bounds())
		draw.Draw(gray, gray.Bounds(), img, img.Bounds().Min, draw.Src)
	}

	threshold := Threshold(gray)
	b := gray.Bounds()

	mono := New(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			mono.SetBlack(x, y, gray.GrayAt(x, y).Y <= threshold)
		}
	}

	return mono
}

// Threshold is the gray level maximizing the variance between
// dark (<= Threshold) and light (> Threshold) pixels.
func Threshold(gray *image.Gray) uint8 {
	histo := histogram(gray)

	var total, totalSum int
	for level, n := range histo {
		total += n
		totalSum += level * n
	}

	var (
		best         uint8
		bestVariance int

		// Pixels <= level so far, and the sum of their intensities.
		dark, darkSum int
	)
	for level, n := range histo {
		dark += n
		darkSum += level * n

		light := total - dark

		// Every pixel is on one side, no split to score.
		if dark == 0 || light == 0 {
			continue
		}

		diff := darkSum/dark - (totalSum-darkSum)/light
		if variance := dark * light * diff * diff; variance > bestVariance {
			bestVariance = variance
			best = uint8(level)
		}
	}

	return best
}

func histogram(gray *image.Gray) [256]int {
	var histo [256]int

	b := gray.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			histo[gray.GrayAt(x, y).Y]++
		}
	}

	return histo
}
