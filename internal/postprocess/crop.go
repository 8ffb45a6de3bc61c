package postprocess

import (
	"image"
	"math"
)

// DefaultFillRatio is the share of the canvas the cropped solid spans.
const DefaultFillRatio = 0.9

// CropAndCenter trims transparent borders and rescales the remaining
// content so its larger side spans fillRatio of a size×size canvas.
// A fully transparent image yields an empty canvas.
func CropAndCenter(img *image.NRGBA, size int, fillRatio float64) *image.NRGBA {
	box, ok := opaqueBounds(img)
	if !ok {
		return image.NewNRGBA(image.Rect(0, 0, size, size))
	}
	if fillRatio <= 0 || fillRatio > 1 {
		fillRatio = DefaultFillRatio
	}

	srcW, srcH := box.Dx(), box.Dy()
	scale := float64(size) * fillRatio / math.Max(float64(srcW), float64(srcH))
	newW := max(int(float64(srcW)*scale+0.5), 1)
	newH := max(int(float64(srcH)*scale+0.5), 1)

	offX := (size - newW) / 2
	offY := (size - newH) / 2
	return resample(img, box, image.Rect(offX, offY, offX+newW, offY+newH), size)
}

// opaqueBounds returns the smallest rectangle holding every pixel with
// non-zero alpha.
func opaqueBounds(img *image.NRGBA) (image.Rectangle, bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] == 0 {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
