package imaging

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Scale creates a copy of the given image, scaled to the given width
// while keeping the aspect ratio.
func Scale(i image.Image, width float64) image.Image {
	b := i.Bounds()
	ratio := width / float64(b.Dx())
	h := int(math.Round(float64(b.Dy()) * ratio))
	size := image.Rect(0, 0, int(math.Round(width)), h)

	dst := image.NewRGBA(size)
	s := draw.BiLinear
	s.Scale(dst, size, i, b, draw.Over, nil)
	return dst
}

// Flatten composes the given image over a uniform background color
// and returns the fully opaque result.
func Flatten(i image.Image, bg color.Color) *image.RGBA {
	b := i.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(dst, b, i, b.Min, draw.Over)
	return dst
}

// EraseWhere clears all pixels of dst to full transparency where the
// mask image has any alpha coverage.
func EraseWhere(dst *image.RGBA, mask image.Image) {
	b := dst.Bounds().Intersect(mask.Bounds())
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			_, _, _, a := mask.At(x, y).RGBA()
			if a > 0 {
				dst.Set(x, y, color.RGBA{})
			}
		}
	}
}
