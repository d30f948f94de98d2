package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/Tolverne/papertrail2/internal/imaging"
)

// Surface dimension bounds in pixels.
const (
	MinWidth  = 200
	MaxWidth  = 800
	MinHeight = 150
	MaxHeight = 800
)

// Stroke widths for the two compositing modes.
const (
	paintWidth  = 2.0
	eraserWidth = 20.0
)

// Canvas is a freehand drawing surface backed by an RGBA raster.
//
// The background is transparent. Strokes are painted with round caps and
// joins, the eraser removes pixel content by clearing the alpha channel.
type Canvas struct {
	img *image.RGBA
}

// New creates an empty canvas. Dimensions are clamped to the allowed
// bounds.
func New(width, height int) *Canvas {
	w, h := ClampSize(width, height)
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// ClampSize pins the given dimensions to the nearest allowed bound.
func ClampSize(width, height int) (int, int) {
	if width < MinWidth {
		width = MinWidth
	} else if width > MaxWidth {
		width = MaxWidth
	}
	if height < MinHeight {
		height = MinHeight
	} else if height > MaxHeight {
		height = MaxHeight
	}
	return width, height
}

func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Image returns the current raster content.
func (c *Canvas) Image() image.Image {
	return c.img
}

// Clear erases the complete raster.
func (c *Canvas) Clear() {
	c.img = image.NewRGBA(c.img.Bounds())
}

// Resize changes the surface dimensions, clamped to the allowed bounds.
// Existing raster content is preserved by re-blitting the previous
// pixels at their native size.
func (c *Canvas) Resize(width, height int) {
	w, h := ClampSize(width, height)
	if w == c.Width() && h == c.Height() {
		return
	}

	snapshot := c.img
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(c.img, snapshot.Bounds(), snapshot, image.Point{}, draw.Src)
}

// Paint draws a straight line segment in the given color.
func (c *Canvas) Paint(x0, y0, x1, y1 float64, col color.Color) {
	strokeLine(c.img, x0, y0, x1, y1, col, paintWidth)
}

// Erase removes pixel content along a straight line segment.
// The eraser stroke is wider than a paint stroke.
func (c *Canvas) Erase(x0, y0, x1, y1 float64) {
	// paint the stroke on a scratch image and use it as an alpha mask
	scratch := image.NewRGBA(c.img.Bounds())
	strokeLine(scratch, x0, y0, x1, y1, color.Black, eraserWidth)
	imaging.EraseWhere(c.img, scratch)
}

func strokeLine(dst *image.RGBA, x0, y0, x1, y1 float64, col color.Color, width float64) {
	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetStrokeColor(col)
	gc.SetLineWidth(width)
	gc.SetLineCap(draw2d.RoundCap)
	gc.SetLineJoin(draw2d.RoundJoin)
	gc.BeginPath()
	gc.MoveTo(x0, y0)
	gc.LineTo(x1, y1)
	gc.Stroke()
}

// Replace clears the canvas and draws the given image at the origin.
// The image is drawn at its native size, a dimension mismatch with the
// surface is tolerated.
func (c *Canvas) Replace(img image.Image) {
	c.Clear()
	b := img.Bounds()
	r := image.Rect(0, 0, b.Dx(), b.Dy())
	draw.Draw(c.img, r, img, b.Min, draw.Over)
}

// EncodePNG writes the raster content as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}
