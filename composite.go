package watermark

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// DefaultOpacity is the source opacity used for image watermarks.
const DefaultOpacity = 0.5

// CenteredRect returns the rectangle that centers an inner w×h box within
// outer, rounding the origin to the nearest pixel.
func CenteredRect(outer image.Rectangle, w, h int) image.Rectangle {
	x := int(math.Round(float64(outer.Dx())/2 - float64(w)/2))
	y := int(math.Round(float64(outer.Dy())/2 - float64(h)/2))
	return image.Rect(x, y, x+w, y+h).Add(outer.Min)
}

// Composite draws mark centered over a copy of base using source-over
// blending at the given source opacity. Parts of mark that fall outside base
// are clipped. It returns the new image and the overlay rectangle.
func Composite(base, mark image.Image, opacity float64) (*image.RGBA, image.Rectangle) {
	opacity = math.Max(0, math.Min(1, opacity))

	dst := cloneToRGBA(base)
	mb := mark.Bounds()
	r := CenteredRect(dst.Bounds(), mb.Dx(), mb.Dy())

	mask := image.NewUniform(color.Alpha16{A: uint16(math.Round(opacity * 0xffff))})
	draw.DrawMask(dst, r, mark, mb.Min, mask, image.Point{}, draw.Over)

	return dst, r
}
