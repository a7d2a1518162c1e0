package watermark

import (
	"image"

	"github.com/disintegration/imaging"
)

// applyOrientation returns src transformed to its display orientation as
// described by the EXIF orientation value o. Values outside 2..8 return src.
func applyOrientation(src image.Image, o int) image.Image {
	switch o {
	case 2:
		return imaging.FlipH(src)
	case 3:
		return imaging.Rotate180(src)
	case 4:
		return imaging.FlipV(src)
	case 5:
		return imaging.Transpose(src)
	case 6:
		return imaging.Rotate270(src)
	case 7:
		return imaging.Transverse(src)
	case 8:
		return imaging.Rotate90(src)
	default:
		return src
	}
}
