package watermark

import "image"

// MeanLuma computes the average Rec. 709 luma in [0, 255] over the pixels of
// img that fall inside region. An empty intersection yields 0.
func MeanLuma(img image.Image, region image.Rectangle) float64 {
	region = region.Intersect(img.Bounds())

	var sum float64
	var count int
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sum += 0.2126*float64(r)/257.0 + 0.7152*float64(g)/257.0 + 0.0722*float64(b)/257.0
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
