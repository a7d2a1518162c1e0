package watermark

import (
	"fmt"
	"image"
	"math"
)

// EditMethod selects a pixel edit applied before watermarking.
type EditMethod int

const (
	Brighten EditMethod = iota + 1
	Contrast
	Grayscale
	Invert
)

func (m EditMethod) String() string {
	switch m {
	case Brighten:
		return "brighten"
	case Contrast:
		return "contrast"
	case Grayscale:
		return "grayscale"
	case Invert:
		return "invert"
	default:
		return fmt.Sprintf("EditMethod(%d)", int(m))
	}
}

// TakesAmount reports whether the method uses Edit.Amount.
func (m EditMethod) TakesAmount() bool {
	return m == Brighten || m == Contrast
}

// Edit is a single pixel edit. Amount is used by Brighten and Contrast and
// must lie in [-1, 1].
type Edit struct {
	Method EditMethod
	Amount float64
}

// Validate rejects unknown methods and out-of-range or non-finite amounts.
func (e Edit) Validate() error {
	switch e.Method {
	case Brighten, Contrast:
		if math.IsNaN(e.Amount) || e.Amount < -1 || e.Amount > 1 {
			return fmt.Errorf("%s amount %v must be between -1 and +1", e.Method, e.Amount)
		}
		return nil
	case Grayscale, Invert:
		return nil
	default:
		return fmt.Errorf("unknown edit method %d", int(e.Method))
	}
}

// Apply returns an edited copy of img.
func (e Edit) Apply(img image.Image) (*image.NRGBA, error) {
	if err := e.Validate(); err != nil {
		return nil, NewError(KindInvalidParameter, e.Method.String(), "", err)
	}

	out := cloneToNRGBA(img)
	switch e.Method {
	case Brighten:
		brighten(out, e.Amount)
	case Contrast:
		contrast(out, e.Amount)
	case Grayscale:
		grayscale(out)
	case Invert:
		invert(out)
	}
	return out, nil
}

// brighten scales channels toward black for negative amounts and toward
// white for positive ones.
func brighten(img *image.NRGBA, amount float64) {
	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		for c := 0; c < 3; c++ {
			v := float64(pix[i+c])
			if amount < 0 {
				v *= 1 + amount
			} else {
				v += (255 - v) * amount
			}
			pix[i+c] = uint8(v)
		}
	}
}

// contrast stretches channels around mid-grey 127. An amount of +1 is a hard
// threshold: values up to 127 become 0, the rest 255.
func contrast(img *image.NRGBA, amount float64) {
	var lut [256]uint8
	for v := range lut {
		if amount >= 1 {
			if v > 127 {
				lut[v] = 255
			}
			continue
		}
		factor := (amount + 1) / (1 - amount)
		lut[v] = clampChannel(math.Floor(factor*(float64(v)-127) + 127))
	}

	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = lut[pix[i+0]]
		pix[i+1] = lut[pix[i+1]]
		pix[i+2] = lut[pix[i+2]]
	}
}

func grayscale(img *image.NRGBA) {
	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		grey := uint8(0.2126*float64(pix[i+0]) + 0.7152*float64(pix[i+1]) + 0.0722*float64(pix[i+2]))
		pix[i+0], pix[i+1], pix[i+2] = grey, grey, grey
	}
}

func invert(img *image.NRGBA) {
	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = 255 - pix[i+0]
		pix[i+1] = 255 - pix[i+1]
		pix[i+2] = 255 - pix[i+2]
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
