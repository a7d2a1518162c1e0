package flow

import "fmt"

// WatermarkType is the kind of watermark a pass applies.
type WatermarkType int

const (
	TextWatermark WatermarkType = iota + 1
	ImageWatermark
)

// Menu labels for the watermark type choice.
const (
	labelText  = "Text watermark"
	labelImage = "Image watermark"
)

func (t WatermarkType) String() string {
	switch t {
	case TextWatermark:
		return labelText
	case ImageWatermark:
		return labelImage
	default:
		return fmt.Sprintf("WatermarkType(%d)", int(t))
	}
}

func parseWatermarkType(label string) (WatermarkType, error) {
	switch label {
	case labelText:
		return TextWatermark, nil
	case labelImage:
		return ImageWatermark, nil
	default:
		return 0, fmt.Errorf("unknown watermark type %q", label)
	}
}

// Session holds the answers collected during one pass. Stages never modify a
// Session; they return an updated copy.
type Session struct {
	Input          string
	Type           WatermarkType
	Text           string
	WatermarkImage string
}

// WithInput returns a copy of s reading from name.
func (s Session) WithInput(name string) Session {
	s.Input = name
	return s
}

func (s Session) WithType(t WatermarkType) Session {
	s.Type = t
	return s
}

func (s Session) WithText(text string) Session {
	s.Text = text
	return s
}

func (s Session) WithWatermarkImage(name string) Session {
	s.WatermarkImage = name
	return s
}
