package watermark

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawText renders text in fill onto dst, word-wrapped to the width of area
// and centered both horizontally and vertically inside it. It returns the
// rectangle covered by the text block.
func DrawText(dst draw.Image, face font.Face, fill color.Color, text string, area image.Rectangle) image.Rectangle {
	lines := wrapText(face, text, area.Dx())

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()
	blockHeight := lineHeight * len(lines)
	top := area.Min.Y + (area.Dy()-blockHeight)/2

	drawer := &font.Drawer{Dst: dst, Src: image.NewUniform(fill), Face: face}

	var block image.Rectangle
	for i, line := range lines {
		width := drawer.MeasureString(line).Ceil()
		x := area.Min.X + (area.Dx()-width)/2
		y := top + i*lineHeight

		drawer.Dot = fixed.P(x, y+ascent)
		drawer.DrawString(line)

		block = block.Union(image.Rect(x, y, x+width, y+lineHeight))
	}

	return block
}

// wrapText splits text into lines no wider than maxWidth pixels. Words that
// are wider than maxWidth on their own are broken between characters.
func wrapText(face font.Face, text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	fits := func(s string) bool {
		return font.MeasureString(face, s).Ceil() <= maxWidth
	}

	var lines []string
	cur := ""
	for _, w := range words {
		if cur == "" {
			cur = w
		} else if try := cur + " " + w; fits(try) {
			cur = try
			continue
		} else {
			lines = append(lines, cur)
			cur = w
		}

		if fits(cur) {
			continue
		}

		part := ""
		for _, ch := range cur {
			if fits(part + string(ch)) {
				part += string(ch)
				continue
			}
			if part != "" {
				lines = append(lines, part)
			}
			part = string(ch)
		}
		cur = part
	}
	return append(lines, cur)
}
