package watermark

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

// Result describes a written watermark.
type Result struct {
	Output   string
	Bounds   image.Rectangle
	Position image.Rectangle
}

// AdjustResult describes a written edit and its effect on mean luma.
type AdjustResult struct {
	Output     string
	LumaBefore float64
	LumaAfter  float64
}

// Engine holds the lazily loaded font face and performs file operations.
type Engine struct {
	fontSize  float64
	opacity   float64
	textColor color.Color

	once    sync.Once
	face    font.Face
	faceErr error
}

// NewEngine constructs an Engine with the default font size and opacity.
func NewEngine() *Engine {
	return &Engine{fontSize: DefaultFontSize, opacity: DefaultOpacity, textColor: color.Black}
}

var defaultEngine struct {
	once sync.Once
	eng  *Engine
}

// Default returns a shared Engine.
func Default() *Engine {
	defaultEngine.once.Do(func() {
		defaultEngine.eng = NewEngine()
	})
	return defaultEngine.eng
}

// AddTextWatermark decodes input, prints text centered over the whole image
// and writes the result to output.
func (e *Engine) AddTextWatermark(ctx context.Context, input, output, text string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	img, _, err := DecodeFile(input)
	if err != nil {
		return Result{}, err
	}

	face, err := e.getFace()
	if err != nil {
		return Result{}, NewError(KindDecodeFailure, "load font", "", err)
	}

	rgba := cloneToRGBA(img)
	block := DrawText(rgba, face, e.textColor, text, rgba.Bounds())

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := EncodeFile(output, rgba); err != nil {
		return Result{}, err
	}

	log.Debug().
		Str("input", input).
		Str("output", output).
		Int("text_length", len(text)).
		Str("block", block.String()).
		Msg("Text watermark written")

	return Result{Output: output, Bounds: rgba.Bounds(), Position: block}, nil
}

// AddImageWatermark decodes input and mark, composites mark centered over
// input at the engine opacity and writes the result to output.
func (e *Engine) AddImageWatermark(ctx context.Context, input, output, mark string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	base, _, err := DecodeFile(input)
	if err != nil {
		return Result{}, err
	}
	overlay, _, err := DecodeFile(mark)
	if err != nil {
		return Result{}, err
	}

	rgba, pos := Composite(base, overlay, e.opacity)

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := EncodeFile(output, rgba); err != nil {
		return Result{}, err
	}

	log.Debug().
		Str("input", input).
		Str("watermark", mark).
		Str("output", output).
		Str("position", pos.String()).
		Float64("opacity", e.opacity).
		Msg("Image watermark written")

	return Result{Output: output, Bounds: rgba.Bounds(), Position: pos}, nil
}

// Adjust applies edit to input and writes the edited image to output. The
// edit is validated before anything is read.
func (e *Engine) Adjust(ctx context.Context, input, output string, edit Edit) (AdjustResult, error) {
	if err := ctx.Err(); err != nil {
		return AdjustResult{}, err
	}
	if err := edit.Validate(); err != nil {
		return AdjustResult{}, NewError(KindInvalidParameter, edit.Method.String(), input, err)
	}

	img, _, err := DecodeFile(input)
	if err != nil {
		return AdjustResult{}, err
	}

	edited, err := edit.Apply(img)
	if err != nil {
		return AdjustResult{}, err
	}

	if err := EncodeFile(output, edited); err != nil {
		return AdjustResult{}, err
	}

	return AdjustResult{
		Output:     output,
		LumaBefore: MeanLuma(img, img.Bounds()),
		LumaAfter:  MeanLuma(edited, edited.Bounds()),
	}, nil
}

// getFace lazily loads and caches the font face.
func (e *Engine) getFace() (font.Face, error) {
	e.once.Do(func() {
		e.face, e.faceErr = loadFontFace(e.fontSize)
	})

	if e.faceErr != nil {
		return nil, e.faceErr
	}
	if e.face == nil {
		return nil, fmt.Errorf("font face not available at %.0fpx", e.fontSize)
	}
	return e.face, nil
}

// cloneToRGBA copies the image into a mutable RGBA buffer.
func cloneToRGBA(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}

// cloneToNRGBA copies the image into a non-premultiplied buffer so channel
// edits see the stored colour values.
func cloneToNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
