package flow

import (
	"context"
	"fmt"

	watermark "github.com/grzesiekS/Watermark-Image"
	"github.com/grzesiekS/Watermark-Image/internal/config"
	"github.com/rs/zerolog/log"
)

// editOption is one entry of the edit menu.
type editOption struct {
	label  string
	method watermark.EditMethod
	suffix string
	prefix string
}

var editOptions = []editOption{
	{label: "Make image brighter", method: watermark.Brighten, suffix: "brighter", prefix: "bright"},
	{label: "Increase contrast", method: watermark.Contrast, suffix: "contrast", prefix: "contrast"},
	{label: "Make image b&w", method: watermark.Grayscale, suffix: "bw", prefix: "bw"},
	{label: "Invert image", method: watermark.Invert, suffix: "inverted", prefix: "inverted"},
}

func editLabels() []string {
	labels := make([]string, len(editOptions))
	for i, o := range editOptions {
		labels[i] = o.label
	}
	return labels
}

func lookupEdit(label string) (editOption, error) {
	for _, o := range editOptions {
		if o.label == label {
			return o, nil
		}
	}
	return editOption{}, fmt.Errorf("unknown edit method %q", label)
}

// editedName names the intermediate file written by an edit.
func (c *Controller) editedName(input string, o editOption) string {
	if c.cfg.EditNaming == config.NamingPrefix {
		return watermark.PrefixedName(input, o.prefix)
	}
	return watermark.EditedName(input, o.suffix)
}

// edit runs the optional edit stage. On success the returned session reads
// from the edited intermediate. A missing input or an unwired method leaves
// the session unchanged.
func (c *Controller) edit(ctx context.Context, s Session) (Session, error) {
	label, err := c.prompter.Select(msgEditMethod, editLabels())
	if err != nil {
		return s, err
	}
	opt, err := lookupEdit(label)
	if err != nil {
		return s, err
	}

	input := c.path(s.Input)
	if !fileExists(input) {
		log.Debug().Str("input", input).Msg("Input missing, skipping edit")
		return s, nil
	}
	if !opt.method.TakesAmount() && !c.cfg.ExtraEdits {
		log.Warn().Str("method", opt.method.String()).Msg("Edit method is not enabled, skipping edit")
		return s, nil
	}

	edit := watermark.Edit{Method: opt.method}
	if opt.method.TakesAmount() {
		amount, err := c.prompter.Number(msgAmount)
		if err != nil {
			return s, err
		}
		if c.cfg.StrictRange && !(amount >= -1 && amount <= 1) {
			return s, watermark.NewError(watermark.KindInvalidParameter, opt.method.String(), input,
				fmt.Errorf("amount %v is outside [-1, 1]", amount))
		}
		edit.Amount = amount
	}

	out := c.editedName(s.Input, opt)
	res, err := c.exec.Adjust(ctx, input, c.path(out), edit)
	if err != nil {
		return s, err
	}

	log.Debug().
		Str("method", opt.method.String()).
		Float64("amount", edit.Amount).
		Float64("luma_before", res.LumaBefore).
		Float64("luma_after", res.LumaAfter).
		Str("output", res.Output).
		Msg("Image edited")
	return s.WithInput(out), nil
}
