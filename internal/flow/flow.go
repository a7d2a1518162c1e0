// Package flow drives the interactive watermark session: it asks the
// questions, runs the optional edit and dispatches to the image operations,
// starting over after every completed or failed pass.
package flow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	watermark "github.com/grzesiekS/Watermark-Image"
	"github.com/grzesiekS/Watermark-Image/internal/config"
	"github.com/grzesiekS/Watermark-Image/internal/prompt"
	"github.com/rs/zerolog/log"
)

// User-facing text.
const (
	msgWelcome       = `Hi! Welcome to "Watermark manager". Copy your image files to the image folder (%s). Then you'll be able to use them in the app. Are you ready?`
	msgInput         = "What file do you want to mark?"
	msgType          = "Select watermark type:"
	msgEditStart     = "Do You want to edit selected image?"
	msgEditMethod    = "Select edit method:"
	msgAmount        = "Select number between -1 and 1"
	msgText          = "Type your watermark text:"
	msgWatermarkName = "Type your watermark name:"
	msgSuccess       = "Watermark added to image!"
	msgFailure       = "Something went wrong... Try again"
)

// Default answers.
const (
	DefaultInput     = "test.jpg"
	DefaultWatermark = "logo.png"
)

// errDeclined ends the loop when the user is not ready.
var errDeclined = errors.New("declined")

// Executor performs the image operations. *watermark.Engine implements it.
type Executor interface {
	AddTextWatermark(ctx context.Context, input, output, text string) (watermark.Result, error)
	AddImageWatermark(ctx context.Context, input, output, mark string) (watermark.Result, error)
	Adjust(ctx context.Context, input, output string, edit watermark.Edit) (watermark.AdjustResult, error)
}

var _ Executor = (*watermark.Engine)(nil)

// Controller runs passes until the user declines or interrupts.
type Controller struct {
	cfg      *config.Config
	prompter prompt.Prompter
	exec     Executor
}

// New builds a Controller. A nil exec uses the shared watermark engine.
func New(cfg *config.Config, p prompt.Prompter, exec Executor) *Controller {
	if exec == nil {
		exec = watermark.Default()
	}
	return &Controller{cfg: cfg, prompter: p, exec: exec}
}

// Run loops over passes. It returns nil when the user declines the welcome
// question or interrupts a prompt, and the context error when ctx is done.
// Every other outcome of a pass is reported and followed by a new pass.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := c.pass(ctx)
		switch {
		case err == nil:
			c.prompter.Say(msgSuccess)
		case errors.Is(err, errDeclined):
			log.Debug().Msg("User declined, exiting")
			return nil
		case errors.Is(err, prompt.ErrInterrupted):
			log.Debug().Err(err).Msg("Prompt interrupted, exiting")
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			log.Warn().
				Err(err).
				Str("kind", watermark.KindOf(err).String()).
				Msg("Watermark pass failed")
			c.prompter.Say(msgFailure)
		}
	}
}

// pass runs the stages once.
func (c *Controller) pass(ctx context.Context) error {
	ready, err := c.prompter.Confirm(fmt.Sprintf(msgWelcome, c.cfg.Dir), true)
	if err != nil {
		return err
	}
	if !ready {
		return errDeclined
	}

	s, err := c.selectInput()
	if err != nil {
		return err
	}

	editStart, err := c.prompter.Confirm(msgEditStart, true)
	if err != nil {
		return err
	}
	if editStart {
		if s, err = c.edit(ctx, s); err != nil {
			return err
		}
	}

	if s, err = c.watermarkContent(s); err != nil {
		return err
	}
	return c.dispatch(ctx, s)
}

func (c *Controller) selectInput() (Session, error) {
	var s Session

	input, err := c.prompter.Input(msgInput, DefaultInput)
	if err != nil {
		return s, err
	}
	label, err := c.prompter.Select(msgType, []string{labelText, labelImage})
	if err != nil {
		return s, err
	}
	t, err := parseWatermarkType(label)
	if err != nil {
		return s, err
	}
	return s.WithInput(input).WithType(t), nil
}

func (c *Controller) watermarkContent(s Session) (Session, error) {
	switch s.Type {
	case TextWatermark:
		text, err := c.prompter.Input(msgText, "")
		if err != nil {
			return s, err
		}
		return s.WithText(text), nil
	case ImageWatermark:
		name, err := c.prompter.Input(msgWatermarkName, DefaultWatermark)
		if err != nil {
			return s, err
		}
		return s.WithWatermarkImage(name), nil
	default:
		return s, fmt.Errorf("unknown watermark type %v", s.Type)
	}
}

// dispatch checks that every referenced file exists and runs the watermark
// operation.
func (c *Controller) dispatch(ctx context.Context, s Session) error {
	input := c.path(s.Input)
	output := c.path(watermark.OutputName(s.Input))

	if !fileExists(input) {
		return watermark.NewError(watermark.KindFileNotFound, "watermark", input, nil)
	}

	var (
		res watermark.Result
		err error
	)
	switch s.Type {
	case TextWatermark:
		res, err = c.exec.AddTextWatermark(ctx, input, output, s.Text)
	case ImageWatermark:
		mark := c.path(s.WatermarkImage)
		if !fileExists(mark) {
			return watermark.NewError(watermark.KindFileNotFound, "watermark", mark, nil)
		}
		res, err = c.exec.AddImageWatermark(ctx, input, output, mark)
	default:
		return fmt.Errorf("unknown watermark type %v", s.Type)
	}
	if err != nil {
		return err
	}

	log.Info().
		Str("type", s.Type.String()).
		Str("output", res.Output).
		Str("position", res.Position.String()).
		Msg("Watermark added")
	return nil
}

func (c *Controller) path(name string) string {
	return filepath.Join(c.cfg.Dir, name)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
