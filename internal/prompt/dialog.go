package prompt

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
	"github.com/rs/zerolog/log"
)

// DefaultDialogTitle is the window title of every dialog.
const DefaultDialogTitle = "Watermark manager"

// Dialog prompts with native OS dialogs via zenity.
type Dialog struct {
	title string
}

var _ Prompter = (*Dialog)(nil)

// NewDialog returns a Dialog whose windows carry title.
func NewDialog(title string) *Dialog {
	if title == "" {
		title = DefaultDialogTitle
	}
	return &Dialog{title: title}
}

// Confirm maps the dialog's cancel button to "no".
func (d *Dialog) Confirm(message string, def bool) (bool, error) {
	opts := []zenity.Option{zenity.Title(d.title), zenity.OKLabel("Yes"), zenity.CancelLabel("No")}
	if !def {
		opts = append(opts, zenity.DefaultCancel())
	}

	err := zenity.Question(message, opts...)
	if errors.Is(err, zenity.ErrCanceled) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (d *Dialog) Input(message, def string) (string, error) {
	answer, err := zenity.Entry(message, zenity.Title(d.title), zenity.EntryText(def))
	if err != nil {
		return "", d.wrap(err)
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (d *Dialog) Select(message string, options []string) (string, error) {
	opts := []zenity.Option{zenity.Title(d.title)}
	if len(options) > 0 {
		opts = append(opts, zenity.DefaultItems(options[0]))
	}

	answer, err := zenity.List(message, options, opts...)
	if err != nil {
		return "", d.wrap(err)
	}
	return answer, nil
}

func (d *Dialog) Number(message string) (float64, error) {
	answer, err := zenity.Entry(message, zenity.Title(d.title))
	if err != nil {
		return 0, d.wrap(err)
	}
	return parseNumber(answer)
}

func (d *Dialog) Say(message string) {
	if err := zenity.Info(message, zenity.Title(d.title)); err != nil && !errors.Is(err, zenity.ErrCanceled) {
		log.Warn().Err(err).Str("message", message).Msg("Info dialog failed")
	}
}

func (d *Dialog) wrap(err error) error {
	if errors.Is(err, zenity.ErrCanceled) {
		return fmt.Errorf("%w: %v", ErrInterrupted, err)
	}
	return err
}
