package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Terminal prompts on a terminal using survey.
type Terminal struct {
	in  terminal.FileReader
	out terminal.FileWriter
	err io.Writer
}

var _ Prompter = (*Terminal)(nil)

// NewTerminal returns a Terminal bound to the process's standard streams.
func NewTerminal() *Terminal {
	return &Terminal{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

func (t *Terminal) Confirm(message string, def bool) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer, t.stdio())
	return answer, t.wrap(err)
}

func (t *Terminal) Input(message, def string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &answer, t.stdio())
	return answer, t.wrap(err)
}

func (t *Terminal) Select(message string, options []string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Select{Message: message, Options: options}, &answer, t.stdio())
	return answer, t.wrap(err)
}

func (t *Terminal) Number(message string) (float64, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: message}, &answer, t.stdio()); err != nil {
		return 0, t.wrap(err)
	}
	return parseNumber(answer)
}

func (t *Terminal) Say(message string) {
	fmt.Fprintln(t.out, message)
}

func (t *Terminal) stdio() survey.AskOpt {
	return survey.WithStdio(t.in, t.out, t.err)
}

// wrap maps survey's interrupt and end-of-input errors to ErrInterrupted.
func (t *Terminal) wrap(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, terminal.InterruptErr), errors.Is(err, io.EOF):
		return fmt.Errorf("%w: %v", ErrInterrupted, err)
	default:
		return err
	}
}
