// Package prompt asks the interactive questions of the watermark flow. Two
// back ends exist: a terminal one built on survey and a native dialog one
// built on zenity.
package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	watermark "github.com/grzesiekS/Watermark-Image"
)

// ErrInterrupted is returned when the user aborts a prompt (Ctrl+C, closed
// input, cancelled dialog). The flow treats it as a request to quit.
var ErrInterrupted = errors.New("prompt interrupted")

// Prompter asks one question at a time and blocks until it is answered.
type Prompter interface {
	// Confirm asks a yes/no question.
	Confirm(message string, def bool) (bool, error)
	// Input asks for free text; an empty answer yields def.
	Input(message, def string) (string, error)
	// Select asks the user to pick one of options and returns it.
	Select(message string, options []string) (string, error)
	// Number asks for a number. Text that does not parse is an
	// invalid-parameter error.
	Number(message string) (float64, error)
	// Say shows an informational message.
	Say(message string)
}

// parseNumber converts a typed answer to a float.
func parseNumber(answer string) (float64, error) {
	answer = strings.TrimSpace(answer)
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", watermark.ErrInvalidParameter, answer)
	}
	return v, nil
}
