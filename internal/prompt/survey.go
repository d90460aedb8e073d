package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Survey is the terminal Prompter.
type Survey struct {
	opts []survey.AskOpt
}

// NewSurvey creates a Survey prompter; opts are passed to every survey.AskOne call.
func NewSurvey(opts ...survey.AskOpt) *Survey {
	return &Survey{opts: opts}
}

// AskText re-asks until the answer satisfies c. The answer is returned trimmed.
func (s *Survey) AskText(message string, c TextConstraints) (string, error) {
	var answer string
	prompt := &survey.Input{Message: message}

	validate := func(ans interface{}) error {
		str, _ := ans.(string)
		return c.Validate(strings.TrimSpace(str))
	}

	opts := append([]survey.AskOpt{survey.WithValidator(validate)}, s.opts...)
	if err := survey.AskOne(prompt, &answer, opts...); err != nil {
		return "", askError(err)
	}
	return strings.TrimSpace(answer), nil
}

// AskConfirm asks a yes/no question defaulting to no.
func (s *Survey) AskConfirm(message string) (bool, error) {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed, s.opts...); err != nil {
		return false, askError(err)
	}
	return confirmed, nil
}

// askError maps cancellation to ErrAborted. Anything else is a real failure.
func askError(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrAborted, err)
	}
	return fmt.Errorf("prompt failed: %w", err)
}
