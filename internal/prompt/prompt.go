// Package prompt wraps the interactive terminal prompts the CLI uses when
// the caller omits a sheet selection. A Driver interface keeps the command
// logic testable without a real terminal.
package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")

// Driver abstracts the terminal prompt implementation.
type Driver interface {
	// Select asks the user to pick one option; returns its index.
	Select(ctx context.Context, message string, options []string) (int, error)

	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, message string, defaultYes bool) (bool, error)
}

type surveyDriver struct{}

// New constructs the survey-backed driver.
func New() Driver {
	return &surveyDriver{}
}

func (d *surveyDriver) Select(ctx context.Context, message string, options []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(options) == 0 {
		return 0, errors.New("prompt: no options to select from")
	}
	var index int
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &index); err != nil {
		return 0, translateSurveyErr(err)
	}
	return index, nil
}

func (d *surveyDriver) Confirm(ctx context.Context, message string, defaultYes bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultYes,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
