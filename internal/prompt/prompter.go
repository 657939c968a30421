// Package prompt asks the user for input: free text, a single choice from an
// option list, or a yes/no confirmation.
package prompt

import (
	"context"
	"errors"
)

// ErrAborted is returned when the user interrupts a prompt (Ctrl+C or Ctrl+D).
var ErrAborted = errors.New("prompt aborted")

// ErrNoOptions is returned by Select when there is nothing to choose from.
var ErrNoOptions = errors.New("no options to choose from")

// Option is one entry of a single-choice prompt. A nil ID is the null identifier,
// e.g. the "No Manager" choice.
type Option struct {
	Label string
	ID    *int64
}

// NewOption builds an option with a non-null identifier.
func NewOption(label string, id int64) Option {
	return Option{Label: label, ID: &id}
}

// IsNull reports whether the option carries the null identifier.
func (o Option) IsNull() bool {
	return o.ID == nil
}

// Prompter collects answers from the user. Each call blocks until the user
// responds, ctx is cancelled, or the prompt is aborted.
type Prompter interface {
	// Input asks a free-text question.
	Input(ctx context.Context, message string) (string, error)
	// Select asks the user to pick one of options and returns the chosen option.
	Select(ctx context.Context, message string, options []Option) (Option, error)
	// Confirm asks a yes/no question; an empty answer yields def.
	Confirm(ctx context.Context, message string, def bool) (bool, error)
}
