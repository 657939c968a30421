package mock

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"roster/internal/prompt"
)

// CallKind identifies the prompt method that was called.
type CallKind string

const (
	CallInput   CallKind = "input"
	CallSelect  CallKind = "select"
	CallConfirm CallKind = "confirm"
)

// Call records one prompt.
type Call struct {
	Kind    CallKind
	Message string
	// Options holds the labels offered to a Select call.
	Options []string
	// IDs holds the identifiers offered to a Select call, nil for null options.
	IDs []*int64
}

// Answer is one scripted reply. Err, when set, is returned instead of a value.
type Answer struct {
	Text    string
	Choice  string
	Confirm bool
	Err     error
}

// Text scripts a free-text reply.
func Text(s string) Answer { return Answer{Text: s} }

// Choose scripts a Select reply by option label.
func Choose(label string) Answer { return Answer{Choice: label} }

// Yes scripts an accepted confirmation.
func Yes() Answer { return Answer{Confirm: true} }

// No scripts a declined confirmation.
func No() Answer { return Answer{Confirm: false} }

// Fail scripts a prompt error, e.g. prompt.ErrAborted.
func Fail(err error) Answer { return Answer{Err: err} }

// Prompter is a scripted prompt.Prompter. When the script runs out every
// further prompt returns prompt.ErrAborted, which mimics end of input.
type Prompter struct {
	mu      sync.Mutex
	answers []Answer
	calls   []Call
}

var _ prompt.Prompter = (*Prompter)(nil)

// NewPrompter creates a prompter that replays answers in order.
func NewPrompter(answers ...Answer) *Prompter {
	return &Prompter{answers: answers}
}

// Calls returns the prompts received so far.
func (p *Prompter) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Call, len(p.calls))
	copy(out, p.calls)
	return out
}

// Remaining returns the number of unused answers.
func (p *Prompter) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.answers)
}

func (p *Prompter) next(call Call) (Answer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, call)
	if len(p.answers) == 0 {
		return Answer{}, prompt.ErrAborted
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	if a.Err != nil {
		return Answer{}, a.Err
	}
	return a, nil
}

// Input implements prompt.Prompter.
func (p *Prompter) Input(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	a, err := p.next(Call{Kind: CallInput, Message: message})
	if err != nil {
		return "", err
	}
	return a.Text, nil
}

// Select implements prompt.Prompter. The scripted label must match one of the
// offered options, ignoring case.
func (p *Prompter) Select(ctx context.Context, message string, options []prompt.Option) (prompt.Option, error) {
	if err := ctx.Err(); err != nil {
		return prompt.Option{}, err
	}
	call := Call{Kind: CallSelect, Message: message}
	for _, opt := range options {
		call.Options = append(call.Options, opt.Label)
		call.IDs = append(call.IDs, opt.ID)
	}
	a, err := p.next(call)
	if err != nil {
		return prompt.Option{}, err
	}
	if len(options) == 0 {
		return prompt.Option{}, prompt.ErrNoOptions
	}
	for _, opt := range options {
		if strings.EqualFold(opt.Label, a.Choice) {
			return opt, nil
		}
	}
	return prompt.Option{}, fmt.Errorf("scripted choice %q is not among %v", a.Choice, call.Options)
}

// Confirm implements prompt.Prompter.
func (p *Prompter) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	a, err := p.next(Call{Kind: CallConfirm, Message: message})
	if err != nil {
		return false, err
	}
	return a.Confirm, nil
}
