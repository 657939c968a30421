package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"roster/internal/cli"
	"roster/pkg/logging"

	"github.com/chzyer/readline"
)

// Config configures a ReadlinePrompter. Zero values fall back to the process
// standard streams.
type Config struct {
	// Stdin is the input stream; os.Stdin when nil.
	Stdin io.ReadCloser
	// Output receives prompts, option lists and retry hints.
	Output *cli.Output
}

// ReadlinePrompter is a Prompter backed by a readline instance. It prints
// numbered option lists and completes option labels on TAB.
type ReadlinePrompter struct {
	rl  *readline.Instance
	out *cli.Output
}

// NewReadlinePrompter creates a prompter reading from cfg.Stdin.
func NewReadlinePrompter(cfg Config) (*ReadlinePrompter, error) {
	out := cfg.Output
	if out == nil {
		out = cli.NewOutput(os.Stdout, os.Stderr, false)
	}
	stdin := cfg.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "",
		Stdin:           stdin,
		Stdout:          out.Stdout(),
		Stderr:          out.Stderr(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		// Answers may contain names; keep them out of a history file.
		HistoryLimit:      -1,
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	return &ReadlinePrompter{rl: rl, out: out}, nil
}

// Close releases the terminal.
func (p *ReadlinePrompter) Close() error {
	return p.rl.Close()
}

// Input implements Prompter.
func (p *ReadlinePrompter) Input(ctx context.Context, message string) (string, error) {
	line, err := p.readLine(ctx, message+" ")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Select implements Prompter. Invalid answers are reported and asked again.
func (p *ReadlinePrompter) Select(ctx context.Context, message string, options []Option) (Option, error) {
	if len(options) == 0 {
		return Option{}, ErrNoOptions
	}

	items := make([]readline.PrefixCompleterInterface, len(options))
	for i, opt := range options {
		items[i] = readline.PcItem(opt.Label)
	}
	p.rl.Config.AutoComplete = readline.NewPrefixCompleter(items...)
	defer func() { p.rl.Config.AutoComplete = nil }()

	p.out.Printf("%s\n%s", message, formatOptions(options))
	for {
		line, err := p.readLine(ctx, "> ")
		if err != nil {
			return Option{}, err
		}
		opt, err := parseChoice(line, options)
		if err != nil {
			p.out.Warning("%s", err.Error())
			continue
		}
		return opt, nil
	}
}

// Confirm implements Prompter.
func (p *ReadlinePrompter) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	for {
		line, err := p.readLine(ctx, message+" "+confirmSuffix(def)+" ")
		if err != nil {
			return false, err
		}
		ok, err := parseConfirm(line, def)
		if err != nil {
			p.out.Warning("%s", err.Error())
			continue
		}
		return ok, nil
	}
}

func (p *ReadlinePrompter) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.rl.SetPrompt(prompt)
	line, err := p.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		logging.Debug("Prompt", "Prompt %q aborted", strings.TrimSpace(prompt))
		return "", ErrAborted
	case err != nil:
		return "", fmt.Errorf("readline error: %w", err)
	}
	return line, nil
}
