package pipeline

import (
	"context"
	"errors"
	"fmt"

	"roster/internal/cli"
	"roster/internal/prompt"
	"roster/internal/table"
	"roster/pkg/logging"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Outcome is the result of running one action.
type Outcome int

const (
	// OutcomeSucceeded means the view was rendered or the mutation committed.
	OutcomeSucceeded Outcome = iota
	// OutcomeCancelled means the user declined or aborted; nothing was written.
	OutcomeCancelled
	// OutcomeFailed means a read, prompt or write failed; the error was reported.
	OutcomeFailed
)

// String makes Outcome satisfy the fmt.Stringer interface.
func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Executor runs action descriptors against a store, asking the user through a
// prompter. Errors never escape Run: they are reported and turned into an Outcome.
type Executor struct {
	store    Store
	prompter prompt.Prompter
	out      *cli.Output
}

// NewExecutor creates an executor. The store is the only shared state between
// actions.
func NewExecutor(store Store, prompter prompt.Prompter, out *cli.Output) *Executor {
	return &Executor{store: store, prompter: prompter, out: out}
}

// Run executes one action: fetch reference data, build option lists, ask the
// questions, check the answers, confirm, then mutate (or render a view) and report.
func (e *Executor) Run(ctx context.Context, action Action) Outcome {
	runID := uuid.NewString()
	logging.Debug("Pipeline", "Running action %q (run=%s)", action.Name, runID)

	if action.View != nil {
		return e.runView(ctx, action, runID)
	}

	options, err := e.fetch(ctx, action.Fetches)
	if err != nil {
		return e.fail(action, runID, err)
	}

	answers, err := e.ask(ctx, action, options)
	if errors.Is(err, prompt.ErrAborted) {
		return e.cancel(action, runID)
	}
	if err != nil {
		return e.fail(action, runID, err)
	}

	if err := answers.validate(action.Questions); err != nil {
		return e.fail(action, runID, err)
	}

	if action.Confirm != "" {
		ok, err := e.prompter.Confirm(ctx, action.Confirm, false)
		if errors.Is(err, prompt.ErrAborted) {
			return e.cancel(action, runID)
		}
		if err != nil {
			return e.fail(action, runID, err)
		}
		if !ok {
			return e.cancel(action, runID)
		}
	}

	if action.Mutate == nil {
		return e.fail(action, runID, fmt.Errorf("action %q has nothing to do", action.Name))
	}
	if err := action.Mutate(ctx, e.store, answers); err != nil {
		return e.fail(action, runID, err)
	}

	logging.Info("Pipeline", "Action %q succeeded (run=%s)", action.Name, runID)
	if action.Success != "" {
		e.out.Success("%s", action.Success)
	}
	return OutcomeSucceeded
}

func (e *Executor) runView(ctx context.Context, action Action, runID string) Outcome {
	records, err := action.View(ctx, e.store)
	if err != nil {
		return e.fail(action, runID, err)
	}
	if len(records) == 0 {
		return OutcomeSucceeded
	}

	e.out.Println()
	if err := table.Render(e.out.Stdout(), records); err != nil {
		return e.fail(action, runID, err)
	}
	e.out.Println()
	return OutcomeSucceeded
}

// fetchResult is the option list produced by one Fetch.
type fetchResult struct {
	noun    string
	options []prompt.Option
}

// fetch runs the independent reference reads concurrently. The first failure
// cancels the others and aborts the action before any prompt.
func (e *Executor) fetch(ctx context.Context, fetches []Fetch) (map[string]fetchResult, error) {
	results := make([]fetchResult, len(fetches))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range fetches {
		g.Go(func() error {
			refs, err := f.Load(gctx, e.store)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", f.Key, err)
			}
			build := f.Build
			if build == nil {
				build = OptionsFromRefs
			}
			results[i] = fetchResult{noun: f.Noun, options: build(refs)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byKey := make(map[string]fetchResult, len(fetches))
	for i, f := range fetches {
		byKey[f.Key] = results[i]
	}
	return byKey, nil
}

// ask walks the prompt schema in order. Select questions over an empty list
// stop the action before anything is asked.
func (e *Executor) ask(ctx context.Context, action Action, options map[string]fetchResult) (Answers, error) {
	for _, q := range action.Questions {
		if q.Kind != QuestionSelect {
			continue
		}
		res, ok := options[q.Options]
		if !ok {
			return Answers{}, fmt.Errorf("question %q refers to unknown option list %q", q.Key, q.Options)
		}
		if len(res.options) == 0 {
			noun := res.noun
			if noun == "" {
				noun = q.Options
			}
			return Answers{}, fmt.Errorf("no %s available: %w", noun, prompt.ErrNoOptions)
		}
	}

	answers := newAnswers()
	for _, q := range action.Questions {
		switch q.Kind {
		case QuestionInput:
			text, err := e.prompter.Input(ctx, q.Message)
			if err != nil {
				return Answers{}, err
			}
			answers.SetText(q.Key, text)
		case QuestionSelect:
			opt, err := e.prompter.Select(ctx, q.Message, options[q.Options].options)
			if err != nil {
				return Answers{}, err
			}
			answers.SetChoice(q.Key, opt)
		default:
			return Answers{}, fmt.Errorf("question %q has unknown kind %d", q.Key, q.Kind)
		}
	}
	return answers, nil
}

func (e *Executor) cancel(action Action, runID string) Outcome {
	logging.Debug("Pipeline", "Action %q cancelled (run=%s)", action.Name, runID)
	if action.Cancelled != "" {
		e.out.Println(action.Cancelled)
	}
	return OutcomeCancelled
}

// fail reports err on the diagnostic stream. The session carries on.
func (e *Executor) fail(action Action, runID string, err error) Outcome {
	logging.Error("Pipeline", err, "Action %q failed (run=%s)", action.Name, runID)
	failure := action.Failure
	if failure == "" {
		failure = action.Name
	}
	e.out.Error(fmt.Errorf("%s: %w", failure, err))
	return OutcomeFailed
}
