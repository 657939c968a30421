package app

import (
	"context"
	"errors"
	"fmt"

	"roster/internal/pipeline"
	"roster/internal/prompt"
	"roster/pkg/logging"
)

const (
	menuMessage = "What would you like to do?"
	exitLabel   = "Exit"
)

// Menu is the top-level loop: it offers the actions plus Exit and runs the
// chosen action through the executor until the user leaves.
type Menu struct {
	executor *pipeline.Executor
	prompter prompt.Prompter
	actions  []pipeline.Action
}

// NewMenu creates a menu over actions. Option identifiers are action indices;
// Exit carries the null identifier.
func NewMenu(executor *pipeline.Executor, prompter prompt.Prompter, actions []pipeline.Action) *Menu {
	return &Menu{executor: executor, prompter: prompter, actions: actions}
}

func (m *Menu) options() []prompt.Option {
	opts := make([]prompt.Option, 0, len(m.actions)+1)
	for i, a := range m.actions {
		opts = append(opts, prompt.NewOption(a.Name, int64(i)))
	}
	return append(opts, prompt.Option{Label: exitLabel})
}

// Run shows the menu until Exit is chosen, input ends, or ctx is cancelled.
// Action failures are reported by the executor and do not end the loop.
func (m *Menu) Run(ctx context.Context) error {
	options := m.options()
	for {
		if ctx.Err() != nil {
			logging.Info("Menu", "Context cancelled, leaving menu")
			return nil
		}

		choice, err := m.prompter.Select(ctx, menuMessage, options)
		switch {
		case errors.Is(err, prompt.ErrAborted):
			logging.Debug("Menu", "Input ended at the menu prompt")
			return nil
		case errors.Is(err, context.Canceled):
			return nil
		case err != nil:
			return fmt.Errorf("menu prompt failed: %w", err)
		}

		if choice.IsNull() {
			logging.Debug("Menu", "Exit selected")
			return nil
		}
		idx := int(*choice.ID)
		if idx < 0 || idx >= len(m.actions) {
			return fmt.Errorf("menu choice %d out of range", idx)
		}

		outcome := m.executor.Run(ctx, m.actions[idx])
		logging.Debug("Menu", "Action %q finished: %s", m.actions[idx].Name, outcome)
	}
}

// RunMenu runs the interactive menu over the full action catalogue.
func (a *Application) RunMenu(ctx context.Context, prompter prompt.Prompter) error {
	executor := pipeline.NewExecutor(a.store, prompter, a.out)
	err := NewMenu(executor, prompter, pipeline.Catalogue()).Run(ctx)
	a.out.Println("Goodbye!")
	return err
}
