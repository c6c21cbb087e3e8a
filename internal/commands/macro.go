package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/idursun/scened/internal/config"
)

// maxMacroDepth bounds macros that call other macros.
const maxMacroDepth = 8

var ErrMacroDepth = errors.New("macro nesting too deep")

type macroDepthKey struct{}

// RegisterMacros registers every configured command as a macro that runs its
// steps in order and stops at the first failing step. Steps are resolved when
// the macro runs, so a macro may name commands registered after it.
func (m *Manager) RegisterMacros(macros []config.CommandConfig) error {
	var errs []error
	for _, macro := range macros {
		steps := append([]string(nil), macro.Run...)
		text := macro.Text
		if text == "" {
			text = macro.Name
		}
		err := m.Register(Command{
			Name:    macro.Name,
			Text:    text,
			Handler: runSteps(steps),
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func runSteps(steps []string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		depth, _ := ctx.Value(macroDepthKey{}).(int)
		if depth >= maxMacroDepth {
			return ErrMacroDepth
		}
		ctx = context.WithValue(ctx, macroDepthKey{}, depth+1)
		manager := FromContext(ctx)
		for i, step := range steps {
			if err := manager.Execute(ctx, step); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		return nil
	}
}
